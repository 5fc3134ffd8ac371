package search

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// SerperClient queries the Serper.dev Google search API.
type SerperClient struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
}

// NewSerperClient creates a Serper.dev client with the given per-call timeout.
func NewSerperClient(apiKey string, timeout time.Duration) *SerperClient {
	return &SerperClient{
		apiKey:  apiKey,
		baseURL: "https://google.serper.dev/search",
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// serperRequest is the Serper.dev search request payload.
type serperRequest struct {
	Query string `json:"q"`
	Num   int    `json:"num"`
}

// serperResponse holds the organic results of a Serper.dev search response.
type serperResponse struct {
	Organic []struct {
		Title   string `json:"title"`
		Link    string `json:"link"`
		Snippet string `json:"snippet"`
	} `json:"organic"`
}

// Search sends the query to Serper.dev and returns up to num organic results
// in the provider's ranking order. Results without a snippet are skipped.
func (c *SerperClient) Search(ctx context.Context, query string, num int) ([]Result, error) {
	body, err := json.Marshal(serperRequest{Query: query, Num: num})
	if err != nil {
		return nil, fmt.Errorf("marshaling request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, "POST", c.baseURL, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("X-API-KEY", c.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("sending request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		bodyBytes, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("search request failed with status %d: %s", resp.StatusCode, string(bodyBytes))
	}

	var serperResp serperResponse
	if err := json.NewDecoder(resp.Body).Decode(&serperResp); err != nil {
		return nil, fmt.Errorf("decoding response: %w", err)
	}

	var results []Result
	for _, item := range serperResp.Organic {
		if len(results) >= num {
			break
		}
		if item.Snippet == "" {
			continue
		}
		results = append(results, Result{
			Title:   item.Title,
			URL:     item.Link,
			Snippet: item.Snippet,
		})
	}

	return results, nil
}
