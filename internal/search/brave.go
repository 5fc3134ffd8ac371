package search

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

// BraveClient queries the Brave web search API.
type BraveClient struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
}

// NewBraveClient creates a Brave search client with the given per-call timeout.
func NewBraveClient(apiKey string, timeout time.Duration) *BraveClient {
	return &BraveClient{
		apiKey:  apiKey,
		baseURL: "https://api.search.brave.com/res/v1/web/search",
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// braveResponse holds the web results of a Brave search response.
type braveResponse struct {
	Web struct {
		Results []struct {
			Title       string `json:"title"`
			URL         string `json:"url"`
			Description string `json:"description"`
		} `json:"results"`
	} `json:"web"`
}

// Search sends the query to Brave and returns up to num web results in the
// provider's ranking order. Brave wraps query-term highlights in HTML tags
// inside descriptions, so snippets are stripped to plain text before use.
func (c *BraveClient) Search(ctx context.Context, query string, num int) ([]Result, error) {
	reqURL := fmt.Sprintf("%s?q=%s&count=%d", c.baseURL, url.QueryEscape(query), num)

	req, err := http.NewRequestWithContext(ctx, "GET", reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Subscription-Token", c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("sending request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		bodyBytes, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("search request failed with status %d: %s", resp.StatusCode, string(bodyBytes))
	}

	var braveResp braveResponse
	if err := json.NewDecoder(resp.Body).Decode(&braveResp); err != nil {
		return nil, fmt.Errorf("decoding response: %w", err)
	}

	var results []Result
	for _, item := range braveResp.Web.Results {
		if len(results) >= num {
			break
		}
		snippet := stripHTML(item.Description)
		if snippet == "" {
			continue
		}
		results = append(results, Result{
			Title:   item.Title,
			URL:     item.URL,
			Snippet: snippet,
		})
	}

	return results, nil
}
