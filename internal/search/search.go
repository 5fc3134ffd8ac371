package search

import (
	"context"
	"fmt"
	"time"
)

// Result is one web search hit: a text snippet and where it came from.
// Results are transient; they live only for the sentence that requested them.
type Result struct {
	Title   string `json:"title"`
	URL     string `json:"url"`
	Snippet string `json:"snippet"`
}

// Client queries an external web search provider. Implementations preserve
// the provider's ranking order and never re-rank.
type Client interface {
	Search(ctx context.Context, query string, num int) ([]Result, error)
}

// Provider identifies a supported search backend.
type Provider string

const (
	ProviderSerper Provider = "serper"
	ProviderBrave  Provider = "brave"
)

// New creates a search client for the given provider. The timeout bounds
// every outbound call made by the returned client.
func New(provider Provider, apiKey string, timeout time.Duration) (Client, error) {
	switch provider {
	case ProviderSerper:
		return NewSerperClient(apiKey, timeout), nil
	case ProviderBrave:
		return NewBraveClient(apiKey, timeout), nil
	default:
		return nil, fmt.Errorf("unsupported search provider: %q", provider)
	}
}
