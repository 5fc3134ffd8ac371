package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"
	"time"

	"plagiarism-checker/internal/config"
	"plagiarism-checker/internal/limiter"
	"plagiarism-checker/internal/plagiarism"
	"plagiarism-checker/internal/search"
)

func main() {
	noDelay := flag.Bool("no-delay", false, "skip the inter-query delay (useful for small inputs)")
	flag.Parse()

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	text := strings.Join(flag.Args(), " ")
	if strings.TrimSpace(text) == "" {
		// No arguments: read the text from stdin
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			log.Fatalf("Failed to read stdin: %v", err)
		}
		text = string(data)
	}
	if strings.TrimSpace(text) == "" {
		log.Fatal("No text to check: pass it as arguments or pipe it on stdin")
	}

	searchClient, err := search.New(
		search.Provider(cfg.SearchProvider),
		cfg.APIKey(),
		time.Duration(cfg.SearchTimeoutSeconds)*time.Second,
	)
	if err != nil {
		log.Fatalf("Failed to create search client: %v", err)
	}

	var queryLimiter limiter.QueryLimiter = limiter.NewProductionQueryLimiter(time.Duration(cfg.QueryDelayMillis) * time.Millisecond)
	if *noDelay {
		queryLimiter = limiter.NewTestQueryLimiter()
	}

	checker := plagiarism.NewChecker(searchClient, queryLimiter, cfg.SearchResultCount, cfg.MinSentenceWords)

	report, err := checker.Check(context.Background(), text)
	if err != nil {
		log.Fatalf("Check failed: %v", err)
	}

	output, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		log.Fatalf("Failed to encode report: %v", err)
	}
	fmt.Println(string(output))
}
