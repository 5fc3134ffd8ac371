package plagiarism

import (
	"context"
	"fmt"
	"log"

	"plagiarism-checker/internal/limiter"
	"plagiarism-checker/internal/search"
	"plagiarism-checker/internal/similarity"
	"plagiarism-checker/internal/textproc"
)

// Source labels used when no concrete web source can be attributed.
const (
	SourceNoResults      = "No search results found"
	SourceNotSignificant = "No significant source found"
)

// significanceThreshold is the minimum similarity percentage a candidate must
// exceed before its URL is attributed as the sentence's source.
const significanceThreshold = 10.0

// SentenceResult is the per-sentence outcome of a plagiarism check.
type SentenceResult struct {
	Sentence   string  `json:"sentence"`
	Similarity float64 `json:"similarity"`
	Source     string  `json:"source"`
}

// Report is the full outcome of a plagiarism check. OverallSimilarity is the
// maximum similarity across all scored sentences, 0 when none qualified.
type Report struct {
	OverallSimilarity float64          `json:"overall_similarity"`
	Sentences         []SentenceResult `json:"sentences"`
}

// Checker runs the plagiarism detection pipeline: segment the text, search
// the web per sentence, score similarity, aggregate.
type Checker struct {
	searchClient search.Client
	queryLimiter limiter.QueryLimiter
	resultCount  int
	minWords     int
}

// NewChecker creates a checker. resultCount is the number of search results
// requested per sentence; sentences with fewer than minWords words are
// excluded from scoring entirely.
func NewChecker(searchClient search.Client, queryLimiter limiter.QueryLimiter, resultCount, minWords int) *Checker {
	return &Checker{
		searchClient: searchClient,
		queryLimiter: queryLimiter,
		resultCount:  resultCount,
		minWords:     minWords,
	}
}

// Check runs the full pipeline on the given text.
//
// Sentences are processed strictly sequentially; the query limiter enforces
// the spacing between consecutive search calls. A failed search degrades that
// sentence to a zero score instead of aborting the run. The returned error is
// reserved for structural faults (e.g. a cancelled request context).
func (c *Checker) Check(ctx context.Context, text string) (*Report, error) {
	raw := textproc.SplitSentences(text)
	log.Printf("Split text into %d raw sentences", len(raw))

	sentences := textproc.FilterShort(raw, c.minWords)
	log.Printf("Filtered to %d sentences (>= %d words)", len(sentences), c.minWords)

	report := &Report{
		OverallSimilarity: 0,
		Sentences:         []SentenceResult{},
	}
	if len(sentences) == 0 {
		return report, nil
	}

	for _, sentence := range sentences {
		if err := c.queryLimiter.Wait(ctx); err != nil {
			return nil, fmt.Errorf("waiting for query slot: %w", err)
		}

		log.Printf("Checking sentence: %.60s...", sentence)

		results, err := c.searchClient.Search(ctx, sentence, c.resultCount)
		if err != nil {
			// A single failed lookup must not abort the whole run.
			log.Printf("Search failed for sentence, scoring as no results: %v", err)
			results = nil
		}

		score, best := bestCandidate(sentence, results)

		if score > report.OverallSimilarity {
			report.OverallSimilarity = score
		}

		report.Sentences = append(report.Sentences, SentenceResult{
			Sentence:   sentence,
			Similarity: score,
			Source:     sourceLabel(results, score, best),
		})
	}

	return report, nil
}

// bestCandidate scores the sentence against each candidate snippet and
// returns the best similarity with its index, (0, -1) when there are none.
func bestCandidate(sentence string, results []search.Result) (float64, int) {
	if len(results) == 0 {
		return 0, -1
	}
	snippets := make([]string, len(results))
	for i, r := range results {
		snippets[i] = r.Snippet
	}
	return similarity.BestMatch(sentence, snippets)
}

// sourceLabel attributes a source for the sentence. A concrete URL is only
// reported when the best candidate clears the significance threshold;
// otherwise one of the sentinel labels is used.
func sourceLabel(results []search.Result, score float64, best int) string {
	switch {
	case len(results) == 0:
		return SourceNoResults
	case score > significanceThreshold && best >= 0:
		return results[best].URL
	default:
		return SourceNotSignificant
	}
}
