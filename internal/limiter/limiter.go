// Package limiter paces outbound search queries so consecutive calls to the
// search provider keep a minimum spacing, respecting its rate limits.
package limiter

import (
	"context"
	"time"

	"golang.org/x/time/rate"
)

// QueryLimiter blocks until the next search query may be issued.
type QueryLimiter interface {
	Wait(ctx context.Context) error
}

// ProductionQueryLimiter enforces a fixed minimum interval between queries.
// The first call passes immediately; every following call waits until the
// interval since the previous one has elapsed.
type ProductionQueryLimiter struct {
	limiter *rate.Limiter
}

func NewProductionQueryLimiter(minInterval time.Duration) *ProductionQueryLimiter {
	return &ProductionQueryLimiter{
		limiter: rate.NewLimiter(rate.Every(minInterval), 1),
	}
}

func (l *ProductionQueryLimiter) Wait(ctx context.Context) error {
	return l.limiter.Wait(ctx)
}

// TestQueryLimiter never delays. Used in tests and one-shot CLI runs where
// pacing would only slow things down.
type TestQueryLimiter struct{}

func NewTestQueryLimiter() *TestQueryLimiter {
	return &TestQueryLimiter{}
}

func (l *TestQueryLimiter) Wait(ctx context.Context) error {
	return nil
}
