package client

import (
	"context"
	"time"
)

// DefaultPollInterval is how often list views refresh.
const DefaultPollInterval = 5 * time.Second

// Poll calls fetch immediately and then every interval until ctx is done, passing each result
// to fn. Calls never overlap, so results arrive in request order. Fetch errors go to fn and
// polling continues.
func Poll(ctx context.Context, interval time.Duration, fetch func(context.Context) ([]Document, error), fn func([]Document, error)) error {
	if interval <= 0 {
		interval = DefaultPollInterval
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		docs, err := fetch(ctx)
		if ctx.Err() != nil {
			return ctx.Err()
		}
		fn(docs, err)

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
		}
	}
}
