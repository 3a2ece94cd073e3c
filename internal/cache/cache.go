// Package cache keeps rendered dashboard responses out of the hot query
// path. Values are stored as raw JSON so the handler can write them straight
// to the response.
package cache

import (
	"context"
	"time"
)

type SummaryCache interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
}

// NoopSummaryCache is used when Redis is not configured or unreachable;
// every request falls through to the database.
type NoopSummaryCache struct{}

func (NoopSummaryCache) Get(_ context.Context, _ string) ([]byte, bool, error) {
	return nil, false, nil
}

func (NoopSummaryCache) Set(_ context.Context, _ string, _ []byte, _ time.Duration) error {
	return nil
}
