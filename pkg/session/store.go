// Package session keeps serialized view state for the lifetime of one
// map page. Nothing here is durable: entries expire at their deadline
// and the default store lives in process memory.
package session

import (
	"context"
	"time"
)

type Store interface {
	Put(ctx context.Context, id string, blob []byte, ttl time.Duration) error
	// Get returns the stored blob, or a not-found error once the
	// entry expired or never existed.
	Get(ctx context.Context, id string) ([]byte, error)
	Delete(ctx context.Context, id string) error
}
