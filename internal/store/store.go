// Package store provides the key-value blob persistence used for the
// session and content records. Backends are swappable as long as they
// offer atomic get/set/remove semantics for a single key.
package store

import "context"

// Store is the narrow persistence interface consumed by the services.
// Get returns (nil, nil) when the key is absent; callers treat a read
// error the same as an absent record (fail safe, never fail open).
type Store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Remove(ctx context.Context, key string) error
}

// Well-known record keys.
const (
	KeySession    = "session"
	KeyContent    = "content"
	KeyCredential = "credential"
)
