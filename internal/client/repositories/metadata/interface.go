// Package metadata is the CLI's small key/value store, used to keep the
// signed-in session across runs.
package metadata

import "context"

type Repository interface {
	// Get returns the value of key; ok is false when the key is absent.
	Get(ctx context.Context, key string) (value string, ok bool, err error)
	// SetAll upserts every pair atomically.
	SetAll(ctx context.Context, values map[string]string) error
	Delete(ctx context.Context, keys ...string) error
	Clear(ctx context.Context) error
}
