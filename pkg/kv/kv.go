// Package kv is the durable state port: a flat key-value store scoped by
// caller-composed keys. The core only needs enough of it to reconstruct
// the transaction cache, the diff baseline and the notification log after
// a restart; everything else is backend detail.
package kv

import "context"

// Store is the persistence port. Get returns a nil value for an absent
// key; absence is not an error. Single-writer access is assumed, there is
// no cross-process locking.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	SetMany(ctx context.Context, values map[string][]byte) error
	Delete(ctx context.Context, key string) error
}
