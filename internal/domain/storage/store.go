// Package storage defines the persistent key-value store the client keeps
// its session and cart state in. The store is injected everywhere it is
// read, and carries a subscribe/notify contract so independent observers of
// one key see mutations without polling.
package storage

import (
	"context"

	"orchid/internal/errors"
)

// Fixed keys. Cart data has a single writer (the cart manager), session data
// has a single writer (the session guard); both are read by many observers.
const (
	KeyCartItems = "cartItems"
	KeyToken     = "token"
	KeyUser      = "user"
)

// ErrKeyNotFound is returned by Get for keys with no persisted value.
var ErrKeyNotFound = errors.New("storage: key not found")

// Store is a write-through key-value store. Put and Delete return only once
// the value is durable, then notify every subscriber with the mutated key.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Put(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error

	// Subscribe registers an observer for key mutations. The returned
	// function cancels the subscription. Callbacks run synchronously on the
	// mutating goroutine; subscribers must not block.
	Subscribe(fn func(key string)) (cancel func())

	Close() error
}
