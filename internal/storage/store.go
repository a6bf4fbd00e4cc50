// Package storage provides the persistent key-value byte store the tracker
// writes its snapshot through. Serialization is the caller's job; backends
// only move bytes.
package storage

import (
	"context"
	"errors"
)

// ErrAbsent is returned by Read when the key has never been written or has
// been deleted. A first run is a valid state, not a failure.
var ErrAbsent = errors.New("key absent")

// Store is a flat key-value byte store.
type Store interface {
	Read(ctx context.Context, key string) ([]byte, error)
	Write(ctx context.Context, key string, data []byte) error
	// Delete removes the key. Deleting an absent key is not an error.
	Delete(ctx context.Context, key string) error
	Close() error
}
