package kv

import (
	"context"
	"errors"
)

// Store is the persistent key-value collaborator. Callers decide what
// a missing key means; for the cart it means an empty cart.
type Store interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
}

var ErrNotFound = errors.New("key not found")
