// Package kv is the durable key-value collaborator used for client-side
// cart and session persistence. Values are opaque JSON blobs.
package kv

import "context"

type Store interface {
	// Get returns the stored value or domain.ErrNotFound.
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
}
