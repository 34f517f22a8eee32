package kv

import (
	"context"
	"errors"

	"github.com/go-redis/redis/v8"

	"pricepeek/internal/domain"
)

// Redis backs the client state with a redis server. Keys never expire;
// the cart/session lifecycle is managed explicitly by the storefront.
type Redis struct {
	client *redis.Client
}

func NewRedis(addr string) *Redis {
	return &Redis{client: redis.NewClient(&redis.Options{Addr: addr})}
}

func (r *Redis) Get(ctx context.Context, key string) ([]byte, error) {
	b, err := r.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return b, nil
}

func (r *Redis) Set(ctx context.Context, key string, value []byte) error {
	return r.client.Set(ctx, key, value, 0).Err()
}

func (r *Redis) Delete(ctx context.Context, key string) error {
	return r.client.Del(ctx, key).Err()
}

// FromConfig picks the redis store when an address is configured and
// falls back to the in-memory store otherwise.
func FromConfig(redisAddr string) Store {
	if redisAddr != "" {
		return NewRedis(redisAddr)
	}
	return NewMemory()
}
