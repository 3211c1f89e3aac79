package booking

import (
	"context"
	"time"

	"studiobook/utils"
)

// SessionStore is the key-value backend for wizard drafts and submit locks.
// The draft flow only needs get/set/delete plus an atomic set-if-absent for
// the submit lock.
type SessionStore interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string, ttl time.Duration) error
	Del(ctx context.Context, key string) error
	SetNX(ctx context.Context, key, value string, ttl time.Duration) (bool, error)
}

// redisSessionStore backs SessionStore with the shared session cache client.
type redisSessionStore struct{}

// NewRedisSessionStore returns the production Redis-backed session store.
func NewRedisSessionStore() SessionStore {
	return redisSessionStore{}
}

func (redisSessionStore) Get(ctx context.Context, key string) (string, error) {
	return utils.GetSessionCacheClient().Get(ctx, key).Result()
}

func (redisSessionStore) Set(ctx context.Context, key, value string, ttl time.Duration) error {
	return utils.GetSessionCacheClient().Set(ctx, key, value, ttl).Err()
}

func (redisSessionStore) Del(ctx context.Context, key string) error {
	return utils.GetSessionCacheClient().Del(ctx, key).Err()
}

func (redisSessionStore) SetNX(ctx context.Context, key, value string, ttl time.Duration) (bool, error) {
	return utils.GetSessionCacheClient().SetNX(ctx, key, value, ttl).Result()
}
