// Package session provides the Redis-backed session store, used when the
// deployment shares sessions across instances. The in-memory store in
// pkg/session remains the default for single-node setups.
package session

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"corpus-backend/pkg/session"
)

const keyPrefix = "session:"

type RedisStore struct {
	Client *redis.Client
	ttl    time.Duration
}

func NewRedisStore(host, password string, db int, ttl time.Duration) *RedisStore {
	return &RedisStore{
		Client: redis.NewClient(&redis.Options{
			Addr:         host,
			Password:     password,
			DB:           db,
			PoolSize:     10,
			MinIdleConns: 5,
			MaxRetries:   3,
			DialTimeout:  5 * time.Second,
			ReadTimeout:  3 * time.Second,
			WriteTimeout: 3 * time.Second,
		}),
		ttl: ttl,
	}
}

// Connect pings Redis to verify the connection before serving.
func (r *RedisStore) Connect(ctx context.Context) error {
	if err := r.Client.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("redis ping failed: %w", err)
	}
	return nil
}

func (r *RedisStore) Close() error {
	if r.Client != nil {
		return r.Client.Close()
	}
	return nil
}

func (r *RedisStore) Create(ctx context.Context, userID string) (string, error) {
	token, err := session.NewToken()
	if err != nil {
		return "", err
	}
	if err := r.Client.Set(ctx, keyPrefix+token, userID, r.ttl).Err(); err != nil {
		return "", fmt.Errorf("store session: %w", err)
	}
	return token, nil
}

func (r *RedisStore) Get(ctx context.Context, token string) (string, error) {
	userID, err := r.Client.Get(ctx, keyPrefix+token).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", session.ErrNotFound
		}
		return "", fmt.Errorf("load session: %w", err)
	}
	return userID, nil
}

func (r *RedisStore) Delete(ctx context.Context, token string) error {
	if err := r.Client.Del(ctx, keyPrefix+token).Err(); err != nil {
		return fmt.Errorf("delete session: %w", err)
	}
	return nil
}
