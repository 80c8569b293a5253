// internal/cache/redis.go
package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// Store keeps scoreboard slots as plain Redis string keys.
type Store struct {
	Rdb *redis.Client
}

// ConnectRedis builds a client for addr/db and pings it.
func ConnectRedis(addr string, db int) (*Store, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr: addr,
		DB:   db,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("failed to connect to Redis at %s: %w", addr, err)
	}
	return &Store{Rdb: rdb}, nil
}

// Load returns the string stored at key.
func (s *Store) Load(ctx context.Context, key string) (string, bool, error) {
	v, err := s.Rdb.Get(ctx, key).Result()
	if errors.Is(err, redis.Nil) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("failed to GET '%s': %w", key, err)
	}
	return v, true, nil
}

// Save overwrites key with value. Slots never expire.
func (s *Store) Save(ctx context.Context, key, value string) error {
	if err := s.Rdb.Set(ctx, key, value, 0).Err(); err != nil {
		return fmt.Errorf("failed to SET '%s': %w", key, err)
	}
	return nil
}

// Close releases the client.
func (s *Store) Close() error {
	return s.Rdb.Close()
}
