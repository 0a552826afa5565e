package kv

import (
	"context"
	"errors"
	"fmt"
	"strings"

	redis "github.com/redis/go-redis/v9"
)

const defaultRedisPrefix = "pokeview:"

// RedisConfig configures the Redis-backed store.
type RedisConfig struct {
	Addr   string
	DB     int
	Prefix string
	// Client, when set, is used instead of dialing Addr.
	Client redis.Cmdable
}

// Redis stores each key as a plain string under Prefix+key.
type Redis struct {
	client redis.Cmdable
	closer func() error
	prefix string
}

// NewRedis builds a Redis store. Redis connects lazily, so no round trip
// happens here.
func NewRedis(cfg RedisConfig) (*Redis, error) {
	prefix := cfg.Prefix
	if prefix == "" {
		prefix = defaultRedisPrefix
	}
	if cfg.Client != nil {
		return &Redis{client: cfg.Client, closer: func() error { return nil }, prefix: prefix}, nil
	}
	if strings.TrimSpace(cfg.Addr) == "" {
		return nil, errors.New("kv: redis address is required")
	}
	c := redis.NewClient(&redis.Options{Addr: cfg.Addr, DB: cfg.DB})
	return &Redis{client: c, closer: c.Close, prefix: prefix}, nil
}

func (r *Redis) Get(ctx context.Context, key string) (string, bool, error) {
	if err := checkKey(key); err != nil {
		return "", false, err
	}
	v, err := r.client.Get(ctx, r.prefix+key).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", false, nil
		}
		return "", false, fmt.Errorf("kv: redis get %s: %w", key, err)
	}
	return v, true, nil
}

func (r *Redis) Set(ctx context.Context, key, value string) error {
	if err := checkKey(key); err != nil {
		return err
	}
	if err := r.client.Set(ctx, r.prefix+key, value, 0).Err(); err != nil {
		return fmt.Errorf("kv: redis set %s: %w", key, err)
	}
	return nil
}

func (r *Redis) Close() error {
	return r.closer()
}
