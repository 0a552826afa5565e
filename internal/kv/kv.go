// Package kv provides the small durable key-value stores the viewer keeps
// local state in. Values are opaque strings; callers own the encoding.
package kv

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

// Store is a string key-value store.
type Store interface {
	// Get returns the value for key and whether it was present.
	Get(ctx context.Context, key string) (string, bool, error)
	// Set replaces the value for key.
	Set(ctx context.Context, key, value string) error
	Close() error
}

// Backend names accepted by Open.
const (
	BackendFile   = "file"
	BackendRedis  = "redis"
	BackendSQLite = "sqlite"
	BackendMemory = "memory"
)

// ErrEmptyKey is returned for blank keys.
var ErrEmptyKey = errors.New("kv: key is empty")

// Config selects and configures a backend.
type Config struct {
	Backend   string
	Path      string // file and sqlite backends
	RedisAddr string
	RedisDB   int
	Prefix    string // redis key prefix
}

// Open returns the Store named by cfg.Backend. An empty backend means file.
func Open(cfg Config) (Store, error) {
	switch strings.ToLower(strings.TrimSpace(cfg.Backend)) {
	case "", BackendFile:
		return NewFile(cfg.Path)
	case BackendSQLite:
		return NewSQLite(cfg.Path)
	case BackendRedis:
		return NewRedis(RedisConfig{Addr: cfg.RedisAddr, DB: cfg.RedisDB, Prefix: cfg.Prefix})
	case BackendMemory:
		return NewMemory(), nil
	default:
		return nil, fmt.Errorf("kv: unknown backend %q", cfg.Backend)
	}
}

func checkKey(key string) error {
	if strings.TrimSpace(key) == "" {
		return ErrEmptyKey
	}
	return nil
}
