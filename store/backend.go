package store

import (
	"sync"
	"time"

	"devbady/globals"

	"github.com/redis/go-redis/v9"
)

// Backend is the raw persistence surface the store writes through. It is
// deliberately the same three-call shape as browser local storage so the
// Redis and in-memory variants stay interchangeable.
type Backend interface {
	GetItem(key string) (string, error)
	SetItem(key, value string) error
	RemoveItem(key string) error
}

// ErrNotFound reports a missing key.
type notFoundError struct{}

func (notFoundError) Error() string { return "store: key not found" }

var ErrNotFound error = notFoundError{}

// RedisBackend persists through a shared Redis connection.
type RedisBackend struct {
	Conn *redis.Client
}

func (b *RedisBackend) GetItem(key string) (string, error) {
	val, err := b.Conn.Get(globals.Ctx, key).Result()
	if err == redis.Nil {
		return "", ErrNotFound
	}
	return val, err
}

func (b *RedisBackend) SetItem(key, value string) error {
	return b.Conn.Set(globals.Ctx, key, value, 0).Err()
}

func (b *RedisBackend) RemoveItem(key string) error {
	return b.Conn.Del(globals.Ctx, key).Err()
}

// Ping reports whether the backend is reachable right now.
func (b *RedisBackend) Ping() bool {
	ctx, cancel := contextWithTimeout(2 * time.Second)
	defer cancel()
	return b.Conn.Ping(ctx).Err() == nil
}

// MemoryBackend keeps values for the lifetime of the process. It backs
// tests and serves as the degraded mode when Redis is unreachable.
type MemoryBackend struct {
	mu    sync.RWMutex
	items map[string]string
}

func NewMemoryBackend() *MemoryBackend {
	return &MemoryBackend{items: make(map[string]string)}
}

func (b *MemoryBackend) GetItem(key string) (string, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	val, ok := b.items[key]
	if !ok {
		return "", ErrNotFound
	}
	return val, nil
}

func (b *MemoryBackend) SetItem(key, value string) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.items[key] = value
	return nil
}

func (b *MemoryBackend) RemoveItem(key string) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	delete(b.items, key)
	return nil
}
