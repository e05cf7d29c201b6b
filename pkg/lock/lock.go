// Package lock provides the coarse mutual exclusion around import runs.
// Import is a maintenance operation; the lease only prevents two runs from
// interleaving, it does not block live REST writes.
package lock

import (
	"context"
	"sync"
	"time"

	apperrors "clinic-registry/pkg/errors"

	"github.com/go-redis/redis/v8"
)

type Locker interface {
	// Acquire returns ErrImportInProgress when the lease is already held.
	Acquire(ctx context.Context) error
	Release(ctx context.Context) error
}

const redisKey = "clinic-registry:import:lock"

// RedisLocker holds the lease in Redis (SetNX with TTL), so it also covers
// multiple application instances sharing one database.
type RedisLocker struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisLocker(client *redis.Client, ttl time.Duration) *RedisLocker {
	return &RedisLocker{client: client, ttl: ttl}
}

func (l *RedisLocker) Acquire(ctx context.Context) error {
	ok, err := l.client.SetNX(ctx, redisKey, "locked", l.ttl).Result()
	if err != nil {
		return err
	}
	if !ok {
		return apperrors.ErrImportInProgress
	}
	return nil
}

func (l *RedisLocker) Release(ctx context.Context) error {
	return l.client.Del(ctx, redisKey).Err()
}

// LocalLocker is the single-instance fallback used when Redis is not
// configured (and by the import CLI).
type LocalLocker struct {
	mu   sync.Mutex
	held bool
}

func NewLocalLocker() *LocalLocker { return &LocalLocker{} }

func (l *LocalLocker) Acquire(ctx context.Context) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.held {
		return apperrors.ErrImportInProgress
	}
	l.held = true
	return nil
}

func (l *LocalLocker) Release(ctx context.Context) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.held = false
	return nil
}
