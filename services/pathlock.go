package services

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// PathLocker serializes multi-step hierarchy mutations on the same
// subtree. Folder rename/move/delete perform several dependent store and
// catalog writes with no transaction across them; the lock prevents two
// conflicting mutations from interleaving. It does not make the sequence
// atomic: a crash mid-sequence still leaves the stores inconsistent.
type PathLocker interface {
	Lock(ctx context.Context, path string) (func(), error)
}

const (
	lockKeyPrefix   = "pathlock:"
	lockRetryDelay  = 100 * time.Millisecond
	lockMaxAttempts = 20
)

// unlockScript deletes the lock only if it still holds our token, so an
// expired-and-reacquired lock is never released by the old holder.
var unlockScript = redis.NewScript(`
if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("DEL", KEYS[1])
end
return 0
`)

type RedisPathLocker struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisPathLocker(client *redis.Client, ttl time.Duration) *RedisPathLocker {
	return &RedisPathLocker{client: client, ttl: ttl}
}

func (l *RedisPathLocker) Lock(ctx context.Context, path string) (func(), error) {
	key := lockKeyPrefix + path
	token := uuid.NewString()

	for attempt := 0; attempt < lockMaxAttempts; attempt++ {
		ok, err := l.client.SetNX(ctx, key, token, l.ttl).Result()
		if err != nil {
			return nil, fmt.Errorf("failed to acquire path lock for %q: %w", path, err)
		}
		if ok {
			return func() {
				unlockScript.Run(context.Background(), l.client, []string{key}, token)
			}, nil
		}

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(lockRetryDelay):
		}
	}

	return nil, fmt.Errorf("path %q is locked by another operation", path)
}

// MemoryPathLocker is a single-process fallback used in tests.
type MemoryPathLocker struct {
	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

func NewMemoryPathLocker() *MemoryPathLocker {
	return &MemoryPathLocker{locks: make(map[string]*sync.Mutex)}
}

func (l *MemoryPathLocker) Lock(_ context.Context, path string) (func(), error) {
	l.mu.Lock()
	m, ok := l.locks[path]
	if !ok {
		m = &sync.Mutex{}
		l.locks[path] = m
	}
	l.mu.Unlock()

	m.Lock()
	return m.Unlock, nil
}
