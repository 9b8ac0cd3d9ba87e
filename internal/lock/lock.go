// Package lock provides an advisory generation lock shared between processes.
// It narrows the window between the duplicate pre-check and the insert of a new row.
package lock

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/oshokin/studycast/internal/logger"
	"github.com/oshokin/studycast/internal/store"
)

//go:generate $MOCKGEN -source=lock.go -destination=mocks/lock_mock.go

// Static error definitions for better error handling.
var (
	// ErrLocked indicates that another process holds the lock.
	ErrLocked = errors.New("another generation for the same material is in progress")
	// ErrNotHeld indicates a release of a lock that expired or was taken over.
	ErrNotHeld = errors.New("generation lock is no longer held")
)

const (
	keyPrefix   = "studycast:generation:"
	pingTimeout = 5 * time.Second
)

// releaseScript deletes the key only while it still carries our token.
//
//nolint:gochecknoglobals // Compiled once and shared.
var releaseScript = redis.NewScript(`
if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("DEL", KEYS[1])
end
return 0
`)

// Locker acquires generation locks.
type Locker interface {
	// Acquire takes the lock for key or fails with ErrLocked.
	Acquire(ctx context.Context, key store.DuplicateKey) (Lease, error)
}

// Lease is a held lock.
type Lease interface {
	// Release gives the lock back.
	Release(ctx context.Context) error
}

// RedisLocker implements Locker with SET NX and a TTL.
type RedisLocker struct {
	client redis.UniversalClient
	ttl    time.Duration
}

// NewRedisLocker creates a locker over an existing client.
func NewRedisLocker(client redis.UniversalClient, ttl time.Duration) *RedisLocker {
	return &RedisLocker{client: client, ttl: ttl}
}

// Connect creates a client for addr and checks that the server answers.
func Connect(ctx context.Context, addr string) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{Addr: addr})

	pingCtx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()

	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()

		return nil, fmt.Errorf("failed to connect to redis at %s: %w", addr, err)
	}

	return client, nil
}

// Acquire takes the lock for key or fails with ErrLocked.
func (l *RedisLocker) Acquire(ctx context.Context, key store.DuplicateKey) (Lease, error) {
	name := Name(key)
	token := uuid.NewString()

	ok, err := l.client.SetNX(ctx, name, token, l.ttl).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to acquire generation lock: %w", err)
	}

	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrLocked, key)
	}

	logger.Debugf(ctx, "Acquired generation lock %s for %s", name, l.ttl)

	return &redisLease{client: l.client, name: name, token: token}, nil
}

// Name returns the redis key of the lock for key.
func Name(key store.DuplicateKey) string {
	sum := sha256.Sum256([]byte(key.String()))

	return keyPrefix + hex.EncodeToString(sum[:])
}

type redisLease struct {
	client redis.UniversalClient
	name   string
	token  string
}

func (l *redisLease) Release(ctx context.Context) error {
	deleted, err := releaseScript.Run(ctx, l.client, []string{l.name}, l.token).Int()
	if err != nil {
		return fmt.Errorf("failed to release generation lock: %w", err)
	}

	if deleted == 0 {
		return ErrNotHeld
	}

	return nil
}

// NopLocker always succeeds; it is used when no redis server is configured.
type NopLocker struct{}

// Acquire returns a lease that does nothing.
func (NopLocker) Acquire(context.Context, store.DuplicateKey) (Lease, error) {
	return nopLease{}, nil
}

type nopLease struct{}

func (nopLease) Release(context.Context) error {
	return nil
}
