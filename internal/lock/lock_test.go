package lock

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oshokin/studycast/internal/store"
)

var atomicStructureKey = store.DuplicateKey{
	UserID:    "user-1",
	Subject:   "Chemistry",
	Topic:     "Atomic Structure",
	Mode:      "FocusCast",
	ExamBoard: "AQA",
	Level:     "Foundation",
}

func newLocker(t *testing.T, ttl time.Duration) (*RedisLocker, *miniredis.Miniredis) {
	t.Helper()

	server := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: server.Addr()})

	t.Cleanup(func() { _ = client.Close() })

	return NewRedisLocker(client, ttl), server
}

// TestRedisLocker_Exclusive tests that a held lock blocks a second acquire until released.
func TestRedisLocker_Exclusive(t *testing.T) {
	t.Parallel()

	locker, server := newLocker(t, time.Minute)
	ctx := context.Background()

	lease, err := locker.Acquire(ctx, atomicStructureKey)
	require.NoError(t, err)
	assert.True(t, server.Exists(Name(atomicStructureKey)))
	assert.Equal(t, time.Minute, server.TTL(Name(atomicStructureKey)))

	_, err = locker.Acquire(ctx, atomicStructureKey)
	require.ErrorIs(t, err, ErrLocked)

	other := atomicStructureKey
	other.Mode = "SleepCast"

	otherLease, err := locker.Acquire(ctx, other)
	require.NoError(t, err)
	require.NoError(t, otherLease.Release(ctx))

	require.NoError(t, lease.Release(ctx))
	require.ErrorIs(t, lease.Release(ctx), ErrNotHeld)

	lease, err = locker.Acquire(ctx, atomicStructureKey)
	require.NoError(t, err)
	require.NoError(t, lease.Release(ctx))
}

// TestRedisLocker_Expired tests that an expired lease cannot release a lock taken over by another holder.
func TestRedisLocker_Expired(t *testing.T) {
	t.Parallel()

	locker, server := newLocker(t, time.Second)
	ctx := context.Background()

	stale, err := locker.Acquire(ctx, atomicStructureKey)
	require.NoError(t, err)

	server.FastForward(2 * time.Second)

	fresh, err := locker.Acquire(ctx, atomicStructureKey)
	require.NoError(t, err)

	require.ErrorIs(t, stale.Release(ctx), ErrNotHeld)
	assert.True(t, server.Exists(Name(atomicStructureKey)))
	require.NoError(t, fresh.Release(ctx))
}

// TestConnect tests connecting to a live and a missing server.
func TestConnect(t *testing.T) {
	t.Parallel()

	server := miniredis.RunT(t)

	client, err := Connect(context.Background(), server.Addr())
	require.NoError(t, err)
	require.NoError(t, client.Close())

	server.Close()

	_, err = Connect(context.Background(), server.Addr())
	require.Error(t, err)
}

// TestNopLocker tests the lock used without a redis server.
func TestNopLocker(t *testing.T) {
	t.Parallel()

	lease, err := NopLocker{}.Acquire(context.Background(), atomicStructureKey)
	require.NoError(t, err)
	require.NoError(t, lease.Release(context.Background()))
}

// TestName tests that lock names are stable and distinct.
func TestName(t *testing.T) {
	t.Parallel()

	other := atomicStructureKey
	other.Level = "Higher"

	assert.Equal(t, Name(atomicStructureKey), Name(atomicStructureKey))
	assert.NotEqual(t, Name(atomicStructureKey), Name(other))
	assert.Contains(t, Name(other), "studycast:generation:")
}
