package runlock

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/go-redis/redismock/v9"
	"github.com/stretchr/testify/assert"
)

func fixedToken(t *testing.T, token string) {
	t.Helper()
	prev := newToken
	newToken = func() string { return token }
	t.Cleanup(func() { newToken = prev })
}

func TestRedisLocker_Acquire(t *testing.T) {
	ctx := context.Background()

	t.Run("acquire and release", func(t *testing.T) {
		fixedToken(t, "token-1")
		rdb, mock := redismock.NewClientMock()
		mock.ExpectSetNX(RunKey, "token-1", time.Minute).SetVal(true)
		mock.ExpectGet(RunKey).SetVal("token-1")
		mock.ExpectDel(RunKey).SetVal(1)

		release, err := NewRedisLocker(rdb, time.Minute).Acquire(ctx, RunKey)
		assert.NoError(t, err)
		assert.NoError(t, release(ctx))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("already locked", func(t *testing.T) {
		fixedToken(t, "token-2")
		rdb, mock := redismock.NewClientMock()
		mock.ExpectSetNX(RunKey, "token-2", DefaultTTL).SetVal(false)

		release, err := NewRedisLocker(rdb, 0).Acquire(ctx, RunKey)

		assert.Nil(t, release)
		assert.ErrorIs(t, err, ErrLocked)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("redis error", func(t *testing.T) {
		fixedToken(t, "token-3")
		rdb, mock := redismock.NewClientMock()
		mock.ExpectSetNX(RunKey, "token-3", time.Minute).SetErr(errors.New("connection refused"))

		_, err := NewRedisLocker(rdb, time.Minute).Acquire(ctx, RunKey)

		assert.EqualError(t, err, "connection refused")
	})

	t.Run("lock expired before release", func(t *testing.T) {
		fixedToken(t, "token-4")
		rdb, mock := redismock.NewClientMock()
		mock.ExpectSetNX(RunKey, "token-4", time.Minute).SetVal(true)
		mock.ExpectGet(RunKey).RedisNil()

		release, err := NewRedisLocker(rdb, time.Minute).Acquire(ctx, RunKey)
		assert.NoError(t, err)
		assert.NoError(t, release(ctx))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("lock taken over by another run", func(t *testing.T) {
		fixedToken(t, "token-5")
		rdb, mock := redismock.NewClientMock()
		mock.ExpectSetNX(RunKey, "token-5", time.Minute).SetVal(true)
		mock.ExpectGet(RunKey).SetVal("someone-else")

		release, err := NewRedisLocker(rdb, time.Minute).Acquire(ctx, RunKey)
		assert.NoError(t, err)
		assert.NoError(t, release(ctx))
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestNoopLocker(t *testing.T) {
	release, err := NewNoopLocker().Acquire(context.Background(), RunKey)
	assert.NoError(t, err)
	assert.NoError(t, release(context.Background()))
}
