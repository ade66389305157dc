package runlock

import (
	"context"
	"errors"
	"net/http"
	"time"

	"go-payroll/internal/shared/apperror"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// RunKey guards load runs and schema resets; they must never interleave.
const RunKey = "payroll:run-lock"

const DefaultTTL = 10 * time.Minute

var newToken = uuid.NewString

var ErrLocked = apperror.New(
	apperror.CodeConflict,
	"another load or schema reset is in progress",
	http.StatusConflict,
)

type ReleaseFunc func(ctx context.Context) error

type Locker interface {
	Acquire(ctx context.Context, key string) (ReleaseFunc, error)
}

type redisLocker struct {
	rdb redis.Cmdable
	ttl time.Duration
}

func NewRedisLocker(rdb redis.Cmdable, ttl time.Duration) Locker {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &redisLocker{rdb: rdb, ttl: ttl}
}

func (l *redisLocker) Acquire(ctx context.Context, key string) (ReleaseFunc, error) {
	token := newToken()

	// SetNX: hanya satu run yang boleh memegang key ini.
	// TTL memastikan lock hilang sendiri jika proses crash.
	ok, err := l.rdb.SetNX(ctx, key, token, l.ttl).Result()
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrLocked
	}

	return func(ctx context.Context) error {
		current, err := l.rdb.Get(ctx, key).Result()
		if errors.Is(err, redis.Nil) {
			return nil
		}
		if err != nil {
			return err
		}
		// The lock expired and another run took it over.
		if current != token {
			return nil
		}
		return l.rdb.Del(ctx, key).Err()
	}, nil
}

type noopLocker struct{}

// NewNoopLocker is used when no Redis is configured.
func NewNoopLocker() Locker {
	return noopLocker{}
}

func (noopLocker) Acquire(ctx context.Context, key string) (ReleaseFunc, error) {
	return func(context.Context) error { return nil }, nil
}
