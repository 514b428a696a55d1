package sweeper

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/bsm/redislock"
)

var ErrLockNotObtained = errors.New("lock not obtained")

// RedisLocker блокировка через redis, чтобы при нескольких экземплярах сервиса проход выполнял только один.
type RedisLocker struct {
	client *redislock.Client
}

func NewRedisLocker(client *redislock.Client) *RedisLocker {
	return &RedisLocker{client: client}
}

//nolint:nonamedreturns
func (l *RedisLocker) Do(
	ctx context.Context,
	key string,
	ttl time.Duration,
	fn func(ctx context.Context) error,
) (err error) {
	lock, obtainErr := l.client.Obtain(ctx, key, ttl, nil)
	if obtainErr != nil {
		if errors.Is(obtainErr, redislock.ErrNotObtained) {
			return ErrLockNotObtained
		}
		return fmt.Errorf("obtaining lock %s: %w", key, obtainErr)
	}
	defer func() {
		// блокировку отпускаем даже при отмененном ctx, иначе она провисит до истечения ttl.
		releaseCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), time.Second)
		defer cancel()
		if releaseErr := lock.Release(releaseCtx); releaseErr != nil && !errors.Is(releaseErr, redislock.ErrLockNotHeld) {
			err = errors.Join(err, fmt.Errorf("releasing lock %s: %w", key, releaseErr))
		}
	}()

	return fn(ctx)
}

// LocalLocker используется без redis, когда экземпляр сервиса один.
type LocalLocker struct{}

func (LocalLocker) Do(ctx context.Context, _ string, _ time.Duration, fn func(ctx context.Context) error) error {
	return fn(ctx)
}
