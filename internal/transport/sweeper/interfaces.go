package sweeper

//go:generate mockgen -source=interfaces.go -destination=mocks/mocks.go -package=mocks

import (
	"context"
	"time"

	"github.com/fsdevblog/tradecredit/internal/domain"
)

type Servicer interface {
	SweepOverdue(ctx context.Context, now time.Time, limit uint) ([]domain.DueEntry, error)
}

// Locker распределенная блокировка. Do выполняет fn, удерживая блокировку key не дольше ttl. Если блокировка
// занята, fn не вызывается и возвращается ErrLockNotObtained.
type Locker interface {
	Do(ctx context.Context, key string, ttl time.Duration, fn func(ctx context.Context) error) error
}
