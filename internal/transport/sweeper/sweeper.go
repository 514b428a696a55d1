// Package sweeper периодически переводит просроченные долги в статус overdue.
package sweeper

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/fsdevblog/tradecredit/internal/metrics"
	"github.com/sirupsen/logrus"
)

const (
	LockKey = "tradecredit:sweeper:overdue"

	defaultInterval          = time.Minute
	defaultServiceTimeout    = 30 * time.Second
	defaultLimitPerIteration = 500
)

type Processor struct {
	svs               Servicer
	locker            Locker
	l                 *logrus.Entry
	interval          time.Duration
	limitPerIteration uint
	now               func() time.Time
}

// New создает процессор. Без redis передается LocalLocker.
func New(svs Servicer, locker Locker, l *logrus.Logger) *Processor {
	loggerEntry := l.WithFields(logrus.Fields{
		"component": "sweeper",
		"module":    "processor",
	})

	return &Processor{
		svs:               svs,
		locker:            locker,
		l:                 loggerEntry,
		interval:          defaultInterval,
		limitPerIteration: defaultLimitPerIteration,
		now:               time.Now,
	}
}

// SetInterval устанавливает паузу между проходами. Фактическая пауза рассыпается на ±10%, чтобы экземпляры
// сервиса не стучались за блокировкой одновременно.
func (p *Processor) SetInterval(interval time.Duration) *Processor {
	if interval > 0 {
		p.interval = interval
	}
	return p
}

// SetLimitPerIteration устанавливает максимальное кол-во долгов, переводимых за один проход.
func (p *Processor) SetLimitPerIteration(limit uint) *Processor {
	if limit > 0 {
		p.limitPerIteration = limit
	}
	return p
}

// Run выполняет проходы до отмены контекста. Если за проход переведено ровно limitPerIteration долгов,
// следующий проход начинается сразу.
func (p *Processor) Run(ctx context.Context) {
	p.l.WithFields(logrus.Fields{
		"interval":          p.interval,
		"limitPerIteration": p.limitPerIteration,
	}).Info("Starting")

	for {
		swept, err := p.RunOnce(ctx)
		if err != nil && !errors.Is(err, ErrLockNotObtained) && !errors.Is(err, context.Canceled) {
			p.l.WithError(err).Error("sweep error")
		}

		wait := time.Duration(jitter(float64(p.interval), 0.1, 0.1))
		if err == nil && uint(swept) >= p.limitPerIteration {
			wait = 0
		}

		select {
		case <-ctx.Done():
			p.l.Info("Got stop signal, exiting...")
			return
		case <-time.After(wait):
		}
	}
}

// RunOnce выполняет один проход под блокировкой и возвращает кол-во переведенных долгов.
func (p *Processor) RunOnce(ctx context.Context) (int, error) {
	var swept int
	err := p.locker.Do(ctx, LockKey, defaultServiceTimeout, func(c context.Context) error {
		sweepCtx, cancel := context.WithTimeout(c, defaultServiceTimeout)
		defer cancel()

		dues, err := p.svs.SweepOverdue(sweepCtx, p.now(), p.limitPerIteration)
		if err != nil {
			return err //nolint:wrapcheck
		}
		swept = len(dues)
		return nil
	})

	switch {
	case err == nil:
		metrics.SweepRuns.WithLabelValues("ok").Inc()
		if swept > 0 {
			p.l.WithField("swept", swept).Info("dues moved to overdue")
		}
		return swept, nil
	case errors.Is(err, ErrLockNotObtained):
		metrics.SweepRuns.WithLabelValues("locked").Inc()
		p.l.Debug("sweep is running elsewhere")
		return 0, err
	default:
		metrics.SweepRuns.WithLabelValues("error").Inc()
		return 0, fmt.Errorf("sweep: %w", err)
	}
}

// jitter возвращает число, рассыпавшееся относительно value на случайный процент в пределах
// [1-minPercent, 1+maxPercent].
// Например, если minPercent=0.15, maxPercent=0.15, получим диапазон [0.85*value, 1.15*value].
//
// minPercent и maxPercent должны быть >= 0 (0.1 = 10%). Если указано иное, значение выставится в 0.15.
func jitter(value, minPercent, maxPercent float64) float64 {
	if minPercent < 0 || maxPercent < 0 {
		minPercent = 0.15
		maxPercent = 0.15
	}
	factor := 1 - minPercent + rand.Float64()*(minPercent+maxPercent) // nolint:gosec
	return value * factor
}
