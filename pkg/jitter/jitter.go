// Package jitter считает паузы между повторами: экспонента с ограничением сверху
// и случайной добавкой, чтобы реплики не повторяли запросы синхронно.
package jitter

import (
	"context"
	"math/rand"
	"sync"
	"time"
)

// DefaultJitter — доля случайной добавки к паузе.
const DefaultJitter = 0.5

var (
	globalRand = rand.New(rand.NewSource(time.Now().UnixNano()))
	randMutex  sync.Mutex
)

// Backoff описывает политику пауз. Нулевое значение Factor отключает джиттер.
type Backoff struct {
	Base   time.Duration
	Max    time.Duration
	Factor float64
}

// NewBackoff возвращает политику с DefaultJitter.
func NewBackoff(base, max time.Duration) Backoff {
	return Backoff{Base: base, Max: max, Factor: DefaultJitter}
}

// Delay возвращает паузу перед попыткой attempt (с нуля): base*2^attempt, не больше max,
// плюс случайная добавка в пределах [0, Factor*delay].
func (b Backoff) Delay(attempt int) time.Duration {
	return Duration(b.capped(attempt), b.Factor)
}

// Wait ждет Delay(attempt) или отмены контекста.
func (b Backoff) Wait(ctx context.Context, attempt int) error {
	t := time.NewTimer(b.Delay(attempt))
	defer t.Stop()

	select {
	case <-t.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (b Backoff) capped(attempt int) time.Duration {
	d := b.Base
	for i := 0; i < attempt; i++ {
		d *= 2
		if d >= b.Max {
			return b.Max
		}
	}
	return min(d, b.Max)
}

// Duration добавляет к d случайную величину из [0, factor*d].
func Duration(d time.Duration, factor float64) time.Duration {
	if factor <= 0 || d <= 0 {
		return d
	}

	randMutex.Lock()
	extra := globalRand.Float64() * factor * float64(d)
	randMutex.Unlock()

	return d + time.Duration(extra)
}
