// Package clock issues strictly monotonic per-entity version numbers.
//
// Versions are derived from wall-clock milliseconds but never repeat or
// go backwards: Next returns max(now, prev+1), so the counter keeps
// increasing under clock skew and under repeated calls within one tick.
package clock

import (
	"sync"
	"time"
)

// Versioner выдаёт номера версий для записей.
type Versioner interface {
	// Next возвращает следующий номер версии, строго больший prev.
	Next(prev int64) int64
}

// Monotonic — Versioner на основе настенных часов.
type Monotonic struct {
	now  func() int64
	mu   sync.Mutex
	last int64
}

// NewMonotonic создает Versioner, использующий системное время.
func NewMonotonic() *Monotonic {
	return NewMonotonicWithNow(func() int64 {
		return time.Now().UnixMilli()
	})
}

// NewMonotonicWithNow создает Versioner с заданным источником времени.
// Используется для тестирования.
func NewMonotonicWithNow(now func() int64) *Monotonic {
	return &Monotonic{now: now}
}

// Next возвращает max(now, prev+1). Результат строго больше и prev,
// и любого значения, выданного этим Versioner ранее.
func (m *Monotonic) Next(prev int64) int64 {
	m.mu.Lock()
	defer m.mu.Unlock()

	next := m.now()
	if prev+1 > next {
		next = prev + 1
	}
	if m.last+1 > next {
		next = m.last + 1
	}
	m.last = next

	return next
}
