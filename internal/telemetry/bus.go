// Package telemetry fans sync state transitions out to subscribers.
//
// Every write attempt, direct or replayed from the offline queue,
// reports pending/success/error events tagged with a request id so
// retries of one logical operation can be correlated downstream.
package telemetry

import (
	"log/slog"
	"sync"

	"sharesync/internal/models"
)

// Telemetry scopes used by the sync engine.
const (
	ScopeShare  = "share"
	ScopeLayout = "layout"
	ScopeQueue  = "queue"
)

// EventMeta содержит дополнительный контекст события.
type EventMeta struct {
	Action   string `json:"action,omitempty"`
	TargetID string `json:"target_id,omitempty"`
	UserID   string `json:"user_id,omitempty"`
}

// Event — одно событие изменения состояния синхронизации.
type Event struct {
	Scope  string            `json:"scope"`
	Status models.SyncStatus `json:"status"`
	Meta   *EventMeta        `json:"meta,omitempty"`
}

// Bus доставляет события всем подписчикам синхронно.
// Подписчики не должны блокироваться.
type Bus struct {
	logger *slog.Logger
	subs   map[int]func(Event)
	mu     sync.RWMutex
	nextID int
}

// NewBus создает пустую шину событий.
func NewBus(logger *slog.Logger) *Bus {
	return &Bus{
		logger: logger,
		subs:   make(map[int]func(Event)),
	}
}

// Subscribe регистрирует подписчика и возвращает функцию отписки.
func (b *Bus) Subscribe(fn func(Event)) func() {
	b.mu.Lock()
	defer b.mu.Unlock()

	id := b.nextID
	b.nextID++
	b.subs[id] = fn

	return func() {
		b.mu.Lock()
		defer b.mu.Unlock()
		delete(b.subs, id)
	}
}

// Publish рассылает событие всем текущим подписчикам.
// Событие без подписчиков просто пишется в debug-лог.
func (b *Bus) Publish(event Event) {
	b.mu.RLock()
	fns := make([]func(Event), 0, len(b.subs))
	for _, fn := range b.subs {
		fns = append(fns, fn)
	}
	b.mu.RUnlock()

	if len(fns) == 0 && b.logger != nil {
		b.logger.Debug("telemetry event dropped, no subscribers",
			"scope", event.Scope,
			"state", event.Status.State,
			"request_id", event.Status.RequestID)
		return
	}

	for _, fn := range fns {
		fn(event)
	}
}
