package telemetry

import (
	"log/slog"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sharesync/internal/models"
)

func newTestBus() *Bus {
	return NewBus(slog.New(slog.NewTextHandler(os.Stdout, nil)))
}

func TestBus_PublishToSubscriber(t *testing.T) {
	bus := newTestBus()

	var got []Event
	bus.Subscribe(func(e Event) { got = append(got, e) })

	event := Event{
		Scope: ScopeShare,
		Status: models.SyncStatus{
			State:     models.StatePending,
			RequestID: "req-1",
			At:        time.Now(),
		},
		Meta: &EventMeta{Action: "update", TargetID: "s1"},
	}
	bus.Publish(event)

	require.Len(t, got, 1)
	assert.Equal(t, ScopeShare, got[0].Scope)
	assert.Equal(t, models.StatePending, got[0].Status.State)
	assert.Equal(t, "req-1", got[0].Status.RequestID)
	assert.Equal(t, "s1", got[0].Meta.TargetID)
}

func TestBus_FanOut(t *testing.T) {
	bus := newTestBus()

	first, second := 0, 0
	bus.Subscribe(func(Event) { first++ })
	bus.Subscribe(func(Event) { second++ })

	bus.Publish(Event{Scope: ScopeQueue, Status: models.SyncStatus{State: models.StateSuccess}})

	assert.Equal(t, 1, first)
	assert.Equal(t, 1, second)
}

func TestBus_Unsubscribe(t *testing.T) {
	bus := newTestBus()

	calls := 0
	unsubscribe := bus.Subscribe(func(Event) { calls++ })

	bus.Publish(Event{Scope: ScopeShare})
	unsubscribe()
	bus.Publish(Event{Scope: ScopeShare})

	assert.Equal(t, 1, calls, "Unsubscribed handler must not be invoked")
}

func TestBus_NoSubscribers(t *testing.T) {
	bus := newTestBus()

	// Событие без подписчиков не должно паниковать
	assert.NotPanics(t, func() {
		bus.Publish(Event{Scope: ScopeLayout, Status: models.SyncStatus{State: models.StateError}})
	})
}

func TestBus_CorrelatesRetriesByRequestID(t *testing.T) {
	bus := newTestBus()

	var requestIDs []string
	bus.Subscribe(func(e Event) { requestIDs = append(requestIDs, e.Status.RequestID) })

	// Одна логическая операция: pending → error → pending → success
	for _, state := range []models.SyncState{models.StatePending, models.StateError, models.StatePending, models.StateSuccess} {
		bus.Publish(Event{
			Scope:  ScopeShare,
			Status: models.SyncStatus{State: state, RequestID: "req-42"},
		})
	}

	require.Len(t, requestIDs, 4)
	for _, id := range requestIDs {
		assert.Equal(t, "req-42", id)
	}
}
