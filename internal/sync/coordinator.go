// Package sync keeps locally edited share records consistent with the
// remote store across unreliable network conditions.
//
// Edits are applied optimistically: the displayed state changes first,
// the remote write follows under a bounded retry budget. Several edits
// to one entity may be in flight at once; completions are reconciled
// by a per-entity monotonic version, so a stale completion can never
// overwrite the effect of a newer edit, regardless of arrival order.
// Writes that exhaust their budget on a transient failure are handed
// to the durable offline queue for later replay.
package sync

import (
	"context"
	"log/slog"
	"sync"
	"time"

	httpClient "sharesync/internal/client/api"
	"sharesync/internal/clock"
	"sharesync/internal/models"
	"sharesync/internal/queue"
	"sharesync/internal/retry"
	"sharesync/internal/telemetry"
)

// inFlightEntry — одна незавершённая правка записи.
// snapshot — отображаемое состояние на момент начала правки
// (nil, если записи ещё не было).
type inFlightEntry struct {
	snapshot *models.Share
	version  int64
	failed   bool
}

// Config собирает зависимости координатора.
type Config struct {
	Client    httpClient.ClientAPI
	Queue     *queue.Queue
	Bus       *telemetry.Bus
	Versioner clock.Versioner
	Logger    *slog.Logger
	UserID    string
	Retry     retry.Options
}

// Coordinator владеет отображаемым состоянием записей, счётчиками
// версий и списками незавершённых правок. Всё состояние принадлежит
// экземпляру (создаётся на сессию пользователя) и меняется только
// целыми шагами под одним мьютексом.
type Coordinator struct {
	client    httpClient.ClientAPI
	queue     *queue.Queue
	bus       *telemetry.Bus
	versioner clock.Versioner
	logger    *slog.Logger
	userID    string
	retryOpts retry.Options

	mu         sync.Mutex
	shares     map[string]*models.Share
	versions   map[string]int64
	inFlight   map[string][]*inFlightEntry
	statuses   map[string]models.SyncStatus
	loadCancel context.CancelFunc
}

// NewCoordinator создает координатор для одной пользовательской сессии.
func NewCoordinator(cfg Config) *Coordinator {
	if cfg.Versioner == nil {
		cfg.Versioner = clock.NewMonotonic()
	}
	if cfg.Logger == nil {
		cfg.Logger = slog.Default()
	}
	return &Coordinator{
		client:    cfg.Client,
		queue:     cfg.Queue,
		bus:       cfg.Bus,
		versioner: cfg.Versioner,
		logger:    cfg.Logger,
		userID:    cfg.UserID,
		retryOpts: cfg.Retry,
		shares:    make(map[string]*models.Share),
		versions:  make(map[string]int64),
		inFlight:  make(map[string][]*inFlightEntry),
		statuses:  make(map[string]models.SyncStatus),
	}
}

// Shares возвращает копию отображаемого состояния всех записей.
func (c *Coordinator) Shares() []*models.Share {
	c.mu.Lock()
	defer c.mu.Unlock()

	result := make([]*models.Share, 0, len(c.shares))
	for _, share := range c.shares {
		result = append(result, share.Clone())
	}
	return result
}

// Share возвращает отображаемое состояние одной записи или nil.
func (c *Coordinator) Share(id string) *models.Share {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.shares[id].Clone()
}

// Status возвращает текущее состояние синхронизации области.
func (c *Coordinator) Status(scope string) models.SyncStatus {
	c.mu.Lock()
	defer c.mu.Unlock()

	status, ok := c.statuses[scope]
	if !ok {
		return models.SyncStatus{State: models.StateIdle}
	}
	return status
}

// PendingQueueSize возвращает число операций в offline-очереди.
func (c *Coordinator) PendingQueueSize(ctx context.Context) (int, error) {
	return c.queue.Len(ctx)
}

// setStatus фиксирует переход состояния области и публикует событие.
func (c *Coordinator) setStatus(scope string, state models.SyncState, requestID, message string, meta *telemetry.EventMeta) {
	status := models.SyncStatus{
		State:     state,
		RequestID: requestID,
		Message:   message,
		At:        time.Now(),
	}

	c.mu.Lock()
	c.statuses[scope] = status
	c.mu.Unlock()

	if meta != nil && meta.UserID == "" {
		meta.UserID = c.userID
	}
	if c.bus != nil {
		c.bus.Publish(telemetry.Event{Scope: scope, Status: status, Meta: meta})
	}
}

// retryOptions возвращает опции повторов для одной логической операции.
func (c *Coordinator) retryOptions(requestID, action string) retry.Options {
	opts := c.retryOpts
	opts.RequestID = requestID
	opts.OnRetry = func(info retry.RetryInfo) {
		c.logger.Warn("retrying remote call",
			"action", action,
			"attempt", info.Attempt,
			"delay", info.Delay,
			"reason", info.Reason,
			"request_id", info.RequestID,
			"error", info.Err)
	}
	return opts
}

// maxPendingVersion возвращает наибольшую версию среди незавершённых
// правок записи и признак того, что такие правки есть.
func maxPendingVersion(entries []*inFlightEntry) (int64, bool) {
	var max int64
	found := false
	for _, e := range entries {
		if !e.failed && e.version > max {
			max = e.version
			found = true
		}
	}
	return max, found
}

// removeEntry удаляет правку из списка по версии. Вызывается под c.mu.
func (c *Coordinator) removeEntry(id string, version int64) {
	entries := c.inFlight[id]
	for i, e := range entries {
		if e.version == version {
			c.inFlight[id] = append(entries[:i], entries[i+1:]...)
			break
		}
	}
	if len(c.inFlight[id]) == 0 {
		delete(c.inFlight, id)
	}
}

// setDisplayed заменяет отображаемое состояние записи.
// nil удаляет запись. Вызывается под c.mu.
func (c *Coordinator) setDisplayed(id string, share *models.Share) {
	if share == nil {
		delete(c.shares, id)
		return
	}
	c.shares[id] = share
}

// displayedVersion возвращает версию отображаемого состояния записи
// (0, если записи нет). Вызывается под c.mu.
func (c *Coordinator) displayedVersion(id string) int64 {
	if share, ok := c.shares[id]; ok {
		return share.Version
	}
	return 0
}
