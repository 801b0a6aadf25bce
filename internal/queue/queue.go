// Package queue persists write operations that could not be delivered
// to the remote store and replays them later, one at a time, under a
// bounded per-item retry budget.
//
// The queue holds at most one update per entity: a new update replaces
// any queued update for the same id, so the queue always represents
// only the latest desired state. Creates are never de-duplicated.
package queue

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"sharesync/internal/models"
	"sharesync/internal/retry"
	"sharesync/pkg/api"
)

// Schema versioning of the persisted format. The version is part of
// the storage key, so older data is migrated rather than rewritten
// in place.
const (
	namespace     = "pending_ops"
	schemaVersion = 2
)

// StorageKey возвращает ключ очереди для пользователя в текущей схеме.
func StorageKey(userID string) string {
	return fmt.Sprintf("%s_v%d_%s", namespace, schemaVersion, userOrAnon(userID))
}

// LegacyStorageKey возвращает ключ очереди в предыдущей схеме (v1).
func LegacyStorageKey(userID string) string {
	return fmt.Sprintf("%s_v1_%s", namespace, userOrAnon(userID))
}

func userOrAnon(userID string) string {
	if userID == "" {
		return "anon"
	}
	return userID
}

// Queue — durable очередь отложенных операций записи одного пользователя.
// Каждая мутация сохраняется в Store синхронно, поэтому прерванный
// процесс продолжает ровно с последнего зафиксированного состояния.
type Queue struct {
	store  Store
	logger *slog.Logger
	key    string
	legacy string
	items  []models.PendingOperation
	mu     sync.Mutex
	loaded bool
}

// New создает очередь для пользователя поверх durable-хранилища.
func New(store Store, userID string, logger *slog.Logger) *Queue {
	return &Queue{
		store:  store,
		logger: logger,
		key:    StorageKey(userID),
		legacy: LegacyStorageKey(userID),
	}
}

// EnqueueCreate добавляет операцию создания записи в конец очереди.
func (q *Queue) EnqueueCreate(ctx context.Context, req api.CreateShareRequest) (*models.PendingOperation, error) {
	q.mu.Lock()
	defer q.mu.Unlock()

	if err := q.load(ctx); err != nil {
		return nil, err
	}

	op := models.PendingOperation{
		ID:        uuid.New().String(),
		Kind:      models.OpCreate,
		EntityID:  req.ID,
		Create:    &req,
		CreatedAt: time.Now(),
		Failures:  []models.FailureRecord{},
	}
	q.items = append(q.items, op)

	if err := q.persist(ctx); err != nil {
		return nil, err
	}

	q.logger.Info("queued create operation", "op_id", op.ID, "queue_len", len(q.items))
	return &op, nil
}

// EnqueueUpdate добавляет операцию обновления записи.
// Существующая отложенная операция обновления той же записи
// вытесняется: очередь хранит только последнее желаемое состояние.
func (q *Queue) EnqueueUpdate(ctx context.Context, entityID string, patch api.SharePatch) (*models.PendingOperation, error) {
	q.mu.Lock()
	defer q.mu.Unlock()

	if err := q.load(ctx); err != nil {
		return nil, err
	}

	// Удаляем предыдущее отложенное обновление этой записи
	kept := q.items[:0]
	for _, item := range q.items {
		if item.Kind == models.OpUpdate && item.EntityID == entityID {
			q.logger.Debug("superseding queued update", "entity_id", entityID, "op_id", item.ID)
			continue
		}
		kept = append(kept, item)
	}
	q.items = kept

	op := models.PendingOperation{
		ID:        uuid.New().String(),
		Kind:      models.OpUpdate,
		EntityID:  entityID,
		Patch:     &patch,
		CreatedAt: time.Now(),
		Failures:  []models.FailureRecord{},
	}
	q.items = append(q.items, op)

	if err := q.persist(ctx); err != nil {
		return nil, err
	}

	q.logger.Info("queued update operation", "op_id", op.ID, "entity_id", entityID, "queue_len", len(q.items))
	return &op, nil
}

// Items возвращает копию очереди в порядке вставки.
func (q *Queue) Items(ctx context.Context) ([]models.PendingOperation, error) {
	q.mu.Lock()
	defer q.mu.Unlock()

	if err := q.load(ctx); err != nil {
		return nil, err
	}

	items := make([]models.PendingOperation, len(q.items))
	copy(items, q.items)
	return items, nil
}

// Len возвращает число операций, ожидающих доставки.
func (q *Queue) Len(ctx context.Context) (int, error) {
	q.mu.Lock()
	defer q.mu.Unlock()

	if err := q.load(ctx); err != nil {
		return 0, err
	}
	return len(q.items), nil
}

// Export возвращает содержимое очереди как JSON для выгрузки пользователем.
func (q *Queue) Export(ctx context.Context) ([]byte, error) {
	q.mu.Lock()
	defer q.mu.Unlock()

	if err := q.load(ctx); err != nil {
		return nil, err
	}
	return json.MarshalIndent(q.items, "", "  ")
}

// Clear удаляет все отложенные операции.
func (q *Queue) Clear(ctx context.Context) error {
	q.mu.Lock()
	defer q.mu.Unlock()

	if err := q.load(ctx); err != nil {
		return err
	}

	q.items = q.items[:0]
	return q.persist(ctx)
}

// persist синхронно сохраняет текущее состояние очереди.
// Вызывается под q.mu.
func (q *Queue) persist(ctx context.Context) error {
	data, err := json.Marshal(q.items)
	if err != nil {
		return fmt.Errorf("failed to marshal queue: %w", err)
	}
	if err := q.store.Put(ctx, q.key, data); err != nil {
		return fmt.Errorf("failed to persist queue: %w", err)
	}
	return nil
}

// ReplayOptions управляют одним проходом доставки очереди.
type ReplayOptions struct {
	// Execute доставляет одну операцию на сервер.
	Execute func(ctx context.Context, op models.PendingOperation, requestID string) error

	// OnSuccess вызывается после удаления доставленной операции.
	OnSuccess func(op models.PendingOperation)

	// OnItemFailure вызывается перед паузой между повторами операции.
	OnItemFailure func(op models.PendingOperation, delay time.Duration, err error)

	// OnPermanentFailure вызывается после исчерпания бюджета операции.
	OnPermanentFailure func(op models.PendingOperation, err error)

	MaxAttempts int
	Backoff     time.Duration
	JitterRatio float64
}

// ReplayResult — итоги одного прохода доставки.
type ReplayResult struct {
	Delivered int // успешно доставлено и удалено
	Dropped   int // удалено после исчерпания бюджета
	Remaining int // осталось в очереди (после отмены)
}

// Replay доставляет операции строго в порядке вставки, полностью
// разрешая каждую, прежде чем перейти к следующей: операция покидает
// очередь только успехом или исчерпанием бюджета попыток.
//
// Отмена ctx проверяется перед каждой операцией и во время пауз;
// необработанные операции остаются в durable-хранилище нетронутыми.
func (q *Queue) Replay(ctx context.Context, opts ReplayOptions) (*ReplayResult, error) {
	if opts.Execute == nil {
		return nil, fmt.Errorf("replay requires an Execute callback")
	}
	if opts.MaxAttempts <= 0 {
		opts.MaxAttempts = retry.DefaultAttempts
	}
	if opts.Backoff <= 0 {
		opts.Backoff = retry.DefaultBackoff
	}
	if opts.JitterRatio <= 0 {
		opts.JitterRatio = retry.DefaultJitterRatio
	}

	q.mu.Lock()
	defer q.mu.Unlock()

	if err := q.load(ctx); err != nil {
		return nil, err
	}

	result := &ReplayResult{}

	for len(q.items) > 0 {
		if err := ctx.Err(); err != nil {
			result.Remaining = len(q.items)
			return result, err
		}

		item := q.items[0]
		// Один requestID на операцию: повторы одной логической
		// операции можно сопоставить в телеметрии
		requestID := uuid.New().String()

		execErr := opts.Execute(ctx, item, requestID)
		if execErr == nil {
			q.items = q.items[1:]
			if err := q.persist(ctx); err != nil {
				return result, err
			}
			result.Delivered++
			q.logger.Info("replayed queued operation", "op_id", item.ID, "request_id", requestID)
			if opts.OnSuccess != nil {
				opts.OnSuccess(item)
			}
			continue
		}

		item.RecordFailure(time.Now(), execErr.Error(), requestID)
		delay := retry.Backoff(opts.Backoff, item.Attempts-1, opts.JitterRatio)

		if item.Attempts >= opts.MaxAttempts {
			// Бюджет исчерпан — операция навсегда покидает очередь
			q.items = q.items[1:]
			if err := q.persist(ctx); err != nil {
				return result, err
			}
			result.Dropped++
			q.logger.Warn("dropping queued operation after exhausted budget",
				"op_id", item.ID,
				"attempts", item.Attempts,
				"error", execErr)
			if opts.OnPermanentFailure != nil {
				opts.OnPermanentFailure(item, execErr)
			}
			continue
		}

		// Фиксируем неудачную попытку на месте и повторяем ту же
		// позицию после паузы — порядок per-entity сохраняется
		q.items[0] = item
		if err := q.persist(ctx); err != nil {
			return result, err
		}

		q.logger.Info("queued operation failed, retrying",
			"op_id", item.ID,
			"attempt", item.Attempts,
			"delay", delay,
			"error", execErr)
		if opts.OnItemFailure != nil {
			opts.OnItemFailure(item, delay, execErr)
		}

		if err := retry.Sleep(ctx, delay); err != nil {
			result.Remaining = len(q.items)
			return result, err
		}
	}

	return result, nil
}
