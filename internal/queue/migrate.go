package queue

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"sharesync/internal/models"
	"sharesync/pkg/api"
)

// legacyOperation — форма записи схемы v1: без счётчика попыток
// и журнала ошибок, payload хранится сырым JSON, время — unix-секундами.
type legacyOperation struct {
	ID        string          `json:"id"`
	Kind      string          `json:"kind"`
	EntityID  string          `json:"entity_id,omitempty"`
	Payload   json.RawMessage `json:"payload"`
	CreatedAt int64           `json:"created_at"`
}

// load лениво читает очередь из хранилища. Если ключа текущей схемы
// нет, но существует ключ v1, записи переносятся в новую форму:
// нечитаемые элементы отбрасываются, результат сохраняется под новым
// ключом, старый ключ удаляется. Вызывается под q.mu.
func (q *Queue) load(ctx context.Context) error {
	if q.loaded {
		return nil
	}

	data, err := q.store.Get(ctx, q.key)
	switch {
	case err == nil:
		if err := json.Unmarshal(data, &q.items); err != nil {
			return fmt.Errorf("failed to decode queue: %w", err)
		}
		q.loaded = true
		return nil
	case errors.Is(err, ErrKeyNotFound):
		// Текущей схемы нет — пробуем мигрировать v1
	default:
		return fmt.Errorf("failed to read queue: %w", err)
	}

	legacyData, err := q.store.Get(ctx, q.legacy)
	if errors.Is(err, ErrKeyNotFound) {
		// Очереди никогда не было — это не ошибка
		q.items = nil
		q.loaded = true
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to read legacy queue: %w", err)
	}

	q.items = migrateLegacy(legacyData)
	if err := q.persist(ctx); err != nil {
		return err
	}
	if err := q.store.Delete(ctx, q.legacy); err != nil {
		return fmt.Errorf("failed to delete legacy queue key: %w", err)
	}

	q.logger.Info("migrated offline queue to current schema",
		"migrated", len(q.items),
		"from", q.legacy,
		"to", q.key)
	q.loaded = true
	return nil
}

// migrateLegacy переводит записи v1 в текущую форму.
// Нечитаемые записи отбрасываются без ошибки.
func migrateLegacy(data []byte) []models.PendingOperation {
	var legacy []legacyOperation
	if err := json.Unmarshal(data, &legacy); err != nil {
		return nil
	}

	migrated := make([]models.PendingOperation, 0, len(legacy))
	for _, old := range legacy {
		op := models.PendingOperation{
			ID:        old.ID,
			Kind:      old.Kind,
			EntityID:  old.EntityID,
			CreatedAt: time.Unix(old.CreatedAt, 0),
			Failures:  []models.FailureRecord{},
		}

		switch old.Kind {
		case models.OpCreate:
			var req api.CreateShareRequest
			if err := json.Unmarshal(old.Payload, &req); err != nil {
				continue
			}
			op.Create = &req
		case models.OpUpdate:
			var patch api.SharePatch
			if err := json.Unmarshal(old.Payload, &patch); err != nil || old.EntityID == "" {
				continue
			}
			op.Patch = &patch
		default:
			continue
		}

		migrated = append(migrated, op)
	}

	return migrated
}
