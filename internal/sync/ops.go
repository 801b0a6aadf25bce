package sync

import (
	"context"
	"fmt"
	"sort"

	"github.com/google/uuid"

	"sharesync/internal/models"
	"sharesync/internal/retry"
	"sharesync/internal/telemetry"
	"sharesync/pkg/api"
)

// LoadShares загружает записи с сервера и обновляет отображаемое
// состояние. Новый вызов отменяет предыдущую незавершённую загрузку,
// поэтому устаревший ответ никогда не перезапишет более свежие данные.
// Записи с незавершёнными локальными правками не перезаписываются.
func (c *Coordinator) LoadShares(ctx context.Context) ([]*models.Share, error) {
	requestID := uuid.New().String()

	loadCtx, cancel := context.WithCancel(ctx)
	c.mu.Lock()
	if c.loadCancel != nil {
		c.loadCancel()
	}
	c.loadCancel = cancel
	c.mu.Unlock()
	defer cancel()

	c.setStatus(telemetry.ScopeLayout, models.StatePending, requestID, "",
		&telemetry.EventMeta{Action: "load"})

	var remote []api.Share
	err := retry.Do(loadCtx, func(ctx context.Context) error {
		var listErr error
		remote, listErr = c.client.ListShares(ctx)
		return listErr
	}, c.retryOptions(requestID, "load"))
	if err != nil {
		// Отменённая загрузка была вытеснена более новой — это не отказ
		if loadCtx.Err() != nil && ctx.Err() == nil {
			return nil, fmt.Errorf("load superseded: %w", err)
		}
		c.setStatus(telemetry.ScopeLayout, models.StateError, requestID, err.Error(),
			&telemetry.EventMeta{Action: "load"})
		return nil, fmt.Errorf("failed to load shares: %w", err)
	}

	c.mu.Lock()
	if loadCtx.Err() != nil {
		// Ответ пришёл после вытеснения — отбрасываем
		c.mu.Unlock()
		return nil, fmt.Errorf("load superseded: %w", loadCtx.Err())
	}
	for _, record := range remote {
		if _, inFlight := c.inFlight[record.ID]; inFlight {
			// Локальная правка ещё в полёте — не трогаем
			continue
		}
		if record.Version < c.displayedVersion(record.ID) {
			continue
		}
		c.setDisplayed(record.ID, models.FromAPI(record))
		if record.Version > c.versions[record.ID] {
			c.versions[record.ID] = record.Version
		}
	}
	result := make([]*models.Share, 0, len(c.shares))
	for _, share := range c.shares {
		result = append(result, share.Clone())
	}
	c.mu.Unlock()

	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })

	c.setStatus(telemetry.ScopeLayout, models.StateSuccess, requestID, "",
		&telemetry.EventMeta{Action: "load"})
	return result, nil
}

// SaveShare создает запись: локально сразу, на сервере — под бюджетом
// повторов. Если бюджет исчерпан временным отказом, операция уходит
// в durable-очередь и будет доставлена позже.
func (c *Coordinator) SaveShare(ctx context.Context, req api.CreateShareRequest) (*models.Share, error) {
	requestID := uuid.New().String()
	if req.ID == "" {
		req.ID = uuid.New().String()
	}

	c.mu.Lock()
	version := c.versioner.Next(c.versions[req.ID])
	c.versions[req.ID] = version
	optimistic := &models.Share{
		ID:      req.ID,
		OwnerID: c.userID,
		Title:   req.Title,
		Content: req.Content,
		Pinned:  req.Pinned,
		Version: version,
	}
	c.setDisplayed(req.ID, optimistic)
	c.mu.Unlock()

	meta := &telemetry.EventMeta{Action: "create", TargetID: req.ID}
	c.setStatus(telemetry.ScopeShare, models.StatePending, requestID, "", meta)

	var remote *api.Share
	err := retry.Do(ctx, func(ctx context.Context) error {
		var createErr error
		remote, createErr = c.client.CreateShare(ctx, req)
		return createErr
	}, c.retryOptions(requestID, "create"))

	if err != nil {
		// Неудавшееся создание откатывается из отображаемого состояния
		c.mu.Lock()
		c.setDisplayed(req.ID, nil)
		c.mu.Unlock()

		c.setStatus(telemetry.ScopeShare, models.StateError, requestID, err.Error(), meta)
		if retry.Classify(err).Retryable() {
			if queueErr := c.enqueueCreate(ctx, req, requestID); queueErr != nil {
				c.logger.Error("failed to queue create operation", "error", queueErr, "request_id", requestID)
			}
		}
		return nil, fmt.Errorf("failed to save share: %w", err)
	}

	c.mu.Lock()
	saved := models.FromAPI(*remote)
	if saved.Version < version {
		saved.Version = version
	}
	c.setDisplayed(req.ID, saved)
	if saved.Version > c.versions[req.ID] {
		c.versions[req.ID] = saved.Version
	}
	c.mu.Unlock()

	c.setStatus(telemetry.ScopeShare, models.StateSuccess, requestID, "", meta)
	return saved.Clone(), nil
}

// UpdateShare применяет правку локально сразу и отправляет её на
// сервер. Несколько правок одной записи могут быть в полёте
// одновременно; результат сверяется по версии:
//
//   - успех более старой правки никогда не затирает отображаемый
//     эффект более новой, ещё не завершённой;
//   - отказ правки с наибольшей выданной версией откатывает состояние
//     к снимку следующей по старшинству незавершённой правки, а если
//     незавершённых не осталось — к последнему согласованному снимку.
func (c *Coordinator) UpdateShare(ctx context.Context, id string, patch api.SharePatch) (*models.Share, error) {
	requestID := uuid.New().String()

	// Выдача версии, снимок и оптимистичное применение — один
	// атомарный шаг
	c.mu.Lock()
	version := c.versioner.Next(c.versions[id])
	c.versions[id] = version

	snapshot := c.shares[id].Clone()
	entry := &inFlightEntry{version: version, snapshot: snapshot}
	c.inFlight[id] = append(c.inFlight[id], entry)

	base := c.shares[id]
	if base == nil {
		base = &models.Share{ID: id, OwnerID: c.userID}
	}
	optimistic := base.Apply(patch)
	optimistic.Version = version
	c.setDisplayed(id, optimistic)
	c.mu.Unlock()

	meta := &telemetry.EventMeta{Action: "update", TargetID: id}
	c.setStatus(telemetry.ScopeShare, models.StatePending, requestID, "", meta)

	var remote *api.Share
	err := retry.Do(ctx, func(ctx context.Context) error {
		var updateErr error
		remote, updateErr = c.client.UpdateShare(ctx, id, patch)
		return updateErr
	}, c.retryOptions(requestID, "update"))

	if err != nil {
		c.reconcileFailure(id, entry)
		c.setStatus(telemetry.ScopeShare, models.StateError, requestID, err.Error(), meta)
		if retry.Classify(err).Retryable() {
			if queueErr := c.enqueueUpdate(ctx, id, patch, requestID); queueErr != nil {
				c.logger.Error("failed to queue update operation", "error", queueErr, "request_id", requestID)
			}
		}
		return nil, fmt.Errorf("failed to update share: %w", err)
	}

	result := c.reconcileSuccess(id, version, remote)
	c.setStatus(telemetry.ScopeShare, models.StateSuccess, requestID, "", meta)
	return result, nil
}

// reconcileSuccess сверяет успешный результат правки по версии.
// Возвращает актуальное отображаемое состояние записи.
func (c *Coordinator) reconcileSuccess(id string, version int64, remote *api.Share) *models.Share {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.removeEntry(id, version)

	_, hasPending := maxPendingVersion(c.inFlight[id])
	isMaxIssued := version == c.versions[id]

	// Более старый успех не должен затирать ни эффект более новой
	// незавершённой правки, ни уже согласованный более новый результат
	if (isMaxIssued || !hasPending) && c.displayedVersion(id) <= version {
		reconciled := models.FromAPI(*remote)
		reconciled.Version = version
		c.setDisplayed(id, reconciled)
	}

	// Оставшиеся отказавшие правки больше не понадобятся как цели
	// отката — согласована более новая версия
	if !hasPending {
		delete(c.inFlight, id)
	}

	return c.shares[id].Clone()
}

// reconcileFailure откатывает отображаемое состояние после отказа
// правки, не регрессируя его ниже уже согласованных версий.
//
// Отказавшая правка остаётся в списке: её снимок — цель отката для
// отказов более новых правок. Список сбрасывается целиком, когда
// незавершённых правок не остаётся.
func (c *Coordinator) reconcileFailure(id string, failed *inFlightEntry) {
	c.mu.Lock()
	defer c.mu.Unlock()

	failed.failed = true
	entries := c.inFlight[id]

	maxPending, hasPending := maxPendingVersion(entries)

	switch {
	case !hasPending:
		// Незавершённых правок не осталось: откат к снимку самой
		// ранней из оставшихся (все они отказавшие), затем список
		// сбрасывается целиком
		var lowest *inFlightEntry
		for _, e := range entries {
			if lowest == nil || e.version < lowest.version {
				lowest = e
			}
		}
		if lowest != nil && c.displayedVersion(id) <= failed.version {
			c.setDisplayed(id, lowest.snapshot)
		}
		delete(c.inFlight, id)

	case failed.version > maxPending:
		// Отказала правка со старшей версией: показывать её
		// оптимистичный эффект больше нельзя — откатываемся к снимку
		// следующей по старшинству незавершённой правки
		if c.displayedVersion(id) <= failed.version {
			for _, e := range entries {
				if e.version == maxPending {
					c.setDisplayed(id, e.snapshot)
					break
				}
			}
		}

	default:
		// В полёте есть более новая правка — она уже вытеснила
		// отказавшую, состояние не трогаем
	}
}

// DeleteShare удаляет запись: локально сразу, на сервере — под
// бюджетом повторов. Отказ возвращает запись на место; удаления
// в offline-очередь не попадают.
func (c *Coordinator) DeleteShare(ctx context.Context, id string) error {
	requestID := uuid.New().String()

	c.mu.Lock()
	removed := c.shares[id].Clone()
	c.setDisplayed(id, nil)
	c.mu.Unlock()

	meta := &telemetry.EventMeta{Action: "delete", TargetID: id}
	c.setStatus(telemetry.ScopeShare, models.StatePending, requestID, "", meta)

	err := retry.Do(ctx, func(ctx context.Context) error {
		return c.client.DeleteShares(ctx, []string{id})
	}, c.retryOptions(requestID, "delete"))
	if err != nil {
		if removed != nil {
			c.mu.Lock()
			c.setDisplayed(id, removed)
			c.mu.Unlock()
		}
		c.setStatus(telemetry.ScopeShare, models.StateError, requestID, err.Error(), meta)
		return fmt.Errorf("failed to delete share: %w", err)
	}

	c.setStatus(telemetry.ScopeShare, models.StateSuccess, requestID, "", meta)
	return nil
}

// DeleteAll удаляет все записи пользователя.
func (c *Coordinator) DeleteAll(ctx context.Context) error {
	requestID := uuid.New().String()

	c.mu.Lock()
	removed := make(map[string]*models.Share, len(c.shares))
	ids := make([]string, 0, len(c.shares))
	for id, share := range c.shares {
		removed[id] = share
		ids = append(ids, id)
	}
	c.shares = make(map[string]*models.Share)
	c.mu.Unlock()

	if len(ids) == 0 {
		return nil
	}
	sort.Strings(ids)

	meta := &telemetry.EventMeta{Action: "delete_all"}
	c.setStatus(telemetry.ScopeLayout, models.StatePending, requestID, "", meta)

	err := retry.Do(ctx, func(ctx context.Context) error {
		return c.client.DeleteShares(ctx, ids)
	}, c.retryOptions(requestID, "delete_all"))
	if err != nil {
		c.mu.Lock()
		for id, share := range removed {
			if _, exists := c.shares[id]; !exists {
				c.shares[id] = share
			}
		}
		c.mu.Unlock()
		c.setStatus(telemetry.ScopeLayout, models.StateError, requestID, err.Error(), meta)
		return fmt.Errorf("failed to delete all shares: %w", err)
	}

	c.setStatus(telemetry.ScopeLayout, models.StateSuccess, requestID, "", meta)
	return nil
}

// TogglePin переключает закрепление записи. Это простая оптимистичная
// операция без version-fencing: при отказе флаг возвращается обратно.
func (c *Coordinator) TogglePin(ctx context.Context, id string) error {
	requestID := uuid.New().String()

	c.mu.Lock()
	share := c.shares[id]
	if share == nil {
		c.mu.Unlock()
		return fmt.Errorf("share %q not found", id)
	}
	pinned := !share.Pinned
	share.Pinned = pinned
	c.mu.Unlock()

	meta := &telemetry.EventMeta{Action: "toggle_pin", TargetID: id}
	c.setStatus(telemetry.ScopeShare, models.StatePending, requestID, "", meta)

	err := retry.Do(ctx, func(ctx context.Context) error {
		_, updateErr := c.client.UpdateShare(ctx, id, api.SharePatch{Pinned: &pinned})
		return updateErr
	}, c.retryOptions(requestID, "toggle_pin"))
	if err != nil {
		c.mu.Lock()
		if current := c.shares[id]; current != nil {
			current.Pinned = !pinned
		}
		c.mu.Unlock()
		c.setStatus(telemetry.ScopeShare, models.StateError, requestID, err.Error(), meta)
		return fmt.Errorf("failed to toggle pin: %w", err)
	}

	c.setStatus(telemetry.ScopeShare, models.StateSuccess, requestID, "", meta)
	return nil
}
