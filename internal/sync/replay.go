package sync

import (
	"context"
	"fmt"
	"time"

	"sharesync/internal/models"
	"sharesync/internal/queue"
	"sharesync/internal/telemetry"
	"sharesync/pkg/api"
)

// enqueueCreate откладывает создание записи в durable-очередь.
func (c *Coordinator) enqueueCreate(ctx context.Context, req api.CreateShareRequest, requestID string) error {
	op, err := c.queue.EnqueueCreate(ctx, req)
	if err != nil {
		return err
	}
	c.publishQueued(ctx, op, requestID)
	return nil
}

// enqueueUpdate откладывает обновление записи в durable-очередь.
// Предыдущее отложенное обновление той же записи вытесняется.
func (c *Coordinator) enqueueUpdate(ctx context.Context, entityID string, patch api.SharePatch, requestID string) error {
	op, err := c.queue.EnqueueUpdate(ctx, entityID, patch)
	if err != nil {
		return err
	}
	c.publishQueued(ctx, op, requestID)
	return nil
}

func (c *Coordinator) publishQueued(ctx context.Context, op *models.PendingOperation, requestID string) {
	size, err := c.queue.Len(ctx)
	if err != nil {
		size = -1
	}
	c.setStatus(telemetry.ScopeQueue, models.StatePending, requestID,
		fmt.Sprintf("%d operation(s) awaiting delivery", size),
		&telemetry.EventMeta{Action: "enqueue_" + op.Kind, TargetID: op.EntityID})
}

// ReplayCallbacks — необязательные хуки для UI-индикаторов доставки.
type ReplayCallbacks struct {
	OnSuccess     func(op models.PendingOperation)
	OnItemFailure func(op models.PendingOperation, delay time.Duration, err error)
}

// ReplayQueue доставляет offline-очередь на сервер: по одной операции,
// строго в порядке вставки, с собственным бюджетом попыток на операцию.
// Вызывается при восстановлении связи или вручную по запросу
// пользователя.
func (c *Coordinator) ReplayQueue(ctx context.Context, callbacks ReplayCallbacks) (*queue.ReplayResult, error) {
	result, err := c.queue.Replay(ctx, queue.ReplayOptions{
		MaxAttempts: c.retryOpts.Attempts,
		Backoff:     c.retryOpts.Backoff,
		JitterRatio: c.retryOpts.JitterRatio,
		Execute: func(ctx context.Context, op models.PendingOperation, requestID string) error {
			return c.executePending(ctx, op, requestID)
		},
		OnSuccess: func(op models.PendingOperation) {
			c.setStatus(telemetry.ScopeQueue, models.StateSuccess, "",
				fmt.Sprintf("delivered %s %s", op.Kind, op.EntityID),
				&telemetry.EventMeta{Action: "replay_" + op.Kind, TargetID: op.EntityID})
			if callbacks.OnSuccess != nil {
				callbacks.OnSuccess(op)
			}
		},
		OnItemFailure: func(op models.PendingOperation, delay time.Duration, err error) {
			requestID := ""
			if len(op.Failures) > 0 {
				requestID = op.Failures[len(op.Failures)-1].RequestID
			}
			c.setStatus(telemetry.ScopeQueue, models.StatePending, requestID,
				fmt.Sprintf("attempt %d failed, retrying in %s", op.Attempts, delay),
				&telemetry.EventMeta{Action: "replay_retry", TargetID: op.EntityID})
			if callbacks.OnItemFailure != nil {
				callbacks.OnItemFailure(op, delay, err)
			}
		},
		OnPermanentFailure: func(op models.PendingOperation, err error) {
			c.logger.Error("dropping pending operation permanently",
				"op_id", op.ID,
				"kind", op.Kind,
				"entity_id", op.EntityID,
				"error", err)
			c.setStatus(telemetry.ScopeQueue, models.StateError, "",
				fmt.Sprintf("dropped %s after %d attempts: %v", op.Kind, op.Attempts, err),
				&telemetry.EventMeta{Action: "replay_dropped", TargetID: op.EntityID})
		},
	})
	if err != nil {
		return result, fmt.Errorf("queue replay interrupted: %w", err)
	}

	if result.Delivered > 0 || result.Dropped > 0 {
		c.logger.Info("queue replay finished",
			"delivered", result.Delivered,
			"dropped", result.Dropped,
			"remaining", result.Remaining)
	}
	return result, nil
}

// executePending доставляет одну отложенную операцию. Один вызов —
// одна попытка: бюджетом и паузами управляет сама очередь.
func (c *Coordinator) executePending(ctx context.Context, op models.PendingOperation, requestID string) error {
	switch op.Kind {
	case models.OpCreate:
		if op.Create == nil {
			return fmt.Errorf("create operation %s has no payload", op.ID)
		}
		remote, err := c.client.CreateShare(ctx, *op.Create)
		if err != nil {
			return err
		}
		c.absorbReplayed(remote)
		return nil

	case models.OpUpdate:
		if op.Patch == nil {
			return fmt.Errorf("update operation %s has no patch", op.ID)
		}
		remote, err := c.client.UpdateShare(ctx, op.EntityID, *op.Patch)
		if err != nil {
			return err
		}
		c.absorbReplayed(remote)
		return nil

	default:
		return fmt.Errorf("unknown operation kind %q", op.Kind)
	}
}

// absorbReplayed обновляет отображаемое состояние результатом доставки
// отложенной операции. Запись с незавершёнными локальными правками
// не трогается — её согласует version-fencing.
func (c *Coordinator) absorbReplayed(remote *api.Share) {
	if remote == nil {
		return
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if _, inFlight := c.inFlight[remote.ID]; inFlight {
		return
	}
	if remote.Version < c.displayedVersion(remote.ID) {
		return
	}
	c.setDisplayed(remote.ID, models.FromAPI(*remote))
	if remote.Version > c.versions[remote.ID] {
		c.versions[remote.ID] = remote.Version
	}
}
