package models

import (
	"time"

	"sharesync/pkg/api"
)

// Kinds of durable pending operations.
const (
	OpCreate = "create"
	OpUpdate = "update"
)

// MaxFailureRecords ограничивает журнал ошибок одной операции.
// Старые записи вытесняются первыми.
const MaxFailureRecords = 5

// FailureRecord описывает одну неудачную попытку доставки операции.
type FailureRecord struct {
	At        time.Time `json:"at"`
	Message   string    `json:"message"`
	RequestID string    `json:"request_id,omitempty"`
}

// PendingOperation — одна операция записи, ожидающая доставки на сервер.
// Хранится в durable-очереди между запусками клиента.
type PendingOperation struct {
	CreatedAt     time.Time       `json:"created_at"`
	LastAttemptAt *time.Time      `json:"last_attempt_at,omitempty"`
	ID            string          `json:"id"`
	Kind          string          `json:"kind"`
	EntityID      string          `json:"entity_id,omitempty"`
	LastError     string          `json:"last_error,omitempty"`
	Create        *api.CreateShareRequest `json:"create,omitempty"`
	Patch         *api.SharePatch `json:"patch,omitempty"`
	Failures      []FailureRecord `json:"failures"`
	Attempts      int             `json:"attempts"`
}

// RecordFailure регистрирует неудачную попытку: увеличивает счётчик,
// обновляет last_error и дописывает запись в ограниченный журнал.
func (op *PendingOperation) RecordFailure(at time.Time, message, requestID string) {
	op.Attempts++
	op.LastError = message
	op.LastAttemptAt = &at
	op.Failures = append(op.Failures, FailureRecord{
		At:        at,
		Message:   message,
		RequestID: requestID,
	})
	if len(op.Failures) > MaxFailureRecords {
		op.Failures = op.Failures[len(op.Failures)-MaxFailureRecords:]
	}
}
