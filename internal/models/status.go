package models

import "time"

// SyncState описывает фазу синхронизации логической области.
type SyncState string

const (
	StateIdle    SyncState = "idle"
	StatePending SyncState = "pending"
	StateSuccess SyncState = "success"
	StateError   SyncState = "error"
)

// SyncStatus — текущее состояние синхронизации одной области
// (например "share", "layout" или "queue").
type SyncStatus struct {
	At        time.Time `json:"at,omitzero"`
	State     SyncState `json:"state"`
	RequestID string    `json:"request_id,omitempty"`
	Message   string    `json:"message,omitempty"`
}
