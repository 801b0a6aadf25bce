package api

import "time"

// Share представляет одну запись шаблона на сервере
type Share struct {
	UpdatedAt time.Time `json:"updated_at"`
	ID        string    `json:"id"`
	OwnerID   string    `json:"owner_id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	Version   int64     `json:"version"`
	Pinned    bool      `json:"pinned"`
}

// SharePatch описывает частичное обновление записи.
// Nil-поля не изменяются.
type SharePatch struct {
	Title   *string `json:"title,omitempty"`
	Content *string `json:"content,omitempty"`
	Pinned  *bool   `json:"pinned,omitempty"`
}

// CreateShareRequest представляет запрос на создание записи
type CreateShareRequest struct {
	ID      string `json:"id,omitempty"`
	Title   string `json:"title"`
	Content string `json:"content"`
	Pinned  bool   `json:"pinned"`
}

// UpdateShareRequest представляет запрос на частичное обновление записи
type UpdateShareRequest struct {
	Patch SharePatch `json:"patch"`
}

// DeleteSharesRequest представляет запрос на удаление записей
type DeleteSharesRequest struct {
	IDs []string `json:"ids"`
}

// ListSharesResponse представляет список записей пользователя
type ListSharesResponse struct {
	Shares []Share `json:"shares"`
}
