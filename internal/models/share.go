package models

import (
	"time"

	"sharesync/pkg/api"
)

// Share представляет локально отображаемую запись шаблона.
// Version — монотонно возрастающий номер версии записи;
// все решения о том, какой результат считать актуальным,
// принимаются исключительно по нему.
type Share struct {
	UpdatedAt time.Time `json:"updated_at"`
	ID        string    `json:"id"`
	OwnerID   string    `json:"owner_id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	Version   int64     `json:"version"`
	Pinned    bool      `json:"pinned"`
}

// Clone возвращает глубокую копию записи.
func (s *Share) Clone() *Share {
	if s == nil {
		return nil
	}
	clone := *s
	return &clone
}

// Apply применяет patch к копии записи и возвращает её.
// Nil-поля patch не изменяют запись.
func (s *Share) Apply(patch api.SharePatch) *Share {
	clone := s.Clone()
	if clone == nil {
		clone = &Share{ID: s.ID}
	}
	if patch.Title != nil {
		clone.Title = *patch.Title
	}
	if patch.Content != nil {
		clone.Content = *patch.Content
	}
	if patch.Pinned != nil {
		clone.Pinned = *patch.Pinned
	}
	return clone
}

// FromAPI converts a wire record into the local model.
func FromAPI(share api.Share) *Share {
	return &Share{
		ID:        share.ID,
		OwnerID:   share.OwnerID,
		Title:     share.Title,
		Content:   share.Content,
		Version:   share.Version,
		Pinned:    share.Pinned,
		UpdatedAt: share.UpdatedAt,
	}
}
