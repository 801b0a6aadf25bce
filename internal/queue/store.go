package queue

import (
	"context"
	"errors"
)

//go:generate moq -out store_mock.go . Store

// ErrKeyNotFound возвращается, когда ключ отсутствует в хранилище.
var ErrKeyNotFound = errors.New("key not found")

// Store — durable key-value хранилище очереди.
// Значение — JSON-массив PendingOperation; ключ содержит namespace,
// версию схемы и идентификатор пользователя.
type Store interface {
	// Get возвращает значение ключа или ErrKeyNotFound.
	Get(ctx context.Context, key string) ([]byte, error)

	// Put сохраняет значение ключа. Запись должна быть durable
	// к моменту возврата.
	Put(ctx context.Context, key string, value []byte) error

	// Delete удаляет ключ. Отсутствующий ключ не является ошибкой.
	Delete(ctx context.Context, key string) error
}
