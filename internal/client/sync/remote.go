package sync

import (
	"context"

	"github.com/iudanet/notesync/internal/client/remote"
)

//go:generate moq -out remote_mock.go . RemoteStore

// RemoteStore операции удалённого хранилища, которые нужны движку
type RemoteStore interface {
	// Configured сообщает, заданы ли учётные данные
	Configured() bool

	// GetVersionTag возвращает sha объекта или "", если объекта нет
	GetVersionTag(ctx context.Context, path string) (string, error)

	// PutObject создает или обновляет объект с проверкой версии
	PutObject(ctx context.Context, path, encoded, expectedTag, message string) (*remote.PutResult, error)

	// ListObjects возвращает файлы директории
	ListObjects(ctx context.Context, prefix string) ([]remote.ObjectInfo, error)

	// EnsureContainer создает родительскую директорию объекта (best-effort)
	EnsureContainer(ctx context.Context, path string)
}

var _ RemoteStore = (*remote.Client)(nil)
