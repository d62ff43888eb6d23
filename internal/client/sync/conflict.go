package sync

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/iudanet/notesync/internal/client/remote"
)

// ConflictResolver выполняет одну логическую запись объекта
// с не более чем одним повтором при конфликте версий.
type ConflictResolver struct {
	store  RemoteStore
	logger *slog.Logger
}

// NewConflictResolver creates a new conflict resolver
func NewConflictResolver(store RemoteStore, logger *slog.Logger) *ConflictResolver {
	return &ConflictResolver{store: store, logger: logger}
}

// Upsert записывает encoded по пути path и возвращает новый version tag.
//  1. expected = cachedTag, иначе текущий tag из remote
//  2. PutObject с expected
//  3. при конфликте tag перечитывается и запись повторяется один раз
//
// Содержимое никогда не сливается: повтор перезаписывает объект целиком.
func (r *ConflictResolver) Upsert(ctx context.Context, path, encoded, cachedTag string) (string, error) {
	expected := cachedTag
	if expected == "" {
		tag, err := r.store.GetVersionTag(ctx, path)
		if err != nil {
			return "", fmt.Errorf("failed to read version tag: %w", err)
		}
		expected = tag
	}

	return r.UpsertExpected(ctx, path, encoded, expected)
}

// UpsertExpected как Upsert, но expected уже прочитан вызывающим и повторно
// не запрашивается. Пустой expected означает, что объекта нет.
func (r *ConflictResolver) UpsertExpected(ctx context.Context, path, encoded, expected string) (string, error) {
	message := "Update " + path

	result, err := r.store.PutObject(ctx, path, encoded, expected, message)
	if err == nil {
		return result.SHA, nil
	}
	if !errors.Is(err, remote.ErrConflict) {
		return "", err
	}

	r.logger.Info("Version conflict, retrying with current tag", "path", path, "expected", expected)

	current, err := r.store.GetVersionTag(ctx, path)
	if err != nil {
		return "", fmt.Errorf("failed to refetch version tag after conflict: %w", err)
	}

	result, err = r.store.PutObject(ctx, path, encoded, current, message)
	if err != nil {
		return "", fmt.Errorf("retry after conflict failed: %w", err)
	}

	return result.SHA, nil
}
