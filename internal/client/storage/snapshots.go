package storage

import (
	"context"

	"github.com/iudanet/notesync/internal/models"
)

//go:generate moq -out snapshots_mock.go . SnapshotStorage

// SnapshotStorage defines interface for aggregate snapshots: the todo collection and chat sessions
type SnapshotStorage interface {
	// SaveTodos replaces the todo collection snapshot, keeping its sync state
	SaveTodos(ctx context.Context, todos *models.TodoCollection) error

	// GetTodos returns the todo collection snapshot
	// Returns ErrSnapshotNotFound if nothing was saved yet
	GetTodos(ctx context.Context) (*models.TodoCollection, error)

	// UpdateTodoSyncState writes sync metadata of the todo aggregate
	UpdateTodoSyncState(ctx context.Context, state models.SyncState) error

	// SaveChatSession stores or replaces a chat session, keeping its sync state
	SaveChatSession(ctx context.Context, session *models.ChatSession) error

	// GetChatSession retrieves a chat session by ID
	// Returns ErrSnapshotNotFound if session doesn't exist
	GetChatSession(ctx context.Context, id string) (*models.ChatSession, error)

	// ListChatSessions returns all chat sessions
	ListChatSessions(ctx context.Context) ([]*models.ChatSession, error)

	// DeleteChatSession removes a chat session
	DeleteChatSession(ctx context.Context, id string) error

	// UpdateChatSyncState writes sync metadata of a chat session
	UpdateChatSyncState(ctx context.Context, id string, state models.SyncState) error
}
