package boltdb

import (
	"context"
	"encoding/json"
	"fmt"

	"go.etcd.io/bbolt"

	"github.com/iudanet/notesync/internal/client/storage"
	"github.com/iudanet/notesync/internal/models"
)

const (
	keyTodos = "todos"
)

// SaveTodos replaces the todo collection snapshot.
// Если у нового снимка нет sync-метаданных, сохраняются прежние.
func (s *Storage) SaveTodos(ctx context.Context, todos *models.TodoCollection) error {
	if s.db == nil {
		return storage.ErrStorageClosed
	}

	return s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketSnapshots)

		snapshot := *todos
		if snapshot.Sync == nil {
			if existing := bucket.Get([]byte(keyTodos)); existing != nil {
				var prev models.TodoCollection
				if err := json.Unmarshal(existing, &prev); err != nil {
					return fmt.Errorf("failed to unmarshal todos: %w", err)
				}
				snapshot.Sync = prev.Sync
			}
		}

		data, err := json.Marshal(&snapshot)
		if err != nil {
			return fmt.Errorf("failed to marshal todos: %w", err)
		}
		if err := bucket.Put([]byte(keyTodos), data); err != nil {
			return fmt.Errorf("failed to save todos: %w", err)
		}
		return nil
	})
}

// GetTodos returns the todo collection snapshot
func (s *Storage) GetTodos(ctx context.Context) (*models.TodoCollection, error) {
	if s.db == nil {
		return nil, storage.ErrStorageClosed
	}

	var todos *models.TodoCollection

	err := s.db.View(func(tx *bbolt.Tx) error {
		data := tx.Bucket(bucketSnapshots).Get([]byte(keyTodos))
		if data == nil {
			return storage.ErrSnapshotNotFound
		}

		todos = &models.TodoCollection{}
		if err := json.Unmarshal(data, todos); err != nil {
			return fmt.Errorf("failed to unmarshal todos: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return todos, nil
}

// UpdateTodoSyncState writes sync metadata of the todo aggregate
func (s *Storage) UpdateTodoSyncState(ctx context.Context, state models.SyncState) error {
	if s.db == nil {
		return storage.ErrStorageClosed
	}

	return s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketSnapshots)

		data := bucket.Get([]byte(keyTodos))
		if data == nil {
			return storage.ErrSnapshotNotFound
		}

		var todos models.TodoCollection
		if err := json.Unmarshal(data, &todos); err != nil {
			return fmt.Errorf("failed to unmarshal todos: %w", err)
		}

		todos.Sync = &state

		updated, err := json.Marshal(&todos)
		if err != nil {
			return fmt.Errorf("failed to marshal todos: %w", err)
		}
		return bucket.Put([]byte(keyTodos), updated)
	})
}

// SaveChatSession stores or replaces a chat session.
// Если у сессии нет sync-метаданных, сохраняются прежние.
func (s *Storage) SaveChatSession(ctx context.Context, session *models.ChatSession) error {
	if s.db == nil {
		return storage.ErrStorageClosed
	}
	if session.ID == "" {
		return fmt.Errorf("chat session id is required")
	}

	return s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketChats)

		snapshot := *session
		if snapshot.Sync == nil {
			if existing := bucket.Get([]byte(session.ID)); existing != nil {
				var prev models.ChatSession
				if err := json.Unmarshal(existing, &prev); err != nil {
					return fmt.Errorf("failed to unmarshal chat session: %w", err)
				}
				snapshot.Sync = prev.Sync
			}
		}

		data, err := json.Marshal(&snapshot)
		if err != nil {
			return fmt.Errorf("failed to marshal chat session: %w", err)
		}
		if err := bucket.Put([]byte(session.ID), data); err != nil {
			return fmt.Errorf("failed to save chat session: %w", err)
		}
		return nil
	})
}

// GetChatSession retrieves a chat session by ID
func (s *Storage) GetChatSession(ctx context.Context, id string) (*models.ChatSession, error) {
	if s.db == nil {
		return nil, storage.ErrStorageClosed
	}

	var session *models.ChatSession

	err := s.db.View(func(tx *bbolt.Tx) error {
		data := tx.Bucket(bucketChats).Get([]byte(id))
		if data == nil {
			return storage.ErrSnapshotNotFound
		}

		session = &models.ChatSession{}
		if err := json.Unmarshal(data, session); err != nil {
			return fmt.Errorf("failed to unmarshal chat session: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return session, nil
}

// ListChatSessions returns all chat sessions
func (s *Storage) ListChatSessions(ctx context.Context) ([]*models.ChatSession, error) {
	if s.db == nil {
		return nil, storage.ErrStorageClosed
	}

	sessions := []*models.ChatSession{}

	err := s.db.View(func(tx *bbolt.Tx) error {
		return tx.Bucket(bucketChats).ForEach(func(k, v []byte) error {
			var session models.ChatSession
			if err := json.Unmarshal(v, &session); err != nil {
				return fmt.Errorf("failed to unmarshal chat session %s: %w", k, err)
			}
			sessions = append(sessions, &session)
			return nil
		})
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list chat sessions: %w", err)
	}

	return sessions, nil
}

// DeleteChatSession removes a chat session
func (s *Storage) DeleteChatSession(ctx context.Context, id string) error {
	if s.db == nil {
		return storage.ErrStorageClosed
	}

	return s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketChats)
		if bucket.Get([]byte(id)) == nil {
			return storage.ErrSnapshotNotFound
		}
		return bucket.Delete([]byte(id))
	})
}

// UpdateChatSyncState writes sync metadata of a chat session
func (s *Storage) UpdateChatSyncState(ctx context.Context, id string, state models.SyncState) error {
	if s.db == nil {
		return storage.ErrStorageClosed
	}

	return s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketChats)

		data := bucket.Get([]byte(id))
		if data == nil {
			return storage.ErrSnapshotNotFound
		}

		var session models.ChatSession
		if err := json.Unmarshal(data, &session); err != nil {
			return fmt.Errorf("failed to unmarshal chat session: %w", err)
		}

		session.Sync = &state

		updated, err := json.Marshal(&session)
		if err != nil {
			return fmt.Errorf("failed to marshal chat session: %w", err)
		}
		return bucket.Put([]byte(id), updated)
	})
}
