package boltdb

import (
	"context"
	"encoding/json"
	"fmt"

	"go.etcd.io/bbolt"

	"github.com/iudanet/notesync/internal/client/storage"
	"github.com/iudanet/notesync/internal/models"
)

// SaveDocument stores or replaces a document in BoltDB
func (s *Storage) SaveDocument(ctx context.Context, doc *models.Document) error {
	if s.db == nil {
		return storage.ErrStorageClosed
	}
	if doc.ID == "" {
		return fmt.Errorf("document id is required")
	}

	// Сериализуем документ в JSON
	data, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("failed to marshal document: %w", err)
	}

	err = s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketDocuments)
		if err := bucket.Put([]byte(doc.ID), data); err != nil {
			return fmt.Errorf("failed to save document: %w", err)
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("transaction failed: %w", err)
	}

	return nil
}

// GetDocument retrieves a document by ID
func (s *Storage) GetDocument(ctx context.Context, id string) (*models.Document, error) {
	if s.db == nil {
		return nil, storage.ErrStorageClosed
	}

	var doc *models.Document

	err := s.db.View(func(tx *bbolt.Tx) error {
		data := tx.Bucket(bucketDocuments).Get([]byte(id))
		if data == nil {
			return storage.ErrDocumentNotFound
		}

		// Десериализуем
		doc = &models.Document{}
		if err := json.Unmarshal(data, doc); err != nil {
			return fmt.Errorf("failed to unmarshal document: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return doc, nil
}

// ListDocuments returns all documents ordered by ID
func (s *Storage) ListDocuments(ctx context.Context) ([]*models.Document, error) {
	if s.db == nil {
		return nil, storage.ErrStorageClosed
	}

	docs := []*models.Document{}

	err := s.db.View(func(tx *bbolt.Tx) error {
		return tx.Bucket(bucketDocuments).ForEach(func(k, v []byte) error {
			var doc models.Document
			if err := json.Unmarshal(v, &doc); err != nil {
				return fmt.Errorf("failed to unmarshal document %s: %w", k, err)
			}
			docs = append(docs, &doc)
			return nil
		})
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list documents: %w", err)
	}

	return docs, nil
}

// DeleteDocument removes a document
func (s *Storage) DeleteDocument(ctx context.Context, id string) error {
	if s.db == nil {
		return storage.ErrStorageClosed
	}

	return s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketDocuments)
		if bucket.Get([]byte(id)) == nil {
			return storage.ErrDocumentNotFound
		}
		return bucket.Delete([]byte(id))
	})
}

// UpdateSyncState writes sync metadata of a document in a single read-modify-write transaction.
// Content, name and LastModified stay as they are in the store.
func (s *Storage) UpdateSyncState(ctx context.Context, id string, state models.SyncState) error {
	return s.updateDocument(id, func(doc *models.Document) {
		doc.ApplySyncState(state)
	})
}

// MarkForceSync sets ForceSync flag on a document
func (s *Storage) MarkForceSync(ctx context.Context, id string) error {
	return s.updateDocument(id, func(doc *models.Document) {
		doc.ForceSync = true
	})
}

func (s *Storage) updateDocument(id string, apply func(doc *models.Document)) error {
	if s.db == nil {
		return storage.ErrStorageClosed
	}

	return s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketDocuments)

		data := bucket.Get([]byte(id))
		if data == nil {
			return storage.ErrDocumentNotFound
		}

		var doc models.Document
		if err := json.Unmarshal(data, &doc); err != nil {
			return fmt.Errorf("failed to unmarshal document: %w", err)
		}

		apply(&doc)

		updated, err := json.Marshal(&doc)
		if err != nil {
			return fmt.Errorf("failed to marshal document: %w", err)
		}
		return bucket.Put([]byte(id), updated)
	})
}
