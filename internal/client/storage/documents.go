package storage

import (
	"context"

	"github.com/iudanet/notesync/internal/models"
)

//go:generate moq -out documents_mock.go . DocumentStorage

// DocumentStorage defines interface for storing local documents
type DocumentStorage interface {
	// SaveDocument stores or replaces a document
	SaveDocument(ctx context.Context, doc *models.Document) error

	// GetDocument retrieves a document by ID
	// Returns ErrDocumentNotFound if document doesn't exist
	GetDocument(ctx context.Context, id string) (*models.Document, error)

	// ListDocuments returns all documents ordered by ID
	ListDocuments(ctx context.Context) ([]*models.Document, error)

	// DeleteDocument removes a document
	// Returns ErrDocumentNotFound if document doesn't exist
	DeleteDocument(ctx context.Context, id string) error

	// UpdateSyncState writes only sync metadata of a document and clears ForceSync.
	// Content changes made since the snapshot was taken are preserved.
	UpdateSyncState(ctx context.Context, id string, state models.SyncState) error

	// MarkForceSync sets ForceSync flag so the next run uploads the document
	MarkForceSync(ctx context.Context, id string) error
}
