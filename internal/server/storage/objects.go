package storage

import (
	"context"

	"github.com/iudanet/notesync/internal/models"
)

//go:generate moq -out objects_mock.go . ObjectStorage

// ObjectStorage defines interface for contents persistence.
// Objects are addressed by (repo, branch, path).
type ObjectStorage interface {
	// GetObject retrieves a single file
	// Returns ErrObjectNotFound if there is no file at the path
	GetObject(ctx context.Context, repo, branch, path string) (*models.Object, error)

	// PutObject creates or replaces a file as one compare-and-set step.
	// expectedSHA must be empty for a new file and equal the stored sha
	// for an existing one. Returns ErrSHARequired or ErrSHAMismatch otherwise.
	// Returns true if the object was created.
	PutObject(ctx context.Context, obj *models.Object, expectedSHA string) (bool, error)

	// ListDirectory returns direct children of dir (files and subdirectories)
	// sorted by name. Empty dir means repository root.
	// Returns ErrObjectNotFound if nothing is stored below dir
	ListDirectory(ctx context.Context, repo, branch, dir string) ([]models.DirEntry, error)

	// Ping checks that the storage is reachable
	Ping(ctx context.Context) error
}
