package storage

import "errors"

// Common client storage errors
var (
	// ErrDocumentNotFound indicates that document was not found
	ErrDocumentNotFound = errors.New("document not found")

	// ErrSnapshotNotFound indicates that aggregate snapshot (todos, chat session) was not found
	ErrSnapshotNotFound = errors.New("snapshot not found")

	// ErrStorageClosed indicates that storage is closed
	ErrStorageClosed = errors.New("storage is closed")
)
