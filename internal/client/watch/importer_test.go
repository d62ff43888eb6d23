package watch

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/notesync/internal/client/storage"
	"github.com/iudanet/notesync/internal/client/storage/boltdb"
	"github.com/iudanet/notesync/internal/models"
)

func createTestStorage(t *testing.T) *boltdb.Storage {
	t.Helper()

	store, err := boltdb.New(context.Background(), filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() {
		require.NoError(t, store.Close())
	})
	return store
}

func TestImporter_CreateAndUpdate(t *testing.T) {
	ctx := context.Background()
	store := createTestStorage(t)
	importer := NewImporter(store)

	first := time.Date(2024, 3, 2, 10, 0, 0, 0, time.UTC)
	importer.now = func() time.Time { return first }

	doc, err := importer.Import(ctx, "notes.md", []byte("hello"))
	require.NoError(t, err)
	assert.NotEmpty(t, doc.ID)
	assert.Equal(t, models.KindText, doc.Kind)
	assert.Equal(t, first, doc.LastModified)

	second := first.Add(time.Hour)
	importer.now = func() time.Time { return second }

	updated, err := importer.Import(ctx, "notes.md", []byte("hello world"))
	require.NoError(t, err)
	assert.Equal(t, doc.ID, updated.ID)
	assert.Equal(t, second, updated.LastModified)

	docs, err := store.ListDocuments(ctx)
	require.NoError(t, err)
	require.Len(t, docs, 1)
	assert.Equal(t, "hello world", docs[0].Content)
}

func TestImporter_UnchangedKeepsModified(t *testing.T) {
	ctx := context.Background()
	store := createTestStorage(t)
	importer := NewImporter(store)

	first := time.Date(2024, 3, 2, 10, 0, 0, 0, time.UTC)
	importer.now = func() time.Time { return first }
	_, err := importer.Import(ctx, "notes.md", []byte("same"))
	require.NoError(t, err)

	importer.now = func() time.Time { return first.Add(time.Hour) }
	doc, err := importer.Import(ctx, "notes.md", []byte("same"))
	require.NoError(t, err)
	assert.Equal(t, first, doc.LastModified.UTC())
}

func TestImporter_ImportFile(t *testing.T) {
	ctx := context.Background()
	store := createTestStorage(t)
	importer := NewImporter(store)

	path := filepath.Join(t.TempDir(), "board.tldraw")
	require.NoError(t, os.WriteFile(path, []byte(`{"shapes":[]}`), 0o600))

	doc, err := importer.ImportFile(ctx, path)
	require.NoError(t, err)
	assert.Equal(t, "board.tldraw", doc.Name)
	assert.Equal(t, models.KindDrawing, doc.Kind)

	_, err = importer.ImportFile(ctx, filepath.Join(t.TempDir(), "missing.md"))
	assert.Error(t, err)
}

func TestImporter_RejectsBinary(t *testing.T) {
	importer := NewImporter(createTestStorage(t))

	_, err := importer.Import(context.Background(), "image.png", []byte{0xff, 0xfe, 0x00})
	assert.ErrorIs(t, err, ErrNotText)
}

func TestImporter_FindByName(t *testing.T) {
	ctx := context.Background()
	importer := NewImporter(createTestStorage(t))

	_, err := importer.FindByName(ctx, "missing.md")
	assert.ErrorIs(t, err, storage.ErrDocumentNotFound)

	_, err = importer.Import(ctx, "a.md", []byte("a"))
	require.NoError(t, err)

	doc, err := importer.FindByName(ctx, "a.md")
	require.NoError(t, err)
	assert.Equal(t, "a", doc.Content)
}
