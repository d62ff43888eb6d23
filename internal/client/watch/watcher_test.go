package watch

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/notesync/internal/logging"
	"github.com/iudanet/notesync/internal/models"
)

func isRunning(w *Watcher) bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.running
}

func TestWatcher_StartStop(t *testing.T) {
	w, err := NewWatcher(t.TempDir(), NewImporter(createTestStorage(t)), logging.Discard())
	require.NoError(t, err)
	assert.False(t, isRunning(w))

	require.NoError(t, w.Start(context.Background()))
	assert.True(t, isRunning(w))
	assert.ErrorIs(t, w.Start(context.Background()), ErrWatcherRunning)

	require.NoError(t, w.Stop())
	assert.False(t, isRunning(w))
}

func TestWatcher_StartMissingDir(t *testing.T) {
	w, err := NewWatcher(filepath.Join(t.TempDir(), "missing"), NewImporter(createTestStorage(t)), logging.Discard())
	require.NoError(t, err)
	defer w.Stop()

	assert.Error(t, w.Start(context.Background()))
}

func TestWatcher_ImportsExistingAndNewFiles(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	store := createTestStorage(t)
	importer := NewImporter(store)

	require.NoError(t, os.WriteFile(filepath.Join(dir, "existing.md"), []byte("old"), 0o600))
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".hidden"), []byte("skip"), 0o600))

	w, err := NewWatcher(dir, importer, logging.Discard())
	require.NoError(t, err)
	require.NoError(t, w.Start(ctx))
	defer w.Stop()

	doc, err := importer.FindByName(ctx, "existing.md")
	require.NoError(t, err)
	assert.Equal(t, "old", doc.Content)

	require.NoError(t, os.WriteFile(filepath.Join(dir, "new.md"), []byte("fresh"), 0o600))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "existing.md"), []byte("edited"), 0o600))

	require.Eventually(t, func() bool {
		fresh, err := importer.FindByName(ctx, "new.md")
		if err != nil || fresh.Content != "fresh" {
			return false
		}
		edited, err := importer.FindByName(ctx, "existing.md")
		return err == nil && edited.Content == "edited"
	}, 5*time.Second, 50*time.Millisecond)

	_, err = importer.FindByName(ctx, ".hidden")
	assert.Error(t, err)
}

func TestWatcher_OnChange(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	importer := NewImporter(createTestStorage(t))

	require.NoError(t, os.WriteFile(filepath.Join(dir, "existing.md"), []byte("old"), 0o600))

	changes := make(chan string, 8)
	w, err := NewWatcher(dir, importer, logging.Discard())
	require.NoError(t, err)
	w.OnChange(func(_ context.Context, doc *models.Document) {
		changes <- doc.Name + ":" + doc.Content
	})
	require.NoError(t, w.Start(ctx))
	defer w.Stop()

	// Файлы, найденные при старте, обработчик не получает
	select {
	case got := <-changes:
		t.Fatalf("unexpected change on start: %s", got)
	case <-time.After(3 * DefaultDebounce):
	}

	require.NoError(t, os.WriteFile(filepath.Join(dir, "new.md"), []byte("fresh"), 0o600))
	timeout := time.After(5 * time.Second)
	for got := ""; got != "new.md:fresh"; {
		select {
		case got = <-changes:
			require.Contains(t, got, "new.md:")
		case <-timeout:
			t.Fatal("change handler was not called")
		}
	}

	// Та же запись без изменения содержимого
	require.NoError(t, os.WriteFile(filepath.Join(dir, "existing.md"), []byte("old"), 0o600))
	select {
	case got := <-changes:
		t.Fatalf("unexpected change for unchanged content: %s", got)
	case <-time.After(5 * DefaultDebounce):
	}
}

func TestIgnored(t *testing.T) {
	assert.True(t, ignored(".DS_Store"))
	assert.True(t, ignored("notes.md~"))
	assert.True(t, ignored("notes.md.swp"))
	assert.False(t, ignored("notes.md"))
}
