// Package watch импортирует правки из каталога заметок в локальное хранилище.
package watch

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/iudanet/notesync/internal/models"
)

// DefaultDebounce интервал, после которого накопленные изменения импортируются
const DefaultDebounce = 100 * time.Millisecond

// ChangeFunc вызывается после импорта файла с новым содержимым
type ChangeFunc func(ctx context.Context, doc *models.Document)

// ErrWatcherRunning возвращается при повторном Start
var ErrWatcherRunning = errors.New("watcher already running")

// Watcher следит за каталогом и импортирует созданные и изменённые файлы.
// Удаление файла документ не удаляет.
type Watcher struct {
	watcher  *fsnotify.Watcher
	importer *Importer
	logger   *slog.Logger
	queue    map[string]time.Time
	cancel   context.CancelFunc
	onChange ChangeFunc
	dir      string
	wg       sync.WaitGroup
	debounce time.Duration
	queueMu  sync.Mutex
	mu       sync.Mutex
	running  bool
}

// NewWatcher creates a new watcher for dir
func NewWatcher(dir string, importer *Importer, logger *slog.Logger) (*Watcher, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create fsnotify watcher: %w", err)
	}

	return &Watcher{
		watcher:  watcher,
		importer: importer,
		logger:   logger,
		queue:    make(map[string]time.Time),
		dir:      dir,
		debounce: DefaultDebounce,
	}, nil
}

// OnChange задаёт обработчик изменённых документов. Вызывать до Start.
// Файлы, импортированные при старте, обработчик не получает.
func (w *Watcher) OnChange(fn ChangeFunc) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.onChange = fn
}

// Start импортирует текущее содержимое каталога и начинает слежение
func (w *Watcher) Start(ctx context.Context) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.running {
		return ErrWatcherRunning
	}

	if err := w.watcher.Add(w.dir); err != nil {
		return fmt.Errorf("failed to watch directory %s: %w", w.dir, err)
	}

	w.importExisting(ctx)

	ctx, w.cancel = context.WithCancel(ctx)
	w.running = true
	w.wg.Add(2)
	go w.watchEvents(ctx)
	go w.processQueue(ctx)

	w.logger.Info("Watching notes directory", "dir", w.dir)
	return nil
}

// Stop останавливает слежение и ждёт завершения горутин
func (w *Watcher) Stop() error {
	w.mu.Lock()
	if !w.running {
		w.mu.Unlock()
		return w.watcher.Close()
	}
	w.running = false
	w.mu.Unlock()

	w.cancel()
	err := w.watcher.Close()
	w.wg.Wait()

	if err != nil {
		return fmt.Errorf("failed to close watcher: %w", err)
	}
	return nil
}

func (w *Watcher) importExisting(ctx context.Context) {
	entries, err := os.ReadDir(w.dir)
	if err != nil {
		w.logger.Warn("Failed to read notes directory", "dir", w.dir, "error", err)
		return
	}
	for _, entry := range entries {
		if entry.Type().IsRegular() && !ignored(entry.Name()) {
			w.importPath(ctx, filepath.Join(w.dir, entry.Name()), nil)
		}
	}
}

func (w *Watcher) watchEvents(ctx context.Context) {
	defer w.wg.Done()

	for {
		select {
		case <-ctx.Done():
			return

		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}

			// Только создание и запись
			if !event.Has(fsnotify.Create) && !event.Has(fsnotify.Write) {
				continue
			}
			if ignored(filepath.Base(event.Name)) {
				continue
			}

			w.logger.Debug("File event", "op", event.Op.String(), "path", event.Name)
			w.queueChange(event.Name)

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.logger.Warn("Watcher error", "error", err)
		}
	}
}

func (w *Watcher) queueChange(path string) {
	w.queueMu.Lock()
	defer w.queueMu.Unlock()
	w.queue[path] = time.Now()
}

func (w *Watcher) processQueue(ctx context.Context) {
	defer w.wg.Done()

	ticker := time.NewTicker(w.debounce)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			w.processPending(ctx)
		}
	}
}

// processPending импортирует файлы, которые не менялись дольше интервала
func (w *Watcher) processPending(ctx context.Context) {
	now := time.Now()

	w.queueMu.Lock()
	ready := make([]string, 0, len(w.queue))
	for path, queuedAt := range w.queue {
		if now.Sub(queuedAt) < w.debounce {
			continue
		}
		ready = append(ready, path)
		delete(w.queue, path)
	}
	w.queueMu.Unlock()

	w.mu.Lock()
	onChange := w.onChange
	w.mu.Unlock()

	for _, path := range ready {
		w.importPath(ctx, path, onChange)
	}
}

func (w *Watcher) importPath(ctx context.Context, path string, onChange ChangeFunc) {
	info, err := os.Stat(path)
	if err != nil || !info.Mode().IsRegular() {
		return
	}

	doc, changed, err := w.importer.importFile(ctx, path)
	if err != nil {
		w.logger.Warn("Failed to import file", "path", path, "error", err)
		return
	}
	w.logger.Debug("Imported file", "path", path, "document_id", doc.ID, "changed", changed)

	if changed && onChange != nil {
		onChange(ctx, doc)
	}
}

// ignored отсекает скрытые и временные файлы редакторов
func ignored(name string) bool {
	return strings.HasPrefix(name, ".") || strings.HasSuffix(name, "~") || strings.HasSuffix(name, ".swp")
}
