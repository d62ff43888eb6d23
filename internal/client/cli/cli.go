// Package cli команды клиента notesync.
package cli

import (
	"context"
	"log/slog"
	"time"

	"github.com/iudanet/notesync/internal/client/iocli"
	"github.com/iudanet/notesync/internal/client/remote"
	"github.com/iudanet/notesync/internal/client/storage"
	"github.com/iudanet/notesync/internal/client/sync"
	"github.com/iudanet/notesync/internal/client/watch"
	"github.com/iudanet/notesync/internal/config"
)

// ObjectReader читает объект из remote
type ObjectReader interface {
	GetObject(ctx context.Context, path string) (*remote.Object, error)
}

// Backend сервис синхронизации и чтение remote для одной конфигурации
type Backend struct {
	Service sync.Service
	Objects ObjectReader
}

// BackendFactory создаёт Backend под конфигурацию remote
type BackendFactory func(cfg config.SyncConfig) Backend

// Cli выполняет команды над локальным хранилищем и сервисом синхронизации
type Cli struct {
	io          iocli.IO
	documents   storage.DocumentStorage
	snapshots   storage.SnapshotStorage
	syncService sync.Service
	objects     ObjectReader
	importer    *watch.Importer
	newBackend  BackendFactory
	cfg         *config.Config
	logger      *slog.Logger
	now         func() time.Time
	cfgPath     string
}

// New creates a new Cli
func New(
	io iocli.IO,
	documents storage.DocumentStorage,
	snapshots storage.SnapshotStorage,
	cfg *config.Config,
	cfgPath string,
	newBackend BackendFactory,
	logger *slog.Logger,
) *Cli {
	backend := newBackend(cfg.Remote)
	return &Cli{
		io:          io,
		documents:   documents,
		snapshots:   snapshots,
		syncService: backend.Service,
		objects:     backend.Objects,
		importer:    watch.NewImporter(documents),
		newBackend:  newBackend,
		cfg:         cfg,
		cfgPath:     cfgPath,
		logger:      logger,
		now:         time.Now,
	}
}

// shortID сокращает UUID для вывода
func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

func formatTime(t *time.Time) string {
	if t == nil || t.IsZero() {
		return "never"
	}
	return t.Local().Format(time.DateTime)
}
