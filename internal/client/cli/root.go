package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/iudanet/notesync/internal/client/iocli"
	"github.com/iudanet/notesync/internal/client/remote"
	"github.com/iudanet/notesync/internal/client/storage/boltdb"
	"github.com/iudanet/notesync/internal/client/sync"
	"github.com/iudanet/notesync/internal/config"
	"github.com/iudanet/notesync/internal/logging"
)

// annotationNoSetup помечает команды, которым не нужно локальное хранилище
const annotationNoSetup = "notesync/no-setup"

// app держит ресурсы, открытые на время выполнения команды
type app struct {
	io       iocli.IO
	cli      *Cli
	store    *boltdb.Storage
	closer   io.Closer
	cfgPath  string
	dbPath   string
	logLevel string
}

// NewRootCommand собирает дерево команд notesync
func NewRootCommand(stdio iocli.IO, version string) *cobra.Command {
	a := &app{io: stdio}

	root := &cobra.Command{
		Use:   "notesync",
		Short: "Sync local notes, todos and chats to a Git repository",
		Long: `notesync keeps local text notes, drawings, the todo list and chat sessions
and uploads changed ones to a Git repository through the contents API.

Files are grouped by month: notes go to YYYY/MM/<name>, the todo list to
todo/YYYY/MM/todo.md and chats to chats/YYYY/MM/<title>-<id>.md.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Annotations[annotationNoSetup] != "" {
				return nil
			}
			return a.setup(cmd)
		},
	}

	root.PersistentFlags().StringVar(&a.cfgPath, "config", "", "config file (default "+config.DefaultPath()+")")
	root.PersistentFlags().StringVar(&a.dbPath, "db", "", "path to local database")
	root.PersistentFlags().StringVar(&a.logLevel, "log-level", "", "log level: debug, info, warn, error")

	root.AddGroup(
		&cobra.Group{ID: "notes", Title: "Local data:"},
		&cobra.Group{ID: "sync", Title: "Synchronization:"},
	)

	root.AddCommand(
		newConfigureCommand(a),
		newLoginCommand(a),
		newAddCommand(a),
		newListCommand(a),
		newTodoCommand(a),
		newSyncCommand(a),
		newDaemonCommand(a),
		newRemoteCommand(a),
		newStatusCommand(a),
	)

	return root
}

func (a *app) configPath() string {
	if a.cfgPath != "" {
		return a.cfgPath
	}
	return config.DefaultPath()
}

func (a *app) setup(cmd *cobra.Command) error {
	cfg, err := config.Load(a.cfgPath)
	if err != nil {
		return err
	}
	if a.dbPath != "" {
		cfg.Storage.Path = a.dbPath
	}
	if a.logLevel != "" {
		cfg.Log.Level = a.logLevel
	}

	logger, closer, err := logging.New(logging.Options{
		Output: cmd.ErrOrStderr(),
		Level:  cfg.Log.Level,
		File:   cfg.Log.File,
	})
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}
	a.closer = closer

	store, err := boltdb.New(cmd.Context(), cfg.Storage.Path)
	if err != nil {
		_ = closer.Close()
		return fmt.Errorf("failed to open database: %w", err)
	}
	a.store = store

	a.cli = New(a.io, store, store, cfg, a.configPath(), newBackendFactory(store, logger), logger)
	return nil
}

// run оборачивает команду: ресурсы закрываются и при ошибке команды
func (a *app) run(fn func(ctx context.Context, c *Cli, args []string) error) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) (err error) {
		defer func() {
			err = errors.Join(err, a.teardown())
		}()
		return fn(cmd.Context(), a.cli, args)
	}
}

func (a *app) teardown() error {
	var err error
	if a.store != nil {
		if closeErr := a.store.Close(); closeErr != nil {
			err = fmt.Errorf("failed to close database: %w", closeErr)
		}
		a.store = nil
	}
	if a.closer != nil {
		_ = a.closer.Close()
		a.closer = nil
	}
	return err
}

// newBackendFactory связывает HTTP клиент remote и сервис синхронизации с хранилищем
func newBackendFactory(store *boltdb.Storage, logger *slog.Logger) BackendFactory {
	return func(cfg config.SyncConfig) Backend {
		client := remote.NewClient(cfg, logger)
		return Backend{
			Service: sync.NewService(client, store, store, logger),
			Objects: client,
		}
	}
}
