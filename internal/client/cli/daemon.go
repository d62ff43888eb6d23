package cli

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/iudanet/notesync/internal/client/sync"
	"github.com/iudanet/notesync/internal/client/watch"
	"github.com/iudanet/notesync/internal/config"
	"github.com/iudanet/notesync/internal/models"
)

func newDaemonCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "daemon",
		GroupID: "sync",
		Short:   "Sync in the background on a schedule",
		Long: `Run synchronization on the configured schedule until interrupted.
If watch.dir is set, files created or edited in that directory are imported
as documents and uploaded right away. SIGHUP reloads the remote configuration.`,
		Args: cobra.NoArgs,
	}

	cmd.RunE = a.run(func(ctx context.Context, c *Cli, args []string) error {
		ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
		defer stop()

		hup := make(chan os.Signal, 1)
		signal.Notify(hup, syscall.SIGHUP)
		defer signal.Stop(hup)

		reload := make(chan struct{}, 1)
		go func() {
			for {
				select {
				case <-ctx.Done():
					return
				case <-hup:
					select {
					case reload <- struct{}{}:
					default:
					}
				}
			}
		}()

		return c.runDaemon(ctx, reload)
	})

	return cmd
}

// runDaemon работает до отмены ctx. Сигнал в reload перечитывает конфигурацию
// и подменяет сервис синхронизации.
func (c *Cli) runDaemon(ctx context.Context, reload <-chan struct{}) error {
	scheduler, err := sync.NewScheduler(c.syncService, c.cfg.Sync.Schedule, c.logger)
	if err != nil {
		return err
	}

	if dir := c.cfg.Watch.Dir; dir != "" {
		watcher, err := watch.NewWatcher(dir, c.importer, c.logger)
		if err != nil {
			return err
		}
		watcher.OnChange(func(ctx context.Context, doc *models.Document) {
			c.forceSync(ctx, scheduler, doc)
		})
		if err := watcher.Start(ctx); err != nil {
			_ = watcher.Stop()
			return err
		}
		defer func() {
			if err := watcher.Stop(); err != nil {
				c.logger.Error("Failed to stop watcher", "error", err)
			}
		}()
	}

	if err := scheduler.Start(); err != nil {
		return err
	}
	defer scheduler.Stop()

	if !c.syncService.Configured() {
		c.logger.Warn("Remote is not configured, runs are skipped until reload")
	}

	c.io.Printf("notesync daemon started (schedule %s), press Ctrl+C to stop\n", c.cfg.Sync.Schedule)

	if _, err := scheduler.RunNow(ctx); err != nil && !errors.Is(err, sync.ErrRunInProgress) {
		c.logger.Error("Initial sync failed", "error", err)
	}

	for {
		select {
		case <-ctx.Done():
			c.io.Println("Stopping daemon...")
			if last := scheduler.LastResult(); last != nil {
				c.io.Printf("Last run: %d uploaded, %d skipped, %d failed\n", last.Uploaded, last.Skipped, last.Failed)
			}
			return nil
		case <-reload:
			if err := c.reload(scheduler); err != nil {
				c.logger.Error("Failed to reload config", "error", err)
			}
		}
	}
}

// forceSync выгружает изменённый на диске документ вне расписания
func (c *Cli) forceSync(ctx context.Context, scheduler *sync.Scheduler, doc *models.Document) {
	outcome, err := scheduler.ForceSync(ctx, doc.ID)
	switch {
	case errors.Is(err, sync.ErrSyncQueued):
		c.logger.Debug("Upload of changed file queued", "document_id", doc.ID)
	case err != nil:
		c.logger.Error("Failed to sync changed file", "document_id", doc.ID, "error", err)
	case outcome.Status == sync.StatusFailed:
		c.logger.Warn("Changed file was not uploaded", "document_id", doc.ID, "error", outcome.Err)
	}
}

func (c *Cli) reload(scheduler *sync.Scheduler) error {
	cfg, err := config.Load(c.cfgPath)
	if err != nil {
		return err
	}
	if cfg.Sync.Schedule != c.cfg.Sync.Schedule {
		c.logger.Warn("Schedule change takes effect after restart", "schedule", cfg.Sync.Schedule)
	}

	backend := c.newBackend(cfg.Remote)
	scheduler.Reconfigure(backend.Service)

	c.cfg.Remote = cfg.Remote
	c.syncService = backend.Service
	c.objects = backend.Objects

	c.logger.Info("Config reloaded", "repo", cfg.Remote.Repo, "branch", cfg.Remote.Branch)
	return nil
}

