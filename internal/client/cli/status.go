package cli

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/iudanet/notesync/internal/client/storage"
	"github.com/iudanet/notesync/internal/client/sync"
	"github.com/iudanet/notesync/internal/models"
)

func newStatusCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "status",
		GroupID: "sync",
		Short:   "Show configuration and pending uploads",
		Args:    cobra.NoArgs,
	}
	cmd.RunE = a.run(func(ctx context.Context, c *Cli, args []string) error {
		return c.runStatus(ctx)
	})
	return cmd
}

func (c *Cli) runStatus(ctx context.Context) error {
	c.io.Println("=== Sync Status ===")
	c.io.Println()

	if c.syncService.Configured() {
		c.io.Printf("Remote:   %s (branch %s)\n", c.cfg.Remote.Repo, c.cfg.Remote.Branch)
		c.io.Printf("API:      %s\n", c.cfg.Remote.BaseURL)
	} else {
		c.io.Println("Remote:   not configured")
		c.io.Println("Run 'notesync configure' to set repository and token.")
	}
	c.io.Printf("Schedule: %s\n", c.cfg.Sync.Schedule)
	c.io.Printf("Database: %s\n", c.cfg.Storage.Path)
	if c.cfg.Watch.Dir != "" {
		c.io.Printf("Watching: %s\n", c.cfg.Watch.Dir)
	}

	docs, err := c.documents.ListDocuments(ctx)
	if err != nil {
		return fmt.Errorf("failed to list documents: %w", err)
	}

	pending := 0
	for _, doc := range docs {
		if doc.Content != "" && sync.ShouldSync(doc) {
			pending++
		}
	}

	c.io.Println()
	c.io.Printf("Documents: %d\n", len(docs))

	todos, err := c.snapshots.GetTodos(ctx)
	switch {
	case errors.Is(err, storage.ErrSnapshotNotFound):
	case err != nil:
		return fmt.Errorf("failed to get todos: %w", err)
	default:
		synced := todos.Sync
		c.io.Printf("Todo tasks: %d", todos.Len())
		if synced != nil {
			c.io.Printf(" (synced %s)", formatTime(&synced.LastSynced))
		}
		c.io.Println()
		if todos.Len() > 0 && sync.Stale(aggregateState(todos.UpdatedAt, synced)).Sync {
			pending++
		}
	}

	sessions, err := c.snapshots.ListChatSessions(ctx)
	if err != nil {
		return fmt.Errorf("failed to list chat sessions: %w", err)
	}
	c.io.Printf("Chat sessions: %d\n", len(sessions))
	for _, s := range sessions {
		if len(s.Messages) > 0 && sync.Stale(aggregateState(s.UpdatedAt, s.Sync)).Sync {
			pending++
		}
	}

	c.io.Println()
	if pending > 0 {
		c.io.Printf("⚠️  Pending sync: %d item(s) waiting to be uploaded\n", pending)
		c.io.Println("Run 'notesync sync' to upload them.")
	} else {
		c.io.Println("✓ Everything is synchronized")
	}
	return nil
}

// aggregateState документ с отметками агрегата для проверки устаревания
func aggregateState(modified time.Time, state *models.SyncState) *models.Document {
	doc := &models.Document{LastModified: modified}
	if state != nil {
		doc.ApplySyncState(*state)
	}
	return doc
}
