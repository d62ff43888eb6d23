package cli

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/iudanet/notesync/internal/client/sync"
)

func newSyncCommand(a *app) *cobra.Command {
	var force string

	cmd := &cobra.Command{
		Use:     "sync",
		GroupID: "sync",
		Short:   "Upload changed documents, todos and chats",
		Long: `Upload every changed document, the todo list and chat sessions once.
With --force the given document is uploaded even if it has not changed.`,
		Args: cobra.NoArgs,
	}
	cmd.RunE = a.run(func(ctx context.Context, c *Cli, args []string) error {
		if force != "" {
			return c.runForceSync(ctx, force)
		}
		return c.runSync(ctx)
	})
	cmd.Flags().StringVar(&force, "force", "", "document id (or id prefix) to upload unconditionally")

	return cmd
}

func (c *Cli) runSync(ctx context.Context) error {
	c.io.Println("=== Synchronization ===")
	c.io.Println()

	if !c.syncService.Configured() {
		c.io.Println("Remote is not configured. Run 'notesync configure' first.")
		return nil
	}

	result, err := c.syncService.SyncAll(ctx)
	if result != nil {
		c.printResult(result)
	}
	if err != nil {
		return fmt.Errorf("synchronization failed: %w", err)
	}
	if result.Failed > 0 {
		return fmt.Errorf("%d document(s) failed to sync", result.Failed)
	}
	return nil
}

func (c *Cli) runForceSync(ctx context.Context, id string) error {
	if !c.syncService.Configured() {
		c.io.Println("Remote is not configured. Run 'notesync configure' first.")
		return nil
	}

	docID, err := c.resolveDocumentID(ctx, id)
	if err != nil {
		return err
	}

	if err := c.syncService.MarkForceSync(ctx, docID); err != nil {
		return err
	}
	outcome, err := c.syncService.SyncDocument(ctx, docID)
	if err != nil {
		return fmt.Errorf("synchronization failed: %w", err)
	}

	c.printOutcome(*outcome)
	if outcome.Status == sync.StatusFailed {
		return outcome.Err
	}
	return nil
}

func (c *Cli) resolveDocumentID(ctx context.Context, id string) (string, error) {
	docs, err := c.documents.ListDocuments(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to list documents: %w", err)
	}

	var matches []string
	for _, doc := range docs {
		if doc.ID == id {
			return id, nil
		}
		if len(id) >= 4 && strings.HasPrefix(doc.ID, id) {
			matches = append(matches, doc.ID)
		}
	}

	switch len(matches) {
	case 0:
		return "", fmt.Errorf("document %s not found", id)
	case 1:
		return matches[0], nil
	default:
		return "", fmt.Errorf("document id %s is ambiguous (%d matches)", id, len(matches))
	}
}

func (c *Cli) printResult(result *sync.RunResult) {
	for _, o := range result.Outcomes {
		if o.Status == sync.StatusSkipped && o.Reason == sync.ReasonUpToDate {
			continue
		}
		c.printOutcome(o)
	}

	c.io.Println()
	c.io.Printf("Uploaded: %d\n", result.Uploaded)
	c.io.Printf("Skipped:  %d\n", result.Skipped)
	if result.Failed > 0 {
		c.io.Printf("Failed:   %d\n", result.Failed)
	}
	c.io.Printf("Duration: %s\n", result.FinishedAt.Sub(result.StartedAt).Round(time.Millisecond))
}

func (c *Cli) printOutcome(o sync.Outcome) {
	switch o.Status {
	case sync.StatusSuccess:
		c.io.Printf("✓ %s -> %s\n", o.Name, o.Path)
	case sync.StatusFailed:
		c.io.Printf("✗ %s: %v\n", o.Name, o.Err)
	default:
		c.io.Printf("- %s: %s\n", o.Name, o.Reason)
	}
}
