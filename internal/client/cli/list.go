package cli

import (
	"context"
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/iudanet/notesync/internal/client/sync"
)

func newListCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "list",
		GroupID: "notes",
		Short:   "List local documents and their sync state",
		Args:    cobra.NoArgs,
	}
	cmd.RunE = a.run(func(ctx context.Context, c *Cli, args []string) error {
		return c.runList(ctx)
	})
	return cmd
}

func (c *Cli) runList(ctx context.Context) error {
	docs, err := c.documents.ListDocuments(ctx)
	if err != nil {
		return fmt.Errorf("failed to list documents: %w", err)
	}

	c.io.Println("=== Documents ===")
	c.io.Println()

	if len(docs) == 0 {
		c.io.Println("No documents yet. Use 'notesync add <file>' to import one.")
		return nil
	}

	sort.Slice(docs, func(i, j int) bool { return docs[i].LastModified.After(docs[j].LastModified) })

	for _, doc := range docs {
		decision := sync.Evaluate(doc)
		mark := "✓"
		if decision.Sync {
			mark = "↑"
		} else if decision.Reason != sync.ReasonUpToDate {
			mark = "-"
		}

		c.io.Printf("%s %s  %-30s %-8s modified %s\n", mark, shortID(doc.ID), doc.Name, doc.Kind, formatTime(&doc.LastModified))
		if doc.RemotePath != "" {
			c.io.Printf("             synced %s -> %s\n", formatTime(doc.LastSynced), doc.RemotePath)
		}
	}

	c.io.Println()
	c.io.Printf("Total: %d document(s)\n", len(docs))
	return nil
}
