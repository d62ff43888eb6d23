package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/iudanet/notesync/internal/client/sync"
	"github.com/iudanet/notesync/internal/models"
)

func newAddCommand(a *app) *cobra.Command {
	var (
		name  string
		stdin bool
	)

	cmd := &cobra.Command{
		Use:     "add [file]",
		GroupID: "notes",
		Short:   "Import a file or stdin as a document",
		Long: `Import a file as a document named after the file. A document with the same
name is updated in place. With --stdin the content is read from standard input
and --name is required.`,
		Args: cobra.MaximumNArgs(1),
	}

	cmd.RunE = a.run(func(ctx context.Context, c *Cli, args []string) error {
		var in io.Reader
		var path string
		if stdin {
			in = cmd.InOrStdin()
		} else if len(args) == 1 {
			path = args[0]
		}
		return c.runAdd(ctx, path, name, in)
	})

	cmd.Flags().StringVar(&name, "name", "", "document name (required with --stdin)")
	cmd.Flags().BoolVar(&stdin, "stdin", false, "read content from stdin")

	return cmd
}

// runAdd импортирует файл или stdin. name переопределяет имя файла.
func (c *Cli) runAdd(ctx context.Context, path, name string, in io.Reader) error {
	var (
		doc *models.Document
		err error
	)

	switch {
	case in != nil:
		if name == "" {
			return errors.New("--name is required with --stdin")
		}
		data, readErr := io.ReadAll(in)
		if readErr != nil {
			return fmt.Errorf("failed to read stdin: %w", readErr)
		}
		doc, err = c.importer.Import(ctx, name, data)
	case path != "" && name != "":
		data, readErr := os.ReadFile(path)
		if readErr != nil {
			return fmt.Errorf("failed to read file: %w", readErr)
		}
		doc, err = c.importer.Import(ctx, name, data)
	case path != "":
		doc, err = c.importer.ImportFile(ctx, path)
	default:
		return errors.New("missing file. Usage: notesync add <file> or notesync add --name <name> --stdin")
	}
	if err != nil {
		return err
	}

	c.io.Printf("✓ Saved %s (%s)\n", doc.Name, shortID(doc.ID))
	if sync.IsTransientName(doc.Name) {
		c.io.Println("Note: this name is not synced. Rename the document to upload it.")
	}
	return nil
}
