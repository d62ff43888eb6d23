package cli

import (
	"context"
	"errors"
	"fmt"
	"path"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/text/cases"

	"github.com/iudanet/notesync/internal/client/remote"
)

func newRemoteCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "remote",
		GroupID: "sync",
		Short:   "Browse uploaded files",
	}

	var filter remoteFilter
	ls := &cobra.Command{
		Use:   "ls",
		Short: "List files of the current and previous month",
		Long: `List files uploaded this month and last month, newest first.
--name keeps files whose name contains the text, --grep downloads the files
and keeps those whose content contains it. Both are case-insensitive.`,
		Args: cobra.NoArgs,
	}
	ls.Flags().StringVar(&filter.Name, "name", "", "show files whose name contains this text")
	ls.Flags().StringVar(&filter.Content, "grep", "", "show files whose content contains this text")
	ls.RunE = a.run(func(ctx context.Context, c *Cli, args []string) error {
		return c.runRemoteList(ctx, filter)
	})

	cat := &cobra.Command{
		Use:   "cat <path>",
		Short: "Print a remote file",
		Args:  cobra.ExactArgs(1),
	}
	cat.RunE = a.run(func(ctx context.Context, c *Cli, args []string) error {
		return c.runRemoteCat(ctx, args[0])
	})

	cmd.AddCommand(ls, cat)
	return cmd
}

// remoteFilter условия отбора файлов в remote ls
type remoteFilter struct {
	Name    string
	Content string
}

func (f remoteFilter) empty() bool {
	return f.Name == "" && f.Content == ""
}

func (c *Cli) runRemoteList(ctx context.Context, filter remoteFilter) error {
	if !c.syncService.Configured() {
		return remote.ErrNotConfigured
	}

	objects, err := c.syncService.ListRecent(ctx)
	if err != nil {
		return err
	}

	objects, err = c.filterObjects(ctx, objects, filter)
	if err != nil {
		return err
	}

	if len(objects) == 0 {
		if filter.empty() {
			c.io.Println("No files uploaded this month or last month.")
		} else {
			c.io.Println("No matching files.")
		}
		return nil
	}

	for _, o := range objects {
		c.io.Printf("%8d  %s\n", o.Size, o.Path)
	}
	return nil
}

// filterObjects отбирает файлы по имени, затем по содержимому.
// Содержимое скачивается только для файлов, прошедших фильтр по имени.
func (c *Cli) filterObjects(ctx context.Context, objects []remote.ObjectInfo, filter remoteFilter) ([]remote.ObjectInfo, error) {
	if filter.empty() {
		return objects, nil
	}

	fold := cases.Fold()
	name := fold.String(filter.Name)
	content := fold.String(filter.Content)

	matched := objects[:0:0]
	for _, o := range objects {
		if name != "" && !strings.Contains(fold.String(path.Base(o.Path)), name) {
			continue
		}
		if content != "" {
			object, err := c.objects.GetObject(ctx, o.Path)
			if err != nil {
				return nil, fmt.Errorf("failed to read %s: %w", o.Path, err)
			}
			if !strings.Contains(fold.String(object.Content), content) {
				continue
			}
		}
		matched = append(matched, o)
	}
	return matched, nil
}

func (c *Cli) runRemoteCat(ctx context.Context, path string) error {
	object, err := c.objects.GetObject(ctx, path)
	if errors.Is(err, remote.ErrNotFound) {
		return fmt.Errorf("remote file %s not found", path)
	}
	if err != nil {
		return err
	}

	if _, err := c.io.Write([]byte(object.Content)); err != nil {
		return err
	}
	return nil
}
