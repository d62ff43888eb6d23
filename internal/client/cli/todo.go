package cli

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/iudanet/notesync/internal/client/render"
	"github.com/iudanet/notesync/internal/client/storage"
	"github.com/iudanet/notesync/internal/models"
)

func newTodoCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "todo",
		GroupID: "notes",
		Short:   "Manage the todo list",
	}

	var project, due, notes string
	add := &cobra.Command{
		Use:   "add <text>",
		Short: "Add a task to the inbox or a project",
		Args:  cobra.MinimumNArgs(1),
	}
	add.RunE = a.run(func(ctx context.Context, c *Cli, args []string) error {
		return c.runTodoAdd(ctx, strings.Join(args, " "), project, due, notes)
	})
	add.Flags().StringVarP(&project, "project", "p", "", "project name")
	add.Flags().StringVar(&due, "due", "", "due date YYYY-MM-DD")
	add.Flags().StringVar(&notes, "notes", "", "task notes")

	done := &cobra.Command{
		Use:   "done <id>",
		Short: "Complete a task and move it to the archive",
		Args:  cobra.ExactArgs(1),
	}
	done.RunE = a.run(func(ctx context.Context, c *Cli, args []string) error {
		return c.runTodoDone(ctx, args[0])
	})

	list := &cobra.Command{
		Use:   "list",
		Short: "Print the todo list as it is uploaded",
		Args:  cobra.NoArgs,
	}
	list.RunE = a.run(func(ctx context.Context, c *Cli, args []string) error {
		return c.runTodoList(ctx)
	})

	cmd.AddCommand(add, done, list)
	return cmd
}

func (c *Cli) loadTodos(ctx context.Context) (*models.TodoCollection, error) {
	todos, err := c.snapshots.GetTodos(ctx)
	if errors.Is(err, storage.ErrSnapshotNotFound) {
		return &models.TodoCollection{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get todos: %w", err)
	}
	return todos, nil
}

func (c *Cli) runTodoAdd(ctx context.Context, text, project, due, notes string) error {
	text = strings.TrimSpace(text)
	if text == "" {
		return errors.New("task text cannot be empty")
	}
	if due != "" {
		if _, err := time.Parse(time.DateOnly, due); err != nil {
			return fmt.Errorf("invalid due date %q, expected YYYY-MM-DD", due)
		}
	}

	todos, err := c.loadTodos(ctx)
	if err != nil {
		return err
	}

	task := models.Task{ID: uuid.NewString(), Text: text, DueDate: due, Notes: notes}
	todos.Add(strings.TrimSpace(project), task, c.now().UTC())

	if err := c.snapshots.SaveTodos(ctx, todos); err != nil {
		return fmt.Errorf("failed to save todos: %w", err)
	}

	c.io.Printf("✓ Added task %s\n", shortID(task.ID))
	return nil
}

// runTodoDone принимает полный id или однозначный префикс
func (c *Cli) runTodoDone(ctx context.Context, id string) error {
	todos, err := c.loadTodos(ctx)
	if err != nil {
		return err
	}

	var matches []string
	collect := func(tasks []models.Task) {
		for _, t := range tasks {
			if strings.HasPrefix(t.ID, id) {
				matches = append(matches, t.ID)
			}
		}
	}
	collect(todos.Inbox)
	for _, p := range todos.Projects {
		collect(p.Tasks)
	}

	switch len(matches) {
	case 0:
		return fmt.Errorf("task %s not found", id)
	case 1:
	default:
		return fmt.Errorf("task id %s is ambiguous (%d matches)", id, len(matches))
	}

	todos.Complete(matches[0], c.now().UTC())
	if err := c.snapshots.SaveTodos(ctx, todos); err != nil {
		return fmt.Errorf("failed to save todos: %w", err)
	}

	c.io.Printf("✓ Completed task %s\n", shortID(matches[0]))
	return nil
}

func (c *Cli) runTodoList(ctx context.Context) error {
	todos, err := c.loadTodos(ctx)
	if err != nil {
		return err
	}
	if todos.Len() == 0 {
		c.io.Println("Todo list is empty. Use 'notesync todo add <text>' to add a task.")
		return nil
	}

	if _, err := c.io.Write([]byte(render.Todos(*todos))); err != nil {
		return err
	}

	c.io.Println()
	c.io.Println("Task ids:")
	listIDs := func(tasks []models.Task) {
		for _, t := range tasks {
			c.io.Printf("  %s  %s\n", shortID(t.ID), t.Text)
		}
	}
	listIDs(todos.Inbox)
	for _, p := range todos.Projects {
		listIDs(p.Tasks)
	}
	return nil
}
