package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/iudanet/notesync/internal/client/iocli"
	"github.com/iudanet/notesync/internal/config"
	"github.com/iudanet/notesync/internal/validation"
)

type configureOptions struct {
	baseURL  string
	repo     string
	branch   string
	schedule string
	watchDir string
	token    bool // читать токен из stdin без вопроса
}

func newConfigureCommand(a *app) *cobra.Command {
	var opts configureOptions

	cmd := &cobra.Command{
		Use:         "configure",
		GroupID:     "sync",
		Short:       "Set repository, branch and access token",
		Args:        cobra.NoArgs,
		Annotations: map[string]string{annotationNoSetup: "true"},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConfigure(a.io, a.configPath(), opts)
		},
	}

	cmd.Flags().StringVar(&opts.baseURL, "base-url", "", "contents API base URL")
	cmd.Flags().StringVar(&opts.repo, "repo", "", "repository as owner/name")
	cmd.Flags().StringVar(&opts.branch, "branch", "", "target branch")
	cmd.Flags().StringVar(&opts.schedule, "schedule", "", "background sync schedule, cron or @every")
	cmd.Flags().StringVar(&opts.watchDir, "watch-dir", "", "directory imported by the daemon")
	cmd.Flags().BoolVar(&opts.token, "token-stdin", false, "read access token from stdin")

	return cmd
}

// runConfigure спрашивает недостающие параметры и сохраняет конфигурацию.
// Пустой ответ оставляет текущее значение.
func runConfigure(io iocli.IO, path string, opts configureOptions) error {
	cfg, err := config.Load(path)
	if err != nil {
		return err
	}

	io.Println("=== Remote Configuration ===")
	io.Println()

	if opts.baseURL != "" {
		cfg.Remote.BaseURL = opts.baseURL
	}

	repo := opts.repo
	if repo == "" {
		if repo, err = ask(io, "Repository (owner/name)", cfg.Remote.Repo); err != nil {
			return err
		}
	}
	if err := validation.ValidateRepo(repo); err != nil {
		return err
	}
	cfg.Remote.Repo = repo

	branch := opts.branch
	if branch == "" {
		if branch, err = ask(io, "Branch", cfg.Remote.Branch); err != nil {
			return err
		}
	}
	cfg.Remote.Branch = branch

	prompt := "Access token: "
	if cfg.Remote.Token != "" {
		prompt = "Access token (empty to keep current): "
	}
	if opts.token {
		prompt = ""
	}
	token, err := io.ReadPassword(prompt)
	if err != nil {
		return fmt.Errorf("failed to read token: %w", err)
	}
	if token = strings.TrimSpace(token); token != "" {
		cfg.Remote.Token = token
	}
	if cfg.Remote.Token == "" {
		return fmt.Errorf("access token is required")
	}

	if opts.schedule != "" {
		cfg.Sync.Schedule = opts.schedule
	}
	if opts.watchDir != "" {
		cfg.Watch.Dir = opts.watchDir
	}

	if err := config.Save(path, cfg); err != nil {
		return fmt.Errorf("failed to save config: %w", err)
	}

	io.Println()
	io.Printf("✓ Configuration saved to %s\n", path)
	io.Printf("Repository: %s (branch %s)\n", cfg.Remote.Repo, cfg.Remote.Branch)
	return nil
}

func ask(io iocli.IO, label, current string) (string, error) {
	prompt := label + ": "
	if current != "" {
		prompt = fmt.Sprintf("%s [%s]: ", label, current)
	}

	answer, err := io.ReadInput(prompt)
	if err != nil {
		return "", fmt.Errorf("failed to read %s: %w", strings.ToLower(label), err)
	}
	if answer == "" {
		return current, nil
	}
	return answer, nil
}
