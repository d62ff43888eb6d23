package cli

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/iudanet/notesync/internal/client/api"
	"github.com/iudanet/notesync/internal/client/iocli"
	"github.com/iudanet/notesync/internal/config"
)

type loginOptions struct {
	serverURL string
	user      string
}

func newLoginCommand(a *app) *cobra.Command {
	var opts loginOptions

	cmd := &cobra.Command{
		Use:         "login",
		GroupID:     "sync",
		Short:       "Get an access token from a notesync server",
		Long:        "Exchange the server admin credentials for an access token and store it as remote.token.\nFor GitHub use configure with a personal access token instead.",
		Args:        cobra.NoArgs,
		Annotations: map[string]string{annotationNoSetup: "true"},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLogin(cmd.Context(), a.io, a.configPath(), opts)
		},
	}

	cmd.Flags().StringVar(&opts.serverURL, "server", "", "notesync server URL (stored as remote.base_url)")
	cmd.Flags().StringVarP(&opts.user, "user", "u", "", "server admin user")

	return cmd
}

func runLogin(ctx context.Context, io iocli.IO, path string, opts loginOptions) error {
	cfg, err := config.Load(path)
	if err != nil {
		return err
	}

	if opts.serverURL != "" {
		cfg.Remote.BaseURL = strings.TrimRight(opts.serverURL, "/")
	}
	if cfg.Remote.BaseURL == config.DefaultBaseURL {
		return fmt.Errorf("login works with a notesync server only, pass --server or use 'notesync configure' with a GitHub token")
	}

	user := opts.user
	if user == "" {
		if user, err = ask(io, "User", "admin"); err != nil {
			return err
		}
	}

	password, err := io.ReadPassword("Password: ")
	if err != nil {
		return fmt.Errorf("failed to read password: %w", err)
	}

	client := api.NewClient(cfg.Remote.BaseURL, cfg.Remote.RequestTimeout)
	token, err := client.IssueToken(ctx, user, password)
	if err != nil {
		return err
	}

	cfg.Remote.Token = token.AccessToken
	if err := config.Save(path, cfg); err != nil {
		return fmt.Errorf("failed to save config: %w", err)
	}

	io.Printf("✓ Logged in to %s as %s\n", cfg.Remote.BaseURL, user)
	io.Printf("Token expires in %s\n", time.Duration(token.ExpiresIn)*time.Second)
	if cfg.Remote.Repo == "" {
		io.Println("Run 'notesync configure' to choose a repository")
	}
	return nil
}
