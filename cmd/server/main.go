package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"golang.org/x/term"

	"github.com/iudanet/notesync/internal/crypto"
	"github.com/iudanet/notesync/internal/logging"
	"github.com/iudanet/notesync/internal/server"
	"github.com/iudanet/notesync/internal/server/config"
	"github.com/iudanet/notesync/internal/server/storage/sqlite"
)

var (
	// Version information set via ldflags during build
	Version   = "dev"
	BuildDate = "unknown"
	GitCommit = "unknown"
)

func main() {
	showVersion := flag.Bool("version", false, "Show version information")
	hashPassword := flag.Bool("hash-password", false, "Read a password from stdin and print its bcrypt hash for NOTESYNC_ADMIN_PASSWORD_HASH")
	flag.Parse()

	if *showVersion {
		printVersion()
		os.Exit(0)
	}

	if *hashPassword {
		if err := printPasswordHash(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		os.Exit(0)
	}

	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	logger, closer, err := logging.New(logging.Options{Level: cfg.LogLevel, JSON: true})
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}
	defer closer.Close()

	if cfg.AdminPasswordHash == "" {
		logger.Warn("NOTESYNC_ADMIN_PASSWORD_HASH is not set, token issuing is disabled")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	objects, err := sqlite.New(ctx, cfg.DBPath)
	if err != nil {
		return fmt.Errorf("failed to open storage: %w", err)
	}
	defer objects.Close()

	logger.Info("notesync server starting",
		"version", Version,
		"commit", GitCommit,
		"db", cfg.DBPath,
	)

	return server.New(cfg, objects, logger, Version).Run(ctx)
}

func printPasswordHash() error {
	var password string

	fd := int(os.Stdin.Fd())
	if term.IsTerminal(fd) {
		fmt.Fprint(os.Stderr, "Password: ")
		raw, err := term.ReadPassword(fd)
		fmt.Fprintln(os.Stderr)
		if err != nil {
			return fmt.Errorf("failed to read password: %w", err)
		}
		password = string(raw)
	} else {
		line, err := bufio.NewReader(os.Stdin).ReadString('\n')
		if err != nil && line == "" {
			return fmt.Errorf("failed to read password: %w", err)
		}
		password = strings.TrimRight(line, "\r\n")
	}

	hash, err := crypto.HashPassword(password)
	if err != nil {
		return err
	}

	fmt.Println(hash)
	return nil
}

func printVersion() {
	fmt.Printf("notesync server\n")
	fmt.Printf("Version:    %s\n", Version)
	fmt.Printf("Build Date: %s\n", BuildDate)
	fmt.Printf("Git Commit: %s\n", GitCommit)
}
