package cli

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	gosync "sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/iudanet/notesync/internal/client/iocli"
	"github.com/iudanet/notesync/internal/client/remote"
	"github.com/iudanet/notesync/internal/client/storage/boltdb"
	"github.com/iudanet/notesync/internal/client/sync"
	"github.com/iudanet/notesync/internal/config"
	"github.com/iudanet/notesync/internal/logging"
)

// output собирает всё, что команда печатает через IO
type output struct {
	b  strings.Builder
	mu gosync.Mutex
}

func (o *output) String() string {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.b.String()
}

func (o *output) write(s string) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.b.WriteString(s)
}

// newMockIO возвращает IO, который пишет в out и отвечает answers по очереди
func newMockIO(out *output, answers ...string) *iocli.IOMock {
	next := func() (string, error) {
		if len(answers) == 0 {
			return "", fmt.Errorf("unexpected prompt")
		}
		a := answers[0]
		answers = answers[1:]
		return a, nil
	}

	return &iocli.IOMock{
		PrintlnFunc: func(a ...any) {
			out.write(fmt.Sprintln(a...))
		},
		PrintfFunc: func(format string, a ...any) {
			out.write(fmt.Sprintf(format, a...))
		},
		WriteFunc: func(p []byte) (int, error) {
			out.write(string(p))
			return len(p), nil
		},
		ReadInputFunc: func(prompt string) (string, error) {
			out.write(prompt)
			return next()
		},
		ReadPasswordFunc: func(prompt string) (string, error) {
			out.write(prompt)
			return next()
		},
	}
}

type objectReaderFunc func(ctx context.Context, path string) (*remote.Object, error)

func (f objectReaderFunc) GetObject(ctx context.Context, path string) (*remote.Object, error) {
	return f(ctx, path)
}

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	return &config.Config{
		Remote: config.SyncConfig{
			BaseURL: config.DefaultBaseURL,
			Token:   "secret",
			Repo:    "octo/notes",
			Branch:  config.DefaultBranch,
		},
		Sync:    config.ScheduleConfig{Schedule: "@every 1h"},
		Storage: config.StorageConfig{Path: filepath.Join(t.TempDir(), "test.db")},
		Log:     config.LogConfig{Level: "info"},
	}
}

func createTestStorage(t *testing.T, path string) *boltdb.Storage {
	t.Helper()

	store, err := boltdb.New(context.Background(), path)
	require.NoError(t, err)
	t.Cleanup(func() {
		require.NoError(t, store.Close())
	})
	return store
}

// newTestCli собирает Cli поверх настоящего bolt хранилища и мока сервиса
func newTestCli(t *testing.T, service *sync.ServiceMock, answers ...string) (*Cli, *output, *boltdb.Storage) {
	t.Helper()

	cfg := testConfig(t)
	store := createTestStorage(t, cfg.Storage.Path)
	out := &output{}

	factory := func(config.SyncConfig) Backend {
		return Backend{Service: service}
	}

	c := New(newMockIO(out, answers...), store, store, cfg, filepath.Join(t.TempDir(), "config.yaml"), factory, logging.Discard())
	return c, out, store
}

func configuredService() *sync.ServiceMock {
	return &sync.ServiceMock{
		ConfiguredFunc: func() bool { return true },
	}
}
