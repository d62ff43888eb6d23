package server

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/notesync/internal/client/remote"
	"github.com/iudanet/notesync/internal/client/storage/boltdb"
	"github.com/iudanet/notesync/internal/client/sync"
	clientconfig "github.com/iudanet/notesync/internal/config"
	"github.com/iudanet/notesync/internal/codec"
	"github.com/iudanet/notesync/internal/crypto"
	"github.com/iudanet/notesync/internal/models"
	"github.com/iudanet/notesync/internal/server/config"
	"github.com/iudanet/notesync/internal/server/storage/sqlite"
	"github.com/iudanet/notesync/pkg/api"
)

const testPassword = "s3cret-password"

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// startTestServer поднимает сервер на httptest и возвращает его URL
func startTestServer(t *testing.T, rateLimit int) string {
	t.Helper()

	objects, err := sqlite.New(context.Background(), filepath.Join(t.TempDir(), "server.db"))
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = objects.Close()
	})

	hash, err := crypto.HashPassword(testPassword)
	require.NoError(t, err)

	cfg := &config.Config{
		Addr:              "127.0.0.1:0",
		DefaultBranch:     "main",
		JWTSecret:         "test-secret",
		AdminUser:         "admin",
		AdminPasswordHash: hash,
		TokenTTL:          time.Hour,
		RateLimit:         rateLimit,
	}

	srv := New(cfg, objects, discardLogger(), "test")
	t.Cleanup(srv.Close)

	ts := httptest.NewServer(srv.Handler())
	t.Cleanup(ts.Close)

	return ts.URL
}

func issueToken(t *testing.T, baseURL string) string {
	t.Helper()

	req, err := http.NewRequest(http.MethodPost, baseURL+"/api/v1/tokens", nil)
	require.NoError(t, err)
	req.SetBasicAuth("admin", testPassword)

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var token api.TokenResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&token))
	require.NotEmpty(t, token.AccessToken)
	return token.AccessToken
}

func newRemoteClient(baseURL, token string) *remote.Client {
	return remote.NewClient(clientconfig.SyncConfig{
		BaseURL: baseURL,
		Token:   token,
		Repo:    "octo/notes",
		Branch:  "main",
	}, discardLogger())
}

func TestServer_RemoteClient(t *testing.T) {
	ctx := context.Background()
	baseURL := startTestServer(t, 0)
	client := newRemoteClient(baseURL, issueToken(t, baseURL))

	encoded, err := codec.Encode("# notes\nпривет\n")
	require.NoError(t, err)

	created, err := client.PutObject(ctx, "2024/03/notes.md", encoded, "", "sync notes.md")
	require.NoError(t, err)
	assert.True(t, created.Created)
	assert.Equal(t, crypto.BlobSHA([]byte("# notes\nпривет\n")), created.SHA)

	tag, err := client.GetVersionTag(ctx, "2024/03/notes.md")
	require.NoError(t, err)
	assert.Equal(t, created.SHA, tag)

	obj, err := client.GetObject(ctx, "2024/03/notes.md")
	require.NoError(t, err)
	assert.Equal(t, "# notes\nпривет\n", obj.Content)

	// Без sha и со старым sha запись отклоняется как конфликт
	_, err = client.PutObject(ctx, "2024/03/notes.md", encoded, "", "sync notes.md")
	assert.ErrorIs(t, err, remote.ErrConflict)
	_, err = client.PutObject(ctx, "2024/03/notes.md", encoded, "0000", "sync notes.md")
	assert.ErrorIs(t, err, remote.ErrConflict)

	updated, err := client.PutObject(ctx, "2024/03/notes.md", encoded, tag, "sync notes.md")
	require.NoError(t, err)
	assert.False(t, updated.Created)

	// Пустой .gitkeep создаёт директорию
	client.EnsureContainer(ctx, "2024/04/ideas.md")

	files, err := client.ListObjects(ctx, "2024/03")
	require.NoError(t, err)
	require.Len(t, files, 1)
	assert.Equal(t, "notes.md", files[0].Name)

	keep, err := client.GetVersionTag(ctx, "2024/04/.gitkeep")
	require.NoError(t, err)
	assert.Equal(t, crypto.BlobSHA(nil), keep)

	missing, err := client.GetVersionTag(ctx, "2023/01/none.md")
	require.NoError(t, err)
	assert.Empty(t, missing)

	empty, err := client.ListObjects(ctx, "2023")
	require.NoError(t, err)
	assert.Empty(t, empty)
}

func TestServer_RequiresToken(t *testing.T) {
	ctx := context.Background()
	baseURL := startTestServer(t, 0)

	_, err := newRemoteClient(baseURL, "not-a-token").GetObject(ctx, "a.md")
	require.Error(t, err)

	var remoteErr *remote.RemoteError
	require.ErrorAs(t, err, &remoteErr)
	assert.Equal(t, http.StatusUnauthorized, remoteErr.Status)
	assert.Equal(t, "Bad credentials", remoteErr.Message)
}

func TestServer_SyncService(t *testing.T) {
	ctx := context.Background()
	baseURL := startTestServer(t, 0)
	client := newRemoteClient(baseURL, issueToken(t, baseURL))

	store, err := boltdb.New(ctx, filepath.Join(t.TempDir(), "client.db"))
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = store.Close()
	})

	require.NoError(t, store.SaveDocument(ctx, &models.Document{
		ID:           "doc-1",
		Name:         "notes.md",
		Kind:         models.KindText,
		Content:      "first version",
		LastModified: time.Now().Add(-time.Minute),
	}))

	svc := sync.NewService(client, store, store, discardLogger())

	result, err := svc.SyncAll(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, result.Uploaded)
	assert.Equal(t, 0, result.Failed)

	doc, err := store.GetDocument(ctx, "doc-1")
	require.NoError(t, err)
	require.NotEmpty(t, doc.RemotePath)

	obj, err := client.GetObject(ctx, doc.RemotePath)
	require.NoError(t, err)
	assert.Equal(t, "first version", obj.Content)
	assert.Equal(t, obj.SHA, doc.RemoteVersionTag)

	// Повторный запуск ничего не пишет
	result, err = svc.SyncAll(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, result.Uploaded)

	// Изменение перезаписывает тот же объект по сохранённому sha
	doc.Content = "second version"
	doc.LastModified = time.Now().Add(time.Second)
	require.NoError(t, store.SaveDocument(ctx, doc))

	result, err = svc.SyncAll(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, result.Uploaded)

	obj, err = client.GetObject(ctx, doc.RemotePath)
	require.NoError(t, err)
	assert.Equal(t, "second version", obj.Content)
}

func TestServer_Routes(t *testing.T) {
	baseURL := startTestServer(t, 0)

	tests := []struct {
		name           string
		method         string
		path           string
		expectedStatus int
	}{
		{name: "health", method: http.MethodGet, path: "/api/v1/health", expectedStatus: http.StatusOK},
		{name: "unknown route", method: http.MethodGet, path: "/nope", expectedStatus: http.StatusNotFound},
		{name: "wrong method", method: http.MethodDelete, path: "/api/v1/health", expectedStatus: http.StatusMethodNotAllowed},
		{name: "tokens without auth", method: http.MethodPost, path: "/api/v1/tokens", expectedStatus: http.StatusUnauthorized},
		{name: "contents without auth", method: http.MethodGet, path: "/repos/octo/notes/contents/a.md", expectedStatus: http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req, err := http.NewRequest(tt.method, baseURL+tt.path, nil)
			require.NoError(t, err)

			resp, err := http.DefaultClient.Do(req)
			require.NoError(t, err)
			defer resp.Body.Close()

			assert.Equal(t, tt.expectedStatus, resp.StatusCode)
			assert.Equal(t, "application/json", resp.Header.Get("Content-Type"))
		})
	}
}

func TestServer_RateLimit(t *testing.T) {
	baseURL := startTestServer(t, 2)

	statuses := make([]int, 0, 3)
	for range 3 {
		resp, err := http.Get(baseURL + "/api/v1/health")
		require.NoError(t, err)
		_ = resp.Body.Close()
		statuses = append(statuses, resp.StatusCode)
	}

	assert.Equal(t, []int{http.StatusOK, http.StatusOK, http.StatusTooManyRequests}, statuses)
}

func TestServer_RunShutdown(t *testing.T) {
	objects, err := sqlite.New(context.Background(), filepath.Join(t.TempDir(), "server.db"))
	require.NoError(t, err)
	defer objects.Close()

	cfg := &config.Config{
		Addr:          "127.0.0.1:0",
		DefaultBranch: "main",
		JWTSecret:     "test-secret",
		AdminUser:     "admin",
		TokenTTL:      time.Hour,
	}
	srv := New(cfg, objects, discardLogger(), "test")

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- srv.Run(ctx)
	}()

	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not stop")
	}
}
