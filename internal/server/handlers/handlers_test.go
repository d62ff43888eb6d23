package handlers

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/notesync/internal/crypto"
	"github.com/iudanet/notesync/internal/models"
	"github.com/iudanet/notesync/internal/server/storage"
	"github.com/iudanet/notesync/internal/server/storage/sqlite"
	"github.com/iudanet/notesync/pkg/api"
)

func setupTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func createTestStorage(t *testing.T) *sqlite.Storage {
	t.Helper()

	s, err := sqlite.New(context.Background(), filepath.Join(t.TempDir(), "server.db"))
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = s.Close()
	})
	return s
}

func newContentsRouter(h *ContentsHandler) *mux.Router {
	r := mux.NewRouter()
	r.HandleFunc("/repos/{owner}/{repo}/contents", h.Get).Methods(http.MethodGet)
	r.HandleFunc("/repos/{owner}/{repo}/contents/{path:.*}", h.Get).Methods(http.MethodGet)
	r.HandleFunc("/repos/{owner}/{repo}/contents/{path:.*}", h.Put).Methods(http.MethodPut)
	return r
}

func newTestContentsHandler(objects storage.ObjectStorage) *ContentsHandler {
	h := NewContentsHandler(setupTestLogger(), objects, "main")
	h.now = func() time.Time { return time.Date(2024, 3, 2, 10, 0, 0, 0, time.UTC) }
	seq := 0
	h.newCommitID = func() string {
		seq++
		return "commit-" + string(rune('0'+seq))
	}
	return h
}

func putRequest(t *testing.T, target string, body api.PutContentRequest) *http.Request {
	t.Helper()

	data, err := json.Marshal(body)
	require.NoError(t, err)
	return httptest.NewRequest(http.MethodPut, target, bytes.NewReader(data))
}

func encode(s string) string {
	return base64.StdEncoding.EncodeToString([]byte(s))
}

func TestContentsHandler_PutAndGet(t *testing.T) {
	router := newContentsRouter(newTestContentsHandler(createTestStorage(t)))

	// Создание
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, putRequest(t, "/repos/octo/notes/contents/2024/03/notes.md", api.PutContentRequest{
		Message: "sync notes.md",
		Content: encode("# notes\n"),
	}))
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var created api.PutContentResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&created))
	assert.Equal(t, "notes.md", created.Content.Name)
	assert.Equal(t, "2024/03/notes.md", created.Content.Path)
	assert.Equal(t, crypto.BlobSHA([]byte("# notes\n")), created.Content.SHA)
	assert.Equal(t, api.TypeFile, created.Content.Type)
	assert.Equal(t, int64(8), created.Content.Size)
	assert.Equal(t, "commit-1", created.Commit.SHA)
	assert.Equal(t, "sync notes.md", created.Commit.Message)

	// Чтение
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/repos/octo/notes/contents/2024/03/notes.md?ref=main", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	var file api.ContentResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&file))
	assert.Equal(t, created.Content.SHA, file.SHA)
	assert.Equal(t, api.EncodingBase64, file.Encoding)
	assert.Equal(t, encode("# notes\n"), file.Content)

	// Обновление с актуальным sha
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, putRequest(t, "/repos/octo/notes/contents/2024/03/notes.md", api.PutContentRequest{
		Message: "sync notes.md",
		Content: encode("# notes\nmore\n"),
		SHA:     created.Content.SHA,
	}))
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var updated api.PutContentResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&updated))
	assert.NotEqual(t, created.Content.SHA, updated.Content.SHA)
	assert.Equal(t, "commit-2", updated.Commit.SHA)
}

func TestContentsHandler_PutConflicts(t *testing.T) {
	router := newContentsRouter(newTestContentsHandler(createTestStorage(t)))

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, putRequest(t, "/repos/octo/notes/contents/a.md", api.PutContentRequest{
		Message: "create",
		Content: encode("v1"),
	}))
	require.Equal(t, http.StatusCreated, rec.Code)

	tests := []struct {
		name           string
		sha            string
		expectedStatus int
		expectedInBody string
	}{
		{name: "missing sha", sha: "", expectedStatus: http.StatusUnprocessableEntity, expectedInBody: `\"sha\" wasn't supplied`},
		{name: "stale sha", sha: "0000", expectedStatus: http.StatusConflict, expectedInBody: "a.md does not match 0000"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, putRequest(t, "/repos/octo/notes/contents/a.md", api.PutContentRequest{
				Message: "update",
				Content: encode("v2"),
				SHA:     tt.sha,
			}))
			assert.Equal(t, tt.expectedStatus, rec.Code)
			assert.Contains(t, rec.Body.String(), tt.expectedInBody)
		})
	}
}

func TestContentsHandler_PutInvalid(t *testing.T) {
	router := newContentsRouter(newTestContentsHandler(&storage.ObjectStorageMock{}))

	tests := []struct {
		name           string
		target         string
		body           string
		expectedStatus int
	}{
		{
			name:           "broken json",
			target:         "/repos/octo/notes/contents/a.md",
			body:           `{"message":`,
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "missing message",
			target:         "/repos/octo/notes/contents/a.md",
			body:           `{"content":"` + encode("x") + `"}`,
			expectedStatus: http.StatusUnprocessableEntity,
		},
		{
			name:           "invalid base64",
			target:         "/repos/octo/notes/contents/a.md",
			body:           `{"message":"m","content":"%%%"}`,
			expectedStatus: http.StatusUnprocessableEntity,
		},
		{
			name:           "control character in path",
			target:         "/repos/octo/notes/contents/a%01.md",
			body:           `{"message":"m","content":""}`,
			expectedStatus: http.StatusUnprocessableEntity,
		},
		{
			name:           "invalid repo",
			target:         "/repos/-octo/notes/contents/a.md",
			body:           `{"message":"m","content":""}`,
			expectedStatus: http.StatusUnprocessableEntity,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, httptest.NewRequest(http.MethodPut, tt.target, strings.NewReader(tt.body)))
			assert.Equal(t, tt.expectedStatus, rec.Code)

			var resp api.ErrorResponse
			require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
			assert.NotEmpty(t, resp.Message)
		})
	}
}

func TestContentsHandler_PutWrappedContent(t *testing.T) {
	var stored *models.Object
	objects := &storage.ObjectStorageMock{
		PutObjectFunc: func(ctx context.Context, obj *models.Object, expectedSHA string) (bool, error) {
			stored = obj
			return true, nil
		},
	}
	router := newContentsRouter(newTestContentsHandler(objects))

	text := strings.Repeat("line of text\n", 20)
	encoded := encode(text)
	wrapped := encoded[:60] + "\n" + encoded[60:]

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, putRequest(t, "/repos/octo/notes/contents/long.md", api.PutContentRequest{
		Message: "m",
		Content: wrapped,
		Branch:  "dev",
	}))
	require.Equal(t, http.StatusCreated, rec.Code)

	require.NotNil(t, stored)
	assert.Equal(t, []byte(text), stored.Content)
	assert.Equal(t, "dev", stored.Branch)
	assert.Equal(t, "octo/notes", stored.Repo)
	assert.Equal(t, int64(len(text)), stored.Size)
}

func TestContentsHandler_GetDirectory(t *testing.T) {
	objects := createTestStorage(t)
	router := newContentsRouter(newTestContentsHandler(objects))

	for _, p := range []string{"2024/03/a.md", "2024/03/b.md", "2024/04/c.md"} {
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, putRequest(t, "/repos/octo/notes/contents/"+p, api.PutContentRequest{
			Message: "create " + p,
			Content: encode(p),
		}))
		require.Equal(t, http.StatusCreated, rec.Code)
	}

	t.Run("directory", func(t *testing.T) {
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/repos/octo/notes/contents/2024/03?ref=main", nil))
		require.Equal(t, http.StatusOK, rec.Code)

		var entries []api.ContentResponse
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&entries))
		require.Len(t, entries, 2)
		assert.Equal(t, "a.md", entries[0].Name)
		assert.Equal(t, "2024/03/b.md", entries[1].Path)
		assert.Empty(t, entries[0].Content)
	})

	t.Run("root", func(t *testing.T) {
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/repos/octo/notes/contents", nil))
		require.Equal(t, http.StatusOK, rec.Code)

		var entries []api.ContentResponse
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&entries))
		require.Len(t, entries, 1)
		assert.Equal(t, api.TypeDir, entries[0].Type)
	})

	t.Run("other branch is empty", func(t *testing.T) {
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/repos/octo/notes/contents/2024/03?ref=dev", nil))
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("missing", func(t *testing.T) {
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/repos/octo/notes/contents/2023/01/x.md", nil))
		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Contains(t, rec.Body.String(), "Not Found")
	})
}

func TestContentsHandler_StorageErrors(t *testing.T) {
	failure := errors.New("disk I/O error")
	objects := &storage.ObjectStorageMock{
		GetObjectFunc: func(ctx context.Context, repo, branch, path string) (*models.Object, error) {
			return nil, failure
		},
		ListDirectoryFunc: func(ctx context.Context, repo, branch, dir string) ([]models.DirEntry, error) {
			return nil, failure
		},
		PutObjectFunc: func(ctx context.Context, obj *models.Object, expectedSHA string) (bool, error) {
			return false, failure
		},
	}
	router := newContentsRouter(newTestContentsHandler(objects))

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/repos/octo/notes/contents/a.md", nil))
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.NotContains(t, rec.Body.String(), "disk")

	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/repos/octo/notes/contents", nil))
	assert.Equal(t, http.StatusInternalServerError, rec.Code)

	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, putRequest(t, "/repos/octo/notes/contents/a.md", api.PutContentRequest{Message: "m"}))
	assert.Equal(t, http.StatusInternalServerError, rec.Code)

	// Поиск по умолчанию идёт в ветке main
	require.Len(t, objects.GetObjectCalls(), 1)
	assert.Equal(t, "main", objects.GetObjectCalls()[0].Branch)
	assert.Equal(t, "octo/notes", objects.GetObjectCalls()[0].Repo)
}

type issuerFunc func(subject string) (string, int64, error)

func (f issuerFunc) Issue(subject string) (string, int64, error) {
	return f(subject)
}

func TestTokenHandler_Create(t *testing.T) {
	hash, err := crypto.HashPassword("s3cret")
	require.NoError(t, err)

	issuer := issuerFunc(func(subject string) (string, int64, error) {
		return "token-for-" + subject, 3600, nil
	})
	handler := NewTokenHandler(setupTestLogger(), issuer, "admin", hash)

	tests := []struct {
		name           string
		username       string
		password       string
		noAuth         bool
		expectedStatus int
	}{
		{name: "valid credentials", username: "admin", password: "s3cret", expectedStatus: http.StatusCreated},
		{name: "wrong password", username: "admin", password: "nope", expectedStatus: http.StatusUnauthorized},
		{name: "wrong user", username: "root", password: "s3cret", expectedStatus: http.StatusUnauthorized},
		{name: "no basic auth", noAuth: true, expectedStatus: http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/api/v1/tokens", nil)
			if !tt.noAuth {
				req.SetBasicAuth(tt.username, tt.password)
			}
			rec := httptest.NewRecorder()

			handler.Create(rec, req)

			assert.Equal(t, tt.expectedStatus, rec.Code)
			if tt.expectedStatus != http.StatusCreated {
				return
			}

			var resp api.TokenResponse
			require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
			assert.Equal(t, "token-for-admin", resp.AccessToken)
			assert.Equal(t, "token", resp.TokenType)
			assert.Equal(t, int64(3600), resp.ExpiresIn)
		})
	}
}

func TestTokenHandler_NoPasswordConfigured(t *testing.T) {
	issuer := issuerFunc(func(subject string) (string, int64, error) {
		t.Fatal("token must not be issued")
		return "", 0, nil
	})
	handler := NewTokenHandler(setupTestLogger(), issuer, "admin", "")

	req := httptest.NewRequest(http.MethodPost, "/api/v1/tokens", nil)
	req.SetBasicAuth("admin", "")
	rec := httptest.NewRecorder()

	handler.Create(rec, req)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestTokenHandler_IssueError(t *testing.T) {
	hash, err := crypto.HashPassword("s3cret")
	require.NoError(t, err)

	issuer := issuerFunc(func(subject string) (string, int64, error) {
		return "", 0, errors.New("sign failed")
	})
	handler := NewTokenHandler(setupTestLogger(), issuer, "admin", hash)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/tokens", nil)
	req.SetBasicAuth("admin", "s3cret")
	rec := httptest.NewRecorder()

	handler.Create(rec, req)
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestHealthHandler_Health(t *testing.T) {
	t.Run("ok", func(t *testing.T) {
		handler := NewHealthHandler(setupTestLogger(), createTestStorage(t), "1.2.3")

		rec := httptest.NewRecorder()
		handler.Health(rec, httptest.NewRequest(http.MethodGet, "/api/v1/health", nil))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

		var resp api.HealthResponse
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
		assert.Equal(t, "ok", resp.Status)
		assert.Equal(t, "1.2.3", resp.Version)
	})

	t.Run("database unavailable", func(t *testing.T) {
		pinger := &storage.ObjectStorageMock{
			PingFunc: func(ctx context.Context) error {
				return errors.New("database is closed")
			},
		}
		handler := NewHealthHandler(setupTestLogger(), pinger, "dev")

		rec := httptest.NewRecorder()
		handler.Health(rec, httptest.NewRequest(http.MethodGet, "/api/v1/health", nil))

		assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
		assert.Contains(t, rec.Body.String(), "unavailable")
	})
}
