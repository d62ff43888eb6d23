package remote

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/notesync/internal/codec"
	"github.com/iudanet/notesync/internal/config"
	"github.com/iudanet/notesync/internal/logging"
	"github.com/iudanet/notesync/pkg/api"
)

const (
	testToken = "ghp_test"
	testRepo  = "octocat/notes"
)

func newTestClient(baseURL string) *Client {
	return NewClient(config.SyncConfig{
		BaseURL: baseURL,
		Token:   testToken,
		Repo:    testRepo,
		Branch:  "main",
	}, logging.Discard())
}

// fakeContents минимальная реализация contents API в памяти
type fakeContents struct {
	files map[string]api.ContentResponse
	puts  []api.PutContentRequest
	mu    sync.Mutex
}

func newFakeContents() *fakeContents {
	return &fakeContents{files: make(map[string]api.ContentResponse)}
}

func (f *fakeContents) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	f.mu.Lock()
	defer f.mu.Unlock()

	prefix := "/repos/" + testRepo + "/contents/"
	if !strings.HasPrefix(r.URL.Path, prefix) {
		http.NotFound(w, r)
		return
	}
	p := strings.TrimPrefix(r.URL.Path, prefix)

	switch r.Method {
	case http.MethodGet:
		if file, ok := f.files[p]; ok {
			_ = json.NewEncoder(w).Encode(file)
			return
		}
		var entries []api.ContentResponse
		for fp, file := range f.files {
			if strings.HasPrefix(fp, p+"/") {
				file.Content = ""
				entries = append(entries, file)
			}
		}
		if len(entries) == 0 {
			w.WriteHeader(http.StatusNotFound)
			_ = json.NewEncoder(w).Encode(api.ErrorResponse{Message: "Not Found"})
			return
		}
		_ = json.NewEncoder(w).Encode(entries)
	case http.MethodPut:
		var req api.PutContentRequest
		_ = json.NewDecoder(r.Body).Decode(&req)
		f.puts = append(f.puts, req)

		existing, exists := f.files[p]
		switch {
		case exists && req.SHA == "":
			w.WriteHeader(http.StatusUnprocessableEntity)
			_ = json.NewEncoder(w).Encode(api.ErrorResponse{Message: `Invalid request. "sha" wasn't supplied.`})
			return
		case exists && req.SHA != existing.SHA:
			w.WriteHeader(http.StatusConflict)
			_ = json.NewEncoder(w).Encode(api.ErrorResponse{Message: "does not match"})
			return
		}

		sha := "sha-" + p + "-" + string(rune('a'+len(f.puts)))
		name := p[strings.LastIndex(p, "/")+1:]
		f.files[p] = api.ContentResponse{Name: name, Path: p, SHA: sha, Type: api.TypeFile, Content: req.Content, Encoding: api.EncodingBase64}

		status := http.StatusOK
		if !exists {
			status = http.StatusCreated
		}
		w.WriteHeader(status)
		_ = json.NewEncoder(w).Encode(api.PutContentResponse{
			Content: f.files[p],
			Commit:  api.CommitInfo{SHA: "commit-" + sha, Message: req.Message},
		})
	default:
		w.WriteHeader(http.StatusMethodNotAllowed)
	}
}

func TestNewClient(t *testing.T) {
	client := NewClient(config.SyncConfig{BaseURL: "https://api.github.com/"}, logging.Discard())

	assert.NotNil(t, client.httpClient)
	assert.Equal(t, 30*time.Second, client.httpClient.Timeout)
	assert.Equal(t, "https://api.github.com", client.cfg.BaseURL)
	assert.False(t, client.Configured())
}

func TestClient_NotConfigured(t *testing.T) {
	called := false
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	}))
	defer server.Close()

	client := NewClient(config.SyncConfig{BaseURL: server.URL, Repo: testRepo}, logging.Discard())

	_, err := client.GetVersionTag(context.Background(), "2024/03/notes.md")
	assert.ErrorIs(t, err, ErrNotConfigured)

	_, err = client.PutObject(context.Background(), "2024/03/notes.md", "", "", "Update")
	assert.ErrorIs(t, err, ErrNotConfigured)
	assert.False(t, called)
}

func TestClient_GetVersionTag(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "token "+testToken, r.Header.Get("Authorization"))
		assert.Equal(t, acceptHeader, r.Header.Get("Accept"))
		assert.Equal(t, "main", r.URL.Query().Get("ref"))

		switch r.URL.Path {
		case "/repos/octocat/notes/contents/2024/03/notes.md":
			_ = json.NewEncoder(w).Encode(api.ContentResponse{SHA: "abc123", Type: api.TypeFile})
		case "/repos/octocat/notes/contents/2024/03/broken.md":
			w.WriteHeader(http.StatusInternalServerError)
			_, _ = w.Write([]byte("Internal Server Error"))
		default:
			w.WriteHeader(http.StatusNotFound)
			_ = json.NewEncoder(w).Encode(api.ErrorResponse{Message: "Not Found"})
		}
	}))
	defer server.Close()

	client := newTestClient(server.URL)
	ctx := context.Background()

	tag, err := client.GetVersionTag(ctx, "2024/03/notes.md")
	require.NoError(t, err)
	assert.Equal(t, "abc123", tag)

	tag, err = client.GetVersionTag(ctx, "2024/03/missing.md")
	require.NoError(t, err)
	assert.Empty(t, tag)

	_, err = client.GetVersionTag(ctx, "2024/03/broken.md")
	var remoteErr *RemoteError
	require.ErrorAs(t, err, &remoteErr)
	assert.Equal(t, http.StatusInternalServerError, remoteErr.Status)
	assert.Equal(t, "Internal Server Error", remoteErr.Message)
	assert.NotErrorIs(t, err, ErrConflict)
}

func TestClient_PathEscaping(t *testing.T) {
	var gotPath string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.EscapedPath()
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	_, err := newTestClient(server.URL).GetVersionTag(context.Background(), "2024/03/my notes#1.md")
	require.NoError(t, err)
	assert.Equal(t, "/repos/octocat/notes/contents/2024/03/my%20notes%231.md", gotPath)
}

func TestClient_PutObject(t *testing.T) {
	fake := newFakeContents()
	server := httptest.NewServer(fake)
	defer server.Close()

	client := newTestClient(server.URL)
	ctx := context.Background()

	encoded, err := codec.Encode("hello")
	require.NoError(t, err)

	created, err := client.PutObject(ctx, "2024/03/notes.md", encoded, "", "Update 2024/03/notes.md")
	require.NoError(t, err)
	assert.True(t, created.Created)
	assert.NotEmpty(t, created.SHA)
	assert.NotEmpty(t, created.CommitSHA)

	require.Len(t, fake.puts, 1)
	assert.Equal(t, "Update 2024/03/notes.md", fake.puts[0].Message)
	assert.Equal(t, "main", fake.puts[0].Branch)
	assert.Empty(t, fake.puts[0].SHA)
	assert.Equal(t, encoded, fake.puts[0].Content)

	updated, err := client.PutObject(ctx, "2024/03/notes.md", encoded, created.SHA, "Update 2024/03/notes.md")
	require.NoError(t, err)
	assert.False(t, updated.Created)
	assert.NotEqual(t, created.SHA, updated.SHA)
	assert.Equal(t, created.SHA, fake.puts[1].SHA)
}

func TestClient_PutObject_Conflicts(t *testing.T) {
	fake := newFakeContents()
	fake.files["2024/03/notes.md"] = api.ContentResponse{Path: "2024/03/notes.md", SHA: "current", Type: api.TypeFile}
	server := httptest.NewServer(fake)
	defer server.Close()

	client := newTestClient(server.URL)
	ctx := context.Background()

	// Устаревший sha
	_, err := client.PutObject(ctx, "2024/03/notes.md", "", "stale", "Update")
	assert.ErrorIs(t, err, ErrConflict)
	var remoteErr *RemoteError
	require.ErrorAs(t, err, &remoteErr)
	assert.Equal(t, http.StatusConflict, remoteErr.Status)

	// sha не передан для существующего файла
	_, err = client.PutObject(ctx, "2024/03/notes.md", "", "", "Update")
	assert.ErrorIs(t, err, ErrConflict)
	require.ErrorAs(t, err, &remoteErr)
	assert.Equal(t, http.StatusUnprocessableEntity, remoteErr.Status)
}

func TestRemoteError_Is(t *testing.T) {
	tests := []struct {
		err      *RemoteError
		target   error
		name     string
		expected bool
	}{
		{name: "409 is conflict", err: &RemoteError{Status: 409}, target: ErrConflict, expected: true},
		{name: "422 sha is conflict", err: &RemoteError{Status: 422, Message: `"sha" wasn't supplied`}, target: ErrConflict, expected: true},
		{name: "422 other is not conflict", err: &RemoteError{Status: 422, Message: "invalid path"}, target: ErrConflict, expected: false},
		{name: "404 is not found", err: &RemoteError{Status: 404}, target: ErrNotFound, expected: true},
		{name: "500 is neither", err: &RemoteError{Status: 500}, target: ErrConflict, expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			wrapped := errors.Join(errors.New("context"), tt.err)
			assert.Equal(t, tt.expected, errors.Is(wrapped, tt.target))
		})
	}
}

func TestNewRemoteError_TruncatesOnRuneBoundary(t *testing.T) {
	// "ы" занимает 2 байта, граница maxErrorBody приходится на середину руны
	body := "a" + strings.Repeat("ы", maxErrorBody)

	err := newRemoteError(http.StatusBadGateway, []byte(body))
	assert.True(t, utf8.ValidString(err.Message))
	assert.LessOrEqual(t, len(err.Message), maxErrorBody)
	assert.Equal(t, maxErrorBody-1, len(err.Message))

	short := newRemoteError(http.StatusBadGateway, []byte("  bad gateway \n"))
	assert.Equal(t, "bad gateway", short.Message)
}

func TestClient_GetObject(t *testing.T) {
	fake := newFakeContents()
	encoded, err := codec.Encode(strings.Repeat("# Заметка\n", 20))
	require.NoError(t, err)
	fake.files["2024/03/notes.md"] = api.ContentResponse{
		Name:    "notes.md",
		Path:    "2024/03/notes.md",
		SHA:     "abc",
		Type:    api.TypeFile,
		Content: codec.Wrap(encoded, 60),
	}
	server := httptest.NewServer(fake)
	defer server.Close()

	client := newTestClient(server.URL)

	obj, err := client.GetObject(context.Background(), "2024/03/notes.md")
	require.NoError(t, err)
	assert.Equal(t, "abc", obj.SHA)
	assert.Equal(t, strings.Repeat("# Заметка\n", 20), obj.Content)

	_, err = client.GetObject(context.Background(), "2024/03/missing.md")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestClient_ListObjects(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/repos/octocat/notes/contents/2024/03":
			_ = json.NewEncoder(w).Encode([]api.ContentResponse{
				{Name: "notes.md", Path: "2024/03/notes.md", SHA: "a", Type: api.TypeFile, Size: 5},
				{Name: "sub", Path: "2024/03/sub", SHA: "b", Type: api.TypeDir},
				{Name: "board.tldraw", Path: "2024/03/board.tldraw", SHA: "c", Type: api.TypeFile},
			})
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	defer server.Close()

	client := newTestClient(server.URL)

	objects, err := client.ListObjects(context.Background(), "2024/03/")
	require.NoError(t, err)
	require.Len(t, objects, 2)
	assert.Equal(t, "notes.md", objects[0].Name)
	assert.Equal(t, int64(5), objects[0].Size)
	assert.Equal(t, "board.tldraw", objects[1].Name)

	objects, err = client.ListObjects(context.Background(), "2023/12")
	require.NoError(t, err)
	assert.Empty(t, objects)
}

func TestClient_EnsureContainer(t *testing.T) {
	fake := newFakeContents()
	server := httptest.NewServer(fake)
	defer server.Close()

	client := newTestClient(server.URL)
	ctx := context.Background()

	client.EnsureContainer(ctx, "2024/03/notes.md")
	require.Len(t, fake.puts, 1)
	assert.Equal(t, "Create 2024/03 directory", fake.puts[0].Message)
	assert.Empty(t, fake.puts[0].Content)
	_, ok := fake.files["2024/03/.gitkeep"]
	assert.True(t, ok)

	// Повторный вызов ничего не пишет
	client.EnsureContainer(ctx, "2024/03/other.md")
	assert.Len(t, fake.puts, 1)

	// Объект в корне: директория не нужна
	client.EnsureContainer(ctx, "README.md")
	assert.Len(t, fake.puts, 1)
}

func TestClient_EnsureContainer_FailureIsIgnored(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		_ = json.NewEncoder(w).Encode(api.ErrorResponse{Message: "Resource not accessible"})
	}))
	defer server.Close()

	assert.NotPanics(t, func() {
		newTestClient(server.URL).EnsureContainer(context.Background(), "2024/03/notes.md")
	})
}
