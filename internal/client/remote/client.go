// Package remote реализует клиент contents API удалённого хранилища
// (GitHub или notesync-server).
package remote

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"path"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/iudanet/notesync/internal/codec"
	"github.com/iudanet/notesync/internal/config"
	"github.com/iudanet/notesync/pkg/api"
)

const (
	acceptHeader = "application/vnd.github.v3+json"
	keepFile     = ".gitkeep"
	// maxErrorBody сколько байт тела ответа включать в текст ошибки
	maxErrorBody = 512
)

// ObjectInfo элемент листинга директории (только файлы)
type ObjectInfo struct {
	Name string
	Path string
	SHA  string
	Size int64
}

// Object содержимое одного объекта, уже декодированное из base64
type Object struct {
	Path    string
	SHA     string
	Content string
	Size    int64
}

// PutResult результат успешной записи
type PutResult struct {
	Path      string
	SHA       string // новый version tag объекта
	CommitSHA string
	Created   bool // true, если объект был создан (201)
}

// Client представляет HTTP клиент contents API
type Client struct {
	httpClient *http.Client
	logger     *slog.Logger
	cfg        config.SyncConfig
}

// NewClient создает новый клиент удалённого хранилища
func NewClient(cfg config.SyncConfig, logger *slog.Logger) *Client {
	timeout := cfg.RequestTimeout
	if timeout <= 0 {
		timeout = config.DefaultRequestTimeout
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = config.DefaultBaseURL
	}
	cfg.BaseURL = strings.TrimRight(cfg.BaseURL, "/")

	return &Client{
		cfg:    cfg,
		logger: logger,
		httpClient: &http.Client{
			Timeout: timeout,
			// Настройка обработки редиректов
			CheckRedirect: func(req *http.Request, via []*http.Request) error {
				// Ограничиваем количество редиректов
				if len(via) >= 10 {
					return fmt.Errorf("stopped after 10 redirects")
				}
				// Копируем заголовки Authorization при редиректе
				if len(via) > 0 && via[0].Header.Get("Authorization") != "" {
					req.Header.Set("Authorization", via[0].Header.Get("Authorization"))
				}
				return nil
			},
		},
	}
}

// Configured сообщает, заданы ли токен и репозиторий
func (c *Client) Configured() bool {
	return c.cfg.Configured()
}

// GetVersionTag возвращает sha объекта по пути или "", если объекта нет
func (c *Client) GetVersionTag(ctx context.Context, objectPath string) (string, error) {
	var resp api.ContentResponse
	err := c.doRequest(ctx, http.MethodGet, c.contentsURL(objectPath, true), nil, &resp)
	if errors.Is(err, ErrNotFound) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("get version tag %s: %w", objectPath, err)
	}
	return resp.SHA, nil
}

// GetObject загружает и декодирует содержимое объекта
func (c *Client) GetObject(ctx context.Context, objectPath string) (*Object, error) {
	var resp api.ContentResponse
	if err := c.doRequest(ctx, http.MethodGet, c.contentsURL(objectPath, true), nil, &resp); err != nil {
		return nil, fmt.Errorf("get object %s: %w", objectPath, err)
	}

	if resp.Type != "" && resp.Type != api.TypeFile {
		return nil, fmt.Errorf("get object %s: not a file (%s)", objectPath, resp.Type)
	}

	content, err := codec.Decode(resp.Content)
	if err != nil {
		return nil, fmt.Errorf("failed to decode object %s: %w", objectPath, err)
	}

	return &Object{
		Path:    resp.Path,
		SHA:     resp.SHA,
		Content: content,
		Size:    resp.Size,
	}, nil
}

// PutObject создает (expectedTag == "") или обновляет объект.
// Конфликт версий возвращается как *RemoteError, который сравнивается с ErrConflict.
func (c *Client) PutObject(ctx context.Context, objectPath, encoded, expectedTag, message string) (*PutResult, error) {
	req := api.PutContentRequest{
		Message: message,
		Content: encoded,
		Branch:  c.cfg.Branch,
		SHA:     expectedTag,
	}

	var resp api.PutContentResponse
	status, err := c.do(ctx, http.MethodPut, c.contentsURL(objectPath, false), req, &resp)
	if err != nil {
		return nil, fmt.Errorf("put object %s: %w", objectPath, err)
	}

	return &PutResult{
		Path:      objectPath,
		SHA:       resp.Content.SHA,
		CommitSHA: resp.Commit.SHA,
		Created:   status == http.StatusCreated,
	}, nil
}

// ListObjects возвращает файлы директории prefix. Отсутствующая директория = пустой список.
func (c *Client) ListObjects(ctx context.Context, prefix string) ([]ObjectInfo, error) {
	var entries []api.ContentResponse
	err := c.doRequest(ctx, http.MethodGet, c.contentsURL(strings.Trim(prefix, "/"), true), nil, &entries)
	if errors.Is(err, ErrNotFound) {
		return []ObjectInfo{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("list objects %s: %w", prefix, err)
	}

	objects := make([]ObjectInfo, 0, len(entries))
	for _, e := range entries {
		if e.Type != api.TypeFile {
			continue
		}
		objects = append(objects, ObjectInfo{
			Name: e.Name,
			Path: e.Path,
			SHA:  e.SHA,
			Size: e.Size,
		})
	}
	return objects, nil
}

// EnsureContainer создает родительскую директорию объекта через пустой .gitkeep.
// Ошибки только логируются: запись самого объекта всё равно создаст директорию.
func (c *Client) EnsureContainer(ctx context.Context, objectPath string) {
	dir := path.Dir(objectPath)
	if dir == "." || dir == "/" || dir == "" {
		return
	}

	keepPath := dir + "/" + keepFile
	tag, err := c.GetVersionTag(ctx, keepPath)
	if err != nil {
		c.logger.Warn("failed to check directory", "path", dir, "error", err)
		return
	}
	if tag != "" {
		return
	}

	if _, err := c.PutObject(ctx, keepPath, "", "", fmt.Sprintf("Create %s directory", dir)); err != nil {
		c.logger.Warn("failed to create directory", "path", dir, "error", err)
		return
	}
	c.logger.Debug("directory created", "path", dir)
}

func (c *Client) contentsURL(objectPath string, withRef bool) string {
	segments := strings.Split(objectPath, "/")
	for i, s := range segments {
		segments[i] = url.PathEscape(s)
	}

	u := fmt.Sprintf("%s/repos/%s/contents/%s", c.cfg.BaseURL, c.cfg.Repo, strings.Join(segments, "/"))
	if withRef && c.cfg.Branch != "" {
		u += "?ref=" + url.QueryEscape(c.cfg.Branch)
	}
	return u
}

// doRequest выполняет HTTP запрос
func (c *Client) doRequest(ctx context.Context, method, u string, body, result any) error {
	_, err := c.do(ctx, method, u, body, result)
	return err
}

func (c *Client) do(ctx context.Context, method, u string, body, result any) (int, error) {
	if !c.Configured() {
		return 0, ErrNotConfigured
	}

	var bodyReader io.Reader
	if body != nil {
		jsonData, err := json.Marshal(body)
		if err != nil {
			return 0, fmt.Errorf("failed to marshal request body: %w", err)
		}
		bodyReader = bytes.NewReader(jsonData)
	}

	req, err := http.NewRequestWithContext(ctx, method, u, bodyReader)
	if err != nil {
		return 0, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Authorization", "token "+c.cfg.Token)
	req.Header.Set("Accept", acceptHeader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	started := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return 0, fmt.Errorf("request failed: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	// Читаем тело ответа
	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return resp.StatusCode, fmt.Errorf("failed to read response body: %w", err)
	}

	c.logger.Debug("remote request",
		"method", method,
		"url", req.URL.Path,
		"status", resp.StatusCode,
		"duration", time.Since(started),
	)

	// Проверяем статус код
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return resp.StatusCode, newRemoteError(resp.StatusCode, respBody)
	}

	// Декодируем успешный ответ
	if result != nil && len(respBody) > 0 {
		if err := json.Unmarshal(respBody, result); err != nil {
			return resp.StatusCode, fmt.Errorf("failed to decode response: %w", err)
		}
	}

	return resp.StatusCode, nil
}

func newRemoteError(status int, body []byte) *RemoteError {
	var errResp api.ErrorResponse
	if err := json.Unmarshal(body, &errResp); err == nil && errResp.Message != "" {
		return &RemoteError{Status: status, Message: errResp.Message}
	}

	msg := strings.TrimSpace(string(body))
	if len(msg) > maxErrorBody {
		// обрезка по границе руны
		cut := maxErrorBody
		for cut > 0 && !utf8.RuneStart(msg[cut]) {
			cut--
		}
		msg = msg[:cut]
	}
	return &RemoteError{Status: status, Message: msg}
}
