package handlers

import (
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"path"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/iudanet/notesync/internal/codec"
	"github.com/iudanet/notesync/internal/crypto"
	"github.com/iudanet/notesync/internal/models"
	"github.com/iudanet/notesync/internal/server/middleware"
	"github.com/iudanet/notesync/internal/server/storage"
	"github.com/iudanet/notesync/internal/validation"
	"github.com/iudanet/notesync/pkg/api"
)

const (
	// maxBodySize ограничение на тело PUT запроса
	maxBodySize = 10 << 20
	// base64LineWidth ширина строк base64 в ответах, как у GitHub
	base64LineWidth = 60
)

// ContentsHandler реализует contents API: чтение, запись и листинг файлов
type ContentsHandler struct {
	logger        *slog.Logger
	storage       storage.ObjectStorage
	validate      *validator.Validate
	now           func() time.Time
	newCommitID   func() string
	defaultBranch string
}

// NewContentsHandler создает handler для /repos/{owner}/{repo}/contents/{path}
func NewContentsHandler(logger *slog.Logger, objects storage.ObjectStorage, defaultBranch string) *ContentsHandler {
	return &ContentsHandler{
		logger:        logger,
		storage:       objects,
		validate:      validator.New(),
		now:           time.Now,
		newCommitID:   newCommitID,
		defaultBranch: defaultBranch,
	}
}

// newCommitID идентификатор коммита: 32 hex символа
func newCommitID() string {
	return strings.ReplaceAll(uuid.NewString(), "-", "")
}

// target разбирает repo и path из URL
func (h *ContentsHandler) target(r *http.Request) (repo, objectPath string, err error) {
	vars := mux.Vars(r)
	repo = vars["owner"] + "/" + vars["repo"]
	if err := validation.ValidateRepo(repo); err != nil {
		return "", "", err
	}

	objectPath = strings.Trim(vars["path"], "/")
	if objectPath != "" {
		if err := validation.ValidatePath(objectPath); err != nil {
			return "", "", err
		}
	}

	return repo, objectPath, nil
}

// Get обрабатывает GET /repos/{owner}/{repo}/contents/{path}?ref={branch}.
// Для файла возвращает объект с содержимым, для директории массив элементов.
func (h *ContentsHandler) Get(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	repo, objectPath, err := h.target(r)
	if err != nil {
		writeError(w, h.logger, http.StatusNotFound, "Not Found")
		return
	}

	branch := r.URL.Query().Get("ref")
	if branch == "" {
		branch = h.defaultBranch
	}

	if objectPath != "" {
		obj, err := h.storage.GetObject(ctx, repo, branch, objectPath)
		switch {
		case err == nil:
			writeJSON(w, h.logger, http.StatusOK, fileResponse(obj))
			return
		case !errors.Is(err, storage.ErrObjectNotFound):
			h.logger.Error("failed to get object", "repo", repo, "path", objectPath, "error", err)
			writeError(w, h.logger, http.StatusInternalServerError, "Internal Server Error")
			return
		}
	}

	// Файла нет, пробуем как директорию
	entries, err := h.storage.ListDirectory(ctx, repo, branch, objectPath)
	if errors.Is(err, storage.ErrObjectNotFound) {
		writeError(w, h.logger, http.StatusNotFound, "Not Found")
		return
	}
	if err != nil {
		h.logger.Error("failed to list directory", "repo", repo, "path", objectPath, "error", err)
		writeError(w, h.logger, http.StatusInternalServerError, "Internal Server Error")
		return
	}

	resp := make([]api.ContentResponse, 0, len(entries))
	for _, e := range entries {
		resp = append(resp, api.ContentResponse{
			Name: e.Name,
			Path: e.Path,
			SHA:  e.SHA,
			Type: e.Type,
			Size: e.Size,
		})
	}

	writeJSON(w, h.logger, http.StatusOK, resp)
}

// Put обрабатывает PUT /repos/{owner}/{repo}/contents/{path}.
// 201 при создании, 200 при обновлении, 409 при устаревшем sha,
// 422 если sha не передан для существующего файла.
func (h *ContentsHandler) Put(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	repo, objectPath, err := h.target(r)
	if err != nil {
		writeError(w, h.logger, http.StatusUnprocessableEntity, fmt.Sprintf("Invalid request: %v", err))
		return
	}
	if objectPath == "" {
		writeError(w, h.logger, http.StatusUnprocessableEntity, "Invalid request: path is required")
		return
	}

	var req api.PutContentRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodySize)).Decode(&req); err != nil {
		writeError(w, h.logger, http.StatusBadRequest, "Problems parsing JSON")
		return
	}

	if err := h.validate.Struct(req); err != nil {
		writeError(w, h.logger, http.StatusUnprocessableEntity, fmt.Sprintf("Invalid request: %s", validationMessage(err)))
		return
	}

	content, err := decodeContent(req.Content)
	if err != nil {
		writeError(w, h.logger, http.StatusUnprocessableEntity, "content is not valid Base64")
		return
	}

	branch := req.Branch
	if branch == "" {
		branch = h.defaultBranch
	}

	obj := &models.Object{
		Repo:      repo,
		Branch:    branch,
		Path:      objectPath,
		SHA:       crypto.BlobSHA(content),
		Content:   content,
		Size:      int64(len(content)),
		Message:   req.Message,
		CommitSHA: h.newCommitID(),
		UpdatedAt: h.now().UTC(),
	}

	created, err := h.storage.PutObject(ctx, obj, req.SHA)
	switch {
	case errors.Is(err, storage.ErrSHARequired):
		writeError(w, h.logger, http.StatusUnprocessableEntity, "Invalid request.\n\n\"sha\" wasn't supplied.")
		return
	case errors.Is(err, storage.ErrSHAMismatch):
		writeError(w, h.logger, http.StatusConflict, fmt.Sprintf("%s does not match %s", objectPath, req.SHA))
		return
	case err != nil:
		h.logger.Error("failed to put object", "repo", repo, "path", objectPath, "error", err)
		writeError(w, h.logger, http.StatusInternalServerError, "Internal Server Error")
		return
	}

	subject, _ := middleware.SubjectFromContext(ctx)
	h.logger.Info("object written",
		"repo", repo,
		"branch", branch,
		"path", objectPath,
		"sha", obj.SHA,
		"created", created,
		"subject", subject,
	)

	status := http.StatusOK
	if created {
		status = http.StatusCreated
	}

	writeJSON(w, h.logger, status, api.PutContentResponse{
		Content: api.ContentResponse{
			Name: path.Base(obj.Path),
			Path: obj.Path,
			SHA:  obj.SHA,
			Type: api.TypeFile,
			Size: obj.Size,
		},
		Commit: api.CommitInfo{
			SHA:     obj.CommitSHA,
			Message: obj.Message,
		},
	})
}

func fileResponse(obj *models.Object) api.ContentResponse {
	encoded := base64.StdEncoding.EncodeToString(obj.Content)
	return api.ContentResponse{
		Name:     path.Base(obj.Path),
		Path:     obj.Path,
		SHA:      obj.SHA,
		Type:     api.TypeFile,
		Content:  codec.Wrap(encoded, base64LineWidth),
		Encoding: api.EncodingBase64,
		Size:     obj.Size,
	}
}

// decodeContent раскодирует base64, допуская переносы строк
func decodeContent(encoded string) ([]byte, error) {
	cleaned := strings.Join(strings.Fields(encoded), "")
	return base64.StdEncoding.DecodeString(cleaned)
}

func validationMessage(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err.Error()
	}

	fields := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		fields = append(fields, fmt.Sprintf("%q is %s", strings.ToLower(fe.Field()), fe.Tag()))
	}
	return strings.Join(fields, ", ")
}
