package handlers

import (
	"crypto/subtle"
	"errors"
	"log/slog"
	"net/http"

	"github.com/iudanet/notesync/internal/crypto"
	"github.com/iudanet/notesync/pkg/api"
)

// TokenIssuer выпускает access-токены
type TokenIssuer interface {
	Issue(subject string) (string, int64, error)
}

// TokenHandler выдаёт токены администратору сервера
type TokenHandler struct {
	logger       *slog.Logger
	issuer       TokenIssuer
	adminUser    string
	passwordHash string
}

// NewTokenHandler создает handler выдачи токенов.
// passwordHash bcrypt хеш пароля администратора; пустой хеш отключает выдачу.
func NewTokenHandler(logger *slog.Logger, issuer TokenIssuer, adminUser, passwordHash string) *TokenHandler {
	return &TokenHandler{
		logger:       logger,
		issuer:       issuer,
		adminUser:    adminUser,
		passwordHash: passwordHash,
	}
}

// Create обрабатывает POST /api/v1/tokens с Basic аутентификацией.
// Выданный токен передаётся клиенту как remote.token.
func (h *TokenHandler) Create(w http.ResponseWriter, r *http.Request) {
	username, password, ok := r.BasicAuth()
	if !ok {
		w.Header().Set("WWW-Authenticate", `Basic realm="notesync"`)
		writeError(w, h.logger, http.StatusUnauthorized, "Requires authentication")
		return
	}

	if h.passwordHash == "" {
		h.logger.Warn("token requested but admin password is not configured")
		writeError(w, h.logger, http.StatusUnauthorized, "Bad credentials")
		return
	}

	userOK := subtle.ConstantTimeCompare([]byte(username), []byte(h.adminUser)) == 1
	// bcrypt проверяется и при неверном username
	err := crypto.VerifyPassword(password, h.passwordHash)
	if err != nil && !errors.Is(err, crypto.ErrPasswordMismatch) {
		h.logger.Error("failed to verify admin password", "error", err)
		writeError(w, h.logger, http.StatusInternalServerError, "Internal Server Error")
		return
	}
	if !userOK || err != nil {
		h.logger.Warn("invalid admin credentials", "username", username)
		writeError(w, h.logger, http.StatusUnauthorized, "Bad credentials")
		return
	}

	token, expiresIn, err := h.issuer.Issue(h.adminUser)
	if err != nil {
		h.logger.Error("failed to issue token", "error", err)
		writeError(w, h.logger, http.StatusInternalServerError, "Internal Server Error")
		return
	}

	h.logger.Info("access token issued", "subject", h.adminUser, "expires_in", expiresIn)

	writeJSON(w, h.logger, http.StatusCreated, api.TokenResponse{
		AccessToken: token,
		TokenType:   "token",
		ExpiresIn:   expiresIn,
	})
}
