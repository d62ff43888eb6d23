package middleware

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	"github.com/iudanet/notesync/internal/server/jwt"
)

type contextKey string

const subjectKey contextKey = "subject"

// TokenValidator проверяет access-токен
type TokenValidator interface {
	Validate(token string) (*jwt.Claims, error)
}

// SubjectFromContext возвращает имя пользователя, прошедшего аутентификацию
func SubjectFromContext(ctx context.Context) (string, bool) {
	subject, ok := ctx.Value(subjectKey).(string)
	return subject, ok && subject != ""
}

// WithSubject кладёт subject в контекст
func WithSubject(ctx context.Context, subject string) context.Context {
	return context.WithValue(ctx, subjectKey, subject)
}

// AuthMiddleware создает middleware для проверки access-токена.
// Принимает заголовок "Authorization: token <t>" и "Authorization: Bearer <t>".
func AuthMiddleware(logger *slog.Logger, validator TokenValidator) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				writeError(w, http.StatusUnauthorized, "Requires authentication")
				return
			}

			scheme, token, ok := strings.Cut(authHeader, " ")
			token = strings.TrimSpace(token)
			if !ok || token == "" || (!strings.EqualFold(scheme, "token") && !strings.EqualFold(scheme, "Bearer")) {
				logger.Warn("Invalid Authorization header format", "scheme", scheme)
				writeError(w, http.StatusUnauthorized, "Bad credentials")
				return
			}

			claims, err := validator.Validate(token)
			if err != nil {
				// сам токен в лог не пишем
				logger.Warn("Invalid access token", "error", err, "path", r.URL.Path)
				writeError(w, http.StatusUnauthorized, "Bad credentials")
				return
			}

			logger.Debug("Request authenticated", "subject", claims.Subject)

			next.ServeHTTP(w, r.WithContext(WithSubject(r.Context(), claims.Subject)))
		})
	}
}
