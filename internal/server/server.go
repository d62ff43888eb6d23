// Package server собирает HTTP сервер notesync-server: contents API
// в формате GitHub поверх SQLite и выдачу access-токенов.
package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/iudanet/notesync/internal/server/config"
	"github.com/iudanet/notesync/internal/server/handlers"
	"github.com/iudanet/notesync/internal/server/jwt"
	"github.com/iudanet/notesync/internal/server/middleware"
	"github.com/iudanet/notesync/internal/server/storage"
	"github.com/iudanet/notesync/pkg/api"
)

const (
	healthPath      = "/api/v1/health"
	shutdownTimeout = 10 * time.Second
)

// Server HTTP сервер contents API
type Server struct {
	httpServer *http.Server
	limiter    *middleware.RateLimiter
	logger     *slog.Logger
}

// New создает сервер. objects должен жить дольше сервера.
func New(cfg *config.Config, objects storage.ObjectStorage, logger *slog.Logger, version string) *Server {
	s := &Server{logger: logger}
	if cfg.RateLimit > 0 {
		s.limiter = middleware.NewRateLimiter(cfg.RateLimit, time.Minute)
	}

	tokens := jwt.NewManager([]byte(cfg.JWTSecret), cfg.TokenTTL)

	s.httpServer = &http.Server{
		Addr:              cfg.Addr,
		Handler:           s.routes(cfg, objects, tokens, version),
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	return s
}

func (s *Server) routes(cfg *config.Config, objects storage.ObjectStorage, tokens *jwt.Manager, version string) http.Handler {
	health := handlers.NewHealthHandler(s.logger, objects, version)
	tokenHandler := handlers.NewTokenHandler(s.logger, tokens, cfg.AdminUser, cfg.AdminPasswordHash)
	contents := handlers.NewContentsHandler(s.logger, objects, cfg.DefaultBranch)

	r := mux.NewRouter()
	r.NotFoundHandler = http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		writeMessage(w, http.StatusNotFound, "Not Found")
	})
	r.MethodNotAllowedHandler = http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		writeMessage(w, http.StatusMethodNotAllowed, "Method Not Allowed")
	})

	r.Use(middleware.RecoveryMiddleware(s.logger))
	r.Use(middleware.LoggingMiddleware(s.logger, healthPath))
	if s.limiter != nil {
		r.Use(middleware.RateLimitMiddleware(s.logger, s.limiter))
	}

	r.HandleFunc(healthPath, health.Health).Methods(http.MethodGet)
	r.HandleFunc("/api/v1/tokens", tokenHandler.Create).Methods(http.MethodPost)

	repos := r.PathPrefix("/repos/{owner}/{repo}").Subrouter()
	repos.Use(middleware.AuthMiddleware(s.logger, tokens))
	repos.HandleFunc("/contents", contents.Get).Methods(http.MethodGet)
	repos.HandleFunc("/contents/{path:.*}", contents.Get).Methods(http.MethodGet)
	repos.HandleFunc("/contents/{path:.*}", contents.Put).Methods(http.MethodPut)

	return r
}

// Handler возвращает корневой handler (для тестов и встраивания)
func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler
}

// Run слушает адрес до отмены ctx, затем плавно завершает активные запросы
func (s *Server) Run(ctx context.Context) error {
	defer s.Close()

	errC := make(chan error, 1)
	go func() {
		s.logger.Info("server listening", "addr", s.httpServer.Addr)
		errC <- s.httpServer.ListenAndServe()
	}()

	select {
	case err := <-errC:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("failed to serve: %w", err)
	case <-ctx.Done():
	}

	s.logger.Info("shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("failed to shutdown server: %w", err)
	}

	return nil
}

// Close освобождает фоновые ресурсы
func (s *Server) Close() {
	if s.limiter != nil {
		s.limiter.Stop()
	}
}

func writeMessage(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(api.ErrorResponse{Message: message})
}
