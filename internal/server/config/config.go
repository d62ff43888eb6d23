// Package config загружает конфигурацию notesync-server из окружения.
// Переменные могут быть заданы в .env файле рядом с бинарником.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"

	"github.com/iudanet/notesync/internal/validation"
)

// ErrMissingSecret возвращается, если не задан секрет подписи токенов
var ErrMissingSecret = errors.New("NOTESYNC_JWT_SECRET is required")

// Config конфигурация сервера
type Config struct {
	Addr              string
	DBPath            string
	DefaultBranch     string // ветка, если запрос её не указывает
	JWTSecret         string
	AdminUser         string
	AdminPasswordHash string // bcrypt хеш пароля администратора
	LogLevel          string
	TokenTTL          time.Duration
	RateLimit         int // запросов в минуту на IP, 0 отключает ограничение
}

// Load читает .env (если есть) и переменные окружения.
func Load() (*Config, error) {
	// .env не обязателен
	_ = godotenv.Load()

	ttl, err := time.ParseDuration(getEnv("NOTESYNC_TOKEN_TTL", "24h"))
	if err != nil {
		return nil, fmt.Errorf("invalid NOTESYNC_TOKEN_TTL: %w", err)
	}
	if ttl <= 0 {
		return nil, fmt.Errorf("invalid NOTESYNC_TOKEN_TTL: must be positive")
	}

	cfg := &Config{
		Addr:              getEnv("NOTESYNC_SERVER_ADDR", ":8080"),
		DBPath:            getEnv("NOTESYNC_SERVER_DB", "notesync-server.db"),
		DefaultBranch:     getEnv("NOTESYNC_DEFAULT_BRANCH", "main"),
		JWTSecret:         getEnv("NOTESYNC_JWT_SECRET", ""),
		AdminUser:         getEnv("NOTESYNC_ADMIN_USER", "admin"),
		AdminPasswordHash: getEnv("NOTESYNC_ADMIN_PASSWORD_HASH", ""),
		LogLevel:          getEnv("NOTESYNC_LOG_LEVEL", "info"),
		TokenTTL:          ttl,
		RateLimit:         getEnvAsInt("NOTESYNC_RATE_LIMIT", 120),
	}

	if cfg.JWTSecret == "" {
		return nil, ErrMissingSecret
	}
	if err := validation.ValidateUsername(cfg.AdminUser); err != nil {
		return nil, fmt.Errorf("invalid NOTESYNC_ADMIN_USER: %w", err)
	}

	return cfg, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr := getEnv(key, "")
	if value, err := strconv.Atoi(valueStr); err == nil {
		return value
	}
	return defaultValue
}
