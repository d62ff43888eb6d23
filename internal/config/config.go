// Package config загружает настройки клиента notesync из YAML файла и
// переменных окружения NOTESYNC_*.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/robfig/cron/v3"
	"github.com/spf13/viper"

	"github.com/iudanet/notesync/internal/validation"
)

const (
	// DefaultBaseURL адрес GitHub REST API
	DefaultBaseURL = "https://api.github.com"
	// DefaultBranch ветка по умолчанию
	DefaultBranch = "main"
	// DefaultSchedule интервал фоновой синхронизации
	DefaultSchedule = "@every 30m"
	// DefaultRequestTimeout таймаут одного HTTP запроса
	DefaultRequestTimeout = 30 * time.Second

	envPrefix = "NOTESYNC"
)

// SyncConfig параметры доступа к удалённому хранилищу.
// Значение неизменяемое: новая конфигурация означает новый сервис.
type SyncConfig struct {
	BaseURL        string        `mapstructure:"base_url" validate:"required,url"`
	Token          string        `mapstructure:"token"`
	Repo           string        `mapstructure:"repo" validate:"omitempty,repo"`
	Branch         string        `mapstructure:"branch" validate:"required"`
	RequestTimeout time.Duration `mapstructure:"request_timeout" validate:"gte=0"`
}

// Configured сообщает, заданы ли токен и репозиторий
func (c SyncConfig) Configured() bool {
	return c.Token != "" && c.Repo != ""
}

// ScheduleConfig расписание фоновой синхронизации
type ScheduleConfig struct {
	Schedule string `mapstructure:"schedule" validate:"required,cronspec"`
}

// StorageConfig локальное хранилище документов
type StorageConfig struct {
	Path string `mapstructure:"path" validate:"required"`
}

// LogConfig настройки логирования
type LogConfig struct {
	Level string `mapstructure:"level" validate:"oneof=debug info warn error"`
	File  string `mapstructure:"file"` // пусто = stderr
}

// WatchConfig каталог, из которого импортируются заметки
type WatchConfig struct {
	Dir string `mapstructure:"dir"`
}

// Config полная конфигурация клиента
type Config struct {
	Remote  SyncConfig     `mapstructure:"remote"`
	Sync    ScheduleConfig `mapstructure:"sync"`
	Storage StorageConfig  `mapstructure:"storage"`
	Log     LogConfig      `mapstructure:"log"`
	Watch   WatchConfig    `mapstructure:"watch"`
}

// DefaultDir возвращает каталог конфигурации по умолчанию (~/.config/notesync)
func DefaultDir() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ".notesync"
	}
	return filepath.Join(dir, "notesync")
}

// DefaultPath возвращает путь к файлу конфигурации по умолчанию
func DefaultPath() string {
	return filepath.Join(DefaultDir(), "config.yaml")
}

// Load читает конфигурацию из path (или из файла по умолчанию, если path пуст).
// Отсутствующий файл не является ошибкой: используются значения по умолчанию и окружение.
func Load(path string) (*Config, error) {
	v := newViper()

	if path == "" {
		path = DefaultPath()
	}
	v.SetConfigFile(path)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("failed to read config %s: %w", path, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Save записывает конфигурацию в path с правами 0600 (файл содержит токен)
func Save(path string, cfg *Config) error {
	if err := cfg.Validate(); err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	v := viper.New()
	v.Set("remote.base_url", cfg.Remote.BaseURL)
	v.Set("remote.token", cfg.Remote.Token)
	v.Set("remote.repo", cfg.Remote.Repo)
	v.Set("remote.branch", cfg.Remote.Branch)
	v.Set("remote.request_timeout", cfg.Remote.RequestTimeout.String())
	v.Set("sync.schedule", cfg.Sync.Schedule)
	v.Set("storage.path", cfg.Storage.Path)
	v.Set("log.level", cfg.Log.Level)
	v.Set("log.file", cfg.Log.File)
	v.Set("watch.dir", cfg.Watch.Dir)

	if err := v.WriteConfigAs(path); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	if err := os.Chmod(path, 0600); err != nil {
		return fmt.Errorf("failed to set config permissions: %w", err)
	}

	return nil
}

// Validate проверяет значения конфигурации
func (c *Config) Validate() error {
	if err := newValidator().Struct(c); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}

func newViper() *viper.Viper {
	v := viper.New()
	v.SetConfigType("yaml")

	v.SetDefault("remote.base_url", DefaultBaseURL)
	v.SetDefault("remote.branch", DefaultBranch)
	v.SetDefault("remote.request_timeout", DefaultRequestTimeout)
	v.SetDefault("sync.schedule", DefaultSchedule)
	v.SetDefault("storage.path", filepath.Join(DefaultDir(), "notesync.db"))
	v.SetDefault("log.level", "info")
	v.SetDefault("log.file", "")
	v.SetDefault("watch.dir", "")
	v.SetDefault("remote.token", "")
	v.SetDefault("remote.repo", "")

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Короткие имена переменных для основных параметров
	_ = v.BindEnv("remote.token", envPrefix+"_REMOTE_TOKEN", envPrefix+"_TOKEN")
	_ = v.BindEnv("remote.repo", envPrefix+"_REMOTE_REPO", envPrefix+"_REPO")
	_ = v.BindEnv("remote.branch", envPrefix+"_REMOTE_BRANCH", envPrefix+"_BRANCH")

	return v
}

func newValidator() *validator.Validate {
	validate := validator.New()

	_ = validate.RegisterValidation("repo", func(fl validator.FieldLevel) bool {
		return validation.ValidateRepo(fl.Field().String()) == nil
	})
	_ = validate.RegisterValidation("cronspec", func(fl validator.FieldLevel) bool {
		_, err := cron.ParseStandard(fl.Field().String())
		return err == nil
	})

	return validate
}
