package validation

import (
	"fmt"
	"regexp"
	"strings"
)

// RepoPattern определяет допустимый формат репозитория: owner/name
// Owner: латинские буквы, цифры и дефис (как в GitHub), до 39 символов
// Name: латинские буквы, цифры, '.', '_', '-', до 100 символов
var RepoPattern = regexp.MustCompile(`^[A-Za-z0-9](?:[A-Za-z0-9-]{0,38})/[A-Za-z0-9._-]{1,100}$`)

// UsernamePattern определяет допустимый формат имени администратора сервера
var UsernamePattern = regexp.MustCompile(`^[a-zA-Z0-9_]{3,32}$`)

const (
	// MaxPathLen максимальная длина пути объекта
	MaxPathLen = 1024
	// MinUsernameLen минимальная длина username
	MinUsernameLen = 3
	// MaxUsernameLen максимальная длина username
	MaxUsernameLen = 32
)

// ValidateRepo проверяет, что repo имеет формат owner/name
func ValidateRepo(repo string) error {
	if repo == "" {
		return fmt.Errorf("repo cannot be empty")
	}

	if !RepoPattern.MatchString(repo) {
		return fmt.Errorf("repo must be in the form owner/name")
	}

	// "." и ".." зарезервированы
	name := repo[strings.IndexByte(repo, '/')+1:]
	if name == "." || name == ".." {
		return fmt.Errorf("repo name %q is reserved", name)
	}

	return nil
}

// ValidatePath проверяет путь объекта в хранилище.
// Путь относительный, без пустых сегментов и без "." / "..".
func ValidatePath(path string) error {
	if path == "" {
		return fmt.Errorf("path cannot be empty")
	}

	if len(path) > MaxPathLen {
		return fmt.Errorf("path must not exceed %d characters", MaxPathLen)
	}

	if strings.HasPrefix(path, "/") || strings.HasSuffix(path, "/") {
		return fmt.Errorf("path must not start or end with '/'")
	}

	for _, segment := range strings.Split(path, "/") {
		switch segment {
		case "":
			return fmt.Errorf("path must not contain empty segments")
		case ".", "..":
			return fmt.Errorf("path must not contain %q segments", segment)
		}
		if strings.ContainsFunc(segment, func(r rune) bool { return r < 0x20 || r == 0x7f }) {
			return fmt.Errorf("path must not contain control characters")
		}
	}

	return nil
}

// ValidateUsername проверяет имя администратора
// Формат: только латинские буквы (a-z, A-Z), цифры (0-9), нижнее подчеркивание (_)
// Длина: 3-32 символа
func ValidateUsername(username string) error {
	if username == "" {
		return fmt.Errorf("username cannot be empty")
	}

	if len(username) < MinUsernameLen {
		return fmt.Errorf("username must be at least %d characters long", MinUsernameLen)
	}

	if len(username) > MaxUsernameLen {
		return fmt.Errorf("username must not exceed %d characters", MaxUsernameLen)
	}

	if !UsernamePattern.MatchString(username) {
		return fmt.Errorf("username can only contain letters (a-z, A-Z), numbers (0-9), and underscores (_)")
	}

	return nil
}
