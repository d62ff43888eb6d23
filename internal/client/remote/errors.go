package remote

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
)

var (
	// ErrNotConfigured возвращается, если не заданы токен или репозиторий
	ErrNotConfigured = errors.New("remote storage is not configured")
	// ErrNotFound объект отсутствует в удалённом хранилище
	ErrNotFound = errors.New("remote object not found")
	// ErrConflict версия объекта не совпала с ожидаемой (устаревший sha)
	ErrConflict = errors.New("remote version conflict")
)

// RemoteError ошибка, возвращённая удалённым хранилищем
type RemoteError struct {
	Message string
	Status  int
}

func (e *RemoteError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("remote error (%d)", e.Status)
	}
	return fmt.Sprintf("remote error (%d): %s", e.Status, e.Message)
}

// Is позволяет сравнивать RemoteError с ErrConflict и ErrNotFound через errors.Is.
// 422 считается конфликтом, только если сервер жалуется на sha
// (файл уже существует, а sha не передан).
func (e *RemoteError) Is(target error) bool {
	switch target {
	case ErrConflict:
		if e.Status == http.StatusConflict {
			return true
		}
		return e.Status == http.StatusUnprocessableEntity &&
			strings.Contains(strings.ToLower(e.Message), "sha")
	case ErrNotFound:
		return e.Status == http.StatusNotFound
	}
	return false
}
