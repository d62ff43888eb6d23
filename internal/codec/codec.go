// Package codec converts document text to and from the transport encoding
// required by the remote contents API (standard base64 over UTF-8 bytes).
package codec

import (
	"encoding/base64"
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"
)

// ErrInvalidText возвращается, если текст не является корректным UTF-8
var ErrInvalidText = errors.New("content is not valid UTF-8")

// ErrInvalidEncoding возвращается, если transport-строка не является base64
var ErrInvalidEncoding = errors.New("content is not valid base64")

// Encode кодирует текст в base64 от UTF-8 байт.
// Пустая строка кодируется в пустую строку.
func Encode(text string) (string, error) {
	if !utf8.ValidString(text) {
		return "", ErrInvalidText
	}
	return base64.StdEncoding.EncodeToString([]byte(text)), nil
}

// Decode раскодирует base64 обратно в текст.
// Remote отдаёт base64 с переносами строк каждые 60 символов, поэтому
// пробельные символы перед декодированием удаляются.
func Decode(encoded string) (string, error) {
	cleaned := strings.Map(func(r rune) rune {
		switch r {
		case '\n', '\r', ' ', '\t':
			return -1
		}
		return r
	}, encoded)

	raw, err := base64.StdEncoding.DecodeString(cleaned)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidEncoding, err)
	}
	if !utf8.Valid(raw) {
		return "", ErrInvalidText
	}
	return string(raw), nil
}

// Wrap разбивает base64 строку на строки по width символов,
// как это делает GitHub в ответах contents API.
func Wrap(encoded string, width int) string {
	if width <= 0 || len(encoded) <= width {
		return encoded
	}

	var b strings.Builder
	b.Grow(len(encoded) + len(encoded)/width + 1)
	for i := 0; i < len(encoded); i += width {
		end := min(i+width, len(encoded))
		b.WriteString(encoded[i:end])
		b.WriteByte('\n')
	}
	return b.String()
}
