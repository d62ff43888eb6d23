package sync

import (
	"context"
	"fmt"
	"path"
	"regexp"
	"strings"
	"time"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"github.com/iudanet/notesync/internal/models"
)

const (
	// TodoRoot корневая директория todo-агрегата
	TodoRoot = "todo"
	// ChatsRoot корневая директория чатов
	ChatsRoot = "chats"

	todoFileName     = "todo.md"
	untitledName     = "untitled"
	defaultExt       = ".md"
	drawingExt       = ".tldraw"
	maxSlugLen       = 60
	sessionSuffixLen = 8
)

var extPattern = regexp.MustCompile(`^\.[A-Za-z0-9]{1,10}$`)

// VersionReader читает version tag объекта. "" означает, что объекта нет.
type VersionReader interface {
	GetVersionTag(ctx context.Context, path string) (string, error)
}

// DocumentPath возвращает путь документа: <yyyy>/<mm>/<name>[ext].
// Расширение .md добавляется, если у имени его нет; рисунки получают .tldraw.
func DocumentPath(name string, kind models.DocumentKind, at time.Time) string {
	return shard(at) + "/" + fileName(name, kind)
}

// TodoPath возвращает путь todo-агрегата за месяц at
func TodoPath(at time.Time) string {
	return TodoRoot + "/" + shard(at) + "/" + todoFileName
}

// ChatPath возвращает путь сессии чата: chats/<yyyy>/<mm>/<slug>-<id8>.md
func ChatPath(title, sessionID string, at time.Time) string {
	slug := Slugify(title)
	if slug == "" {
		slug = "chat"
	}

	suffix := strings.Map(func(r rune) rune {
		if r < unicode.MaxASCII && (unicode.IsLetter(r) || unicode.IsDigit(r)) {
			return unicode.ToLower(r)
		}
		return -1
	}, sessionID)
	if len(suffix) > sessionSuffixLen {
		suffix = suffix[:sessionSuffixLen]
	}
	if suffix != "" {
		slug += "-" + suffix
	}

	return ChatsRoot + "/" + shard(at) + "/" + slug + defaultExt
}

// Candidates возвращает пути документа в текущем и предыдущем месяце.
// Документ, созданный на границе месяцев, мог уйти в шард прошлого месяца.
func Candidates(name string, kind models.DocumentKind, at time.Time) []string {
	return []string{
		DocumentPath(name, kind, at),
		DocumentPath(name, kind, PreviousMonth(at)),
	}
}

// TodoCandidates возвращает пути todo-агрегата в текущем и предыдущем месяце
func TodoCandidates(at time.Time) []string {
	return []string{TodoPath(at), TodoPath(PreviousMonth(at))}
}

// Locate опрашивает кандидатов по порядку и возвращает первый существующий путь
// вместе с его version tag. Если ничего не найдено, возвращается первый кандидат и "".
func Locate(ctx context.Context, reader VersionReader, candidates []string) (string, string, error) {
	if len(candidates) == 0 {
		return "", "", fmt.Errorf("no path candidates")
	}

	for _, p := range candidates {
		tag, err := reader.GetVersionTag(ctx, p)
		if err != nil {
			return "", "", fmt.Errorf("failed to probe %s: %w", p, err)
		}
		if tag != "" {
			return p, tag, nil
		}
	}

	return candidates[0], "", nil
}

// PreviousMonth возвращает момент в предыдущем календарном месяце.
// Считается от первого числа, чтобы 31 марта не превратилось в 3 марта.
func PreviousMonth(at time.Time) time.Time {
	first := time.Date(at.Year(), at.Month(), 1, 0, 0, 0, 0, at.Location())
	return first.AddDate(0, -1, 0)
}

// SanitizeName приводит имя документа к безопасному имени файла.
// Разделители пути заменяются на '-', управляющие символы удаляются,
// пробелы и точки по краям обрезаются. Пустое имя становится "untitled".
func SanitizeName(name string) string {
	cleaned := strings.Map(func(r rune) rune {
		switch {
		case r == '/' || r == '\\':
			return '-'
		case unicode.IsControl(r):
			return -1
		}
		return r
	}, name)

	cleaned = strings.TrimFunc(cleaned, func(r rune) bool {
		return unicode.IsSpace(r) || r == '.'
	})
	if cleaned == "" {
		return untitledName
	}
	return cleaned
}

// Slugify переводит заголовок в slug: нижний регистр, без диакритики,
// все символы кроме букв и цифр заменяются на '-'.
func Slugify(title string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	plain, _, err := transform.String(t, title)
	if err != nil {
		plain = title
	}

	var b strings.Builder
	dash := false
	for _, r := range strings.ToLower(plain) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(r)
			dash = false
			continue
		}
		if !dash && b.Len() > 0 {
			b.WriteByte('-')
			dash = true
		}
	}

	slug := strings.TrimRight(b.String(), "-")
	if r := []rune(slug); len(r) > maxSlugLen {
		slug = strings.TrimRight(string(r[:maxSlugLen]), "-")
	}
	return slug
}

func fileName(name string, kind models.DocumentKind) string {
	name = SanitizeName(name)

	if kind == models.KindDrawing {
		if models.KindForName(name) == models.KindDrawing {
			return name
		}
		return name + drawingExt
	}

	if extPattern.MatchString(path.Ext(name)) {
		return name
	}
	return name + defaultExt
}

func shard(at time.Time) string {
	return at.Format("2006/01")
}
