package render

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/iudanet/notesync/internal/models"
)

const untitledChat = "Untitled chat"

// Chat рендерит сессию чата: заголовок сессии и по блоку "## <Role>" на сообщение.
// Пустые сообщения пропускаются.
func Chat(s models.ChatSession) string {
	var b strings.Builder

	title := singleLine(s.Title)
	if title == "" {
		title = untitledChat
	}
	b.WriteString("# ")
	b.WriteString(title)
	b.WriteString("\n")

	for _, m := range s.Messages {
		body := Normalize(MessageText(m.Content))
		if body == "" {
			continue
		}

		b.WriteString("\n## ")
		b.WriteString(roleHeading(m.Role))
		b.WriteString("\n\n")
		if !m.Timestamp.IsZero() {
			b.WriteString("_")
			b.WriteString(m.Timestamp.UTC().Format(isoMillis))
			b.WriteString("_\n\n")
		}
		b.WriteString(body)
		b.WriteString("\n")
	}

	return b.String()
}

// MessageText сводит содержимое сообщения к плоскому тексту.
// Изображения представлены строкой-заглушкой с media type.
func MessageText(content models.MessageContent) string {
	switch c := content.(type) {
	case models.TextContent:
		return c.Text
	case models.BlockContent:
		parts := make([]string, 0, len(c.Blocks))
		for _, block := range c.Blocks {
			switch block.Type {
			case models.BlockImage:
				mediaType := block.MediaType
				if mediaType == "" {
					mediaType = "image"
				}
				parts = append(parts, "[image: "+mediaType+"]")
			default:
				if strings.TrimSpace(block.Text) != "" {
					parts = append(parts, block.Text)
				}
			}
		}
		return strings.Join(parts, "\n\n")
	default:
		return ""
	}
}

// Normalize убирает шум из пустых строк вне fenced code blocks:
// хвостовые пробелы обрезаются, серии пустых строк сворачиваются в одну.
// Содержимое code blocks сохраняется как есть.
func Normalize(text string) string {
	lines := strings.Split(strings.ReplaceAll(text, "\r\n", "\n"), "\n")
	out := make([]string, 0, len(lines))

	var fence string // открывающий маркер текущего code block
	blank := false

	for _, line := range lines {
		if fence != "" {
			out = append(out, line)
			if closesFence(line, fence) {
				fence = ""
			}
			continue
		}

		if marker := openingFence(line); marker != "" {
			fence = marker
			out = append(out, strings.TrimRight(line, " \t"))
			blank = false
			continue
		}

		line = strings.TrimRight(line, " \t")
		if line == "" {
			if blank || len(out) == 0 {
				continue
			}
			blank = true
		} else {
			blank = false
		}
		out = append(out, line)
	}

	// Незакрытый блок оставляем как есть, хвостовые пустые строки убираем
	for fence == "" && len(out) > 0 && out[len(out)-1] == "" {
		out = out[:len(out)-1]
	}

	return strings.Join(out, "\n")
}

// openingFence возвращает маркер (``` или ~~~ любой длины от 3), если строка открывает блок
func openingFence(line string) string {
	trimmed := strings.TrimLeft(line, " ")
	if len(line)-len(trimmed) > 3 {
		return ""
	}

	for _, ch := range []byte{'`', '~'} {
		n := 0
		for n < len(trimmed) && trimmed[n] == ch {
			n++
		}
		if n >= 3 {
			// В info-строке backtick-блока не может быть backtick
			if ch == '`' && strings.Contains(trimmed[n:], "`") {
				return ""
			}
			return trimmed[:n]
		}
	}
	return ""
}

func closesFence(line, fence string) bool {
	trimmed := strings.TrimSpace(line)
	if len(trimmed) < len(fence) {
		return false
	}
	return strings.Trim(trimmed, fence[:1]) == "" && trimmed[0] == fence[0]
}

func roleHeading(role string) string {
	switch role {
	case models.RoleUser:
		return "User"
	case models.RoleAssistant:
		return "Assistant"
	case models.RoleSystem:
		return "System"
	case "":
		return "Message"
	default:
		r, size := utf8.DecodeRuneInString(role)
		return string(unicode.ToUpper(r)) + role[size:]
	}
}
