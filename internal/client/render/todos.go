// Package render превращает агрегаты (todo-список, сессии чата) в Markdown,
// который хранится в remote как обычный файл. Все функции чистые.
package render

import (
	"strings"

	"github.com/iudanet/notesync/internal/models"
)

// isoMillis формат времени как у JavaScript toISOString
const isoMillis = "2006-01-02T15:04:05.000Z"

// Todos рендерит todo-коллекцию: заголовок, время обновления снимка,
// затем секции Inbox, проекты в исходном порядке и Archive. Пустые секции пропускаются.
func Todos(c models.TodoCollection) string {
	var b strings.Builder

	b.WriteString("# Todo List\n\nLast updated: ")
	b.WriteString(c.UpdatedAt.UTC().Format(isoMillis))
	b.WriteString("\n\n")

	writeSection(&b, "Inbox", c.Inbox)
	for _, p := range c.Projects {
		writeSection(&b, p.Name, p.Tasks)
	}
	writeSection(&b, "Archive", c.Archive)

	return b.String()
}

// TaskLine рендерит одну задачу: "- [ ] text (Due: date)" и строку заметок
func TaskLine(t models.Task) string {
	var b strings.Builder

	if t.Completed {
		b.WriteString("- [x] ")
	} else {
		b.WriteString("- [ ] ")
	}
	b.WriteString(singleLine(t.Text))

	if t.DueDate != "" {
		b.WriteString(" (Due: ")
		b.WriteString(t.DueDate)
		b.WriteString(")")
	}
	if t.Notes != "" {
		b.WriteString("\n  Notes: ")
		b.WriteString(strings.ReplaceAll(strings.TrimSpace(t.Notes), "\n", "\n  "))
	}

	return b.String()
}

func writeSection(b *strings.Builder, title string, tasks []models.Task) {
	if len(tasks) == 0 {
		return
	}

	b.WriteString("## ")
	b.WriteString(singleLine(title))
	b.WriteString("\n\n")

	lines := make([]string, 0, len(tasks))
	for _, t := range tasks {
		lines = append(lines, TaskLine(t))
	}
	b.WriteString(strings.Join(lines, "\n"))
	b.WriteString("\n\n")
}

// singleLine не даёт переносу строки в тексте сломать структуру списка
func singleLine(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
