package sync

import (
	"regexp"
	"strings"

	"github.com/iudanet/notesync/internal/models"
)

// Причины решений ChangeDetector
const (
	ReasonTransient   = "transient name"
	ReasonAggregate   = "aggregate handled separately"
	ReasonForced      = "force sync requested"
	ReasonNeverSynced = "never synced"
	ReasonModified    = "modified since last sync"
	ReasonUnknownTime = "modification time unknown"
	ReasonUpToDate    = "up to date"
	ReasonEmpty       = "empty content"
)

// placeholderPattern имена черновиков по умолчанию: "Note", "Note 3", "Code 2.js"
var placeholderPattern = regexp.MustCompile(`^(Note|Code)(\s*\d+)?(\.[A-Za-z0-9]+)?$`)

// Decision решение о синхронизации документа
type Decision struct {
	Reason string
	Sync   bool
}

// IsTransientName сообщает, является ли имя временным (untitled, черновик по умолчанию)
func IsTransientName(name string) bool {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" || strings.HasPrefix(strings.ToLower(trimmed), "untitled") {
		return true
	}
	return placeholderPattern.MatchString(trimmed)
}

// Evaluate применяет правила к документу по порядку:
// временные имена и агрегаты исключаются, дальше решает Stale.
func Evaluate(doc *models.Document) Decision {
	if IsTransientName(doc.Name) {
		return Decision{Reason: ReasonTransient}
	}

	if doc.Kind == models.KindAggregate || doc.Name == models.TodoDocumentName {
		return Decision{Reason: ReasonAggregate}
	}

	return Stale(doc)
}

// ShouldSync сокращение для Evaluate(doc).Sync
func ShouldSync(doc *models.Document) bool {
	return Evaluate(doc).Sync
}

// Stale решает только по force-флагу и отметкам времени.
// Используется агрегатами, для которых проверки имени не имеют смысла.
// Если время изменения неизвестно, документ синхронизируется: лишняя запись
// дешевле потерянного изменения.
func Stale(doc *models.Document) Decision {
	switch {
	case doc.ForceSync:
		return Decision{Sync: true, Reason: ReasonForced}
	case doc.LastSynced == nil || doc.LastSynced.IsZero():
		return Decision{Sync: true, Reason: ReasonNeverSynced}
	case doc.LastModified.IsZero():
		return Decision{Sync: true, Reason: ReasonUnknownTime}
	case doc.LastModified.After(*doc.LastSynced):
		return Decision{Sync: true, Reason: ReasonModified}
	default:
		return Decision{Reason: ReasonUpToDate}
	}
}
