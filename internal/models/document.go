package models

import (
	"path"
	"strings"
	"time"
)

// DocumentKind описывает тип локального документа
type DocumentKind string

const (
	KindText      DocumentKind = "text"      // Markdown и прочие текстовые заметки
	KindDrawing   DocumentKind = "drawing"   // Рисунки (.tldraw, .excalidraw)
	KindAggregate DocumentKind = "aggregate" // Синтетический документ из коллекции (todo, чат)
)

// TodoDocumentName имя, под которым todo-коллекция видна во вкладках редактора.
// Такие документы синхронизируются отдельным путём, а не как обычные заметки.
const TodoDocumentName = "Todo"

// Document представляет локально принадлежащий документ.
// Поля синхронизации (LastSynced, RemoteVersionTag, RemotePath, ForceSync)
// меняются только движком синхронизации через UpdateSyncState.
type Document struct {
	LastModified     time.Time    `json:"last_modified"`                // LastModified время последнего локального изменения
	LastSynced       *time.Time   `json:"last_synced,omitempty"`        // LastSynced время последней подтверждённой записи в remote (nil = никогда)
	ID               string       `json:"id"`                           // ID локальный идентификатор (UUID)
	Name             string       `json:"name"`                         // Name имя документа, также определяет право на синхронизацию
	Kind             DocumentKind `json:"kind"`                         // Kind тип документа
	Content          string       `json:"content"`                      // Content текущее содержимое
	RemoteVersionTag string       `json:"remote_version_tag,omitempty"` // RemoteVersionTag последний известный sha объекта в remote
	RemotePath       string       `json:"remote_path,omitempty"`        // RemotePath путь, к которому относится RemoteVersionTag
	ForceSync        bool         `json:"force_sync,omitempty"`         // ForceSync запрос внеочередной синхронизации
}

// SyncState набор полей, которые пишет успешная синхронизация.
type SyncState struct {
	LastSynced       time.Time `json:"last_synced"`
	RemoteVersionTag string    `json:"remote_version_tag"`
	RemotePath       string    `json:"remote_path"`
}

// ApplySyncState записывает результат успешной синхронизации и сбрасывает ForceSync.
// Остальные поля документа не трогаются.
func (d *Document) ApplySyncState(state SyncState) {
	synced := state.LastSynced
	d.LastSynced = &synced
	d.RemoteVersionTag = state.RemoteVersionTag
	d.RemotePath = state.RemotePath
	d.ForceSync = false
}

// Touch обновляет содержимое и отметку LastModified.
func (d *Document) Touch(content string, at time.Time) {
	d.Content = content
	d.LastModified = at
}

// KindForName определяет тип документа по расширению имени файла.
func KindForName(name string) DocumentKind {
	switch strings.ToLower(path.Ext(name)) {
	case ".tldraw", ".excalidraw":
		return KindDrawing
	default:
		return KindText
	}
}
