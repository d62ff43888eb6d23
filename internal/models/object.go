package models

import "time"

// Object представляет файл в хранилище contents-сервера
type Object struct {
	UpdatedAt time.Time `json:"updated_at"` // время последней записи
	Repo      string    `json:"repo"`       // репозиторий в формате owner/name
	Branch    string    `json:"branch"`     // ветка
	Path      string    `json:"path"`       // путь от корня репозитория
	SHA       string    `json:"sha"`        // git blob SHA-1 содержимого
	Message   string    `json:"message"`    // сообщение последнего коммита
	CommitSHA string    `json:"commit_sha"` // идентификатор последнего коммита
	Content   []byte    `json:"content"`    // содержимое (уже декодированное)
	Size      int64     `json:"size"`       // размер содержимого в байтах
}

// ObjectTypeFile и ObjectTypeDir значения поля type в ответах contents API
const (
	ObjectTypeFile = "file"
	ObjectTypeDir  = "dir"
)

// DirEntry элемент листинга директории
type DirEntry struct {
	Name string
	Path string
	SHA  string
	Type string
	Size int64
}
