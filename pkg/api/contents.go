package api

// Типы объектов в ответах contents API
const (
	TypeFile = "file"
	TypeDir  = "dir"
)

// EncodingBase64 значение поля encoding в ответах с содержимым
const EncodingBase64 = "base64"

// ContentResponse описание одного файла или элемента листинга директории.
// Content и Encoding заполняются только при запросе конкретного файла.
type ContentResponse struct {
	Name     string `json:"name"`
	Path     string `json:"path"`
	SHA      string `json:"sha"`
	Type     string `json:"type"`
	Content  string `json:"content,omitempty"`  // base64, с переносами строк
	Encoding string `json:"encoding,omitempty"` // "base64"
	Size     int64  `json:"size"`
}

// PutContentRequest тело PUT запроса на создание или обновление файла.
// SHA обязателен при обновлении существующего файла.
type PutContentRequest struct {
	Message string `json:"message" validate:"required"`
	Content string `json:"content"` // base64
	Branch  string `json:"branch,omitempty"`
	SHA     string `json:"sha,omitempty"`
}

// CommitInfo описание коммита, созданного записью
type CommitInfo struct {
	SHA     string `json:"sha"`
	Message string `json:"message"`
}

// PutContentResponse ответ на успешную запись
type PutContentResponse struct {
	Content ContentResponse `json:"content"`
	Commit  CommitInfo      `json:"commit"`
}
