package watch

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/iudanet/notesync/internal/client/storage"
	"github.com/iudanet/notesync/internal/models"
)

// ErrNotText возвращается для файлов, которые не являются UTF-8 текстом
var ErrNotText = errors.New("file is not valid UTF-8 text")

// Importer создаёт или обновляет документы по имени
type Importer struct {
	documents storage.DocumentStorage
	now       func() time.Time
}

// NewImporter creates a new importer
func NewImporter(documents storage.DocumentStorage) *Importer {
	return &Importer{documents: documents, now: time.Now}
}

// ImportFile читает файл и сохраняет его как документ с именем файла
func (i *Importer) ImportFile(ctx context.Context, path string) (*models.Document, error) {
	doc, _, err := i.importFile(ctx, path)
	return doc, err
}

func (i *Importer) importFile(ctx context.Context, path string) (*models.Document, bool, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, false, fmt.Errorf("failed to read file: %w", err)
	}
	return i.apply(ctx, filepath.Base(path), data)
}

// Import сохраняет содержимое под именем name.
// Документ с таким именем обновляется, иначе создаётся новый.
// Неизменённое содержимое не трогает LastModified.
func (i *Importer) Import(ctx context.Context, name string, data []byte) (*models.Document, error) {
	doc, _, err := i.apply(ctx, name, data)
	return doc, err
}

// apply сохраняет содержимое, changed=false если документ не изменился
func (i *Importer) apply(ctx context.Context, name string, data []byte) (*models.Document, bool, error) {
	if !utf8.Valid(data) {
		return nil, false, ErrNotText
	}

	doc, err := i.FindByName(ctx, name)
	if err != nil && !errors.Is(err, storage.ErrDocumentNotFound) {
		return nil, false, err
	}

	content := string(data)
	if doc == nil {
		doc = &models.Document{
			ID:   uuid.NewString(),
			Name: name,
			Kind: models.KindForName(name),
		}
	} else if doc.Content == content {
		return doc, false, nil
	}

	doc.Touch(content, i.now().UTC())
	if err := i.documents.SaveDocument(ctx, doc); err != nil {
		return nil, false, fmt.Errorf("failed to save document: %w", err)
	}
	return doc, true, nil
}

// FindByName возвращает документ с указанным именем
func (i *Importer) FindByName(ctx context.Context, name string) (*models.Document, error) {
	docs, err := i.documents.ListDocuments(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list documents: %w", err)
	}
	for _, doc := range docs {
		if doc.Name == name {
			return doc, nil
		}
	}
	return nil, storage.ErrDocumentNotFound
}
