package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/iudanet/notesync/internal/models"
	"github.com/iudanet/notesync/internal/server/storage"
)

// GetObject retrieves a single file by repo, branch and path
func (s *Storage) GetObject(ctx context.Context, repo, branch, path string) (*models.Object, error) {
	query := `
		SELECT sha, content, size, message, commit_sha, updated_at
		FROM objects
		WHERE repo = ? AND branch = ? AND path = ?
	`

	obj := &models.Object{Repo: repo, Branch: branch, Path: path}
	var updatedAt int64

	err := s.db.QueryRowContext(ctx, query, repo, branch, path).Scan(
		&obj.SHA,
		&obj.Content,
		&obj.Size,
		&obj.Message,
		&obj.CommitSHA,
		&updatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, storage.ErrObjectNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get object: %w", err)
	}

	obj.UpdatedAt = time.Unix(updatedAt, 0).UTC()
	return obj, nil
}

// PutObject creates or replaces a file.
// Проверка sha и запись выполняются в одной транзакции.
func (s *Storage) PutObject(ctx context.Context, obj *models.Object, expectedSHA string) (bool, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return false, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	var currentSHA string
	err = tx.QueryRowContext(ctx,
		`SELECT sha FROM objects WHERE repo = ? AND branch = ? AND path = ?`,
		obj.Repo, obj.Branch, obj.Path,
	).Scan(&currentSHA)

	created := errors.Is(err, sql.ErrNoRows)
	if err != nil && !created {
		return false, fmt.Errorf("failed to check existing object: %w", err)
	}

	switch {
	case created && expectedSHA != "":
		// Объект удалён или никогда не существовал
		return false, storage.ErrSHAMismatch
	case !created && expectedSHA == "":
		return false, storage.ErrSHARequired
	case !created && expectedSHA != currentSHA:
		return false, storage.ErrSHAMismatch
	}

	query := `
		INSERT INTO objects (repo, branch, path, sha, content, size, message, commit_sha, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT (repo, branch, path) DO UPDATE SET
			sha = excluded.sha,
			content = excluded.content,
			size = excluded.size,
			message = excluded.message,
			commit_sha = excluded.commit_sha,
			updated_at = excluded.updated_at
	`

	_, err = tx.ExecContext(ctx, query,
		obj.Repo,
		obj.Branch,
		obj.Path,
		obj.SHA,
		obj.Content,
		int64(len(obj.Content)),
		obj.Message,
		obj.CommitSHA,
		obj.UpdatedAt.Unix(),
	)
	if err != nil {
		return false, fmt.Errorf("failed to write object: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return false, fmt.Errorf("failed to commit transaction: %w", err)
	}

	obj.Size = int64(len(obj.Content))
	return created, nil
}

// ListDirectory returns direct children of dir
func (s *Storage) ListDirectory(ctx context.Context, repo, branch, dir string) ([]models.DirEntry, error) {
	prefix := strings.Trim(dir, "/")
	if prefix != "" {
		prefix += "/"
	}

	// substr вместо LIKE: в путях могут встречаться % и _.
	// substr считает символы, а не байты
	query := `
		SELECT path, sha, size
		FROM objects
		WHERE repo = ? AND branch = ? AND substr(path, 1, ?) = ?
		ORDER BY path
	`

	rows, err := s.db.QueryContext(ctx, query, repo, branch, utf8.RuneCountInString(prefix), prefix)
	if err != nil {
		return nil, fmt.Errorf("failed to query directory: %w", err)
	}
	defer rows.Close()

	entries := make([]models.DirEntry, 0)
	seenDirs := make(map[string]bool)

	for rows.Next() {
		var path, sha string
		var size int64
		if err := rows.Scan(&path, &sha, &size); err != nil {
			return nil, fmt.Errorf("failed to scan object: %w", err)
		}

		rest := path[len(prefix):]
		if name, _, nested := strings.Cut(rest, "/"); nested {
			if seenDirs[name] {
				continue
			}
			seenDirs[name] = true
			entries = append(entries, models.DirEntry{
				Name: name,
				Path: prefix + name,
				Type: models.ObjectTypeDir,
			})
			continue
		}

		entries = append(entries, models.DirEntry{
			Name: rest,
			Path: path,
			SHA:  sha,
			Type: models.ObjectTypeFile,
			Size: size,
		})
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate objects: %w", err)
	}

	if len(entries) == 0 {
		return nil, storage.ErrObjectNotFound
	}

	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Name < entries[j].Name
	})

	return entries, nil
}
