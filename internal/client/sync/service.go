package sync

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"sort"
	"sync/atomic"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/iudanet/notesync/internal/client/remote"
	"github.com/iudanet/notesync/internal/client/render"
	"github.com/iudanet/notesync/internal/client/storage"
	"github.com/iudanet/notesync/internal/codec"
	"github.com/iudanet/notesync/internal/models"
)

//go:generate moq -out service_mock.go . Service

// Service определяет интерфейс движка синхронизации
type Service interface {
	// SyncAll синхронизирует документы, todo-агрегат и сессии чата
	SyncAll(ctx context.Context) (*RunResult, error)

	// SyncDocument синхронизирует один документ по запросу
	SyncDocument(ctx context.Context, id string) (*Outcome, error)

	// SyncTodos синхронизирует todo-агрегат. nil, если коллекции нет
	SyncTodos(ctx context.Context) (*Outcome, error)

	// SyncChats синхронизирует все сессии чата
	SyncChats(ctx context.Context) ([]Outcome, error)

	// MarkForceSync помечает документ для внеочередной синхронизации
	MarkForceSync(ctx context.Context, id string) error

	// ListRecent возвращает файлы remote за текущий и предыдущий месяц
	ListRecent(ctx context.Context) ([]remote.ObjectInfo, error)

	// State возвращает текущее состояние прогона
	State() State

	// Configured сообщает, заданы ли учётные данные remote
	Configured() bool

	// Retire выводит сервис из работы: результаты незавершённых вызовов
	// больше не записываются в локальное хранилище
	Retire()
}

// State состояние прогона синхронизации
type State int32

const (
	StateIdle State = iota
	StateEnumerating
	StateEvaluating
	StateSyncing
	StatePersisting
)

// String returns a human-readable representation of the state.
func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateEnumerating:
		return "enumerating"
	case StateEvaluating:
		return "evaluating"
	case StateSyncing:
		return "syncing"
	case StatePersisting:
		return "persisting"
	default:
		return "unknown"
	}
}

// Status итог попытки синхронизации одного документа
type Status string

const (
	StatusSuccess Status = "success"
	StatusSkipped Status = "skipped"
	StatusFailed  Status = "failed"
)

// Причины пропуска, которые задаёт сам сервис
const (
	ReasonNotConfigured = "not configured"
	ReasonRetired       = "service reconfigured"
)

// ErrRetired возвращается, если сервис выведен из работы
var ErrRetired = errors.New("sync service retired")

// Outcome результат одной попытки. Не сохраняется, только логируется и возвращается.
type Outcome struct {
	Err        error
	DocumentID string
	Name       string
	Path       string
	VersionTag string
	Reason     string
	Status     Status
}

// RunResult contains sync run results
type RunResult struct {
	StartedAt  time.Time
	FinishedAt time.Time
	Outcomes   []Outcome
	Uploaded   int // количество записанных в remote документов
	Skipped    int // количество пропущенных документов
	Failed     int // количество документов с ошибкой
}

func (r *RunResult) add(o Outcome) {
	r.Outcomes = append(r.Outcomes, o)
	switch o.Status {
	case StatusSuccess:
		r.Uploaded++
	case StatusFailed:
		r.Failed++
	default:
		r.Skipped++
	}
}

// target подготовленный к выгрузке документ
type target struct {
	persist    func(ctx context.Context, state models.SyncState) error
	doc        *models.Document
	candidates []string
}

type service struct {
	remote    RemoteStore
	documents storage.DocumentStorage
	snapshots storage.SnapshotStorage
	resolver  *ConflictResolver
	logger    *slog.Logger
	now       func() time.Time
	state     atomic.Int32
	retired   atomic.Bool
}

// NewService creates a new sync service
func NewService(store RemoteStore, documents storage.DocumentStorage, snapshots storage.SnapshotStorage, logger *slog.Logger) Service {
	return newService(store, documents, snapshots, logger, time.Now)
}

func newService(store RemoteStore, documents storage.DocumentStorage, snapshots storage.SnapshotStorage, logger *slog.Logger, now func() time.Time) *service {
	return &service{
		remote:    store,
		documents: documents,
		snapshots: snapshots,
		resolver:  NewConflictResolver(store, logger),
		logger:    logger,
		now:       now,
	}
}

func (s *service) Configured() bool {
	return s.remote.Configured()
}

func (s *service) State() State {
	return State(s.state.Load())
}

func (s *service) Retire() {
	if s.retired.CompareAndSwap(false, true) {
		s.logger.Debug("Sync service retired")
	}
}

func (s *service) setState(next State) {
	prev := State(s.state.Swap(int32(next)))
	if prev != next {
		s.logger.Debug("Sync state changed", "from", prev.String(), "to", next.String())
	}
}

// SyncAll performs full synchronization with remote storage
// 1. Uploads changed documents one by one
// 2. Uploads the todo aggregate
// 3. Uploads changed chat sessions
// Ошибка одного документа записывается в результат и не прерывает прогон.
func (s *service) SyncAll(ctx context.Context) (*RunResult, error) {
	result := &RunResult{StartedAt: s.now()}
	if !s.Configured() {
		result.FinishedAt = result.StartedAt
		return result, nil
	}

	s.logger.Info("Starting synchronization")
	defer s.setState(StateIdle)

	var errs []error

	s.setState(StateEnumerating)
	docs, err := s.documents.ListDocuments(ctx)
	if err != nil {
		s.logger.Error("Failed to list documents", "error", err)
		errs = append(errs, fmt.Errorf("failed to list documents: %w", err))
	}

	for _, doc := range docs {
		if err := ctx.Err(); err != nil {
			errs = append(errs, err)
			break
		}
		if s.retired.Load() {
			result.add(s.retiredOutcome(doc, "", ""))
			continue
		}

		if doc.Content == "" {
			result.add(skipped(doc, ReasonEmpty))
			continue
		}

		// Снимок документа сделан при перечислении: правка во время выгрузки
		// окажется новее lastSynced и уйдёт в следующем цикле
		taken := s.now()
		result.add(s.syncTarget(ctx, s.documentTarget(doc, taken), Evaluate, taken))
	}

	if ctx.Err() == nil && !s.retired.Load() {
		if outcome, err := s.syncTodos(ctx); err != nil {
			errs = append(errs, err)
		} else if outcome != nil {
			result.add(*outcome)
		}
	}

	if ctx.Err() == nil && !s.retired.Load() {
		outcomes, err := s.syncChats(ctx)
		if err != nil {
			errs = append(errs, err)
		}
		for _, o := range outcomes {
			result.add(o)
		}
	}

	result.FinishedAt = s.now()

	s.logger.Info("Synchronization completed",
		"uploaded", result.Uploaded,
		"skipped", result.Skipped,
		"failed", result.Failed,
		"duration", result.FinishedAt.Sub(result.StartedAt))

	return result, errors.Join(errs...)
}

// SyncDocument синхронизирует один документ, соблюдая правила ChangeDetector.
// Для внеочередной выгрузки документ нужно сначала пометить через MarkForceSync.
func (s *service) SyncDocument(ctx context.Context, id string) (*Outcome, error) {
	if !s.Configured() {
		return &Outcome{DocumentID: id, Status: StatusSkipped, Reason: ReasonNotConfigured}, nil
	}
	defer s.setState(StateIdle)

	s.setState(StateEnumerating)
	doc, err := s.documents.GetDocument(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get document: %w", err)
	}

	taken := s.now()
	outcome := s.syncTarget(ctx, s.documentTarget(doc, taken), Evaluate, taken)
	return &outcome, nil
}

// SyncTodos выгружает todo-коллекцию как todo/<yyyy>/<mm>/todo.md
func (s *service) SyncTodos(ctx context.Context) (*Outcome, error) {
	if !s.Configured() {
		return nil, nil
	}
	defer s.setState(StateIdle)
	return s.syncTodos(ctx)
}

func (s *service) syncTodos(ctx context.Context) (*Outcome, error) {
	s.setState(StateEnumerating)
	todos, err := s.snapshots.GetTodos(ctx)
	if errors.Is(err, storage.ErrSnapshotNotFound) {
		return nil, nil
	}
	if err != nil {
		s.logger.Error("Failed to read todos", "error", err)
		return nil, fmt.Errorf("failed to get todos: %w", err)
	}

	taken := s.now()
	doc := aggregateDocument("todos", models.TodoDocumentName, render.Todos(*todos), todos.UpdatedAt, todos.Sync)
	if todos.Len() == 0 {
		return ptr(skipped(doc, ReasonEmpty)), nil
	}

	outcome := s.syncTarget(ctx, target{
		doc:        doc,
		candidates: TodoCandidates(taken),
		persist:    s.snapshots.UpdateTodoSyncState,
	}, Stale, taken)
	return &outcome, nil
}

// SyncChats выгружает изменённые сессии чата. Путь сессии привязан к дате её создания.
func (s *service) SyncChats(ctx context.Context) ([]Outcome, error) {
	if !s.Configured() {
		return nil, nil
	}
	defer s.setState(StateIdle)
	return s.syncChats(ctx)
}

func (s *service) syncChats(ctx context.Context) ([]Outcome, error) {
	s.setState(StateEnumerating)
	sessions, err := s.snapshots.ListChatSessions(ctx)
	if err != nil {
		s.logger.Error("Failed to list chat sessions", "error", err)
		return nil, fmt.Errorf("failed to list chat sessions: %w", err)
	}

	outcomes := make([]Outcome, 0, len(sessions))
	for _, session := range sessions {
		if ctx.Err() != nil {
			return outcomes, ctx.Err()
		}

		doc := aggregateDocument(session.ID, session.Title, render.Chat(*session), session.UpdatedAt, session.Sync)
		if s.retired.Load() {
			outcomes = append(outcomes, s.retiredOutcome(doc, "", ""))
			continue
		}
		if len(session.Messages) == 0 {
			outcomes = append(outcomes, skipped(doc, ReasonEmpty))
			continue
		}

		taken := s.now()
		created := session.CreatedAt
		if created.IsZero() {
			created = taken
		}

		id := session.ID
		outcomes = append(outcomes, s.syncTarget(ctx, target{
			doc:        doc,
			candidates: []string{ChatPath(session.Title, session.ID, created)},
			persist: func(ctx context.Context, state models.SyncState) error {
				return s.snapshots.UpdateChatSyncState(ctx, id, state)
			},
		}, Stale, taken))
	}

	return outcomes, nil
}

func (s *service) MarkForceSync(ctx context.Context, id string) error {
	if !s.Configured() {
		return nil
	}
	if err := s.documents.MarkForceSync(ctx, id); err != nil {
		return fmt.Errorf("failed to mark document for sync: %w", err)
	}
	return nil
}

// ListRecent параллельно читает шарды текущего и предыдущего месяца
func (s *service) ListRecent(ctx context.Context) ([]remote.ObjectInfo, error) {
	if !s.Configured() {
		return []remote.ObjectInfo{}, nil
	}

	now := s.now()
	prefixes := []string{shard(now), shard(PreviousMonth(now))}
	listings := make([][]remote.ObjectInfo, len(prefixes))

	g, gctx := errgroup.WithContext(ctx)
	for i, prefix := range prefixes {
		g.Go(func() error {
			objects, err := s.remote.ListObjects(gctx, prefix)
			if err != nil {
				return err
			}
			listings[i] = objects
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("failed to list recent objects: %w", err)
	}

	objects := slices.Concat(listings...)
	sort.Slice(objects, func(i, j int) bool { return objects[i].Path > objects[j].Path })
	return objects, nil
}

func (s *service) documentTarget(doc *models.Document, taken time.Time) target {
	id := doc.ID
	return target{
		doc:        doc,
		candidates: Candidates(doc.Name, doc.Kind, taken),
		persist: func(ctx context.Context, state models.SyncState) error {
			return s.documents.UpdateSyncState(ctx, id, state)
		},
	}
}

// syncTarget проводит документ через Evaluating -> Syncing -> Persisting
func (s *service) syncTarget(ctx context.Context, t target, evaluate func(*models.Document) Decision, taken time.Time) Outcome {
	doc := t.doc
	logger := s.logger.With("document_id", doc.ID, "name", doc.Name)

	if s.retired.Load() {
		return s.retiredOutcome(doc, "", "")
	}

	s.setState(StateEvaluating)
	decision := evaluate(doc)
	if !decision.Sync {
		logger.Debug("Skipping document", "reason", decision.Reason)
		return skipped(doc, decision.Reason)
	}

	encoded, err := codec.Encode(doc.Content)
	if err != nil {
		return s.failed(logger, doc, "", fmt.Errorf("failed to encode content: %w", err))
	}

	s.setState(StateSyncing)
	path, tag, known, err := s.resolveTarget(ctx, doc, t.candidates)
	if err != nil {
		return s.failed(logger, doc, path, err)
	}
	if s.retired.Load() {
		return s.retiredOutcome(doc, path, "")
	}

	// Существующий объект уже лежит в своём каталоге
	if tag == "" {
		s.remote.EnsureContainer(ctx, path)
	}

	var newTag string
	if known {
		newTag, err = s.resolver.UpsertExpected(ctx, path, encoded, tag)
	} else {
		newTag, err = s.resolver.Upsert(ctx, path, encoded, "")
	}
	if err != nil {
		return s.failed(logger, doc, path, err)
	}

	s.setState(StatePersisting)
	if s.retired.Load() {
		logger.Info("Discarding sync result of retired service", "path", path)
		return s.retiredOutcome(doc, path, newTag)
	}

	state := models.SyncState{
		LastSynced:       taken,
		RemoteVersionTag: newTag,
		RemotePath:       path,
	}
	if err := t.persist(ctx, state); err != nil {
		return s.failed(logger, doc, path, fmt.Errorf("failed to persist sync state: %w", err))
	}

	logger.Info("Document synced", "path", path, "reason", decision.Reason)
	return Outcome{
		DocumentID: doc.ID,
		Name:       doc.Name,
		Path:       path,
		VersionTag: newTag,
		Status:     StatusSuccess,
		Reason:     decision.Reason,
	}
}

// resolveTarget выбирает путь и ожидаемый tag.
// Сохранённый tag используется, только если его путь всё ещё среди кандидатов:
// после переименования tag относится к старому объекту и должен быть перечитан.
// known=true, если tag уже получен из кэша или опроса remote ("" значит объекта нет).
func (s *service) resolveTarget(ctx context.Context, doc *models.Document, candidates []string) (string, string, bool, error) {
	if doc.RemoteVersionTag != "" && slices.Contains(candidates, doc.RemotePath) {
		return doc.RemotePath, doc.RemoteVersionTag, true, nil
	}

	if len(candidates) == 1 {
		return candidates[0], "", false, nil
	}

	path, tag, err := Locate(ctx, s.remote, candidates)
	if err != nil {
		return candidates[0], "", false, err
	}
	return path, tag, true, nil
}

func (s *service) retiredOutcome(doc *models.Document, path, tag string) Outcome {
	return Outcome{
		DocumentID: doc.ID,
		Name:       doc.Name,
		Path:       path,
		VersionTag: tag,
		Status:     StatusSkipped,
		Reason:     ReasonRetired,
		Err:        ErrRetired,
	}
}

func (s *service) failed(logger *slog.Logger, doc *models.Document, path string, err error) Outcome {
	logger.Error("Failed to sync document", "path", path, "error", err)
	return Outcome{
		DocumentID: doc.ID,
		Name:       doc.Name,
		Path:       path,
		Status:     StatusFailed,
		Err:        err,
	}
}

func skipped(doc *models.Document, reason string) Outcome {
	return Outcome{
		DocumentID: doc.ID,
		Name:       doc.Name,
		Status:     StatusSkipped,
		Reason:     reason,
	}
}

// aggregateDocument собирает синтетический документ из снимка агрегата
func aggregateDocument(id, name, content string, modified time.Time, state *models.SyncState) *models.Document {
	doc := &models.Document{
		ID:           id,
		Name:         name,
		Kind:         models.KindAggregate,
		Content:      content,
		LastModified: modified,
	}
	if state != nil {
		doc.ApplySyncState(*state)
	}
	return doc
}

func ptr[T any](v T) *T {
	return &v
}
