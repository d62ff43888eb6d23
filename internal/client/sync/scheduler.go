package sync

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"

	"github.com/robfig/cron/v3"
)

var (
	// ErrRunInProgress возвращается RunNow, если прогон уже идёт
	ErrRunInProgress = errors.New("sync run already in progress")
	// ErrSyncQueued возвращается ForceSync, если прогон уже идёт:
	// документ помечен и будет выгружен дополнительным проходом сразу после текущего
	ErrSyncQueued = errors.New("sync queued after current run")
	// ErrSchedulerStarted возвращается при повторном Start
	ErrSchedulerStarted = errors.New("scheduler already started")
)

// Scheduler запускает Service по расписанию cron.
// Одновременно выполняется не больше одного прогона: тик во время прогона
// пропускается, а ForceSync во время прогона ставит ещё один проход в очередь.
type Scheduler struct {
	cron    *cron.Cron
	service Service
	logger  *slog.Logger
	last    *RunResult
	spec    string
	entryID cron.EntryID
	mu      sync.Mutex
	running atomic.Bool
	rerun   atomic.Bool
	started bool
}

// NewScheduler создает планировщик. spec это cron-выражение или "@every 30m".
func NewScheduler(service Service, spec string, logger *slog.Logger) (*Scheduler, error) {
	if _, err := cron.ParseStandard(spec); err != nil {
		return nil, fmt.Errorf("invalid sync schedule %q: %w", spec, err)
	}

	return &Scheduler{
		cron:    cron.New(),
		service: service,
		logger:  logger,
		spec:    spec,
	}, nil
}

// Start регистрирует прогон в cron и запускает таймер
func (s *Scheduler) Start() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.started {
		return ErrSchedulerStarted
	}

	s.logger.Info("Starting scheduler", "schedule", s.spec)

	id, err := s.cron.AddFunc(s.spec, s.tick)
	if err != nil {
		return fmt.Errorf("failed to schedule sync: %w", err)
	}

	s.entryID = id
	s.started = true
	s.cron.Start()
	return nil
}

// Stop останавливает таймер и ждёт завершения уже запущенного прогона
func (s *Scheduler) Stop() {
	s.mu.Lock()
	if !s.started {
		s.mu.Unlock()
		return
	}
	s.cron.Remove(s.entryID)
	s.started = false
	s.mu.Unlock()

	<-s.cron.Stop().Done()
	s.logger.Info("Stopped scheduler")
}

// RunNow выполняет полный прогон синхронно.
// Если прогон уже идёт, возвращается ErrRunInProgress.
func (s *Scheduler) RunNow(ctx context.Context) (*RunResult, error) {
	var (
		result *RunResult
		err    error
	)

	ok := s.exclusive(ctx, func(svc Service) {
		result, err = s.runAll(ctx, svc)
	})
	if !ok {
		return nil, ErrRunInProgress
	}
	return result, err
}

// ForceSync помечает документ и сразу синхронизирует его.
// Если идёт прогон, возвращается ErrSyncQueued: документ уйдёт в дополнительном проходе.
func (s *Scheduler) ForceSync(ctx context.Context, id string) (*Outcome, error) {
	svc := s.current()
	if err := svc.MarkForceSync(ctx, id); err != nil {
		return nil, err
	}

	var (
		outcome *Outcome
		err     error
	)

	syncDocument := func(svc Service) {
		outcome, err = svc.SyncDocument(ctx, id)
	}

	if s.exclusive(ctx, syncDocument) {
		return outcome, err
	}

	s.rerun.Store(true)
	s.logger.Info("Sync in progress, force sync queued", "document_id", id)

	// Прогон мог завершиться между проверкой и постановкой в очередь,
	// тогда документ выгружается здесь же, а за ним разбирается очередь
	if s.exclusive(ctx, syncDocument) {
		return outcome, err
	}
	return nil, ErrSyncQueued
}

// Reconfigure подменяет сервис. Старый сервис выводится из работы:
// результаты его незавершённых вызовов не попадут в локальное хранилище.
func (s *Scheduler) Reconfigure(service Service) {
	s.mu.Lock()
	old := s.service
	s.service = service
	s.mu.Unlock()

	if old != nil && old != service {
		old.Retire()
	}
	s.logger.Info("Scheduler reconfigured", "configured", service.Configured())
}

// LastResult возвращает результат последнего полного прогона
func (s *Scheduler) LastResult() *RunResult {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.last
}

func (s *Scheduler) tick() {
	ok := s.exclusive(context.Background(), func(svc Service) {
		if _, err := s.runAll(context.Background(), svc); err != nil {
			s.logger.Error("Scheduled sync failed", "error", err)
		}
	})
	if !ok {
		s.logger.Info("Sync already running, skipping scheduled run")
	}
}

// exclusive выполняет fn под флагом прогона. После fn выполняются
// поставленные в очередь проходы. false, если флаг уже занят.
func (s *Scheduler) exclusive(ctx context.Context, fn func(svc Service)) bool {
	if !s.running.CompareAndSwap(false, true) {
		return false
	}

	fn(s.current())

	for {
		if s.rerun.CompareAndSwap(true, false) {
			s.logger.Info("Running queued sync")
			if _, err := s.runAll(ctx, s.current()); err != nil {
				s.logger.Error("Queued sync failed", "error", err)
			}
			continue
		}

		s.running.Store(false)

		// Токен мог появиться между проверкой и сбросом флага
		if !s.rerun.Load() || !s.running.CompareAndSwap(false, true) {
			return true
		}
	}
}

func (s *Scheduler) runAll(ctx context.Context, svc Service) (*RunResult, error) {
	result, err := svc.SyncAll(ctx)
	if result != nil {
		s.mu.Lock()
		s.last = result
		s.mu.Unlock()
	}
	return result, err
}

func (s *Scheduler) current() Service {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.service
}
