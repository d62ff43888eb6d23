package sync

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/notesync/internal/logging"
)

func newServiceMock() *ServiceMock {
	return &ServiceMock{
		ConfiguredFunc: func() bool { return true },
		SyncAllFunc: func(ctx context.Context) (*RunResult, error) {
			return &RunResult{Uploaded: 1}, nil
		},
		MarkForceSyncFunc: func(ctx context.Context, id string) error { return nil },
		SyncDocumentFunc: func(ctx context.Context, id string) (*Outcome, error) {
			return &Outcome{DocumentID: id, Status: StatusSuccess}, nil
		},
		RetireFunc: func() {},
	}
}

func TestNewScheduler_InvalidSpec(t *testing.T) {
	_, err := NewScheduler(newServiceMock(), "every now and then", logging.Discard())
	assert.Error(t, err)

	s, err := NewScheduler(newServiceMock(), "*/5 * * * *", logging.Discard())
	require.NoError(t, err)
	assert.NotNil(t, s)
}

func TestScheduler_RunNow(t *testing.T) {
	svc := newServiceMock()
	s, err := NewScheduler(svc, "@every 1h", logging.Discard())
	require.NoError(t, err)

	result, err := s.RunNow(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, result.Uploaded)
	assert.Same(t, result, s.LastResult())
	assert.False(t, s.running.Load())
	assert.Len(t, svc.SyncAllCalls(), 1)
}

func TestScheduler_RunNow_InProgress(t *testing.T) {
	svc := newServiceMock()
	started := make(chan struct{})
	release := make(chan struct{})
	svc.SyncAllFunc = func(ctx context.Context) (*RunResult, error) {
		close(started)
		<-release
		return &RunResult{}, nil
	}

	s, err := NewScheduler(svc, "@every 1h", logging.Discard())
	require.NoError(t, err)

	done := make(chan struct{})
	go func() {
		defer close(done)
		_, _ = s.RunNow(context.Background())
	}()
	<-started

	_, err = s.RunNow(context.Background())
	assert.ErrorIs(t, err, ErrRunInProgress)

	close(release)
	<-done
	assert.Len(t, svc.SyncAllCalls(), 1)
}

func TestScheduler_ForceSync(t *testing.T) {
	svc := newServiceMock()
	s, err := NewScheduler(svc, "@every 1h", logging.Discard())
	require.NoError(t, err)

	outcome, err := s.ForceSync(context.Background(), "doc-1")
	require.NoError(t, err)
	assert.Equal(t, "doc-1", outcome.DocumentID)

	require.Len(t, svc.MarkForceSyncCalls(), 1)
	assert.Equal(t, "doc-1", svc.MarkForceSyncCalls()[0].ID)
	assert.Len(t, svc.SyncDocumentCalls(), 1)
	assert.Empty(t, svc.SyncAllCalls())
}

func TestScheduler_ForceSync_QueuedDuringRun(t *testing.T) {
	svc := newServiceMock()
	started := make(chan struct{})
	release := make(chan struct{})
	first := true
	svc.SyncAllFunc = func(ctx context.Context) (*RunResult, error) {
		if first {
			first = false
			close(started)
			<-release
		}
		return &RunResult{}, nil
	}

	s, err := NewScheduler(svc, "@every 1h", logging.Discard())
	require.NoError(t, err)

	done := make(chan struct{})
	go func() {
		defer close(done)
		_, _ = s.RunNow(context.Background())
	}()
	<-started

	_, err = s.ForceSync(context.Background(), "doc-1")
	assert.ErrorIs(t, err, ErrSyncQueued)
	assert.Len(t, svc.MarkForceSyncCalls(), 1)
	assert.Empty(t, svc.SyncDocumentCalls())

	close(release)
	<-done

	// Текущий прогон и дополнительный проход из очереди
	assert.Len(t, svc.SyncAllCalls(), 2)
	assert.False(t, s.running.Load())
}

func TestScheduler_ForceSync_ConcurrentRuns(t *testing.T) {
	svc := newServiceMock()
	s, err := NewScheduler(svc, "@every 1h", logging.Discard())
	require.NoError(t, err)

	stop := make(chan struct{})
	done := make(chan struct{})
	go func() {
		defer close(done)
		for {
			select {
			case <-stop:
				return
			default:
				_, _ = s.RunNow(context.Background())
			}
		}
	}()

	// Результат либо есть, либо запрос поставлен в очередь
	for range 200 {
		outcome, err := s.ForceSync(context.Background(), "doc-1")
		if err != nil {
			require.ErrorIs(t, err, ErrSyncQueued)
			continue
		}
		require.NotNil(t, outcome)
		assert.Equal(t, "doc-1", outcome.DocumentID)
	}

	close(stop)
	<-done
}

func TestScheduler_Reconfigure(t *testing.T) {
	old := newServiceMock()
	next := newServiceMock()

	s, err := NewScheduler(old, "@every 1h", logging.Discard())
	require.NoError(t, err)

	s.Reconfigure(next)
	assert.Len(t, old.RetireCalls(), 1)
	assert.Empty(t, next.RetireCalls())

	_, err = s.RunNow(context.Background())
	require.NoError(t, err)
	assert.Empty(t, old.SyncAllCalls())
	assert.Len(t, next.SyncAllCalls(), 1)

	// Повторная установка того же сервиса его не выводит
	s.Reconfigure(next)
	assert.Empty(t, next.RetireCalls())
}

func TestScheduler_StartStop(t *testing.T) {
	svc := newServiceMock()
	ran := make(chan struct{}, 1)
	svc.SyncAllFunc = func(ctx context.Context) (*RunResult, error) {
		select {
		case ran <- struct{}{}:
		default:
		}
		return &RunResult{}, nil
	}

	s, err := NewScheduler(svc, "@every 1s", logging.Discard())
	require.NoError(t, err)

	require.NoError(t, s.Start())
	assert.ErrorIs(t, s.Start(), ErrSchedulerStarted)

	select {
	case <-ran:
	case <-time.After(5 * time.Second):
		t.Fatal("scheduled sync did not run")
	}

	s.Stop()
	s.Stop()
	assert.False(t, s.running.Load())
}
