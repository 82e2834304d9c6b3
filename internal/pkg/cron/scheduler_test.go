package cron

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type countingLoader struct {
	calls atomic.Int32
	err   error
}

func (l *countingLoader) Load(ctx context.Context) error {
	l.calls.Add(1)
	return l.err
}

func TestScheduler_RunsOnInterval(t *testing.T) {
	s := NewScheduler()
	var runs atomic.Int32
	s.AddJob("tick", 10*time.Millisecond, func(ctx context.Context) error {
		runs.Add(1)
		return nil
	})

	s.Start(context.Background())
	assert.Equal(t, int32(0), runs.Load(), "first run waits one interval")

	require.Eventually(t, func() bool { return runs.Load() >= 2 }, time.Second, 5*time.Millisecond)
	s.Stop()

	after := runs.Load()
	time.Sleep(30 * time.Millisecond)
	assert.Equal(t, after, runs.Load())
}

func TestScheduler_StopsWithParentContext(t *testing.T) {
	s := NewScheduler()
	stopped := make(chan struct{})
	s.AddJob("blocking", 5*time.Millisecond, func(ctx context.Context) error {
		<-ctx.Done()
		close(stopped)
		return ctx.Err()
	})

	ctx, cancel := context.WithCancel(context.Background())
	s.Start(ctx)
	time.Sleep(20 * time.Millisecond)
	cancel()

	select {
	case <-stopped:
	case <-time.After(time.Second):
		t.Fatal("job did not observe cancellation")
	}
	s.Stop()
}

func TestScheduler_IgnoresNonPositiveInterval(t *testing.T) {
	s := NewScheduler()
	s.AddJob("never", 0, func(ctx context.Context) error { return nil })

	assert.Empty(t, s.Jobs())
	s.Stop()
}

func TestScheduler_RunOnceJoinsErrors(t *testing.T) {
	boom := errors.New("boom")
	s := NewScheduler()
	s.AddJob("ok", time.Hour, func(ctx context.Context) error { return nil })
	s.AddJob("bad", time.Hour, func(ctx context.Context) error { return boom })

	err := s.RunOnce(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, boom)
	assert.Contains(t, err.Error(), "bad")
}

func TestRosterJobs(t *testing.T) {
	t.Run("zero interval registers nothing", func(t *testing.T) {
		s := NewScheduler()
		NewRosterJobs(&countingLoader{}).RegisterJobs(s, 0)
		assert.Empty(t, s.Jobs())
	})

	t.Run("refresh reloads", func(t *testing.T) {
		loader := &countingLoader{}
		s := NewScheduler()
		NewRosterJobs(loader).RegisterJobs(s, time.Minute)

		jobs := s.Jobs()
		require.Len(t, jobs, 1)
		assert.Equal(t, RosterRefreshJob, jobs[0].Name)

		require.NoError(t, s.RunOnce(context.Background()))
		assert.Equal(t, int32(1), loader.calls.Load())
	})

	t.Run("failure surfaces", func(t *testing.T) {
		loader := &countingLoader{err: errors.New("connection refused")}
		s := NewScheduler()
		NewRosterJobs(loader).RegisterJobs(s, time.Minute)

		assert.Error(t, s.RunOnce(context.Background()))
	})
}
