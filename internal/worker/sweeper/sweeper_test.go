package sweeper

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeRepo struct {
	mu      sync.Mutex
	cutoffs []time.Time
	count   int64
	err     error
}

func (f *fakeRepo) CancelStalePendingPayment(_ context.Context, cutoff time.Time) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.cutoffs = append(f.cutoffs, cutoff)
	return f.count, f.err
}

func (f *fakeRepo) calls() []time.Time {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]time.Time(nil), f.cutoffs...)
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func TestSweepsImmediatelyOnRun(t *testing.T) {
	repo := &fakeRepo{count: 2}
	s := New(repo, time.Hour, 24*time.Hour, nopLogger{})

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		s.Run(ctx)
		close(done)
	}()

	require.Eventually(t, func() bool { return len(repo.calls()) == 1 }, time.Second, 10*time.Millisecond)

	cancel()
	<-done

	cutoff := repo.calls()[0]
	assert.WithinDuration(t, time.Now().Add(-24*time.Hour), cutoff, time.Minute)
}

func TestSweepsOnEveryTick(t *testing.T) {
	repo := &fakeRepo{}
	s := New(repo, 20*time.Millisecond, time.Hour, nopLogger{})

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		s.Run(ctx)
		close(done)
	}()

	require.Eventually(t, func() bool { return len(repo.calls()) >= 3 }, time.Second, 10*time.Millisecond)

	cancel()
	<-done
}

func TestSweepErrorDoesNotStopTheLoop(t *testing.T) {
	repo := &fakeRepo{err: errors.New("connection reset")}
	s := New(repo, 20*time.Millisecond, time.Hour, nopLogger{})

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		s.Run(ctx)
		close(done)
	}()

	require.Eventually(t, func() bool { return len(repo.calls()) >= 2 }, time.Second, 10*time.Millisecond)

	cancel()
	<-done
}
