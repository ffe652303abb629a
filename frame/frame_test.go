package frame

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func resetHost(t *testing.T) {
	t.Helper()
	hostMu.Lock()
	installed = nil
	hostMu.Unlock()
	t.Cleanup(func() {
		hostMu.Lock()
		installed = nil
		hostMu.Unlock()
	})
}

func TestManualStepRunsInRequestOrder(t *testing.T) {
	m := NewManual()
	var got []string

	m.RequestFrame(func(ts time.Duration) { got = append(got, "a") })
	m.RequestFrame(func(ts time.Duration) { got = append(got, "b") })
	require.Equal(t, 2, m.Pending())

	ran := m.Step(16 * time.Millisecond)
	assert.Equal(t, 2, ran)
	assert.Equal(t, []string{"a", "b"}, got)
	assert.Equal(t, 16*time.Millisecond, m.Now())
	assert.Zero(t, m.Pending())
}

func TestManualStepPassesTimestamp(t *testing.T) {
	m := NewManual()
	var seen time.Duration

	m.RequestFrame(func(ts time.Duration) { seen = ts })
	m.Step(42 * time.Millisecond)
	assert.Equal(t, 42*time.Millisecond, seen)

	m.RequestFrame(func(ts time.Duration) { seen = ts })
	m.StepBare(50 * time.Millisecond)
	assert.Equal(t, NoTimestamp, seen)
	assert.Equal(t, 50*time.Millisecond, m.Now())
}

func TestManualRequestsFromCallbackWaitForNextStep(t *testing.T) {
	m := NewManual()
	count := 0

	var cb Callback
	cb = func(time.Duration) {
		count++
		m.RequestFrame(cb)
	}
	m.RequestFrame(cb)

	m.Step(1)
	m.Step(2)
	assert.Equal(t, 2, count)
	assert.Equal(t, 1, m.Pending())
}

func TestManualCancel(t *testing.T) {
	m := NewManual()
	ran := false

	h := m.RequestFrame(func(time.Duration) { ran = true })
	assert.NotZero(t, h)
	m.CancelFrame(h)
	m.CancelFrame(h)
	m.CancelFrame(Handle(999))

	assert.Zero(t, m.Step(1))
	assert.False(t, ran)
}

func TestManualCancelWithinBatch(t *testing.T) {
	m := NewManual()
	ran := false

	var second Handle
	m.RequestFrame(func(time.Duration) { m.CancelFrame(second) })
	second = m.RequestFrame(func(time.Duration) { ran = true })

	assert.Equal(t, 1, m.Step(1))
	assert.False(t, ran)
}

func TestManualDrain(t *testing.T) {
	m := NewManual()
	remaining := 3

	var cb Callback
	cb = func(time.Duration) {
		remaining--
		if remaining > 0 {
			m.RequestFrame(cb)
		}
	}
	m.RequestFrame(cb)

	frames := m.Drain(10*time.Millisecond, 100)
	assert.Equal(t, 3, frames)
	assert.Equal(t, 30*time.Millisecond, m.Now())

	assert.Zero(t, m.Drain(10*time.Millisecond, 100))
}

func TestLoopRunsCallbacks(t *testing.T) {
	l := NewLoop(200)
	assert.Equal(t, 5*time.Millisecond, l.Interval())

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- l.Run(ctx) }()

	stamps := make(chan time.Duration, 1)
	l.RequestFrame(func(ts time.Duration) { stamps <- ts })

	select {
	case ts := <-stamps:
		assert.Greater(t, int64(ts), int64(0))
	case <-time.After(2 * time.Second):
		t.Fatal("frame never ran")
	}

	cancel()
	assert.ErrorIs(t, <-done, context.Canceled)
}

func TestLoopDefaultRate(t *testing.T) {
	l := NewLoop(0)
	assert.Equal(t, time.Second/time.Duration(DefaultFrameRate), l.Interval())
	assert.GreaterOrEqual(t, int64(l.Now()), int64(0))
}

func TestTimerFallback(t *testing.T) {
	s := newTimerScheduler()

	var wg sync.WaitGroup
	wg.Add(1)
	var seen time.Duration
	s.RequestFrame(func(ts time.Duration) {
		seen = ts
		wg.Done()
	})
	wg.Wait()
	assert.Equal(t, NoTimestamp, seen)

	fired := make(chan struct{}, 1)
	h := s.RequestFrame(func(time.Duration) { fired <- struct{}{} })
	s.CancelFrame(h)

	select {
	case <-fired:
		t.Fatal("cancelled frame ran")
	case <-time.After(5 * FallbackDelay):
	}
}

func TestInstallIsIdempotent(t *testing.T) {
	resetHost(t)

	first := NewManual()
	got := Install(first)
	assert.Same(t, first, got)

	second := NewManual()
	assert.Same(t, first, Install(second))
	assert.Same(t, first, Install(nil))
	assert.Same(t, first, Default())
}

func TestDefaultInstallsFallback(t *testing.T) {
	resetHost(t)

	s := Default()
	_, ok := s.(*timerScheduler)
	assert.True(t, ok)
	assert.Same(t, s, Default())
	assert.Same(t, s, Install(NewManual()))
}
