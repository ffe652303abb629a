package frame

import (
	"sync"
	"time"
)

// FallbackDelay approximates 60 refreshes per second.
const FallbackDelay = time.Second / 60

// timerScheduler is the degraded fallback: each request is its own timer
// and callbacks get no timestamp.
type timerScheduler struct {
	origin time.Time

	mu     sync.Mutex
	last   Handle
	timers map[Handle]*time.Timer
}

func newTimerScheduler() *timerScheduler {
	s := new(timerScheduler)
	s.origin = time.Now()
	s.timers = make(map[Handle]*time.Timer)
	return s
}

func (s *timerScheduler) RequestFrame(cb Callback) Handle {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.last++
	h := s.last
	s.timers[h] = time.AfterFunc(FallbackDelay, func() {
		s.mu.Lock()
		_, ok := s.timers[h]
		delete(s.timers, h)
		s.mu.Unlock()

		if ok {
			cb(NoTimestamp)
		}
	})

	return h
}

func (s *timerScheduler) CancelFrame(h Handle) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if t, ok := s.timers[h]; ok {
		t.Stop()
		delete(s.timers, h)
	}
}

func (s *timerScheduler) Now() time.Duration {
	return time.Since(s.origin)
}
