// Package frame abstracts the host's per-refresh callback primitive.
//
// A Scheduler queues callbacks to run before the next visual refresh and
// hands each one the refresh timestamp. Loop drives callbacks from a
// ticker, the timer fallback approximates 60 refreshes per second when no
// native loop is installed, and Manual is stepped by hand.
package frame

import (
	"math"
	"sync"
	"time"
)

// NoTimestamp is passed to a Callback when the host has no refresh
// timestamp to offer. Receivers should read the clock themselves.
const NoTimestamp = time.Duration(math.MinInt64)

// Handle identifies a pending frame request. The zero Handle is never
// issued.
type Handle uint64

// Callback runs once for a requested frame.
type Callback func(timestamp time.Duration)

// Scheduler is the host capability consumed by animations.
type Scheduler interface {
	// RequestFrame schedules cb to run before the next refresh.
	RequestFrame(cb Callback) Handle
	// CancelFrame drops a pending request. Unknown or already run handles
	// are ignored.
	CancelFrame(h Handle)
	// Now is a monotonic clock consistent with callback timestamps.
	Now() time.Duration
}

type request struct {
	handle Handle
	cb     Callback
}

// queue holds pending requests in the order they were made.
type queue struct {
	mu      sync.Mutex
	last    Handle
	pending []request
	live    map[Handle]struct{}
}

func (q *queue) push(cb Callback) Handle {
	q.mu.Lock()
	defer q.mu.Unlock()

	if q.live == nil {
		q.live = make(map[Handle]struct{})
	}
	q.last++
	q.pending = append(q.pending, request{q.last, cb})
	q.live[q.last] = struct{}{}
	return q.last
}

func (q *queue) cancel(h Handle) {
	q.mu.Lock()
	delete(q.live, h)
	q.mu.Unlock()
}

func (q *queue) len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.live)
}

// flush runs every request pending when it was called. Requests made by
// the callbacks wait for the next flush. A request cancelled while the
// batch runs is skipped.
func (q *queue) flush(timestamp time.Duration) int {
	q.mu.Lock()
	batch := q.pending
	q.pending = nil
	q.mu.Unlock()

	ran := 0
	for _, r := range batch {
		q.mu.Lock()
		_, ok := q.live[r.handle]
		delete(q.live, r.handle)
		q.mu.Unlock()

		if ok {
			r.cb(timestamp)
			ran++
		}
	}

	return ran
}
