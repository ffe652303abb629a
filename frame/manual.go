package frame

import (
	"sync"
	"time"
)

// Manual is a Scheduler whose clock and refreshes are driven explicitly.
type Manual struct {
	queue

	clockMu sync.Mutex
	now     time.Duration
}

// NewManual creates a Manual scheduler with its clock at zero.
func NewManual() *Manual {
	return new(Manual)
}

// RequestFrame queues cb for the next Step.
func (m *Manual) RequestFrame(cb Callback) Handle {
	return m.push(cb)
}

// CancelFrame drops a queued request.
func (m *Manual) CancelFrame(h Handle) {
	m.cancel(h)
}

// Now returns the manual clock.
func (m *Manual) Now() time.Duration {
	m.clockMu.Lock()
	defer m.clockMu.Unlock()
	return m.now
}

// Set moves the clock without running any frame.
func (m *Manual) Set(now time.Duration) {
	m.clockMu.Lock()
	m.now = now
	m.clockMu.Unlock()
}

// Pending reports how many requests are waiting.
func (m *Manual) Pending() int {
	return m.len()
}

// Step sets the clock to timestamp and runs one refresh. It returns the
// number of callbacks run.
func (m *Manual) Step(timestamp time.Duration) int {
	m.Set(timestamp)
	return m.flush(timestamp)
}

// StepBare runs one refresh without a timestamp, the way a degraded host
// timer would.
func (m *Manual) StepBare(now time.Duration) int {
	m.Set(now)
	return m.flush(NoTimestamp)
}

// Drain steps the clock by interval until nothing is pending or limit
// refreshes have run. It returns the number of refreshes.
func (m *Manual) Drain(interval time.Duration, limit int) int {
	frames := 0
	for frames < limit && m.Pending() > 0 {
		m.Step(m.Now() + interval)
		frames++
	}
	return frames
}
