package frame

import (
	"context"
	"time"
)

// DefaultFrameRate is used when a Loop is created with a non-positive rate.
const DefaultFrameRate = 60.0

// Loop is a Scheduler that flushes requests on every tick of a ticker.
// All callbacks run on the goroutine that called Run, in request order.
type Loop struct {
	queue

	interval time.Duration
	origin   time.Time
}

// NewLoop creates a Loop refreshing frameRate times per second.
func NewLoop(frameRate float64) *Loop {
	if frameRate <= 0 {
		frameRate = DefaultFrameRate
	}

	l := new(Loop)
	l.interval = time.Duration(float64(time.Second) / frameRate)
	l.origin = time.Now()
	return l
}

// Interval is the time between refreshes.
func (l *Loop) Interval() time.Duration {
	return l.interval
}

// RequestFrame queues cb for the next tick.
func (l *Loop) RequestFrame(cb Callback) Handle {
	return l.push(cb)
}

// CancelFrame drops a queued request.
func (l *Loop) CancelFrame(h Handle) {
	l.cancel(h)
}

// Now is the time elapsed since the Loop was created.
func (l *Loop) Now() time.Duration {
	return time.Since(l.origin)
}

// Run ticks until ctx is done.
func (l *Loop) Run(ctx context.Context) error {
	ticker := time.NewTicker(l.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case t := <-ticker.C:
			l.flush(t.Sub(l.origin))
		}
	}
}
