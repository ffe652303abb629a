// Package tween interpolates a scalar or a named group of scalars over a
// fixed duration, one step per host frame.
//
// An Animation is built once from a Config and started once. Start
// validates the Config, then the animation reschedules itself on the
// frame.Scheduler until the progress fraction reaches exactly 1 or Cancel
// is called.
package tween

import (
	"errors"
	"fmt"
	"math"
	"sync"
	"time"

	"github.com/BrugadaSyndrome/bslogger"
	"github.com/matt-g-everett/tweentx/frame"
	"github.com/matt-g-everett/tweentx/timing"
)

// Logger receives validation failures and other diagnostics.
// *bslogger.Logger satisfies it.
type Logger interface {
	Error(message string)
	Warning(message string)
}

// State is a step in an animation's lifecycle.
type State int

const (
	Unstarted State = iota
	Validating
	Aborted
	Running
	Finished
	Cancelled
)

func (s State) String() string {
	switch s {
	case Unstarted:
		return "Unstarted"
	case Validating:
		return "Validating"
	case Aborted:
		return "Aborted"
	case Running:
		return "Running"
	case Finished:
		return "Finished"
	case Cancelled:
		return "Cancelled"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// Config describes an animation. Timing defaults to timing.Linear and
// Range to Single{0, 1}; OnUpdate and Duration are required.
type Config struct {
	Timing   timing.Func
	Duration time.Duration
	Range    Range

	OnUpdate func(Value)
	OnStart  func()
	OnFinish func()
	OnCancel func()

	Logger Logger
}

// Snapshot is a point-in-time view of an animation.
type Snapshot struct {
	State    string  `json:"state"`
	Progress float64 `json:"progress"`
	Value    Value   `json:"value"`
}

// An Animation drives one run of a Config.
type Animation struct {
	timing    timing.Func
	duration  time.Duration
	rng       Range
	onUpdate  func(Value)
	onStart   func()
	onFinish  func()
	onCancel  func()
	logger    Logger
	scheduler frame.Scheduler

	mu         sync.Mutex
	state      State
	startstamp time.Duration
	pending    frame.Handle
	progress   float64
	last       Value
	done       chan struct{}
}

// New creates an Animation. It never fails; problems with cfg are reported
// by Start. A nil scheduler means frame.Default, resolved on Start.
func New(cfg Config, scheduler frame.Scheduler) *Animation {
	a := new(Animation)

	a.timing = cfg.Timing
	if a.timing == nil {
		a.timing = timing.Linear
	}

	a.rng = cfg.Range
	if a.rng == nil {
		a.rng = Single{Start: 0, End: 1}
	}

	a.duration = cfg.Duration
	a.onUpdate = cfg.OnUpdate
	a.onStart = cfg.OnStart
	a.onFinish = cfg.OnFinish
	a.onCancel = cfg.OnCancel

	a.logger = cfg.Logger
	if a.logger == nil {
		l := bslogger.NewLogger("tween", bslogger.Normal, nil)
		a.logger = &l
	}

	a.scheduler = scheduler
	a.state = Unstarted
	a.done = make(chan struct{})

	return a
}

// Start validates the animation and, if it is sound, calls OnStart and
// requests the first frame. On failure every problem is written to the
// Logger and returned; nothing else happens and Start may be retried.
func (a *Animation) Start() error {
	a.mu.Lock()
	if a.state != Unstarted && a.state != Aborted {
		state := a.state
		a.mu.Unlock()
		a.logger.Error(ErrAlreadyStarted.Error())
		return fmt.Errorf("%w: state %s", ErrAlreadyStarted, state)
	}

	a.state = Validating
	if err := a.verify(); err != nil {
		a.state = Aborted
		a.mu.Unlock()
		return err
	}

	if a.scheduler == nil {
		a.scheduler = frame.Default()
	}
	a.state = Running
	a.mu.Unlock()

	if a.onStart != nil {
		a.onStart()
	}

	a.mu.Lock()
	defer a.mu.Unlock()

	// OnStart may have cancelled.
	if a.state != Running {
		return nil
	}

	a.startstamp = a.scheduler.Now()
	a.pending = a.scheduler.RequestFrame(a.update)
	return nil
}

func (a *Animation) verify() error {
	var errs []error

	if a.onUpdate == nil {
		errs = append(errs, ErrMissingUpdateCallback)
	}

	if a.duration <= 0 {
		errs = append(errs, ErrMissingDuration)
	}

	if err := a.rng.validate(); err != nil {
		errs = append(errs, err)
	}

	for _, err := range errs {
		a.logger.Error(err.Error())
	}

	return errors.Join(errs...)
}

// update is the frame continuation.
func (a *Animation) update(timestamp time.Duration) {
	a.mu.Lock()
	if a.state != Running {
		a.mu.Unlock()
		return
	}
	a.pending = 0

	if timestamp == frame.NoTimestamp {
		timestamp = a.scheduler.Now()
	}

	runtime := timestamp - a.startstamp
	if runtime < 0 {
		a.logger.Warning(fmt.Sprintf("tween: frame timestamp %s precedes start %s, clamping to 0", timestamp, a.startstamp))
		runtime = 0
	}

	progress := math.Min(float64(runtime)/float64(a.duration), 1)
	value := a.rng.At(a.timing(progress))
	a.progress = progress
	a.last = value
	a.mu.Unlock()

	a.onUpdate(value)

	a.mu.Lock()
	if a.state != Running {
		a.mu.Unlock()
		return
	}

	if progress == 1 {
		a.state = Finished
		close(a.done)
		a.mu.Unlock()

		if a.onFinish != nil {
			a.onFinish()
		}
		return
	}

	a.pending = a.scheduler.RequestFrame(a.update)
	a.mu.Unlock()
}

// Cancel stops a running animation without calling OnFinish. It drops the
// pending frame request and calls OnCancel. It reports whether the
// animation was running.
func (a *Animation) Cancel() bool {
	a.mu.Lock()
	if a.state != Running {
		a.mu.Unlock()
		return false
	}

	a.state = Cancelled
	if a.pending != 0 {
		a.scheduler.CancelFrame(a.pending)
		a.pending = 0
	}
	close(a.done)
	a.mu.Unlock()

	if a.onCancel != nil {
		a.onCancel()
	}
	return true
}

// Done is closed once the animation finishes or is cancelled.
func (a *Animation) Done() <-chan struct{} {
	return a.done
}

// State returns the current lifecycle state.
func (a *Animation) State() State {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.state
}

// Progress returns the last computed progress fraction.
func (a *Animation) Progress() float64 {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.progress
}

// Last returns the value most recently passed to OnUpdate.
func (a *Animation) Last() Value {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.last
}

// Snapshot returns state, progress and last value together.
func (a *Animation) Snapshot() Snapshot {
	a.mu.Lock()
	defer a.mu.Unlock()
	return Snapshot{
		State:    a.state.String(),
		Progress: a.progress,
		Value:    a.last,
	}
}
