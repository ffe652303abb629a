package tween

import "errors"

// Validation failures reported by Start.
var (
	// ErrMissingUpdateCallback indicates a Config without OnUpdate.
	ErrMissingUpdateCallback = errors.New("tween: missing update callback")

	// ErrMissingDuration indicates a Config without a positive Duration.
	ErrMissingDuration = errors.New("tween: missing duration")

	// ErrMismatchedGroupKeys indicates a Group whose End keys differ from
	// its Start keys.
	ErrMismatchedGroupKeys = errors.New("tween: mismatched group keys")

	// ErrAlreadyStarted indicates Start on an animation that is running or
	// has already ended.
	ErrAlreadyStarted = errors.New("tween: animation already started")
)
