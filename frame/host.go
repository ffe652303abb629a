package frame

import "sync"

var (
	hostMu    sync.Mutex
	installed Scheduler
)

// Install binds the process-wide Scheduler unless one is already bound and
// returns whichever is in effect. A nil native installs the timer
// fallback. Call it once during startup; repeated calls are harmless.
func Install(native Scheduler) Scheduler {
	hostMu.Lock()
	defer hostMu.Unlock()

	if installed != nil {
		return installed
	}

	if native != nil {
		installed = native
	} else {
		installed = newTimerScheduler()
	}

	return installed
}

// Default returns the installed Scheduler, installing the fallback first
// if nothing has been bound.
func Default() Scheduler {
	return Install(nil)
}
