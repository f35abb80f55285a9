// Package clock provides one-shot timers whose callbacks run on the session loop
package clock

import "time"

// Timer is a handle to a scheduled callback
type Timer interface {
	// Stop cancels the callback, returns false if it already ran or was stopped
	Stop() bool
}

// Clock schedules fire-once callbacks
// Implementations guarantee a stopped timer never invokes its callback
type Clock interface {
	Now() time.Time
	AfterFunc(d time.Duration, fn func()) Timer
}

// Dispatcher is implemented by clocks whose callbacks must be drained by the owner loop
type Dispatcher interface {
	Callbacks() <-chan func()
}
