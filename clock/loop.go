package clock

import (
	"sync"
	"sync/atomic"
	"time"
)

// LoopClock is the real-time clock used by the session loop
// Expired timers are queued on Callbacks() instead of running on the timer goroutine,
// so every callback executes on the goroutine that drains the queue
type LoopClock struct {
	queue chan func()
	done  chan struct{}
	once  sync.Once
}

// NewLoopClock creates a loop clock with the given callback buffer
func NewLoopClock(buffer int) *LoopClock {
	return &LoopClock{
		queue: make(chan func(), buffer),
		done:  make(chan struct{}),
	}
}

// Now returns the current time with monotonic clock reading
func (c *LoopClock) Now() time.Time {
	return time.Now()
}

// AfterFunc schedules fn to be queued after d
func (c *LoopClock) AfterFunc(d time.Duration, fn func()) Timer {
	lt := &loopTimer{}
	lt.timer = time.AfterFunc(d, func() {
		if lt.stopped.Load() {
			return
		}
		select {
		case c.queue <- lt.guard(fn):
		case <-c.done:
		}
	})
	return lt
}

// Callbacks returns the queue drained by the session loop
func (c *LoopClock) Callbacks() <-chan func() {
	return c.queue
}

// Close releases timer goroutines blocked on a full queue
// Pending timers keep running but their callbacks are discarded
func (c *LoopClock) Close() {
	c.once.Do(func() {
		close(c.done)
	})
}

type loopTimer struct {
	timer   *time.Timer
	stopped atomic.Bool
	fired   atomic.Bool
}

// guard wraps fn so a Stop issued after queueing still suppresses the call
func (t *loopTimer) guard(fn func()) func() {
	return func() {
		if t.stopped.Load() {
			return
		}
		t.fired.Store(true)
		fn()
	}
}

func (t *loopTimer) Stop() bool {
	if t.fired.Load() {
		return false
	}
	if !t.stopped.CompareAndSwap(false, true) {
		return false
	}
	t.timer.Stop()
	return true
}
