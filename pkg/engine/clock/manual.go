package clock

import (
	"sync"
	"sync/atomic"
	"time"
)

// ManualScheduler fires tasks only when Tick is called.
// It is used to drive timer-based code deterministically in tests.
type ManualScheduler struct {
	mu     sync.Mutex
	timers []*ManualTimer
}

// NewManualScheduler creates a scheduler with no timers
func NewManualScheduler() *ManualScheduler {
	return &ManualScheduler{}
}

// ManualTimer is a task registered with a ManualScheduler
type ManualTimer struct {
	Interval time.Duration
	fn       func()
	stopped  atomic.Bool
}

// Stop cancels the timer
func (t *ManualTimer) Stop() {
	t.stopped.Store(true)
}

// Stopped returns true once Stop has been called
func (t *ManualTimer) Stopped() bool {
	return t.stopped.Load()
}

// Every registers fn; it runs on each Tick until stopped
func (m *ManualScheduler) Every(interval time.Duration, fn func()) Timer {
	t := &ManualTimer{Interval: interval, fn: fn}
	m.mu.Lock()
	m.timers = append(m.timers, t)
	m.mu.Unlock()
	return t
}

// Tick fires every active timer once and returns how many fired.
// Timers are called without the scheduler lock held, so they may
// register or stop timers.
func (m *ManualScheduler) Tick() int {
	m.mu.Lock()
	active := make([]*ManualTimer, 0, len(m.timers))
	for _, t := range m.timers {
		if !t.Stopped() {
			active = append(active, t)
		}
	}
	m.mu.Unlock()

	fired := 0
	for _, t := range active {
		if t.Stopped() {
			continue
		}
		t.fn()
		fired++
	}
	return fired
}

// Active returns the number of timers that have not been stopped
func (m *ManualScheduler) Active() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	n := 0
	for _, t := range m.timers {
		if !t.Stopped() {
			n++
		}
	}
	return n
}

// Created returns the number of timers ever registered
func (m *ManualScheduler) Created() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.timers)
}
