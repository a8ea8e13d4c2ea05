// Package clock provides cancellable periodic tasks.
package clock

import (
	"sync"
	"time"
)

// Timer is a handle to a scheduled periodic task.
// Stop is immediate and idempotent.
type Timer interface {
	Stop()
}

// Scheduler runs fn every interval until the returned Timer is stopped.
// The first call happens one full interval after Every returns.
type Scheduler interface {
	Every(interval time.Duration, fn func()) Timer
}

// TickerScheduler schedules tasks on time.Ticker goroutines
type TickerScheduler struct{}

// Every starts a ticker goroutine for fn
func (TickerScheduler) Every(interval time.Duration, fn func()) Timer {
	t := &tickerTimer{stopChan: make(chan struct{})}
	ticker := time.NewTicker(interval)

	go func() {
		defer ticker.Stop()
		for {
			select {
			case <-t.stopChan:
				return
			case <-ticker.C:
				// A tick and a stop can be ready together; stop wins
				select {
				case <-t.stopChan:
					return
				default:
				}
				fn()
			}
		}
	}()

	return t
}

type tickerTimer struct {
	stopChan chan struct{}
	stopOnce sync.Once
}

// Stop cancels the ticker. It does not wait for a running fn to return,
// so fn may call Stop on its own timer.
func (t *tickerTimer) Stop() {
	t.stopOnce.Do(func() {
		close(t.stopChan)
	})
}
