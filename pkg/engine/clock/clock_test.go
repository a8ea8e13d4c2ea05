package clock

import (
	"sync/atomic"
	"testing"
	"time"
)

func TestManualScheduler_TickFiresActiveTimers(t *testing.T) {
	m := NewManualScheduler()
	var a, b int

	ta := m.Every(time.Second, func() { a++ })
	m.Every(time.Second, func() { b++ })

	if fired := m.Tick(); fired != 2 {
		t.Fatalf("Tick() fired %d, want 2", fired)
	}

	ta.Stop()
	ta.Stop() // idempotent

	if fired := m.Tick(); fired != 1 {
		t.Fatalf("Tick() after stop fired %d, want 1", fired)
	}
	if a != 1 || b != 2 {
		t.Errorf("a=%d b=%d, want a=1 b=2", a, b)
	}
	if m.Active() != 1 || m.Created() != 2 {
		t.Errorf("Active()=%d Created()=%d, want 1 and 2", m.Active(), m.Created())
	}
}

func TestManualScheduler_TimerCanStopItself(t *testing.T) {
	m := NewManualScheduler()
	var calls int
	var timer Timer
	timer = m.Every(time.Second, func() {
		calls++
		timer.Stop()
	})

	m.Tick()
	m.Tick()
	if calls != 1 {
		t.Errorf("calls = %d, want 1", calls)
	}
}

func TestTickerScheduler_FiresAndStops(t *testing.T) {
	var calls atomic.Int32
	fired := make(chan struct{}, 16)

	timer := TickerScheduler{}.Every(5*time.Millisecond, func() {
		calls.Add(1)
		select {
		case fired <- struct{}{}:
		default:
		}
	})

	select {
	case <-fired:
	case <-time.After(2 * time.Second):
		t.Fatal("ticker never fired")
	}

	timer.Stop()
	timer.Stop()

	// Allow an in-flight call to land, then check no more arrive
	time.Sleep(20 * time.Millisecond)
	settled := calls.Load()
	time.Sleep(50 * time.Millisecond)
	if got := calls.Load(); got != settled {
		t.Errorf("ticker fired %d more times after Stop", got-settled)
	}
}

func TestTickerScheduler_StopFromCallback(t *testing.T) {
	done := make(chan struct{})
	var timer Timer
	var once atomic.Bool
	ready := make(chan struct{})

	timer = TickerScheduler{}.Every(time.Millisecond, func() {
		<-ready
		if once.CompareAndSwap(false, true) {
			timer.Stop()
			close(done)
		}
	})
	close(ready)

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("Stop from inside the callback deadlocked")
	}
}
