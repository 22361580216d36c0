package uistate

import (
	"sync"
	"time"
)

// Scheduler registers a periodic callback. The returned cancel function stops
// further invocations and may be called more than once.
type Scheduler interface {
	Every(interval time.Duration, fn func()) (cancel func())
}

// TickerScheduler runs each registration on its own time.Ticker goroutine.
type TickerScheduler struct{}

// Every starts a ticker that calls fn until cancel is called
func (TickerScheduler) Every(interval time.Duration, fn func()) func() {
	ticker := time.NewTicker(interval)
	done := make(chan struct{})

	go func() {
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				fn()
			case <-done:
				return
			}
		}
	}()

	var once sync.Once
	return func() {
		once.Do(func() { close(done) })
	}
}
