// Package uistatetest provides a scheduler whose timers fire only when a test
// asks them to.
package uistatetest

import (
	"sync"
	"time"
)

type task struct {
	interval  time.Duration
	fn        func()
	cancelled bool
}

// Scheduler records every registration and fires them on demand. The zero
// value is ready to use.
type Scheduler struct {
	mu    sync.Mutex
	tasks []*task
}

// Every registers fn; the returned cancel removes it from later ticks
func (s *Scheduler) Every(interval time.Duration, fn func()) func() {
	s.mu.Lock()
	defer s.mu.Unlock()

	t := &task{interval: interval, fn: fn}
	s.tasks = append(s.tasks, t)
	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		t.cancelled = true
	}
}

// Tick fires every live registration once
func (s *Scheduler) Tick() {
	for _, fn := range s.snapshot(false) {
		fn()
	}
}

// FireAll fires every registration, cancelled ones included, as a tick that
// was already in flight when its timer was stopped
func (s *Scheduler) FireAll() {
	for _, fn := range s.snapshot(true) {
		fn()
	}
}

// Live returns the number of registrations not yet cancelled
func (s *Scheduler) Live() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	n := 0
	for _, t := range s.tasks {
		if !t.cancelled {
			n++
		}
	}
	return n
}

// Intervals returns the interval of every live registration in order
func (s *Scheduler) Intervals() []time.Duration {
	s.mu.Lock()
	defer s.mu.Unlock()

	var out []time.Duration
	for _, t := range s.tasks {
		if !t.cancelled {
			out = append(out, t.interval)
		}
	}
	return out
}

func (s *Scheduler) snapshot(all bool) []func() {
	s.mu.Lock()
	defer s.mu.Unlock()

	fns := make([]func(), 0, len(s.tasks))
	for _, t := range s.tasks {
		if all || !t.cancelled {
			fns = append(fns, t.fn)
		}
	}
	return fns
}
