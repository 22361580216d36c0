// Package uistate holds the presentation state owned by each mounted page:
// rotating carousels, the blog filter and collapsible navigation regions.
package uistate

import (
	"fmt"
	"sync"
	"time"
)

// Rotator owns the active index of a fixed-length carousel. The timer and the
// manual controls mutate the same index, so there is exactly one source of
// truth regardless of what triggered the change.
type Rotator struct {
	mu        sync.Mutex
	count     int
	index     int
	interval  time.Duration
	scheduler Scheduler
	cancel    func()
	gen       uint64
	onChange  func(index int)
}

// RotatorOption configures a Rotator
type RotatorOption func(*Rotator)

// WithScheduler replaces the default ticker-based scheduler
func WithScheduler(s Scheduler) RotatorOption {
	return func(r *Rotator) {
		r.scheduler = s
	}
}

// WithOnChange registers the re-render trigger, called after every index change.
// It runs outside the rotator lock and may call back into the rotator.
func WithOnChange(fn func(index int)) RotatorOption {
	return func(r *Rotator) {
		r.onChange = fn
	}
}

// NewRotator creates a stopped rotator positioned at index 0
func NewRotator(itemCount int, opts ...RotatorOption) (*Rotator, error) {
	if itemCount < 1 {
		return nil, fmt.Errorf("new rotator with %d items: %w", itemCount, ErrNoItems)
	}

	r := &Rotator{
		count:     itemCount,
		scheduler: TickerScheduler{},
	}
	for _, opt := range opts {
		opt(r)
	}
	return r, nil
}

// Start begins advancing the index every interval. Calling Start on a running
// rotator replaces the previous schedule, so at most one is ever live.
func (r *Rotator) Start(interval time.Duration, itemCount int) error {
	if itemCount < 1 {
		return fmt.Errorf("start rotation with %d items: %w", itemCount, ErrNoItems)
	}
	if interval <= 0 {
		return fmt.Errorf("start rotation every %s: %w", interval, ErrInvalidInterval)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if r.cancel != nil {
		r.cancel()
	}
	r.count = itemCount
	r.index = r.index % itemCount
	r.interval = interval
	r.gen++
	gen := r.gen
	r.cancel = r.scheduler.Every(interval, func() { r.tick(gen) })
	return nil
}

// Stop cancels pending ticks. It is safe to call on a stopped rotator.
func (r *Rotator) Stop() {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.cancel != nil {
		r.cancel()
		r.cancel = nil
	}
	// Invalidate ticks already in flight from the cancelled schedule
	r.gen++
}

// Running reports whether a schedule is live
func (r *Rotator) Running() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.cancel != nil
}

// Interval returns the interval of the current or last schedule
func (r *Rotator) Interval() time.Duration {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.interval
}

// Index returns the active index
func (r *Rotator) Index() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.index
}

// Len returns the number of items being rotated
func (r *Rotator) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.count
}

// GoTo jumps to k mod N without touching the schedule. Negative values wrap
// from the end.
func (r *Rotator) GoTo(k int) int {
	return r.set(func(_, n int) int {
		return ((k % n) + n) % n
	})
}

// StepForward moves one item forward, wrapping past the last item
func (r *Rotator) StepForward() int {
	return r.set(func(i, n int) int {
		return (i + 1) % n
	})
}

// StepBackward moves one item back, wrapping before the first item
func (r *Rotator) StepBackward() int {
	return r.set(func(i, n int) int {
		return (i - 1 + n) % n
	})
}

func (r *Rotator) tick(gen uint64) {
	r.mu.Lock()
	if gen != r.gen || r.cancel == nil {
		r.mu.Unlock()
		return
	}
	r.index = (r.index + 1) % r.count
	index := r.index
	r.mu.Unlock()

	r.notify(index)
}

func (r *Rotator) set(next func(index, count int) int) int {
	r.mu.Lock()
	prev := r.index
	r.index = next(r.index, r.count)
	index := r.index
	r.mu.Unlock()

	if index != prev {
		r.notify(index)
	}
	return index
}

func (r *Rotator) notify(index int) {
	if r.onChange != nil {
		r.onChange(index)
	}
}
