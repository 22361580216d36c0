package services

import (
	"errors"
	"fmt"
	"log"
	"sync"
	"time"

	"advocacia_elite/models"
	"advocacia_elite/services/uistate"
)

// Section names a carousel on the landing page
type Section string

const (
	SectionHero         Section = "hero"
	SectionTestimonials Section = "testimonials"
)

// Teardown reasons
const (
	TeardownUnmount  = "unmount"
	TeardownIdle     = "idle"
	TeardownEvicted  = "evicted"
	TeardownShutdown = "shutdown"
)

const (
	// subscriberBuffer bounds how far a stream may lag before events are dropped
	subscriberBuffer = 8

	defaultMaxPages = 2000
)

var (
	// ErrPageNotFound is returned when no state is mounted for a page id
	ErrPageNotFound = errors.New("page not found")
	// ErrRegistryFull is returned when every mounted page holds a live stream
	// and the registry is at capacity
	ErrRegistryFull = errors.New("page registry full")
)

// Change is emitted every time a carousel moves
type Change struct {
	Section Section
	Index   int
}

// PageState is everything one displayed landing page holds. Every page load
// gets its own instance: it is created on mount and released on unmount, on
// eviction or when idle.
type PageState struct {
	ID           string
	Hero         *uistate.Rotator
	Testimonials *uistate.Rotator
	Blog         *uistate.Filter[models.BlogPost]
	Menu         *uistate.Disclosure
	Nav          *uistate.DisclosureGroup

	mu          sync.Mutex
	subscribers map[int]chan Change
	nextSub     int
	lastSeen    time.Time
	closed      bool
}

// Subscribe returns a channel of carousel changes and a cancel function. The
// channel is closed on cancel or when the page state is torn down.
func (p *PageState) Subscribe() (<-chan Change, func()) {
	p.mu.Lock()
	defer p.mu.Unlock()

	ch := make(chan Change, subscriberBuffer)
	if p.closed {
		close(ch)
		return ch, func() {}
	}

	id := p.nextSub
	p.nextSub++
	p.subscribers[id] = ch

	return ch, func() {
		p.mu.Lock()
		defer p.mu.Unlock()
		if sub, ok := p.subscribers[id]; ok {
			delete(p.subscribers, id)
			close(sub)
		}
	}
}

// Subscribers returns the number of live subscriptions
func (p *PageState) Subscribers() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.subscribers)
}

// Closed reports whether the page state was torn down
func (p *PageState) Closed() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.closed
}

func (p *PageState) publish(change Change) {
	rotationChanges.WithLabelValues(string(change.Section)).Inc()

	p.mu.Lock()
	defer p.mu.Unlock()

	for _, ch := range p.subscribers {
		select {
		case ch <- change:
		default:
			// A slow stream must never hold up the timer
			droppedEvents.Inc()
		}
	}
}

func (p *PageState) touch(now time.Time) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.lastSeen = now
}

func (p *PageState) seenAt() time.Time {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.lastSeen
}

// teardown releases the timers and closes every subscription. Only the first
// call has any effect.
func (p *PageState) teardown() bool {
	p.mu.Lock()
	if p.closed {
		p.mu.Unlock()
		return false
	}
	p.closed = true
	subs := p.subscribers
	p.subscribers = map[int]chan Change{}
	p.mu.Unlock()

	p.Hero.Stop()
	p.Testimonials.Stop()

	for _, ch := range subs {
		close(ch)
	}
	return true
}

// PageConfig configures the page states created by a registry
type PageConfig struct {
	HeroInterval        time.Duration
	TestimonialInterval time.Duration
	TTL                 time.Duration
	// MaxPages caps the mounted page states; the least recently used idle
	// page is evicted to make room
	MaxPages  int
	Scheduler uistate.Scheduler
	Now       func() time.Time
}

// PageRegistry owns the state of every displayed landing page, keyed by the
// page id minted when the page was rendered
type PageRegistry struct {
	catalog *Catalog
	cfg     PageConfig
	mu      sync.Mutex
	pages   map[string]*PageState
}

// NewPageRegistry creates an empty registry over the content catalog
func NewPageRegistry(catalog *Catalog, cfg PageConfig) *PageRegistry {
	if cfg.Scheduler == nil {
		cfg.Scheduler = uistate.TickerScheduler{}
	}
	if cfg.Now == nil {
		cfg.Now = time.Now
	}
	if cfg.MaxPages <= 0 {
		cfg.MaxPages = defaultMaxPages
	}
	return &PageRegistry{
		catalog: catalog,
		cfg:     cfg,
		pages:   make(map[string]*PageState),
	}
}

// Catalog returns the content the registry mounts pages over
func (r *PageRegistry) Catalog() *Catalog {
	return r.catalog
}

// Mount returns the page's state, creating and starting it on first use
func (r *PageRegistry) Mount(id string) (*PageState, error) {
	now := r.cfg.Now()

	r.mu.Lock()
	if p, ok := r.pages[id]; ok {
		p.touch(now)
		r.mu.Unlock()
		return p, nil
	}

	var evicted *PageState
	if len(r.pages) >= r.cfg.MaxPages {
		evicted = r.oldestIdleLocked()
		if evicted == nil {
			r.mu.Unlock()
			return nil, ErrRegistryFull
		}
		delete(r.pages, evicted.ID)
	}

	p, err := r.newPageState(id)
	if err == nil {
		p.lastSeen = now
		r.pages[id] = p
		activePages.Inc()
	}
	r.mu.Unlock()

	if evicted != nil {
		r.release(evicted, TeardownEvicted)
	}
	if err != nil {
		return nil, err
	}
	return p, nil
}

// oldestIdleLocked picks the least recently seen page without a live stream
func (r *PageRegistry) oldestIdleLocked() *PageState {
	var oldest *PageState
	var oldestSeen time.Time
	for _, p := range r.pages {
		if p.Subscribers() > 0 {
			continue
		}
		seen := p.seenAt()
		if oldest == nil || seen.Before(oldestSeen) {
			oldest, oldestSeen = p, seen
		}
	}
	return oldest
}

// Get returns the page's state without creating one
func (r *PageRegistry) Get(id string) (*PageState, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	p, ok := r.pages[id]
	if !ok {
		return nil, ErrPageNotFound
	}
	p.touch(r.cfg.Now())
	return p, nil
}

// Unmount tears down the page's state. It reports whether one existed.
func (r *PageRegistry) Unmount(id string) bool {
	r.mu.Lock()
	p, ok := r.pages[id]
	delete(r.pages, id)
	r.mu.Unlock()

	if !ok {
		return false
	}
	r.release(p, TeardownUnmount)
	return true
}

// Sweep tears down page states idle for longer than the TTL and returns how
// many were released
func (r *PageRegistry) Sweep() int {
	now := r.cfg.Now()

	r.mu.Lock()
	var idle []*PageState
	for id, p := range r.pages {
		// A live stream keeps the page mounted
		if p.Subscribers() > 0 {
			continue
		}
		if now.Sub(p.seenAt()) > r.cfg.TTL {
			idle = append(idle, p)
			delete(r.pages, id)
		}
	}
	r.mu.Unlock()

	for _, p := range idle {
		r.release(p, TeardownIdle)
	}
	return len(idle)
}

// Shutdown tears down every page state
func (r *PageRegistry) Shutdown() {
	r.mu.Lock()
	all := r.pages
	r.pages = make(map[string]*PageState)
	r.mu.Unlock()

	for _, p := range all {
		r.release(p, TeardownShutdown)
	}
	if len(all) > 0 {
		log.Printf("[INFO] Released %d page states on shutdown", len(all))
	}
}

// Len returns the number of mounted page states
func (r *PageRegistry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.pages)
}

func (r *PageRegistry) release(p *PageState, reason string) {
	if p.teardown() {
		activePages.Dec()
		pageTeardowns.WithLabelValues(reason).Inc()
	}
}

func (r *PageRegistry) newPageState(id string) (*PageState, error) {
	c := r.catalog
	p := &PageState{
		ID:          id,
		Menu:        &uistate.Disclosure{},
		Nav:         uistate.NewDisclosureGroup(true),
		subscribers: make(map[int]chan Change),
	}

	hero, err := uistate.NewRotator(len(c.HeroSlides),
		uistate.WithScheduler(r.cfg.Scheduler),
		uistate.WithOnChange(func(index int) {
			p.publish(Change{Section: SectionHero, Index: index})
		}),
	)
	if err != nil {
		return nil, fmt.Errorf("hero carousel: %w", err)
	}

	testimonials, err := uistate.NewRotator(len(c.Testimonials),
		uistate.WithScheduler(r.cfg.Scheduler),
		uistate.WithOnChange(func(index int) {
			p.publish(Change{Section: SectionTestimonials, Index: index})
		}),
	)
	if err != nil {
		return nil, fmt.Errorf("testimonial carousel: %w", err)
	}

	p.Hero = hero
	p.Testimonials = testimonials
	p.Blog = uistate.NewFilter(c.BlogPosts, c.BlogCategories, c.AllCategory(),
		uistate.WithRecomputeHook(func(_ uistate.FilterState, visible int) {
			filterRecomputes.Inc()
			if visible == 0 {
				emptyFilterResults.Inc()
			}
		}),
	)

	if err := hero.Start(r.cfg.HeroInterval, len(c.HeroSlides)); err != nil {
		return nil, fmt.Errorf("hero carousel: %w", err)
	}
	if err := testimonials.Start(r.cfg.TestimonialInterval, len(c.Testimonials)); err != nil {
		hero.Stop()
		return nil, fmt.Errorf("testimonial carousel: %w", err)
	}

	return p, nil
}
