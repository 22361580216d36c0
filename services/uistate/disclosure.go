package uistate

import (
	"slices"
	"sync"
)

// DisclosureState is the state of a collapsible region
type DisclosureState int

const (
	Closed DisclosureState = iota
	Open
)

func (s DisclosureState) String() string {
	if s == Open {
		return "open"
	}
	return "closed"
}

// Disclosure is a single collapsible region such as the mobile menu panel.
// The zero value is closed.
type Disclosure struct {
	mu    sync.Mutex
	state DisclosureState
}

// Toggle flips the region and returns the new state
func (d *Disclosure) Toggle() DisclosureState {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.state == Open {
		d.state = Closed
	} else {
		d.state = Open
	}
	return d.state
}

// Close closes the region, e.g. after a link inside it was followed
func (d *Disclosure) Close() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.state = Closed
}

// State returns the current state
func (d *Disclosure) State() DisclosureState {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.state
}

// IsOpen reports whether the region is open
func (d *Disclosure) IsOpen() bool {
	return d.State() == Open
}

// DisclosureGroup tracks several regions keyed by id. In an exclusive group,
// like an accordion, opening one entry closes whichever other entry was open.
type DisclosureGroup struct {
	mu        sync.Mutex
	exclusive bool
	open      map[string]bool
}

// NewDisclosureGroup creates a group with every entry closed
func NewDisclosureGroup(exclusive bool) *DisclosureGroup {
	return &DisclosureGroup{
		exclusive: exclusive,
		open:      make(map[string]bool),
	}
}

// Toggle flips entry id and returns its new state
func (g *DisclosureGroup) Toggle(id string) DisclosureState {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.open[id] {
		delete(g.open, id)
		return Closed
	}
	if g.exclusive {
		clear(g.open)
	}
	g.open[id] = true
	return Open
}

// State returns the state of entry id
func (g *DisclosureGroup) State(id string) DisclosureState {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.open[id] {
		return Open
	}
	return Closed
}

// IsOpen reports whether entry id is open
func (g *DisclosureGroup) IsOpen(id string) bool {
	return g.State(id) == Open
}

// OpenIDs returns the open entries in sorted order
func (g *DisclosureGroup) OpenIDs() []string {
	g.mu.Lock()
	defer g.mu.Unlock()

	ids := make([]string, 0, len(g.open))
	for id := range g.open {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	return ids
}

// CloseAll closes every entry
func (g *DisclosureGroup) CloseAll() {
	g.mu.Lock()
	defer g.mu.Unlock()
	clear(g.open)
}

// Exclusive reports whether opening an entry closes its siblings
func (g *DisclosureGroup) Exclusive() bool {
	return g.exclusive
}
