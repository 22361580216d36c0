package uistate

import (
	"slices"
	"strings"
	"sync"

	"golang.org/x/text/cases"
)

// Filterable is a record that can be narrowed by category and free text
type Filterable interface {
	FilterCategory() string
	SearchFields() []string
}

// FilterState is the pair of predicate inputs chosen by the visitor
type FilterState struct {
	Category   string
	SearchText string
}

// Filter derives the visible subset of an immutable list from a category and a
// case-insensitive search text. The subset is recomputed whenever either input
// changes and is always in source order.
type Filter[T Filterable] struct {
	mu          sync.RWMutex
	items       []T
	folded      [][]string
	categories  []string
	all         string
	state       FilterState
	visible     []T
	onRecompute func(state FilterState, visible int)
}

// FilterOption configures a Filter
type FilterOption func(*filterOptions)

type filterOptions struct {
	onRecompute func(state FilterState, visible int)
}

// WithRecomputeHook is called after each recomputation with the new state and
// the size of the visible subset
func WithRecomputeHook(fn func(state FilterState, visible int)) FilterOption {
	return func(o *filterOptions) {
		o.onRecompute = fn
	}
}

// NewFilter builds a filter over items. all is the sentinel category that
// disables category matching; it is prepended to categories when missing.
func NewFilter[T Filterable](items []T, categories []string, all string, opts ...FilterOption) *Filter[T] {
	var o filterOptions
	for _, opt := range opts {
		opt(&o)
	}

	cats := slices.Clone(categories)
	if !slices.Contains(cats, all) {
		cats = append([]string{all}, cats...)
	}

	f := &Filter[T]{
		items:       slices.Clone(items),
		folded:      make([][]string, len(items)),
		categories:  cats,
		all:         all,
		state:       FilterState{Category: all},
		onRecompute: o.onRecompute,
	}
	for i, item := range f.items {
		fields := item.SearchFields()
		folded := make([]string, len(fields))
		for j, field := range fields {
			folded[j] = fold(field)
		}
		f.folded[i] = folded
	}

	f.mu.Lock()
	f.recompute()
	f.mu.Unlock()
	return f
}

// SetCategory selects a category. A category outside the known set is kept
// as-is and simply matches nothing.
func (f *Filter[T]) SetCategory(category string) []T {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.state.Category = category
	f.recompute()
	return slices.Clone(f.visible)
}

// SetSearchText replaces the search text, ignoring surrounding whitespace
func (f *Filter[T]) SetSearchText(text string) []T {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.state.SearchText = strings.TrimSpace(text)
	f.recompute()
	return slices.Clone(f.visible)
}

// Apply sets both inputs with a single recomputation
func (f *Filter[T]) Apply(state FilterState) []T {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.state = FilterState{Category: state.Category, SearchText: strings.TrimSpace(state.SearchText)}
	if f.state.Category == "" {
		f.state.Category = f.all
	}
	f.recompute()
	return slices.Clone(f.visible)
}

// Visible returns the current subset. It has no side effects.
func (f *Filter[T]) Visible() []T {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return slices.Clone(f.visible)
}

// State returns the current predicate inputs
func (f *Filter[T]) State() FilterState {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return f.state
}

// Categories returns the fixed category set, sentinel first
func (f *Filter[T]) Categories() []string {
	return slices.Clone(f.categories)
}

// AllCategory returns the sentinel category
func (f *Filter[T]) AllCategory() string {
	return f.all
}

// Len returns the size of the source list
func (f *Filter[T]) Len() int {
	return len(f.items)
}

// recompute must be called with f.mu held for writing
func (f *Filter[T]) recompute() {
	query := fold(f.state.SearchText)
	visible := make([]T, 0, len(f.items))
	for i, item := range f.items {
		if f.state.Category != f.all && item.FilterCategory() != f.state.Category {
			continue
		}
		if !containsAny(f.folded[i], query) {
			continue
		}
		visible = append(visible, item)
	}
	f.visible = visible

	if f.onRecompute != nil {
		f.onRecompute(f.state, len(visible))
	}
}

func containsAny(fields []string, query string) bool {
	if query == "" {
		return true
	}
	for _, field := range fields {
		if strings.Contains(field, query) {
			return true
		}
	}
	return false
}

// fold applies Unicode case folding. A Caser keeps state, so one is built per call.
func fold(s string) string {
	return cases.Fold().String(s)
}
