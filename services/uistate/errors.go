package uistate

import "errors"

var (
	// ErrNoItems is returned when a rotation is configured with fewer than one item
	ErrNoItems = errors.New("rotation requires at least one item")
	// ErrInvalidInterval is returned when a rotation interval is zero or negative
	ErrInvalidInterval = errors.New("rotation interval must be positive")
)
