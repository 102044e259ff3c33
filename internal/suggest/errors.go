package suggest

import "errors"

var (
	// ErrDuplicateStaple is returned when a staple with the same normalized
	// name already exists.
	ErrDuplicateStaple = errors.New("this item is already a staple")

	// ErrStapleNotFound is returned when no staple has the given ID or name.
	ErrStapleNotFound = errors.New("staple not found")
)
