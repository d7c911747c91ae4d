package domains

import "errors"

// ErrInvalidStep indicates a non-positive step was requested; a
// generator cannot place a finite number of points with a zero or
// negative spacing.
var ErrInvalidStep = errors.New("domains: step must be positive")

// ErrInvalidRadius indicates a non-positive disk radius.
var ErrInvalidRadius = errors.New("domains: radius must be positive")

// ErrDegenerateRect indicates a rectangle with zero width or height, or
// corners given in the wrong order (lo must be strictly below/left of
// hi).
var ErrDegenerateRect = errors.New("domains: degenerate rectangle")
