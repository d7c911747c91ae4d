package engine

import "errors"

// ErrInvalidDomain indicates origcoords was empty, degenerate (all
// collinear), or its bounding rectangle could not be mapped into the
// triangulator's admissible box.
var ErrInvalidDomain = errors.New("engine: invalid domain")

// ErrTriangulatorFailed indicates the underlying triangulator rejected a
// point the engine itself guaranteed was admissible: a fatal,
// unrecoverable failure of the triangulator contract.
var ErrTriangulatorFailed = errors.New("engine: triangulator failed")

// ErrLimitExceeded is non-fatal: it is surfaced via Result.Warning, never
// returned as Run's error, when MaxIterations or MaxNodes is reached
// before convergence. Run still returns its best-effort roots and poles.
var ErrLimitExceeded = errors.New("engine: refinement limit exceeded before convergence")
