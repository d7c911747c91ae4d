// Package candidate selects the mesh edges across which the evaluated
// function's phase reverses by two quadrants — the discrete signature of
// a zero or pole nearby — and the triangles incident to them.
//
// An edge qualifies only when both endpoints have been evaluated to a
// non-Node quadrant; an edge touching a Node vertex (zero or non-finite
// sample) is never a candidate, since the argument-principle walk cannot
// assign it a meaningful phase jump.
package candidate
