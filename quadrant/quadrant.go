// Package quadrant classifies complex values into the four phase
// quadrants the argument principle walk depends on, and computes the
// signed phase jump between two quadrants.
package quadrant

import "math"

// Quadrant is one of four labels partitioning the nonzero complex plane,
// or Node for a value the engine could not classify (zero or non-finite).
type Quadrant int8

const (
	// Node marks a vertex whose f-value was zero or non-finite. A Node
	// vertex is already a resolved singularity point and never
	// participates in phase-difference arithmetic.
	Node Quadrant = 0
	I    Quadrant = 1
	II   Quadrant = 2
	III  Quadrant = 3
	IV   Quadrant = 4
)

// Classify assigns z's quadrant. A non-finite z (NaN or Inf in either
// component) or z == 0 yields Node.
//
// Boundary convention (closed on one side, open on the other, so every
// nonzero finite value gets exactly one quadrant):
//
//	I:   Re >= 0, Im >  0
//	II:  Re <  0, Im >= 0
//	III: Re <= 0, Im <  0
//	IV:  Re >  0, Im <= 0
func Classify(z complex128) Quadrant {
	re, im := real(z), imag(z)
	if math.IsNaN(re) || math.IsNaN(im) || math.IsInf(re, 0) || math.IsInf(im, 0) {
		return Node
	}
	if re == 0 && im == 0 {
		return Node
	}

	switch {
	case re >= 0 && im > 0:
		return I
	case re < 0 && im >= 0:
		return II
	case re <= 0 && im < 0:
		return III
	default: // re > 0 && im <= 0
		return IV
	}
}

// Diff computes the signed phase jump from a to b: ((b-a+1) mod 4) - 1,
// using the mathematical (always-nonnegative-result) modulus, landing in
// {-1,0,+1,+2}. Diff==2 marks a phase reversal (a candidate edge).
// Callers must not call Diff with either argument equal to Node — a Node
// endpoint disqualifies its edge from candidacy entirely, it does not
// produce a meaningful difference.
//
// Diff must be evaluated in actual traversal order (a = the vertex walked
// from, b = the vertex walked to): for a +-1 jump this is antisymmetric
// (Diff(a,b) == -Diff(b,a)) as expected of a signed rotation, but for a
// +-2 reversal both directions report +2 by this formula, since a 180-degree
// jump has no well-defined sense on its own — direction only matters
// collectively, via the +-1/-1 jumps elsewhere on the same loop.
func Diff(a, b Quadrant) int {
	return floorMod(int(b)-int(a)+1, 4) - 1
}

// floorMod returns n mod m with a result in [0, m), matching the
// mathematical convention the quadrant-jump formula assumes (Go's %
// operator keeps the sign of the dividend instead).
func floorMod(n, m int) int {
	r := n % m
	if r < 0 {
		r += m
	}

	return r
}

// IsReversal reports whether dq (as returned by Diff) marks a phase
// reversal, i.e. a candidate edge.
func IsReversal(dq int) bool { return dq == 2 || dq == -2 }
