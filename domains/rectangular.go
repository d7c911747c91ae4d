package domains

import "fmt"

// Rectangular returns the points of an axis-aligned grid covering
// [lo, hi], spaced step apart on both axes, in row-major order
// (imaginary part ascending, then real part ascending within each row).
// lo must be strictly below and left of hi, and step must be positive.
func Rectangular(lo, hi complex128, step float64) ([]complex128, error) {
	if step <= 0 {
		return nil, fmt.Errorf("domains: Rectangular(step=%g): %w", step, ErrInvalidStep)
	}
	if real(lo) >= real(hi) || imag(lo) >= imag(hi) {
		return nil, fmt.Errorf("domains: Rectangular(lo=%v, hi=%v): %w", lo, hi, ErrDegenerateRect)
	}

	var pts []complex128
	for y := imag(lo); y <= imag(hi); y += step {
		for x := real(lo); x <= real(hi); x += step {
			pts = append(pts, complex(x, y))
		}
	}
	// Guarantee the far corner is included even if step doesn't divide
	// the span evenly, matching the "covers [lo,hi]" contract exactly.
	if last := pts[len(pts)-1]; real(last) < real(hi) || imag(last) < imag(hi) {
		pts = append(pts, hi)
	}

	return pts, nil
}
