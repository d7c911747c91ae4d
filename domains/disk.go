package domains

import (
	"fmt"
	"math"
)

// Disk returns the points of a grid covering the disk of radius
// centered at center, spaced approximately step apart: it lays out the
// same row-major grid Rectangular would over the disk's bounding square,
// then keeps only points within radius of center plus one step of
// margin so the disk's boundary is still represented by its nearest
// enclosing ring of sample points (matching the argument principle's
// need for mesh coverage right up to the domain edge).
func Disk(center complex128, radius, step float64) ([]complex128, error) {
	if step <= 0 {
		return nil, fmt.Errorf("domains: Disk(step=%g): %w", step, ErrInvalidStep)
	}
	if radius <= 0 {
		return nil, fmt.Errorf("domains: Disk(radius=%g): %w", radius, ErrInvalidRadius)
	}

	lo := center - complex(radius, radius)
	hi := center + complex(radius, radius)
	grid, err := Rectangular(lo, hi, step)
	if err != nil {
		return nil, err
	}

	limit := radius + step
	pts := make([]complex128, 0, len(grid))
	for _, p := range grid {
		if d := p - center; math.Hypot(real(d), imag(d)) <= limit {
			pts = append(pts, p)
		}
	}

	return pts, nil
}
