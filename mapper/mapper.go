// Package mapper provides the affine bijection between a user's coordinate
// rectangle and a Delaunay triangulator's admissible square.
package mapper

import (
	"errors"
)

// ErrDegenerateRect is returned when the bounding rectangle derived from
// origcoords has zero width or height, so no non-degenerate affine map can
// be constructed from it.
var ErrDegenerateRect = errors.New("mapper: degenerate bounding rectangle")

// Affine is a constant-Jacobian bijection between a user rectangle
// [loUser, hiUser] and a target box [loBox, hiBox]. Map and Unmap are
// exact inverses up to floating-point round-off; the pair is monotone in
// each axis. The scale factor is a single isotropic constant, not one per
// axis: this is what guarantees edge-length ratios (hence triangle
// skinniness) are preserved under Map, even though absolute lengths scale
// by Scale(). A non-square user rectangle is centered within the box
// rather than stretched to fill it.
type Affine struct {
	loUser, hiUser complex128
	loBox, hiBox   complex128

	// scale converts a user-coordinate length into a mapped-coordinate
	// length; 1/scale converts back. Uniform across both axes.
	scale float64
}

// New builds the Affine bijection mapping [loUser, hiUser] into
// [loBox, hiBox], using a single isotropic scale factor sized to the
// tighter-fitting axis so the whole user rectangle fits inside the box
// with room to spare on the other axis. Callers construct loUser/hiUser
// from the bounding box of origcoords (see BoundingBox) before calling
// New, so that every point a caller subsequently maps — including
// refinement midpoints, which lie inside the original triangles and
// therefore inside the same bounding box — lands inside [loBox, hiBox].
// New adds no margin: the user rectangle's extreme points on the tighter
// axis map exactly onto the box's edges.
func New(loUser, hiUser, loBox, hiBox complex128) (*Affine, error) {
	uw, uh := real(hiUser)-real(loUser), imag(hiUser)-imag(loUser)
	if uw <= 0 || uh <= 0 {
		return nil, ErrDegenerateRect
	}
	bw, bh := real(hiBox)-real(loBox), imag(hiBox)-imag(loBox)

	scale := bw / uw
	if s := bh / uh; s < scale {
		scale = s
	}

	return &Affine{
		loUser: loUser, hiUser: hiUser,
		loBox: loBox, hiBox: hiBox,
		scale: scale,
	}, nil
}

// center returns the midpoint of the user rectangle and of the box, used
// to center the (possibly non-square) mapped rectangle within the box.
func (a *Affine) center() (userMid, boxMid complex128) {
	userMid = (a.loUser + a.hiUser) / 2
	boxMid = (a.loBox + a.hiBox) / 2

	return
}

// Map sends a user-coordinate point into the target box.
func (a *Affine) Map(z complex128) complex128 {
	userMid, boxMid := a.center()

	return boxMid + complex(a.scale, 0)*(z-userMid)
}

// Unmap sends a mapped point back into user coordinates.
func (a *Affine) Unmap(z complex128) complex128 {
	userMid, boxMid := a.center()

	return userMid + (z-boxMid)/complex(a.scale, 0)
}

// Scale returns the constant isotropic ratio by which a user-coordinate
// length scales when mapped. refine uses its inverse to convert a mapped
// edge length back into a user-coordinate length without calling Unmap on
// both endpoints.
func (a *Affine) Scale() float64 { return a.scale }

// UnmapLength converts a length measured in mapped coordinates back to
// its exact user-coordinate length: since Scale is isotropic this is a
// single division regardless of the displacement's direction.
func (a *Affine) UnmapLength(mapped float64) float64 {
	return mapped / a.scale
}

// BoundingBox returns the smallest axis-aligned rectangle (lo, hi)
// containing every point in pts. It returns ErrDegenerateRect if pts is
// empty or all points are collinear on one axis (zero width or height).
func BoundingBox(pts []complex128) (lo, hi complex128, err error) {
	if len(pts) == 0 {
		return 0, 0, ErrDegenerateRect
	}
	minX, maxX := real(pts[0]), real(pts[0])
	minY, maxY := imag(pts[0]), imag(pts[0])
	for _, p := range pts[1:] {
		if x := real(p); x < minX {
			minX = x
		} else if x > maxX {
			maxX = x
		}
		if y := imag(p); y < minY {
			minY = y
		} else if y > maxY {
			maxY = y
		}
	}
	if minX == maxX || minY == maxY {
		return 0, 0, ErrDegenerateRect
	}

	return complex(minX, minY), complex(maxX, maxY), nil
}
