// Package mesh wraps a delaunay.Triangulator with the side tables the
// engine needs alongside raw triangulation topology: each vertex's
// evaluated function value and classified quadrant, plus its original
// (mapped) insertion point for cheap re-lookup.
//
// Store owns all mutation of the triangulation: callers never call the
// underlying Triangulator directly, so Store can guarantee its side
// tables never drift out of sync with the triangulation's vertex set.
package mesh
