// Package domains provides deterministic initial-mesh point generators:
// a rectangular grid and a disk-shaped grid. Both lay points on a square
// grid, so their Delaunay triangles are right isosceles triangles, not
// equilateral ones.
//
// Exact point placement is implementation-defined; only that the returned
// sequence is non-empty, covers the requested region, and is stable for
// fixed inputs is contractual: each generator documents its own canonical
// deterministic layout rather than sharing one universal rule. Rectangular
// stays within [lo, hi]; Disk also keeps points up to one step outside
// the radius.
package domains
