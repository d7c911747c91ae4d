// Package mapper builds the affine bijection between a caller's original
// coordinate rectangle and the square a delaunay.Triangulation actually
// accepts points in.
//
// The engine determines loUser/hiUser from the bounding box of the
// caller's requested domain (see domains), asks the triangulator for its
// AdmissibleBox, and constructs one Affine for the whole run. Every point
// handed to the triangulator — the domain's initial mesh points and every
// refinement midpoint generated afterward — passes through Map first;
// every result handed back to the caller (root and pole locations, plot
// data) passes through Unmap.
package mapper
