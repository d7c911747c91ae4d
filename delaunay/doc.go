// Package delaunay is the replaceable triangulator module: an incremental
// Bowyer–Watson Delaunay triangulation over a fixed admissible coordinate
// square.
//
// No repo in the retrieval pack implements Delaunay triangulation in pure
// Go (the one pack member with a mesh/tessellation kernel,
// hajimehoshi/go-libtess2, is a cgo binding to a C tessellator and is not a
// Delaunay triangulator besides), so this package is a self-contained
// implementation rather than a wired third-party dependency — see
// Triangulator, whose job is specifically to be swappable for one.
//
// The Triangulator interface is the contract mesh.Store depends on; nothing
// above this package reaches into Triangulation's internals.
package delaunay
