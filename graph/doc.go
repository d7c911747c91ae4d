// Package graph implements the small undirected graph the contour tracer
// builds on top of candidate edges (see the root package doc for the data
// flow). It is deliberately narrower than a general-purpose graph library:
// no directedness, no weights, no multi-edges, no self-loops — the
// candidate-edge graph described by the argument-principle contour never
// needs them.
//
// Graph is thread-safe: AddVertex/AddEdge take a write lock, read-only
// queries (Neighbors, Vertices, Edges) take a read lock. Concurrent callers
// never need to coordinate externally.
package graph
