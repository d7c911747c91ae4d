// Package grpf locates all zeros and poles of a user-supplied complex
// function f: C -> C inside a bounded planar region, without requiring
// derivatives or contour integration.
//
// 🚀 What is grpf?
//
//	An implementation of Kowalczyk's Global complex Roots and Poles
//	Finding method: Delaunay triangulation of sample points combined
//	with a discrete form of the Cauchy argument principle. The phase of
//	f at each mesh vertex is quantized into one of four quadrants, and
//	edges across which the quadrant jumps by two bound regions where f
//	must be zero or infinite. Those candidate regions are adaptively
//	refined until their triangle edges fall below a user tolerance, at
//	which point each enclosed cluster's winding number classifies it as
//	a root or a pole.
//
// ✨ Why choose grpf?
//
//   - No derivatives, no contour integration, no prior knowledge of
//     root/pole count or location
//   - Pure Go, no cgo
//   - Deterministic for a fixed mesh and function
//   - Thread-safe mesh side tables, with an optional bounded worker
//     pool for function evaluation
//
// Under the hood:
//
//	mapper/    — affine bijection between user coordinates and the
//	             triangulator's admissible square
//	delaunay/  — incremental Bowyer-Watson Delaunay triangulator
//	mesh/      — thread-safe wrapper around a delaunay.Triangulator,
//	             with vertex value/quadrant side tables
//	quadrant/  — phase quadrant classification and signed phase jumps
//	evaluate/  — batched, optionally parallel function evaluation
//	candidate/ — phase-reversal edge and candidate triangle selection
//	refine/    — adaptive mesh refinement loop
//	contour/   — contour tracing and winding-number classification
//	domains/   — rectangular and disk initial-mesh point generators
//	plotdata/  — projection of mesh state back to user coordinates
//	graph/     — small undirected graph used by the contour tracer
//	walk/      — connected components and Eulerian trail decomposition
//	engine/    — the grpf entry point: Parameters, Options, and Run
//
// Quick example:
//
//	res, err := engine.Run(func(z complex128) (complex128, error) {
//	    return z*z + 1, nil
//	}, initialPoints)
//	// res.Roots contains +i and -i; res.Poles is empty.
//
//	go get github.com/complexfield/grpf
package grpf
