// Package engine is the grpf entry point: it wires the mapper, mesh,
// evaluator, selector, refinement loop, and contour tracer together into
// a single Run call, and owns the Parameters record and its functional
// options.
//
// Package: grpf engine
//
// Run computes all zeros and poles of a user-supplied complex function
// inside a bounded region via Delaunay triangulation and a discrete
// form of the Cauchy argument principle.
//
// Complexity:
//
//	– Time:  O(N^2) for the Delaunay triangulation (each insertion scans
//	   every current triangle) plus O(N) function evaluations per
//	   refinement iteration, where N is the final vertex count; the
//	   iteration count is bounded by MaxIterations.
//	– Space: O(N) for mesh vertices, triangles, and side tables.
//
// Options:
//
//	– WithTolerance, WithMaxIterations, WithMaxNodes, WithSkinnyRatio,
//	  WithMultithreading, WithTessSizeHint, WithLogger, WithPlotData: see
//	  their doc comments below.
//
// Errors (sentinel):
//
//	– ErrInvalidDomain      if origcoords is empty, degenerate, or the
//	  mapped points fall outside the triangulator's admissible box.
//	– ErrTriangulatorFailed if the underlying triangulator rejects a
//	  point the engine itself guaranteed was admissible.
package engine
