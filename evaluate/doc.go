// Package evaluate runs the caller's function f against mesh vertices and
// classifies each result into a quadrant.Quadrant, recording both into a
// mesh.Store.
//
// Evaluation never retries: a single call to f per vertex, and a
// non-finite or erroring result is absorbed into quadrant.Node rather
// than failing the run, matching the argument principle's treatment of
// an unresolved sample point as already a detected singularity.
package evaluate
