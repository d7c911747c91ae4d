// Package plotdata projects a converged mesh's internal state back into
// the caller's coordinate space, for the engine's extended return form
// (requested via a plot flag): per-vertex quadrants, per-edge signed
// phase differences, and the unmap function itself.
package plotdata
