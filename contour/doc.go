// Package contour traces candidate edges into closed boundary loops and
// classifies each enclosed region as a root, a pole, or a false positive
// by its quantized winding number.
package contour
