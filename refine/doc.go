// Package refine drives the adaptive mesh-refinement loop: repeatedly
// subdividing candidate triangles and the skinny triangles adjacent to
// them until every candidate triangle's longest edge, measured in user
// coordinates, falls below a tolerance, or a safety limit is hit.
package refine
