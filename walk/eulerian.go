package walk

import "github.com/complexfield/grpf/graph"

// EulerianDecompose covers every edge incident to the vertices in component
// exactly once, returning it as one or more vertex-ID trails. When the
// component's candidate-edge graph is Eulerian (every vertex has even
// degree, the common case for a simple root or pole), this is a single
// closed loop. When two or more candidate regions touch — producing
// odd-degree "branch" vertices — it decomposes into several open trails
// that together still cover every edge exactly once.
//
// Adapted from a stack-based Hierholzer implementation, generalized from
// an int adjacency-list multigraph to graph.Graph's string-keyed vertices,
// and from "one circuit, all edges" to "repeat until no edges remain."
// Complexity: O(E) total across all trails.
func EulerianDecompose(g *graph.Graph, component []string) [][]string {
	remaining := make(map[string][]*graph.Edge, len(component))
	for _, id := range component {
		nbrs, err := g.Neighbors(id)
		if err != nil {
			continue
		}
		remaining[id] = nbrs
	}

	var trails [][]string
	for _, id := range component {
		for hasUnused(remaining, id) {
			trails = append(trails, hierholzerTrail(remaining, id))
		}
	}

	return trails
}

func hasUnused(remaining map[string][]*graph.Edge, id string) bool {
	return len(remaining[id]) > 0
}

// hierholzerTrail traces one maximal trail starting at start, consuming
// edges from remaining as it goes, and backtracking (the classic
// stack-and-backtrack shape) when it reaches a vertex with no unused
// edges left.
func hierholzerTrail(remaining map[string][]*graph.Edge, start string) []string {
	var trail []string
	stack := []string{start}

	for len(stack) > 0 {
		u := stack[len(stack)-1]
		if !hasUnused(remaining, u) {
			trail = append(trail, u)
			stack = stack[:len(stack)-1]
			continue
		}

		edges := remaining[u]
		e := edges[len(edges)-1]
		remaining[u] = edges[:len(edges)-1]
		v := e.To
		if v == u {
			v = e.From
		}
		remaining[v] = removeEdge(remaining[v], e)
		stack = append(stack, v)
	}

	return trail
}

func removeEdge(edges []*graph.Edge, target *graph.Edge) []*graph.Edge {
	for i, e := range edges {
		if e == target {
			return append(edges[:i], edges[i+1:]...)
		}
	}

	return edges
}
