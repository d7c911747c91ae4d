package graph

// AddVertex inserts a vertex with the given ID and metadata. Re-adding an
// existing ID refreshes its metadata in place (no-op on topology).
// Complexity: O(1).
func (g *Graph) AddVertex(id string, metadata any) error {
	if id == "" {
		return ErrEmptyVertexID
	}

	g.muVert.Lock()
	defer g.muVert.Unlock()
	g.vertices[id] = &Vertex{ID: id, Metadata: metadata}

	g.muAdj.Lock()
	defer g.muAdj.Unlock()
	if g.adjacency[id] == nil {
		g.adjacency[id] = make(map[string]*Edge)
	}

	return nil
}

// HasVertex reports whether id names a vertex in the graph.
func (g *Graph) HasVertex(id string) bool {
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	_, ok := g.vertices[id]

	return ok
}

// AddEdge connects from and to with an undirected edge carrying metadata
// (the contour tracer passes nil).
// Both endpoints must already exist. Re-adding an existing pair overwrites
// its metadata; AddEdge never creates a parallel edge. Self-loops are
// rejected: the argument principle never produces a candidate edge from a
// vertex to itself.
// Complexity: O(1).
func (g *Graph) AddEdge(from, to string, metadata any) (*Edge, error) {
	if from == to {
		return nil, ErrLoopNotAllowed
	}
	if !g.HasVertex(from) {
		return nil, ErrVertexNotFound
	}
	if !g.HasVertex(to) {
		return nil, ErrVertexNotFound
	}

	g.muAdj.Lock()
	defer g.muAdj.Unlock()
	e := &Edge{From: from, To: to, Metadata: metadata}
	g.adjacency[from][to] = e
	g.adjacency[to][from] = e

	return e, nil
}

// Neighbors returns the edges incident to id, in no particular order.
// Complexity: O(deg(id)).
func (g *Graph) Neighbors(id string) ([]*Edge, error) {
	if !g.HasVertex(id) {
		return nil, ErrVertexNotFound
	}

	g.muAdj.RLock()
	defer g.muAdj.RUnlock()
	out := make([]*Edge, 0, len(g.adjacency[id]))
	seen := make(map[*Edge]struct{}, len(g.adjacency[id]))
	for _, e := range g.adjacency[id] {
		if _, dup := seen[e]; dup {
			continue
		}
		seen[e] = struct{}{}
		out = append(out, e)
	}

	return out, nil
}

// Vertices returns all vertices, in no particular order.
// Complexity: O(V).
func (g *Graph) Vertices() []*Vertex {
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	out := make([]*Vertex, 0, len(g.vertices))
	for _, v := range g.vertices {
		out = append(out, v)
	}

	return out
}

// Edges returns each edge exactly once, in no particular order.
// Complexity: O(V + E).
func (g *Graph) Edges() []*Edge {
	g.muAdj.RLock()
	defer g.muAdj.RUnlock()
	seen := make(map[*Edge]struct{})
	out := make([]*Edge, 0)
	for _, nbrs := range g.adjacency {
		for _, e := range nbrs {
			if _, dup := seen[e]; dup {
				continue
			}
			seen[e] = struct{}{}
			out = append(out, e)
		}
	}

	return out
}

// Stats is a cheap diagnostic snapshot.
type Stats struct {
	VertexCount int
	EdgeCount   int
}

// Stats returns a point-in-time snapshot of vertex and edge counts.
// Complexity: O(V + E).
func (g *Graph) Stats() Stats {
	return Stats{VertexCount: len(g.Vertices()), EdgeCount: len(g.Edges())}
}
