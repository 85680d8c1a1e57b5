package graphx

// AddEdge appends e to the graph and records it in From's incidence
// list, returning its EdgeID.
//
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(e Edge) EdgeID {
	id := EdgeID(len(g.edges))
	g.edges = append(g.edges, e)
	g.incidenceList[e.From] = append(g.incidenceList[e.From], id)

	return id
}

// Edge returns the edge identified by id.
func (g *Graph) Edge(id EdgeID) Edge { return g.edges[id] }

// EdgesFrom returns the IDs of every edge leaving v, in insertion order.
func (g *Graph) EdgesFrom(v VertexID) []EdgeID { return g.incidenceList[v] }

// VertexCount returns the number of vertices the graph was constructed
// with.
func (g *Graph) VertexCount() int { return g.vertexCount }

// EdgeCount returns the number of edges added so far.
func (g *Graph) EdgeCount() int { return len(g.edges) }

// Edges returns every edge in insertion order. The returned slice must
// not be mutated by callers; it is shared with the graph's internal
// storage.
func (g *Graph) Edges() []Edge { return g.edges }

// IncidenceLists returns, for each vertex, the IDs of edges leaving it,
// in insertion order. Used by package snapshot to persist the graph
// without recomputation on load.
func (g *Graph) IncidenceLists() [][]EdgeID { return g.incidenceList }

// FromSnapshot rebuilds a Graph directly from decoded edges and
// incidence lists, bypassing AddEdge (and its append semantics) so that
// edge IDs are preserved exactly as persisted.
func FromSnapshot(vertexCount int, edges []Edge, incidenceLists [][]EdgeID) *Graph {
	return &Graph{
		vertexCount:   vertexCount,
		edges:         edges,
		incidenceList: incidenceLists,
	}
}
