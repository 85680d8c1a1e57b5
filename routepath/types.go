package routepath

import "github.com/lvl-transit/transitway/graphx"

// cell is one entry of the precomputed table: either unreachable, or a
// weight plus an optional predecessor edge (None only for a direct
// same-vertex trivial cell, which this package never produces; every
// reachable cell carries a predecessor edge).
type cell struct {
	reachable bool
	weight    float64
	prevEdge  graphx.EdgeID
	hasPrev   bool
}

// Table is the precomputed all-pairs shortest-path table over a fixed
// graphx.Graph. It holds a read-only reference to the graph so route
// reconstruction can resolve an edge's source vertex while walking the
// predecessor chain.
type Table struct {
	g     *graphx.Graph
	n     int
	cells []cell // row-major: cells[u*n+v]
}

// Route is the result of a successful BuildRoute call: the total weight
// of the path and the ordered edge IDs composing it. For from == to,
// BuildRoute reports no route unless the vertex lies on a cycle; then
// Edges is empty and Weight is the weight of the cheapest such cycle.
type Route struct {
	Weight float64
	Edges  []graphx.EdgeID
}

func (t *Table) at(u, v graphx.VertexID) cell {
	return t.cells[int(u)*t.n+int(v)]
}

func (t *Table) set(u, v graphx.VertexID, c cell) {
	t.cells[int(u)*t.n+int(v)] = c
}
