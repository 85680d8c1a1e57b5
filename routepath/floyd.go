package routepath

import (
	"math"

	"github.com/lvl-transit/transitway/graphx"
)

// Precompute builds the all-pairs shortest-path table for g.
//
// Steps (spec §4.3):
//  1. Initialize every cell unreachable, then relax with every edge
//     (first edge to reach a given weight wins ties, since later edges
//     at an equal weight fail the strict-less comparison).
//  2. For every intermediate k, relax every (u,v) pair through k.
//
// Complexity: Time O(V^3), Space O(V^2).
func Precompute(g *graphx.Graph) (*Table, error) {
	n := g.VertexCount()
	t := &Table{g: g, n: n, cells: make([]cell, n*n)}

	for _, e := range g.Edges() {
		if math.IsNaN(e.Weight) {
			return nil, ErrNaNWeight
		}
		if e.Weight < 0 {
			return nil, ErrNegativeWeight
		}
	}

	for id, e := range g.Edges() {
		cur := t.at(e.From, e.To)
		if !cur.reachable || e.Weight < cur.weight {
			t.set(e.From, e.To, cell{
				reachable: true,
				weight:    e.Weight,
				prevEdge:  graphx.EdgeID(id),
				hasPrev:   true,
			})
		}
	}

	for k := 0; k < n; k++ {
		for u := 0; u < n; u++ {
			uk := t.at(graphx.VertexID(u), graphx.VertexID(k))
			if !uk.reachable {
				continue
			}
			for v := 0; v < n; v++ {
				kv := t.at(graphx.VertexID(k), graphx.VertexID(v))
				if !kv.reachable {
					continue
				}
				candidate := uk.weight + kv.weight
				uv := t.at(graphx.VertexID(u), graphx.VertexID(v))
				if !uv.reachable || candidate < uv.weight {
					t.set(graphx.VertexID(u), graphx.VertexID(v), cell{
						reachable: true,
						weight:    candidate,
						prevEdge:  kv.prevEdge,
						hasPrev:   kv.hasPrev,
					})
				}
			}
		}
	}

	return t, nil
}

// BuildRoute reconstructs the shortest path from -> to, or reports
// (nil, false) if to is unreachable from from.
//
// The predecessor chain is walked backwards from to, crossing at most
// V-1 edges (spec invariant); exceeding that bound indicates a corrupted
// table (e.g. a malformed loaded snapshot) and aborts the walk by
// returning (nil, false) rather than looping forever.
func (t *Table) BuildRoute(from, to graphx.VertexID) (*Route, bool) {
	c := t.at(from, to)
	if !c.reachable {
		return nil, false
	}

	edges := make([]graphx.EdgeID, 0)
	cur := to
	for hops := 0; cur != from; hops++ {
		if hops >= t.n-1 {
			return nil, false // predecessor chain did not terminate within V-1 hops
		}

		cc := t.at(from, cur)
		if !cc.reachable || !cc.hasPrev {
			return nil, false
		}

		edges = append(edges, cc.prevEdge)
		cur = t.g.Edge(cc.prevEdge).From
	}

	for i, j := 0, len(edges)-1; i < j; i, j = i+1, j-1 {
		edges[i], edges[j] = edges[j], edges[i]
	}

	return &Route{Weight: c.weight, Edges: edges}, true
}

// VertexCount returns the number of vertices the table was built over.
func (t *Table) VertexCount() int { return t.n }

// CellAt exposes the raw (weight, prevEdge) data for (u,v), used by
// package snapshot to persist the table without recomputation.
// reachable reports whether u can reach v at all; hasPrev reports
// whether prevEdge is meaningful.
func (t *Table) CellAt(u, v graphx.VertexID) (reachable bool, weight float64, prevEdge graphx.EdgeID, hasPrev bool) {
	c := t.at(u, v)
	return c.reachable, c.weight, c.prevEdge, c.hasPrev
}

// FromCells rebuilds a Table directly from decoded cell data, bypassing
// Precompute. cells must be row-major length n*n, matching CellAt's
// encoding.
func FromCells(g *graphx.Graph, n int, cells []TableCell) *Table {
	t := &Table{g: g, n: n, cells: make([]cell, n*n)}
	for i, c := range cells {
		t.cells[i] = cell{reachable: c.Reachable, weight: c.Weight, prevEdge: c.PrevEdge, hasPrev: c.HasPrev}
	}
	return t
}

// TableCell is the snapshot-facing representation of one table cell,
// avoiding an export of the unexported cell type.
type TableCell struct {
	Reachable bool
	Weight    float64
	PrevEdge  graphx.EdgeID
	HasPrev   bool
}
