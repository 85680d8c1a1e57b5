// Package routepath precomputes all-pairs shortest paths over a
// graphx.Graph, tracking predecessor edges so individual routes can be
// reconstructed in time linear in the path length rather than
// recomputing from scratch per query.
//
// The algorithm is the predecessor-tracking variant of Floyd-Warshall
// restricted to non-negative weights, grounded on the teacher's
// matrix.FloydWarshall (same fixed k->i->j loop order, same math.Inf(1)
// "unreachable" sentinel, same strict-less relaxation for determinism)
// generalized from a plain distance matrix to one that also carries, per
// cell, the ID of the edge that last improved it — mirroring the
// teacher's dijkstra package's predecessor-map idiom (prev[v] == u means
// the shortest path to v goes through u), but keyed by edge rather than
// by predecessor vertex so that multi-edges between the same pair of
// stops (distinct bus lines with different span counts and travel
// times) are distinguishable.
//
// Storage: the table is Theta(V^2) cells, each an optional
// {weight, prev edge}; per spec design note it is stored as a single
// flat row-major slice rather than a slice of slices, both to avoid
// V allocations and to make the snapshot codec's job (streaming the
// table row by row) trivial.
package routepath
