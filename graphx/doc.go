// Package graphx provides a minimal generic directed weighted graph:
// caller-allocated dense integer vertex IDs, append-only edges, and a
// per-vertex incidence list for O(1)-amortized edge insertion and O(deg)
// outgoing-edge iteration.
//
// This is deliberately narrower than the teacher lvlath/core.Graph (which
// supports string vertex IDs, undirected/mixed/loop/multi-edge policy
// flags, and per-graph locking): routing pre-allocates a dense
// [0, 2*|stops|) vertex ID space up front and only ever adds directed
// edges, so the policy surface collapses to "always directed, weights
// always present, multi-edges always allowed" — package transit is the
// only caller and it never needs the rest of core.Graph's flexibility.
//
// Vertex IDs and edge IDs are both uint32, matching spec §3's
// RouterVertexPair invariant (dense IDs in [0, 2*|Stops|)).
package graphx
