// Package transit translates a catalogue.Catalogue into a weighted
// digraph (two vertices per stop: a boarding "in" vertex and a riding
// "out" vertex) and wraps a routepath.Table over that graph to answer
// passenger itinerary queries.
//
// Router is a small state machine, Empty -> Initialized -> Sealed:
//
//   - Empty: just constructed, holds a read-only reference to a
//     catalogue.Catalogue.
//   - Initialized: Init has built the graph, wait/ride edges and the
//     shortest-path table from scratch.
//   - Sealed: LoadFromSnapshot has installed a graph/table/edge metadata
//     decoded from a snapshot, without recomputation.
//
// Init and LoadFromSnapshot are single-writer and mutually exclusive
// with each other and with Route; once either has completed, Route calls
// are read-only and safe for concurrent callers (spec §5). This mirrors
// the teacher's core.Graph split-lock discipline (muVert vs muEdgeAdj),
// narrowed to a single state tag since Router has nothing else mutable
// post-construction.
package transit
