package transit

import (
	"github.com/lvl-transit/transitway/graphx"
	"github.com/lvl-transit/transitway/routepath"
)

// SnapshotState is the decoded payload a caller passes to
// LoadFromSnapshot: everything Init would otherwise compute, already
// materialized by package snapshot.
type SnapshotState struct {
	Settings      Settings
	VertexCounter graphx.VertexID
	VertexByStop  []VertexIDs
	WaitEdges     map[graphx.EdgeID]WaitStep
	RideEdges     map[graphx.EdgeID]RideStep
	Graph         *graphx.Graph
	Table         *routepath.Table
}

// LoadFromSnapshot installs a previously computed graph and table
// without recomputing them (spec §4.4, "process_requests mode loads a
// persisted state rather than rebuilding one"). It transitions
// Empty -> Sealed.
func (r *Router) LoadFromSnapshot(state SnapshotState) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.state != stateEmpty {
		return ErrAlreadyInitialized
	}

	r.settings = state.Settings
	r.vertexCounter = state.VertexCounter
	r.vertexByStop = state.VertexByStop
	r.waitEdges = state.WaitEdges
	r.rideEdges = state.RideEdges
	r.graph = state.Graph
	r.table = state.Table
	r.state = stateSealed

	return nil
}

// Export returns the router's current graph, table and edge metadata
// for persistence. Valid once the router has left the Empty state.
func (r *Router) Export() (SnapshotState, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if r.state == stateEmpty {
		return SnapshotState{}, ErrNotInitialized
	}

	return SnapshotState{
		Settings:      r.settings,
		VertexCounter: r.vertexCounter,
		VertexByStop:  r.vertexByStop,
		WaitEdges:     r.waitEdges,
		RideEdges:     r.rideEdges,
		Graph:         r.graph,
		Table:         r.table,
	}, nil
}
