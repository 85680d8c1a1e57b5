package snapshot

import (
	"bytes"
	"fmt"

	"github.com/lvl-transit/transitway/graphx"
	"github.com/lvl-transit/transitway/routepath"
	"github.com/lvl-transit/transitway/transit"
)

// encodeRouter writes the router's vertex assignment, wait/ride edge
// metadata, graph edges, and precomputed table — everything
// LoadFromSnapshot needs to seal a router without recomputation.
func encodeRouter(buf *bytes.Buffer, state transit.SnapshotState) {
	encodeRoutingSettings(buf, state.Settings)
	writeVarintField(buf, tagVertexCounter, uint64(state.VertexCounter))

	writeCount(buf, len(state.VertexByStop))
	for _, v := range state.VertexByStop {
		writeVarintField(buf, tagVertexIn, uint64(v.In))
		writeVarintField(buf, tagVertexOut, uint64(v.Out))
	}

	edges := state.Graph.Edges()
	writeVarintField(buf, tagGraphVertexCount, uint64(state.Graph.VertexCount()))
	writeCount(buf, len(edges))
	for _, e := range edges {
		writeVarintField(buf, tagGraphEdgeFrom, uint64(e.From))
		writeVarintField(buf, tagGraphEdgeTo, uint64(e.To))
		writeFloatField(buf, tagGraphEdgeWeight, e.Weight)
	}

	writeCount(buf, len(state.WaitEdges))
	for id, w := range state.WaitEdges {
		writeVarintField(buf, tagWaitEdgeID, uint64(id))
		writeStringField(buf, tagWaitStop, w.Stop)
		writeFloatField(buf, tagWaitTime, w.Time)
	}

	writeCount(buf, len(state.RideEdges))
	for id, rd := range state.RideEdges {
		writeVarintField(buf, tagRideEdgeID, uint64(id))
		writeStringField(buf, tagRideBus, rd.Bus)
		writeVarintField(buf, tagRideSpanCount, uint64(rd.SpanCount))
		writeFloatField(buf, tagRideTime, rd.Time)
	}

	n := state.Graph.VertexCount()
	for u := 0; u < n; u++ {
		for v := 0; v < n; v++ {
			reachable, weight, prevEdge, hasPrev := state.Table.CellAt(graphx.VertexID(u), graphx.VertexID(v))
			writeBoolField(buf, tagTableReachable, reachable)
			writeFloatField(buf, tagTableWeight, weight)
			writeVarintField(buf, tagTablePrevEdge, uint64(prevEdge))
			writeBoolField(buf, tagTableHasPrev, hasPrev)
		}
	}
}

func decodeRouter(r *bytes.Reader) (transit.SnapshotState, error) {
	var state transit.SnapshotState

	settings, err := decodeRoutingSettings(r)
	if err != nil {
		return state, err
	}
	state.Settings = settings

	vcField, err := readField(r)
	if err != nil || vcField.tag != tagVertexCounter {
		return state, fmt.Errorf("snapshot: expected vertex counter field: %w", err)
	}
	vc, err := vcField.asUvarint()
	if err != nil {
		return state, err
	}
	state.VertexCounter = graphx.VertexID(vc)

	vertexCount, err := readCount(r)
	if err != nil {
		return state, err
	}
	state.VertexByStop = make([]transit.VertexIDs, vertexCount)
	for i := 0; i < vertexCount; i++ {
		var ids transit.VertexIDs
		for need := 2; need > 0; need-- {
			f, err := readField(r)
			if err != nil {
				return state, err
			}
			v, err := f.asUvarint()
			if err != nil {
				return state, err
			}
			switch f.tag {
			case tagVertexIn:
				ids.In = graphx.VertexID(v)
			case tagVertexOut:
				ids.Out = graphx.VertexID(v)
			}
		}
		state.VertexByStop[i] = ids
	}

	gvField, err := readField(r)
	if err != nil || gvField.tag != tagGraphVertexCount {
		return state, fmt.Errorf("snapshot: expected graph vertex count field: %w", err)
	}
	graphVertexCount, err := gvField.asUvarint()
	if err != nil {
		return state, err
	}

	edgeCount, err := readCount(r)
	if err != nil {
		return state, err
	}
	edges := make([]graphx.Edge, edgeCount)
	incidence := make([][]graphx.EdgeID, graphVertexCount)
	for i := 0; i < edgeCount; i++ {
		var e graphx.Edge
		for need := 3; need > 0; need-- {
			f, err := readField(r)
			if err != nil {
				return state, err
			}
			switch f.tag {
			case tagGraphEdgeFrom:
				v, err := f.asUvarint()
				if err != nil {
					return state, err
				}
				e.From = graphx.VertexID(v)
			case tagGraphEdgeTo:
				v, err := f.asUvarint()
				if err != nil {
					return state, err
				}
				e.To = graphx.VertexID(v)
			case tagGraphEdgeWeight:
				w, err := f.asFloat64()
				if err != nil {
					return state, err
				}
				e.Weight = w
			}
		}
		edges[i] = e
		incidence[e.From] = append(incidence[e.From], graphx.EdgeID(i))
	}
	state.Graph = graphx.FromSnapshot(int(graphVertexCount), edges, incidence)

	waitCount, err := readCount(r)
	if err != nil {
		return state, err
	}
	state.WaitEdges = make(map[graphx.EdgeID]transit.WaitStep, waitCount)
	for i := 0; i < waitCount; i++ {
		var id graphx.EdgeID
		var w transit.WaitStep
		for need := 3; need > 0; need-- {
			f, err := readField(r)
			if err != nil {
				return state, err
			}
			switch f.tag {
			case tagWaitEdgeID:
				v, err := f.asUvarint()
				if err != nil {
					return state, err
				}
				id = graphx.EdgeID(v)
			case tagWaitStop:
				w.Stop = f.asString()
			case tagWaitTime:
				t, err := f.asFloat64()
				if err != nil {
					return state, err
				}
				w.Time = t
			}
		}
		state.WaitEdges[id] = w
	}

	rideCount, err := readCount(r)
	if err != nil {
		return state, err
	}
	state.RideEdges = make(map[graphx.EdgeID]transit.RideStep, rideCount)
	for i := 0; i < rideCount; i++ {
		var id graphx.EdgeID
		var rd transit.RideStep
		for need := 4; need > 0; need-- {
			f, err := readField(r)
			if err != nil {
				return state, err
			}
			switch f.tag {
			case tagRideEdgeID:
				v, err := f.asUvarint()
				if err != nil {
					return state, err
				}
				id = graphx.EdgeID(v)
			case tagRideBus:
				rd.Bus = f.asString()
			case tagRideSpanCount:
				v, err := f.asUvarint()
				if err != nil {
					return state, err
				}
				rd.SpanCount = int(v)
			case tagRideTime:
				t, err := f.asFloat64()
				if err != nil {
					return state, err
				}
				rd.Time = t
			}
		}
		state.RideEdges[id] = rd
	}

	cells := make([]routepath.TableCell, int(graphVertexCount)*int(graphVertexCount))
	for i := range cells {
		var cell routepath.TableCell
		for need := 4; need > 0; need-- {
			f, err := readField(r)
			if err != nil {
				return state, err
			}
			switch f.tag {
			case tagTableReachable:
				cell.Reachable = f.asBool()
			case tagTableWeight:
				w, err := f.asFloat64()
				if err != nil {
					return state, err
				}
				cell.Weight = w
			case tagTablePrevEdge:
				v, err := f.asUvarint()
				if err != nil {
					return state, err
				}
				cell.PrevEdge = graphx.EdgeID(v)
			case tagTableHasPrev:
				cell.HasPrev = f.asBool()
			}
		}
		cells[i] = cell
	}
	state.Table = routepath.FromCells(state.Graph, int(graphVertexCount), cells)

	return state, nil
}
