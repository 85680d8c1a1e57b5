package transit

import (
	"fmt"

	"github.com/lvl-transit/transitway/catalogue"
	"github.com/lvl-transit/transitway/graphx"
	"github.com/lvl-transit/transitway/routepath"
)

// Init builds the graph and precomputed table from scratch (spec
// §4.4): allocate two vertices per stop, add a wait edge per stop and
// ride edges per bus direction, then run the Floyd-Warshall-style
// precomputation.
//
// Init transitions Empty -> Initialized. Calling it more than once, or
// after LoadFromSnapshot, returns ErrAlreadyInitialized.
func (r *Router) Init(settings Settings) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.state != stateEmpty {
		return ErrAlreadyInitialized
	}
	r.settings = settings

	r.createVertices()
	r.graph = graphx.New(int(r.vertexCounter))

	return r.build()
}

// build assumes vertexByStop/vertexCounter and the empty graph have
// already been set up by Init; it allocates the edge metadata maps,
// adds the wait and ride edges, and computes the precomputed table.
func (r *Router) build() error {
	r.waitEdges = make(map[graphx.EdgeID]WaitStep)
	r.rideEdges = make(map[graphx.EdgeID]RideStep)

	r.createWaitEdges()
	r.createRideEdges()

	table, err := routepath.Precompute(r.graph)
	if err != nil {
		return fmt.Errorf("transit: precompute: %w", err)
	}
	r.table = table
	r.state = stateInitialized

	return nil
}

// createVertices assigns an (in, out) vertex ID pair to every stop, in
// catalogue iteration order: in = counter++, out = counter++.
func (r *Router) createVertices() {
	stops := r.cat.AllStops()
	r.vertexByStop = make([]VertexIDs, len(stops))
	r.vertexCounter = 0
	for i := range stops {
		in := r.vertexCounter
		r.vertexCounter++
		out := r.vertexCounter
		r.vertexCounter++
		r.vertexByStop[i] = VertexIDs{In: in, Out: out}
	}
}

// createWaitEdges adds, for every stop, an edge from its in vertex to
// its out vertex weighted by the configured wait time.
func (r *Router) createWaitEdges() {
	stops := r.cat.AllStops()
	for i, stop := range stops {
		ids := r.vertexByStop[i]
		weight := float64(r.settings.BusWaitTimeMin)
		edgeID := r.graph.AddEdge(graphx.Edge{From: ids.In, To: ids.Out, Weight: weight})
		r.waitEdges[edgeID] = WaitStep{Stop: stop.Name, Time: weight}
	}
}

// createRideEdges adds, for every bus, a ride edge for each ordered
// pair of indices i < j along the expanded route (and, for
// non-roundtrip buses, again along its reverse — see spec §4.4 item 3;
// the expanded route of a non-roundtrip bus is already a palindrome, so
// this mirrors the original source's behaviour faithfully rather than
// inventing a de-duplication the source never performs).
func (r *Router) createRideEdges() {
	buses := r.cat.AllBuses()
	for _, bus := range buses {
		r.connectStations(bus.ExpandedRoute, bus.Name)

		if !bus.IsRoundtrip {
			reversed := make([]catalogue.StopID, len(bus.ExpandedRoute))
			for i, s := range bus.ExpandedRoute {
				reversed[len(bus.ExpandedRoute)-1-i] = s
			}
			r.connectStations(reversed, bus.Name)
		}
	}
}

// connectStations adds one ride edge per ordered pair (i<j) of stops
// along route, for a single bus direction.
func (r *Router) connectStations(route []catalogue.StopID, busName string) {
	for i := 0; i < len(route); i++ {
		var weight float64
		span := 0
		for j := i + 1; j < len(route); j++ {
			d, err := r.cat.GetDistance(route[j-1], route[j])
			if err != nil {
				// Construction-layer contract violation: every
				// consecutive pair in a bus's expanded route must have
				// a recorded distance (checked already by AddBus, but
				// re-derived here defensively since Init is the only
				// other place that walks routes).
				panic(fmt.Sprintf("transit: missing distance for bus %q segment: %v", busName, err))
			}
			weight += calcTripTime(d, r.settings.BusVelocityKMH)
			span++

			from := r.vertexByStop[route[i]].Out
			to := r.vertexByStop[route[j]].In
			edgeID := r.graph.AddEdge(graphx.Edge{From: from, To: to, Weight: weight})
			r.rideEdges[edgeID] = RideStep{Bus: busName, SpanCount: span, Time: weight}
		}
	}
}

// calcTripTime converts a road distance in meters and a speed in km/h
// into minutes.
func calcTripTime(meters, velocityKmh float64) float64 {
	return 60.0 * meters / (1000.0 * velocityKmh)
}
