package transit

import (
	"fmt"
)

// Route answers a passenger itinerary query between two stop names
// (spec §4.4 / §8 scenarios 1-3). Safe for concurrent callers once the
// router has left the Empty state.
//
// A query where from equals to returns a zero-length, zero-time result
// without consulting the table (spec scenario 2). If no path exists,
// Route returns (nil, nil) — absence of a route is not an error.
func (r *Router) Route(from, to string) (*Result, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if r.state == stateEmpty {
		return nil, ErrNotInitialized
	}

	fromID, err := r.cat.FindStop(from)
	if err != nil {
		return nil, fmt.Errorf("transit: route: %w", err)
	}
	toID, err := r.cat.FindStop(to)
	if err != nil {
		return nil, fmt.Errorf("transit: route: %w", err)
	}

	if fromID == toID {
		return &Result{TotalMinutes: 0, Items: []RouteItem{}}, nil
	}

	fromVertex := r.vertexByStop[fromID].In
	toVertex := r.vertexByStop[toID].In

	route, ok := r.table.BuildRoute(fromVertex, toVertex)
	if !ok {
		return nil, nil
	}

	items := make([]RouteItem, 0, len(route.Edges))
	for _, edgeID := range route.Edges {
		if wait, found := r.waitEdges[edgeID]; found {
			items = append(items, wait)
			continue
		}
		if ride, found := r.rideEdges[edgeID]; found {
			items = append(items, ride)
			continue
		}
		panic(fmt.Sprintf("transit: route edge %d has no recorded wait or ride metadata", edgeID))
	}

	return &Result{TotalMinutes: route.Weight, Items: items}, nil
}
