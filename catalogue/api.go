package catalogue

import (
	"fmt"
	"sort"

	"github.com/lvl-transit/transitway/geo"
)

// AddStop registers a new stop. The precondition (name previously
// unseen) is the caller's responsibility: per spec design note, the
// original source does not enforce it either, so a duplicate name here
// silently shadows the old stop in StopIndex while leaving its old Stop
// record (and any bus routes already referencing it) intact — this is
// documented undefined behaviour, not a bug to be fixed by inventing new
// validation the source never performed.
//
// Complexity: O(1) amortized.
func (c *Catalogue) AddStop(name string, lat, lng float64) StopID {
	id := StopID(len(c.stops))
	c.stops = append(c.stops, Stop{Name: name, Coordinates: geo.Coordinates{Lat: lat, Lng: lng}})
	c.stopIndex[name] = id
	c.stopToBuses[id] = []string{}

	return id
}

// SetDistance registers the directed road distance from -> to, in
// meters. It does not create a reverse entry; GetDistance(to, from)
// falls back to this entry only because GetDistance itself tries both
// orders.
//
// Complexity: O(1).
func (c *Catalogue) SetDistance(from, to StopID, meters float64) {
	c.distances[distanceKey{from: from, to: to}] = meters
}

// GetDistance returns the road distance between from and to: the
// stored (from,to) value if present, else the stored (to,from) value,
// else ErrUnknownDistance.
//
// Complexity: O(1).
func (c *Catalogue) GetDistance(from, to StopID) (float64, error) {
	if d, ok := c.distances[distanceKey{from: from, to: to}]; ok {
		return d, nil
	}
	if d, ok := c.distances[distanceKey{from: to, to: from}]; ok {
		return d, nil
	}

	return 0, ErrUnknownDistance
}

// AddBus registers a bus line. Every stop in rawRoute must already be
// registered (via AddStop) and every consecutive stop pair in the
// expanded route must have a recorded distance (via SetDistance);
// violating either is a fatal catalogue-construction error.
//
// The expanded route is rawRoute unchanged for a roundtrip bus, or
// rawRoute concatenated with its reverse (minus the duplicated pivot)
// for a non-roundtrip bus. BusStat is computed once here and cached.
//
// Complexity: O(len(expanded route)).
func (c *Catalogue) AddBus(name string, rawRoute []StopID, isRoundtrip bool) (BusID, error) {
	if len(rawRoute) == 0 {
		return 0, ErrEmptyRoute
	}

	expanded := expandRoute(rawRoute, isRoundtrip)

	stat, err := c.computeBusStat(expanded)
	if err != nil {
		return 0, fmt.Errorf("catalogue: add bus %q: %w", name, err)
	}

	id := BusID(len(c.buses))
	c.buses = append(c.buses, Bus{
		Name:          name,
		IsRoundtrip:   isRoundtrip,
		RawRoute:      rawRoute,
		ExpandedRoute: expanded,
		Terminal:      rawRoute[len(rawRoute)-1],
		Stat:          stat,
	})
	c.busIndex[name] = id

	c.registerStopToBus(expanded, name)

	return id, nil
}

// expandRoute builds the walked sequence of stops for a bus: identical
// to raw for roundtrip buses, or raw concatenated with its reverse minus
// the duplicated pivot for non-roundtrip buses.
func expandRoute(raw []StopID, isRoundtrip bool) []StopID {
	if isRoundtrip {
		out := make([]StopID, len(raw))
		copy(out, raw)
		return out
	}

	out := make([]StopID, 0, 2*len(raw)-1)
	out = append(out, raw...)
	for i := len(raw) - 2; i >= 0; i-- {
		out = append(out, raw[i])
	}
	return out
}

// computeBusStat walks the expanded route once, accumulating road
// length and great-circle length, and counts unique stops via a sorted
// temporary slice (mirroring the original's UniqCounter<Container,
// Element> helper: sort a copy, then count distinct runs).
func (c *Catalogue) computeBusStat(expanded []StopID) (BusStat, error) {
	var roadLength, idealLength float64
	for i := 0; i+1 < len(expanded); i++ {
		from, to := expanded[i], expanded[i+1]
		d, err := c.GetDistance(from, to)
		if err != nil {
			return BusStat{}, err
		}
		roadLength += d
		idealLength += geo.Distance(c.stops[from].Coordinates, c.stops[to].Coordinates)
	}

	return BusStat{
		StopCount:   len(expanded),
		UniqueStops: countUnique(expanded),
		RoadLength:  roadLength,
		Curvature:   roadLength / idealLength,
	}, nil
}

func countUnique(ids []StopID) int {
	tmp := make([]StopID, len(ids))
	copy(tmp, ids)
	sort.Slice(tmp, func(i, j int) bool { return tmp[i] < tmp[j] })

	uniq := 0
	for i := range tmp {
		if i == 0 || tmp[i] != tmp[i-1] {
			uniq++
		}
	}
	return uniq
}

// registerStopToBus inserts busName into every stop's bus-set along
// route, keeping each stop's set sorted and deduplicated.
func (c *Catalogue) registerStopToBus(route []StopID, busName string) {
	for _, stopID := range route {
		set := c.stopToBuses[stopID]
		i := sort.SearchStrings(set, busName)
		if i < len(set) && set[i] == busName {
			continue // already present (bus revisits this stop)
		}
		set = append(set, "")
		copy(set[i+1:], set[i:])
		set[i] = busName
		c.stopToBuses[stopID] = set
	}
}

// FindStop looks up a stop by name.
func (c *Catalogue) FindStop(name string) (StopID, error) {
	id, ok := c.stopIndex[name]
	if !ok {
		return 0, ErrStopNotFound
	}
	return id, nil
}

// FindBus looks up a bus by name.
func (c *Catalogue) FindBus(name string) (BusID, error) {
	id, ok := c.busIndex[name]
	if !ok {
		return 0, ErrBusNotFound
	}
	return id, nil
}

// Stop returns the Stop record for id. Callers must have obtained id
// from this catalogue (FindStop, AllStops, or a bus's routes).
func (c *Catalogue) Stop(id StopID) Stop { return c.stops[id] }

// Bus returns the Bus record for id.
func (c *Catalogue) Bus(id BusID) Bus { return c.buses[id] }

// BusesForStop returns the sorted bus names serving the named stop, or
// ErrStopNotFound if the stop is unknown.
func (c *Catalogue) BusesForStop(name string) ([]string, error) {
	id, err := c.FindStop(name)
	if err != nil {
		return nil, err
	}
	return c.stopToBuses[id], nil
}

// AllStops returns every stop in insertion order.
func (c *Catalogue) AllStops() []Stop { return c.stops }

// AllBuses returns every bus in insertion order.
func (c *Catalogue) AllBuses() []Bus { return c.buses }

// StopCount returns the number of registered stops.
func (c *Catalogue) StopCount() int { return len(c.stops) }

// BusCount returns the number of registered buses.
func (c *Catalogue) BusCount() int { return len(c.buses) }
