package catalogue

import "github.com/lvl-transit/transitway/geo"

// StopID is a stable handle into Catalogue's stop arena. It equals the
// stop's index in insertion order, which is also the index used by the
// snapshot codec (see package snapshot).
type StopID int

// BusID is a stable handle into Catalogue's bus arena, analogous to
// StopID.
type BusID int

// Stop is an immutable transit stop: a unique name and a geographic
// position. Stops are never removed once added.
type Stop struct {
	Name        string
	Coordinates geo.Coordinates
}

// BusStat caches the four derived statistics of a Bus, computed once at
// insertion and never recomputed.
type BusStat struct {
	// StopCount is the length of the bus's expanded route.
	StopCount int
	// UniqueStops is the number of distinct stops in the expanded route.
	UniqueStops int
	// RoadLength is the sum of road distances along the expanded route.
	RoadLength float64
	// Curvature is RoadLength divided by the sum of great-circle
	// distances along the expanded route.
	Curvature float64
}

// Bus is a named transit line: its raw route as provided by the caller,
// its expanded route (see ExpandedRoute), its terminal stop, and its
// cached BusStat.
type Bus struct {
	Name         string
	IsRoundtrip  bool
	RawRoute     []StopID
	ExpandedRoute []StopID
	Terminal     StopID
	Stat         BusStat
}

// Catalogue owns stops, buses, and their road distances. See doc.go for
// the storage model and concurrency contract.
type Catalogue struct {
	stops []Stop
	buses []Bus

	stopIndex map[string]StopID
	busIndex  map[string]BusID

	// stopToBuses[stop] holds the set of bus names serving that stop, as
	// a sorted slice kept sorted on insert (buses are typically added in
	// small numbers relative to queries, so insertion-sort-on-add keeps
	// BusesForStop O(1) rather than re-sorting per query).
	stopToBuses map[StopID][]string

	// distances[StopID][StopID] = meters, keyed by the ordered pair as
	// originally inserted (SetDistance never auto-mirrors the reverse
	// pair; GetDistance falls back to the reverse lookup itself).
	distances map[distanceKey]float64
}

type distanceKey struct {
	from StopID
	to   StopID
}

// New returns an empty Catalogue ready for AddStop/SetDistance/AddBus
// calls.
func New() *Catalogue {
	return &Catalogue{
		stopIndex:   make(map[string]StopID),
		busIndex:    make(map[string]BusID),
		stopToBuses: make(map[StopID][]string),
		distances:   make(map[distanceKey]float64),
	}
}
