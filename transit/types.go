package transit

import (
	"sync"

	"github.com/lvl-transit/transitway/catalogue"
	"github.com/lvl-transit/transitway/graphx"
	"github.com/lvl-transit/transitway/routepath"
)

// Settings configures graph construction: passenger wait time at every
// stop and average bus speed used to convert road distance into ride
// time.
type Settings struct {
	BusVelocityKMH float64
	BusWaitTimeMin int
}

// VertexIDs is the pair of graph vertices owned by one stop: In (where
// a waiting passenger boards) and Out (where a riding passenger is
// carried from).
type VertexIDs struct {
	In  graphx.VertexID
	Out graphx.VertexID
}

// RouteItem is one leg of an itinerary: either a WaitStep or a
// RideStep. It is a closed tagged union (spec design note: "inheritance
// -> tagged sum types"); the only implementations are in this package.
type RouteItem interface {
	isRouteItem()
}

// WaitStep is "wait at Stop for Time minutes".
type WaitStep struct {
	Stop string
	Time float64
}

func (WaitStep) isRouteItem() {}

// RideStep is "ride Bus for SpanCount spans, taking Time minutes".
type RideStep struct {
	Bus       string
	SpanCount int
	Time      float64
}

func (RideStep) isRouteItem() {}

// Result is a complete itinerary: total minutes and the ordered legs.
type Result struct {
	TotalMinutes float64
	Items        []RouteItem
}

type routerState int

const (
	stateEmpty routerState = iota
	stateInitialized
	stateSealed
)

// Router wires a catalogue into a routable graph. See doc.go for the
// state machine and concurrency contract.
type Router struct {
	mu    sync.RWMutex
	state routerState

	cat      *catalogue.Catalogue
	settings Settings

	graph *graphx.Graph
	table *routepath.Table

	vertexCounter graphx.VertexID
	vertexByStop  []VertexIDs // indexed by catalogue.StopID

	waitEdges map[graphx.EdgeID]WaitStep
	rideEdges map[graphx.EdgeID]RideStep
}

// New returns an Empty router borrowing cat for its lifetime.
func New(cat *catalogue.Catalogue) *Router {
	return &Router{cat: cat}
}
