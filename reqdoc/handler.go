package reqdoc

import (
	"errors"
	"sort"
	"strings"

	"github.com/lvl-transit/transitway/catalogue"
	"github.com/lvl-transit/transitway/mapview"
	"github.com/lvl-transit/transitway/transit"
)

// Handler answers stat_requests against a fixed catalogue, router, and
// render settings (spec §4.7 request/answer facade, grounded on
// request_handler.h/.cpp and json_reader.cpp's ProcessRequest
// dispatch).
type Handler struct {
	Catalogue      *catalogue.Catalogue
	Router         *transit.Router
	RenderSettings mapview.RenderSettings
}

// HandleAll resolves every stat_requests entry in order and returns the
// answer array json_reader.cpp's OutputJson would have printed.
func (h *Handler) HandleAll(requests []StatRequest) []Answer {
	answers := make([]Answer, 0, len(requests))
	for _, req := range requests {
		answers = append(answers, h.handleOne(req))
	}
	return answers
}

func (h *Handler) handleOne(req StatRequest) Answer {
	switch req.Type {
	case "Stop":
		return h.HandleStopInfo(req.ID, req.Name)
	case "Bus":
		return h.HandleBusInfo(req.ID, req.Name)
	case "Map":
		return h.HandleMap(req.ID)
	case "Route":
		return h.HandleRoute(req.ID, req.From, req.To)
	default:
		return notFound(req.ID)
	}
}

// HandleStopInfo answers which buses serve a stop, sorted by name.
func (h *Handler) HandleStopInfo(id int, stopName string) Answer {
	buses, err := h.Catalogue.BusesForStop(stopName)
	if err != nil {
		return notFound(id)
	}
	sort.Strings(buses)
	return Answer{RequestID: id, Buses: buses}
}

// HandleBusInfo answers a bus's cached route statistics.
func (h *Handler) HandleBusInfo(id int, busName string) Answer {
	busID, err := h.Catalogue.FindBus(busName)
	if err != nil {
		return notFound(id)
	}
	bus := h.Catalogue.Bus(busID)

	curvature := bus.Stat.Curvature
	length := bus.Stat.RoadLength
	stopCount := bus.Stat.StopCount
	uniqueCount := bus.Stat.UniqueStops

	return Answer{
		RequestID:   id,
		Curvature:   &curvature,
		RouteLength: &length,
		StopCount:   &stopCount,
		UniqueCount: &uniqueCount,
	}
}

// HandleRoute answers the cheapest itinerary between two stops.
func (h *Handler) HandleRoute(id int, from, to string) Answer {
	result, err := h.Router.Route(from, to)
	if err != nil {
		if errors.Is(err, catalogue.ErrStopNotFound) {
			return notFound(id)
		}
		return notFound(id)
	}
	if result == nil {
		return notFound(id)
	}

	items := make([]RouteItem, 0, len(result.Items))
	for _, item := range result.Items {
		switch v := item.(type) {
		case transit.WaitStep:
			items = append(items, RouteItem{Type: "Wait", StopName: v.Stop, Time: v.Time})
		case transit.RideStep:
			items = append(items, RouteItem{Type: "Bus", Bus: v.Bus, SpanCount: v.SpanCount, Time: v.Time})
		}
	}

	total := result.TotalMinutes
	return Answer{RequestID: id, TotalTime: &total, Items: items}
}

// HandleMap answers the rendered SVG map as a string.
func (h *Handler) HandleMap(id int) Answer {
	var sb strings.Builder
	renderer := mapview.New(h.Catalogue, h.RenderSettings)
	if err := renderer.Draw(&sb); err != nil {
		return notFound(id)
	}
	out := sb.String()
	return Answer{RequestID: id, Map: &out}
}
