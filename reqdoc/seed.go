package reqdoc

import (
	"fmt"

	"github.com/lvl-transit/transitway/catalogue"
)

// SeedCatalogue builds a Catalogue from base_requests in three passes —
// stops, then road distances, then buses — so a bus's stop names always
// resolve and every distance it needs is already recorded (mirrors
// json_reader.cpp's ParseStop / ParseStopDistance / ParseBus order).
func SeedCatalogue(requests []BaseRequest) (*catalogue.Catalogue, error) {
	cat := catalogue.New()

	for _, req := range requests {
		if req.Type != "Stop" {
			continue
		}
		cat.AddStop(req.Name, req.Latitude, req.Longitude)
	}

	for _, req := range requests {
		if req.Type != "Stop" {
			continue
		}
		from, err := cat.FindStop(req.Name)
		if err != nil {
			return nil, fmt.Errorf("reqdoc: seed distances: %w", err)
		}
		for toName, meters := range req.RoadDistances {
			to, err := cat.FindStop(toName)
			if err != nil {
				return nil, fmt.Errorf("reqdoc: seed distances: %w", err)
			}
			cat.SetDistance(from, to, meters)
		}
	}

	for _, req := range requests {
		if req.Type != "Bus" {
			continue
		}
		stops := make([]catalogue.StopID, 0, len(req.Stops))
		for _, name := range req.Stops {
			id, err := cat.FindStop(name)
			if err != nil {
				return nil, fmt.Errorf("reqdoc: seed bus %q: %w", req.Name, err)
			}
			stops = append(stops, id)
		}
		if _, err := cat.AddBus(req.Name, stops, req.IsRoundtrip); err != nil {
			return nil, fmt.Errorf("reqdoc: seed bus %q: %w", req.Name, err)
		}
	}

	return cat, nil
}
