package snapshot

import (
	"bytes"
	"fmt"

	"github.com/lvl-transit/transitway/catalogue"
)

// encodeCatalogue writes every stop (in StopID order), the distances
// chosen by distancePairs, and every bus (in BusID order, including its
// expanded route, terminal and cached stat; decodeCatalogue skips those
// fields and recomputes them through AddBus).
func encodeCatalogue(buf *bytes.Buffer, cat *catalogue.Catalogue) {
	stops := cat.AllStops()
	writeCount(buf, len(stops))
	for _, stop := range stops {
		writeStringField(buf, tagStopName, stop.Name)
		writeFloatField(buf, tagStopLat, stop.Coordinates.Lat)
		writeFloatField(buf, tagStopLng, stop.Coordinates.Lng)
	}

	distances := distancePairs(cat, len(stops))
	writeCount(buf, len(distances))
	for _, d := range distances {
		writeVarintField(buf, tagDistFrom, uint64(d.from))
		writeVarintField(buf, tagDistTo, uint64(d.to))
		writeFloatField(buf, tagDistMeters, d.meters)
	}

	buses := cat.AllBuses()
	writeCount(buf, len(buses))
	for _, bus := range buses {
		writeStringField(buf, tagBusName, bus.Name)
		writeBoolField(buf, tagBusRoundtrip, bus.IsRoundtrip)
		writeStopIDList(buf, tagBusRawRoute, bus.RawRoute)
		writeStopIDList(buf, tagBusExpandedRoute, bus.ExpandedRoute)
		writeVarintField(buf, tagBusTerminal, uint64(bus.Terminal))
		writeVarintField(buf, tagBusStatStopCount, uint64(bus.Stat.StopCount))
		writeVarintField(buf, tagBusStatUniqueStops, uint64(bus.Stat.UniqueStops))
		writeFloatField(buf, tagBusStatRoadLength, bus.Stat.RoadLength)
		writeFloatField(buf, tagBusStatCurvature, bus.Stat.Curvature)
	}
}

type distanceEntry struct {
	from, to catalogue.StopID
	meters   float64
}

// distancePairs probes GetDistance (with its reverse-pair fallback) for
// every ordered stop pair that AllBuses' routes actually traverse,
// in both directions. The catalogue does not expose its internal
// distance map, so a distance between stops that no bus connects is
// not included; the payload covers every consecutive pair along every
// bus's expanded route, which is all a loaded catalogue's AddBus needs.
func distancePairs(cat *catalogue.Catalogue, stopCount int) []distanceEntry {
	seen := make(map[[2]catalogue.StopID]bool)
	var out []distanceEntry
	add := func(from, to catalogue.StopID) {
		key := [2]catalogue.StopID{from, to}
		if seen[key] {
			return
		}
		d, err := cat.GetDistance(from, to)
		if err != nil {
			return
		}
		seen[key] = true
		out = append(out, distanceEntry{from: from, to: to, meters: d})
	}
	for _, bus := range cat.AllBuses() {
		for i := 1; i < len(bus.ExpandedRoute); i++ {
			add(bus.ExpandedRoute[i-1], bus.ExpandedRoute[i])
			add(bus.ExpandedRoute[i], bus.ExpandedRoute[i-1])
		}
	}
	return out
}

func writeStopIDList(buf *bytes.Buffer, tag byte, ids []catalogue.StopID) {
	var inner bytes.Buffer
	writeCount(&inner, len(ids))
	for _, id := range ids {
		var tmp [10]byte
		n := putUvarintTmp(tmp[:], uint64(id))
		inner.Write(tmp[:n])
	}
	writeField(buf, tag, inner.Bytes())
}

func decodeStopIDList(payload []byte) ([]catalogue.StopID, error) {
	r := bytes.NewReader(payload)
	n, err := readCount(r)
	if err != nil {
		return nil, err
	}
	ids := make([]catalogue.StopID, 0, n)
	for i := 0; i < n; i++ {
		v, err := readUvarint(r)
		if err != nil {
			return nil, err
		}
		ids = append(ids, catalogue.StopID(v))
	}
	return ids, nil
}

// decodeCatalogue rebuilds a Catalogue from its encoded stops,
// distances, and buses, in the same insertion order used at encode
// time so StopID/BusID values are stable across a snapshot round trip.
func decodeCatalogue(r *bytes.Reader) (*catalogue.Catalogue, error) {
	cat := catalogue.New()

	stopCount, err := readCount(r)
	if err != nil {
		return nil, err
	}
	for i := 0; i < stopCount; i++ {
		var name string
		var lat, lng float64
		for need := 3; need > 0; need-- {
			f, err := readField(r)
			if err != nil {
				return nil, err
			}
			switch f.tag {
			case tagStopName:
				name = f.asString()
			case tagStopLat:
				lat, err = f.asFloat64()
			case tagStopLng:
				lng, err = f.asFloat64()
			}
			if err != nil {
				return nil, err
			}
		}
		cat.AddStop(name, lat, lng)
	}

	distCount, err := readCount(r)
	if err != nil {
		return nil, err
	}
	for i := 0; i < distCount; i++ {
		var from, to catalogue.StopID
		var meters float64
		for need := 3; need > 0; need-- {
			f, err := readField(r)
			if err != nil {
				return nil, err
			}
			switch f.tag {
			case tagDistFrom:
				v, err := f.asUvarint()
				if err != nil {
					return nil, err
				}
				from = catalogue.StopID(v)
			case tagDistTo:
				v, err := f.asUvarint()
				if err != nil {
					return nil, err
				}
				to = catalogue.StopID(v)
			case tagDistMeters:
				meters, err = f.asFloat64()
				if err != nil {
					return nil, err
				}
			}
		}
		cat.SetDistance(from, to, meters)
	}

	busCount, err := readCount(r)
	if err != nil {
		return nil, err
	}
	for i := 0; i < busCount; i++ {
		var name string
		var roundtrip bool
		var rawRoute []catalogue.StopID
		for need := 9; need > 0; need-- {
			f, err := readField(r)
			if err != nil {
				return nil, err
			}
			switch f.tag {
			case tagBusName:
				name = f.asString()
			case tagBusRoundtrip:
				roundtrip = f.asBool()
			case tagBusRawRoute:
				rawRoute, err = decodeStopIDList(f.payload)
				if err != nil {
					return nil, err
				}
			case tagBusExpandedRoute, tagBusTerminal, tagBusStatStopCount,
				tagBusStatUniqueStops, tagBusStatRoadLength, tagBusStatCurvature:
				// Recomputed by AddBus below from rawRoute + distances;
				// the encoded values exist only so a future reader that
				// skips recomputation can use them directly.
			default:
				return nil, fmt.Errorf("snapshot: unexpected bus field tag %d", f.tag)
			}
		}
		if _, err := cat.AddBus(name, rawRoute, roundtrip); err != nil {
			return nil, fmt.Errorf("snapshot: decode bus %q: %w", name, err)
		}
	}

	return cat, nil
}
