package mapview

import (
	"math"

	"github.com/lvl-transit/transitway/geo"
	"github.com/lvl-transit/transitway/svg"
)

const epsilon = 1e-6

func isZero(v float64) bool {
	return math.Abs(v) < epsilon
}

// SphereProjector maps geographic coordinates into a width x height
// canvas with the given padding on all sides, preserving aspect ratio
// by using whichever of the horizontal/vertical zoom factors is
// smaller.
type SphereProjector struct {
	padding  float64
	minLon   float64
	maxLat   float64
	zoomCoef float64
}

// NewSphereProjector computes the projection for a set of coordinates.
// An empty points slice yields a projector whose Project always
// returns (padding, padding).
func NewSphereProjector(points []geo.Coordinates, maxWidth, maxHeight, padding float64) SphereProjector {
	if len(points) == 0 {
		return SphereProjector{padding: padding}
	}

	minLon, maxLon := points[0].Lng, points[0].Lng
	minLat, maxLat := points[0].Lat, points[0].Lat
	for _, p := range points[1:] {
		if p.Lng < minLon {
			minLon = p.Lng
		}
		if p.Lng > maxLon {
			maxLon = p.Lng
		}
		if p.Lat < minLat {
			minLat = p.Lat
		}
		if p.Lat > maxLat {
			maxLat = p.Lat
		}
	}

	var widthZoom, heightZoom *float64
	if !isZero(maxLon - minLon) {
		z := (maxWidth - 2*padding) / (maxLon - minLon)
		widthZoom = &z
	}
	if !isZero(maxLat - minLat) {
		z := (maxHeight - 2*padding) / (maxLat - minLat)
		heightZoom = &z
	}

	var zoom float64
	switch {
	case widthZoom != nil && heightZoom != nil:
		zoom = math.Min(*widthZoom, *heightZoom)
	case widthZoom != nil:
		zoom = *widthZoom
	case heightZoom != nil:
		zoom = *heightZoom
	}

	return SphereProjector{padding: padding, minLon: minLon, maxLat: maxLat, zoomCoef: zoom}
}

// Project converts a geographic coordinate into an SVG canvas point.
func (p SphereProjector) Project(c geo.Coordinates) svg.Point {
	return svg.Point{
		X: (c.Lng-p.minLon)*p.zoomCoef + p.padding,
		Y: (p.maxLat-c.Lat)*p.zoomCoef + p.padding,
	}
}
