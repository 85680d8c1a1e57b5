package geo_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/lvl-transit/transitway/geo"
)

func TestDistance_SamePoint(t *testing.T) {
	require := require.New(t)
	c := geo.Coordinates{Lat: 55.611087, Lng: 37.208290}
	require.Equal(0.0, geo.Distance(c, c))
}

func TestDistance_KnownPair(t *testing.T) {
	require := require.New(t)
	a := geo.Coordinates{Lat: 55.611087, Lng: 37.208290}
	b := geo.Coordinates{Lat: 55.595884, Lng: 37.209755}

	d := geo.Distance(a, b)
	// ~1700m apart; loose bound keeps the test robust to constant precision.
	require.InDelta(1700, d, 150)
}

func TestDistance_Symmetric(t *testing.T) {
	require := require.New(t)
	a := geo.Coordinates{Lat: 55.611087, Lng: 37.208290}
	b := geo.Coordinates{Lat: 55.595884, Lng: 37.209755}

	require.InDelta(geo.Distance(a, b), geo.Distance(b, a), 1e-9)
}
