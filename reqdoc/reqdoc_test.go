package reqdoc_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/lvl-transit/transitway/reqdoc"
	"github.com/lvl-transit/transitway/transit"
)

const sampleBaseRequests = `[
  {"type":"Stop","name":"Tolstopaltsevo","latitude":55.611087,"longitude":37.208290,
   "road_distances":{"Marushkino":2000}},
  {"type":"Stop","name":"Marushkino","latitude":55.595884,"longitude":37.209755,
   "road_distances":{"Tolstopaltsevo":2000}},
  {"type":"Bus","name":"750","stops":["Tolstopaltsevo","Marushkino"],"is_roundtrip":false}
]`

func TestSeedCatalogueFromJSON(t *testing.T) {
	require := require.New(t)

	var requests []reqdoc.BaseRequest
	require.NoError(json.Unmarshal([]byte(sampleBaseRequests), &requests))

	cat, err := reqdoc.SeedCatalogue(requests)
	require.NoError(err)
	require.Equal(2, cat.StopCount())
	require.Equal(1, cat.BusCount())
}

func TestColorUnmarshalVariants(t *testing.T) {
	require := require.New(t)

	var named reqdoc.Color
	require.NoError(json.Unmarshal([]byte(`"red"`), &named))
	require.Equal("red", named.Named)

	var rgb reqdoc.Color
	require.NoError(json.Unmarshal([]byte(`[255,160,0]`), &rgb))
	require.True(rgb.HasRGB)
	require.False(rgb.HasAlpha)

	var rgba reqdoc.Color
	require.NoError(json.Unmarshal([]byte(`[255,160,0,0.85]`), &rgba))
	require.True(rgba.HasAlpha)
	require.InDelta(0.85, rgba.A, 1e-9)
}

func TestHandlerStopBusRouteMap(t *testing.T) {
	require := require.New(t)

	var requests []reqdoc.BaseRequest
	require.NoError(json.Unmarshal([]byte(sampleBaseRequests), &requests))
	cat, err := reqdoc.SeedCatalogue(requests)
	require.NoError(err)

	router := transit.New(cat)
	require.NoError(router.Init(transit.Settings{BusVelocityKMH: 40, BusWaitTimeMin: 6}))

	h := &reqdoc.Handler{Catalogue: cat, Router: router}

	stopAns := h.HandleStopInfo(1, "Tolstopaltsevo")
	require.Equal([]string{"750"}, stopAns.Buses)

	busAns := h.HandleBusInfo(2, "750")
	require.NotNil(busAns.StopCount)
	require.Equal(3, *busAns.StopCount)

	routeAns := h.HandleRoute(3, "Tolstopaltsevo", "Marushkino")
	require.NotNil(routeAns.TotalTime)
	require.Len(routeAns.Items, 2)

	missingAns := h.HandleBusInfo(4, "nope")
	require.Equal("not found", missingAns.ErrorMessage)
}
