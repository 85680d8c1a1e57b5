package mapview_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/lvl-transit/transitway/catalogue"
	"github.com/lvl-transit/transitway/mapview"
	"github.com/lvl-transit/transitway/svg"
)

func buildCatalogue(t *testing.T) *catalogue.Catalogue {
	t.Helper()
	cat := catalogue.New()
	a := cat.AddStop("Tolstopaltsevo", 55.611087, 37.208290)
	b := cat.AddStop("Marushkino", 55.595884, 37.209755)
	c := cat.AddStop("Rasskazovka", 55.632761, 37.333324)
	cat.SetDistance(a, b, 2000)
	cat.SetDistance(b, a, 2000)
	cat.SetDistance(b, c, 3000)
	cat.SetDistance(c, b, 3000)

	_, err := cat.AddBus("750", []catalogue.StopID{a, b, c}, false)
	require.NoError(t, err)
	return cat
}

func defaultSettings() mapview.RenderSettings {
	return mapview.RenderSettings{
		Width: 600, Height: 400, Padding: 50,
		LineWidth: 14, StopRadius: 5, UnderlayerWidth: 3,
		BusLabelFontSize:  20,
		StopLabelFontSize: 18,
		UnderlayerColor:   svg.RGBA{Red: 255, Green: 255, Blue: 255, Opacity: 0.85},
		ColorPalette:      []svg.Color{svg.Named("green"), svg.RGB{Red: 255, Green: 160, Blue: 0}},
	}
}

func TestDrawProducesSVGWithStopsAndRoutes(t *testing.T) {
	require := require.New(t)
	cat := buildCatalogue(t)
	r := mapview.New(cat, defaultSettings())

	var sb strings.Builder
	require.NoError(r.Draw(&sb))

	out := sb.String()
	require.True(strings.HasPrefix(out, "<?xml"))
	require.Contains(out, "<polyline")
	require.Contains(out, "<circle")
	require.Contains(out, "750")
	require.Contains(out, "Tolstopaltsevo")
}

func TestDrawSkipsUnservedStops(t *testing.T) {
	require := require.New(t)
	cat := buildCatalogue(t)
	cat.AddStop("Lonely", 0, 0)
	r := mapview.New(cat, defaultSettings())

	var sb strings.Builder
	require.NoError(r.Draw(&sb))
	require.NotContains(sb.String(), "Lonely")
}
