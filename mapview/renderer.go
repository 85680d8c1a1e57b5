package mapview

import (
	"io"
	"sort"

	"github.com/lvl-transit/transitway/catalogue"
	"github.com/lvl-transit/transitway/geo"
	"github.com/lvl-transit/transitway/svg"
)

// Renderer draws a catalogue's stops and bus routes onto an svg.Document.
type Renderer struct {
	cat      *catalogue.Catalogue
	settings RenderSettings
}

// New returns a Renderer for cat using settings.
func New(cat *catalogue.Catalogue, settings RenderSettings) *Renderer {
	return &Renderer{cat: cat, settings: settings}
}

type stopRender struct {
	name           string
	circle         *svg.Circle
	label          *svg.Text
	labelUnderlay  *svg.Text
}

type routeRender struct {
	polyline        *svg.Polyline
	startName       *svg.Text
	startUnderlayer *svg.Text
	hasEnd          bool
	endName         *svg.Text
	endUnderlayer   *svg.Text
}

// Draw writes a complete SVG map of the catalogue's served stops and
// non-empty bus routes to out.
func (r *Renderer) Draw(out io.Writer) error {
	servedCoords := r.servedStopCoordinates()
	sp := NewSphereProjector(servedCoords, r.settings.Width, r.settings.Height, r.settings.Padding)

	stops := r.renderStops(sp)
	routes := r.renderRoutes(sp)

	var doc svg.Document
	fillDocument(&doc, stops, routes)
	return doc.Render(out)
}

func (r *Renderer) servedStopCoordinates() []geo.Coordinates {
	var coords []geo.Coordinates
	for _, stop := range r.cat.AllStops() {
		buses, err := r.cat.BusesForStop(stop.Name)
		if err == nil && len(buses) > 0 {
			coords = append(coords, stop.Coordinates)
		}
	}
	return coords
}

// renderStops returns one stopRender per stop served by at least one
// bus, sorted by name for deterministic output.
func (r *Renderer) renderStops(sp SphereProjector) []stopRender {
	type namedStop struct {
		idx  int
		stop catalogue.Stop
	}
	all := r.cat.AllStops()
	var served []namedStop
	for i, stop := range all {
		buses, err := r.cat.BusesForStop(stop.Name)
		if err == nil && len(buses) > 0 {
			served = append(served, namedStop{idx: i, stop: stop})
		}
	}
	sort.Slice(served, func(i, j int) bool { return served[i].stop.Name < served[j].stop.Name })

	rs := r.settings
	renders := make([]stopRender, 0, len(served))
	for _, s := range served {
		pt := sp.Project(s.stop.Coordinates)

		circle := svg.NewCircle().SetCenter(pt).SetRadius(rs.StopRadius)
		circle.SetFillColor(svg.Named("white"))

		label := svg.NewText().SetPosition(pt).SetData(s.stop.Name).
			SetOffset(svg.Point{X: rs.StopLabelOffset.X, Y: rs.StopLabelOffset.Y}).
			SetFontSize(uint32(rs.StopLabelFontSize)).SetFontFamily("Verdana")
		label.SetFillColor(svg.Named("black"))

		underlayer := svg.NewText().SetPosition(pt).SetData(s.stop.Name).
			SetOffset(svg.Point{X: rs.StopLabelOffset.X, Y: rs.StopLabelOffset.Y}).
			SetFontSize(uint32(rs.StopLabelFontSize)).SetFontFamily("Verdana")
		underlayer.SetFillColor(rs.UnderlayerColor)
		underlayer.SetStrokeColor(rs.UnderlayerColor)
		underlayer.SetStrokeWidth(rs.UnderlayerWidth)
		underlayer.SetStrokeLineCap(svg.LineCapRound)
		underlayer.SetStrokeLineJoin(svg.LineJoinRound)

		renders = append(renders, stopRender{
			name:          s.stop.Name,
			circle:        circle,
			label:         label,
			labelUnderlay: underlayer,
		})
	}
	return renders
}

// renderRoutes returns one routeRender per non-empty bus, sorted by
// name, cycling through the configured color palette.
func (r *Renderer) renderRoutes(sp SphereProjector) []routeRender {
	buses := append([]catalogue.Bus(nil), r.cat.AllBuses()...)
	sort.Slice(buses, func(i, j int) bool { return buses[i].Name < buses[j].Name })

	rs := r.settings
	renders := make([]routeRender, 0, len(buses))
	if len(rs.ColorPalette) == 0 {
		return renders
	}

	colorIdx := 0
	for _, bus := range buses {
		if len(bus.ExpandedRoute) == 0 {
			continue
		}
		color := rs.ColorPalette[colorIdx]
		colorIdx = (colorIdx + 1) % len(rs.ColorPalette)

		poly := svg.NewPolyline()
		for _, stopID := range bus.ExpandedRoute {
			stop := r.cat.Stop(stopID)
			poly.AddPoint(sp.Project(stop.Coordinates))
		}
		poly.SetStrokeWidth(rs.LineWidth)
		poly.SetStrokeColor(color)
		poly.SetStrokeLineCap(svg.LineCapRound)
		poly.SetStrokeLineJoin(svg.LineJoinRound)
		poly.SetFillColor(svg.None)

		startStop := r.cat.Stop(bus.ExpandedRoute[0])
		rr := routeRender{
			polyline:        poly,
			startName:       r.routeName(startStop.Coordinates, bus.Name, color, sp),
			startUnderlayer: r.routeUnderlayer(startStop.Coordinates, bus.Name, sp),
		}

		if bus.RawRoute[0] != bus.Terminal {
			midStop := r.cat.Stop(bus.ExpandedRoute[len(bus.ExpandedRoute)/2])
			rr.hasEnd = true
			rr.endName = r.routeName(midStop.Coordinates, bus.Name, color, sp)
			rr.endUnderlayer = r.routeUnderlayer(midStop.Coordinates, bus.Name, sp)
		}

		renders = append(renders, rr)
	}
	return renders
}

func (r *Renderer) routeName(coords geo.Coordinates, busName string, color svg.Color, sp SphereProjector) *svg.Text {
	rs := r.settings
	t := svg.NewText().SetPosition(sp.Project(coords)).SetData(busName).
		SetOffset(svg.Point{X: rs.BusLabelOffset.X, Y: rs.BusLabelOffset.Y}).
		SetFontSize(uint32(rs.BusLabelFontSize)).SetFontFamily("Verdana").SetFontWeight("bold")
	t.SetFillColor(color)
	return t
}

func (r *Renderer) routeUnderlayer(coords geo.Coordinates, busName string, sp SphereProjector) *svg.Text {
	rs := r.settings
	t := svg.NewText().SetPosition(sp.Project(coords)).SetData(busName).
		SetOffset(svg.Point{X: rs.BusLabelOffset.X, Y: rs.BusLabelOffset.Y}).
		SetFontSize(uint32(rs.BusLabelFontSize)).SetFontFamily("Verdana").SetFontWeight("bold")
	t.SetFillColor(rs.UnderlayerColor)
	t.SetStrokeColor(rs.UnderlayerColor)
	t.SetStrokeWidth(rs.UnderlayerWidth)
	t.SetStrokeLineCap(svg.LineCapRound)
	t.SetStrokeLineJoin(svg.LineJoinRound)
	return t
}

// fillDocument adds objects in the original layering order: all route
// polylines first, then route labels, then stop circles, then stop
// labels — so routes never occlude stop markers.
func fillDocument(doc *svg.Document, stops []stopRender, routes []routeRender) {
	for _, route := range routes {
		doc.Add(route.polyline)
	}
	for _, route := range routes {
		doc.Add(route.startUnderlayer)
		doc.Add(route.startName)
		if route.hasEnd {
			doc.Add(route.endUnderlayer)
			doc.Add(route.endName)
		}
	}
	for _, stop := range stops {
		doc.Add(stop.circle)
	}
	for _, stop := range stops {
		doc.Add(stop.labelUnderlay)
		doc.Add(stop.label)
	}
}
