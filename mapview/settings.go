package mapview

import "github.com/lvl-transit/transitway/svg"

// Offset is a label offset in SVG user units, applied as dx/dy.
type Offset struct {
	X, Y float64
}

// RenderSettings configures map layout and styling. Mirrors the
// original source's RendererSettings one field at a time.
type RenderSettings struct {
	Width, Height         float64
	Padding               float64
	LineWidth             float64
	StopRadius            float64
	UnderlayerWidth       float64
	BusLabelFontSize      int
	StopLabelFontSize     int
	BusLabelOffset        Offset
	StopLabelOffset       Offset
	UnderlayerColor       svg.Color
	ColorPalette          []svg.Color
}
