package reqdoc

import (
	"github.com/lvl-transit/transitway/mapview"
	"github.com/lvl-transit/transitway/svg"
	"github.com/lvl-transit/transitway/transit"
)

// ToTransitSettings converts wire routing settings into transit.Settings.
func (s RoutingSettings) ToTransitSettings() transit.Settings {
	return transit.Settings{BusVelocityKMH: s.BusVelocityKMH, BusWaitTimeMin: s.BusWaitTimeMin}
}

// ToSVGColor converts a decoded Color into an svg.Color. An empty,
// all-zero Color (no name, no RGB) decodes to svg.None.
func (c Color) ToSVGColor() svg.Color {
	switch {
	case c.HasAlpha:
		return svg.RGBA{Red: uint8(c.R), Green: uint8(c.G), Blue: uint8(c.B), Opacity: c.A}
	case c.HasRGB:
		return svg.RGB{Red: uint8(c.R), Green: uint8(c.G), Blue: uint8(c.B)}
	case c.Named != "":
		return svg.Named(c.Named)
	default:
		return svg.None
	}
}

// ToMapviewSettings converts wire render settings into
// mapview.RenderSettings.
func (s RenderSettings) ToMapviewSettings() mapview.RenderSettings {
	palette := make([]svg.Color, len(s.ColorPalette))
	for i, c := range s.ColorPalette {
		palette[i] = c.ToSVGColor()
	}
	return mapview.RenderSettings{
		Width:             s.Width,
		Height:            s.Height,
		Padding:           s.Padding,
		LineWidth:         s.LineWidth,
		StopRadius:        s.StopRadius,
		UnderlayerWidth:   s.UnderlayerWidth,
		BusLabelFontSize:  s.BusLabelFontSize,
		StopLabelFontSize: s.StopLabelFontSize,
		BusLabelOffset:    mapview.Offset{X: s.BusLabelOffset[0], Y: s.BusLabelOffset[1]},
		StopLabelOffset:   mapview.Offset{X: s.StopLabelOffset[0], Y: s.StopLabelOffset[1]},
		UnderlayerColor:   s.UnderlayerColor.ToSVGColor(),
		ColorPalette:      palette,
	}
}
