package snapshot

import (
	"bytes"
	"fmt"

	"github.com/lvl-transit/transitway/mapview"
	"github.com/lvl-transit/transitway/svg"
	"github.com/lvl-transit/transitway/transit"
)

func encodeRoutingSettings(buf *bytes.Buffer, s transit.Settings) {
	writeFloatField(buf, tagRoutingVelocity, s.BusVelocityKMH)
	writeVarintField(buf, tagRoutingWaitTime, uint64(s.BusWaitTimeMin))
}

func decodeRoutingSettings(r *bytes.Reader) (transit.Settings, error) {
	var s transit.Settings
	for need := 2; need > 0; need-- {
		f, err := readField(r)
		if err != nil {
			return s, err
		}
		switch f.tag {
		case tagRoutingVelocity:
			v, err := f.asFloat64()
			if err != nil {
				return s, err
			}
			s.BusVelocityKMH = v
		case tagRoutingWaitTime:
			v, err := f.asUvarint()
			if err != nil {
				return s, err
			}
			s.BusWaitTimeMin = int(v)
		}
	}
	return s, nil
}

func encodeRenderSettings(buf *bytes.Buffer, s mapview.RenderSettings) {
	writeFloatField(buf, tagRenderWidth, s.Width)
	writeFloatField(buf, tagRenderHeight, s.Height)
	writeFloatField(buf, tagRenderPadding, s.Padding)
	writeFloatField(buf, tagRenderLineWidth, s.LineWidth)
	writeFloatField(buf, tagRenderStopRadius, s.StopRadius)
	writeFloatField(buf, tagRenderUnderlayerWidth, s.UnderlayerWidth)
	writeVarintField(buf, tagRenderBusLabelFontSize, uint64(s.BusLabelFontSize))
	writeVarintField(buf, tagRenderStopLabelFontSize, uint64(s.StopLabelFontSize))
	writeFloatField(buf, tagRenderBusLabelOffsetX, s.BusLabelOffset.X)
	writeFloatField(buf, tagRenderBusLabelOffsetY, s.BusLabelOffset.Y)
	writeFloatField(buf, tagRenderStopLabelOffsetX, s.StopLabelOffset.X)
	writeFloatField(buf, tagRenderStopLabelOffsetY, s.StopLabelOffset.Y)
	encodeColor(buf, tagRenderUnderlayerColor, s.UnderlayerColor)

	var paletteBuf bytes.Buffer
	writeCount(&paletteBuf, len(s.ColorPalette))
	for _, c := range s.ColorPalette {
		encodeColor(&paletteBuf, tagRenderPaletteColor, c)
	}
	writeField(buf, tagRenderPaletteColor, paletteBuf.Bytes())
}

func decodeRenderSettings(r *bytes.Reader) (mapview.RenderSettings, error) {
	var s mapview.RenderSettings
	for need := 14; need > 0; need-- {
		f, err := readField(r)
		if err != nil {
			return s, err
		}
		switch f.tag {
		case tagRenderWidth:
			s.Width, err = f.asFloat64()
		case tagRenderHeight:
			s.Height, err = f.asFloat64()
		case tagRenderPadding:
			s.Padding, err = f.asFloat64()
		case tagRenderLineWidth:
			s.LineWidth, err = f.asFloat64()
		case tagRenderStopRadius:
			s.StopRadius, err = f.asFloat64()
		case tagRenderUnderlayerWidth:
			s.UnderlayerWidth, err = f.asFloat64()
		case tagRenderBusLabelFontSize:
			var v uint64
			v, err = f.asUvarint()
			s.BusLabelFontSize = int(v)
		case tagRenderStopLabelFontSize:
			var v uint64
			v, err = f.asUvarint()
			s.StopLabelFontSize = int(v)
		case tagRenderBusLabelOffsetX:
			s.BusLabelOffset.X, err = f.asFloat64()
		case tagRenderBusLabelOffsetY:
			s.BusLabelOffset.Y, err = f.asFloat64()
		case tagRenderStopLabelOffsetX:
			s.StopLabelOffset.X, err = f.asFloat64()
		case tagRenderStopLabelOffsetY:
			s.StopLabelOffset.Y, err = f.asFloat64()
		case tagRenderUnderlayerColor:
			s.UnderlayerColor, err = decodeColorPayload(f.payload)
		case tagRenderPaletteColor:
			s.ColorPalette, err = decodeColorList(f.payload)
		default:
			return s, fmt.Errorf("snapshot: unexpected render setting tag %d", f.tag)
		}
		if err != nil {
			return s, err
		}
	}
	return s, nil
}

func decodeColorList(payload []byte) ([]svg.Color, error) {
	r := bytes.NewReader(payload)
	n, err := readCount(r)
	if err != nil {
		return nil, err
	}
	colors := make([]svg.Color, 0, n)
	for i := 0; i < n; i++ {
		f, err := readField(r)
		if err != nil {
			return nil, err
		}
		c, err := decodeColorPayload(f.payload)
		if err != nil {
			return nil, err
		}
		colors = append(colors, c)
	}
	return colors, nil
}
