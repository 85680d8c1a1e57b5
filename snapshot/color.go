package snapshot

import (
	"bytes"
	"fmt"

	"github.com/lvl-transit/transitway/svg"
)

// encodeColor writes c's kind-tagged payload wrapped in a single field
// under tag.
func encodeColor(buf *bytes.Buffer, tag byte, c svg.Color) {
	var inner bytes.Buffer
	switch v := c.(type) {
	case svg.Named:
		inner.WriteByte(colorKindNamed)
		inner.WriteString(string(v))
	case svg.RGB:
		inner.WriteByte(colorKindRGB)
		inner.WriteByte(v.Red)
		inner.WriteByte(v.Green)
		inner.WriteByte(v.Blue)
	case svg.RGBA:
		inner.WriteByte(colorKindRGBA)
		inner.WriteByte(v.Red)
		inner.WriteByte(v.Green)
		inner.WriteByte(v.Blue)
		var opacityBuf [8]byte
		putFloat64(opacityBuf[:], v.Opacity)
		inner.Write(opacityBuf[:])
	default:
		// nil or svg.None both serialize as "none".
		inner.WriteByte(colorKindNone)
	}
	writeField(buf, tag, inner.Bytes())
}

func decodeColorPayload(payload []byte) (svg.Color, error) {
	if len(payload) == 0 {
		return svg.None, nil
	}
	kind := payload[0]
	rest := payload[1:]
	switch kind {
	case colorKindNone:
		return svg.None, nil
	case colorKindNamed:
		return svg.Named(string(rest)), nil
	case colorKindRGB:
		if len(rest) != 3 {
			return nil, fmt.Errorf("snapshot: malformed rgb color")
		}
		return svg.RGB{Red: rest[0], Green: rest[1], Blue: rest[2]}, nil
	case colorKindRGBA:
		if len(rest) != 3+8 {
			return nil, fmt.Errorf("snapshot: malformed rgba color")
		}
		return svg.RGBA{
			Red: rest[0], Green: rest[1], Blue: rest[2],
			Opacity: getFloat64(rest[3:11]),
		}, nil
	default:
		return nil, fmt.Errorf("snapshot: unknown color kind %d", kind)
	}
}
