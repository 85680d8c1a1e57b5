package snapshot

// Field tags are stable ordinals: never renumber an existing tag, only
// append new ones. Every encoded field is framed as (tag byte, varint
// length, payload); the decoders in this package do not skip tags they
// don't recognize (see doc.go).
const (
	tagStopName byte = iota + 1
	tagStopLat
	tagStopLng

	tagDistFrom
	tagDistTo
	tagDistMeters

	tagBusName
	tagBusRoundtrip
	tagBusRawRoute
	tagBusExpandedRoute
	tagBusTerminal
	tagBusStatStopCount
	tagBusStatUniqueStops
	tagBusStatRoadLength
	tagBusStatCurvature

	tagRoutingVelocity
	tagRoutingWaitTime

	tagRenderWidth
	tagRenderHeight
	tagRenderPadding
	tagRenderLineWidth
	tagRenderStopRadius
	tagRenderUnderlayerWidth
	tagRenderBusLabelFontSize
	tagRenderStopLabelFontSize
	tagRenderBusLabelOffsetX
	tagRenderBusLabelOffsetY
	tagRenderStopLabelOffsetX
	tagRenderStopLabelOffsetY
	tagRenderUnderlayerColor
	tagRenderPaletteColor

	tagColorKind
	tagColorName
	tagColorRed
	tagColorGreen
	tagColorBlue
	tagColorOpacity

	tagGraphVertexCount
	tagGraphEdgeFrom
	tagGraphEdgeTo
	tagGraphEdgeWeight

	tagTableReachable
	tagTableWeight
	tagTablePrevEdge
	tagTableHasPrev

	tagVertexCounter
	tagVertexIn
	tagVertexOut

	tagWaitEdgeID
	tagWaitStop
	tagWaitTime

	tagRideEdgeID
	tagRideBus
	tagRideSpanCount
	tagRideTime
)

// colorKind values distinguish svg.Color's four variants on the wire.
const (
	colorKindNone byte = iota
	colorKindNamed
	colorKindRGB
	colorKindRGBA
)
