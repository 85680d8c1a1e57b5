package reqdoc

import "encoding/json"

// Document is the top-level request document read on stdin by both
// subcommands: make_base needs BaseRequests/RoutingSettings/
// RenderSettings, process_requests needs StatRequests. Both need
// SerializationSettings to locate the snapshot file.
type Document struct {
	SerializationSettings SerializationSettings `json:"serialization_settings"`
	BaseRequests          []BaseRequest         `json:"base_requests,omitempty"`
	RoutingSettings       RoutingSettings       `json:"routing_settings,omitempty"`
	RenderSettings        RenderSettings        `json:"render_settings,omitempty"`
	StatRequests          []StatRequest         `json:"stat_requests,omitempty"`
}

// SerializationSettings names the snapshot file both subcommands share.
type SerializationSettings struct {
	File string `json:"file"`
}

// RoutingSettings configures the router (spec §4.4).
type RoutingSettings struct {
	BusVelocityKMH float64 `json:"bus_velocity"`
	BusWaitTimeMin int     `json:"bus_wait_time"`
}

// RenderSettings configures the map renderer. Offsets are 2-element
// [dx, dy] arrays on the wire; colors are either a string or a
// 3/4-element numeric array (see Color).
type RenderSettings struct {
	Width             float64   `json:"width"`
	Height            float64   `json:"height"`
	Padding           float64   `json:"padding"`
	LineWidth         float64   `json:"line_width"`
	StopRadius        float64   `json:"stop_radius"`
	UnderlayerWidth   float64   `json:"underlayer_width"`
	BusLabelFontSize  int       `json:"bus_label_font_size"`
	StopLabelFontSize int       `json:"stop_label_font_size"`
	BusLabelOffset    [2]float64 `json:"bus_label_offset"`
	StopLabelOffset   [2]float64 `json:"stop_label_offset"`
	UnderlayerColor   Color     `json:"underlayer_color"`
	ColorPalette      []Color   `json:"color_palette"`
}

// BaseRequest is one element of base_requests: either a Stop or a Bus,
// discriminated by Type. Fields not applicable to the request's type
// are simply absent from the JSON and left zero.
type BaseRequest struct {
	Type          string             `json:"type"`
	Name          string             `json:"name"`
	Latitude      float64            `json:"latitude,omitempty"`
	Longitude     float64            `json:"longitude,omitempty"`
	RoadDistances map[string]float64 `json:"road_distances,omitempty"`
	Stops         []string           `json:"stops,omitempty"`
	IsRoundtrip   bool               `json:"is_roundtrip,omitempty"`
}

// StatRequest is one element of stat_requests: a query the answer
// document must resolve in order, tagged by its numeric ID.
type StatRequest struct {
	ID   int    `json:"id"`
	Type string `json:"type"`
	Name string `json:"name,omitempty"`
	From string `json:"from,omitempty"`
	To   string `json:"to,omitempty"`
}

// Color decodes the three wire shapes json_reader.cpp accepts: a
// string (named color), a 3-element array (RGB), or a 4-element array
// (RGBA).
type Color struct {
	Named    string
	HasRGB   bool
	R, G, B  float64
	HasAlpha bool
	A        float64
}

func (c *Color) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		c.Named = s
		return nil
	}

	var arr []float64
	if err := json.Unmarshal(data, &arr); err != nil {
		return err
	}
	switch len(arr) {
	case 3:
		c.HasRGB = true
		c.R, c.G, c.B = arr[0], arr[1], arr[2]
	case 4:
		c.HasRGB = true
		c.HasAlpha = true
		c.R, c.G, c.B, c.A = arr[0], arr[1], arr[2], arr[3]
	}
	return nil
}

func (c Color) MarshalJSON() ([]byte, error) {
	switch {
	case c.HasAlpha:
		return json.Marshal([]float64{c.R, c.G, c.B, c.A})
	case c.HasRGB:
		return json.Marshal([]float64{c.R, c.G, c.B})
	default:
		return json.Marshal(c.Named)
	}
}
