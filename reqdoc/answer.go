package reqdoc

// Answer is one element of the output array, keyed by request_id so a
// caller can match answers back to their stat_requests entry.
type Answer struct {
	RequestID     int          `json:"request_id"`
	ErrorMessage  string       `json:"error_message,omitempty"`
	Buses         []string     `json:"buses,omitempty"`
	Curvature     *float64     `json:"curvature,omitempty"`
	RouteLength   *float64     `json:"route_length,omitempty"`
	StopCount     *int         `json:"stop_count,omitempty"`
	UniqueCount   *int         `json:"unique_stop_count,omitempty"`
	Map           *string      `json:"map,omitempty"`
	TotalTime     *float64     `json:"total_time,omitempty"`
	Items         []RouteItem  `json:"items,omitempty"`
}

// RouteItem is one leg of a Route answer: either {"type":"Wait",
// "stop_name", "time"} or {"type":"Bus", "bus", "span_count", "time"}.
type RouteItem struct {
	Type      string  `json:"type"`
	StopName  string  `json:"stop_name,omitempty"`
	Bus       string  `json:"bus,omitempty"`
	SpanCount int     `json:"span_count,omitempty"`
	Time      float64 `json:"time"`
}

func notFound(id int) Answer {
	return Answer{RequestID: id, ErrorMessage: "not found"}
}
