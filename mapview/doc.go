// Package mapview renders a catalogue.Catalogue to an svg.Document: a
// SphereProjector maps geographic coordinates onto a bounded canvas,
// and a Renderer lays down bus routes (as polylines with start/end
// labels) under stop markers (as circles with name labels), in that
// layer order so routes never occlude stops.
//
// Grounded on the original source's SphereProjector and MapRenderer
// (map_renderer.h/.cpp): only stops served by at least one bus are
// drawn, routes and stops are rendered in name-sorted order for
// deterministic output, and bus colors cycle through a configured
// palette.
package mapview
