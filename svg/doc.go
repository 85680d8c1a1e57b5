// Package svg is a minimal SVG 1.1 object model: a Document holds an
// ordered list of Objects (Circle, Polyline, Text), each able to render
// itself as an XML element. Styling (fill, stroke, stroke width,
// line cap/join) is shared across object kinds via embeddable
// PathProps.
//
// Color is a closed tagged union mirroring the renderer's four SVG
// color forms: the literal "none", a named CSS color, an rgb(...)
// triple, or an rgba(...) triple with opacity — grounded on the
// original source's svg::Color std::variant. A nil Color leaves the
// attribute out entirely.
package svg
