package svg

// Point is a 2D coordinate in SVG user units.
type Point struct {
	X, Y float64
}

// StrokeLineCap is the SVG stroke-linecap attribute value.
type StrokeLineCap int

const (
	LineCapButt StrokeLineCap = iota
	LineCapRound
	LineCapSquare
)

func (c StrokeLineCap) String() string {
	switch c {
	case LineCapRound:
		return "round"
	case LineCapSquare:
		return "square"
	default:
		return "butt"
	}
}

// StrokeLineJoin is the SVG stroke-linejoin attribute value.
type StrokeLineJoin int

const (
	LineJoinArcs StrokeLineJoin = iota
	LineJoinBevel
	LineJoinMiter
	LineJoinMiterClip
	LineJoinRound
)

func (j StrokeLineJoin) String() string {
	switch j {
	case LineJoinBevel:
		return "bevel"
	case LineJoinMiterClip:
		return "miter-clip"
	case LineJoinRound:
		return "round"
	case LineJoinArcs:
		return "arcs"
	default:
		return "miter"
	}
}

// PathProps holds the styling attributes shared by every SVG shape:
// fill, stroke, stroke width and line cap/join. Circle, Polyline and
// Text embed it. Its setters return nothing, so unlike the shapes' own
// setters they are called as separate statements, not chained.
type PathProps struct {
	fill        Color
	stroke      Color
	strokeWidth *float64
	lineCap     *StrokeLineCap
	lineJoin    *StrokeLineJoin
}

func (p *PathProps) SetFillColor(c Color)          { p.fill = c }
func (p *PathProps) SetStrokeColor(c Color)         { p.stroke = c }
func (p *PathProps) SetStrokeWidth(w float64)       { p.strokeWidth = &w }
func (p *PathProps) SetStrokeLineCap(c StrokeLineCap) { p.lineCap = &c }
func (p *PathProps) SetStrokeLineJoin(j StrokeLineJoin) { p.lineJoin = &j }

func (p *PathProps) renderAttrs(w *xmlWriter) {
	if p.fill != nil {
		w.attr("fill", p.fill.attrValue())
	}
	if p.stroke != nil {
		w.attr("stroke", p.stroke.attrValue())
	}
	if p.strokeWidth != nil {
		w.attrFloat("stroke-width", *p.strokeWidth)
	}
	if p.lineCap != nil {
		w.attr("stroke-linecap", p.lineCap.String())
	}
	if p.lineJoin != nil {
		w.attr("stroke-linejoin", p.lineJoin.String())
	}
}

// Object is anything a Document can hold and render as one SVG
// element.
type Object interface {
	render(w *xmlWriter)
}

// Document is an ordered collection of Objects. Objects render in the
// order they were added.
type Document struct {
	objects []Object
}

// Add appends obj to the document.
func (d *Document) Add(obj Object) {
	d.objects = append(d.objects, obj)
}
