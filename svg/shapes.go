package svg

import "strconv"

// Circle renders an SVG <circle>.
type Circle struct {
	PathProps
	center Point
	radius float64
}

// NewCircle returns a Circle with radius 1 centered at the origin.
func NewCircle() *Circle {
	return &Circle{radius: 1}
}

func (c *Circle) SetCenter(p Point) *Circle  { c.center = p; return c }
func (c *Circle) SetRadius(r float64) *Circle { c.radius = r; return c }

func (c *Circle) render(w *xmlWriter) {
	w.out.Write([]byte("<circle"))
	w.attrFloat("cx", c.center.X)
	w.attrFloat("cy", c.center.Y)
	w.attrFloat("r", c.radius)
	c.renderAttrs(w)
	w.out.Write([]byte("/>"))
}

// Polyline renders an SVG <polyline>.
type Polyline struct {
	PathProps
	points []Point
}

// NewPolyline returns an empty Polyline.
func NewPolyline() *Polyline {
	return &Polyline{}
}

// AddPoint appends a vertex to the line.
func (p *Polyline) AddPoint(pt Point) *Polyline {
	p.points = append(p.points, pt)
	return p
}

func (p *Polyline) render(w *xmlWriter) {
	w.out.Write([]byte("<polyline points=\""))
	for i, pt := range p.points {
		if i > 0 {
			w.out.Write([]byte(" "))
		}
		w.out.Write([]byte(strconv.FormatFloat(pt.X, 'g', -1, 64)))
		w.out.Write([]byte(","))
		w.out.Write([]byte(strconv.FormatFloat(pt.Y, 'g', -1, 64)))
	}
	w.out.Write([]byte("\""))
	p.renderAttrs(w)
	w.out.Write([]byte("/>"))
}

// Text renders an SVG <text>.
type Text struct {
	PathProps
	pos        Point
	offset     Point
	fontSize   uint32
	fontFamily string
	fontWeight string
	data       string
}

// NewText returns a Text with font size 1 and no content.
func NewText() *Text {
	return &Text{fontSize: 1}
}

func (t *Text) SetPosition(p Point) *Text        { t.pos = p; return t }
func (t *Text) SetOffset(p Point) *Text          { t.offset = p; return t }
func (t *Text) SetFontSize(size uint32) *Text    { t.fontSize = size; return t }
func (t *Text) SetFontFamily(family string) *Text { t.fontFamily = family; return t }
func (t *Text) SetFontWeight(weight string) *Text { t.fontWeight = weight; return t }
func (t *Text) SetData(data string) *Text        { t.data = data; return t }

func (t *Text) render(w *xmlWriter) {
	w.out.Write([]byte("<text"))
	w.attrFloat("x", t.pos.X)
	w.attrFloat("y", t.pos.Y)
	w.attrFloat("dx", t.offset.X)
	w.attrFloat("dy", t.offset.Y)
	w.attr("font-size", strconv.FormatUint(uint64(t.fontSize), 10))
	if t.fontFamily != "" {
		w.attr("font-family", t.fontFamily)
	}
	if t.fontWeight != "" {
		w.attr("font-weight", t.fontWeight)
	}
	t.renderAttrs(w)
	w.out.Write([]byte(">"))
	w.out.Write([]byte(escapeText(t.data)))
	w.out.Write([]byte("</text>"))
}
