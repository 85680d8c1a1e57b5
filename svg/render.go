package svg

import (
	"fmt"
	"io"
	"strconv"
	"strings"
)

// xmlWriter accumulates an SVG element's opening tag attributes and
// body, keeping float formatting consistent across shape kinds.
type xmlWriter struct {
	out io.Writer
}

func (w *xmlWriter) attr(name, value string) {
	fmt.Fprintf(w.out, " %s=\"%s\"", name, value)
}

func (w *xmlWriter) attrFloat(name string, value float64) {
	w.attr(name, strconv.FormatFloat(value, 'g', -1, 64))
}

// Render writes the document as a complete SVG document to out.
func (d *Document) Render(out io.Writer) error {
	if _, err := io.WriteString(out, xmlHeader); err != nil {
		return err
	}
	w := &xmlWriter{out: out}
	for _, obj := range d.objects {
		obj.render(w)
	}
	if _, err := io.WriteString(out, "</svg>"); err != nil {
		return err
	}
	return nil
}

const xmlHeader = `<?xml version="1.0" encoding="UTF-8" ?>` + "\n" +
	`<svg xmlns="http://www.w3.org/2000/svg" version="1.1">` + "\n"

// escapeText applies the five-entity XML escaping the original
// renderer performs on <text> content: ", ', <, >, & in that
// precedence order (spec design note: mirrors svg::Text::Shielding).
func escapeText(s string) string {
	var b strings.Builder
	for _, r := range s {
		switch r {
		case '"':
			b.WriteString("&quot;")
		case '\'':
			b.WriteString("&apos;")
		case '<':
			b.WriteString("&lt;")
		case '>':
			b.WriteString("&gt;")
		case '&':
			b.WriteString("&amp;")
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}
