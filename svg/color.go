package svg

import "fmt"

// Color is a closed tagged union: none, a named color, an RGB triple,
// or an RGBA triple. The zero (nil) Color is not None: a nil fill or
// stroke leaves the attribute out, while None renders it as "none".
type Color interface {
	isColor()
	attrValue() string
}

type noneColor struct{}

func (noneColor) isColor()          {}
func (noneColor) attrValue() string { return "none" }

// None renders as the literal string "none".
var None Color = noneColor{}

// Named is a CSS color keyword or any other string the SVG consumer
// accepts verbatim (e.g. "red", "#ff0000").
type Named string

func (Named) isColor()            {}
func (n Named) attrValue() string { return string(n) }

// RGB is an opaque 8-bit-per-channel color.
type RGB struct {
	Red, Green, Blue uint8
}

func (RGB) isColor() {}
func (c RGB) attrValue() string {
	return fmt.Sprintf("rgb(%d,%d,%d)", c.Red, c.Green, c.Blue)
}

// RGBA is an RGB color with a floating-point opacity in [0, 1].
type RGBA struct {
	Red, Green, Blue uint8
	Opacity          float64
}

func (RGBA) isColor() {}
func (c RGBA) attrValue() string {
	return fmt.Sprintf("rgba(%d,%d,%d,%v)", c.Red, c.Green, c.Blue, c.Opacity)
}
