package svg_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/lvl-transit/transitway/svg"
)

func TestCircleRendersAttributes(t *testing.T) {
	require := require.New(t)

	var doc svg.Document
	c := svg.NewCircle().SetCenter(svg.Point{X: 10, Y: 20}).SetRadius(5)
	c.SetFillColor(svg.Named("red"))
	doc.Add(c)

	var sb strings.Builder
	require.NoError(doc.Render(&sb))
	out := sb.String()

	require.Contains(out, `cx="10"`)
	require.Contains(out, `cy="20"`)
	require.Contains(out, `r="5"`)
	require.Contains(out, `fill="red"`)
}

func TestPolylinePoints(t *testing.T) {
	require := require.New(t)

	var doc svg.Document
	p := svg.NewPolyline().AddPoint(svg.Point{X: 0, Y: 0}).AddPoint(svg.Point{X: 1, Y: 2})
	doc.Add(p)

	var sb strings.Builder
	require.NoError(doc.Render(&sb))
	require.Contains(sb.String(), `points="0,0 1,2"`)
}

func TestTextEscaping(t *testing.T) {
	require := require.New(t)

	var doc svg.Document
	text := svg.NewText().SetData(`<a & "b"> 'c'`)
	doc.Add(text)

	var sb strings.Builder
	require.NoError(doc.Render(&sb))
	require.Contains(sb.String(), "&lt;a &amp; &quot;b&quot;&gt; &apos;c&apos;")
}

func TestRGBAColor(t *testing.T) {
	require := require.New(t)
	var doc svg.Document
	c := svg.NewCircle()
	c.SetStrokeColor(svg.RGBA{Red: 1, Green: 2, Blue: 3, Opacity: 0.5})
	doc.Add(c)

	var sb strings.Builder
	require.NoError(doc.Render(&sb))
	require.Contains(sb.String(), `stroke="rgba(1,2,3,0.5)"`)
}
