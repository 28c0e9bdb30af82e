package export

import (
	"encoding/xml"
	"fmt"
	"strconv"
	"strings"

	"ShapeBoard/internal/state"
)

const svgNS = "http://www.w3.org/2000/svg"

// MarshalSVG renders the shapes as a standalone SVG document of w x h units.
// Draggable shapes carry class="draggable" and their ID in data-id so a
// browser can route pointer events back to them.
func MarshalSVG(shapes []state.Shape, w, h float64) string {
	var b strings.Builder
	fmt.Fprintf(&b, `<svg xmlns="%s" width="%s" height="%s" viewBox="0 0 %s %s">`,
		svgNS, num(w), num(h), num(w), num(h))
	for _, s := range shapes {
		writeShape(&b, s)
	}
	b.WriteString(`</svg>`)
	return b.String()
}

func writeShape(b *strings.Builder, s state.Shape) {
	switch s.Kind {
	case state.KindRect:
		fmt.Fprintf(b, `<rect x="%s" y="%s" width="%s" height="%s" fill="%s"`,
			num(s.X), num(s.Y), num(s.Width), num(s.Height), attr(s.Fill))
	case state.KindCircle:
		fmt.Fprintf(b, `<circle cx="%s" cy="%s" r="%s" fill="%s"`,
			num(s.CX), num(s.CY), num(s.R), attr(s.Fill))
	case state.KindLine:
		fmt.Fprintf(b, `<line x1="%s" y1="%s" x2="%s" y2="%s" stroke="%s" stroke-width="%s"`,
			num(s.X1), num(s.Y1), num(s.X2), num(s.Y2), attr(s.Stroke), num(s.StrokeWidth))
	default:
		return
	}
	if s.Draggable {
		b.WriteString(` class="draggable"`)
	}
	fmt.Fprintf(b, ` data-id="%s"/>`, attr(s.ID))
}

func num(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

func attr(s string) string {
	var b strings.Builder
	_ = xml.EscapeText(&b, []byte(s))
	return b.String()
}
