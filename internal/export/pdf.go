package export

import (
	"errors"
	"fmt"
	"io"

	"github.com/jung-kurt/gofpdf"

	"ShapeBoard/internal/state"
)

// WritePDF writes the shapes as a single vector page of pageW x pageH points,
// one canvas unit per point.
func WritePDF(w io.Writer, shapes []state.Shape, pageW, pageH float64) error {
	if pageW <= 0 || pageH <= 0 {
		return errors.New("export: pdf page size must be positive")
	}
	orientation := "P"
	if pageW > pageH {
		orientation = "L"
	}
	p := gofpdf.NewCustom(&gofpdf.InitType{
		OrientationStr: orientation,
		UnitStr:        "pt",
		Size:           gofpdf.SizeType{Wd: pageW, Ht: pageH},
	})
	p.SetAutoPageBreak(false, 0)
	p.AddPage()

	for _, s := range shapes {
		switch s.Kind {
		case state.KindRect:
			c := state.ToNRGBA(s.Fill)
			p.SetFillColor(int(c.R), int(c.G), int(c.B))
			p.Rect(s.X, s.Y, s.Width, s.Height, "F")
		case state.KindCircle:
			c := state.ToNRGBA(s.Fill)
			p.SetFillColor(int(c.R), int(c.G), int(c.B))
			p.Circle(s.CX, s.CY, s.R, "F")
		case state.KindLine:
			c := state.ToNRGBA(s.Stroke)
			p.SetDrawColor(int(c.R), int(c.G), int(c.B))
			p.SetLineWidth(s.StrokeWidth)
			p.Line(s.X1, s.Y1, s.X2, s.Y2)
		}
	}

	if err := p.Output(w); err != nil {
		return fmt.Errorf("export: write pdf: %w", err)
	}
	return nil
}
