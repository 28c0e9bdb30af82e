package state

import (
	"github.com/google/uuid"
)

// Point is a position in canvas coordinate space.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

func (p Point) Sub(q Point) Point { return Point{X: p.X - q.X, Y: p.Y - q.Y} }
func (p Point) Add(q Point) Point { return Point{X: p.X + q.X, Y: p.Y + q.Y} }

type Kind string

const (
	KindRect   Kind = "rect"
	KindCircle Kind = "circle"
	KindLine   Kind = "line"
)

// Shape is one element on the board. Only the fields belonging to Kind are
// meaningful; the rest stay zero and are omitted from snapshots.
type Shape struct {
	ID        string `json:"id"`
	Kind      Kind   `json:"kind"`
	Draggable bool   `json:"draggable,omitempty"`

	// rect
	X      float64 `json:"x,omitempty"`
	Y      float64 `json:"y,omitempty"`
	Width  float64 `json:"width,omitempty"`
	Height float64 `json:"height,omitempty"`

	// circle
	CX float64 `json:"cx,omitempty"`
	CY float64 `json:"cy,omitempty"`
	R  float64 `json:"r,omitempty"`

	// line
	X1 float64 `json:"x1,omitempty"`
	Y1 float64 `json:"y1,omitempty"`
	X2 float64 `json:"x2,omitempty"`
	Y2 float64 `json:"y2,omitempty"`

	Fill        string  `json:"fill,omitempty"`
	Stroke      string  `json:"stroke,omitempty"`
	StrokeWidth float64 `json:"stroke_width,omitempty"`
}

// NewRect returns a draggable rectangle with a fresh ID.
func NewRect(x, y, w, h float64, fill string) Shape {
	return Shape{
		ID:        uuid.NewString(),
		Kind:      KindRect,
		Draggable: true,
		X:         x,
		Y:         y,
		Width:     w,
		Height:    h,
		Fill:      fill,
	}
}

// NewCircle returns a draggable circle with a fresh ID.
func NewCircle(cx, cy, r float64, fill string) Shape {
	return Shape{
		ID:        uuid.NewString(),
		Kind:      KindCircle,
		Draggable: true,
		CX:        cx,
		CY:        cy,
		R:         r,
		Fill:      fill,
	}
}

// NewLine returns a line. Lines are never draggable.
func NewLine(x1, y1, x2, y2 float64, stroke string, width float64) Shape {
	return Shape{
		ID:          uuid.NewString(),
		Kind:        KindLine,
		X1:          x1,
		Y1:          y1,
		X2:          x2,
		Y2:          y2,
		Stroke:      stroke,
		StrokeWidth: width,
	}
}

// Position returns the drag anchor: top-left for rectangles, centre for
// circles, the first endpoint for lines.
func (s Shape) Position() Point {
	switch s.Kind {
	case KindRect:
		return Point{X: s.X, Y: s.Y}
	case KindCircle:
		return Point{X: s.CX, Y: s.CY}
	case KindLine:
		return Point{X: s.X1, Y: s.Y1}
	}
	return Point{}
}

// MoveTo sets the drag anchor. Lines are not repositionable and are left
// untouched.
func (s *Shape) MoveTo(p Point) {
	switch s.Kind {
	case KindRect:
		s.X, s.Y = p.X, p.Y
	case KindCircle:
		s.CX, s.CY = p.X, p.Y
	}
}
