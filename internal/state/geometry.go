package state

import "math"

// hitSlop widens thin lines so they can still be picked.
const hitSlop = 2

// Area is an axis-aligned rectangle in canvas space.
type Area struct {
	X      float64
	Y      float64
	Width  float64
	Height float64
}

func (a Area) Contains(p Point) bool {
	return p.X >= a.X && p.X <= a.X+a.Width &&
		p.Y >= a.Y && p.Y <= a.Y+a.Height
}

// Bounds returns the bounding box of the shape.
func (s Shape) Bounds() Area {
	switch s.Kind {
	case KindRect:
		return Area{X: s.X, Y: s.Y, Width: s.Width, Height: s.Height}
	case KindCircle:
		return Area{X: s.CX - s.R, Y: s.CY - s.R, Width: 2 * s.R, Height: 2 * s.R}
	case KindLine:
		pad := s.StrokeWidth / 2
		return Area{
			X:      math.Min(s.X1, s.X2) - pad,
			Y:      math.Min(s.Y1, s.Y2) - pad,
			Width:  math.Abs(s.X2-s.X1) + 2*pad,
			Height: math.Abs(s.Y2-s.Y1) + 2*pad,
		}
	}
	return Area{}
}

// Contains reports whether p lies on the painted area of the shape.
func (s Shape) Contains(p Point) bool {
	switch s.Kind {
	case KindRect:
		return s.Bounds().Contains(p)
	case KindCircle:
		dx, dy := p.X-s.CX, p.Y-s.CY
		return dx*dx+dy*dy <= s.R*s.R
	case KindLine:
		return segmentDistance(p, Point{s.X1, s.Y1}, Point{s.X2, s.Y2}) <= s.StrokeWidth/2+hitSlop
	}
	return false
}

func segmentDistance(p, a, b Point) float64 {
	d := b.Sub(a)
	lenSq := d.X*d.X + d.Y*d.Y
	if lenSq == 0 {
		return math.Hypot(p.X-a.X, p.Y-a.Y)
	}
	t := ((p.X-a.X)*d.X + (p.Y-a.Y)*d.Y) / lenSq
	t = math.Max(0, math.Min(1, t))
	return math.Hypot(p.X-(a.X+t*d.X), p.Y-(a.Y+t*d.Y))
}
