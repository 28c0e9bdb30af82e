package drag

import "ShapeBoard/internal/state"

// Transform is the screen transform of the canvas: scale (A, D) followed by
// translation (E, F). Skew is not supported.
type Transform struct {
	A float64 `json:"a"`
	D float64 `json:"d"`
	E float64 `json:"e"`
	F float64 `json:"f"`
}

// Identity maps screen coordinates straight onto canvas coordinates.
var Identity = Transform{A: 1, D: 1}

// Pan returns a transform for a view scaled by scale and panned by (x, y).
func Pan(x, y, scale float64) Transform {
	return Transform{A: scale, D: scale, E: x, F: y}
}

// ToCanvas maps a screen point into canvas space. A zero scale component is
// treated as 1.
func (t Transform) ToCanvas(p state.Point) state.Point {
	a, d := t.A, t.D
	if a == 0 {
		a = 1
	}
	if d == 0 {
		d = 1
	}
	return state.Point{X: (p.X - t.E) / a, Y: (p.Y - t.F) / d}
}

// ToScreen is the inverse of ToCanvas.
func (t Transform) ToScreen(p state.Point) state.Point {
	a, d := t.A, t.D
	if a == 0 {
		a = 1
	}
	if d == 0 {
		d = 1
	}
	return state.Point{X: p.X*a + t.E, Y: p.Y*d + t.F}
}
