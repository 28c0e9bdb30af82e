package ui

import (
	"image/color"
	"math"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"

	"ShapeBoard/internal/drag"
)

const (
	minScale    = 0.3
	maxScale    = 3.0
	zoomStep    = 1.2
	gridSpacing = 50.0
)

// view is the pan/zoom state of the board widget. Screen = canvas*scale + pan.
type view struct {
	panX, panY float32
	scale      float32
	showGrid   bool
}

func newView() view {
	return view{scale: 1, showGrid: true}
}

func (v view) transform() drag.Transform {
	return drag.Pan(float64(v.panX), float64(v.panY), float64(v.scale))
}

func (v *view) pan(dx, dy float32) {
	v.panX += dx
	v.panY += dy
}

// zoomAt scales by factor while keeping the canvas point under at fixed.
func (v *view) zoomAt(at fyne.Position, factor float32) {
	next := v.scale * factor
	if next > maxScale {
		next = maxScale
	}
	if next < minScale {
		next = minScale
	}
	cx := (at.X - v.panX) / v.scale
	cy := (at.Y - v.panY) / v.scale
	v.scale = next
	v.panX = at.X - cx*next
	v.panY = at.Y - cy*next
}

func (v *view) reset() {
	v.panX, v.panY, v.scale = 0, 0, 1
}

func (v view) gridLines(size fyne.Size) []fyne.CanvasObject {
	if !v.showGrid {
		return nil
	}
	var lines []fyne.CanvasObject
	gridColor := color.NRGBA{R: 220, G: 220, B: 220, A: 100}
	step := gridSpacing * v.scale
	startX := mod(v.panX, step)
	startY := mod(v.panY, step)

	for x := startX; x < size.Width; x += step {
		line := canvas.NewLine(gridColor)
		line.Position1 = fyne.NewPos(x, 0)
		line.Position2 = fyne.NewPos(x, size.Height)
		line.StrokeWidth = 0.5
		lines = append(lines, line)
	}
	for y := startY; y < size.Height; y += step {
		line := canvas.NewLine(gridColor)
		line.Position1 = fyne.NewPos(0, y)
		line.Position2 = fyne.NewPos(size.Width, y)
		line.StrokeWidth = 0.5
		lines = append(lines, line)
	}
	return lines
}

func mod(a, m float32) float32 {
	r := float32(math.Mod(float64(a), float64(m)))
	if r < 0 {
		r += m
	}
	return r
}
