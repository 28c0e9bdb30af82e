package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/widget"

	"ShapeBoard/internal/editor"
	"ShapeBoard/internal/state"
)

// BoardWidget draws the editor's board and turns mouse input into pointer
// events. Pressing on empty canvas pans the view, scrolling zooms it.
type BoardWidget struct {
	widget.BaseWidget
	editor  *editor.Editor
	view    view
	panning bool
}

var _ fyne.Widget = (*BoardWidget)(nil)
var _ fyne.Draggable = (*BoardWidget)(nil)
var _ fyne.Scrollable = (*BoardWidget)(nil)
var _ desktop.Mouseable = (*BoardWidget)(nil)
var _ desktop.Hoverable = (*BoardWidget)(nil)

func NewBoardWidget(ed *editor.Editor) *BoardWidget {
	b := &BoardWidget{
		editor: ed,
		view:   newView(),
	}
	b.ExtendBaseWidget(b)
	return b
}

func toPoint(p fyne.Position) state.Point {
	return state.Point{X: float64(p.X), Y: float64(p.Y)}
}

func (b *BoardWidget) MouseDown(e *desktop.MouseEvent) {
	if e.Button != desktop.MouseButtonPrimary {
		return
	}
	b.panning = !b.editor.PointerDown(toPoint(e.Position), b.view.transform())
}

func (b *BoardWidget) MouseUp(e *desktop.MouseEvent) {
	if e.Button != desktop.MouseButtonPrimary {
		return
	}
	b.editor.PointerUp()
	b.panning = false
}

func (b *BoardWidget) Dragged(e *fyne.DragEvent) {
	if b.editor.Dragging() {
		b.editor.PointerMove(toPoint(e.Position), b.view.transform())
		return
	}
	if b.panning {
		b.view.pan(e.Dragged.DX, e.Dragged.DY)
		b.Refresh()
	}
}

func (b *BoardWidget) DragEnd() {
	b.editor.PointerUp()
	b.panning = false
}

func (b *BoardWidget) MouseIn(*desktop.MouseEvent) {}

func (b *BoardWidget) MouseMoved(e *desktop.MouseEvent) {
	if b.editor.Dragging() {
		b.editor.PointerMove(toPoint(e.Position), b.view.transform())
	}
}

func (b *BoardWidget) MouseOut() {
	b.editor.PointerLeave()
	b.panning = false
}

func (b *BoardWidget) Scrolled(e *fyne.ScrollEvent) {
	if e.Scrolled.DY > 0 {
		b.view.zoomAt(e.Position, zoomStep)
	} else if e.Scrolled.DY < 0 {
		b.view.zoomAt(e.Position, 1/zoomStep)
	}
	b.Refresh()
}

func (b *BoardWidget) ResetView() {
	b.view.reset()
	b.Refresh()
}

func (b *BoardWidget) ToggleGrid(on bool) {
	b.view.showGrid = on
	b.Refresh()
}

func (b *BoardWidget) CreateRenderer() fyne.WidgetRenderer {
	r := &boardWidgetRenderer{board: b}
	r.background = canvas.NewRectangle(color.White)
	r.rebuild(b.Size())
	return r
}

type boardWidgetRenderer struct {
	board      *BoardWidget
	background *canvas.Rectangle
	objects    []fyne.CanvasObject
}

func (r *boardWidgetRenderer) rebuild(size fyne.Size) {
	v := r.board.view

	objects := []fyne.CanvasObject{r.background}
	objects = append(objects, v.gridLines(size)...)
	for _, s := range r.board.editor.Board().Shapes() {
		if o := shapeObject(s, v); o != nil {
			objects = append(objects, o)
		}
	}
	r.objects = objects
}

// shapeObject maps a shape into widget space through the view transform.
func shapeObject(s state.Shape, v view) fyne.CanvasObject {
	toScreen := func(x, y float64) fyne.Position {
		return fyne.NewPos(float32(x)*v.scale+v.panX, float32(y)*v.scale+v.panY)
	}
	switch s.Kind {
	case state.KindRect:
		rect := canvas.NewRectangle(state.ToNRGBA(s.Fill))
		rect.Move(toScreen(s.X, s.Y))
		rect.Resize(fyne.NewSize(float32(s.Width)*v.scale, float32(s.Height)*v.scale))
		return rect
	case state.KindCircle:
		circle := canvas.NewCircle(state.ToNRGBA(s.Fill))
		circle.Position1 = toScreen(s.CX-s.R, s.CY-s.R)
		circle.Position2 = toScreen(s.CX+s.R, s.CY+s.R)
		return circle
	case state.KindLine:
		line := canvas.NewLine(state.ToNRGBA(s.Stroke))
		line.Position1 = toScreen(s.X1, s.Y1)
		line.Position2 = toScreen(s.X2, s.Y2)
		line.StrokeWidth = float32(s.StrokeWidth) * v.scale
		return line
	}
	return nil
}

func (r *boardWidgetRenderer) Objects() []fyne.CanvasObject {
	return r.objects
}

func (r *boardWidgetRenderer) Refresh() {
	r.Layout(r.board.Size())
	canvas.Refresh(r.board)
}

// Layout rebuilds the scene since the grid depends on the widget size.
func (r *boardWidgetRenderer) Layout(size fyne.Size) {
	r.background.Resize(size)
	r.rebuild(size)
}

func (r *boardWidgetRenderer) MinSize() fyne.Size {
	return fyne.NewSize(300, 300)
}

func (r *boardWidgetRenderer) Destroy() {}
