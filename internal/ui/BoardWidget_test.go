package ui

import (
	"testing"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ShapeBoard/internal/config"
	"ShapeBoard/internal/editor"
)

func newTestBoard(t *testing.T) (*BoardWidget, *editor.Editor) {
	t.Helper()
	a := test.NewApp()
	t.Cleanup(a.Quit)

	ed := editor.New(config.Default())
	b := NewBoardWidget(ed)
	ed.OnChange = b.Refresh
	b.Resize(fyne.NewSize(800, 600))
	return b, ed
}

func press(b *BoardWidget, x, y float32) {
	b.MouseDown(&desktop.MouseEvent{
		PointEvent: fyne.PointEvent{Position: fyne.NewPos(x, y)},
		Button:     desktop.MouseButtonPrimary,
	})
}

func dragTo(b *BoardWidget, x, y, dx, dy float32) {
	b.Dragged(&fyne.DragEvent{
		PointEvent: fyne.PointEvent{Position: fyne.NewPos(x, y)},
		Dragged:    fyne.NewDelta(dx, dy),
	})
}

func TestBoardWidgetDragsRect(t *testing.T) {
	b, ed := newTestBoard(t)
	r, err := ed.AddRect()
	require.NoError(t, err)

	press(b, 60, 60)
	dragTo(b, 80, 90, 20, 30)
	b.DragEnd()

	got, _ := ed.Board().Get(r.ID)
	assert.Equal(t, 70.0, got.X)
	assert.Equal(t, 80.0, got.Y)
	assert.False(t, ed.Dragging())
}

func TestBoardWidgetDragUnderZoom(t *testing.T) {
	b, ed := newTestBoard(t)
	c, err := ed.AddCircle()
	require.NoError(t, err)

	b.view.panX, b.view.panY, b.view.scale = 40, 10, 2

	// centre (150,150) sits at screen (340,310)
	press(b, 340, 310)
	dragTo(b, 360, 330, 20, 20)
	b.MouseOut()

	got, _ := ed.Board().Get(c.ID)
	assert.InDelta(t, 160.0, got.CX, 1e-4)
	assert.InDelta(t, 160.0, got.CY, 1e-4)
	assert.False(t, ed.Dragging())
}

func TestBoardWidgetPansOnEmptyCanvas(t *testing.T) {
	b, ed := newTestBoard(t)
	r, err := ed.AddRect()
	require.NoError(t, err)

	press(b, 700, 500)
	dragTo(b, 710, 505, 10, 5)
	b.DragEnd()

	assert.Equal(t, float32(10), b.view.panX)
	assert.Equal(t, float32(5), b.view.panY)
	got, _ := ed.Board().Get(r.ID)
	assert.Equal(t, r, got)
}

func TestBoardWidgetLineDoesNotMove(t *testing.T) {
	b, ed := newTestBoard(t)
	l, err := ed.AddLine()
	require.NoError(t, err)

	press(b, 150, 150)
	dragTo(b, 300, 300, 150, 150)
	b.MouseUp(&desktop.MouseEvent{Button: desktop.MouseButtonPrimary})

	got, _ := ed.Board().Get(l.ID)
	assert.Equal(t, l, got)
}

func TestBoardWidgetZoomClamps(t *testing.T) {
	b, _ := newTestBoard(t)
	for i := 0; i < 20; i++ {
		b.Scrolled(&fyne.ScrollEvent{Scrolled: fyne.NewDelta(0, 1)})
	}
	assert.InDelta(t, maxScale, b.view.scale, 1e-6)

	for i := 0; i < 40; i++ {
		b.Scrolled(&fyne.ScrollEvent{Scrolled: fyne.NewDelta(0, -1)})
	}
	assert.InDelta(t, minScale, b.view.scale, 1e-6)

	b.ResetView()
	assert.Equal(t, float32(1), b.view.scale)
}

func TestBoardWidgetZoomKeepsPointerAnchor(t *testing.T) {
	v := newView()
	at := fyne.NewPos(200, 100)
	before := v.transform().ToCanvas(toPoint(at))

	v.zoomAt(at, zoomStep)
	after := v.transform().ToCanvas(toPoint(at))
	assert.InDelta(t, before.X, after.X, 1e-4)
	assert.InDelta(t, before.Y, after.Y, 1e-4)
}

func TestBoardWidgetRendersShapes(t *testing.T) {
	b, ed := newTestBoard(t)
	b.ToggleGrid(false)
	_, err := ed.AddRect()
	require.NoError(t, err)
	_, err = ed.AddCircle()
	require.NoError(t, err)
	_, err = ed.AddLine()
	require.NoError(t, err)

	objects := test.WidgetRenderer(b).Objects()
	require.Len(t, objects, 4)
	assert.IsType(t, &canvas.Rectangle{}, objects[1])
	assert.IsType(t, &canvas.Circle{}, objects[2])
	assert.IsType(t, &canvas.Line{}, objects[3])

	_, err = ed.Undo()
	require.NoError(t, err)
	assert.Len(t, test.WidgetRenderer(b).Objects(), 3)
}
