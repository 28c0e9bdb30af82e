// Package editor is the single controller behind every front-end: it owns the
// board, its undo history, the drag gesture and the current drawing style.
package editor

import (
	"errors"
	"fmt"
	"log"
	"math"

	"ShapeBoard/internal/config"
	"ShapeBoard/internal/drag"
	"ShapeBoard/internal/export"
	"ShapeBoard/internal/state"
)

var ErrInvalidWidth = errors.New("line width must be positive")

// Editor is not safe for concurrent use. Each front-end drives it from one
// goroutine; renderers may read Board concurrently.
type Editor struct {
	board   *state.Board
	history *state.History
	drag    drag.Controller

	color     string
	lineWidth float64
	shapes    config.ShapeConfig

	// OnChange fires after every mutation that alters what is drawn.
	OnChange func()
}

func New(cfg config.Config) *Editor {
	return &Editor{
		board:     state.NewBoard(),
		history:   state.NewHistory(state.EmptySnapshot()),
		color:     cfg.Canvas.Color,
		lineWidth: cfg.Canvas.LineWidth,
		shapes:    cfg.Shapes,
	}
}

func (e *Editor) Board() *state.Board     { return e.board }
func (e *Editor) History() *state.History { return e.history }
func (e *Editor) Color() string           { return e.color }
func (e *Editor) LineWidth() float64      { return e.lineWidth }

// SetColor sets the colour used by the next add. Invalid input keeps the
// previous colour.
func (e *Editor) SetColor(c string) error {
	hex, err := state.NormalizeColor(c)
	if err != nil {
		return err
	}
	e.color = hex
	return nil
}

func (e *Editor) SetLineWidth(w float64) error {
	if w <= 0 || math.IsNaN(w) || math.IsInf(w, 0) {
		return fmt.Errorf("%w: %v", ErrInvalidWidth, w)
	}
	e.lineWidth = w
	return nil
}

func (e *Editor) AddRect() (state.Shape, error) {
	r := e.shapes.Rect
	return e.add(state.NewRect(r.X, r.Y, r.Width, r.Height, e.color))
}

func (e *Editor) AddCircle() (state.Shape, error) {
	c := e.shapes.Circle
	return e.add(state.NewCircle(c.CX, c.CY, c.R, e.color))
}

func (e *Editor) AddLine() (state.Shape, error) {
	l := e.shapes.Line
	return e.add(state.NewLine(l.X1, l.Y1, l.X2, l.Y2, e.color, e.lineWidth))
}

// add snapshots the board with s before adding it, so a shape that cannot
// be recorded never reaches the board.
func (e *Editor) add(s state.Shape) (state.Shape, error) {
	snap, err := e.board.SnapshotWith(s)
	if err != nil {
		return state.Shape{}, fmt.Errorf("record %s: %w", s.Kind, err)
	}
	e.board.Add(s)
	e.history.Record(snap)
	log.Printf("[EDITOR] added %s %s (history %d/%d)", s.Kind, s.ID, e.history.Index(), e.history.Len())
	e.changed()
	return s, nil
}

// Undo restores the previous snapshot. It reports false, and changes
// nothing, when the history is at its first entry.
func (e *Editor) Undo() (bool, error) {
	if _, ok := e.history.Undo(); !ok {
		return false, nil
	}
	// a restored board no longer holds the dragged shape's old state
	e.drag.Release()
	snap, _ := e.history.Current()
	if err := e.board.Restore(snap); err != nil {
		return false, fmt.Errorf("undo: %w", err)
	}
	log.Printf("[EDITOR] undo to %d", e.history.Index())
	e.changed()
	return true, nil
}

// PointerDown hit-tests the board at a screen position and starts a drag on
// the topmost shape if it is draggable.
func (e *Editor) PointerDown(screen state.Point, t drag.Transform) bool {
	p := t.ToCanvas(screen)
	s, ok := e.board.HitTest(p)
	if !ok {
		return false
	}
	return e.drag.Press(s, p)
}

// PointerDownOn starts a drag on a known shape, as reported by a front-end
// that does its own hit testing. Unknown IDs are ignored.
func (e *Editor) PointerDownOn(id string, screen state.Point, t drag.Transform) bool {
	s, ok := e.board.Get(id)
	if !ok {
		return false
	}
	return e.drag.Press(s, t.ToCanvas(screen))
}

// PointerMove repositions the dragged shape. Drag moves are not recorded in
// the history.
func (e *Editor) PointerMove(screen state.Point, t drag.Transform) bool {
	id, anchor, ok := e.drag.Move(t.ToCanvas(screen))
	if !ok {
		return false
	}
	if err := e.board.Move(id, anchor); err != nil {
		e.drag.Release()
		return false
	}
	e.changed()
	return true
}

func (e *Editor) PointerUp()    { e.drag.Release() }
func (e *Editor) PointerLeave() { e.drag.Leave() }

func (e *Editor) Dragging() bool { return e.drag.Dragging() }

// SVG renders the current board for a w x h surface.
func (e *Editor) SVG(w, h float64) string {
	return export.MarshalSVG(e.board.Shapes(), w, h)
}

// ExportJob captures the board for a raster export.
func (e *Editor) ExportJob(w, h float64, filename string) export.Job {
	return export.NewJob(e.board.Shapes(), w, h, filename)
}

func (e *Editor) changed() {
	if e.OnChange != nil {
		e.OnChange()
	}
}
