// Package drag tracks a single pointer-drag gesture over the board.
package drag

import "ShapeBoard/internal/state"

// Controller is either idle or dragging one shape. Positions passed in are
// already in canvas space.
type Controller struct {
	target string
	offset state.Point
	active bool
}

// Press starts a drag on s if it is draggable. The offset between the pointer
// and the shape's anchor is kept so the grab point stays under the pointer.
func (c *Controller) Press(s state.Shape, pointer state.Point) bool {
	if !s.Draggable || s.Kind == state.KindLine {
		return false
	}
	c.target = s.ID
	c.offset = pointer.Sub(s.Position())
	c.active = true
	return true
}

// Move returns the new anchor for the dragged shape. ok is false when idle.
func (c *Controller) Move(pointer state.Point) (id string, anchor state.Point, ok bool) {
	if !c.active {
		return "", state.Point{}, false
	}
	return c.target, pointer.Sub(c.offset), true
}

// Release ends the gesture.
func (c *Controller) Release() {
	c.target = ""
	c.offset = state.Point{}
	c.active = false
}

// Leave ends the gesture when the pointer exits the canvas.
func (c *Controller) Leave() { c.Release() }

func (c *Controller) Dragging() bool { return c.active }

// Target is the ID of the dragged shape, empty when idle.
func (c *Controller) Target() string { return c.target }
