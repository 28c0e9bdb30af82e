package state

import (
	"errors"
	"fmt"
	"sync"
)

var ErrUnknownShape = errors.New("unknown shape")

// Board is the authoritative, ordered list of shapes. Order is paint order:
// later shapes are drawn on top.
type Board struct {
	shapes []Shape
	index  map[string]int // shape ID -> position in shapes
	clock  revisionClock
	mu     sync.RWMutex
}

func NewBoard() *Board {
	return &Board{
		shapes: make([]Shape, 0),
		index:  make(map[string]int),
	}
}

// Add appends a shape and returns the board revision after the change.
func (b *Board) Add(s Shape) uint64 {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.index[s.ID] = len(b.shapes)
	b.shapes = append(b.shapes, s)
	return b.clock.tick()
}

// Shapes returns a copy of the shapes in paint order.
func (b *Board) Shapes() []Shape {
	b.mu.RLock()
	defer b.mu.RUnlock()

	out := make([]Shape, len(b.shapes))
	copy(out, b.shapes)
	return out
}

func (b *Board) Len() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.shapes)
}

func (b *Board) Get(id string) (Shape, bool) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	i, ok := b.index[id]
	if !ok {
		return Shape{}, false
	}
	return b.shapes[i], true
}

// Move sets the drag anchor of a shape. Moving a line leaves it unchanged
// but still succeeds.
func (b *Board) Move(id string, p Point) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	i, ok := b.index[id]
	if !ok {
		return fmt.Errorf("move %s: %w", id, ErrUnknownShape)
	}
	b.shapes[i].MoveTo(p)
	b.clock.tick()
	return nil
}

// HitTest returns the topmost shape containing p.
func (b *Board) HitTest(p Point) (Shape, bool) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	for i := len(b.shapes) - 1; i >= 0; i-- {
		if b.shapes[i].Contains(p) {
			return b.shapes[i], true
		}
	}
	return Shape{}, false
}

// Snapshot serializes the current content.
func (b *Board) Snapshot() (Snapshot, error) {
	return b.SnapshotWith()
}

// SnapshotWith serializes the content as it would be after adding extra,
// without changing the board.
func (b *Board) SnapshotWith(extra ...Shape) (Snapshot, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	shapes := make([]Shape, 0, len(b.shapes)+len(extra))
	shapes = append(shapes, b.shapes...)
	return newSnapshot(append(shapes, extra...))
}

// Restore replaces the whole content with the snapshot's shapes.
func (b *Board) Restore(snap Snapshot) error {
	shapes, err := snap.Shapes()
	if err != nil {
		return err
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	b.shapes = shapes
	b.index = make(map[string]int, len(shapes))
	for i, s := range shapes {
		b.index[s.ID] = i
	}
	b.clock.tick()
	return nil
}

// Revision is bumped on every mutation.
func (b *Board) Revision() uint64 {
	return b.clock.now()
}
