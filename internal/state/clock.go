package state

import (
	"sync/atomic"
)

// revisionClock counts board mutations. Render targets compare revisions to
// drop frames that arrive out of order.
type revisionClock struct {
	n atomic.Uint64
}

func (c *revisionClock) tick() uint64 {
	return c.n.Add(1)
}

func (c *revisionClock) now() uint64 {
	return c.n.Load()
}
