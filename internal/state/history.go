package state

// History is a linear undo log of board snapshots. There is no redo: recording
// after an undo drops every snapshot past the current index.
//
// The zero value is an empty history.
type History struct {
	snapshots []Snapshot
	n         int // index+1 of the snapshot matching the board
}

// NewHistory returns a history seeded with seed at index 0.
func NewHistory(seed Snapshot) *History {
	h := &History{}
	h.Record(seed)
	return h
}

// Record advances the index, truncates anything beyond it and appends snap.
func (h *History) Record(snap Snapshot) {
	h.snapshots = append(h.snapshots[:h.n], snap)
	h.n++
}

// Undo steps back one entry and returns the snapshot to restore. At index 0,
// or on an empty history, it does nothing and reports false.
func (h *History) Undo() (Snapshot, bool) {
	if h.n <= 1 {
		return Snapshot{}, false
	}
	h.n--
	return h.snapshots[h.n-1], true
}

// Current returns the snapshot at the index.
func (h *History) Current() (Snapshot, bool) {
	if h.n == 0 {
		return Snapshot{}, false
	}
	return h.snapshots[h.n-1], true
}

// Index is -1 for an empty history.
func (h *History) Index() int { return h.n - 1 }

// Len is the number of stored snapshots, including forward entries left
// behind by Undo until the next Record.
func (h *History) Len() int { return len(h.snapshots) }
