package state

import (
	"encoding/json"
	"fmt"
)

// Snapshot is the serialized form of every shape on the board at one point
// in time. It is immutable once taken.
type Snapshot struct {
	data []byte
}

func newSnapshot(shapes []Shape) (Snapshot, error) {
	if shapes == nil {
		shapes = []Shape{}
	}
	data, err := json.Marshal(shapes)
	if err != nil {
		return Snapshot{}, fmt.Errorf("encode snapshot: %w", err)
	}
	return Snapshot{data: data}, nil
}

// EmptySnapshot is the snapshot of a blank canvas.
func EmptySnapshot() Snapshot {
	return Snapshot{data: []byte("[]")}
}

// Shapes decodes the snapshot into a fresh slice.
func (s Snapshot) Shapes() ([]Shape, error) {
	if len(s.data) == 0 {
		return []Shape{}, nil
	}
	var shapes []Shape
	if err := json.Unmarshal(s.data, &shapes); err != nil {
		return nil, fmt.Errorf("decode snapshot: %w", err)
	}
	return shapes, nil
}

// Equal reports whether both snapshots hold the same serialized state.
func (s Snapshot) Equal(o Snapshot) bool {
	return string(s.data) == string(o.data)
}
