package input

import (
	"github.com/Carmen-Shannon/oxy-rig/common"
	"github.com/go-gl/mathgl/mgl32"
)

// Snapshot is the input for a single tick: the keys held at the start of the tick and every
// pointer delta received since the previous tick. The zero value has no keys and no motion.
type Snapshot struct {
	held   map[common.KeyCode]bool
	deltas []mgl32.Vec2
}

// NewSnapshot builds a Snapshot directly, for replaying recorded input or driving the rig in tests.
//
// Parameters:
//   - held: the keys currently held
//   - deltas: the pointer deltas for the tick
//
// Returns:
//   - Snapshot: the snapshot
func NewSnapshot(held []common.KeyCode, deltas ...mgl32.Vec2) Snapshot {
	s := Snapshot{held: make(map[common.KeyCode]bool, len(held))}
	for _, k := range held {
		s.held[k] = true
	}
	s.deltas = append(s.deltas, deltas...)
	return s
}

// Pressed reports whether key is held.
func (s Snapshot) Pressed(key common.KeyCode) bool {
	return s.held[key]
}

// AllPressed reports whether every key is held.
func (s Snapshot) AllPressed(keys ...common.KeyCode) bool {
	for _, k := range keys {
		if !s.held[k] {
			return false
		}
	}
	return true
}

// AnyPressed reports whether at least one key is held.
func (s Snapshot) AnyPressed(keys ...common.KeyCode) bool {
	for _, k := range keys {
		if s.held[k] {
			return true
		}
	}
	return false
}

// MouseDeltas returns the individual pointer deltas in arrival order.
func (s Snapshot) MouseDeltas() []mgl32.Vec2 {
	return s.deltas
}

// MouseDelta returns the sum of all pointer deltas for the tick.
func (s Snapshot) MouseDelta() mgl32.Vec2 {
	var sum mgl32.Vec2
	for _, d := range s.deltas {
		sum = sum.Add(d)
	}
	return sum
}
