// Package input turns window key and cursor callbacks into per-tick snapshots.
// Callbacks arrive on the window thread while snapshots are taken on the engine tick thread,
// so the tracker is guarded by a mutex. Snapshots themselves are immutable values.
package input

import (
	"sync"

	"github.com/Carmen-Shannon/oxy-rig/common"
	"github.com/go-gl/mathgl/mgl32"
)

// Tracker records which keys are held and the pointer motion received since the last snapshot.
type Tracker interface {
	// KeyDown marks a key as held. Repeated presses are idempotent.
	//
	// Parameters:
	//   - key: the virtual key code
	KeyDown(key common.KeyCode)

	// KeyUp marks a key as released.
	//
	// Parameters:
	//   - key: the virtual key code
	KeyUp(key common.KeyCode)

	// CursorMoved records an absolute cursor position and queues the delta from the previous position.
	// The first position after construction or Reset only establishes the baseline.
	//
	// Parameters:
	//   - x, y: cursor position in screen coordinates
	CursorMoved(x, y float64)

	// MouseMotion queues a raw pointer delta, for sources that report relative motion directly.
	//
	// Parameters:
	//   - dx, dy: pointer delta
	MouseMotion(dx, dy float32)

	// Snapshot returns the held keys and drains the queued pointer deltas.
	//
	// Returns:
	//   - Snapshot: the input state for one tick
	Snapshot() Snapshot

	// Reset releases all keys, drops queued deltas and forgets the cursor baseline.
	// Call it when the window loses focus so keys do not stay stuck down.
	Reset()
}

type tracker struct {
	mu *sync.Mutex

	held   map[common.KeyCode]bool
	deltas []mgl32.Vec2

	lastX, lastY float64
	hasLast      bool
}

var _ Tracker = &tracker{}

// NewTracker creates an empty Tracker.
//
// Returns:
//   - Tracker: the newly created tracker
func NewTracker() Tracker {
	return &tracker{
		mu:   &sync.Mutex{},
		held: make(map[common.KeyCode]bool),
	}
}

func (t *tracker) KeyDown(key common.KeyCode) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.held[key] = true
}

func (t *tracker) KeyUp(key common.KeyCode) {
	t.mu.Lock()
	defer t.mu.Unlock()
	delete(t.held, key)
}

func (t *tracker) CursorMoved(x, y float64) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.hasLast {
		t.deltas = append(t.deltas, mgl32.Vec2{float32(x - t.lastX), float32(y - t.lastY)})
	}
	t.lastX, t.lastY = x, y
	t.hasLast = true
}

func (t *tracker) MouseMotion(dx, dy float32) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.deltas = append(t.deltas, mgl32.Vec2{dx, dy})
}

func (t *tracker) Snapshot() Snapshot {
	t.mu.Lock()
	defer t.mu.Unlock()

	held := make(map[common.KeyCode]bool, len(t.held))
	for k := range t.held {
		held[k] = true
	}
	deltas := t.deltas
	t.deltas = nil

	return Snapshot{held: held, deltas: deltas}
}

func (t *tracker) Reset() {
	t.mu.Lock()
	defer t.mu.Unlock()
	clear(t.held)
	t.deltas = nil
	t.hasLast = false
}
