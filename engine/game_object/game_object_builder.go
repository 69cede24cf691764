package game_object

import (
	"github.com/Carmen-Shannon/oxy-rig/common"
	"github.com/go-gl/mathgl/mgl32"
)

// GameObjectBuilderOption is a functional option for configuring a GameObject during construction.
type GameObjectBuilderOption func(*gameObject)

// WithID sets the ID of the GameObject.
//
// Parameters:
//   - id: unique identifier for the GameObject
//
// Returns:
//   - GameObjectBuilderOption: functional option to set the ID
func WithID(id uint64) GameObjectBuilderOption {
	return func(obj *gameObject) {
		obj.id = id
	}
}

// WithName sets the display name of the GameObject.
//
// Parameters:
//   - name: the name shown by debug tooling
//
// Returns:
//   - GameObjectBuilderOption: functional option to set the name
func WithName(name string) GameObjectBuilderOption {
	return func(obj *gameObject) {
		obj.name = name
	}
}

// WithEnabled sets whether the GameObject is enabled for rendering. Objects are enabled by default.
//
// Parameters:
//   - enabled: true to render the object, false to skip it
//
// Returns:
//   - GameObjectBuilderOption: functional option to set the Enabled state
func WithEnabled(enabled bool) GameObjectBuilderOption {
	return func(obj *gameObject) {
		obj.enabled.Store(enabled)
	}
}

// WithPosition sets the initial world position of the GameObject.
//
// Parameters:
//   - x: the x position
//   - y: the y position
//   - z: the z position
//
// Returns:
//   - GameObjectBuilderOption: functional option to set the initial position
func WithPosition(x, y, z float32) GameObjectBuilderOption {
	return func(obj *gameObject) {
		obj.position = mgl32.Vec3{x, y, z}
	}
}

// WithRotation sets the initial orientation of the GameObject.
//
// Parameters:
//   - q: the rotation, normalized before use
//
// Returns:
//   - GameObjectBuilderOption: functional option to set the initial rotation
func WithRotation(q mgl32.Quat) GameObjectBuilderOption {
	return func(obj *gameObject) {
		obj.rotation = q.Normalize()
	}
}

// WithLookDirection orients the GameObject to face dir with world up as its up axis.
// A direction parallel to world up is ignored.
//
// Parameters:
//   - dir: the direction to face
//
// Returns:
//   - GameObjectBuilderOption: functional option to set the initial rotation
func WithLookDirection(dir mgl32.Vec3) GameObjectBuilderOption {
	return func(obj *gameObject) {
		if q, ok := common.LookRotation(dir, common.WorldUp); ok {
			obj.rotation = q
		}
	}
}
