package character

import (
	"github.com/Carmen-Shannon/oxy-rig/common"
	"github.com/Carmen-Shannon/oxy-rig/engine/settings"
	"github.com/go-gl/mathgl/mgl32"
)

// KeyState reports held keys. input.Snapshot satisfies it.
type KeyState interface {
	Pressed(key common.KeyCode) bool
	AllPressed(keys ...common.KeyCode) bool
}

// Basis supplies the four horizontal directions movement keys are resolved against.
// game_object.GameObject satisfies it.
type Basis interface {
	Forward() mgl32.Vec3
	Back() mgl32.Vec3
	Left() mgl32.Vec3
	Right() mgl32.Vec3
}

// rotationBasis is a Basis derived from a rotation.
type rotationBasis struct {
	q mgl32.Quat
}

// BasisFromRotation returns the Basis of a rotation's local axes.
//
// Parameters:
//   - q: the rotation
//
// Returns:
//   - Basis: forward -Z, back +Z, left -X, right +X of q in world space
func BasisFromRotation(q mgl32.Quat) Basis {
	return rotationBasis{q: q}
}

// HeadingBasis returns the Basis of a rotation's heading only, ignoring its pitch, so a camera
// looking down still walks the character along the ground.
//
// Parameters:
//   - q: the rotation
//
// Returns:
//   - Basis: the yaw-only basis of q
func HeadingBasis(q mgl32.Quat) Basis {
	return rotationBasis{q: mgl32.QuatRotate(common.Yaw(q), common.WorldUp)}
}

func (b rotationBasis) Forward() mgl32.Vec3 { return b.q.Rotate(common.WorldForward) }
func (b rotationBasis) Back() mgl32.Vec3    { return b.q.Rotate(common.WorldBack) }
func (b rotationBasis) Left() mgl32.Vec3    { return b.q.Rotate(common.WorldLeft) }
func (b rotationBasis) Right() mgl32.Vec3   { return b.q.Rotate(common.WorldRight) }

// ResolveDirection maps the held movement keys to a single direction in the given basis.
//
// Rules are checked in priority order and the first match wins: the four two-key diagonals
// (forward+right, forward+left, back+right, back+left) and then the single keys (forward, back,
// left, right). Diagonals are the spherical bisector of their two axes. Three or more held keys
// therefore collapse to the first matching diagonal; opposing keys alone resolve to the earlier
// single key. This is not a vector sum of every held direction.
//
// Parameters:
//   - keys: the held keys for the tick
//   - keymap: the movement key bindings
//   - basis: the frame the directions are taken from
//
// Returns:
//   - mgl32.Vec3: the resolved direction
//   - bool: false if no movement key is held
func ResolveDirection(keys KeyState, keymap settings.Keymap, basis Basis) (mgl32.Vec3, bool) {
	switch {
	case keys.AllPressed(keymap.Forward, keymap.Right):
		return common.SlerpVec3(basis.Forward(), basis.Right(), 0.5), true
	case keys.AllPressed(keymap.Forward, keymap.Left):
		return common.SlerpVec3(basis.Forward(), basis.Left(), 0.5), true
	case keys.AllPressed(keymap.Back, keymap.Right):
		return common.SlerpVec3(basis.Back(), basis.Right(), 0.5), true
	case keys.AllPressed(keymap.Back, keymap.Left):
		return common.SlerpVec3(basis.Back(), basis.Left(), 0.5), true
	case keys.Pressed(keymap.Forward):
		return basis.Forward(), true
	case keys.Pressed(keymap.Back):
		return basis.Back(), true
	case keys.Pressed(keymap.Left):
		return basis.Left(), true
	case keys.Pressed(keymap.Right):
		return basis.Right(), true
	}
	return mgl32.Vec3{}, false
}
