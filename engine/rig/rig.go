// Package rig runs the third-person character and camera pipeline once per tick.
//
// Each tick executes, in order:
//
//  1. camera pivot rotation from pointer motion and camera keys
//  2. movement input resolution into a desired look direction
//  3. bounded-step turn of the character facing
//  4. translation along the new facing
//  5. pivot position sync to the character
//  6. camera node transform update
//
// Steps 2-4 run only while a movement key is held. A step whose character or pivot is missing is
// skipped for the tick without error. The rig is driven from a single goroutine.
package rig

import (
	"github.com/Carmen-Shannon/oxy-rig/engine/camera"
	"github.com/Carmen-Shannon/oxy-rig/engine/character"
	"github.com/Carmen-Shannon/oxy-rig/engine/input"
	"github.com/Carmen-Shannon/oxy-rig/engine/settings"
	"github.com/go-gl/mathgl/mgl32"
)

// Transform is a world-space position and orientation read by renderers and debug overlays.
type Transform struct {
	Position mgl32.Vec3
	Rotation mgl32.Quat
}

// Matrix returns translation * rotation (column-major).
func (t Transform) Matrix() mgl32.Mat4 {
	return mgl32.Translate3D(t.Position.X(), t.Position.Y(), t.Position.Z()).Mul4(t.Rotation.Mat4())
}

// Transforms is the scene-graph view of the rig. Entries for missing entities are nil.
type Transforms struct {
	Character *Transform
	Pivot     *Transform
	Camera    *Transform
}

// Rig owns the character, camera pivot and camera and advances them each tick.
type Rig interface {
	// Tick advances the rig by dt seconds using one input snapshot.
	//
	// Parameters:
	//   - dt: elapsed time in seconds
	//   - in: held keys and pointer motion for the tick
	Tick(dt float32, in input.Snapshot)

	// Character returns the controlled character, or nil if none is spawned.
	//
	// Returns:
	//   - character.Character: the character or nil
	Character() character.Character

	// Pivot returns the camera pivot, or nil if none is spawned.
	//
	// Returns:
	//   - camera.CameraController: the pivot or nil
	Pivot() camera.CameraController

	// Camera returns the camera node, or nil if none is attached.
	//
	// Returns:
	//   - camera.Camera: the camera or nil
	Camera() camera.Camera

	// SetCharacter spawns or replaces the character. Pass nil to despawn it.
	//
	// Parameters:
	//   - c: the character or nil
	SetCharacter(c character.Character)

	// SetPivot spawns or replaces the camera pivot. Pass nil to despawn it.
	// An attached camera is re-parented to the new pivot.
	//
	// Parameters:
	//   - p: the pivot or nil
	SetPivot(p camera.CameraController)

	// Settings returns the configuration the rig was built with.
	//
	// Returns:
	//   - settings.UserSettings: the settings
	Settings() settings.UserSettings

	// CharacterInView reports whether a sphere around the character intersects the camera frustum
	// as of the last tick.
	//
	// Parameters:
	//   - radius: bounding sphere radius around the character position
	//
	// Returns:
	//   - bool: false when the character or camera is missing
	CharacterInView(radius float32) bool

	// Transforms returns the current world transforms of the rig's entities.
	//
	// Returns:
	//   - Transforms: world transforms, nil for missing entities
	Transforms() Transforms
}

type rigImpl struct {
	settings settings.UserSettings

	character character.Character
	pivot     camera.CameraController
	camera    camera.Camera
}

var _ Rig = &rigImpl{}

// NewRig creates a Rig. Without options it has no entities and every tick is a no-op; use New for
// a fully spawned rig.
//
// Parameters:
//   - options: functional options to configure the rig
//
// Returns:
//   - Rig: the newly created rig
func NewRig(options ...RigBuilderOption) Rig {
	r := &rigImpl{
		settings: settings.Default(),
	}
	for _, option := range options {
		option(r)
	}
	if r.camera != nil && r.pivot != nil && r.camera.Pivot() == nil {
		r.camera.SetPivot(r.pivot)
	}
	return r
}

// New spawns a character, pivot and camera configured from s and returns the rig that owns them.
//
// Parameters:
//   - s: the user settings
//
// Returns:
//   - Rig: the spawned rig
func New(s settings.UserSettings) Rig {
	return NewRig(
		WithSettings(s),
		WithCharacter(NewCharacter(s)),
		WithPivot(NewPivot(s)),
		WithCamera(NewCamera(s)),
	)
}

func (r *rigImpl) Tick(dt float32, in input.Snapshot) {
	dt = max(dt, 0)

	r.rotatePivot(dt, in)

	if in.AnyPressed(r.settings.Keymap.MovementKeys()...) {
		r.steerCharacter(dt, in)
	}

	r.syncPivot()

	if r.camera != nil {
		r.camera.Update()
	}
}

// rotatePivot applies the summed pointer motion and the camera keys. Opposing keys cancel.
func (r *rigImpl) rotatePivot(dt float32, in input.Snapshot) {
	if r.pivot == nil {
		return
	}
	km := r.settings.Keymap

	r.pivot.ApplyMouse(in.MouseDelta(), dt)
	if in.Pressed(km.CameraLeft) {
		r.pivot.OrbitLeft(dt)
	}
	if in.Pressed(km.CameraRight) {
		r.pivot.OrbitRight(dt)
	}
	if in.Pressed(km.CameraUp) {
		r.pivot.OrbitUp(dt)
	}
	if in.Pressed(km.CameraDown) {
		r.pivot.OrbitDown(dt)
	}
}

// steerCharacter resolves movement input, turns the character and walks it along its new facing.
func (r *rigImpl) steerCharacter(dt float32, in input.Snapshot) {
	if r.character == nil {
		return
	}

	basis, ok := r.movementBasis()
	if !ok {
		return
	}
	if raw, ok := character.ResolveDirection(in, r.settings.Keymap, basis); ok {
		r.character.Look(raw)
	}
	r.character.Turn(dt)
	r.character.Walk(dt)
}

// movementBasis returns the frame movement keys resolve in. The camera basis needs a pivot.
func (r *rigImpl) movementBasis() (character.Basis, bool) {
	if r.settings.Character.Basis == settings.MovementBasisCharacter {
		return r.character.Object(), true
	}
	if r.pivot == nil {
		return nil, false
	}
	return character.HeadingBasis(r.pivot.Rotation()), true
}

// syncPivot copies the character position into the pivot.
func (r *rigImpl) syncPivot() {
	if r.character == nil || r.pivot == nil {
		return
	}
	r.pivot.SetPosition(r.character.Object().Position())
}

func (r *rigImpl) Character() character.Character {
	return r.character
}

func (r *rigImpl) Pivot() camera.CameraController {
	return r.pivot
}

func (r *rigImpl) Camera() camera.Camera {
	return r.camera
}

func (r *rigImpl) SetCharacter(c character.Character) {
	r.character = c
}

func (r *rigImpl) SetPivot(p camera.CameraController) {
	r.pivot = p
	if r.camera != nil {
		r.camera.SetPivot(p)
	}
}

func (r *rigImpl) Settings() settings.UserSettings {
	return r.settings
}

func (r *rigImpl) CharacterInView(radius float32) bool {
	if r.character == nil || r.camera == nil {
		return false
	}
	return r.camera.InView(r.character.Object().Position(), radius)
}

func (r *rigImpl) Transforms() Transforms {
	var t Transforms
	if r.character != nil {
		obj := r.character.Object()
		t.Character = &Transform{Position: obj.Position(), Rotation: obj.Rotation()}
	}
	if r.pivot != nil {
		t.Pivot = &Transform{Position: r.pivot.Position(), Rotation: r.pivot.Rotation()}
	}
	if r.camera != nil {
		t.Camera = &Transform{Position: r.camera.WorldPosition(), Rotation: r.camera.WorldRotation()}
	}
	return t
}
