package rig

import (
	"github.com/Carmen-Shannon/oxy-rig/engine/camera"
	"github.com/Carmen-Shannon/oxy-rig/engine/character"
	"github.com/Carmen-Shannon/oxy-rig/engine/settings"
)

// RigBuilderOption is a functional option for configuring a Rig.
type RigBuilderOption func(*rigImpl)

// WithSettings sets the keymap and movement basis the rig reads each tick.
// Entity tuning (speeds, offsets) is applied when the entities are built, see New.
//
// Parameters:
//   - s: the user settings
//
// Returns:
//   - RigBuilderOption: functional option to set the settings
func WithSettings(s settings.UserSettings) RigBuilderOption {
	return func(r *rigImpl) {
		r.settings = s
	}
}

// WithCharacter sets the controlled character.
//
// Parameters:
//   - c: the character
//
// Returns:
//   - RigBuilderOption: functional option to set the character
func WithCharacter(c character.Character) RigBuilderOption {
	return func(r *rigImpl) {
		r.character = c
	}
}

// WithPivot sets the camera pivot.
//
// Parameters:
//   - p: the pivot
//
// Returns:
//   - RigBuilderOption: functional option to set the pivot
func WithPivot(p camera.CameraController) RigBuilderOption {
	return func(r *rigImpl) {
		r.pivot = p
	}
}

// WithCamera sets the camera node. A camera without a pivot is attached to the rig's pivot.
//
// Parameters:
//   - c: the camera
//
// Returns:
//   - RigBuilderOption: functional option to set the camera
func WithCamera(c camera.Camera) RigBuilderOption {
	return func(r *rigImpl) {
		r.camera = c
	}
}
