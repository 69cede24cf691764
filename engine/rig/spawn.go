package rig

import (
	"github.com/Carmen-Shannon/oxy-rig/engine/camera"
	"github.com/Carmen-Shannon/oxy-rig/engine/character"
	"github.com/Carmen-Shannon/oxy-rig/engine/game_object"
	"github.com/Carmen-Shannon/oxy-rig/engine/settings"
	"github.com/go-gl/mathgl/mgl32"
)

// NewCharacter builds the character at its spawn point facing world forward.
//
// Parameters:
//   - s: the user settings
//
// Returns:
//   - character.Character: the spawned character
func NewCharacter(s settings.UserSettings) character.Character {
	spawn := s.Character.Spawn
	return character.NewCharacter(
		character.WithObject(game_object.NewGameObject(
			game_object.WithName("Character"),
			game_object.WithPosition(spawn[0], spawn[1], spawn[2]),
		)),
		character.WithWalkSpeed(s.Character.WalkSpeed),
		character.WithTurnRate(s.Character.TurnRate),
	)
}

// NewPivot builds the camera pivot on the character's spawn point.
//
// Parameters:
//   - s: the user settings
//
// Returns:
//   - camera.CameraController: the spawned pivot
func NewPivot(s settings.UserSettings) camera.CameraController {
	return camera.NewCameraController(
		camera.WithPosition(mgl32.Vec3(s.Character.Spawn)),
		camera.WithMouseSensitivity(s.Camera.MouseSensitivity),
		camera.WithOrbitSpeed(s.Camera.KeyRate),
		camera.WithPitchLimit(s.Camera.PitchLimit, s.Camera.ClampPitch),
	)
}

// NewCamera builds the camera node at the configured offset. It is attached to a pivot by the rig.
//
// Parameters:
//   - s: the user settings
//
// Returns:
//   - camera.Camera: the camera
func NewCamera(s settings.UserSettings) camera.Camera {
	return camera.NewCamera(
		camera.WithOffset(mgl32.Vec3(s.Camera.Offset)),
		camera.WithFov(s.Camera.Fov),
	)
}
