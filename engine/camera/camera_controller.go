package camera

import "github.com/go-gl/mathgl/mgl32"

// CameraController defines the camera pivot: a transform that sits on the followed target but whose
// rotation is steered independently by mouse and keyboard input. The Camera is a rigid child of
// this pivot and never rotates on its own.
//
// Rotation is held as yaw about world up followed by pitch about the pivot's local right axis, so
// the pivot never rolls. Mouse and keyboard contributions are additive within a tick.
type CameraController interface {
	orbitCameraController

	// Position returns the pivot's world-space position.
	//
	// Returns:
	//   - mgl32.Vec3: the pivot position
	Position() mgl32.Vec3

	// SetPosition moves the pivot. The rig calls this every tick with the character position;
	// the pivot never translates on its own.
	//
	// Parameters:
	//   - p: the new world-space position
	SetPosition(p mgl32.Vec3)

	// Rotation returns the pivot's world-space orientation.
	//
	// Returns:
	//   - mgl32.Quat: yaw * pitch
	Rotation() mgl32.Quat

	// Forward returns the pivot's local -Z axis in world space, including pitch.
	Forward() mgl32.Vec3

	// Right returns the pivot's local +X axis in world space. It is always horizontal.
	Right() mgl32.Vec3

	// WorldTransform returns translation * rotation of the pivot (column-major).
	//
	// Returns:
	//   - mgl32.Mat4: the pivot world transform
	WorldTransform() mgl32.Mat4
}

// orbitCameraController defines the rotation controls of the pivot.
type orbitCameraController interface {
	// ApplyMouse rotates the pivot by an accumulated pointer delta: yaw by -dx*sensitivity*dt about
	// world up and pitch by -dy*sensitivity*dt about the local right axis.
	//
	// Parameters:
	//   - delta: the summed pointer motion for the tick
	//   - dt: elapsed time in seconds
	ApplyMouse(delta mgl32.Vec2, dt float32)

	// OrbitLeft yaws the pivot left by OrbitSpeed*dt.
	//
	// Parameters:
	//   - dt: elapsed time in seconds
	OrbitLeft(dt float32)

	// OrbitRight yaws the pivot right by OrbitSpeed*dt.
	//
	// Parameters:
	//   - dt: elapsed time in seconds
	OrbitRight(dt float32)

	// OrbitUp pitches the pivot up by OrbitSpeed*dt, clamped when pitch clamping is enabled.
	//
	// Parameters:
	//   - dt: elapsed time in seconds
	OrbitUp(dt float32)

	// OrbitDown pitches the pivot down by OrbitSpeed*dt, clamped when pitch clamping is enabled.
	//
	// Parameters:
	//   - dt: elapsed time in seconds
	OrbitDown(dt float32)

	// Yaw returns the rotation about world up in radians, wrapped to [-pi, pi].
	// Positive yaw turns the pivot toward world -X.
	//
	// Returns:
	//   - float32: yaw in radians
	Yaw() float32

	// SetYaw sets the yaw directly.
	//
	// Parameters:
	//   - yaw: rotation about world up in radians
	SetYaw(yaw float32)

	// Pitch returns the rotation about the local right axis in radians. Positive pitch looks up.
	//
	// Returns:
	//   - float32: pitch in radians
	Pitch() float32

	// SetPitch sets the pitch directly, clamped when pitch clamping is enabled.
	//
	// Parameters:
	//   - pitch: rotation about the local right axis in radians
	SetPitch(pitch float32)

	// PitchLimit returns the pitch clamp and whether clamping is enabled.
	//
	// Returns:
	//   - float32: largest allowed pitch magnitude in radians
	//   - bool: true if pitch is clamped
	PitchLimit() (float32, bool)

	// OrbitSpeed returns the keyboard orbit rate in radians per second.
	//
	// Returns:
	//   - float32: radians per second
	OrbitSpeed() float32

	// MouseSensitivity returns the pointer delta multiplier.
	//
	// Returns:
	//   - float32: radians per pointer unit per second
	MouseSensitivity() float32
}
