package camera

import "github.com/go-gl/mathgl/mgl32"

// CameraControllerOption is a functional option for configuring a CameraController.
type CameraControllerOption func(*cameraControllerImpl)

// WithPosition sets the initial pivot position.
//
// Parameters:
//   - p: world-space position
//
// Returns:
//   - CameraControllerOption: functional option to set the position
func WithPosition(p mgl32.Vec3) CameraControllerOption {
	return func(cc *cameraControllerImpl) {
		cc.position = p
	}
}

// WithYaw sets the initial rotation about world up.
//
// Parameters:
//   - yaw: radians (0 faces world -Z, positive turns toward -X)
//
// Returns:
//   - CameraControllerOption: functional option to set the yaw
func WithYaw(yaw float32) CameraControllerOption {
	return func(cc *cameraControllerImpl) {
		cc.yaw = yaw
	}
}

// WithPitch sets the initial rotation about the local right axis.
//
// Parameters:
//   - pitch: radians (positive looks up)
//
// Returns:
//   - CameraControllerOption: functional option to set the pitch
func WithPitch(pitch float32) CameraControllerOption {
	return func(cc *cameraControllerImpl) {
		cc.pitch = pitch
	}
}

// WithPitchLimit enables or disables the pitch clamp and sets its magnitude.
// With clamping disabled the pivot can pitch past vertical and turn the camera upside down.
//
// Parameters:
//   - limit: largest pitch magnitude in radians
//   - enabled: true to clamp pitch to [-limit, limit]
//
// Returns:
//   - CameraControllerOption: functional option to set the pitch clamp
func WithPitchLimit(limit float32, enabled bool) CameraControllerOption {
	return func(cc *cameraControllerImpl) {
		cc.pitchLimit = limit
		cc.clampPitch = enabled
	}
}

// WithOrbitSpeed sets the keyboard orbit rate.
//
// Parameters:
//   - speed: radians per second
//
// Returns:
//   - CameraControllerOption: functional option to set orbit speed
func WithOrbitSpeed(speed float32) CameraControllerOption {
	return func(cc *cameraControllerImpl) {
		cc.orbitSpeed = speed
	}
}

// WithMouseSensitivity sets the mouse sensitivity.
//
// Parameters:
//   - sensitivity: radians per pointer unit per second
//
// Returns:
//   - CameraControllerOption: functional option to set mouse sensitivity
func WithMouseSensitivity(sensitivity float32) CameraControllerOption {
	return func(cc *cameraControllerImpl) {
		cc.mouseSensitivity = sensitivity
	}
}
