package camera

import "github.com/go-gl/mathgl/mgl32"

type CameraBuilderOption func(*cameraImpl)

// WithOffset sets the camera's local translation from its pivot. The camera always looks back at
// the pivot origin from this offset.
//
// Parameters:
//   - offset: local translation
//
// Returns:
//   - CameraBuilderOption: a function that sets the camera offset
func WithOffset(offset mgl32.Vec3) CameraBuilderOption {
	return func(c *cameraImpl) {
		c.offset = offset
	}
}

// WithFov sets the camera's vertical field of view in radians.
//
// Parameters:
//   - fov: field of view in radians
//
// Returns:
//   - CameraBuilderOption: a function that sets the camera's field of view
func WithFov(fov float32) CameraBuilderOption {
	return func(c *cameraImpl) {
		c.fov = fov
	}
}

// WithAspect sets the camera's aspect ratio (width / height).
//
// Parameters:
//   - aspect: the aspect ratio to set
//
// Returns:
//   - CameraBuilderOption: a function that sets the camera's aspect ratio
func WithAspect(aspect float32) CameraBuilderOption {
	return func(c *cameraImpl) {
		c.aspect = aspect
	}
}

// WithNear sets the near clipping plane distance.
//
// Parameters:
//   - near: near plane distance
//
// Returns:
//   - CameraBuilderOption: a function that sets the near plane
func WithNear(near float32) CameraBuilderOption {
	return func(c *cameraImpl) {
		c.near = near
	}
}

// WithFar sets the far clipping plane distance.
//
// Parameters:
//   - far: far plane distance
//
// Returns:
//   - CameraBuilderOption: functional option to set the far plane
func WithFar(far float32) CameraBuilderOption {
	return func(c *cameraImpl) {
		c.far = far
	}
}

// WithPivot attaches the camera to a pivot.
// After all options are applied, the camera computes its world transform from the pivot's state.
//
// Parameters:
//   - pivot: the parent CameraController
//
// Returns:
//   - CameraBuilderOption: functional option to set the pivot
func WithPivot(pivot CameraController) CameraBuilderOption {
	return func(c *cameraImpl) {
		c.pivot = pivot
	}
}
