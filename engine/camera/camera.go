package camera

import (
	"math"
	"sync"

	"github.com/Carmen-Shannon/oxy-rig/common"
	"github.com/go-gl/mathgl/mgl32"
)

type cameraImpl struct {
	mu *sync.Mutex

	// local transform relative to the pivot
	offset        mgl32.Vec3
	localRotation mgl32.Quat

	fov    float32
	aspect float32
	near   float32
	far    float32

	worldPosition mgl32.Vec3
	worldRotation mgl32.Quat

	viewMatrix           mgl32.Mat4
	projectionMatrix     mgl32.Mat4
	viewProjectionMatrix mgl32.Mat4

	pivot CameraController
}

// Camera defines the camera node: a rigid child of a CameraController pivot with a fixed local
// offset, looking back at the pivot. Its world transform is the pivot world transform composed
// with the local offset and is recomputed on Update rather than kept in a scene hierarchy.
type Camera interface {
	// Offset returns the camera's local translation from the pivot.
	//
	// Returns:
	//   - mgl32.Vec3: the local offset
	Offset() mgl32.Vec3

	// LocalRotation returns the camera's rotation relative to the pivot.
	//
	// Returns:
	//   - mgl32.Quat: rotation looking from the offset toward the pivot origin
	LocalRotation() mgl32.Quat

	// Fov returns the vertical field of view in radians.
	//
	// Returns:
	//   - float32: field of view in radians
	Fov() float32

	// Aspect returns the aspect ratio (width / height).
	//
	// Returns:
	//   - float32: the aspect ratio
	Aspect() float32

	// Near returns the near clipping plane distance.
	//
	// Returns:
	//   - float32: near plane distance
	Near() float32

	// Far returns the far clipping plane distance.
	//
	// Returns:
	//   - float32: far plane distance
	Far() float32

	// WorldPosition returns the camera's world-space position as of the last Update.
	//
	// Returns:
	//   - mgl32.Vec3: the eye position
	WorldPosition() mgl32.Vec3

	// WorldRotation returns the camera's world-space orientation as of the last Update.
	//
	// Returns:
	//   - mgl32.Quat: pivot rotation * local rotation
	WorldRotation() mgl32.Quat

	// ViewMatrix returns the current 4x4 view matrix (column-major).
	//
	// Returns:
	//   - mgl32.Mat4: the view matrix
	ViewMatrix() mgl32.Mat4

	// ProjectionMatrix returns the current 4x4 perspective projection matrix (column-major).
	//
	// Returns:
	//   - mgl32.Mat4: the projection matrix
	ProjectionMatrix() mgl32.Mat4

	// ViewProjectionMatrix returns projection * view.
	//
	// Returns:
	//   - mgl32.Mat4: the combined view-projection matrix
	ViewProjectionMatrix() mgl32.Mat4

	// Frustum returns the view frustum of the last Update.
	//
	// Returns:
	//   - common.Frustum: the six inward-facing frustum planes
	Frustum() common.Frustum

	// InView reports whether a sphere is at least partly inside the view frustum.
	//
	// Parameters:
	//   - center: world-space sphere center
	//   - radius: sphere radius
	//
	// Returns:
	//   - bool: true if any part of the sphere is visible
	InView(center mgl32.Vec3, radius float32) bool

	// Pivot returns the CameraController the camera is attached to, or nil.
	//
	// Returns:
	//   - CameraController: the parent pivot or nil
	Pivot() CameraController

	// Update recomputes the world transform and matrices from the pivot.
	// Without a pivot the camera keeps its local transform as its world transform.
	Update()

	// SetOffset moves the camera relative to the pivot and re-aims it at the pivot origin.
	//
	// Parameters:
	//   - offset: local translation
	SetOffset(offset mgl32.Vec3)

	// SetFov sets the vertical field of view in radians and recomputes matrices.
	//
	// Parameters:
	//   - fov: field of view in radians
	SetFov(fov float32)

	// SetAspect sets the aspect ratio (width / height) and recomputes matrices.
	//
	// Parameters:
	//   - aspect: the aspect ratio
	SetAspect(aspect float32)

	// SetNear sets the near clipping plane distance and recomputes matrices.
	//
	// Parameters:
	//   - near: near plane distance
	SetNear(near float32)

	// SetFar sets the far clipping plane distance and recomputes matrices.
	//
	// Parameters:
	//   - far: far plane distance
	SetFar(far float32)

	// SetPivot attaches the camera to a pivot.
	//
	// Parameters:
	//   - pivot: the parent CameraController, or nil to detach
	SetPivot(pivot CameraController)
}

var _ Camera = &cameraImpl{}

// NewCamera creates a new Camera ten units behind its pivot with a 60 degree field of view.
//
// Parameters:
//   - options: functional options to configure the camera
//
// Returns:
//   - Camera: the newly created camera
func NewCamera(options ...CameraBuilderOption) Camera {
	c := &cameraImpl{
		mu:     &sync.Mutex{},
		offset: mgl32.Vec3{0, 0, 10},
		fov:    float32(60 * math.Pi / 180),
		aspect: 16.0 / 9.0,
		near:   0.1,
		far:    1000.0,
	}
	for _, option := range options {
		option(c)
	}
	c.localRotation = lookAtOrigin(c.offset)
	c.updateMatrices()
	return c
}

// lookAtOrigin returns the local rotation of a camera at offset looking at the pivot origin.
// A zero or vertical offset keeps the identity.
func lookAtOrigin(offset mgl32.Vec3) mgl32.Quat {
	q, _ := common.LookRotation(offset.Mul(-1), common.WorldUp)
	return q
}

func (c *cameraImpl) Offset() mgl32.Vec3 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.offset
}

func (c *cameraImpl) LocalRotation() mgl32.Quat {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.localRotation
}

func (c *cameraImpl) Fov() float32 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.fov
}

func (c *cameraImpl) Aspect() float32 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.aspect
}

func (c *cameraImpl) Near() float32 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.near
}

func (c *cameraImpl) Far() float32 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.far
}

func (c *cameraImpl) WorldPosition() mgl32.Vec3 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.worldPosition
}

func (c *cameraImpl) WorldRotation() mgl32.Quat {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.worldRotation
}

func (c *cameraImpl) ViewMatrix() mgl32.Mat4 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.viewMatrix
}

func (c *cameraImpl) ProjectionMatrix() mgl32.Mat4 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.projectionMatrix
}

func (c *cameraImpl) ViewProjectionMatrix() mgl32.Mat4 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.viewProjectionMatrix
}

func (c *cameraImpl) Frustum() common.Frustum {
	c.mu.Lock()
	defer c.mu.Unlock()
	return common.FrustumFromMatrix(c.viewProjectionMatrix)
}

func (c *cameraImpl) InView(center mgl32.Vec3, radius float32) bool {
	return c.Frustum().ContainsSphere(center, radius)
}

func (c *cameraImpl) Pivot() CameraController {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.pivot
}

func (c *cameraImpl) Update() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.updateMatrices()
}

func (c *cameraImpl) SetOffset(offset mgl32.Vec3) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.offset = offset
	c.localRotation = lookAtOrigin(offset)
	c.updateMatrices()
}

func (c *cameraImpl) SetFov(fov float32) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.fov = fov
	c.updateMatrices()
}

func (c *cameraImpl) SetAspect(aspect float32) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.aspect = aspect
	c.updateMatrices()
}

func (c *cameraImpl) SetNear(near float32) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.near = near
	c.updateMatrices()
}

func (c *cameraImpl) SetFar(far float32) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.far = far
	c.updateMatrices()
}

func (c *cameraImpl) SetPivot(pivot CameraController) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.pivot = pivot
	c.updateMatrices()
}

// updateMatrices composes the pivot transform with the local offset and recalculates the view,
// projection and view-projection matrices.
// Caller must hold the mutex.
func (c *cameraImpl) updateMatrices() {
	pivotPosition, pivotRotation := mgl32.Vec3{}, mgl32.QuatIdent()
	if c.pivot != nil {
		pivotPosition, pivotRotation = c.pivot.Position(), c.pivot.Rotation()
	}

	c.worldPosition = pivotPosition.Add(pivotRotation.Rotate(c.offset))
	c.worldRotation = pivotRotation.Mul(c.localRotation).Normalize()

	center := c.worldPosition.Add(c.worldRotation.Rotate(common.WorldForward))
	up := c.worldRotation.Rotate(common.WorldUp)
	c.viewMatrix = mgl32.LookAtV(c.worldPosition, center, up)

	c.projectionMatrix = mgl32.Perspective(c.fov, c.aspect, c.near, c.far)
	c.viewProjectionMatrix = c.projectionMatrix.Mul4(c.viewMatrix)
}
