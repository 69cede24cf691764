package camera

import (
	"math"
	"sync"

	"github.com/Carmen-Shannon/oxy-rig/common"
	"github.com/go-gl/mathgl/mgl32"
)

// cameraControllerImpl is the single implementation of CameraController.
// Input arrives on the tick thread while the render thread reads the transform, hence the mutex.
type cameraControllerImpl struct {
	mu *sync.Mutex

	position mgl32.Vec3

	yaw   float32
	pitch float32

	clampPitch bool
	pitchLimit float32

	orbitSpeed       float32
	mouseSensitivity float32
}

// Compile-time interface compliance check
var _ CameraController = &cameraControllerImpl{}

// NewCameraController creates a new pivot at the origin facing world forward with pitch clamped
// just short of vertical.
//
// Parameters:
//   - options: functional options to configure the controller
//
// Returns:
//   - CameraController: the newly created controller
func NewCameraController(options ...CameraControllerOption) CameraController {
	cc := &cameraControllerImpl{
		mu: &sync.Mutex{},

		clampPitch: true,
		pitchLimit: float32(math.Pi/2 - 0.05),

		orbitSpeed:       1.5,
		mouseSensitivity: 0.06,
	}

	for _, option := range options {
		option(cc)
	}

	cc.yaw = wrapAngle(cc.yaw)
	cc.pitch = cc.limitPitch(cc.pitch)
	return cc
}

// --- internal helpers ---

// wrapAngle maps an angle to [-pi, pi].
func wrapAngle(a float32) float32 {
	return float32(math.Remainder(float64(a), 2*math.Pi))
}

// limitPitch applies the pitch clamp when enabled.
func (cc *cameraControllerImpl) limitPitch(pitch float32) float32 {
	if !cc.clampPitch {
		return pitch
	}
	return common.Clamp(pitch, -cc.pitchLimit, cc.pitchLimit)
}

// rotate adds yaw and pitch deltas. Caller must hold the mutex.
func (cc *cameraControllerImpl) rotate(dYaw, dPitch float32) {
	cc.yaw = wrapAngle(cc.yaw + dYaw)
	cc.pitch = cc.limitPitch(cc.pitch + dPitch)
}

// rotation builds the pivot quaternion. Caller must hold the mutex.
func (cc *cameraControllerImpl) rotation() mgl32.Quat {
	return common.YawPitchRotation(cc.yaw, cc.pitch)
}

// --- CameraController shared methods ---

func (cc *cameraControllerImpl) Position() mgl32.Vec3 {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	return cc.position
}

func (cc *cameraControllerImpl) SetPosition(p mgl32.Vec3) {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	cc.position = p
}

func (cc *cameraControllerImpl) Rotation() mgl32.Quat {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	return cc.rotation()
}

func (cc *cameraControllerImpl) Forward() mgl32.Vec3 {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	return cc.rotation().Rotate(common.WorldForward)
}

func (cc *cameraControllerImpl) Right() mgl32.Vec3 {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	return cc.rotation().Rotate(common.WorldRight)
}

func (cc *cameraControllerImpl) WorldTransform() mgl32.Mat4 {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	p := cc.position
	return mgl32.Translate3D(p.X(), p.Y(), p.Z()).Mul4(cc.rotation().Mat4())
}

// --- orbitCameraController implementation ---

func (cc *cameraControllerImpl) ApplyMouse(delta mgl32.Vec2, dt float32) {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	scale := cc.mouseSensitivity * dt
	cc.rotate(-delta.X()*scale, -delta.Y()*scale)
}

func (cc *cameraControllerImpl) OrbitLeft(dt float32) {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	cc.rotate(cc.orbitSpeed*dt, 0)
}

func (cc *cameraControllerImpl) OrbitRight(dt float32) {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	cc.rotate(-cc.orbitSpeed*dt, 0)
}

func (cc *cameraControllerImpl) OrbitUp(dt float32) {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	cc.rotate(0, cc.orbitSpeed*dt)
}

func (cc *cameraControllerImpl) OrbitDown(dt float32) {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	cc.rotate(0, -cc.orbitSpeed*dt)
}

func (cc *cameraControllerImpl) Yaw() float32 {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	return cc.yaw
}

func (cc *cameraControllerImpl) SetYaw(yaw float32) {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	cc.yaw = wrapAngle(yaw)
}

func (cc *cameraControllerImpl) Pitch() float32 {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	return cc.pitch
}

func (cc *cameraControllerImpl) SetPitch(pitch float32) {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	cc.pitch = cc.limitPitch(pitch)
}

func (cc *cameraControllerImpl) PitchLimit() (float32, bool) {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	return cc.pitchLimit, cc.clampPitch
}

func (cc *cameraControllerImpl) OrbitSpeed() float32 {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	return cc.orbitSpeed
}

func (cc *cameraControllerImpl) MouseSensitivity() float32 {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	return cc.mouseSensitivity
}
