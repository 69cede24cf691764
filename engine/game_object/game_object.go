package game_object

import (
	"sync/atomic"

	"github.com/Carmen-Shannon/oxy-rig/common"
	"github.com/go-gl/mathgl/mgl32"
)

type gameObject struct {
	id       uint64
	name     string
	enabled  atomic.Bool
	position mgl32.Vec3
	rotation mgl32.Quat
}

// GameObject defines the interface for a scene entity with a world transform.
// The rotation is a unit quaternion; the object's local forward axis is -Z and its local up is +Y.
// A GameObject is owned by a single writer per tick and is not safe for concurrent mutation.
type GameObject interface {
	// ID returns the object's unique identifier.
	//
	// Returns:
	//   - uint64: the object ID
	ID() uint64

	// Name returns the object's display name.
	//
	// Returns:
	//   - string: the name, possibly empty
	Name() string

	// Enabled returns whether this object is enabled for rendering.
	//
	// Returns:
	//   - bool: true if enabled
	Enabled() bool

	// Position returns the object's world-space position.
	//
	// Returns:
	//   - mgl32.Vec3: the position
	Position() mgl32.Vec3

	// Rotation returns the object's world-space orientation.
	//
	// Returns:
	//   - mgl32.Quat: the rotation
	Rotation() mgl32.Quat

	// Forward returns the object's local -Z axis in world space.
	Forward() mgl32.Vec3

	// Back returns the object's local +Z axis in world space.
	Back() mgl32.Vec3

	// Left returns the object's local -X axis in world space.
	Left() mgl32.Vec3

	// Right returns the object's local +X axis in world space.
	Right() mgl32.Vec3

	// Up returns the object's local +Y axis in world space.
	Up() mgl32.Vec3

	// Transform returns the object's model matrix (translation * rotation, column-major).
	//
	// Returns:
	//   - mgl32.Mat4: the world transform
	Transform() mgl32.Mat4

	// SetID sets the object's unique identifier.
	//
	// Parameters:
	//   - id: the ID to assign
	SetID(id uint64)

	// SetEnabled sets whether the object is enabled for rendering.
	//
	// Parameters:
	//   - enabled: true to enable
	SetEnabled(enabled bool)

	// SetPosition moves the object to a world-space position.
	//
	// Parameters:
	//   - p: the new position
	SetPosition(p mgl32.Vec3)

	// SetRotation sets the object's orientation. The quaternion is normalized before it is stored.
	//
	// Parameters:
	//   - q: the new rotation
	SetRotation(q mgl32.Quat)

	// Translate offsets the object's position by delta.
	//
	// Parameters:
	//   - delta: world-space offset
	Translate(delta mgl32.Vec3)
}

var _ GameObject = &gameObject{}

// NewGameObject creates a new GameObject at the origin facing world forward, configured with the given options.
//
// Parameters:
//   - options: functional options to configure the object
//
// Returns:
//   - GameObject: the newly created object
func NewGameObject(options ...GameObjectBuilderOption) GameObject {
	obj := &gameObject{
		rotation: mgl32.QuatIdent(),
	}
	obj.enabled.Store(true)
	for _, option := range options {
		option(obj)
	}
	return obj
}

func (g *gameObject) ID() uint64 {
	return g.id
}

func (g *gameObject) Name() string {
	return g.name
}

func (g *gameObject) Enabled() bool {
	return g.enabled.Load()
}

func (g *gameObject) Position() mgl32.Vec3 {
	return g.position
}

func (g *gameObject) Rotation() mgl32.Quat {
	return g.rotation
}

func (g *gameObject) Forward() mgl32.Vec3 {
	return g.rotation.Rotate(common.WorldForward)
}

func (g *gameObject) Back() mgl32.Vec3 {
	return g.rotation.Rotate(common.WorldBack)
}

func (g *gameObject) Left() mgl32.Vec3 {
	return g.rotation.Rotate(common.WorldLeft)
}

func (g *gameObject) Right() mgl32.Vec3 {
	return g.rotation.Rotate(common.WorldRight)
}

func (g *gameObject) Up() mgl32.Vec3 {
	return g.rotation.Rotate(common.WorldUp)
}

func (g *gameObject) Transform() mgl32.Mat4 {
	return mgl32.Translate3D(g.position.X(), g.position.Y(), g.position.Z()).Mul4(g.rotation.Mat4())
}

func (g *gameObject) SetID(id uint64) {
	g.id = id
}

func (g *gameObject) SetEnabled(enabled bool) {
	g.enabled.Store(enabled)
}

func (g *gameObject) SetPosition(p mgl32.Vec3) {
	g.position = p
}

func (g *gameObject) SetRotation(q mgl32.Quat) {
	g.rotation = q.Normalize()
}

func (g *gameObject) Translate(delta mgl32.Vec3) {
	g.position = g.position.Add(delta)
}
