package character

import (
	"github.com/Carmen-Shannon/oxy-rig/common"
	"github.com/Carmen-Shannon/oxy-rig/engine/game_object"
	"github.com/go-gl/mathgl/mgl32"
)

// Character is the camera target: a GameObject whose facing chases a desired look direction at a
// bounded angular rate and which walks along its current facing.
//
// The desired look is always horizontal and unit length, and the facing never rolls or pitches.
// Look, Turn and Walk are the only mutators and are called once per tick in that order.
type Character interface {
	// Object returns the GameObject holding the character's position and facing.
	//
	// Returns:
	//   - game_object.GameObject: the character's transform
	Object() game_object.GameObject

	// DesiredLook returns the horizontal unit direction the facing is turning toward.
	//
	// Returns:
	//   - mgl32.Vec3: the desired look direction
	DesiredLook() mgl32.Vec3

	// WalkSpeed returns the translation speed in units per second.
	//
	// Returns:
	//   - float32: walk speed
	WalkSpeed() float32

	// TurnRate returns the largest facing change in radians per second.
	//
	// Returns:
	//   - float32: turn rate
	TurnRate() float32

	// Look snaps the desired look to raw projected onto the horizontal plane.
	// A raw direction with no horizontal component keeps the previous desired look.
	//
	// Parameters:
	//   - raw: the resolved movement direction, any length
	//
	// Returns:
	//   - bool: true if the desired look was updated
	Look(raw mgl32.Vec3) bool

	// Turn rotates the facing toward the desired look by at most TurnRate*dt radians.
	// The facing arrives exactly once the remaining angle fits in one step.
	//
	// Parameters:
	//   - dt: elapsed time in seconds (negative values are treated as zero)
	Turn(dt float32)

	// Walk translates the character along its current facing by WalkSpeed*dt.
	//
	// Parameters:
	//   - dt: elapsed time in seconds (negative values are treated as zero)
	Walk(dt float32)
}

type characterImpl struct {
	object      game_object.GameObject
	desiredLook mgl32.Vec3
	walkSpeed   float32
	turnRate    float32
}

var _ Character = &characterImpl{}

// NewCharacter creates a Character with a default GameObject at the origin facing world forward.
//
// Parameters:
//   - options: functional options to configure the character
//
// Returns:
//   - Character: the newly created character
func NewCharacter(options ...CharacterBuilderOption) Character {
	c := &characterImpl{
		desiredLook: common.WorldForward,
		walkSpeed:   4,
		turnRate:    10,
	}
	for _, option := range options {
		option(c)
	}
	if c.object == nil {
		c.object = game_object.NewGameObject(game_object.WithName("Character"))
	}
	return c
}

func (c *characterImpl) Object() game_object.GameObject {
	return c.object
}

func (c *characterImpl) DesiredLook() mgl32.Vec3 {
	return c.desiredLook
}

func (c *characterImpl) WalkSpeed() float32 {
	return c.walkSpeed
}

func (c *characterImpl) TurnRate() float32 {
	return c.turnRate
}

func (c *characterImpl) Look(raw mgl32.Vec3) bool {
	flat, ok := common.FlattenY(raw)
	if !ok {
		return false
	}
	c.desiredLook = flat
	return true
}

func (c *characterImpl) Turn(dt float32) {
	target, ok := common.LookRotation(c.desiredLook, common.WorldUp)
	if !ok {
		return
	}
	step := c.turnRate * max(dt, 0)
	c.object.SetRotation(common.RotateTowards(c.object.Rotation(), target, step))
}

func (c *characterImpl) Walk(dt float32) {
	c.object.Translate(c.object.Forward().Mul(c.walkSpeed * max(dt, 0)))
}
