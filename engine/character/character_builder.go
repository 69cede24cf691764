package character

import (
	"github.com/Carmen-Shannon/oxy-rig/common"
	"github.com/Carmen-Shannon/oxy-rig/engine/game_object"
	"github.com/go-gl/mathgl/mgl32"
)

// CharacterBuilderOption is a functional option for configuring a Character.
type CharacterBuilderOption func(*characterImpl)

// WithObject sets the GameObject that holds the character's transform.
//
// Parameters:
//   - obj: the character's GameObject
//
// Returns:
//   - CharacterBuilderOption: functional option to set the object
func WithObject(obj game_object.GameObject) CharacterBuilderOption {
	return func(c *characterImpl) {
		c.object = obj
	}
}

// WithWalkSpeed sets the translation speed. Zero keeps the default.
//
// Parameters:
//   - speed: units per second
//
// Returns:
//   - CharacterBuilderOption: functional option to set the walk speed
func WithWalkSpeed(speed float32) CharacterBuilderOption {
	return func(c *characterImpl) {
		c.walkSpeed = common.Coalesce(speed, c.walkSpeed)
	}
}

// WithTurnRate sets the angular rate at which the facing chases the desired look. Zero keeps the default.
//
// Parameters:
//   - rate: radians per second
//
// Returns:
//   - CharacterBuilderOption: functional option to set the turn rate
func WithTurnRate(rate float32) CharacterBuilderOption {
	return func(c *characterImpl) {
		c.turnRate = common.Coalesce(rate, c.turnRate)
	}
}

// WithDesiredLook sets the initial desired look direction. Vertical directions are ignored.
//
// Parameters:
//   - dir: the initial look direction, flattened onto the horizontal plane
//
// Returns:
//   - CharacterBuilderOption: functional option to set the desired look
func WithDesiredLook(dir mgl32.Vec3) CharacterBuilderOption {
	return func(c *characterImpl) {
		if flat, ok := common.FlattenY(dir); ok {
			c.desiredLook = flat
		}
	}
}
