package character

import (
	"math"
	"testing"

	"github.com/Carmen-Shannon/oxy-rig/common"
	"github.com/Carmen-Shannon/oxy-rig/engine/game_object"
	"github.com/go-gl/mathgl/mgl32"
)

// vec3ApproxEqual compares component-wise with an absolute tolerance, so expected zeros tolerate
// float32 rounding noise.
func vec3ApproxEqual(a, b mgl32.Vec3, tolerance float64) bool {
	return math.Abs(float64(a.X()-b.X())) < tolerance &&
		math.Abs(float64(a.Y()-b.Y())) < tolerance &&
		math.Abs(float64(a.Z()-b.Z())) < tolerance
}

func TestNewCharacter_Defaults(t *testing.T) {
	c := NewCharacter()

	if c.Object() == nil {
		t.Fatal("Object() is nil")
	}
	if c.DesiredLook() != common.WorldForward {
		t.Errorf("DesiredLook() = %v, want %v", c.DesiredLook(), common.WorldForward)
	}
	if c.WalkSpeed() != 4 || c.TurnRate() != 10 {
		t.Errorf("WalkSpeed=%v TurnRate=%v", c.WalkSpeed(), c.TurnRate())
	}
}

func TestNewCharacter_Options(t *testing.T) {
	obj := game_object.NewGameObject(game_object.WithPosition(0, 1.5, 0))
	c := NewCharacter(
		WithObject(obj),
		WithWalkSpeed(10),
		WithTurnRate(0),
		WithDesiredLook(mgl32.Vec3{2, 3, 0}),
	)

	if c.Object() != obj {
		t.Error("WithObject not applied")
	}
	if c.WalkSpeed() != 10 {
		t.Errorf("WalkSpeed() = %v", c.WalkSpeed())
	}
	if c.TurnRate() != 10 {
		t.Errorf("zero turn rate should keep the default, got %v", c.TurnRate())
	}
	if !vec3ApproxEqual(c.DesiredLook(), common.WorldRight, 1e-5) {
		t.Errorf("DesiredLook() = %v, want %v", c.DesiredLook(), common.WorldRight)
	}
}

func TestCharacter_Look(t *testing.T) {
	c := NewCharacter()

	if !c.Look(mgl32.Vec3{-3, 1, 0}) {
		t.Fatal("Look rejected a valid direction")
	}
	if !vec3ApproxEqual(c.DesiredLook(), common.WorldLeft, 1e-5) {
		t.Errorf("DesiredLook() = %v, want %v", c.DesiredLook(), common.WorldLeft)
	}
	if c.DesiredLook().Y() != 0 {
		t.Errorf("desired look has vertical component: %v", c.DesiredLook())
	}

	if c.Look(mgl32.Vec3{0, -1, 0}) {
		t.Error("Look accepted a vertical direction")
	}
	if !vec3ApproxEqual(c.DesiredLook(), common.WorldLeft, 1e-5) {
		t.Errorf("vertical Look changed the desired look to %v", c.DesiredLook())
	}
}

func TestCharacter_LookDoesNotRotate(t *testing.T) {
	c := NewCharacter()
	c.Look(common.WorldBack)
	if c.Object().Rotation() != mgl32.QuatIdent() {
		t.Errorf("Look should not touch the facing, got %v", c.Object().Rotation())
	}
}

func TestCharacter_TurnIsBounded(t *testing.T) {
	c := NewCharacter(WithTurnRate(5))
	c.Look(common.WorldLeft)

	c.Turn(0.1)
	got := common.QuatAngle(mgl32.QuatIdent(), c.Object().Rotation())
	if math.Abs(float64(got-0.5)) > 1e-3 {
		t.Errorf("turned %v rad in one step, want 0.5", got)
	}

	c.Turn(10)
	if !vec3ApproxEqual(c.Object().Forward(), common.WorldLeft, 1e-5) {
		t.Errorf("Forward() = %v after saturating turn", c.Object().Forward())
	}
}

func TestCharacter_TurnNeverOvershoots(t *testing.T) {
	c := NewCharacter(WithTurnRate(5))
	c.Look(common.WorldLeft)
	target, _ := common.LookRotation(common.WorldLeft, common.WorldUp)

	prev := common.QuatAngle(c.Object().Rotation(), target)
	for i := 0; i < 40; i++ {
		c.Turn(1.0 / 60)
		remaining := common.QuatAngle(c.Object().Rotation(), target)
		if remaining > prev+1e-4 {
			t.Fatalf("tick %d: remaining angle grew from %v to %v", i, prev, remaining)
		}
		prev = remaining
	}
	if c.Object().Rotation() != target {
		t.Errorf("facing %v did not arrive exactly at %v", c.Object().Rotation(), target)
	}
}

func TestCharacter_TurnTimeStepInvariant(t *testing.T) {
	tests := []struct {
		name string
		look mgl32.Vec3
		dt   float32
		n    int
	}{
		{"quarter turn", common.WorldLeft, 1, 60},
		{"half turn", common.WorldBack, 2, 7},
		{"diagonal", mgl32.Vec3{1, 0, -1}, 0.5, 30},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			once := NewCharacter(WithTurnRate(5))
			once.Look(tt.look)
			once.Turn(tt.dt)

			many := NewCharacter(WithTurnRate(5))
			many.Look(tt.look)
			for i := 0; i < tt.n; i++ {
				many.Turn(tt.dt / float32(tt.n))
			}

			if once.Object().Rotation() != many.Object().Rotation() {
				t.Errorf("one step %v != %d steps %v", once.Object().Rotation(), tt.n, many.Object().Rotation())
			}
		})
	}
}

func TestCharacter_TurnNegativeDt(t *testing.T) {
	c := NewCharacter()
	c.Look(common.WorldRight)
	c.Turn(-1)
	if c.Object().Rotation() != mgl32.QuatIdent() {
		t.Errorf("negative dt rotated the facing to %v", c.Object().Rotation())
	}
}

func TestCharacter_Walk(t *testing.T) {
	c := NewCharacter(WithWalkSpeed(10))
	c.Walk(0.5)
	if !vec3ApproxEqual(c.Object().Position(), mgl32.Vec3{0, 0, -5}, 1e-5) {
		t.Errorf("Position() = %v, want (0, 0, -5)", c.Object().Position())
	}

	c.Walk(-1)
	if !vec3ApproxEqual(c.Object().Position(), mgl32.Vec3{0, 0, -5}, 1e-5) {
		t.Errorf("negative dt moved the character to %v", c.Object().Position())
	}
}

func TestCharacter_WalkFollowsFacing(t *testing.T) {
	c := NewCharacter(WithWalkSpeed(2))
	c.Look(common.WorldRight)
	c.Turn(1)
	c.Walk(1)

	if !vec3ApproxEqual(c.Object().Position(), mgl32.Vec3{2, 0, 0}, 1e-5) {
		t.Errorf("Position() = %v, want (2, 0, 0)", c.Object().Position())
	}
}
