package character

import (
	"math"
	"testing"

	"github.com/Carmen-Shannon/oxy-rig/common"
	"github.com/Carmen-Shannon/oxy-rig/engine/input"
	"github.com/Carmen-Shannon/oxy-rig/engine/settings"
	"github.com/go-gl/mathgl/mgl32"
)

func TestResolveDirection(t *testing.T) {
	km := settings.Default().Keymap
	basis := BasisFromRotation(mgl32.QuatIdent())
	diag := func(a, b mgl32.Vec3) mgl32.Vec3 { return a.Add(b).Normalize() }

	tests := []struct {
		name   string
		keys   []common.KeyCode
		want   mgl32.Vec3
		wantOk bool
	}{
		{"none", nil, mgl32.Vec3{}, false},
		{"unrelated key", []common.KeyCode{common.KeySpace}, mgl32.Vec3{}, false},
		{"forward", []common.KeyCode{km.Forward}, common.WorldForward, true},
		{"back", []common.KeyCode{km.Back}, common.WorldBack, true},
		{"left", []common.KeyCode{km.Left}, common.WorldLeft, true},
		{"right", []common.KeyCode{km.Right}, common.WorldRight, true},
		{"forward+right", []common.KeyCode{km.Forward, km.Right}, diag(common.WorldForward, common.WorldRight), true},
		{"forward+left", []common.KeyCode{km.Forward, km.Left}, diag(common.WorldForward, common.WorldLeft), true},
		{"back+right", []common.KeyCode{km.Back, km.Right}, diag(common.WorldBack, common.WorldRight), true},
		{"back+left", []common.KeyCode{km.Back, km.Left}, diag(common.WorldBack, common.WorldLeft), true},
		// Priority collapses: these document the policy rather than a vector sum.
		{"forward+back picks forward", []common.KeyCode{km.Forward, km.Back}, common.WorldForward, true},
		{"left+right picks left", []common.KeyCode{km.Left, km.Right}, common.WorldLeft, true},
		{"forward+left+right picks forward+right", []common.KeyCode{km.Forward, km.Left, km.Right}, diag(common.WorldForward, common.WorldRight), true},
		{"back+left+right picks back+right", []common.KeyCode{km.Back, km.Left, km.Right}, diag(common.WorldBack, common.WorldRight), true},
		{"all four picks forward+right", []common.KeyCode{km.Forward, km.Back, km.Left, km.Right}, diag(common.WorldForward, common.WorldRight), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ResolveDirection(input.NewSnapshot(tt.keys), km, basis)
			if ok != tt.wantOk {
				t.Fatalf("ok = %v, want %v", ok, tt.wantOk)
			}
			if !vec3ApproxEqual(got, tt.want, 1e-5) {
				t.Errorf("direction = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestResolveDirection_DiagonalIsUnitBisector(t *testing.T) {
	km := settings.Default().Keymap
	got, ok := ResolveDirection(input.NewSnapshot([]common.KeyCode{km.Forward, km.Right}), km, BasisFromRotation(mgl32.QuatIdent()))
	if !ok {
		t.Fatal("no direction resolved")
	}
	if l := got.Len(); math.Abs(float64(l-1)) > 1e-5 {
		t.Errorf("length = %v, want 1", l)
	}
	angle := math.Acos(float64(got.Dot(common.WorldForward)))
	if math.Abs(angle-math.Pi/4) > 1e-4 {
		t.Errorf("angle from forward = %v, want pi/4", angle)
	}
	if got.X() <= 0 {
		t.Errorf("bisector should lean right, got %v", got)
	}
}

func TestResolveDirection_RotatedBasis(t *testing.T) {
	km := settings.Default().Keymap
	basis := BasisFromRotation(mgl32.QuatRotate(math.Pi/2, common.WorldUp))

	got, ok := ResolveDirection(input.NewSnapshot([]common.KeyCode{km.Forward}), km, basis)
	if !ok || !vec3ApproxEqual(got, common.WorldLeft, 1e-5) {
		t.Errorf("forward in basis facing left = %v (ok=%v)", got, ok)
	}
}

func TestResolveDirection_CustomKeymap(t *testing.T) {
	km := settings.Keymap{
		Forward: common.KeyArrowUp,
		Back:    common.KeyArrowDown,
		Left:    common.KeyArrowLeft,
		Right:   common.KeyArrowRight,
	}
	basis := BasisFromRotation(mgl32.QuatIdent())

	if _, ok := ResolveDirection(input.NewSnapshot([]common.KeyCode{common.KeyW}), km, basis); ok {
		t.Error("W is not bound in this keymap")
	}
	got, ok := ResolveDirection(input.NewSnapshot([]common.KeyCode{common.KeyArrowDown}), km, basis)
	if !ok || !vec3ApproxEqual(got, common.WorldBack, 1e-5) {
		t.Errorf("ArrowDown = %v (ok=%v)", got, ok)
	}
}

func TestHeadingBasis_IgnoresPitch(t *testing.T) {
	q := common.YawPitchRotation(math.Pi/2, -0.8)
	b := HeadingBasis(q)

	if !vec3ApproxEqual(b.Forward(), common.WorldLeft, 1e-5) {
		t.Errorf("Forward() = %v, want %v", b.Forward(), common.WorldLeft)
	}
	if !vec3ApproxEqual(b.Right(), common.WorldForward, 1e-5) {
		t.Errorf("Right() = %v, want %v", b.Right(), common.WorldForward)
	}
}
