package common

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

const testEpsilon = 1e-5

// vec3ApproxEqual compares component-wise with an absolute tolerance, so expected zeros tolerate
// float32 rounding noise.
func vec3ApproxEqual(a, b mgl32.Vec3, tolerance float64) bool {
	return math.Abs(float64(a.X()-b.X())) < tolerance &&
		math.Abs(float64(a.Y()-b.Y())) < tolerance &&
		math.Abs(float64(a.Z()-b.Z())) < tolerance
}

// quatApproxEqual compares component-wise with an absolute tolerance.
func quatApproxEqual(a, b mgl32.Quat, tolerance float64) bool {
	return math.Abs(float64(a.W-b.W)) < tolerance && vec3ApproxEqual(a.V, b.V, tolerance)
}

func TestFlattenY(t *testing.T) {
	tests := []struct {
		name   string
		in     mgl32.Vec3
		want   mgl32.Vec3
		wantOk bool
	}{
		{"already flat", mgl32.Vec3{3, 0, 4}, mgl32.Vec3{0.6, 0, 0.8}, true},
		{"tilted", mgl32.Vec3{0, 5, -2}, mgl32.Vec3{0, 0, -1}, true},
		{"straight up", mgl32.Vec3{0, 1, 0}, mgl32.Vec3{}, false},
		{"straight down", mgl32.Vec3{0, -3, 0}, mgl32.Vec3{}, false},
		{"zero", mgl32.Vec3{}, mgl32.Vec3{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := FlattenY(tt.in)
			if ok != tt.wantOk {
				t.Fatalf("FlattenY(%v) ok = %v, want %v", tt.in, ok, tt.wantOk)
			}
			if !vec3ApproxEqual(got, tt.want, testEpsilon) {
				t.Errorf("FlattenY(%v) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestSlerpVec3_Bisector(t *testing.T) {
	got := SlerpVec3(WorldForward, WorldRight, 0.5)
	want := mgl32.Vec3{1, 0, -1}.Normalize()

	if !vec3ApproxEqual(got, want, testEpsilon) {
		t.Errorf("SlerpVec3(forward, right, 0.5) = %v, want %v", got, want)
	}
	if l := got.Len(); math.Abs(float64(l-1)) > testEpsilon {
		t.Errorf("bisector length = %v, want 1", l)
	}
}

func TestSlerpVec3_Endpoints(t *testing.T) {
	if got := SlerpVec3(WorldBack, WorldLeft, 0); !vec3ApproxEqual(got, WorldBack, testEpsilon) {
		t.Errorf("t=0: got %v, want %v", got, WorldBack)
	}
	if got := SlerpVec3(WorldBack, WorldLeft, 1); !vec3ApproxEqual(got, WorldLeft, testEpsilon) {
		t.Errorf("t=1: got %v, want %v", got, WorldLeft)
	}
}

func TestSlerpVec3_Antiparallel(t *testing.T) {
	got := SlerpVec3(WorldForward, WorldBack, 0.5)
	if l := got.Len(); math.Abs(float64(l-1)) > testEpsilon {
		t.Errorf("length = %v, want 1", l)
	}
	if d := got.Dot(WorldForward); math.Abs(float64(d)) > testEpsilon {
		t.Errorf("midpoint of antiparallel vectors should be perpendicular, dot = %v", d)
	}
}

func TestLookRotation(t *testing.T) {
	dirs := []mgl32.Vec3{
		WorldForward,
		WorldBack,
		WorldLeft,
		WorldRight,
		{1, 0, -1},
		{0.3, 0.4, 0.5},
	}

	for _, dir := range dirs {
		q, ok := LookRotation(dir, WorldUp)
		if !ok {
			t.Fatalf("LookRotation(%v) not ok", dir)
		}
		forward := q.Rotate(WorldForward)
		if !vec3ApproxEqual(forward, dir.Normalize(), testEpsilon) {
			t.Errorf("LookRotation(%v) forward = %v", dir, forward)
		}
		right := q.Rotate(WorldRight)
		if math.Abs(float64(right.Y())) > testEpsilon {
			t.Errorf("LookRotation(%v) introduced roll, right = %v", dir, right)
		}
	}
}

func TestLookRotation_Identity(t *testing.T) {
	q, ok := LookRotation(WorldForward, WorldUp)
	if !ok {
		t.Fatal("LookRotation(forward) not ok")
	}
	if !quatApproxEqual(q, mgl32.QuatIdent(), testEpsilon) {
		t.Errorf("LookRotation(forward) = %v, want identity", q)
	}
}

func TestLookRotation_Degenerate(t *testing.T) {
	for _, dir := range []mgl32.Vec3{{}, WorldUp, {0, -2, 0}} {
		if _, ok := LookRotation(dir, WorldUp); ok {
			t.Errorf("LookRotation(%v) should report degenerate input", dir)
		}
	}
}

func TestRotateTowards(t *testing.T) {
	from := mgl32.QuatIdent()
	to := mgl32.QuatRotate(math.Pi/2, WorldUp)

	t.Run("bounded step", func(t *testing.T) {
		got := RotateTowards(from, to, 0.25)
		if a := QuatAngle(from, got); math.Abs(float64(a-0.25)) > 1e-3 {
			t.Errorf("stepped angle = %v, want 0.25", a)
		}
		if a := QuatAngle(got, to); math.Abs(float64(a-(math.Pi/2-0.25))) > 1e-3 {
			t.Errorf("remaining angle = %v, want %v", a, math.Pi/2-0.25)
		}
	})

	t.Run("arrives exactly", func(t *testing.T) {
		got := RotateTowards(from, to, math.Pi)
		if got != to {
			t.Errorf("RotateTowards with large step = %v, want exactly %v", got, to)
		}
	})

	t.Run("zero step", func(t *testing.T) {
		got := RotateTowards(from, to, 0)
		if got != from {
			t.Errorf("RotateTowards with zero step = %v, want %v", got, from)
		}
	})

	t.Run("short arc", func(t *testing.T) {
		got := RotateTowards(from, to.Scale(-1), 0.1)
		if a := QuatAngle(from, got); math.Abs(float64(a-0.1)) > 1e-3 {
			t.Errorf("stepped angle = %v, want 0.1", a)
		}
	})
}

func TestYaw(t *testing.T) {
	for _, yaw := range []float32{0, 0.5, -1.2, 3} {
		got := Yaw(mgl32.QuatRotate(yaw, WorldUp))
		if math.Abs(float64(got-yaw)) > 1e-4 {
			t.Errorf("Yaw(rotate %v) = %v", yaw, got)
		}
	}
}

func TestYawPitchRotation(t *testing.T) {
	q := YawPitchRotation(math.Pi/2, 0.3)
	forward := q.Rotate(WorldForward)

	if got := float32(math.Asin(float64(forward.Y()))); math.Abs(float64(got-0.3)) > 1e-4 {
		t.Errorf("pitch = %v, want 0.3", got)
	}
	if got := Yaw(q); math.Abs(float64(got-math.Pi/2)) > 1e-4 {
		t.Errorf("yaw = %v, want pi/2", got)
	}
	if right := q.Rotate(WorldRight); math.Abs(float64(right.Y())) > testEpsilon {
		t.Errorf("right axis tilted: %v", right)
	}
}

func TestClampAndCoalesce(t *testing.T) {
	if got := Clamp(float32(2), -1, 1); got != 1 {
		t.Errorf("Clamp(2, -1, 1) = %v", got)
	}
	if got := Clamp(-5, -1, 1); got != -1 {
		t.Errorf("Clamp(-5, -1, 1) = %v", got)
	}
	if got := Coalesce(float32(0), 0, 4, 5); got != 4 {
		t.Errorf("Coalesce = %v, want 4", got)
	}
}
