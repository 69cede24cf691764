package common

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// World-space reference axes. The engine is right-handed with +Y up and -Z forward,
// so an identity rotation faces WorldForward.
var (
	WorldUp      = mgl32.Vec3{0, 1, 0}
	WorldForward = mgl32.Vec3{0, 0, -1}
	WorldBack    = mgl32.Vec3{0, 0, 1}
	WorldRight   = mgl32.Vec3{1, 0, 0}
	WorldLeft    = mgl32.Vec3{-1, 0, 0}
)

// directionEpsilon is the squared length below which a direction is treated as degenerate.
const directionEpsilon = 1e-12

// angleEpsilon is the angle in radians below which two rotations are considered equal.
// Float32 acos near 1 cannot resolve finer angles.
const angleEpsilon = 1e-4

// FlattenY projects a direction onto the horizontal plane by zeroing its Y component and renormalizing.
//
// Parameters:
//   - v: the direction to flatten
//
// Returns:
//   - mgl32.Vec3: the unit horizontal direction
//   - bool: false if v has no horizontal component (points straight up or down, or is zero)
func FlattenY(v mgl32.Vec3) (mgl32.Vec3, bool) {
	flat := mgl32.Vec3{v.X(), 0, v.Z()}
	if flat.Dot(flat) < directionEpsilon {
		return mgl32.Vec3{}, false
	}
	return flat.Normalize(), true
}

// SlerpVec3 spherically interpolates between two unit vectors.
// At t=0.5 this is the unit bisector of a and b, unlike a linear average which shrinks.
// Antiparallel inputs rotate a about an arbitrary perpendicular axis.
//
// Parameters:
//   - a: start direction (unit length)
//   - b: end direction (unit length)
//   - t: interpolation factor in [0, 1]
//
// Returns:
//   - mgl32.Vec3: the interpolated unit direction
func SlerpVec3(a, b mgl32.Vec3, t float32) mgl32.Vec3 {
	dot := Clamp(a.Dot(b), -1, 1)
	if dot > 0.9995 {
		return a.Add(b.Sub(a).Mul(t)).Normalize()
	}
	if dot < -0.9995 {
		return mgl32.QuatRotate(math.Pi*t, orthogonal(a)).Rotate(a)
	}
	theta := math.Acos(float64(dot))
	sinTheta := math.Sin(theta)
	wa := float32(math.Sin((1-float64(t))*theta) / sinTheta)
	wb := float32(math.Sin(float64(t)*theta) / sinTheta)
	return a.Mul(wa).Add(b.Mul(wb))
}

// orthogonal returns a unit vector perpendicular to v.
func orthogonal(v mgl32.Vec3) mgl32.Vec3 {
	if math.Abs(float64(v.X())) < 0.9 {
		return v.Cross(WorldRight).Normalize()
	}
	return v.Cross(WorldUp).Normalize()
}

// LookRotation builds the rotation whose forward (-Z) axis points along dir and whose up axis
// lies in the plane of dir and up.
//
// Parameters:
//   - dir: the direction to face (any length)
//   - up: the reference up vector, typically WorldUp
//
// Returns:
//   - mgl32.Quat: the look rotation
//   - bool: false if dir is zero or parallel to up, in which case the identity is returned
func LookRotation(dir, up mgl32.Vec3) (mgl32.Quat, bool) {
	if dir.Dot(dir) < directionEpsilon {
		return mgl32.QuatIdent(), false
	}
	back := dir.Normalize().Mul(-1)
	right := up.Cross(back)
	if right.Dot(right) < directionEpsilon {
		return mgl32.QuatIdent(), false
	}
	right = right.Normalize()
	newUp := back.Cross(right)

	m := mgl32.Mat3FromCols(right, newUp, back)
	return mgl32.Mat4ToQuat(m.Mat4()).Normalize(), true
}

// QuatAngle returns the angle in radians of the shortest rotation taking a to b.
//
// Parameters:
//   - a, b: unit quaternions
//
// Returns:
//   - float32: angle in [0, pi]
func QuatAngle(a, b mgl32.Quat) float32 {
	dot := float32(math.Abs(float64(a.Dot(b))))
	return 2 * float32(math.Acos(float64(Clamp(dot, 0, 1))))
}

// RotateTowards rotates from toward to by at most maxAngle radians along the shortest arc.
// When the remaining angle is within maxAngle the result is exactly to, so repeated calls
// never overshoot and arrive in a finite number of steps.
//
// Parameters:
//   - from: the current rotation
//   - to: the target rotation
//   - maxAngle: the largest angle in radians to rotate by (<= 0 leaves from unchanged)
//
// Returns:
//   - mgl32.Quat: the stepped rotation
func RotateTowards(from, to mgl32.Quat, maxAngle float32) mgl32.Quat {
	angle := QuatAngle(from, to)
	if angle <= angleEpsilon || angle <= maxAngle {
		return to
	}
	if maxAngle <= 0 {
		return from
	}

	// QuatSlerp does not pick the short arc on its own.
	target := to
	if from.Dot(target) < 0 {
		target = target.Scale(-1)
	}
	return mgl32.QuatSlerp(from, target, maxAngle/angle).Normalize()
}

// Yaw returns the heading of a rotation around world up, measured from WorldForward.
// Positive yaw turns toward WorldLeft.
//
// Parameters:
//   - q: the rotation
//
// Returns:
//   - float32: yaw in radians in (-pi, pi]
func Yaw(q mgl32.Quat) float32 {
	f := q.Rotate(WorldForward)
	return float32(math.Atan2(float64(-f.X()), float64(-f.Z())))
}

// YawPitchRotation composes a yaw about world up with a pitch about the resulting local right axis.
// No roll is ever introduced.
//
// Parameters:
//   - yaw: rotation around WorldUp in radians
//   - pitch: rotation around the local X axis in radians (positive looks up)
//
// Returns:
//   - mgl32.Quat: the combined rotation
func YawPitchRotation(yaw, pitch float32) mgl32.Quat {
	return mgl32.QuatRotate(yaw, WorldUp).Mul(mgl32.QuatRotate(pitch, WorldRight)).Normalize()
}
