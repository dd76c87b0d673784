package vmath

import (
	"math"
)

// Quat is a rotation quaternion, expected unit length
// Zero value is not a valid rotation, use QuatIdentity
type Quat struct {
	W, X, Y, Z float64
}

// QuatIdentity is the no-rotation quaternion
var QuatIdentity = Quat{W: 1}

// QuatFromAxisAngle builds a rotation of angle radians around a unit axis
func QuatFromAxisAngle(axis Vec3F, angle float64) Quat {
	s, c := math.Sincos(angle * 0.5)
	return Quat{W: c, X: axis.X * s, Y: axis.Y * s, Z: axis.Z * s}
}

// QuatFromYaw rotates around +Z, yaw 0 faces +Y
func QuatFromYaw(yaw float64) Quat {
	return QuatFromAxisAngle(V3FUnitZ, yaw)
}

// QuatFromTo returns the shortest-arc rotation taking unit vector a onto unit vector b
// Opposite vectors rotate half a turn around +Z (yaw flip)
func QuatFromTo(a, b Vec3F) Quat {
	d := V3FDot(a, b)
	if d < -1+1e-9 {
		// Component of +Z orthogonal to a, falls back to +X when a is vertical
		axis := V3FSub(V3FUnitZ, V3FScale(a, a.Z))
		if V3FMagSq(axis) < 1e-12 {
			axis = V3FSub(V3FUnitX, V3FScale(a, a.X))
		}
		return QuatFromAxisAngle(V3FNormalize(axis), math.Pi)
	}
	c := V3FCross(a, b)
	return QuatNormalize(Quat{W: 1 + d, X: c.X, Y: c.Y, Z: c.Z})
}

// QuatLookAt orients local forward (+Y) along dir
// dir must be unit length
func QuatLookAt(dir Vec3F) Quat {
	return QuatFromTo(V3FForward, dir)
}

func QuatMul(a, b Quat) Quat {
	return Quat{
		W: a.W*b.W - a.X*b.X - a.Y*b.Y - a.Z*b.Z,
		X: a.W*b.X + a.X*b.W + a.Y*b.Z - a.Z*b.Y,
		Y: a.W*b.Y - a.X*b.Z + a.Y*b.W + a.Z*b.X,
		Z: a.W*b.Z + a.X*b.Y - a.Y*b.X + a.Z*b.W,
	}
}

// QuatNormalize rescales q to unit length, identity for zero input
func QuatNormalize(q Quat) Quat {
	mag := math.Sqrt(q.W*q.W + q.X*q.X + q.Y*q.Y + q.Z*q.Z)
	if mag == 0 {
		return QuatIdentity
	}
	inv := 1.0 / mag
	return Quat{q.W * inv, q.X * inv, q.Y * inv, q.Z * inv}
}

// QuatRotate applies q to v
// v' = v + 2w(u×v) + 2u×(u×v), u = (x, y, z)
func QuatRotate(q Quat, v Vec3F) Vec3F {
	u := Vec3F{q.X, q.Y, q.Z}
	t := V3FScale(V3FCross(u, v), 2)
	return V3FAdd(V3FAdd(v, V3FScale(t, q.W)), V3FCross(u, t))
}

// QuatForward is local +Y in world space
func QuatForward(q Quat) Vec3F {
	return QuatRotate(q, V3FForward)
}

// QuatFinite reports whether all four components are finite
func QuatFinite(q Quat) bool {
	return IsFinite(q.W) && IsFinite(q.X) && IsFinite(q.Y) && IsFinite(q.Z)
}
