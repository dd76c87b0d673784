package vmath

import (
	"math"
)

// Vec3F is a float64 3D vector used for positions, velocities and directions
// World plane is X/Y, Z is altitude
type Vec3F struct {
	X, Y, Z float64
}

// Common axes
var (
	V3FZero    = Vec3F{}
	V3FUnitX   = Vec3F{X: 1}
	V3FUnitY   = Vec3F{Y: 1}
	V3FUnitZ   = Vec3F{Z: 1}
	V3FForward = V3FUnitY
)

func V3FAdd(a, b Vec3F) Vec3F {
	return Vec3F{a.X + b.X, a.Y + b.Y, a.Z + b.Z}
}

func V3FSub(a, b Vec3F) Vec3F {
	return Vec3F{a.X - b.X, a.Y - b.Y, a.Z - b.Z}
}

func V3FScale(v Vec3F, s float64) Vec3F {
	return Vec3F{v.X * s, v.Y * s, v.Z * s}
}

// V3FAddScaled returns a + v*s, the Euler integration step
func V3FAddScaled(a, v Vec3F, s float64) Vec3F {
	return Vec3F{a.X + v.X*s, a.Y + v.Y*s, a.Z + v.Z*s}
}

func V3FDot(a, b Vec3F) float64 {
	return a.X*b.X + a.Y*b.Y + a.Z*b.Z
}

func V3FCross(a, b Vec3F) Vec3F {
	return Vec3F{
		a.Y*b.Z - a.Z*b.Y,
		a.Z*b.X - a.X*b.Z,
		a.X*b.Y - a.Y*b.X,
	}
}

func V3FMagSq(v Vec3F) float64 {
	return v.X*v.X + v.Y*v.Y + v.Z*v.Z
}

func V3FMag(v Vec3F) float64 {
	return math.Sqrt(V3FMagSq(v))
}

// V3FDistSq is the squared distance between a and b
func V3FDistSq(a, b Vec3F) float64 {
	dx, dy, dz := a.X-b.X, a.Y-b.Y, a.Z-b.Z
	return dx*dx + dy*dy + dz*dz
}

// V3FNormalize returns the unit vector of v, zero vector for zero length input
func V3FNormalize(v Vec3F) Vec3F {
	mag := V3FMag(v)
	if mag == 0 {
		return Vec3F{}
	}
	inv := 1.0 / mag
	return Vec3F{v.X * inv, v.Y * inv, v.Z * inv}
}

// V3FDirection returns the unit vector from a to b
// ok is false when the points coincide or the result is not finite
func V3FDirection(from, to Vec3F) (dir Vec3F, ok bool) {
	d := V3FSub(to, from)
	mag := V3FMag(d)
	if mag == 0 || !IsFinite(mag) {
		return Vec3F{}, false
	}
	return V3FScale(d, 1.0/mag), true
}

// V3FClampLen limits the length of v to max
func V3FClampLen(v Vec3F, max float64) Vec3F {
	magSq := V3FMagSq(v)
	if magSq <= max*max || magSq == 0 {
		return v
	}
	return V3FScale(v, max/math.Sqrt(magSq))
}

// V3FPerpXY returns v rotated 90 degrees counter-clockwise in the X/Y plane
func V3FPerpXY(v Vec3F) Vec3F {
	return Vec3F{-v.Y, v.X, v.Z}
}

// V3FFinite reports whether every component is neither NaN nor ±Inf
func V3FFinite(v Vec3F) bool {
	return IsFinite(v.X) && IsFinite(v.Y) && IsFinite(v.Z)
}

// IsFinite reports whether f is neither NaN nor ±Inf
func IsFinite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
