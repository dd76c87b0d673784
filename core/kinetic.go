package core

import "github.com/lixenwraith/starfall/vmath"

// Kinetic is the transform and motion state shared by every entity kind
type Kinetic struct {
	// Position in world units, X/Y plane with Z altitude
	Position vmath.Vec3F
	// Orientation rotates local +Y (forward) into world space
	Orientation vmath.Quat
	// Velocity in world units per second
	Velocity vmath.Vec3F
}

// Integrate advances position by one Euler step
func (k *Kinetic) Integrate(dt float64) {
	k.Position = vmath.V3FAddScaled(k.Position, k.Velocity, dt)
}

// Forward is the world-space facing direction
func (k *Kinetic) Forward() vmath.Vec3F {
	return vmath.QuatForward(k.Orientation)
}

// Finite reports whether the transform can be published to renderers
func (k *Kinetic) Finite() bool {
	return vmath.V3FFinite(k.Position) &&
		vmath.V3FFinite(k.Velocity) &&
		vmath.QuatFinite(k.Orientation)
}
