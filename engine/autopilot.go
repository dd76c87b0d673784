package engine

import (
	"math"

	"github.com/lixenwraith/starfall/vmath"
	"github.com/lixenwraith/starfall/world"
)

// Autopilot drives the player from the published snapshot: it targets the
// nearest enemy, slides under it, and fires every tick
// Used by the headless runner and for soak tests
type Autopilot struct {
	// Deadband is the X distance under which the ship stops sliding
	Deadband float64
}

// Drive issues the next tick's commands for s
func (a *Autopilot) Drive(e *Engine, s *Snapshot) {
	if s.Over {
		return
	}
	if s.Wave.Phase == world.PhaseIdle && s.Wave.Timer > 0 && len(s.Enemies) == 0 {
		e.StartWave()
	}

	target, ok := nearest(s)
	if !ok {
		e.Steer(vmath.Vec3F{})
		return
	}
	if target.Handle != s.Target {
		e.SetTarget(target.Handle)
	}

	dx := target.Position.X - s.Player.Position.X
	switch {
	case math.Abs(dx) <= a.Deadband:
		e.Steer(vmath.Vec3F{})
	case dx > 0:
		e.Steer(vmath.V3FUnitX)
	default:
		e.Steer(vmath.V3FScale(vmath.V3FUnitX, -1))
	}
	e.Fire(1)
}

// nearest picks the closest enemy, ties to the lower handle
func nearest(s *Snapshot) (EntityView, bool) {
	var (
		best  EntityView
		bestD = math.Inf(1)
		found bool
	)
	for _, en := range s.Enemies {
		d := vmath.V3FDistSq(en.Position, s.Player.Position)
		if d < bestD || (d == bestD && en.Handle.Less(best.Handle)) {
			best, bestD, found = en, d, true
		}
	}
	return best, found
}
