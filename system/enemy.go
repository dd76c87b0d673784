package system

import (
	"math"

	"github.com/lixenwraith/starfall/config"
	"github.com/lixenwraith/starfall/core"
	"github.com/lixenwraith/starfall/parameter"
	"github.com/lixenwraith/starfall/vmath"
	"github.com/lixenwraith/starfall/world"
)

// EnemySystem runs the per-enemy state machine
//
//	Approach -> Engage   within engage range of the player
//	Engage   -> Approach beyond engage range * hysteresis
//	Engage   -> Retreat  below the archetype's retreat health fraction
//	Retreat  -> Approach beyond engage range * regroup factor
//	any      -> Dead     health <= 0, removed by cleanup
//
// Archetypes are table rows switched over here, not behavior objects
type EnemySystem struct{}

func NewEnemySystem() *EnemySystem { return &EnemySystem{} }

func (s *EnemySystem) Name() string  { return "enemy" }
func (s *EnemySystem) Priority() int { return parameter.PriorityEnemy }

func (s *EnemySystem) Update(w *world.World, dt float64) {
	player := &w.Player
	// Enemies fired this tick extend the projectile pool, not this one, so
	// the active range is stable during iteration
	w.Enemies.ForEachActive(func(_ int, e *core.Entity) bool {
		if !e.Alive {
			return true
		}
		if e.Health <= 0 {
			e.Kill()
			return true
		}
		a := w.Rules.Archetype(e.Archetype)

		dir, ok := vmath.V3FDirection(e.Position, player.Position)
		if !ok {
			// On top of the player, keep course; the ram check resolves it
			return true
		}
		dist := math.Sqrt(vmath.V3FDistSq(e.Position, player.Position))

		s.transition(e, a, dist)

		switch e.State {
		case core.AIApproach:
			e.Orientation = vmath.QuatLookAt(dir)
			e.Velocity = vmath.V3FScale(dir, a.Speed)

		case core.AIEngage:
			e.Orientation = vmath.QuatLookAt(dir)
			s.strafe(w, e, a, dir)
			s.fire(w, e, a, dt)

		case core.AIRetreat:
			away := vmath.V3FScale(dir, -1)
			e.Orientation = vmath.QuatLookAt(away)
			e.Velocity = vmath.V3FScale(away, a.Speed)
		}

		if !e.Finite() {
			w.Contain(e)
		}
		return true
	})
}

func (s *EnemySystem) transition(e *core.Entity, a *config.ArchetypeRules, dist float64) {
	switch e.State {
	case core.AIApproach:
		if dist <= a.EngageRange {
			e.State = core.AIEngage
		}
	case core.AIEngage:
		if a.RetreatHealth > 0 && e.Health < a.RetreatHealth*e.MaxHealth {
			e.State = core.AIRetreat
		} else if dist > a.EngageRange*parameter.EngageHysteresis {
			e.State = core.AIApproach
		}
	case core.AIRetreat:
		if dist > a.EngageRange*parameter.RegroupRangeFactor {
			e.State = core.AIApproach
		}
	}
}

// strafe moves sideways relative to the player, reversing at the arena edge
func (s *EnemySystem) strafe(w *world.World, e *core.Entity, a *config.ArchetypeRules, dir vmath.Vec3F) {
	side := vmath.V3FPerpXY(dir)
	edge := w.Rules.Arena.HalfWidth - a.Radius
	if (e.Position.X > edge && side.X*e.Strafe > 0) || (e.Position.X < -edge && side.X*e.Strafe < 0) {
		e.Strafe = -e.Strafe
	}
	e.Velocity = vmath.V3FScale(side, e.Strafe*a.Speed*parameter.StrafeFactor)
}

// fire shoots on the archetype's own cadence; a dropped shot still resets
// the cooldown
func (s *EnemySystem) fire(w *world.World, e *core.Entity, a *config.ArchetypeRules, dt float64) {
	if a.FireInterval <= 0 {
		return
	}
	e.Cooldown -= dt
	if e.Cooldown > 0 {
		return
	}
	Fire(w, e, a.Weapon)
	e.Cooldown = a.FireInterval
}
