package system

import (
	"math"

	"github.com/lixenwraith/starfall/core"
	"github.com/lixenwraith/starfall/parameter"
	"github.com/lixenwraith/starfall/vmath"
	"github.com/lixenwraith/starfall/world"
)

// MotionSystem integrates velocity with one Euler step per tick, decays
// lifetimes, and removes anything that left the arena or went non-finite
type MotionSystem struct{}

func NewMotionSystem() *MotionSystem { return &MotionSystem{} }

func (s *MotionSystem) Name() string  { return "motion" }
func (s *MotionSystem) Priority() int { return parameter.PriorityMotion }

func (s *MotionSystem) Update(w *world.World, dt float64) {
	s.player(w, dt)

	w.Projectiles.ForEachActive(func(_ int, p *core.Entity) bool {
		if !p.Alive {
			return true
		}
		p.Integrate(dt)
		p.Lifetime -= dt
		switch {
		case !p.Finite():
			w.Contain(p)
		case p.Lifetime <= 0, !w.InArena(p.Position):
			p.Kill()
		}
		return true
	})

	w.Enemies.ForEachActive(func(_ int, e *core.Entity) bool {
		if !e.Alive {
			return true
		}
		e.Integrate(dt)
		switch {
		case !e.Finite():
			w.Contain(e)
		case !w.InArena(e.Position):
			e.Kill()
			w.Stats.Escaped++
			w.Emit(core.Event{
				Kind:      core.EventEnemyEscaped,
				Handle:    e.Handle,
				Faction:   e.Faction,
				Archetype: e.Archetype,
				Position:  e.Position,
				Wave:      e.Wave,
			})
		}
		return true
	})

	w.Effects.ForEachActive(func(_ int, fx *core.Entity) bool {
		if !fx.Alive {
			return true
		}
		fx.Integrate(dt)
		fx.Lifetime -= dt
		if fx.Lifetime <= 0 || !fx.Finite() {
			fx.Kill()
		}
		return true
	})
}

// player applies the steer command and keeps the ship inside the arena
func (s *MotionSystem) player(w *world.World, dt float64) {
	p := &w.Player
	if w.Input.SteerSet && vmath.V3FFinite(w.Input.Steer) {
		w.Steer = vmath.V3FClampLen(vmath.Vec3F{X: w.Input.Steer.X, Y: w.Input.Steer.Y}, 1)
	}
	if !p.Alive {
		p.Velocity = vmath.Vec3F{}
		return
	}

	prev := p.Position
	p.Velocity = vmath.V3FScale(w.Steer, w.Rules.Player.Speed)
	p.Integrate(dt)
	if !p.Finite() {
		// The player is not pooled; restore instead of removing
		p.Position = prev
		p.Velocity = vmath.Vec3F{}
		p.Orientation = vmath.QuatIdentity
		w.Stats.Anomalies++
		w.Log.Warn().Err(core.ErrNumericAnomaly).Uint64("tick", w.Tick).Msg("non-finite player transform, restored")
		return
	}

	a := w.Rules.Arena
	r := w.Rules.Player.Radius
	p.Position.X = math.Max(-a.HalfWidth+r, math.Min(a.HalfWidth-r, p.Position.X))
	p.Position.Y = math.Max(-a.HalfHeight+r, math.Min(a.HalfHeight-r, p.Position.Y))
}
