package system

import (
	"github.com/lixenwraith/starfall/core"
	"github.com/lixenwraith/starfall/parameter"
	"github.com/lixenwraith/starfall/spatial"
	"github.com/lixenwraith/starfall/vmath"
	"github.com/lixenwraith/starfall/world"
)

// CollisionSystem resolves projectile hits through the grid and enemy rams
// against the player directly
//
// A projectile hits at most one target: the nearest living candidate of
// another faction, ties broken by the lower handle. Targets killed earlier
// in the pass are skipped. Projectiles never collide with each other
type CollisionSystem struct {
	buf []spatial.Candidate
}

func NewCollisionSystem() *CollisionSystem {
	return &CollisionSystem{buf: make([]spatial.Candidate, 0, 64)}
}

func (s *CollisionSystem) Name() string  { return "collision" }
func (s *CollisionSystem) Priority() int { return parameter.PriorityCollision }

func (s *CollisionSystem) Update(w *world.World, _ float64) {
	w.Projectiles.ForEachActive(func(_ int, p *core.Entity) bool {
		if p.Alive {
			s.projectile(w, p)
		}
		return true
	})
	s.ram(w)
}

func (s *CollisionSystem) projectile(w *world.World, p *core.Entity) {
	pr := w.Rules.Weapon(p.Weapon).Radius
	s.buf = w.Grid.Query(p.Position, pr+w.Rules.MaxTargetRadius, s.buf[:0])

	var (
		best     *core.Entity
		bestDist float64
	)
	for _, c := range s.buf {
		t := s.resolve(w, c.Ref)
		if t == nil || !t.Alive || t.Faction == p.Faction {
			continue
		}
		r := pr + targetRadius(w, t)
		d := vmath.V3FDistSq(p.Position, t.Position)
		if d > r*r {
			continue
		}
		if best == nil || d < bestDist || (d == bestDist && t.Handle.Less(best.Handle)) {
			best, bestDist = t, d
		}
	}
	if best == nil {
		return
	}

	p.Kill()
	switch best.Kind {
	case core.KindEnemy:
		damageEnemy(w, best, p.Damage)
	case core.KindPlayer:
		damagePlayer(w, p.Damage, p.Position)
	}
}

// ram destroys every living enemy overlapping the player and damages the player
func (s *CollisionSystem) ram(w *world.World) {
	if !w.Player.Alive {
		return
	}
	pr := w.Rules.Player.Radius
	w.Enemies.ForEachActive(func(_ int, e *core.Entity) bool {
		if !w.Player.Alive {
			return false
		}
		if !e.Alive {
			return true
		}
		a := w.Rules.Archetype(e.Archetype)
		r := pr + a.Radius
		if vmath.V3FDistSq(e.Position, w.Player.Position) > r*r {
			return true
		}
		destroyEnemy(w, e)
		damagePlayer(w, a.RamDamage, e.Position)
		return true
	})
}

func (s *CollisionSystem) resolve(w *world.World, ref spatial.Ref) *core.Entity {
	switch ref.Kind {
	case core.KindPlayer:
		return &w.Player
	case core.KindEnemy:
		if int(ref.Index) < w.Enemies.Len() {
			return w.Enemies.At(int(ref.Index))
		}
	}
	return nil
}

func targetRadius(w *world.World, t *core.Entity) float64 {
	if t.Kind == core.KindPlayer {
		return w.Rules.Player.Radius
	}
	return w.Rules.Archetype(t.Archetype).Radius
}

func damageEnemy(w *world.World, e *core.Entity, damage float64) {
	e.Health -= damage
	if e.Health <= 0 {
		destroyEnemy(w, e)
		return
	}
	w.Emit(core.Event{
		Kind:      core.EventEnemyHit,
		Handle:    e.Handle,
		Faction:   e.Faction,
		Archetype: e.Archetype,
		Position:  e.Position,
		Wave:      e.Wave,
		Value:     damage,
	})
	spawnEffect(w, core.EffectSpark, e.Position)
}

func destroyEnemy(w *world.World, e *core.Entity) {
	score := w.Rules.Archetype(e.Archetype).Score
	e.Kill()
	w.Stats.Kills++
	w.Stats.Score += score
	w.Emit(core.Event{
		Kind:      core.EventEnemyDestroyed,
		Handle:    e.Handle,
		Faction:   e.Faction,
		Archetype: e.Archetype,
		Position:  e.Position,
		Wave:      e.Wave,
		Value:     float64(score),
	})
	spawnEffect(w, core.EffectExplosion, e.Position)
}

func damagePlayer(w *world.World, damage float64, at vmath.Vec3F) {
	p := &w.Player
	p.Health -= damage
	w.Stats.DamageTaken += damage
	w.Emit(core.Event{
		Kind:     core.EventPlayerHit,
		Handle:   p.Handle,
		Faction:  p.Faction,
		Position: at,
		Value:    damage,
	})
	spawnEffect(w, core.EffectSpark, at)

	if p.Health > 0 {
		return
	}
	p.Kill()
	w.Emit(core.Event{
		Kind:     core.EventPlayerDestroyed,
		Handle:   p.Handle,
		Faction:  p.Faction,
		Position: p.Position,
	})
	spawnEffect(w, core.EffectExplosion, p.Position)
}
