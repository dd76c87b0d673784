package system

import (
	"github.com/lixenwraith/starfall/core"
	"github.com/lixenwraith/starfall/parameter"
	"github.com/lixenwraith/starfall/vmath"
	"github.com/lixenwraith/starfall/world"
)

// WeaponSystem turns player commands and cooldown into projectile spawns
// Equip and target commands are applied before firing in the same tick
type WeaponSystem struct{}

func NewWeaponSystem() *WeaponSystem { return &WeaponSystem{} }

func (s *WeaponSystem) Name() string  { return "weapon" }
func (s *WeaponSystem) Priority() int { return parameter.PriorityWeapon }

func (s *WeaponSystem) Update(w *world.World, dt float64) {
	p := &w.Player
	in := &w.Input

	if in.EquipSet && w.Rules.ValidWeapon(in.Equip) && in.Equip != p.Weapon {
		p.Weapon = in.Equip
		w.Log.Debug().Str("weapon", w.Rules.Weapon(p.Weapon).Name).Msg("weapon equipped")
	}
	if in.TargetSet {
		w.Target = in.Target
	}

	if p.Cooldown > 0 {
		p.Cooldown -= dt
		if p.Cooldown < 0 {
			p.Cooldown = 0
		}
	}

	if !p.Alive {
		return
	}

	s.aim(w)

	wp := w.Rules.Weapon(p.Weapon)
	for n := 0; n < in.Fire; n++ {
		if p.Cooldown > 0 {
			// Requests during cooldown are consumed without firing
			break
		}
		if !Fire(w, p, p.Weapon) {
			// Pool stays full for the rest of the tick, drop the remainder at once
			w.Stats.DroppedFires += in.Fire - n - 1
			break
		}
		p.Cooldown = wp.Cooldown
	}
}

// aim turns the ship toward a live target, a stale or absent target keeps
// the current heading
func (s *WeaponSystem) aim(w *world.World) {
	if !w.Target.Valid() {
		return
	}
	t, ok := w.Enemies.Live(w.Target)
	if !ok {
		w.Target = core.NoHandle
		return
	}
	if dir, ok := vmath.V3FDirection(w.Player.Position, t.Position); ok {
		w.Player.Orientation = vmath.QuatLookAt(dir)
	}
}

// Fire spawns one projectile from src: position and orientation from the
// source, velocity along its forward vector at the weapon speed
// Returns false when the projectile pool is exhausted; the request is dropped
func Fire(w *world.World, src *core.Entity, weapon core.WeaponID) bool {
	h, p, err := w.Projectiles.Acquire()
	if err != nil {
		w.Stats.DroppedFires++
		return false
	}
	wp := w.Rules.Weapon(weapon)

	p.Faction = src.Faction
	p.Owner = src.Handle
	p.Weapon = weapon
	p.Damage = wp.Damage
	p.Lifetime = wp.Lifetime
	p.Position = src.Position
	p.Orientation = src.Orientation
	p.Velocity = vmath.V3FScale(src.Forward(), wp.Speed)

	w.Stats.Fired++
	w.Emit(core.Event{
		Kind:     core.EventShotFired,
		Handle:   h,
		Faction:  src.Faction,
		Position: src.Position,
	})
	return true
}
