package system

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/starfall/config"
	"github.com/lixenwraith/starfall/core"
	"github.com/lixenwraith/starfall/vmath"
	"github.com/lixenwraith/starfall/world"
)

// newTestWorld builds a world from the default tables with a single
// one-scout wave, applying mutate before compilation
func newTestWorld(t *testing.T, mutate func(c *config.Config)) *world.World {
	t.Helper()
	cfg := config.Default()
	cfg.Waves = []config.WaveConfig{{Spawns: []config.SpawnConfig{{Archetype: "scout"}}}}
	cfg.Loop.From = 0
	if mutate != nil {
		mutate(cfg)
	}
	rules, err := cfg.Compile()
	require.NoError(t, err)
	w, err := world.New(rules, zerolog.Nop())
	require.NoError(t, err)
	return w
}

// placeEnemy acquires an enemy of archetype at pos with its base health
func placeEnemy(t *testing.T, w *world.World, archetype string, pos vmath.Vec3F) core.Handle {
	t.Helper()
	id, ok := w.Rules.ArchetypeID(archetype)
	require.True(t, ok, archetype)
	a := w.Rules.Archetype(id)

	h, e, err := w.Enemies.Acquire()
	require.NoError(t, err)
	e.Faction = core.FactionHostile
	e.Archetype = id
	e.State = core.AIApproach
	e.Health = a.Health
	e.MaxHealth = a.Health
	e.Cooldown = a.FireInterval
	e.Strafe = 1
	e.Position = pos
	return h
}

// placeProjectile acquires a projectile of weapon for faction at pos
func placeProjectile(t *testing.T, w *world.World, faction core.Faction, weapon string, pos, vel vmath.Vec3F) core.Handle {
	t.Helper()
	id, ok := w.Rules.WeaponID(weapon)
	require.True(t, ok, weapon)
	wp := w.Rules.Weapon(id)

	h, p, err := w.Projectiles.Acquire()
	require.NoError(t, err)
	p.Faction = faction
	p.Weapon = id
	p.Damage = wp.Damage
	p.Lifetime = wp.Lifetime
	p.Position = pos
	p.Velocity = vel
	return h
}

func enemy(t *testing.T, w *world.World, h core.Handle) *core.Entity {
	t.Helper()
	e, ok := w.Enemies.Get(h)
	require.True(t, ok, "enemy %s", h)
	return e
}

func projectile(t *testing.T, w *world.World, h core.Handle) *core.Entity {
	t.Helper()
	p, ok := w.Projectiles.Get(h)
	require.True(t, ok, "projectile %s", h)
	return p
}

// collide runs the index and collision stages
func collide(w *world.World) {
	NewIndexSystem().Update(w, 0)
	NewCollisionSystem().Update(w, 0)
}

func countEvents(w *world.World, kind core.EventKind) int {
	n := 0
	for _, ev := range w.Events.All() {
		if ev.Kind == kind {
			n++
		}
	}
	return n
}
