package system

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/starfall/core"
	"github.com/lixenwraith/starfall/vmath"
	"github.com/lixenwraith/starfall/world"
)

func TestMotion_EulerStep(t *testing.T) {
	w := newTestWorld(t, nil)
	h := placeProjectile(t, w, core.FactionPlayer, "blaster", vmath.Vec3F{X: 1, Y: 2}, vmath.Vec3F{X: 10, Y: -20})

	NewMotionSystem().Update(w, 0.1)

	p := projectile(t, w, h)
	assert.InDelta(t, 2, p.Position.X, 1e-9)
	assert.InDelta(t, 0, p.Position.Y, 1e-9)
	assert.InDelta(t, w.Rules.Weapon(p.Weapon).Lifetime-0.1, p.Lifetime, 1e-9)
}

// A non-finite update removes only the offending projectile, in the same tick
func TestMotion_NonFiniteContained(t *testing.T) {
	w := newTestWorld(t, nil)
	good := placeProjectile(t, w, core.FactionPlayer, "blaster", vmath.Vec3F{}, vmath.Vec3F{Y: 10})
	bad := placeProjectile(t, w, core.FactionPlayer, "blaster", vmath.Vec3F{X: 5}, vmath.Vec3F{X: math.Inf(1)})
	foe := placeEnemy(t, w, "gunship", vmath.Vec3F{X: 20, Y: 20})

	NewMotionSystem().Update(w, 0.1)
	assert.False(t, projectile(t, w, bad).Alive)
	assert.Equal(t, 1, w.Stats.Anomalies)

	NewIndexSystem().Update(w, 0)
	assert.Equal(t, 2, w.Grid.Len(), "player and enemy only")

	NewCleanupSystem().Update(w, 0)
	require.Equal(t, 1, w.Projectiles.Len())
	assert.Equal(t, good, w.Projectiles.At(0).Handle)
	assert.InDelta(t, 1, w.Projectiles.At(0).Position.Y, 1e-9)

	_, ok := w.Projectiles.Get(bad)
	assert.False(t, ok, "handle invalidated")
	assert.True(t, enemy(t, w, foe).Alive)
}

func TestMotion_ProjectileExpiry(t *testing.T) {
	w := newTestWorld(t, nil)
	short := placeProjectile(t, w, core.FactionPlayer, "blaster", vmath.Vec3F{}, vmath.Vec3F{})
	projectile(t, w, short).Lifetime = 0.05
	lost := placeProjectile(t, w, core.FactionPlayer, "blaster", vmath.Vec3F{Y: w.Rules.Arena.HalfHeight + w.Rules.Arena.Margin - 0.1}, vmath.Vec3F{Y: 10})

	NewMotionSystem().Update(w, 0.1)

	assert.False(t, projectile(t, w, short).Alive, "lifetime elapsed")
	assert.False(t, projectile(t, w, lost).Alive, "left the arena")
	assert.Zero(t, w.Stats.Anomalies)
}

func TestMotion_EnemyEscapes(t *testing.T) {
	w := newTestWorld(t, nil)
	a := w.Rules.Arena
	h := placeEnemy(t, w, "scout", vmath.Vec3F{Y: a.HalfHeight + a.Margin - 0.1})
	enemy(t, w, h).Velocity = vmath.Vec3F{Y: 5}

	NewMotionSystem().Update(w, 0.1)

	assert.False(t, enemy(t, w, h).Alive)
	assert.Equal(t, 1, w.Stats.Escaped)
	assert.Zero(t, w.Stats.Kills)
	assert.Equal(t, 1, countEvents(w, core.EventEnemyEscaped))
}

func TestMotion_PlayerSteerClampedToArena(t *testing.T) {
	w := newTestWorld(t, nil)
	a := w.Rules.Arena
	r := w.Rules.Player.Radius

	w.Input = world.Input{Steer: vmath.Vec3F{X: 5, Y: 0}, SteerSet: true}
	s := NewMotionSystem()
	s.Update(w, 1)
	assert.InDelta(t, w.Rules.Player.Speed, w.Player.Velocity.X, 1e-9, "steer length clamped to 1")

	w.Input = world.Input{}
	for i := 0; i < 10; i++ {
		s.Update(w, 1)
	}
	assert.InDelta(t, a.HalfWidth-r, w.Player.Position.X, 1e-9)
	assert.True(t, w.Player.Alive)
}

func TestMotion_NonFiniteSteerIgnored(t *testing.T) {
	w := newTestWorld(t, nil)
	start := w.Player.Position
	w.Input = world.Input{Steer: vmath.Vec3F{X: math.NaN()}, SteerSet: true}

	NewMotionSystem().Update(w, 0.1)
	assert.Equal(t, start, w.Player.Position)
	assert.Zero(t, w.Stats.Anomalies)
}

func TestMotion_EffectsDecay(t *testing.T) {
	w := newTestWorld(t, nil)
	spawnEffect(w, core.EffectSpark, vmath.Vec3F{})
	spawnEffect(w, core.EffectExplosion, vmath.Vec3F{})
	require.Equal(t, 2, w.Effects.Len())

	NewMotionSystem().Update(w, 0.3)
	NewCleanupSystem().Update(w, 0)

	require.Equal(t, 1, w.Effects.Len(), "spark expired")
	assert.Equal(t, core.EffectExplosion, w.Effects.At(0).Effect)
}
