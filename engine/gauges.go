package engine

import (
	"sync/atomic"
	"time"

	"github.com/lixenwraith/starfall/core"
	"github.com/lixenwraith/starfall/status"
	"github.com/lixenwraith/starfall/world"
)

// gauges caches registry pointers so publishing is lock-free
type gauges struct {
	tick         *atomic.Int64
	tickSeconds  *status.AtomicFloat
	tickPeak     *status.AtomicFloat
	over         *atomic.Bool
	score        *atomic.Int64
	playerHealth *status.AtomicFloat
	playerWeapon *status.AtomicString
	waveIndex    *atomic.Int64
	wavePhase    *status.AtomicString
	waveAlive    *atomic.Int64
	projectiles  *atomic.Int64
	enemies      *atomic.Int64
	effects      *atomic.Int64
	grid         *atomic.Int64

	// Labels are re-stored only on change, storing allocates
	labeled   bool
	lastWeap  core.WeaponID
	lastPhase world.Phase
}

func newGauges(r *status.Registry) gauges {
	return gauges{
		tick:         r.Ints.Get(status.KeyTick),
		tickSeconds:  r.Floats.Get(status.KeyTickSeconds),
		tickPeak:     r.Floats.Get(status.KeyTickPeak),
		over:         r.Bools.Get(status.KeyOver),
		score:        r.Ints.Get(status.KeyScore),
		playerHealth: r.Floats.Get(status.KeyPlayerHealth),
		playerWeapon: r.Strings.Get(status.KeyPlayerWeapon),
		waveIndex:    r.Ints.Get(status.KeyWaveIndex),
		wavePhase:    r.Strings.Get(status.KeyWavePhase),
		waveAlive:    r.Ints.Get(status.KeyWaveAlive),
		projectiles:  r.Ints.Get(status.KeyProjectiles),
		enemies:      r.Ints.Get(status.KeyEnemies),
		effects:      r.Ints.Get(status.KeyEffects),
		grid:         r.Ints.Get(status.KeyGridOccupancy),
	}
}

func (g *gauges) publish(w *world.World, s *Snapshot) {
	g.tick.Store(int64(w.Tick))
	g.over.Store(w.Over)
	g.score.Store(int64(w.Stats.Score))
	g.playerHealth.Set(w.Player.Health)
	g.waveIndex.Store(int64(w.Wave.Index))
	g.waveAlive.Store(int64(w.Wave.Alive))
	g.projectiles.Store(int64(len(s.Projectiles)))
	g.enemies.Store(int64(len(s.Enemies)))
	g.effects.Store(int64(len(s.Effects)))
	g.grid.Store(int64(w.Grid.Len()))

	if !g.labeled || g.lastWeap != w.Player.Weapon || g.lastPhase != w.Wave.Phase {
		g.playerWeapon.Store(w.Rules.Weapon(w.Player.Weapon).Name)
		g.wavePhase.Store(w.Wave.Phase.String())
		g.labeled = true
		g.lastWeap = w.Player.Weapon
		g.lastPhase = w.Wave.Phase
	}
}

func (g *gauges) timing(took time.Duration) {
	sec := took.Seconds()
	g.tickSeconds.Set(sec)
	g.tickPeak.Max(sec)
}
