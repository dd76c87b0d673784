package world

import (
	"fmt"

	"github.com/rs/zerolog"

	"github.com/lixenwraith/starfall/config"
	"github.com/lixenwraith/starfall/core"
	"github.com/lixenwraith/starfall/pool"
	"github.com/lixenwraith/starfall/spatial"
	"github.com/lixenwraith/starfall/vmath"
)

// PlayerHandle identifies the player ship in projectile ownership and events
// The player is not pooled, so its handle never changes
var PlayerHandle = core.Handle{Index: 0, Gen: 1}

// World is the single state container of one match
// It is owned by the engine and passed to each system for the duration of
// its Update call; systems must not retain it
type World struct {
	Rules *config.Rules
	Log   zerolog.Logger

	Projectiles *pool.Pool
	Enemies     *pool.Pool
	Effects     *pool.Pool
	Grid        *spatial.Grid

	Player core.Entity
	// Target is the enemy the player's shots are aimed at, NoHandle aims forward
	Target core.Handle
	// Steer is the desired player heading, length clamped to 1
	Steer vmath.Vec3F

	// Input holds the commands applied this tick
	Input Input

	Wave   Wave
	Stats  core.Stats
	Events Events

	Tick uint64
	Time float64
	Over bool
}

// New allocates every pool, the grid, and the event buffer from rules
// Nothing allocates per tick afterwards
func New(rules *config.Rules, log zerolog.Logger) (*World, error) {
	if rules == nil {
		return nil, fmt.Errorf("%w: nil rules", core.ErrInvalidConfiguration)
	}
	w := &World{Rules: rules, Log: log}

	var err error
	if w.Projectiles, err = pool.New(core.KindProjectile, rules.Pools.Projectiles); err != nil {
		return nil, err
	}
	if w.Enemies, err = pool.New(core.KindEnemy, rules.Pools.Enemies); err != nil {
		return nil, err
	}
	if w.Effects, err = pool.New(core.KindEffect, rules.Pools.Effects); err != nil {
		return nil, err
	}

	a := rules.Arena
	// Enemies plus the player are indexed
	if w.Grid, err = spatial.New(a.HalfWidth+a.Margin, a.HalfHeight+a.Margin, a.CellSize, rules.Pools.Enemies+1); err != nil {
		return nil, err
	}
	if rules.Pools.Events <= 0 {
		return nil, fmt.Errorf("%w: event capacity %d", core.ErrInvalidConfiguration, rules.Pools.Events)
	}
	w.Events = newEvents(rules.Pools.Events)

	w.Reset()
	return w, nil
}

// Reset returns the match to its initial state; all handles are invalidated
func (w *World) Reset() {
	w.Projectiles.Reset()
	w.Enemies.Reset()
	w.Effects.Reset()
	w.Events.Reset()

	p := w.Rules.Player
	w.Player = core.Entity{
		Kinetic: core.Kinetic{
			Position:    p.Spawn,
			Orientation: vmath.QuatIdentity,
		},
		Handle:    PlayerHandle,
		Kind:      core.KindPlayer,
		Faction:   core.FactionPlayer,
		Alive:     true,
		Health:    p.Health,
		MaxHealth: p.Health,
		Weapon:    p.Weapon,
	}
	w.Target = core.NoHandle
	w.Steer = vmath.Vec3F{}
	w.Input = Input{}

	first, _ := w.Rules.Wave(0)
	w.Wave = Wave{Phase: PhaseIdle, Timer: first.Intermission}
	w.Stats = core.Stats{}
	w.Tick = 0
	w.Time = 0
	w.Over = false
}

// Emit records an event for this tick, overflow is counted and dropped
func (w *World) Emit(ev core.Event) {
	if !w.Events.push(ev) {
		w.Stats.DroppedEvents++
	}
}

// InArena reports whether pos lies within the arena plus margin
func (w *World) InArena(pos vmath.Vec3F) bool {
	a := w.Rules.Arena
	return pos.X >= -a.HalfWidth-a.Margin && pos.X <= a.HalfWidth+a.Margin &&
		pos.Y >= -a.HalfHeight-a.Margin && pos.Y <= a.HalfHeight+a.Margin
}

// Contain records a numeric anomaly: the entity is killed and excluded from
// the rest of the tick and from the snapshot
func (w *World) Contain(e *core.Entity) {
	e.Kill()
	w.Stats.Anomalies++
	w.Log.Warn().
		Err(core.ErrNumericAnomaly).
		Stringer("kind", e.Kind).
		Stringer("handle", e.Handle).
		Uint64("tick", w.Tick).
		Msg("non-finite transform, entity removed")
}
