package engine

import (
	"fmt"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog"

	"github.com/lixenwraith/starfall/config"
	"github.com/lixenwraith/starfall/core"
	"github.com/lixenwraith/starfall/parameter"
	"github.com/lixenwraith/starfall/status"
	"github.com/lixenwraith/starfall/system"
	"github.com/lixenwraith/starfall/vmath"
	"github.com/lixenwraith/starfall/world"
)

// Engine owns the world and runs the fixed system pipeline once per Tick
//
// Single writer: Tick, Restart and the command methods must be called from
// one goroutine. Renderers read Snapshot between ticks. Commands are
// buffered and applied at the start of the next Tick
type Engine struct {
	world   *world.World
	systems []system.System
	pending world.Input
	snap    Snapshot
	report  Report
	ticking atomic.Bool

	log       zerolog.Logger
	status    *status.Registry
	gauges    gauges
	observers []Observer
}

// Option configures an Engine
type Option func(*Engine)

// WithLogger sets the engine logger, default is disabled
func WithLogger(l zerolog.Logger) Option {
	return func(e *Engine) { e.log = l }
}

// WithStatus publishes gauges to r after every tick
func WithStatus(r *status.Registry) Option {
	return func(e *Engine) { e.status = r }
}

// WithObserver registers o for end-of-tick reports, in registration order
func WithObserver(o Observer) Option {
	return func(e *Engine) { e.observers = append(e.observers, o) }
}

// WithSystems replaces the standard pipeline
func WithSystems(systems ...system.System) Option {
	return func(e *Engine) { e.systems = system.Sort(systems) }
}

// New creates an engine for one session of rules
func New(rules *config.Rules, opts ...Option) (*Engine, error) {
	e := &Engine{log: zerolog.Nop()}
	for _, opt := range opts {
		opt(e)
	}
	if e.systems == nil {
		e.systems = system.Pipeline()
	}

	w, err := world.New(rules, e.log)
	if err != nil {
		return nil, fmt.Errorf("creating world: %w", err)
	}
	e.world = w
	e.snap = newSnapshot(w)
	if e.status != nil {
		e.gauges = newGauges(e.status)
	}
	e.publish()

	e.log.Info().
		Int("projectiles", rules.Pools.Projectiles).
		Int("enemies", rules.Pools.Enemies).
		Int("effects", rules.Pools.Effects).
		Int("waves", len(rules.Waves)).
		Int("weapons", len(rules.Weapons)).
		Msg("session started")
	return e, nil
}

// Tick advances the simulation by dt seconds
// Non-finite or negative dt counts as 0, dt above the configured maximum is
// clamped. Returns core.ErrTickInProgress when called during a tick; no
// other error crosses the tick boundary
func (e *Engine) Tick(dt float64) error {
	if !e.ticking.CompareAndSwap(false, true) {
		return core.ErrTickInProgress
	}
	defer e.ticking.Store(false)

	start := time.Now()
	dt = e.clampDelta(dt)
	w := e.world

	w.Input = e.pending
	e.pending = world.Input{}
	w.Events.Reset()
	before := w.Stats

	advanced := !w.Over
	if advanced {
		w.Tick++
		w.Time += dt
		for _, s := range e.systems {
			s.Update(w, dt)
		}
		e.logDrops()
	}

	e.publish()
	e.notify(dt, advanced, before, time.Since(start))
	return nil
}

// Restart resets the match: pools, wave state, player and stats
// Every outstanding handle becomes stale
func (e *Engine) Restart() error {
	if !e.ticking.CompareAndSwap(false, true) {
		return core.ErrTickInProgress
	}
	defer e.ticking.Store(false)

	e.world.Reset()
	e.pending = world.Input{}
	e.publish()
	e.log.Info().Msg("match restarted")
	return nil
}

// Snapshot returns the state published by the last Tick or Restart
// Read-only; valid until the next Tick or Restart begins
func (e *Engine) Snapshot() *Snapshot {
	return &e.snap
}

// Rules returns the session rules
func (e *Engine) Rules() *config.Rules {
	return e.world.Rules
}

// Fire requests n shots from the player's weapon next tick
// Pending requests saturate at parameter.MaxFireRequests
func (e *Engine) Fire(n int) {
	if n <= 0 {
		return
	}
	if n > parameter.MaxFireRequests-e.pending.Fire {
		e.pending.Fire = parameter.MaxFireRequests
		return
	}
	e.pending.Fire += n
}

// SetTarget aims the player's shots at h; NoHandle or a stale handle aims forward
func (e *Engine) SetTarget(h core.Handle) {
	e.pending.Target = h
	e.pending.TargetSet = true
}

// StartWave skips the remaining intermission
func (e *Engine) StartWave() {
	e.pending.WaveStart = true
}

// Equip switches the player's weapon profile next tick
func (e *Engine) Equip(name string) error {
	id, ok := e.world.Rules.WeaponID(name)
	if !ok {
		return fmt.Errorf("%w: %q", core.ErrUnknownWeapon, name)
	}
	e.pending.Equip = id
	e.pending.EquipSet = true
	return nil
}

// Steer sets the player's heading in the X/Y plane, length clamped to 1
// The heading persists until changed
func (e *Engine) Steer(dir vmath.Vec3F) {
	e.pending.Steer = dir
	e.pending.SteerSet = true
}

func (e *Engine) clampDelta(dt float64) float64 {
	if !vmath.IsFinite(dt) || dt < 0 {
		return 0
	}
	if dt > e.world.Rules.MaxDelta {
		return e.world.Rules.MaxDelta
	}
	return dt
}

// logDrops reports refused acquisitions once per tick, never per request
func (e *Engine) logDrops() {
	w := e.world
	projectiles := w.Projectiles.TakeDropped()
	enemies := w.Enemies.TakeDropped()
	effects := w.Effects.TakeDropped()
	grid := w.Grid.Dropped()
	if projectiles+enemies+effects+grid == 0 {
		return
	}
	e.log.Debug().
		Uint64("tick", w.Tick).
		Int("projectiles", projectiles).
		Int("enemies", enemies).
		Int("effects", effects).
		Int("grid", grid).
		Msg("capacity reached, requests dropped")
}

func (e *Engine) publish() {
	e.snap.capture(e.world)
	if e.status != nil {
		e.gauges.publish(e.world, &e.snap)
	}
}

func (e *Engine) notify(dt float64, advanced bool, before core.Stats, took time.Duration) {
	if e.status != nil {
		e.gauges.timing(took)
	}
	if len(e.observers) == 0 {
		return
	}
	w := e.world
	r := &e.report
	*r = Report{
		Tick:        w.Tick,
		Delta:       dt,
		Duration:    took,
		Advanced:    advanced,
		Stats:       w.Stats,
		Diff:        w.Stats.Sub(before),
		Projectiles: len(e.snap.Projectiles),
		Enemies:     len(e.snap.Enemies),
		Effects:     len(e.snap.Effects),
		Wave:        w.Wave.Index,
		Phase:       w.Wave.Phase,
		Over:        w.Over,
		Snapshot:    &e.snap,
		Events:      e.snap.Events,
	}
	for _, o := range e.observers {
		o.TickCompleted(r)
	}
}
