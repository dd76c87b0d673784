package engine

import (
	"github.com/lixenwraith/starfall/core"
	"github.com/lixenwraith/starfall/vmath"
	"github.com/lixenwraith/starfall/world"
)

// EntityView is the render-relevant part of one entity
type EntityView struct {
	Handle      core.Handle
	Kind        core.Kind
	Faction     core.Faction
	Position    vmath.Vec3F
	Orientation vmath.Quat
	Velocity    vmath.Vec3F
	Health      float64
	MaxHealth   float64
	Lifetime    float64
	Archetype   core.ArchetypeID
	Weapon      core.WeaponID
	State       core.AIState
	Effect      core.EffectKind
}

// WaveView is the wave manager state at publish time
type WaveView struct {
	Index     int
	Cycle     int
	Phase     world.Phase
	Timer     float64
	Remaining int // scheduled spawns not yet emitted
	Alive     int
	Complete  bool
}

// Snapshot is the read-only state published at the end of a tick
// Slices are reused by the engine: the snapshot is valid until the next
// Tick or Restart begins; use Clone to keep one longer
type Snapshot struct {
	Tick uint64
	Time float64
	Over bool

	Player EntityView
	Target core.Handle

	Projectiles []EntityView
	Enemies     []EntityView
	Effects     []EntityView

	Wave   WaveView
	Stats  core.Stats
	Events []core.Event
}

func newSnapshot(w *world.World) Snapshot {
	return Snapshot{
		Projectiles: make([]EntityView, 0, w.Projectiles.Cap()),
		Enemies:     make([]EntityView, 0, w.Enemies.Cap()),
		Effects:     make([]EntityView, 0, w.Effects.Cap()),
		Events:      make([]core.Event, 0, cap(w.Events.All())),
	}
}

// Count is the active count of kind
func (s *Snapshot) Count(kind core.Kind) int {
	switch kind {
	case core.KindProjectile:
		return len(s.Projectiles)
	case core.KindEnemy:
		return len(s.Enemies)
	case core.KindEffect:
		return len(s.Effects)
	case core.KindPlayer:
		if s.Player.Health > 0 {
			return 1
		}
	}
	return 0
}

// Clone returns a deep copy that stays valid across ticks
func (s *Snapshot) Clone() Snapshot {
	c := *s
	c.Projectiles = append([]EntityView(nil), s.Projectiles...)
	c.Enemies = append([]EntityView(nil), s.Enemies...)
	c.Effects = append([]EntityView(nil), s.Effects...)
	c.Events = append([]core.Event(nil), s.Events...)
	return c
}

// capture rewrites the snapshot from w without allocating
// Dead or non-finite entities never reach renderers
func (s *Snapshot) capture(w *world.World) {
	s.Tick = w.Tick
	s.Time = w.Time
	s.Over = w.Over
	s.Player = view(&w.Player)
	s.Target = w.Target

	s.Projectiles = appendViews(s.Projectiles[:0], w.Projectiles.Active())
	s.Enemies = appendViews(s.Enemies[:0], w.Enemies.Active())
	s.Effects = appendViews(s.Effects[:0], w.Effects.Active())

	wv := &w.Wave
	s.Wave = WaveView{
		Index:     wv.Index,
		Cycle:     wv.Cycle,
		Phase:     wv.Phase,
		Timer:     wv.Timer,
		Remaining: remaining(w),
		Alive:     wv.Alive,
		Complete:  wv.Complete,
	}
	s.Stats = w.Stats
	s.Events = append(s.Events[:0], w.Events.All()...)
}

// remaining counts scheduled spawns of the current wave not yet emitted
func remaining(w *world.World) int {
	if w.Wave.Phase == world.PhaseWaitingForClear {
		return 0
	}
	rules, _ := w.Rules.Wave(w.Wave.Index)
	return len(rules.Spawns) - w.Wave.Next
}

func appendViews(dst []EntityView, src []core.Entity) []EntityView {
	for i := range src {
		e := &src[i]
		if !e.Alive || !e.Finite() {
			continue
		}
		dst = append(dst, view(e))
	}
	return dst
}

func view(e *core.Entity) EntityView {
	return EntityView{
		Handle:      e.Handle,
		Kind:        e.Kind,
		Faction:     e.Faction,
		Position:    e.Position,
		Orientation: e.Orientation,
		Velocity:    e.Velocity,
		Health:      e.Health,
		MaxHealth:   e.MaxHealth,
		Lifetime:    e.Lifetime,
		Archetype:   e.Archetype,
		Weapon:      e.Weapon,
		State:       e.State,
		Effect:      e.Effect,
	}
}
