package system

import (
	"github.com/lixenwraith/starfall/config"
	"github.com/lixenwraith/starfall/core"
	"github.com/lixenwraith/starfall/parameter"
	"github.com/lixenwraith/starfall/vmath"
	"github.com/lixenwraith/starfall/world"
)

// WaveSystem drives Idle -> Spawning -> WaitingForClear -> Idle
// The clear check runs in cleanup through ReconcileWave, after collision,
// so the index advances on the tick the last enemy dies
type WaveSystem struct{}

func NewWaveSystem() *WaveSystem { return &WaveSystem{} }

func (s *WaveSystem) Name() string  { return "wave" }
func (s *WaveSystem) Priority() int { return parameter.PriorityWave }

func (s *WaveSystem) Update(w *world.World, dt float64) {
	wv := &w.Wave

	switch wv.Phase {
	case world.PhaseIdle:
		if w.Input.WaveStart {
			wv.Timer = 0
		}
		wv.Timer -= dt
		if wv.Timer > 0 {
			return
		}
		s.begin(w)
		// Zero-offset spawns land on the start tick
		s.drain(w)

	case world.PhaseSpawning:
		wv.Timer += dt
		s.drain(w)

	case world.PhaseWaitingForClear:
		// Reconciled in cleanup
	}
}

func (s *WaveSystem) begin(w *world.World) {
	wv := &w.Wave
	_, cycle := w.Rules.Wave(wv.Index)
	wv.Phase = world.PhaseSpawning
	wv.Timer = 0
	wv.Next = 0
	wv.Cycle = cycle
	wv.Alive = 0
	wv.Complete = false

	w.Emit(core.Event{Kind: core.EventWaveStarted, Wave: wv.Index})
	w.Log.Info().Int("wave", wv.Index).Int("cycle", cycle).Msg("wave spawning")
}

// drain emits every scheduled spawn whose offset has elapsed
func (s *WaveSystem) drain(w *world.World) {
	wv := &w.Wave
	rules, _ := w.Rules.Wave(wv.Index)
	for wv.Next < len(rules.Spawns) && rules.Spawns[wv.Next].Offset <= wv.Timer {
		spawnEnemy(w, &rules.Spawns[wv.Next])
		wv.Next++
	}
	if wv.Next >= len(rules.Spawns) {
		wv.Phase = world.PhaseWaitingForClear
	}
}

// spawnEnemy acquires an enemy slot at the top edge of the arena
// A spawn that cannot acquire a slot is dropped, not retried
func spawnEnemy(w *world.World, sp *config.SpawnRules) {
	_, e, err := w.Enemies.Acquire()
	if err != nil {
		w.Stats.DroppedSpawns++
		return
	}
	a := w.Rules.Archetype(sp.Archetype)
	health := a.Health * (1 + w.Rules.LoopHealthScale*float64(w.Wave.Cycle))

	e.Faction = core.FactionHostile
	e.Archetype = sp.Archetype
	e.State = core.AIApproach
	e.Wave = w.Wave.Index
	e.Health = health
	e.MaxHealth = health
	e.Cooldown = a.FireInterval
	e.Strafe = 1
	if sp.Lane > 0 {
		e.Strafe = -1
	}
	e.Position = vmath.Vec3F{X: sp.Lane, Y: w.Rules.Arena.HalfHeight}
	e.Orientation = vmath.QuatLookAt(vmath.V3FScale(vmath.V3FForward, -1))
	e.Velocity = vmath.V3FScale(e.Forward(), a.Speed)

	w.Wave.Alive++
	w.Stats.Spawned++
}

// ReconcileWave advances a cleared wave; called after compaction so the
// enemy pool holds only living entities
func ReconcileWave(w *world.World) {
	wv := &w.Wave
	if wv.Phase == world.PhaseIdle {
		return
	}

	alive := 0
	w.Enemies.ForEachActive(func(_ int, e *core.Entity) bool {
		if e.Alive && e.Wave == wv.Index {
			alive++
		}
		return true
	})
	wv.Alive = alive

	if wv.Phase != world.PhaseWaitingForClear || alive > 0 {
		return
	}

	wv.Complete = true
	w.Stats.WavesCleared++
	w.Emit(core.Event{Kind: core.EventWaveCleared, Wave: wv.Index})
	w.Log.Info().Int("wave", wv.Index).Int("score", w.Stats.Score).Msg("wave cleared")

	wv.Index++
	next, _ := w.Rules.Wave(wv.Index)
	wv.Phase = world.PhaseIdle
	wv.Timer = next.Intermission
	wv.Next = 0
}
