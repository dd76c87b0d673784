package system

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/starfall/config"
	"github.com/lixenwraith/starfall/core"
	"github.com/lixenwraith/starfall/world"
)

func twoScoutWave(c *config.Config) {
	c.Waves = []config.WaveConfig{
		{Spawns: []config.SpawnConfig{
			{Archetype: "scout", Lane: -10},
			{Archetype: "scout", Lane: 10},
		}},
		{Intermission: 2, Spawns: []config.SpawnConfig{{Archetype: "gunship"}}},
	}
	c.Loop.From = 0
}

func killEnemy(w *world.World, i int) {
	w.Enemies.At(i).Kill()
}

// Two-enemy wave with zero stagger advances on the tick both die
func TestWave_ClearAdvancesIndexOnSameTick(t *testing.T) {
	w := newTestWorld(t, twoScoutWave)
	waves := NewWaveSystem()
	cleanup := NewCleanupSystem()

	waves.Update(w, 1.0/60)
	cleanup.Update(w, 0)
	require.Equal(t, 2, w.Enemies.Len())
	assert.Equal(t, world.PhaseWaitingForClear, w.Wave.Phase)
	assert.Equal(t, 0, w.Wave.Index)
	assert.Equal(t, 2, w.Wave.Alive)
	assert.Equal(t, 1, countEvents(w, core.EventWaveStarted))

	killEnemy(w, 0)
	cleanup.Update(w, 0)
	assert.Equal(t, world.PhaseWaitingForClear, w.Wave.Phase)
	assert.Equal(t, 0, w.Wave.Index)

	killEnemy(w, 0)
	cleanup.Update(w, 0)
	assert.Equal(t, world.PhaseIdle, w.Wave.Phase)
	assert.Equal(t, 1, w.Wave.Index)
	assert.True(t, w.Wave.Complete)
	assert.Equal(t, 2.0, w.Wave.Timer, "next wave's intermission")
	assert.Equal(t, 1, w.Stats.WavesCleared)
}

func TestWave_StaggeredSpawns(t *testing.T) {
	w := newTestWorld(t, func(c *config.Config) {
		c.Waves = []config.WaveConfig{{Spawns: []config.SpawnConfig{
			{Archetype: "scout", Offset: 0},
			{Archetype: "scout", Offset: 0.5},
		}}}
	})
	s := NewWaveSystem()

	s.Update(w, 0.1)
	assert.Equal(t, 1, w.Enemies.Len())
	assert.Equal(t, world.PhaseSpawning, w.Wave.Phase)

	s.Update(w, 0.3)
	assert.Equal(t, 1, w.Enemies.Len())

	s.Update(w, 0.3)
	assert.Equal(t, 2, w.Enemies.Len())
	assert.Equal(t, world.PhaseWaitingForClear, w.Wave.Phase)
}

func TestWave_IntermissionAndStartRequest(t *testing.T) {
	w := newTestWorld(t, func(c *config.Config) { c.Waves[0].Intermission = 5 })
	s := NewWaveSystem()

	s.Update(w, 1)
	assert.Equal(t, world.PhaseIdle, w.Wave.Phase)
	assert.InDelta(t, 4, w.Wave.Timer, 1e-9)
	assert.Zero(t, w.Enemies.Len())

	w.Input = world.Input{WaveStart: true}
	s.Update(w, 0)
	assert.NotEqual(t, world.PhaseIdle, w.Wave.Phase)
	assert.Equal(t, 1, w.Enemies.Len())
}

func TestWave_StartRequestIgnoredWhileActive(t *testing.T) {
	w := newTestWorld(t, twoScoutWave)
	s := NewWaveSystem()
	s.Update(w, 0)
	require.Equal(t, world.PhaseWaitingForClear, w.Wave.Phase)

	w.Input = world.Input{WaveStart: true}
	s.Update(w, 0)
	ReconcileWave(w)
	assert.Equal(t, 0, w.Wave.Index)
	assert.Equal(t, 2, w.Enemies.Len())
}

func TestWave_ExhaustionDropsSpawn(t *testing.T) {
	w := newTestWorld(t, func(c *config.Config) {
		twoScoutWave(c)
		c.Pools.Enemies = 1
	})
	NewWaveSystem().Update(w, 0)

	assert.Equal(t, 1, w.Enemies.Len())
	assert.Equal(t, 1, w.Stats.DroppedSpawns)
	assert.Equal(t, world.PhaseWaitingForClear, w.Wave.Phase, "no retry")

	killEnemy(w, 0)
	NewCleanupSystem().Update(w, 0)
	assert.Equal(t, 1, w.Wave.Index)
}

func TestWave_EnemySpawnState(t *testing.T) {
	w := newTestWorld(t, twoScoutWave)
	NewWaveSystem().Update(w, 0)

	require.Equal(t, 2, w.Enemies.Len())
	e := w.Enemies.At(0)
	scout := w.Rules.Archetype(e.Archetype)
	assert.Equal(t, core.FactionHostile, e.Faction)
	assert.Equal(t, core.AIApproach, e.State)
	assert.Equal(t, 0, e.Wave)
	assert.Equal(t, scout.Health, e.Health)
	assert.Equal(t, -10.0, e.Position.X)
	assert.Equal(t, w.Rules.Arena.HalfHeight, e.Position.Y)
	assert.Less(t, e.Velocity.Y, 0.0, "heads into the arena")
	assert.Equal(t, 1.0, e.Strafe)
	assert.Equal(t, -1.0, w.Enemies.At(1).Strafe)
}

func TestWave_LoopScalesHealth(t *testing.T) {
	w := newTestWorld(t, func(c *config.Config) {
		c.Loop.HealthScale = 0.5
	})
	waves := NewWaveSystem()
	cleanup := NewCleanupSystem()

	for cycle := 0; cycle < 3; cycle++ {
		waves.Update(w, 0)
		require.Equal(t, 1, w.Enemies.Len())
		e := w.Enemies.At(0)
		base := w.Rules.Archetype(e.Archetype).Health
		assert.InDelta(t, base*(1+0.5*float64(cycle)), e.Health, 1e-9)
		assert.Equal(t, cycle, w.Wave.Cycle)
		assert.Equal(t, cycle, e.Wave)

		e.Kill()
		cleanup.Update(w, 0)
		require.Equal(t, cycle+1, w.Wave.Index)
	}
}

type stubSystem struct {
	name     string
	priority int
}

func (s stubSystem) Name() string { return s.name }
func (s stubSystem) Priority() int { return s.priority }
func (s stubSystem) Update(*world.World, float64) {}

func TestSort_StableByPriority(t *testing.T) {
	systems := Sort([]System{
		stubSystem{"late", 90},
		stubSystem{"a", 10},
		stubSystem{"early", 1},
		stubSystem{"b", 10},
		stubSystem{"c", 10},
	})
	var names []string
	for _, s := range systems {
		names = append(names, s.Name())
	}
	assert.Equal(t, []string{"early", "a", "b", "c", "late"}, names)
}

func TestPipeline_Order(t *testing.T) {
	var names []string
	for _, s := range Pipeline() {
		names = append(names, s.Name())
	}
	assert.Equal(t, []string{"wave", "weapon", "enemy", "motion", "index", "collision", "cleanup"}, names)
}
