package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/starfall/core"
	"github.com/lixenwraith/starfall/parameter"
)

func writeConfig(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0644))
	return path
}

func TestLoad_DefaultValues(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, parameter.ProjectileCapacity, cfg.Pools.Projectiles)
	assert.Equal(t, parameter.EnemyCapacity, cfg.Pools.Enemies)
	assert.Equal(t, parameter.ArenaHalfWidth, cfg.Arena.HalfWidth)
	assert.Equal(t, parameter.PlayerWeapon, cfg.Player.Weapon)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Len(t, cfg.Waves, len(DefaultWaves()))
	assert.Contains(t, cfg.Archetypes, "gunship")
	require.NoError(t, cfg.Validate())
}

func TestDefault_DecodesRegisteredDefaults(t *testing.T) {
	var cfg *Config
	require.NotPanics(t, func() { cfg = Default() })
	assert.Equal(t, parameter.TickStepSeconds, cfg.Tick.Step)
	assert.Equal(t, parameter.ProjectileCapacity, cfg.Pools.Projectiles)
	assert.Equal(t, parameter.PlayerWeapon, cfg.Player.Weapon)
	assert.NotEmpty(t, cfg.Waves)
	require.NoError(t, cfg.Validate())
}

func TestDecodeDefaults_ReportsDecodeError(t *testing.T) {
	v := viper.New()
	// Set takes precedence over the registered default
	setDefaults(v)
	v.Set("pools.projectiles", "many")
	_, err := decodeDefaults(v)
	assert.Error(t, err)
}

func TestLoad_TOMLOverrides(t *testing.T) {
	path := writeConfig(t, "starfall.toml", `
[pools]
projectiles = 3
enemies = 2

[player]
weapon = "lance"

[[waves]]
intermission = 0.0
  [[waves.spawns]]
  archetype = "scout"
  offset = 0.0
  lane = -5.0
  [[waves.spawns]]
  archetype = "scout"
  offset = 0.0
  lane = 5.0

[loop]
from = 0
`)
	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 3, cfg.Pools.Projectiles)
	assert.Equal(t, 2, cfg.Pools.Enemies)
	assert.Equal(t, parameter.EffectCapacity, cfg.Pools.Effects, "untouched keys keep defaults")
	assert.Equal(t, "lance", cfg.Player.Weapon)
	require.Len(t, cfg.Waves, 1)
	assert.Len(t, cfg.Waves[0].Spawns, 2)
	assert.Contains(t, cfg.Weapons, "blaster", "missing tables fall back to defaults")
	require.NoError(t, cfg.Validate())
}

func TestLoad_JSONTables(t *testing.T) {
	path := writeConfig(t, "starfall.json", `{
		"weapons": {"gun": {"speed": 10, "damage": 1, "cooldown": 0, "lifetime": 1, "radius": 0.5}},
		"archetypes": {"drone": {"health": 5, "speed": 3, "engageRange": 10, "radius": 1}},
		"player": {"weapon": "gun"},
		"waves": [{"spawns": [{"archetype": "drone"}]}],
		"loop": {"from": 0}
	}`)
	cfg, err := Load(path)
	require.NoError(t, err)

	require.Len(t, cfg.Weapons, 1)
	require.Len(t, cfg.Archetypes, 1)
	require.NoError(t, cfg.Validate())
}

func TestLoad_EnvOverride(t *testing.T) {
	t.Setenv("STARFALL_POOLS_ENEMIES", "7")
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, 7, cfg.Pools.Enemies)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.toml"))
	assert.Error(t, err)
}

func TestValidate_Rejects(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(c *Config)
	}{
		{"negative capacity", func(c *Config) { c.Pools.Projectiles = -1 }},
		{"zero enemy capacity", func(c *Config) { c.Pools.Enemies = 0 }},
		{"unknown archetype in wave", func(c *Config) {
			c.Waves[0].Spawns = append(c.Waves[0].Spawns, SpawnConfig{Archetype: "dreadnought"})
		}},
		{"unknown player weapon", func(c *Config) { c.Player.Weapon = "railgun" }},
		{"unknown archetype weapon", func(c *Config) {
			a := c.Archetypes["scout"]
			a.Weapon = "railgun"
			c.Archetypes["scout"] = a
		}},
		{"negative stagger", func(c *Config) { c.Waves[0].Spawns[0].Offset = -1 }},
		{"lane outside arena", func(c *Config) { c.Waves[0].Spawns[0].Lane = 1e6 }},
		{"empty waves", func(c *Config) { c.Waves = nil }},
		{"loop out of range", func(c *Config) { c.Loop.From = len(c.Waves) }},
		{"cell smaller than hit diameter", func(c *Config) { c.Arena.CellSize = 1 }},
		{"retreat fraction of one", func(c *Config) {
			a := c.Archetypes["fighter"]
			a.RetreatHealth = 1
			c.Archetypes["fighter"] = a
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			err := cfg.Validate()
			require.Error(t, err)
			assert.True(t, errors.Is(err, core.ErrInvalidConfiguration))

			_, err = cfg.Compile()
			assert.True(t, errors.Is(err, core.ErrInvalidConfiguration))
		})
	}
}

func TestValidate_ReportsEveryProblem(t *testing.T) {
	cfg := Default()
	cfg.Pools.Projectiles = 0
	cfg.Player.Weapon = "railgun"
	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "pools.projectiles")
	assert.Contains(t, err.Error(), "railgun")
}

func TestCompile_Tables(t *testing.T) {
	r, err := Default().Compile()
	require.NoError(t, err)

	// Sorted name order: fighter, gunship, scout
	id, ok := r.ArchetypeID("gunship")
	require.True(t, ok)
	assert.Equal(t, core.ArchetypeID(1), id)
	assert.Equal(t, "gunship", r.Archetype(id).Name)
	assert.InDelta(t, 1.0/parameter.GunshipFireRate, r.Archetype(id).FireInterval, 1e-12)

	cannon, ok := r.WeaponID("cannon")
	require.True(t, ok)
	assert.Equal(t, cannon, r.Archetype(id).Weapon)

	assert.Equal(t, r.Player.Weapon, mustWeapon(t, r, parameter.PlayerWeapon))
	assert.InDelta(t, parameter.PlayerSpawnY*parameter.ArenaHalfHeight, r.Player.Spawn.Y, 1e-12)
	assert.Equal(t, parameter.GunshipRadius, r.MaxTargetRadius)
}

func TestCompile_SortsSpawnsByOffset(t *testing.T) {
	cfg := Default()
	cfg.Waves = []WaveConfig{{Spawns: []SpawnConfig{
		{Archetype: "scout", Offset: 2, Lane: 1},
		{Archetype: "scout", Offset: 0, Lane: 2},
		{Archetype: "scout", Offset: 2, Lane: 3},
	}}}
	cfg.Loop.From = 0
	r, err := cfg.Compile()
	require.NoError(t, err)

	lanes := []float64{}
	for _, s := range r.Waves[0].Spawns {
		lanes = append(lanes, s.Lane)
	}
	assert.Equal(t, []float64{2, 1, 3}, lanes, "stable by offset")
}

func TestRules_WaveLoop(t *testing.T) {
	r, err := Default().Compile()
	require.NoError(t, err)
	n := len(r.Waves)

	w, cycle := r.Wave(0)
	assert.Same(t, &r.Waves[0], w)
	assert.Equal(t, 0, cycle)

	w, cycle = r.Wave(n)
	assert.Same(t, &r.Waves[r.LoopFrom], w)
	assert.Equal(t, 1, cycle)

	span := n - r.LoopFrom
	w, cycle = r.Wave(n + span)
	assert.Same(t, &r.Waves[r.LoopFrom], w)
	assert.Equal(t, 2, cycle)
}

func mustWeapon(t *testing.T, r *Rules, name string) core.WeaponID {
	t.Helper()
	id, ok := r.WeaponID(name)
	require.True(t, ok)
	return id
}
