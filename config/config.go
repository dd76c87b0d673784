package config

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/spf13/viper"

	"github.com/lixenwraith/starfall/core"
	"github.com/lixenwraith/starfall/parameter"
)

// EnvPrefix is prepended to environment overrides, e.g. STARFALL_POOLS_ENEMIES
const EnvPrefix = "STARFALL"

// TickConfig holds loop timing
type TickConfig struct {
	Step     float64 `json:"step" mapstructure:"step"`
	MaxDelta float64 `json:"maxDelta" mapstructure:"maxDelta"`
}

// PoolConfig holds the fixed capacity of each entity pool
type PoolConfig struct {
	Projectiles int `json:"projectiles" mapstructure:"projectiles"`
	Enemies     int `json:"enemies" mapstructure:"enemies"`
	Effects     int `json:"effects" mapstructure:"effects"`
	Events      int `json:"events" mapstructure:"events"`
}

// ArenaConfig holds playfield bounds and the collision grid cell size
type ArenaConfig struct {
	HalfWidth  float64 `json:"halfWidth" mapstructure:"halfWidth"`
	HalfHeight float64 `json:"halfHeight" mapstructure:"halfHeight"`
	Margin     float64 `json:"margin" mapstructure:"margin"`
	CellSize   float64 `json:"cellSize" mapstructure:"cellSize"`
}

// PlayerConfig holds the player ship stats
type PlayerConfig struct {
	Health float64 `json:"health" mapstructure:"health"`
	Speed  float64 `json:"speed" mapstructure:"speed"`
	Radius float64 `json:"radius" mapstructure:"radius"`
	SpawnY float64 `json:"spawnY" mapstructure:"spawnY"`
	Weapon string  `json:"weapon" mapstructure:"weapon"`
}

// WeaponConfig is one weapon profile
type WeaponConfig struct {
	Speed    float64 `json:"speed" mapstructure:"speed"`
	Damage   float64 `json:"damage" mapstructure:"damage"`
	Cooldown float64 `json:"cooldown" mapstructure:"cooldown"`
	Lifetime float64 `json:"lifetime" mapstructure:"lifetime"`
	Radius   float64 `json:"radius" mapstructure:"radius"`
}

// ArchetypeConfig is one enemy template
type ArchetypeConfig struct {
	Health        float64 `json:"health" mapstructure:"health"`
	Speed         float64 `json:"speed" mapstructure:"speed"`
	FireRate      float64 `json:"fireRate" mapstructure:"fireRate"` // shots per second, 0 never fires
	EngageRange   float64 `json:"engageRange" mapstructure:"engageRange"`
	Radius        float64 `json:"radius" mapstructure:"radius"`
	Weapon        string  `json:"weapon" mapstructure:"weapon"`
	RamDamage     float64 `json:"ramDamage" mapstructure:"ramDamage"`
	RetreatHealth float64 `json:"retreatHealth" mapstructure:"retreatHealth"` // fraction of max health, 0 never retreats
	Score         int     `json:"score" mapstructure:"score"`
}

// SpawnConfig schedules one enemy within a wave
type SpawnConfig struct {
	Archetype string  `json:"archetype" mapstructure:"archetype"`
	Offset    float64 `json:"offset" mapstructure:"offset"` // seconds after the wave starts spawning
	Lane      float64 `json:"lane" mapstructure:"lane"`     // spawn X
}

// WaveConfig is one wave's composition
type WaveConfig struct {
	Intermission float64       `json:"intermission" mapstructure:"intermission"`
	Spawns       []SpawnConfig `json:"spawns" mapstructure:"spawns"`
}

// LoopConfig controls what happens after the last configured wave
type LoopConfig struct {
	From        int     `json:"from" mapstructure:"from"`
	HealthScale float64 `json:"healthScale" mapstructure:"healthScale"`
}

// LogConfig is consumed by the command, not the engine
type LogConfig struct {
	Level string `json:"level" mapstructure:"level"`
	File  string `json:"file" mapstructure:"file"`
}

// RecordConfig selects the match recorder backend
type RecordConfig struct {
	DSN string `json:"dsn" mapstructure:"dsn"` // empty disables recording
}

// Config is the session configuration, loaded once and immutable afterwards
type Config struct {
	Tick       TickConfig                 `json:"tick" mapstructure:"tick"`
	Pools      PoolConfig                 `json:"pools" mapstructure:"pools"`
	Arena      ArenaConfig                `json:"arena" mapstructure:"arena"`
	Player     PlayerConfig               `json:"player" mapstructure:"player"`
	Weapons    map[string]WeaponConfig    `json:"weapons" mapstructure:"weapons"`
	Archetypes map[string]ArchetypeConfig `json:"archetypes" mapstructure:"archetypes"`
	Waves      []WaveConfig               `json:"waves" mapstructure:"waves"`
	Loop       LoopConfig                 `json:"loop" mapstructure:"loop"`
	Log        LogConfig                  `json:"log" mapstructure:"log"`
	Record     RecordConfig               `json:"record" mapstructure:"record"`

	// Keys rebinds terminal actions, action name to key names
	// Consumed by the terminal front end, validated there
	Keys map[string][]string `json:"keys" mapstructure:"keys"`
}

// setDefaults registers scalar defaults; tables are filled after decoding
func setDefaults(v *viper.Viper) {
	v.SetDefault("tick.step", parameter.TickStepSeconds)
	v.SetDefault("tick.maxDelta", parameter.MaxDeltaSeconds)

	v.SetDefault("pools.projectiles", parameter.ProjectileCapacity)
	v.SetDefault("pools.enemies", parameter.EnemyCapacity)
	v.SetDefault("pools.effects", parameter.EffectCapacity)
	v.SetDefault("pools.events", parameter.EventCapacity)

	v.SetDefault("arena.halfWidth", parameter.ArenaHalfWidth)
	v.SetDefault("arena.halfHeight", parameter.ArenaHalfHeight)
	v.SetDefault("arena.margin", parameter.ArenaMargin)
	v.SetDefault("arena.cellSize", parameter.GridCellSize)

	v.SetDefault("player.health", parameter.PlayerHealth)
	v.SetDefault("player.speed", parameter.PlayerSpeed)
	v.SetDefault("player.radius", parameter.PlayerRadius)
	v.SetDefault("player.spawnY", parameter.PlayerSpawnY)
	v.SetDefault("player.weapon", parameter.PlayerWeapon)

	v.SetDefault("loop.from", parameter.WaveLoopFrom)
	v.SetDefault("loop.healthScale", parameter.WaveLoopHealthScale)

	v.SetDefault("log.level", "info")
	v.SetDefault("log.file", "")
	v.SetDefault("record.dsn", "")
}

// Load reads the configuration file at path over the built-in defaults
// An empty path loads defaults and environment overrides only
// The file type follows the extension (toml, yaml, json)
func Load(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("error decoding config: %w", err)
	}
	cfg.fillTables()
	return cfg, nil
}

// Default returns the built-in configuration without touching files or env
// Panics if the registered defaults do not decode, which is a programming error
func Default() *Config {
	cfg, err := decodeDefaults(viper.New())
	if err != nil {
		panic(err)
	}
	return cfg
}

func decodeDefaults(v *viper.Viper) (*Config, error) {
	setDefaults(v)
	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("error decoding default config: %w", err)
	}
	cfg.fillTables()
	return cfg, nil
}

// fillTables substitutes default tables for the ones the file left empty
func (c *Config) fillTables() {
	if len(c.Weapons) == 0 {
		c.Weapons = DefaultWeapons()
	}
	if len(c.Archetypes) == 0 {
		c.Archetypes = DefaultArchetypes()
	}
	if len(c.Waves) == 0 {
		c.Waves = DefaultWaves()
	}
}

// Validate reports every problem at once, wrapped in core.ErrInvalidConfiguration
func (c *Config) Validate() error {
	var errs []error
	fail := func(format string, args ...any) {
		errs = append(errs, fmt.Errorf(format, args...))
	}
	positive := func(name string, f float64) {
		if !(f > 0) || math.IsInf(f, 0) {
			fail("%s must be positive and finite, got %v", name, f)
		}
	}
	nonNegative := func(name string, f float64) {
		if !(f >= 0) || math.IsInf(f, 0) {
			fail("%s must be non-negative and finite, got %v", name, f)
		}
	}

	positive("tick.step", c.Tick.Step)
	positive("tick.maxDelta", c.Tick.MaxDelta)

	for _, p := range []struct {
		name string
		n    int
	}{
		{"pools.projectiles", c.Pools.Projectiles},
		{"pools.enemies", c.Pools.Enemies},
		{"pools.effects", c.Pools.Effects},
		{"pools.events", c.Pools.Events},
	} {
		if p.n <= 0 {
			fail("%s capacity must be positive, got %d", p.name, p.n)
		}
	}

	positive("arena.halfWidth", c.Arena.HalfWidth)
	positive("arena.halfHeight", c.Arena.HalfHeight)
	nonNegative("arena.margin", c.Arena.Margin)
	positive("arena.cellSize", c.Arena.CellSize)

	positive("player.health", c.Player.Health)
	positive("player.speed", c.Player.Speed)
	positive("player.radius", c.Player.Radius)
	if c.Player.SpawnY < -1 || c.Player.SpawnY > 1 {
		fail("player.spawnY must be within [-1, 1], got %v", c.Player.SpawnY)
	}
	if _, ok := c.Weapons[c.Player.Weapon]; !ok {
		fail("player.weapon references unknown weapon %q", c.Player.Weapon)
	}

	if len(c.Weapons) > 255 || len(c.Archetypes) > 255 {
		fail("at most 255 weapons and 255 archetypes are supported")
	}

	maxHit := c.Player.Radius
	for _, name := range sortedKeys(c.Weapons) {
		w := c.Weapons[name]
		positive("weapons."+name+".speed", w.Speed)
		nonNegative("weapons."+name+".damage", w.Damage)
		nonNegative("weapons."+name+".cooldown", w.Cooldown)
		positive("weapons."+name+".lifetime", w.Lifetime)
		positive("weapons."+name+".radius", w.Radius)
		maxHit = math.Max(maxHit, w.Radius)
	}

	for _, name := range sortedKeys(c.Archetypes) {
		a := c.Archetypes[name]
		prefix := "archetypes." + name
		positive(prefix+".health", a.Health)
		positive(prefix+".speed", a.Speed)
		nonNegative(prefix+".fireRate", a.FireRate)
		positive(prefix+".engageRange", a.EngageRange)
		positive(prefix+".radius", a.Radius)
		nonNegative(prefix+".ramDamage", a.RamDamage)
		if !(a.RetreatHealth >= 0 && a.RetreatHealth < 1) {
			fail("%s.retreatHealth must be within [0, 1), got %v", prefix, a.RetreatHealth)
		}
		if a.FireRate > 0 {
			if _, ok := c.Weapons[a.Weapon]; !ok {
				fail("%s.weapon references unknown weapon %q", prefix, a.Weapon)
			}
		}
		maxHit = math.Max(maxHit, a.Radius)
	}

	if len(c.Waves) == 0 {
		fail("at least one wave is required")
	}
	for i, w := range c.Waves {
		nonNegative(fmt.Sprintf("waves[%d].intermission", i), w.Intermission)
		for j, s := range w.Spawns {
			if _, ok := c.Archetypes[s.Archetype]; !ok {
				fail("waves[%d].spawns[%d] references unknown archetype %q", i, j, s.Archetype)
			}
			nonNegative(fmt.Sprintf("waves[%d].spawns[%d].offset", i, j), s.Offset)
			if !(math.Abs(s.Lane) <= c.Arena.HalfWidth) {
				fail("waves[%d].spawns[%d].lane %v is outside the arena", i, j, s.Lane)
			}
		}
	}
	if c.Loop.From < 0 || (len(c.Waves) > 0 && c.Loop.From >= len(c.Waves)) {
		fail("loop.from %d is outside the wave list", c.Loop.From)
	}
	nonNegative("loop.healthScale", c.Loop.HealthScale)

	// Any overlap must fall in the same or an adjacent cell
	if c.Arena.CellSize > 0 && c.Arena.CellSize < 2*maxHit {
		fail("arena.cellSize %v is smaller than the largest hit diameter %v", c.Arena.CellSize, 2*maxHit)
	}

	if len(errs) == 0 {
		return nil
	}
	return fmt.Errorf("%w: %w", core.ErrInvalidConfiguration, errors.Join(errs...))
}
