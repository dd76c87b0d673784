package config

import (
	"fmt"
	"math"
	"sort"

	"github.com/lixenwraith/starfall/core"
	"github.com/lixenwraith/starfall/vmath"
)

// WeaponRules is a compiled weapon profile
type WeaponRules struct {
	Name     string
	Speed    float64
	Damage   float64
	Cooldown float64
	Lifetime float64
	Radius   float64
}

// ArchetypeRules is a compiled enemy template
type ArchetypeRules struct {
	Name          string
	Health        float64
	Speed         float64
	FireInterval  float64 // seconds between shots, 0 never fires
	EngageRange   float64
	Radius        float64
	Weapon        core.WeaponID
	RamDamage     float64
	RetreatHealth float64
	Score         int
}

// SpawnRules is one scheduled spawn, sorted by Offset within its wave
type SpawnRules struct {
	Archetype core.ArchetypeID
	Offset    float64
	Lane      float64
}

// WaveRules is a compiled wave
type WaveRules struct {
	Intermission float64
	Spawns       []SpawnRules
}

// PlayerRules is the compiled player ship
type PlayerRules struct {
	Health float64
	Speed  float64
	Radius float64
	Spawn  vmath.Vec3F
	Weapon core.WeaponID
}

// Rules are the dense per-session lookup tables consumed by the systems
// Ids are assigned in sorted name order so identical configs compile identically
type Rules struct {
	Step     float64
	MaxDelta float64

	Pools  PoolConfig
	Arena  ArenaConfig
	Player PlayerRules

	Weapons    []WeaponRules
	Archetypes []ArchetypeRules
	Waves      []WaveRules

	LoopFrom        int
	LoopHealthScale float64

	// MaxTargetRadius is the largest hit radius of anything a projectile can hit
	MaxTargetRadius float64

	weaponIDs    map[string]core.WeaponID
	archetypeIDs map[string]core.ArchetypeID
}

// Compile validates the configuration and builds the lookup tables
func (c *Config) Compile() (*Rules, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	r := &Rules{
		Step:            c.Tick.Step,
		MaxDelta:        c.Tick.MaxDelta,
		Pools:           c.Pools,
		Arena:           c.Arena,
		LoopFrom:        c.Loop.From,
		LoopHealthScale: c.Loop.HealthScale,
		weaponIDs:       make(map[string]core.WeaponID, len(c.Weapons)),
		archetypeIDs:    make(map[string]core.ArchetypeID, len(c.Archetypes)),
	}

	for i, name := range sortedKeys(c.Weapons) {
		w := c.Weapons[name]
		r.weaponIDs[name] = core.WeaponID(i)
		r.Weapons = append(r.Weapons, WeaponRules{
			Name:     name,
			Speed:    w.Speed,
			Damage:   w.Damage,
			Cooldown: w.Cooldown,
			Lifetime: w.Lifetime,
			Radius:   w.Radius,
		})
	}

	r.MaxTargetRadius = c.Player.Radius
	for i, name := range sortedKeys(c.Archetypes) {
		a := c.Archetypes[name]
		r.archetypeIDs[name] = core.ArchetypeID(i)
		interval := 0.0
		if a.FireRate > 0 {
			interval = 1.0 / a.FireRate
		}
		r.Archetypes = append(r.Archetypes, ArchetypeRules{
			Name:          name,
			Health:        a.Health,
			Speed:         a.Speed,
			FireInterval:  interval,
			EngageRange:   a.EngageRange,
			Radius:        a.Radius,
			Weapon:        r.weaponIDs[a.Weapon],
			RamDamage:     a.RamDamage,
			RetreatHealth: a.RetreatHealth,
			Score:         a.Score,
		})
		r.MaxTargetRadius = math.Max(r.MaxTargetRadius, a.Radius)
	}

	r.Player = PlayerRules{
		Health: c.Player.Health,
		Speed:  c.Player.Speed,
		Radius: c.Player.Radius,
		Spawn:  vmath.Vec3F{Y: c.Player.SpawnY * c.Arena.HalfHeight},
		Weapon: r.weaponIDs[c.Player.Weapon],
	}

	r.Waves = make([]WaveRules, len(c.Waves))
	for i, w := range c.Waves {
		spawns := make([]SpawnRules, len(w.Spawns))
		for j, s := range w.Spawns {
			spawns[j] = SpawnRules{
				Archetype: r.archetypeIDs[s.Archetype],
				Offset:    s.Offset,
				Lane:      s.Lane,
			}
		}
		sort.SliceStable(spawns, func(a, b int) bool { return spawns[a].Offset < spawns[b].Offset })
		r.Waves[i] = WaveRules{Intermission: w.Intermission, Spawns: spawns}
	}

	return r, nil
}

// WeaponID resolves a weapon name
func (r *Rules) WeaponID(name string) (core.WeaponID, bool) {
	id, ok := r.weaponIDs[name]
	return id, ok
}

// ArchetypeID resolves an archetype name
func (r *Rules) ArchetypeID(name string) (core.ArchetypeID, bool) {
	id, ok := r.archetypeIDs[name]
	return id, ok
}

// Weapon returns the profile for id, id must come from these Rules
func (r *Rules) Weapon(id core.WeaponID) *WeaponRules {
	return &r.Weapons[id]
}

// Archetype returns the template for id, id must come from these Rules
func (r *Rules) Archetype(id core.ArchetypeID) *ArchetypeRules {
	return &r.Archetypes[id]
}

// Wave returns the composition of wave index n, following the loop rule
// past the configured list, and the loop cycle it belongs to
func (r *Rules) Wave(n int) (*WaveRules, int) {
	if n < len(r.Waves) {
		return &r.Waves[n], 0
	}
	span := len(r.Waves) - r.LoopFrom
	past := n - len(r.Waves)
	return &r.Waves[r.LoopFrom+past%span], 1 + past/span
}

// ValidWeapon reports whether id indexes the weapon table
func (r *Rules) ValidWeapon(id core.WeaponID) bool {
	return int(id) < len(r.Weapons)
}

func (r *Rules) String() string {
	return fmt.Sprintf("rules(weapons=%d archetypes=%d waves=%d)", len(r.Weapons), len(r.Archetypes), len(r.Waves))
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
