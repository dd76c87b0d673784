package config

import "github.com/lixenwraith/starfall/parameter"

// DefaultWeapons is the built-in weapon table
func DefaultWeapons() map[string]WeaponConfig {
	return map[string]WeaponConfig{
		"blaster": {
			Speed:    parameter.BlasterSpeed,
			Damage:   parameter.BlasterDamage,
			Cooldown: parameter.BlasterCooldown,
			Lifetime: parameter.BlasterLifetime,
			Radius:   parameter.BlasterRadius,
		},
		"lance": {
			Speed:    parameter.LanceSpeed,
			Damage:   parameter.LanceDamage,
			Cooldown: parameter.LanceCooldown,
			Lifetime: parameter.LanceLifetime,
			Radius:   parameter.LanceRadius,
		},
		"pulse": {
			Speed:    parameter.PulseSpeed,
			Damage:   parameter.PulseDamage,
			Lifetime: parameter.PulseLifetime,
			Radius:   parameter.PulseRadius,
		},
		"cannon": {
			Speed:    parameter.CannonSpeed,
			Damage:   parameter.CannonDamage,
			Lifetime: parameter.CannonLifetime,
			Radius:   parameter.CannonRadius,
		},
	}
}

// DefaultArchetypes is the built-in enemy table
func DefaultArchetypes() map[string]ArchetypeConfig {
	return map[string]ArchetypeConfig{
		"scout": {
			Health:      parameter.ScoutHealth,
			Speed:       parameter.ScoutSpeed,
			FireRate:    parameter.ScoutFireRate,
			EngageRange: parameter.ScoutEngageRange,
			Radius:      parameter.ScoutRadius,
			Weapon:      "pulse",
			RamDamage:   parameter.ScoutRamDamage,
			Score:       parameter.ScoutScore,
		},
		"fighter": {
			Health:        parameter.FighterHealth,
			Speed:         parameter.FighterSpeed,
			FireRate:      parameter.FighterFireRate,
			EngageRange:   parameter.FighterEngageRange,
			Radius:        parameter.FighterRadius,
			Weapon:        "pulse",
			RamDamage:     parameter.FighterRamDamage,
			RetreatHealth: parameter.FighterRetreatHealth,
			Score:         parameter.FighterScore,
		},
		"gunship": {
			Health:      parameter.GunshipHealth,
			Speed:       parameter.GunshipSpeed,
			FireRate:    parameter.GunshipFireRate,
			EngageRange: parameter.GunshipEngageRange,
			Radius:      parameter.GunshipRadius,
			Weapon:      "cannon",
			RamDamage:   parameter.GunshipRamDamage,
			Score:       parameter.GunshipScore,
		},
	}
}

// DefaultWaves is the built-in wave sequence
func DefaultWaves() []WaveConfig {
	const s = parameter.WaveStagger
	return []WaveConfig{
		{
			Intermission: parameter.WaveIntermission,
			Spawns: []SpawnConfig{
				{Archetype: "scout", Offset: 0, Lane: -30},
				{Archetype: "scout", Offset: s, Lane: -10},
				{Archetype: "scout", Offset: 2 * s, Lane: 10},
				{Archetype: "scout", Offset: 3 * s, Lane: 30},
			},
		},
		{
			Intermission: parameter.WaveIntermission,
			Spawns: []SpawnConfig{
				{Archetype: "fighter", Offset: 0, Lane: -20},
				{Archetype: "fighter", Offset: 0, Lane: 20},
				{Archetype: "scout", Offset: 2 * s, Lane: -40},
				{Archetype: "scout", Offset: 2 * s, Lane: 40},
				{Archetype: "scout", Offset: 4 * s, Lane: -5},
				{Archetype: "scout", Offset: 4 * s, Lane: 5},
			},
		},
		{
			Intermission: parameter.WaveIntermission,
			Spawns: []SpawnConfig{
				{Archetype: "gunship", Offset: 0, Lane: 0},
				{Archetype: "fighter", Offset: 2 * s, Lane: -30},
				{Archetype: "fighter", Offset: 2 * s, Lane: 30},
			},
		},
		{
			Intermission: parameter.WaveIntermission,
			Spawns: []SpawnConfig{
				{Archetype: "scout", Offset: 0, Lane: -50},
				{Archetype: "scout", Offset: s, Lane: -30},
				{Archetype: "scout", Offset: 2 * s, Lane: -10},
				{Archetype: "scout", Offset: 3 * s, Lane: 10},
				{Archetype: "scout", Offset: 4 * s, Lane: 30},
				{Archetype: "scout", Offset: 5 * s, Lane: 50},
				{Archetype: "fighter", Offset: 6 * s, Lane: -20},
				{Archetype: "fighter", Offset: 6 * s, Lane: 20},
				{Archetype: "gunship", Offset: 8 * s, Lane: 0},
			},
		},
	}
}
