package parameter

// Archetype: scout, fast and fragile
const (
	ScoutHealth      = 10.0
	ScoutSpeed       = 22.0
	ScoutFireRate    = 0.5
	ScoutEngageRange = 25.0
	ScoutRadius      = 1.2
	ScoutRamDamage   = 10.0
	ScoutScore       = 10
)

// Archetype: fighter, retreats when damaged
const (
	FighterHealth        = 30.0
	FighterSpeed         = 14.0
	FighterFireRate      = 1.0
	FighterEngageRange   = 30.0
	FighterRadius        = 1.6
	FighterRamDamage     = 20.0
	FighterRetreatHealth = 0.3
	FighterScore         = 25
)

// Archetype: gunship, slow heavy hitter
const (
	GunshipHealth      = 80.0
	GunshipSpeed       = 8.0
	GunshipFireRate    = 0.5
	GunshipEngageRange = 40.0
	GunshipRadius      = 2.5
	GunshipRamDamage   = 40.0
	GunshipScore       = 60
)

// Shared behavior
const (
	// EngageHysteresis multiplies engage range before dropping back to approach
	EngageHysteresis = 1.5

	// RegroupRangeFactor multiplies engage range before a retreating enemy re-approaches
	RegroupRangeFactor = 2.0

	// StrafeFactor is lateral speed while engaged as a fraction of archetype speed
	StrafeFactor = 0.5
)
