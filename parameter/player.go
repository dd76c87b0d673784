package parameter

// Player ship
const (
	// PlayerHealth is the starting hull
	PlayerHealth = 100.0

	// PlayerSpeed is the maximum steer speed in units/sec
	PlayerSpeed = 30.0

	// PlayerRadius is the hit radius
	PlayerRadius = 1.5

	// PlayerSpawnY is the spawn row as a fraction of ArenaHalfHeight (negative = bottom)
	PlayerSpawnY = -0.75

	// PlayerWeapon is the weapon equipped at session start
	PlayerWeapon = "blaster"
)

// Autopilot
const (
	// AutopilotDeadband is the X distance under which the autopilot stops sliding
	AutopilotDeadband = 1.0

	// HeadlessTicks is the default run length of the headless runner (one minute at 60 Hz)
	HeadlessTicks = 3600
)
