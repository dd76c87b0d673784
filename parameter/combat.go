package parameter

// Player weapons
const (
	// BlasterSpeed is blaster bolt speed in units/sec
	BlasterSpeed = 80.0
	// BlasterDamage is damage per bolt
	BlasterDamage = 10.0
	// BlasterCooldown is seconds between shots
	BlasterCooldown = 0.15
	// BlasterLifetime is bolt lifetime in seconds
	BlasterLifetime = 1.2
	// BlasterRadius is bolt hit radius
	BlasterRadius = 0.5

	LanceSpeed    = 140.0
	LanceDamage   = 35.0
	LanceCooldown = 0.6
	LanceLifetime = 0.8
	LanceRadius   = 0.4
)

// Hostile weapons, cadence comes from the archetype fire rate
const (
	PulseSpeed    = 45.0
	PulseDamage   = 5.0
	PulseLifetime = 2.0
	PulseRadius   = 0.6

	CannonSpeed    = 35.0
	CannonDamage   = 15.0
	CannonLifetime = 2.5
	CannonRadius   = 1.0
)

// Effects
const (
	// ExplosionLifetime is the render time of a destroyed-ship effect
	ExplosionLifetime = 0.5

	// SparkLifetime is the render time of a hit effect
	SparkLifetime = 0.2
)
