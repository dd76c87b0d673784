package parameter

// System Execution Priorities (lower runs first)
// The pipeline order is fixed: wave, weapon, AI, motion, index, collision, cleanup
const (
	PriorityWave      = 10
	PriorityWeapon    = 20
	PriorityEnemy     = 30 // After weapon, enemies fire through the weapon helpers
	PriorityMotion    = 40
	PriorityIndex     = 50 // After motion, buckets final positions
	PriorityCollision = 60
	PriorityCleanup   = 1000 // After all others, compaction and wave reconcile
)
