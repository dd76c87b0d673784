package parameter

import (
	"math"
	"time"
)

// Game Loop & Engine Timing
const (
	// FrameUpdateInterval is the rendering frame rate interval (~60 FPS)
	FrameUpdateInterval = 16 * time.Millisecond

	// TickStepSeconds is the fixed simulation step used by the headless runner
	TickStepSeconds = 1.0 / 60.0

	// MaxDeltaSeconds clamps a single tick's dt after a stall
	MaxDeltaSeconds = 0.06
)

// Pool capacities
const (
	// ProjectileCapacity is the maximum live projectiles across both factions
	ProjectileCapacity = 256

	// EnemyCapacity is the maximum live enemies
	EnemyCapacity = 64

	// EffectCapacity is the maximum live render-only effects
	EffectCapacity = 128

	// EventCapacity bounds the per-tick event list published in the snapshot
	EventCapacity = 256

	// MaxFireRequests caps fire requests pending for one tick
	MaxFireRequests = math.MaxInt32
)

// Arena
const (
	// ArenaHalfWidth is the X extent of the playfield in world units (±N)
	ArenaHalfWidth = 60.0

	// ArenaHalfHeight is the Y extent of the playfield in world units (±N)
	ArenaHalfHeight = 40.0

	// ArenaMargin is how far past the edge an entity may drift before despawn
	ArenaMargin = 10.0

	// GridCellSize is the spatial bucket size, at least the largest hit diameter
	GridCellSize = 8.0
)

// Match recording
const (
	// RecordQueueSize bounds pending recorder writes; overflow is dropped
	RecordQueueSize = 256
)
