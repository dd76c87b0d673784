package core

import "github.com/lixenwraith/starfall/vmath"

// EventKind tags a tick event
type EventKind uint8

const (
	EventWaveStarted EventKind = iota
	EventWaveCleared
	EventShotFired
	EventEnemyHit
	EventEnemyDestroyed
	EventEnemyEscaped
	EventPlayerHit
	EventPlayerDestroyed
)

func (k EventKind) String() string {
	switch k {
	case EventWaveStarted:
		return "wave_started"
	case EventWaveCleared:
		return "wave_cleared"
	case EventShotFired:
		return "shot_fired"
	case EventEnemyHit:
		return "enemy_hit"
	case EventEnemyDestroyed:
		return "enemy_destroyed"
	case EventEnemyEscaped:
		return "enemy_escaped"
	case EventPlayerHit:
		return "player_hit"
	case EventPlayerDestroyed:
		return "player_destroyed"
	default:
		return "unknown"
	}
}

// Event is one notable occurrence during a tick, published with the snapshot
// Consumers (audio, recorder, HUD) react to events instead of diffing snapshots
type Event struct {
	Kind      EventKind
	Handle    Handle
	Faction   Faction
	Archetype ArchetypeID
	Position  vmath.Vec3F
	Wave      int
	Value     float64 // damage for hits, score for kills
}
