package status

import "sync/atomic"

// Registry holds lock-free gauges written by the tick loop and read from
// other goroutines (telemetry callbacks, HUD)
// Writers cache pointers once; reads never block the tick
type Registry struct {
	Bools   *MetricMap[atomic.Bool]
	Ints    *MetricMap[atomic.Int64]
	Floats  *MetricMap[AtomicFloat]
	Strings *MetricMap[AtomicString]
}

// NewRegistry creates an initialized Registry
func NewRegistry() *Registry {
	return &Registry{
		Bools:   NewMetricMap[atomic.Bool](),
		Ints:    NewMetricMap[atomic.Int64](),
		Floats:  NewMetricMap[AtomicFloat](),
		Strings: NewMetricMap[AtomicString](),
	}
}

// TotalCount returns total metrics across all types
func (r *Registry) TotalCount() int {
	return r.Bools.Count() + r.Ints.Count() + r.Floats.Count() + r.Strings.Count()
}

// Gauge keys published by the engine
const (
	KeyTick          = "engine.tick"
	KeyTickSeconds   = "engine.tick_seconds"
	KeyTickPeak      = "engine.tick_peak_seconds"
	KeyOver          = "match.over"
	KeyScore         = "match.score"
	KeyPlayerHealth  = "player.health"
	KeyPlayerWeapon  = "player.weapon"
	KeyWaveIndex     = "wave.index"
	KeyWavePhase     = "wave.phase"
	KeyWaveAlive     = "wave.alive"
	KeyProjectiles   = "pool.projectiles"
	KeyEnemies       = "pool.enemies"
	KeyEffects       = "pool.effects"
	KeyGridOccupancy = "grid.entries"
)
