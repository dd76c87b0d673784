package engine

import (
	"time"

	"github.com/lixenwraith/starfall/core"
	"github.com/lixenwraith/starfall/world"
)

// Observer is notified synchronously at the end of every tick, after the
// snapshot is published
// The report and its slices are only valid during the call
type Observer interface {
	TickCompleted(r *Report)
}

// ObserverFunc adapts a function to Observer
type ObserverFunc func(r *Report)

func (f ObserverFunc) TickCompleted(r *Report) { f(r) }

// Report summarizes one tick for telemetry, recording and audio
type Report struct {
	Tick     uint64
	Delta    float64
	Duration time.Duration
	// Advanced is false when the match was already over and nothing ran
	Advanced bool

	// Stats are cumulative, Diff is this tick's contribution
	Stats core.Stats
	Diff  core.Stats

	Projectiles int
	Enemies     int
	Effects     int

	Wave  int
	Phase world.Phase
	Over  bool

	Snapshot *Snapshot
	Events   []core.Event
}
