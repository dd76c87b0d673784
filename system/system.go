package system

import (
	"sort"

	"github.com/lixenwraith/starfall/world"
)

// System is one stage of the tick pipeline
// Update receives the world for the duration of the call only
type System interface {
	Name() string
	Priority() int // Lower values run first
	Update(w *world.World, dt float64)
}

// Pipeline returns the standard systems in execution order
func Pipeline() []System {
	return Sort([]System{
		NewWaveSystem(),
		NewWeaponSystem(),
		NewEnemySystem(),
		NewMotionSystem(),
		NewIndexSystem(),
		NewCollisionSystem(),
		NewCleanupSystem(),
	})
}

// Sort orders systems by priority in place, stable for equal priorities
func Sort(systems []System) []System {
	sort.SliceStable(systems, func(i, j int) bool {
		return systems[i].Priority() < systems[j].Priority()
	})
	return systems
}
