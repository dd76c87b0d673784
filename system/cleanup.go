package system

import (
	"github.com/lixenwraith/starfall/parameter"
	"github.com/lixenwraith/starfall/world"
)

// CleanupSystem compacts every pool, reconciles the wave manager, and ends
// the match when the player is gone
type CleanupSystem struct{}

func NewCleanupSystem() *CleanupSystem { return &CleanupSystem{} }

func (s *CleanupSystem) Name() string  { return "cleanup" }
func (s *CleanupSystem) Priority() int { return parameter.PriorityCleanup }

func (s *CleanupSystem) Update(w *world.World, _ float64) {
	w.Projectiles.Compact()
	w.Enemies.Compact()
	w.Effects.Compact()

	ReconcileWave(w)

	if !w.Player.Alive && !w.Over {
		w.Over = true
		w.Log.Info().
			Int("wave", w.Wave.Index).
			Int("score", w.Stats.Score).
			Int("kills", w.Stats.Kills).
			Msg("match over")
	}
}
