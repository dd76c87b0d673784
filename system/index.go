package system

import (
	"github.com/lixenwraith/starfall/core"
	"github.com/lixenwraith/starfall/parameter"
	"github.com/lixenwraith/starfall/spatial"
	"github.com/lixenwraith/starfall/world"
)

// IndexSystem rebuilds the spatial grid from post-motion positions
// Projectile targets are indexed: living enemies and the player
type IndexSystem struct{}

func NewIndexSystem() *IndexSystem { return &IndexSystem{} }

func (s *IndexSystem) Name() string  { return "index" }
func (s *IndexSystem) Priority() int { return parameter.PriorityIndex }

func (s *IndexSystem) Update(w *world.World, _ float64) {
	g := w.Grid
	g.Begin()
	if w.Player.Alive {
		g.Add(spatial.Ref{Kind: core.KindPlayer}, w.Player.Position)
	}
	w.Enemies.ForEachActive(func(i int, e *core.Entity) bool {
		if e.Alive {
			g.Add(spatial.Ref{Kind: core.KindEnemy, Index: int32(i)}, e.Position)
		}
		return true
	})
	g.Commit()
}
