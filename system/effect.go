package system

import (
	"github.com/lixenwraith/starfall/core"
	"github.com/lixenwraith/starfall/parameter"
	"github.com/lixenwraith/starfall/vmath"
	"github.com/lixenwraith/starfall/world"
)

// spawnEffect places a render-only effect; exhaustion drops it
func spawnEffect(w *world.World, kind core.EffectKind, at vmath.Vec3F) {
	_, fx, err := w.Effects.Acquire()
	if err != nil {
		w.Stats.DroppedEffects++
		return
	}
	fx.Effect = kind
	fx.Position = at
	switch kind {
	case core.EffectExplosion:
		fx.Lifetime = parameter.ExplosionLifetime
	default:
		fx.Lifetime = parameter.SparkLifetime
	}
}
