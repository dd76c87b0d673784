package input

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/starfall/core"
	"github.com/lixenwraith/starfall/engine"
	"github.com/lixenwraith/starfall/vmath"
)

// Controller turns key events into engine commands between ticks
// Not safe for concurrent use; call from the goroutine that ticks the engine
type Controller struct {
	table    *KeyTable
	autofire bool
	steer    vmath.Vec3F
}

// NewController creates a controller over table, nil uses the defaults
func NewController(table *KeyTable) *Controller {
	if table == nil {
		table = DefaultKeyTable()
	}
	return &Controller{table: table}
}

// Autofire reports whether the ship fires every frame
func (c *Controller) Autofire() bool { return c.autofire }

// Handle applies ev to e and returns its intent
// System intents are returned untouched for the caller to act on
func (c *Controller) Handle(ev tcell.Event, e *engine.Engine) Intent {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		in := c.table.Lookup(ev)
		if !in.System() {
			c.apply(in, e)
		}
		return in
	case *tcell.EventResize:
		return IntentResize
	}
	return IntentNone
}

// Frame issues the per-frame commands, called once before each tick
func (c *Controller) Frame(e *engine.Engine) {
	if c.autofire {
		e.Fire(1)
	}
}

func (c *Controller) apply(in Intent, e *engine.Engine) {
	switch in {
	case IntentFire:
		e.Fire(1)
	case IntentAutofire:
		c.autofire = !c.autofire

	case IntentEquip1, IntentEquip2, IntentEquip3, IntentEquip4:
		weapons := e.Rules().Weapons
		slot := int(in - IntentEquip1)
		if slot < len(weapons) {
			// Names come from the rules, Equip cannot reject them
			if err := e.Equip(weapons[slot].Name); err != nil {
				return
			}
		}

	case IntentSteerLeft:
		c.setSteer(e, vmath.Vec3F{X: -1})
	case IntentSteerRight:
		c.setSteer(e, vmath.Vec3F{X: 1})
	case IntentSteerUp:
		c.setSteer(e, vmath.Vec3F{Y: 1})
	case IntentSteerDown:
		c.setSteer(e, vmath.Vec3F{Y: -1})
	case IntentStop:
		c.setSteer(e, vmath.Vec3F{})

	case IntentTargetNext:
		e.SetTarget(NextTarget(e.Snapshot()))
	case IntentTargetClear:
		e.SetTarget(core.NoHandle)

	case IntentStartWave:
		e.StartWave()
	case IntentRestart:
		if err := e.Restart(); err != nil {
			return
		}
		c.autofire = false
		c.steer = vmath.Vec3F{}
	}
}

func (c *Controller) setSteer(e *engine.Engine, dir vmath.Vec3F) {
	c.steer = dir
	e.Steer(dir)
}

// NextTarget returns the enemy following the current target in handle order,
// wrapping to the lowest; NoHandle when no enemy is alive
func NextTarget(s *engine.Snapshot) core.Handle {
	var (
		first, next core.Handle
		haveFirst   bool
		haveNext    bool
	)
	for i := range s.Enemies {
		h := s.Enemies[i].Handle
		if !haveFirst || h.Less(first) {
			first, haveFirst = h, true
		}
		if s.Target.Valid() && s.Target.Less(h) && (!haveNext || h.Less(next)) {
			next, haveNext = h, true
		}
	}
	switch {
	case haveNext:
		return next
	case haveFirst:
		return first
	}
	return core.NoHandle
}
