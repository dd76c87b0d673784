package world

import (
	"github.com/lixenwraith/starfall/core"
	"github.com/lixenwraith/starfall/vmath"
)

// Input is the command structure handed from callers to the systems at a
// tick boundary; callers write a pending copy, the engine swaps it in
type Input struct {
	// Fire is the number of fire requests since the last tick
	Fire int

	Target    core.Handle
	TargetSet bool

	WaveStart bool

	Equip    core.WeaponID
	EquipSet bool

	Steer    vmath.Vec3F
	SteerSet bool
}
