// Package input maps tcell key events to engine commands
package input

// Intent is the semantic action bound to a key
type Intent uint8

const (
	IntentNone Intent = iota

	// System, handled by the caller
	IntentQuit
	IntentToggleMute
	IntentResize

	// Weapons
	IntentFire
	IntentAutofire // toggles firing every frame
	IntentEquip1
	IntentEquip2
	IntentEquip3
	IntentEquip4

	// Steering; terminals report no key release, so a heading holds until changed
	IntentSteerLeft
	IntentSteerRight
	IntentSteerUp
	IntentSteerDown
	IntentStop

	// Targeting
	IntentTargetNext
	IntentTargetClear

	// Match
	IntentStartWave
	IntentRestart
)

// System reports whether the caller, not the controller, acts on i
func (i Intent) System() bool {
	return i == IntentQuit || i == IntentToggleMute || i == IntentResize
}
