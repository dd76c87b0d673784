package input

// actionRegistry maps canonical action names to intents
// Used by LoadKeyConfig to resolve configured action strings
var actionRegistry = map[string]Intent{
	// Unbind sentinel
	"none": IntentNone,

	"quit":        IntentQuit,
	"toggle_mute": IntentToggleMute,

	"fire":     IntentFire,
	"autofire": IntentAutofire,
	"equip_1":  IntentEquip1,
	"equip_2":  IntentEquip2,
	"equip_3":  IntentEquip3,
	"equip_4":  IntentEquip4,

	"steer_left":  IntentSteerLeft,
	"steer_right": IntentSteerRight,
	"steer_up":    IntentSteerUp,
	"steer_down":  IntentSteerDown,
	"stop":        IntentStop,

	"target_next":  IntentTargetNext,
	"target_clear": IntentTargetClear,

	"start_wave": IntentStartWave,
	"restart":    IntentRestart,
}
