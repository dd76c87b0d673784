package input

import "github.com/gdamore/tcell/v2"

// KeyTable maps keys to intents
type KeyTable struct {
	// Special keys (Ctrl+*, arrows, Enter, Esc)
	Keys map[tcell.Key]Intent
	// Printable runes
	Runes map[rune]Intent
}

// DefaultKeyTable returns the default bindings: arrows or hjkl steer,
// space fires, Tab cycles targets
func DefaultKeyTable() *KeyTable {
	return &KeyTable{
		Keys: map[tcell.Key]Intent{
			tcell.KeyCtrlC:   IntentQuit,
			tcell.KeyCtrlQ:   IntentQuit,
			tcell.KeyEscape:  IntentQuit,
			tcell.KeyCtrlS:   IntentToggleMute,
			tcell.KeyLeft:    IntentSteerLeft,
			tcell.KeyRight:   IntentSteerRight,
			tcell.KeyUp:      IntentSteerUp,
			tcell.KeyDown:    IntentSteerDown,
			tcell.KeyEnter:   IntentFire,
			tcell.KeyTab:     IntentTargetNext,
			tcell.KeyBacktab: IntentTargetClear,
		},
		Runes: map[rune]Intent{
			'h': IntentSteerLeft,
			'l': IntentSteerRight,
			'k': IntentSteerUp,
			'j': IntentSteerDown,
			'x': IntentStop,
			' ': IntentFire,
			'f': IntentAutofire,
			'1': IntentEquip1,
			'2': IntentEquip2,
			'3': IntentEquip3,
			'4': IntentEquip4,
			'n': IntentStartWave,
			'r': IntentRestart,
			'm': IntentToggleMute,
			'q': IntentQuit,
		},
	}
}

// Lookup returns the intent bound to ev, IntentNone when unbound
func (kt *KeyTable) Lookup(ev *tcell.EventKey) Intent {
	if ev.Key() == tcell.KeyRune {
		return kt.Runes[ev.Rune()]
	}
	return kt.Keys[ev.Key()]
}

// Merge applies a sparse override table; a key bound to IntentNone is unbound
func (kt *KeyTable) Merge(o *KeyTable) {
	for k, in := range o.Keys {
		if in == IntentNone {
			delete(kt.Keys, k)
			continue
		}
		kt.Keys[k] = in
	}
	for r, in := range o.Runes {
		if in == IntentNone {
			delete(kt.Runes, r)
			continue
		}
		kt.Runes[r] = in
	}
}
