package world

import "github.com/lixenwraith/starfall/core"

// Events is a fixed-capacity per-tick event list
type Events struct {
	buf []core.Event
}

func newEvents(capacity int) Events {
	return Events{buf: make([]core.Event, 0, capacity)}
}

// Reset empties the list at tick start
func (e *Events) Reset() {
	e.buf = e.buf[:0]
}

func (e *Events) push(ev core.Event) bool {
	if len(e.buf) == cap(e.buf) {
		return false
	}
	e.buf = append(e.buf, ev)
	return true
}

// All is a view of this tick's events, valid until the next Reset
func (e *Events) All() []core.Event {
	return e.buf
}

// Len is the number of recorded events
func (e *Events) Len() int { return len(e.buf) }
