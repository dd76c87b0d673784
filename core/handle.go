package core

import "fmt"

// Handle identifies a pool slot across reuse
// Index is the stable slot id, Gen is bumped every time the slot is released
// The zero Handle never refers to a live entity
type Handle struct {
	Index uint32
	Gen   uint32
}

// NoHandle is the invalid handle
var NoHandle Handle

// Valid reports whether h could refer to an entity, staleness is checked by the pool
func (h Handle) Valid() bool {
	return h.Gen != 0
}

// Less orders handles by slot id then generation for deterministic tie-breaks
func (h Handle) Less(o Handle) bool {
	if h.Index != o.Index {
		return h.Index < o.Index
	}
	return h.Gen < o.Gen
}

func (h Handle) String() string {
	if !h.Valid() {
		return "handle(none)"
	}
	return fmt.Sprintf("handle(%d:%d)", h.Index, h.Gen)
}
