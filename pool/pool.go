package pool

import (
	"fmt"

	"github.com/lixenwraith/starfall/core"
	"github.com/lixenwraith/starfall/vmath"
)

// Pool is fixed-capacity storage for one entity kind
// Active entities are dense in [0, Len()) after Compact
// Slot ids are stable for the lifetime of an entity; dense positions are not
//
// Layout is a sparse set:
//   - entities[d] is the record at dense position d
//   - ids[d] is the slot id held at dense position d
//   - dense[id] is the dense position of slot id
//   - gens[id] is the current generation of slot id
//
// Nothing allocates after New
type Pool struct {
	kind     core.Kind
	entities []core.Entity
	ids      []uint32
	dense    []uint32
	gens     []uint32
	free     []uint32 // stack of unused slot ids
	count    int

	dropped int // acquisitions refused since last TakeDropped
}

// New creates a pool holding at most capacity entities of kind
func New(kind core.Kind, capacity int) (*Pool, error) {
	if capacity <= 0 {
		return nil, fmt.Errorf("%w: %s pool capacity %d", core.ErrInvalidConfiguration, kind, capacity)
	}
	p := &Pool{
		kind:     kind,
		entities: make([]core.Entity, capacity),
		ids:      make([]uint32, capacity),
		dense:    make([]uint32, capacity),
		gens:     make([]uint32, capacity),
		free:     make([]uint32, capacity),
	}
	p.Reset()
	return p, nil
}

// Reset releases every entity and invalidates all outstanding handles
func (p *Pool) Reset() {
	p.free = p.free[:cap(p.free)]
	for i := range p.entities {
		p.entities[i] = core.Entity{}
		// Lowest ids are handed out first
		p.free[i] = uint32(len(p.entities) - 1 - i)
		p.gens[i]++
		if p.gens[i] == 0 {
			p.gens[i] = 1
		}
	}
	p.count = 0
	p.dropped = 0
}

// Acquire claims a slot and returns its freshly zeroed, alive record
// Returns core.ErrExhausted when full, the pool never grows
// The returned pointer is valid until the next Compact
func (p *Pool) Acquire() (core.Handle, *core.Entity, error) {
	if len(p.free) == 0 {
		p.dropped++
		return core.NoHandle, nil, core.ErrExhausted
	}

	id := p.free[len(p.free)-1]
	p.free = p.free[:len(p.free)-1]

	d := uint32(p.count)
	p.count++
	p.dense[id] = d
	p.ids[d] = id

	h := core.Handle{Index: id, Gen: p.gens[id]}
	e := &p.entities[d]
	*e = core.Entity{
		Kinetic: core.Kinetic{Orientation: vmath.QuatIdentity},
		Handle:  h,
		Kind:    p.kind,
		Alive:   true,
	}
	return h, e, nil
}

// Release marks the entity dead and invalidates h immediately
// The slot is reclaimed by the next Compact
func (p *Pool) Release(h core.Handle) error {
	e, ok := p.Get(h)
	if !ok {
		return fmt.Errorf("%w: %s %s", core.ErrStaleHandle, p.kind, h)
	}
	e.Kill()
	p.bumpGen(h.Index)
	return nil
}

// Get resolves a handle to its record
// ok is false for stale or foreign handles; a record marked dead but not yet
// compacted still resolves until Release or Compact
func (p *Pool) Get(h core.Handle) (*core.Entity, bool) {
	if !h.Valid() || int(h.Index) >= len(p.gens) || p.gens[h.Index] != h.Gen {
		return nil, false
	}
	d := p.dense[h.Index]
	if int(d) >= p.count || p.ids[d] != h.Index {
		return nil, false
	}
	return &p.entities[d], true
}

// Live resolves a handle and additionally requires the entity to be alive
func (p *Pool) Live(h core.Handle) (*core.Entity, bool) {
	e, ok := p.Get(h)
	if !ok || !e.Alive {
		return nil, false
	}
	return e, true
}

// At returns the record at dense position i, i must be in [0, Len())
func (p *Pool) At(i int) *core.Entity {
	return &p.entities[i]
}

// ForEachActive visits every record in [0, Len()) in dense order, including
// ones marked dead this tick; fn returns false to stop early
func (p *Pool) ForEachActive(fn func(i int, e *core.Entity) bool) {
	for i := 0; i < p.count; i++ {
		if !fn(i, &p.entities[i]) {
			return
		}
	}
}

// Active is a view of [0, Len()), valid until the next Acquire or Compact
func (p *Pool) Active() []core.Entity {
	return p.entities[:p.count]
}

// Compact removes dead records by swapping the last active record into
// their position. O(Len()), relative order is not preserved
// Returns the number of reclaimed slots
func (p *Pool) Compact() int {
	reclaimed := 0
	i := 0
	for i < p.count {
		e := &p.entities[i]
		if e.Alive {
			i++
			continue
		}

		id := p.ids[i]
		// Entities killed by flag rather than Release still hold a current handle
		if p.gens[id] == e.Handle.Gen {
			p.bumpGen(id)
		}
		p.free = append(p.free, id)
		reclaimed++

		last := p.count - 1
		if i != last {
			p.entities[i] = p.entities[last]
			moved := p.ids[last]
			p.ids[i] = moved
			p.dense[moved] = uint32(i)
		}
		p.entities[last] = core.Entity{}
		p.count--
		// Re-examine position i, it now holds the moved record
	}
	return reclaimed
}

// Len is the active count
func (p *Pool) Len() int { return p.count }

// Cap is the fixed capacity
func (p *Pool) Cap() int { return len(p.entities) }

// Kind is the entity kind stored in this pool
func (p *Pool) Kind() core.Kind { return p.kind }

// TakeDropped returns and clears the refused acquisition count
func (p *Pool) TakeDropped() int {
	n := p.dropped
	p.dropped = 0
	return n
}

func (p *Pool) bumpGen(id uint32) {
	p.gens[id]++
	if p.gens[id] == 0 {
		p.gens[id] = 1
	}
}
