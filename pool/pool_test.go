package pool

import (
	"errors"
	"testing"

	"github.com/lixenwraith/starfall/core"
)

func newPool(t *testing.T, capacity int) *Pool {
	t.Helper()
	p, err := New(core.KindProjectile, capacity)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	return p
}

// checkDense verifies [0, Len()) holds only alive records and ids map back
func checkDense(t *testing.T, p *Pool) {
	t.Helper()
	if p.Len() > p.Cap() {
		t.Fatalf("active count %d exceeds capacity %d", p.Len(), p.Cap())
	}
	for i, e := range p.Active() {
		if !e.Alive {
			t.Errorf("dead record at dense index %d after compaction", i)
		}
		got, ok := p.Get(e.Handle)
		if !ok || got != p.At(i) {
			t.Errorf("handle %s does not resolve to dense index %d", e.Handle, i)
		}
	}
}

func TestNewRejectsNonPositiveCapacity(t *testing.T) {
	for _, c := range []int{0, -3} {
		if _, err := New(core.KindEnemy, c); !errors.Is(err, core.ErrInvalidConfiguration) {
			t.Errorf("capacity %d: expected ErrInvalidConfiguration, got %v", c, err)
		}
	}
}

func TestAcquireExhausted(t *testing.T) {
	p := newPool(t, 3)

	spawned, dropped := 0, 0
	for i := 0; i < 5; i++ {
		_, _, err := p.Acquire()
		switch {
		case err == nil:
			spawned++
		case errors.Is(err, core.ErrExhausted):
			dropped++
		default:
			t.Fatalf("unexpected error: %v", err)
		}
	}

	if spawned != 3 || dropped != 2 {
		t.Errorf("expected 3 spawned / 2 dropped, got %d / %d", spawned, dropped)
	}
	if p.Len() != 3 {
		t.Errorf("expected 3 active, got %d", p.Len())
	}
	if n := p.TakeDropped(); n != 2 {
		t.Errorf("expected dropped counter 2, got %d", n)
	}
	if n := p.TakeDropped(); n != 0 {
		t.Errorf("dropped counter not cleared, got %d", n)
	}
}

func TestAcquireInitializesRecord(t *testing.T) {
	p := newPool(t, 2)
	h, e, err := p.Acquire()
	if err != nil {
		t.Fatalf("Acquire failed: %v", err)
	}
	if !e.Alive || e.Kind != core.KindProjectile || e.Handle != h {
		t.Errorf("unexpected record: %+v", e)
	}
	if e.Orientation.W != 1 {
		t.Errorf("expected identity orientation, got %+v", e.Orientation)
	}
}

func TestCompactKeepsActiveRangeDense(t *testing.T) {
	p := newPool(t, 8)
	handles := make([]core.Handle, 0, 8)
	for i := 0; i < 8; i++ {
		h, e, err := p.Acquire()
		if err != nil {
			t.Fatalf("Acquire %d failed: %v", i, err)
		}
		e.Damage = float64(i)
		handles = append(handles, h)
	}

	// Kill by flag and by Release, including first and last positions
	for _, i := range []int{0, 3, 7} {
		e, _ := p.Get(handles[i])
		e.Kill()
	}
	if err := p.Release(handles[5]); err != nil {
		t.Fatalf("Release failed: %v", err)
	}

	if n := p.Compact(); n != 4 {
		t.Errorf("expected 4 reclaimed, got %d", n)
	}
	if p.Len() != 4 {
		t.Fatalf("expected 4 active, got %d", p.Len())
	}
	checkDense(t, p)

	// Survivors keep their payload behind their handles
	for _, i := range []int{1, 2, 4, 6} {
		e, ok := p.Get(handles[i])
		if !ok {
			t.Fatalf("survivor %d lost its handle", i)
		}
		if e.Damage != float64(i) {
			t.Errorf("survivor %d payload changed to %v", i, e.Damage)
		}
	}
}

func TestStaleHandleDetected(t *testing.T) {
	p := newPool(t, 1)
	h, _, _ := p.Acquire()

	if err := p.Release(h); err != nil {
		t.Fatalf("Release failed: %v", err)
	}
	if _, ok := p.Get(h); ok {
		t.Error("released handle still resolves before compaction")
	}
	if err := p.Release(h); !errors.Is(err, core.ErrStaleHandle) {
		t.Errorf("double release: expected ErrStaleHandle, got %v", err)
	}

	p.Compact()
	h2, _, err := p.Acquire()
	if err != nil {
		t.Fatalf("Acquire after compaction failed: %v", err)
	}
	if h2.Index != h.Index {
		t.Fatalf("expected slot reuse, got %s after %s", h2, h)
	}
	if h2.Gen == h.Gen {
		t.Error("generation not advanced on reuse")
	}
	if _, ok := p.Get(h); ok {
		t.Error("stale handle aliases reused slot")
	}
	if _, ok := p.Get(h2); !ok {
		t.Error("fresh handle does not resolve")
	}
}

func TestKillByFlagInvalidatesAfterCompact(t *testing.T) {
	p := newPool(t, 2)
	h, e, _ := p.Acquire()
	e.Kill()

	if _, ok := p.Get(h); !ok {
		t.Error("flag-killed record should resolve until compaction")
	}
	if _, ok := p.Live(h); ok {
		t.Error("Live must reject a dead record")
	}
	p.Compact()
	if _, ok := p.Get(h); ok {
		t.Error("flag-killed handle resolves after compaction")
	}
}

func TestResetInvalidatesHandles(t *testing.T) {
	p := newPool(t, 4)
	h, _, _ := p.Acquire()
	p.Acquire()
	p.Reset()

	if p.Len() != 0 {
		t.Errorf("expected empty pool, got %d", p.Len())
	}
	if _, ok := p.Get(h); ok {
		t.Error("handle survived Reset")
	}
	for i := 0; i < 4; i++ {
		if _, _, err := p.Acquire(); err != nil {
			t.Fatalf("Acquire %d after Reset failed: %v", i, err)
		}
	}
}

func TestForEachActiveStopsEarly(t *testing.T) {
	p := newPool(t, 5)
	for i := 0; i < 5; i++ {
		p.Acquire()
	}
	visited := 0
	p.ForEachActive(func(i int, e *core.Entity) bool {
		visited++
		return i < 2
	})
	if visited != 3 {
		t.Errorf("expected 3 visits, got %d", visited)
	}
}

// Churn many cycles and verify the invariants after every compaction
func TestChurnInvariants(t *testing.T) {
	p := newPool(t, 16)
	for cycle := 0; cycle < 200; cycle++ {
		for k := 0; k < 1+cycle%7; k++ {
			p.Acquire()
		}
		p.ForEachActive(func(i int, e *core.Entity) bool {
			if (i+cycle)%3 == 0 {
				e.Kill()
			}
			return true
		})
		p.Compact()
		checkDense(t, p)
	}
}

func BenchmarkAcquireCompact(b *testing.B) {
	p, _ := New(core.KindProjectile, 1024)
	b.ReportAllocs()
	for n := 0; n < b.N; n++ {
		for p.Len() < p.Cap() {
			p.Acquire()
		}
		p.ForEachActive(func(i int, e *core.Entity) bool {
			if i%2 == 0 {
				e.Kill()
			}
			return true
		})
		p.Compact()
	}
}
