package status

import (
	"math"
	"sync/atomic"
)

// AtomicFloat is a float64 stored as its bit pattern
// Zero value reads 0.0
type AtomicFloat struct {
	bits atomic.Uint64
}

// Set stores val
func (f *AtomicFloat) Set(val float64) {
	f.bits.Store(math.Float64bits(val))
}

// Get loads the current value
func (f *AtomicFloat) Get() float64 {
	return math.Float64frombits(f.bits.Load())
}

// Max raises the stored value to val if val is larger, returning the result
func (f *AtomicFloat) Max(val float64) float64 {
	for {
		old := f.bits.Load()
		cur := math.Float64frombits(old)
		if val <= cur {
			return cur
		}
		if f.bits.CompareAndSwap(old, math.Float64bits(val)) {
			return val
		}
	}
}
