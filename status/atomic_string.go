package status

import "sync/atomic"

// MaxStringLen bounds stored labels
const MaxStringLen = 24

// AtomicString is a short label readable across goroutines
// Zero value reads ""
type AtomicString struct {
	ptr atomic.Pointer[string]
}

// Store sets the label, truncated to MaxStringLen bytes
func (s *AtomicString) Store(val string) {
	if len(val) > MaxStringLen {
		val = val[:MaxStringLen]
	}
	s.ptr.Store(&val)
}

// Load returns the current label
func (s *AtomicString) Load() string {
	if p := s.ptr.Load(); p != nil {
		return *p
	}
	return ""
}
