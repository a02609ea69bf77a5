package freq

import "sync/atomic"

// captureSlot is a single-item handoff between the capture handler and the
// foreground reader. The producer overwrites any unconsumed sample, so the
// reader always sees the newest pending timestamp.
//
// The 64-bit load/store pair is atomic, so a torn read of the extended
// timestamp cannot happen across a preemption point.
type captureSlot struct {
	ts      atomic.Uint64
	pending atomic.Bool
}

func (s *captureSlot) put(ts uint64) {
	s.ts.Store(ts)
	s.pending.Store(true)
}

// take fetches and clears the pending sample, if any.
func (s *captureSlot) take() (uint64, bool) {
	if !s.pending.Swap(false) {
		return 0, false
	}
	return s.ts.Load(), true
}

func (s *captureSlot) clear() {
	s.pending.Store(false)
	s.ts.Store(0)
}
