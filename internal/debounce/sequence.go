package debounce

import "sync/atomic"

// Sequence hands out increasing tickets so that the result of an older
// asynchronous request can be recognized and dropped once a newer one was issued.
type Sequence struct {
	last atomic.Uint64
}

// Next issues a new ticket, superseding every earlier one.
func (s *Sequence) Next() uint64 {
	return s.last.Add(1)
}

// IsLatest reports whether ticket is the most recently issued one.
func (s *Sequence) IsLatest(ticket uint64) bool {
	return s.last.Load() == ticket
}
