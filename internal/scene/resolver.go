package scene

import "fmt"

// LengthMismatchError reports a duration-resolution input whose length
// does not match the number of targeted segments. Nothing is mutated
// when it is returned.
type LengthMismatchError struct {
	Indices   int
	Durations int
}

func (e *LengthMismatchError) Error() string {
	return fmt.Sprintf("duration resolution: %d segment indices but %d durations", e.Indices, e.Durations)
}

// Resolve rewrites the durations of the given ledger segments in place
// and recomputes every element's effective timestamps from its
// unchanged anchors.
//
// The pass is atomic: all inputs are validated before the first
// mutation, so a failed call leaves the session untouched.
func (s *Session) Resolve(indices []int, durations []float64) error {
	if len(indices) != len(durations) {
		return &LengthMismatchError{Indices: len(indices), Durations: len(durations)}
	}
	for _, i := range indices {
		if i < 0 || i >= s.tl.Len() {
			return fmt.Errorf("duration resolution: segment index %d out of range (ledger has %d segments)", i, s.tl.Len())
		}
	}

	for k, i := range indices {
		s.tl.UpdateDuration(i, durations[k])
	}
	s.recomputeTimestamps()
	return nil
}

// ResolveNarration resolves the measured durations of every narration
// segment, in ledger order.
func (s *Session) ResolveNarration(durations []float64) error {
	return s.Resolve(s.tl.NarrationIndices(), durations)
}

// recomputeTimestamps rebuilds each element's effective creation and end
// times as the cumulative duration of all segments strictly before its
// anchor.
func (s *Session) recomputeTimestamps() {
	for _, e := range s.elements {
		e.CreatedAt = s.tl.CumulativeStart(e.CreatedIndex)
		if e.EndIndex != nil {
			e.EndedAt = s.tl.CumulativeStart(*e.EndIndex)
		}
	}
}
