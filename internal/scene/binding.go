package scene

import (
	"github.com/ivlev/scene2video/internal/technique"
	"github.com/ivlev/scene2video/internal/timeline"
)

// Binding associates a technique instance with a set of target elements
// and the ledger index of the animation segment that owns it.
//
// The absolute time window is always derived from the ledger, never
// cached, so resolved durations shift it automatically.
type Binding struct {
	Technique    technique.Technique
	Targets      []uint64
	SegmentIndex int
}

// Window returns the binding's absolute [start, end) interval.
func (b *Binding) Window(tl *timeline.Timeline) (start, end float64) {
	start = tl.CumulativeStart(b.SegmentIndex)
	return start, start + tl.DurationOf(b.SegmentIndex)
}

// ProgressAt maps a time to the binding's progress: 0 before the window
// opens, linear inside it, 1 after it closes.
func (b *Binding) ProgressAt(tl *timeline.Timeline, t float64) float64 {
	start, end := b.Window(tl)
	if t <= start {
		return 0
	}
	if t >= end || end <= start {
		return 1
	}
	return (t - start) / (end - start)
}

// TargetsElement reports whether the binding targets the given element id.
func (b *Binding) TargetsElement(id uint64) bool {
	for _, target := range b.Targets {
		if target == id {
			return true
		}
	}
	return false
}
