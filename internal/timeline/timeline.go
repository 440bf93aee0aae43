// Package timeline holds the ordered segment ledger: an append-only
// sequence of timed operations with cumulative timing and frame mapping.
//
// Positions in the ledger are stable for the lifetime of a timeline.
// Durations may be rewritten in place after the fact (duration
// resolution), ledger indices never move.
package timeline

import "math"

// DefaultFPS is the frame rate used when none is configured.
const DefaultFPS = 30

// Timeline owns the segment ledger and the frame rate.
type Timeline struct {
	segments []Segment
	fps      int
}

// New creates an empty timeline. A non-positive fps falls back to DefaultFPS.
func New(fps int) *Timeline {
	if fps <= 0 {
		fps = DefaultFPS
	}
	return &Timeline{fps: fps}
}

// FPS returns the configured frame rate.
func (t *Timeline) FPS() int { return t.fps }

// Len returns the number of segments in the ledger.
func (t *Timeline) Len() int { return len(t.segments) }

// Append adds a segment to the end of the ledger.
func (t *Timeline) Append(s Segment) {
	t.segments = append(t.segments, s)
}

// Segment returns the segment at the given ledger index, or nil when the
// index is out of range.
func (t *Timeline) Segment(i int) Segment {
	if i < 0 || i >= len(t.segments) {
		return nil
	}
	return t.segments[i]
}

// Segments returns the ordered ledger. Callers must not mutate it.
func (t *Timeline) Segments() []Segment { return t.segments }

// DurationOf returns the duration of the segment at the given index,
// or 0 when the index is out of range.
func (t *Timeline) DurationOf(i int) float64 {
	if i < 0 || i >= len(t.segments) {
		return 0
	}
	return t.segments[i].Dur()
}

// CumulativeStart returns the sum of the durations of all segments
// strictly before the given index. An index at or past the end of the
// ledger yields the total duration, so anchors minted at "current ledger
// length" resolve correctly.
func (t *Timeline) CumulativeStart(i int) float64 {
	if i > len(t.segments) {
		i = len(t.segments)
	}
	sum := 0.0
	for j := 0; j < i; j++ {
		sum += t.segments[j].Dur()
	}
	return sum
}

// TotalDuration returns the sum of all segment durations in seconds.
func (t *Timeline) TotalDuration() float64 {
	return t.CumulativeStart(len(t.segments))
}

// FrameCount returns the total number of frames at the timeline's frame rate.
func (t *Timeline) FrameCount() int {
	dur := t.TotalDuration()
	if dur <= 0 {
		return 0
	}
	return int(math.Ceil(dur * float64(t.fps)))
}

// FrameAt maps a time in seconds to a frame index.
//
// The time is clamped: negative times map to frame 0 and times at or past
// the total duration map to the last valid frame. An empty timeline always
// maps to 0.
func (t *Timeline) FrameAt(time float64) int {
	total := t.FrameCount()
	if total == 0 || time <= 0 {
		return 0
	}
	frame := int(math.Floor(time * float64(t.fps)))
	if frame > total-1 {
		frame = total - 1
	}
	return frame
}

// UpdateDuration rewrites the duration of the segment at the given ledger
// index in place. This is the only mutation permitted after append.
// Returns false when the index is out of range.
func (t *Timeline) UpdateDuration(i int, d float64) bool {
	if i < 0 || i >= len(t.segments) {
		return false
	}
	t.segments[i].setDur(d)
	return true
}

// NarrationIndices returns the ledger indices of all narration segments,
// in ledger order.
func (t *Timeline) NarrationIndices() []int {
	var indices []int
	for i, s := range t.segments {
		if s.Kind() == KindNarration {
			indices = append(indices, i)
		}
	}
	return indices
}

// Placed pairs a segment with its cumulative start time.
type Placed struct {
	Start   float64
	Segment Segment
}

// SegmentsOverlapping returns every segment whose interval intersects
// [start, end), each with its cumulative start time, in ledger order.
func (t *Timeline) SegmentsOverlapping(start, end float64) []Placed {
	var hits []Placed
	cursor := 0.0
	for _, s := range t.segments {
		segEnd := cursor + s.Dur()
		if cursor < end && segEnd > start {
			hits = append(hits, Placed{Start: cursor, Segment: s})
		}
		cursor = segEnd
		if cursor >= end {
			break
		}
	}
	return hits
}
