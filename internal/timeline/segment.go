package timeline

// SegmentKind identifies the variant of a timeline segment.
type SegmentKind int

const (
	KindNarration SegmentKind = iota
	KindPause
	KindAnimation
	KindClip
)

func (k SegmentKind) String() string {
	switch k {
	case KindNarration:
		return "narration"
	case KindPause:
		return "pause"
	case KindAnimation:
		return "animation"
	case KindClip:
		return "clip"
	}
	return "unknown"
}

// Segment is a single timed operation on the timeline.
// Every variant exposes its duration in seconds.
type Segment interface {
	Kind() SegmentKind
	Dur() float64

	setDur(d float64)
}

// Narration is spoken text synthesized by an external TTS stage.
// Its duration starts as an estimate and is replaced by the measured
// duration during resolution.
type Narration struct {
	Text     string
	Duration float64
}

func (n *Narration) Kind() SegmentKind { return KindNarration }
func (n *Narration) Dur() float64      { return n.Duration }
func (n *Narration) setDur(d float64)  { n.Duration = d }

// Pause is a voiceless hold: no audio, visuals stay as they are.
type Pause struct {
	Duration float64
}

func (p *Pause) Kind() SegmentKind { return KindPause }
func (p *Pause) Dur() float64      { return p.Duration }
func (p *Pause) setDur(d float64)  { p.Duration = d }

// Animation marks the window in which a bound technique plays.
type Animation struct {
	Name     string
	Duration float64
}

func (a *Animation) Kind() SegmentKind { return KindAnimation }
func (a *Animation) Dur() float64      { return a.Duration }
func (a *Animation) setDur(d float64)  { a.Duration = d }

// Clip references a pre-rendered external audio/video clip.
type Clip struct {
	Ref      string
	Duration float64
}

func (c *Clip) Kind() SegmentKind { return KindClip }
func (c *Clip) Dur() float64      { return c.Duration }
func (c *Clip) setDur(d float64)  { c.Duration = d }
