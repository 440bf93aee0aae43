package technique

// Slide moves an element in from an offset toward its resting position.
type Slide struct {
	Duration float64
	OffsetX  float64
	OffsetY  float64
}

// NewSlide returns a Slide with the default duration and offset.
func NewSlide() *Slide {
	return &Slide{Duration: 0.5, OffsetX: 100}
}

func (s *Slide) Name() string          { return "Slide" }
func (s *Slide) BaseDuration() float64 { return s.Duration }

func (s *Slide) Apply(progress float64) Output {
	p := clamp01(progress)
	out := Neutral()
	out.TranslateX = (1 - p) * s.OffsetX
	out.TranslateY = (1 - p) * s.OffsetY
	return out
}

// Scale grows or shrinks an element between two scale factors.
type Scale struct {
	Duration float64
	From     float64
	To       float64
}

// NewScale returns a Scale with the default duration growing from 0 to 1.
func NewScale() *Scale {
	return &Scale{Duration: 0.4, From: 0, To: 1}
}

func (s *Scale) Name() string          { return "Scale" }
func (s *Scale) BaseDuration() float64 { return s.Duration }

func (s *Scale) Apply(progress float64) Output {
	p := clamp01(progress)
	out := Neutral()
	out.Scale = lerp(s.From, s.To, p)
	return out
}
