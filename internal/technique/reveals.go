package technique

// Fade reveals an element by ramping opacity from transparent to opaque.
type Fade struct {
	Duration float64
}

// NewFade returns a Fade with the default duration.
func NewFade() *Fade {
	return &Fade{Duration: 0.5}
}

func (f *Fade) Name() string          { return "Fade" }
func (f *Fade) BaseDuration() float64 { return f.Duration }

func (f *Fade) Apply(progress float64) Output {
	out := Neutral()
	out.Opacity = clamp01(progress)
	return out
}

// FadeUp is a directional fade: the element fades in while translating
// upward over Distance pixels.
type FadeUp struct {
	Duration float64
	Distance float64
}

// NewFadeUp returns a FadeUp with the default duration and distance.
func NewFadeUp() *FadeUp {
	return &FadeUp{Duration: 0.6, Distance: 30}
}

func (f *FadeUp) Name() string          { return "FadeUp" }
func (f *FadeUp) BaseDuration() float64 { return f.Duration }

func (f *FadeUp) Apply(progress float64) Output {
	p := clamp01(progress)
	out := Neutral()
	out.Opacity = p
	out.TranslateY = (1 - p) * f.Distance
	return out
}
