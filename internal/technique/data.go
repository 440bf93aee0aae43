package technique

// CountUp animates a number from one value to another. The interpolated
// value is exposed through ValueAt so the painter can render it; Apply
// keeps the element itself on a quick opacity ramp-in.
type CountUp struct {
	Duration float64
	From     float64
	To       float64
}

// NewCountUp returns a CountUp with the default duration counting 0 to 100.
func NewCountUp() *CountUp {
	return &CountUp{Duration: 1.0, From: 0, To: 100}
}

func (c *CountUp) Name() string          { return "CountUp" }
func (c *CountUp) BaseDuration() float64 { return c.Duration }

func (c *CountUp) Apply(progress float64) Output {
	p := clamp01(progress)
	out := Neutral()
	// The element is fully opaque after the first fifth of the window.
	out.Opacity = clamp01(p * 5)
	return out
}

// ValueAt returns the displayed number at the given progress.
func (c *CountUp) ValueAt(progress float64) float64 {
	return lerp(c.From, c.To, clamp01(progress))
}
