package technique

import "math"

// Ease names an easing curve used to remap progress before a technique
// interpolates.
type Ease int

const (
	Linear Ease = iota
	EaseIn
	EaseOut
	EaseInOut
	OutBack
	OutBounce
	Spring
)

func (e Ease) String() string {
	switch e {
	case Linear:
		return "linear"
	case EaseIn:
		return "ease-in"
	case EaseOut:
		return "ease-out"
	case EaseInOut:
		return "ease-in-out"
	case OutBack:
		return "out-back"
	case OutBounce:
		return "out-bounce"
	case Spring:
		return "spring"
	}
	return "linear"
}

// Remap applies the easing curve to a progress value. Input is clamped to
// [0,1]; curves with overshoot (OutBack, Spring) may return values
// outside [0,1] in the interior but always hit 0 at 0 and 1 at 1.
func (e Ease) Remap(t float64) float64 {
	t = clamp01(t)
	switch e {
	case EaseIn:
		return t * t
	case EaseOut:
		return 1 - (1-t)*(1-t)
	case EaseInOut:
		return easeInOutCubic(t)
	case OutBack:
		return outBack(t)
	case OutBounce:
		return outBounce(t)
	case Spring:
		return spring(t)
	default:
		return t
	}
}

func easeInOutCubic(t float64) float64 {
	if t < 0.5 {
		return 4 * t * t * t
	}
	return 1 - math.Pow(-2*t+2, 3)/2
}

func outBack(t float64) float64 {
	const c1 = 1.70158
	const c3 = c1 + 1
	u := t - 1
	return 1 + c3*u*u*u + c1*u*u
}

func outBounce(t float64) float64 {
	const n1 = 7.5625
	const d1 = 2.75
	switch {
	case t < 1/d1:
		return n1 * t * t
	case t < 2/d1:
		t -= 1.5 / d1
		return n1*t*t + 0.75
	case t < 2.5/d1:
		t -= 2.25 / d1
		return n1*t*t + 0.9375
	default:
		t -= 2.625 / d1
		return n1*t*t + 0.984375
	}
}

func spring(t float64) float64 {
	if t >= 1 {
		return 1
	}
	return 1 - math.Exp(-6*t)*math.Cos(12*t)
}

// Eased wraps a technique and remaps its progress through an easing
// curve before delegating.
//
// The composition is transparent to group delegation: easing a stagger
// eases each item's local progress independently, never the group
// progress as a whole.
type Eased struct {
	Inner Technique
	Ease  Ease
}

// WithEase wraps t with the given easing curve.
func WithEase(t Technique, e Ease) *Eased {
	return &Eased{Inner: t, Ease: e}
}

func (e *Eased) Name() string          { return e.Inner.Name() }
func (e *Eased) BaseDuration() float64 { return e.Inner.BaseDuration() }

func (e *Eased) Apply(progress float64) Output {
	return e.Inner.Apply(e.Ease.Remap(clamp01(progress)))
}

// ApplyForGroup delegates to the wrapped group technique, easing each
// item's local progress rather than the group progress.
func (e *Eased) ApplyForGroup(count int, progress float64) []Output {
	if st, ok := e.Inner.(*Stagger); ok {
		return st.applyForGroup(count, progress, e.Ease)
	}
	if g, ok := e.Inner.(GroupTechnique); ok {
		return g.ApplyForGroup(count, progress)
	}
	outs := make([]Output, count)
	out := e.Apply(progress)
	for i := range outs {
		outs[i] = out
	}
	return outs
}
