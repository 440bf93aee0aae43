// Package technique provides the pure progress-to-visual-output
// interpolators that animate scene elements: reveals, motion, data
// techniques, per-item staggering, and easing-curve composition.
//
// A technique never touches the timeline. Callers map wall time to a
// normalized progress value and the technique maps progress to output.
package technique

// Output is the visual tuple a technique produces for a single element
// (or a single item of a group) at a given progress.
type Output struct {
	Opacity    float64
	TranslateX float64
	TranslateY float64
	Scale      float64
	Rotation   float64
}

// Neutral is the output of an element at rest: fully opaque, identity
// transform.
func Neutral() Output {
	return Output{Opacity: 1, Scale: 1}
}

// Hidden is the output of a suppressed element: zero opacity, zero scale.
func Hidden() Output {
	return Output{}
}

// Technique is a pure interpolation from progress in [0,1] to an Output.
type Technique interface {
	// Name is the human-readable technique name, recorded on the
	// animation segment that plays it.
	Name() string

	// BaseDuration is the technique's duration in seconds for a single
	// element.
	BaseDuration() float64

	// Apply maps a progress value to a visual output. Implementations
	// clamp progress to [0,1].
	Apply(progress float64) Output
}

// GroupTechnique is implemented by techniques that animate the items of
// a group individually, one output per item.
type GroupTechnique interface {
	Technique

	// ApplyForGroup maps a single group progress value to one output per
	// item.
	ApplyForGroup(count int, progress float64) []Output
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

func lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}
