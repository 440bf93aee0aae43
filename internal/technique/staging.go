package technique

// Stagger applies an inner technique to each item of a group with a
// per-item start delay. Item i's local window opens Delay*i seconds into
// the group window and runs for the inner technique's duration; items
// before their local start hold the inner technique's initial output,
// items past their local end hold its final output.
type Stagger struct {
	Inner Technique
	Delay float64
}

// NewStagger wraps inner with the default per-item delay.
func NewStagger(inner Technique) *Stagger {
	return &Stagger{Inner: inner, Delay: 0.1}
}

func (s *Stagger) Name() string { return "Stagger" }

// BaseDuration is the single-item duration; use GroupDuration for the
// full group window.
func (s *Stagger) BaseDuration() float64 { return s.Inner.BaseDuration() }

// GroupDuration is the total window needed to play the group: the inner
// duration plus the delay accumulated by the last item.
func (s *Stagger) GroupDuration(count int) float64 {
	if count < 1 {
		count = 1
	}
	return s.Inner.BaseDuration() + s.Delay*float64(count-1)
}

// Apply treats the stagger as a group of one.
func (s *Stagger) Apply(progress float64) Output {
	return s.Inner.Apply(clamp01(progress))
}

// ApplyForGroup maps a group progress value to one output per item.
func (s *Stagger) ApplyForGroup(count int, progress float64) []Output {
	return s.applyForGroup(count, progress, Linear)
}

// applyForGroup computes each item's local progress from the group
// progress, remaps it through ease, and delegates to the inner
// technique. Easing therefore always acts on item-local progress.
func (s *Stagger) applyForGroup(count int, progress float64, ease Ease) []Output {
	if count < 1 {
		return nil
	}
	total := s.GroupDuration(count)
	inner := s.Inner.BaseDuration()
	elapsed := clamp01(progress) * total

	outs := make([]Output, count)
	for i := range outs {
		start := s.Delay * float64(i)
		var local float64
		switch {
		case inner <= 0:
			local = 1
		case elapsed <= start:
			local = 0
		case elapsed >= start+inner:
			local = 1
		default:
			local = (elapsed - start) / inner
		}
		outs[i] = s.Inner.Apply(ease.Remap(local))
	}
	return outs
}
