// Package scene holds the authoring session: the element registry,
// animation bindings, and the retroactive duration resolver.
//
// A session passes through two phases. During authoring it is mutated
// single-threaded by scene code; Freeze marks the end of authoring,
// after which the session is queried arbitrarily often with no further
// mutation. Authoring calls after Freeze panic.
package scene

import (
	"fmt"
	"strings"

	"github.com/ivlev/scene2video/internal/technique"
	"github.com/ivlev/scene2video/internal/theme"
	"github.com/ivlev/scene2video/internal/timeline"
)

// Pacing constants for the rhythm helpers, in seconds.
const (
	beatDuration   = 0.5
	breathDuration = 1.0
)

// Narration duration is estimated at authoring time and replaced by the
// measured duration during resolution.
const (
	secondsPerWord       = 0.4
	minNarrationEstimate = 0.8
)

// Builder is implemented by scene definitions.
type Builder interface {
	Build(m *Session)
}

// Session is the authoring facade and the queryable scene state.
type Session struct {
	tl       *timeline.Timeline
	elements []*Element
	bindings []*Binding
	theme    *theme.Theme
	voice    string
	nextID   uint64
	frozen   bool
}

// NewSession creates an empty session at the given frame rate.
func NewSession(fps int) *Session {
	return &Session{
		tl:    timeline.New(fps),
		theme: theme.Default(),
	}
}

// Timeline returns the segment ledger.
func (s *Session) Timeline() *timeline.Timeline { return s.tl }

// Elements returns every minted element in creation order, ended ones
// included.
func (s *Session) Elements() []*Element { return s.elements }

// Bindings returns every animation binding in authoring order.
func (s *Session) Bindings() []*Binding { return s.bindings }

// Theme returns the active theme.
func (s *Session) Theme() *theme.Theme { return s.theme }

// Voice returns the configured TTS voice name.
func (s *Session) Voice() string { return s.voice }

// Frozen reports whether authoring has ended.
func (s *Session) Frozen() bool { return s.frozen }

// Freeze ends the authoring phase. Further authoring calls panic.
func (s *Session) Freeze() { s.frozen = true }

func (s *Session) assertAuthoring() {
	if s.frozen {
		panic("scene: authoring call on a frozen session")
	}
}

// -- Content ---------------------------------------------------------------

// Narrate appends a narration segment with an estimated duration.
func (s *Session) Narrate(text string) {
	s.assertAuthoring()
	s.tl.Append(&timeline.Narration{Text: text, Duration: EstimateNarration(text)})
}

// EstimateNarration returns the authoring-time duration estimate for a
// narration text.
func EstimateNarration(text string) float64 {
	words := len(strings.Fields(text))
	est := float64(words) * secondsPerWord
	if est < minNarrationEstimate {
		est = minNarrationEstimate
	}
	return est
}

// Wait appends a voiceless pause of the given length.
func (s *Session) Wait(d float64) {
	s.assertAuthoring()
	s.tl.Append(&timeline.Pause{Duration: d})
}

// Beat inserts a short rhythmic pause.
func (s *Session) Beat() { s.Wait(beatDuration) }

// Breath inserts a slightly longer breathing pause.
func (s *Session) Breath() { s.Wait(breathDuration) }

// PlayClip appends a reference to an external pre-rendered clip.
func (s *Session) PlayClip(ref string, d float64) {
	s.assertAuthoring()
	s.tl.Append(&timeline.Clip{Ref: ref, Duration: d})
}

// -- Elements --------------------------------------------------------------

// Title displays a title card.
func (s *Session) Title(text string) uint64 {
	return s.mint(KindTitle, text, nil, "")
}

// Section begins a named section heading.
func (s *Session) Section(text string) uint64 {
	return s.mint(KindSection, text, nil, "")
}

// Show displays arbitrary text.
func (s *Session) Show(text string) uint64 {
	return s.mint(KindShow, text, nil, "")
}

// Metric displays a labeled value with a directional indicator.
func (s *Session) Metric(label, value string, dir Direction) uint64 {
	return s.mint(KindMetric, fmt.Sprintf("%s: %s", label, value), nil, dir)
}

// Steps displays a list of items revealed with staggered timing.
func (s *Session) Steps(items []string) uint64 {
	copied := make([]string, len(items))
	copy(copied, items)
	return s.mint(KindSteps, "", copied, "")
}

func (s *Session) mint(kind ElementKind, content string, items []string, dir Direction) uint64 {
	s.assertAuthoring()
	id := s.nextID
	s.nextID++
	anchor := s.tl.Len()
	s.elements = append(s.elements, &Element{
		ID:           id,
		Kind:         kind,
		Direction:    dir,
		Content:      content,
		Items:        items,
		CreatedIndex: anchor,
		CreatedAt:    s.tl.CumulativeStart(anchor),
	})
	return id
}

// Clear ends every still-open element at the current ledger position.
// Ended elements persist in the registry for later querying.
func (s *Session) Clear() {
	s.assertAuthoring()
	anchor := s.tl.Len()
	at := s.tl.CumulativeStart(anchor)
	for _, e := range s.elements {
		if e.EndIndex == nil {
			idx := anchor
			e.EndIndex = &idx
			e.EndedAt = at
		}
	}
}

// -- Techniques ------------------------------------------------------------

// Play binds a technique to the most recently minted element. This is
// authoring sugar over PlayOn; the core binding always carries explicit
// target ids.
func (s *Session) Play(t technique.Technique) {
	s.assertAuthoring()
	if len(s.elements) == 0 {
		s.PlayOn(t)
		return
	}
	s.PlayOn(t, s.elements[len(s.elements)-1].ID)
}

// PlayOn appends an animation segment sized to the technique and binds
// the technique to the given target elements. A stagger bound to a
// steps element plays over the full group window.
func (s *Session) PlayOn(t technique.Technique, targets ...uint64) {
	s.assertAuthoring()
	dur := t.BaseDuration()
	if st, ok := groupRoot(t); ok {
		if count := s.maxItemCount(targets); count > 1 {
			dur = st.GroupDuration(count)
		}
	}
	index := s.tl.Len()
	s.tl.Append(&timeline.Animation{Name: t.Name(), Duration: dur})
	s.bindings = append(s.bindings, &Binding{
		Technique:    t,
		Targets:      targets,
		SegmentIndex: index,
	})
}

// groupRoot unwraps easing wrappers to find a stagger at the root.
func groupRoot(t technique.Technique) (*technique.Stagger, bool) {
	for {
		switch v := t.(type) {
		case *technique.Stagger:
			return v, true
		case *technique.Eased:
			t = v.Inner
		default:
			return nil, false
		}
	}
}

func (s *Session) maxItemCount(targets []uint64) int {
	count := 0
	for _, e := range s.elements {
		for _, id := range targets {
			if e.ID == id && len(e.Items) > count {
				count = len(e.Items)
			}
		}
	}
	return count
}

// -- Configuration ---------------------------------------------------------

// SetTheme replaces the active theme.
func (s *Session) SetTheme(t *theme.Theme) {
	s.assertAuthoring()
	s.theme = t
}

// SetVoice sets the TTS voice name used by the narration stage.
func (s *Session) SetVoice(v string) {
	s.assertAuthoring()
	s.voice = v
}
