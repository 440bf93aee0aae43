package frame

import (
	"github.com/ivlev/scene2video/internal/scene"
	"github.com/ivlev/scene2video/internal/technique"
	"github.com/ivlev/scene2video/internal/timeline"
)

// Compile computes the complete visual snapshot at the given time.
//
// The query time is clamped to [0, total duration]. The function is
// referentially transparent: the same session state and time always
// produce an identical snapshot.
func Compile(s *scene.Session, at float64) FrameState {
	tl := s.Timeline()
	total := tl.TotalDuration()

	t := at
	if t < 0 {
		t = 0
	}
	if t > total {
		t = total
	}

	elements := s.Elements()
	states := make([]ElementState, 0, len(elements))
	visible := make([]*scene.Element, 0, len(elements))

	for _, e := range elements {
		es := ElementState{
			ID:        e.ID,
			Kind:      string(e.Kind),
			Direction: string(e.Direction),
			Content:   e.Content,
			Items:     e.Items,
		}

		if !e.VisibleAt(t) {
			out := technique.Hidden()
			applyOutput(&es, out)
			states = append(states, es)
			continue
		}

		es.Visible = true
		visible = append(visible, e)
		applyOutput(&es, technique.Neutral())

		if b := activeBinding(s, e.ID); b != nil {
			progress := b.ProgressAt(tl, t)
			if group, ok := b.Technique.(technique.GroupTechnique); ok && e.Kind == scene.KindSteps {
				// Per-item outputs; the element-level output stays
				// neutral so the two never conflict.
				outs := group.ApplyForGroup(len(e.Items), progress)
				es.ItemStates = make([]ItemState, len(outs))
				for i, out := range outs {
					es.ItemStates[i] = ItemState{
						Index:      i,
						Opacity:    out.Opacity,
						TranslateX: out.TranslateX,
						TranslateY: out.TranslateY,
						Scale:      out.Scale,
						Rotation:   out.Rotation,
					}
				}
			} else {
				applyOutput(&es, b.Technique.Apply(progress))
			}
		}

		states = append(states, es)
	}

	positions := AssignPositions(visible)
	for i := range states {
		if pos, ok := positions[states[i].ID]; ok {
			states[i].Position = pos
		}
	}

	th := s.Theme()
	return FrameState{
		Time:            t,
		Frame:           tl.FrameAt(t),
		TotalDuration:   total,
		FPS:             tl.FPS(),
		Elements:        states,
		ActiveNarration: activeNarration(tl, t),
		Theme: ThemeState{
			Name:       th.Name,
			Properties: th.Properties(),
		},
	}
}

func applyOutput(es *ElementState, out technique.Output) {
	es.Opacity = out.Opacity
	es.TranslateX = out.TranslateX
	es.TranslateY = out.TranslateY
	es.Scale = out.Scale
	es.Rotation = out.Rotation
}

// activeBinding returns the binding governing an element at query time.
// When several bindings target the same element the last one in
// authoring order wins, which is also the one owning the highest ledger
// index.
func activeBinding(s *scene.Session, id uint64) *scene.Binding {
	var winner *scene.Binding
	for _, b := range s.Bindings() {
		if b.TargetsElement(id) {
			winner = b
		}
	}
	return winner
}

// activeNarration returns the text of the narration segment containing
// the query time, using a half-frame epsilon for the point query.
func activeNarration(tl *timeline.Timeline, t float64) *string {
	epsilon := 1.0 / float64(tl.FPS()) / 2.0
	for _, hit := range tl.SegmentsOverlapping(t, t+epsilon) {
		if n, ok := hit.Segment.(*timeline.Narration); ok {
			text := n.Text
			return &text
		}
	}
	return nil
}
