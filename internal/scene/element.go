package scene

// ElementKind is the structural type of a visual element.
type ElementKind string

const (
	KindTitle   ElementKind = "title"
	KindSection ElementKind = "section"
	KindShow    ElementKind = "show"
	KindMetric  ElementKind = "metric"
	KindSteps   ElementKind = "steps"
)

// Direction is the indicator attached to metric elements.
type Direction string

const (
	Up      Direction = "up"
	Down    Direction = "down"
	Neutral Direction = "neutral"
)

// Element is one visual element minted during authoring.
//
// CreatedIndex is the creation anchor: the ledger length at the moment
// the element was minted. EndIndex, when set, is the anchor at which the
// element was ended. Anchors never change; CreatedAt and EndedAt are the
// effective timestamps derived from them and are recomputed whenever
// segment durations are resolved.
type Element struct {
	ID        uint64
	Kind      ElementKind
	Direction Direction
	Content   string
	Items     []string

	CreatedIndex int
	EndIndex     *int

	CreatedAt float64
	EndedAt   float64
}

// VisibleAt reports whether the element is on screen at the given time.
func (e *Element) VisibleAt(t float64) bool {
	if e.CreatedAt > t {
		return false
	}
	return e.EndIndex == nil || e.EndedAt > t
}
