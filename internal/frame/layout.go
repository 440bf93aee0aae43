package frame

import "github.com/ivlev/scene2video/internal/scene"

// Layout position fractions: 0 is the top edge, 1 the bottom edge.
const (
	soloPosition  = 0.5
	pairTop       = 0.3
	pairBottom    = 0.65
	spreadTop     = 0.2
	spreadBottom  = 0.8
)

// isHeader classifies an element as header (titles, sections) versus
// body content.
func isHeader(k scene.ElementKind) bool {
	return k == scene.KindTitle || k == scene.KindSection
}

// AssignPositions computes a vertical position fraction for each visible
// element. Headers sort before bodies; creation order is preserved
// within each class. The assignment is a pure function of the visible
// set with no memory of earlier frames.
func AssignPositions(visible []*scene.Element) map[uint64]float64 {
	positions := make(map[uint64]float64, len(visible))
	if len(visible) == 0 {
		return positions
	}

	ordered := make([]*scene.Element, 0, len(visible))
	for _, e := range visible {
		if isHeader(e.Kind) {
			ordered = append(ordered, e)
		}
	}
	for _, e := range visible {
		if !isHeader(e.Kind) {
			ordered = append(ordered, e)
		}
	}

	switch n := len(ordered); n {
	case 1:
		positions[ordered[0].ID] = soloPosition
	case 2:
		positions[ordered[0].ID] = pairTop
		positions[ordered[1].ID] = pairBottom
	default:
		step := (spreadBottom - spreadTop) / float64(n-1)
		for i, e := range ordered {
			positions[e.ID] = spreadTop + step*float64(i)
		}
	}
	return positions
}
