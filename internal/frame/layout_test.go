package frame

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ivlev/scene2video/internal/scene"
)

func el(id uint64, kind scene.ElementKind) *scene.Element {
	return &scene.Element{ID: id, Kind: kind}
}

func TestAssignPositionsEmpty(t *testing.T) {
	assert.Empty(t, AssignPositions(nil))
}

func TestAssignPositionsSolo(t *testing.T) {
	positions := AssignPositions([]*scene.Element{el(1, scene.KindShow)})
	assert.Equal(t, 0.5, positions[1])
}

func TestAssignPositionsPair(t *testing.T) {
	// Body created first, header second: header still sorts first.
	positions := AssignPositions([]*scene.Element{
		el(1, scene.KindShow),
		el(2, scene.KindTitle),
	})
	assert.Equal(t, 0.3, positions[2])
	assert.Equal(t, 0.65, positions[1])
}

func TestAssignPositionsPairBodiesOnly(t *testing.T) {
	positions := AssignPositions([]*scene.Element{
		el(1, scene.KindShow),
		el(2, scene.KindMetric),
	})
	assert.Equal(t, 0.3, positions[1])
	assert.Equal(t, 0.65, positions[2])
}

func TestAssignPositionsSpread(t *testing.T) {
	positions := AssignPositions([]*scene.Element{
		el(1, scene.KindSection),
		el(2, scene.KindShow),
		el(3, scene.KindSteps),
		el(4, scene.KindMetric),
	})
	require.Len(t, positions, 4)
	assert.InDelta(t, 0.2, positions[1], 1e-9)
	assert.InDelta(t, 0.4, positions[2], 1e-9)
	assert.InDelta(t, 0.6, positions[3], 1e-9)
	assert.InDelta(t, 0.8, positions[4], 1e-9)
}

func TestAssignPositionsThreeEvenlySpaced(t *testing.T) {
	positions := AssignPositions([]*scene.Element{
		el(1, scene.KindShow),
		el(2, scene.KindShow),
		el(3, scene.KindShow),
	})
	assert.InDelta(t, 0.2, positions[1], 1e-9)
	assert.InDelta(t, 0.5, positions[2], 1e-9)
	assert.InDelta(t, 0.8, positions[3], 1e-9)
}

func TestHeadersPreserveCreationOrder(t *testing.T) {
	positions := AssignPositions([]*scene.Element{
		el(1, scene.KindTitle),
		el(2, scene.KindSection),
		el(3, scene.KindShow),
	})
	// Title before section, both before the body.
	assert.InDelta(t, 0.2, positions[1], 1e-9)
	assert.InDelta(t, 0.5, positions[2], 1e-9)
	assert.InDelta(t, 0.8, positions[3], 1e-9)
}
