package frame

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ivlev/scene2video/internal/scene"
	"github.com/ivlev/scene2video/internal/technique"
)

func TestEmptySceneFrameState(t *testing.T) {
	s := scene.NewSession(30)
	s.Freeze()

	fs := Compile(s, 0)

	assert.Equal(t, 0.0, fs.Time)
	assert.Equal(t, 0, fs.Frame)
	assert.Equal(t, 0.0, fs.TotalDuration)
	assert.Equal(t, 30, fs.FPS)
	assert.Empty(t, fs.Elements)
	assert.Nil(t, fs.ActiveNarration)
	assert.Equal(t, "scene-dark", fs.Theme.Name)
	assert.NotEmpty(t, fs.Theme.Properties)
}

func TestElementsVisibleAtCreationTime(t *testing.T) {
	s := scene.NewSession(30)
	s.Title("Hello")
	s.Show("World")
	s.Wait(1.0)
	s.Freeze()

	fs := Compile(s, 0)

	require.Len(t, fs.Elements, 2)
	for _, es := range fs.Elements {
		assert.True(t, es.Visible)
		assert.Equal(t, 1.0, es.Opacity)
		assert.Equal(t, 1.0, es.Scale)
	}
	assert.Equal(t, "Hello", fs.Elements[0].Content)
	assert.Equal(t, "World", fs.Elements[1].Content)
}

func TestHiddenElementsSuppressed(t *testing.T) {
	s := scene.NewSession(30)
	s.Narrate("one two three four five") // 2.0s
	s.Title("Later")
	s.Freeze()

	fs := Compile(s, 0)
	require.Len(t, fs.Elements, 1)
	assert.False(t, fs.Elements[0].Visible)
	assert.Equal(t, 0.0, fs.Elements[0].Opacity)
	assert.Equal(t, 0.0, fs.Elements[0].Scale)

	fs = Compile(s, 2.0)
	assert.True(t, fs.Elements[0].Visible)
	assert.Equal(t, 1.0, fs.Elements[0].Opacity)
}

func TestTimeClamping(t *testing.T) {
	s := scene.NewSession(30)
	s.Wait(1.0)
	s.Freeze()

	fs := Compile(s, -5.0)
	assert.Equal(t, 0.0, fs.Time)

	fs = Compile(s, 100.0)
	assert.InDelta(t, 1.0, fs.Time, 1e-9)
	assert.Equal(t, 29, fs.Frame)
}

func TestBoundTechniqueProgress(t *testing.T) {
	s := scene.NewSession(30)
	s.Wait(1.0)
	s.Title("T")
	s.Play(&technique.Fade{Duration: 2.0}) // window [1.0, 3.0)
	s.Wait(1.0)
	s.Freeze()

	// Before the window: progress 0 -> opacity 0 (visible but not yet faded in).
	fs := Compile(s, 1.0)
	assert.True(t, fs.Elements[0].Visible)
	assert.Equal(t, 0.0, fs.Elements[0].Opacity)

	// Inside: linear progress.
	fs = Compile(s, 2.0)
	assert.InDelta(t, 0.5, fs.Elements[0].Opacity, 1e-9)

	// After: progress 1.
	fs = Compile(s, 3.5)
	assert.Equal(t, 1.0, fs.Elements[0].Opacity)
}

func TestGroupAnimationWritesItemStates(t *testing.T) {
	s := scene.NewSession(30)
	s.Steps([]string{"one", "two", "three"})
	s.Play(&technique.Stagger{Inner: &technique.Fade{Duration: 1.0}, Delay: 0.5}) // window 2.0s
	s.Freeze()

	fs := Compile(s, 1.0) // halfway through the group window
	require.Len(t, fs.Elements, 1)
	es := fs.Elements[0]

	// Element-level output stays neutral while the group animates.
	assert.Equal(t, 1.0, es.Opacity)
	assert.Equal(t, 1.0, es.Scale)

	require.Len(t, es.ItemStates, 3)
	assert.InDelta(t, 1.0, es.ItemStates[0].Opacity, 1e-9)
	assert.InDelta(t, 0.5, es.ItemStates[1].Opacity, 1e-9)
	assert.InDelta(t, 0.0, es.ItemStates[2].Opacity, 1e-9)
	for i, is := range es.ItemStates {
		assert.Equal(t, i, is.Index)
	}
}

func TestGroupTechniqueOnNonStepsAppliesElementLevel(t *testing.T) {
	s := scene.NewSession(30)
	s.Show("plain")
	s.Play(&technique.Stagger{Inner: &technique.Fade{Duration: 1.0}, Delay: 0.5})
	s.Freeze()

	fs := Compile(s, 0.5)
	es := fs.Elements[0]
	assert.Empty(t, es.ItemStates)
	assert.InDelta(t, 0.5, es.Opacity, 1e-9)
}

func TestOverlappingBindingsLastWins(t *testing.T) {
	s := scene.NewSession(30)
	id := s.Title("T")
	s.PlayOn(&technique.Fade{Duration: 1.0}, id)
	s.PlayOn(&technique.Scale{Duration: 1.0, From: 0, To: 1}, id)
	s.Freeze()

	// Both windows have closed by t=3; the later binding governs.
	fs := Compile(s, 3.0)
	es := fs.Elements[0]
	assert.Equal(t, 1.0, es.Scale)
	assert.Equal(t, 1.0, es.Opacity)

	// During the first window the later binding still governs: its
	// progress is 0 there, so scale holds at its From value.
	fs = Compile(s, 0.5)
	assert.InDelta(t, 0.0, fs.Elements[0].Scale, 1e-9)
}

func TestActiveNarration(t *testing.T) {
	s := scene.NewSession(30)
	s.Narrate("Hello world") // [0, 0.8)
	s.Wait(2.0)              // [0.8, 2.8)
	s.Freeze()

	fs := Compile(s, 0)
	require.NotNil(t, fs.ActiveNarration)
	assert.Equal(t, "Hello world", *fs.ActiveNarration)

	fs = Compile(s, 0.4)
	require.NotNil(t, fs.ActiveNarration)

	fs = Compile(s, 1.5)
	assert.Nil(t, fs.ActiveNarration)
}

func TestLayoutPositionsAttached(t *testing.T) {
	s := scene.NewSession(30)
	s.Title("Head")
	s.Show("Body")
	s.Wait(1.0)
	s.Freeze()

	fs := Compile(s, 0.5)
	assert.Equal(t, 0.3, fs.Elements[0].Position)
	assert.Equal(t, 0.65, fs.Elements[1].Position)
}

func TestLayoutRecomputedPerQuery(t *testing.T) {
	s := scene.NewSession(30)
	s.Title("Head") // visible from 0
	s.Wait(1.0)
	s.Show("Body") // visible from 1.0
	s.Wait(1.0)
	s.Freeze()

	fs := Compile(s, 0.5)
	assert.Equal(t, 0.5, fs.Elements[0].Position)

	fs = Compile(s, 1.5)
	assert.Equal(t, 0.3, fs.Elements[0].Position)
	assert.Equal(t, 0.65, fs.Elements[1].Position)
}

func TestCompileDeterministic(t *testing.T) {
	s := scene.NewSession(30)
	s.Title("Deterministic")
	s.Narrate("some words spoken here")
	s.Steps([]string{"a", "b"})
	s.Play(technique.NewStagger(technique.NewFadeUp()))
	s.Wait(0.5)
	s.Freeze()

	for _, at := range []float64{0, 0.7, 1.3, 2.0, 99} {
		a := Compile(s, at)
		b := Compile(s, at)
		aj, err := json.Marshal(a)
		require.NoError(t, err)
		bj, err := json.Marshal(b)
		require.NoError(t, err)
		assert.Equal(t, string(aj), string(bj), "snapshot at t=%f must be reproducible", at)
	}
}

func TestFrameStateJSONKeys(t *testing.T) {
	s := scene.NewSession(30)
	s.Metric("Revenue", "$1M", scene.Up)
	s.Narrate("numbers go up")
	s.Freeze()

	fs := Compile(s, 0)
	data, err := json.Marshal(fs)
	require.NoError(t, err)

	var value map[string]any
	require.NoError(t, json.Unmarshal(data, &value))

	assert.Contains(t, value, "totalDuration")
	assert.Contains(t, value, "activeNarration")
	assert.Contains(t, value, "fps")

	elements := value["elements"].([]any)
	elem := elements[0].(map[string]any)
	assert.Contains(t, elem, "translateX")
	assert.Contains(t, elem, "translateY")
	assert.Contains(t, elem, "position")
	assert.Equal(t, "metric", elem["kind"])
	assert.Equal(t, "up", elem["direction"])
}

func TestFrameStateJSONRoundTrip(t *testing.T) {
	s := scene.NewSession(30)
	s.Title("Round Trip")
	s.Show("Content")
	s.Freeze()

	fs := Compile(s, 0)
	data, err := json.Marshal(fs)
	require.NoError(t, err)

	var decoded FrameState
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, fs.Time, decoded.Time)
	assert.Equal(t, fs.Theme.Name, decoded.Theme.Name)
	assert.Len(t, decoded.Elements, 2)
}
