package config

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ivlev/scene2video/internal/voice"
)

func TestParseMinimal(t *testing.T) {
	c, err := Parse(strings.NewReader(`
bridge:
  command: scene-painter
`))
	require.NoError(t, err)

	assert.Equal(t, "out.mp4", c.Output)
	assert.Equal(t, 1920, c.Width)
	assert.Equal(t, 1080, c.Height)
	assert.Equal(t, 30, c.FPS)
	assert.Equal(t, 23, c.Quality)
	assert.Equal(t, "scene-painter", c.Bridge.Command)
}

func TestParseFull(t *testing.T) {
	c, err := Parse(strings.NewReader(`
output: demo.mp4
width: 1280
height: 720
fps: 60
theme: themes/light.yaml
voice:
  say_voice: Samantha
bridge:
  command: painter
  args: ["--stdio"]
workers: 8
keep_frames: true
quality: 18
`))
	require.NoError(t, err)

	assert.Equal(t, "demo.mp4", c.Output)
	assert.Equal(t, 60, c.FPS)
	assert.Equal(t, "themes/light.yaml", c.Theme)
	assert.Equal(t, "Samantha", c.Voice.SayVoice)
	assert.Equal(t, []string{"--stdio"}, c.Bridge.Args)
	assert.Equal(t, 8, c.Workers)
	assert.True(t, c.KeepFrames)
	assert.Equal(t, 18, c.Quality)
}

func TestParseRequiresBridge(t *testing.T) {
	_, err := Parse(strings.NewReader(`output: x.mp4`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "bridge")
}

func TestParseRejectsUnknownKeys(t *testing.T) {
	_, err := Parse(strings.NewReader(`
bridge:
  command: painter
transition: wipe
`))
	require.Error(t, err)
}

func TestParseRejectsInvalidFPS(t *testing.T) {
	_, err := Parse(strings.NewReader(`
fps: -1
bridge:
  command: painter
`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "fps")
}

func TestParseRejectsConflictingVoices(t *testing.T) {
	_, err := Parse(strings.NewReader(`
voice:
  say_voice: Samantha
  espeak_ng_voice: en
bridge:
  command: painter
`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "mutually exclusive")
}

func TestVoiceBackendSelection(t *testing.T) {
	exec := voice.DefaultExecCmdCtx()

	var v *Voice
	assert.IsType(t, &voice.ESpeakNG{}, v.Backend(exec))

	assert.IsType(t, &voice.Say{}, (&Voice{SayVoice: "Samantha"}).Backend(exec))
	assert.IsType(t, &voice.CustomCmd{}, (&Voice{Command: "piper"}).Backend(exec))

	backend := (&Voice{ESpeakNGVoice: "de"}).Backend(exec)
	espeak, ok := backend.(*voice.ESpeakNG)
	require.True(t, ok)
	assert.Equal(t, "de", espeak.Voice)
}

func TestExampleParses(t *testing.T) {
	c, err := Parse(strings.NewReader(Example()))
	require.NoError(t, err)
	assert.Equal(t, "scene-painter", c.Bridge.Command)
	assert.Equal(t, "en", c.Voice.ESpeakNGVoice)
}
