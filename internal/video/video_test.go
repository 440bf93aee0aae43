package video

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildEncodeArgsLibx264(t *testing.T) {
	e := &FFmpegEncoder{EncoderName: "libx264", Quality: 23}
	args := e.buildEncodeArgs("/tmp/frames", 30, "/tmp/out.mp4")
	joined := strings.Join(args, " ")

	assert.Contains(t, joined, "-framerate 30")
	assert.Contains(t, joined, "frame_%06d.png")
	assert.Contains(t, joined, "-c:v libx264")
	assert.Contains(t, joined, "-crf 23")
	assert.Contains(t, joined, "-preset medium")
	assert.Equal(t, "/tmp/out.mp4", args[len(args)-1])
}

func TestBuildEncodeArgsVideotoolboxUsesBitrate(t *testing.T) {
	e := &FFmpegEncoder{EncoderName: "h264_videotoolbox", Quality: 75}
	joined := strings.Join(e.buildEncodeArgs("/tmp/frames", 60, "/tmp/out.mp4"), " ")

	assert.Contains(t, joined, "-b:v 7500k")
	assert.NotContains(t, joined, "-crf")
}

func TestBuildEncodeArgsNvencUsesCQ(t *testing.T) {
	e := &FFmpegEncoder{EncoderName: "h264_nvenc", Quality: 23}
	joined := strings.Join(e.buildEncodeArgs("/tmp/frames", 30, "/tmp/out.mp4"), " ")

	assert.Contains(t, joined, "-cq 23")
	assert.NotContains(t, joined, "-preset")
}

func TestBuildMuxArgsDelaysEachNarration(t *testing.T) {
	args := buildMuxArgs("/tmp/video.mp4",
		[]string{"/tmp/n0.wav", "/tmp/n1.wav"},
		[]float64{0, 2.5},
		6.0,
		"/tmp/final.mp4")

	var filter string
	for i, a := range args {
		if a == "-filter_complex" {
			filter = args[i+1]
		}
	}
	require.NotEmpty(t, filter)

	assert.Contains(t, filter, "[1:a]adelay=0:all=1[a0]")
	assert.Contains(t, filter, "[2:a]adelay=2500:all=1[a1]")
	assert.Contains(t, filter, "amix=inputs=2:normalize=0[aout]")

	joined := strings.Join(args, " ")
	assert.Contains(t, joined, "-map 0:v")
	assert.Contains(t, joined, "-map [aout]")
	assert.Contains(t, joined, "-c:v copy")
	assert.Contains(t, joined, "-t 6.000000")
}

func TestBuildMuxArgsInputOrder(t *testing.T) {
	args := buildMuxArgs("/tmp/v.mp4", []string{"/tmp/a.wav"}, []float64{1.0}, 3.0, "/tmp/o.mp4")

	require.GreaterOrEqual(t, len(args), 5)
	assert.Equal(t, "-y", args[0])
	assert.Equal(t, "/tmp/v.mp4", args[2])
	assert.Equal(t, "/tmp/a.wav", args[4])
}
