// Package video assembles rendered frames and narration audio into the
// final movie with ffmpeg.
package video

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"

	"github.com/ivlev/scene2video/internal/voice"
)

// Encoder produces video files from rendered frames and audio.
type Encoder interface {
	EncodeFrames(ctx context.Context, framesDir string, fps int, outPath string) error
	MuxNarration(ctx context.Context, videoPath string, audio *voice.NarrationAudio, starts []float64, total float64, outPath string) error
	ConcatClips(ctx context.Context, clipPaths []string, tmpDir string, outPath string) error
}

// FFmpegEncoder shells out to ffmpeg.
type FFmpegEncoder struct {
	// EncoderName is the h264 encoder, e.g. libx264 or h264_videotoolbox.
	EncoderName string

	// Quality is the crf value for libx264, cq for nvenc, and bitrate
	// basis for videotoolbox.
	Quality int
}

// EncodeFrames encodes a frame_%06d.png sequence into an h264 video.
func (e *FFmpegEncoder) EncodeFrames(ctx context.Context, framesDir string, fps int, outPath string) error {
	args := e.buildEncodeArgs(framesDir, fps, outPath)
	cmd := exec.CommandContext(ctx, "ffmpeg", args...)
	if out, err := cmd.CombinedOutput(); err != nil {
		return fmt.Errorf("ffmpeg encode: %v, output: %s", err, string(out))
	}
	return nil
}

func (e *FFmpegEncoder) buildEncodeArgs(framesDir string, fps int, outPath string) []string {
	args := []string{
		"-y",
		"-framerate", fmt.Sprintf("%d", fps),
		"-i", filepath.Join(framesDir, "frame_%06d.png"),
		"-c:v", e.EncoderName,
		"-pix_fmt", "yuv420p",
	}
	args = append(args, e.qualityArgs()...)
	args = append(args, outPath)
	return args
}

func (e *FFmpegEncoder) qualityArgs() []string {
	switch e.EncoderName {
	case "h264_videotoolbox":
		// VideoToolbox ignores -q:v on some versions, bitrate is reliable.
		return []string{"-b:v", fmt.Sprintf("%dk", e.Quality*100)}
	case "h264_nvenc":
		return []string{"-cq", fmt.Sprintf("%d", e.Quality)}
	default:
		return []string{"-crf", fmt.Sprintf("%d", e.Quality), "-preset", "medium"}
	}
}

// MuxNarration lays the narration files onto the video at their ledger
// start times. Gaps between narrations stay silent. With no narration
// the video is passed through untouched.
func (e *FFmpegEncoder) MuxNarration(ctx context.Context, videoPath string, audio *voice.NarrationAudio, starts []float64, total float64, outPath string) error {
	if audio == nil || len(audio.Paths) == 0 {
		cmd := exec.CommandContext(ctx, "ffmpeg", "-y", "-i", videoPath, "-c", "copy", outPath)
		if out, err := cmd.CombinedOutput(); err != nil {
			return fmt.Errorf("ffmpeg copy: %v, output: %s", err, string(out))
		}
		return nil
	}
	if len(starts) != len(audio.Paths) {
		return fmt.Errorf("mux: %d start times for %d audio files", len(starts), len(audio.Paths))
	}

	args := buildMuxArgs(videoPath, audio.Paths, starts, total, outPath)
	cmd := exec.CommandContext(ctx, "ffmpeg", args...)
	if out, err := cmd.CombinedOutput(); err != nil {
		return fmt.Errorf("ffmpeg mux: %v, output: %s", err, string(out))
	}
	return nil
}

func buildMuxArgs(videoPath string, wavPaths []string, starts []float64, total float64, outPath string) []string {
	args := []string{"-y", "-i", videoPath}
	for _, p := range wavPaths {
		args = append(args, "-i", p)
	}

	filterGraph := ""
	labels := ""
	for i := range wavPaths {
		delay := int(starts[i] * 1000)
		filterGraph += fmt.Sprintf("[%d:a]adelay=%d:all=1[a%d];", i+1, delay, i)
		labels += fmt.Sprintf("[a%d]", i)
	}
	filterGraph += fmt.Sprintf("%samix=inputs=%d:normalize=0[aout]", labels, len(wavPaths))

	args = append(args,
		"-filter_complex", filterGraph,
		"-map", "0:v",
		"-map", "[aout]",
		"-c:v", "copy",
		"-c:a", "aac",
		"-t", fmt.Sprintf("%f", total),
		outPath,
	)
	return args
}

// ConcatClips joins finished clips in order without re-encoding.
func (e *FFmpegEncoder) ConcatClips(ctx context.Context, clipPaths []string, tmpDir string, outPath string) error {
	listPath := filepath.Join(tmpDir, "inputs.txt")
	f, err := os.Create(listPath)
	if err != nil {
		return err
	}
	for _, p := range clipPaths {
		absPath, _ := filepath.Abs(p)
		fmt.Fprintf(f, "file '%s'\n", absPath)
	}
	f.Close()

	cmd := exec.CommandContext(ctx, "ffmpeg", "-y",
		"-f", "concat", "-safe", "0", "-i", listPath,
		"-c", "copy", outPath,
	)
	if out, err := cmd.CombinedOutput(); err != nil {
		return fmt.Errorf("ffmpeg concat: %v, output: %s", err, string(out))
	}
	return nil
}
