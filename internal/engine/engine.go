// Package engine orchestrates a full build: author the scene,
// synthesize and measure narration, resolve the ledger, render frames,
// encode and mux the final video.
package engine

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/fatih/color"

	"github.com/ivlev/scene2video/internal/config"
	"github.com/ivlev/scene2video/internal/renderer"
	"github.com/ivlev/scene2video/internal/scene"
	"github.com/ivlev/scene2video/internal/theme"
	"github.com/ivlev/scene2video/internal/timeline"
	"github.com/ivlev/scene2video/internal/video"
	"github.com/ivlev/scene2video/internal/voice"
)

// Stage identifies a pipeline phase for progress reporting.
type Stage string

const (
	StageSceneBuilt Stage = "scene built"
	StageNarrated   Stage = "narration measured"
	StageRendering  Stage = "rendering"
	StageEncoding   Stage = "encoding"
	StageMuxing     Stage = "muxing audio"
	StageAppending  Stage = "appending clips"
	StageComplete   Stage = "complete"
)

// Event is one progress notification. Done and Total are set for the
// rendering stage only.
type Event struct {
	Stage Stage
	Done  int
	Total int
}

// Project wires the pipeline pieces for one build run.
type Project struct {
	Config   *config.Config
	Builder  scene.Builder
	Narrator *voice.Narrator
	Renderer *renderer.Renderer
	Encoder  video.Encoder

	// Progress receives stage events when non-nil.
	Progress func(Event)

	// ShowStats prints a colored timing report after a successful run.
	ShowStats bool
}

type stageTimes struct {
	narrate time.Duration
	render  time.Duration
	encode  time.Duration
	mux     time.Duration
}

// Run executes the pipeline and writes Config.Output.
func (p *Project) Run(ctx context.Context) error {
	start := time.Now()
	var times stageTimes

	tempDir, err := os.MkdirTemp("", "scene2video_")
	if err != nil {
		return err
	}
	defer os.RemoveAll(tempDir)

	s, err := p.buildScene()
	if err != nil {
		return err
	}
	p.notify(Event{Stage: StageSceneBuilt})

	narrateStart := time.Now()
	audio, err := p.narrate(ctx, s, tempDir)
	if err != nil {
		return err
	}
	times.narrate = time.Since(narrateStart)
	p.notify(Event{Stage: StageNarrated})

	s.Freeze()
	tl := s.Timeline()
	if tl.FrameCount() == 0 {
		return fmt.Errorf("scene is empty, nothing to render")
	}

	framesDir := filepath.Join(tempDir, "frames")
	if p.Config.KeepFrames {
		framesDir = framesOutputDir(p.Config.Output)
	}

	renderStart := time.Now()
	err = p.Renderer.Render(ctx, s, framesDir, func(done, total int) {
		p.notify(Event{Stage: StageRendering, Done: done, Total: total})
	})
	if err != nil {
		return fmt.Errorf("render: %w", err)
	}
	times.render = time.Since(renderStart)

	p.notify(Event{Stage: StageEncoding})
	encodeStart := time.Now()
	silentPath := filepath.Join(tempDir, "silent.mp4")
	if err := p.Encoder.EncodeFrames(ctx, framesDir, tl.FPS(), silentPath); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	times.encode = time.Since(encodeStart)

	p.notify(Event{Stage: StageMuxing})
	muxStart := time.Now()
	muxedPath := filepath.Join(tempDir, "muxed.mp4")
	starts := narrationStarts(tl, audio)
	if err := p.Encoder.MuxNarration(ctx, silentPath, audio, starts, tl.TotalDuration(), muxedPath); err != nil {
		return fmt.Errorf("mux: %w", err)
	}
	times.mux = time.Since(muxStart)

	if clips := clipRefs(tl); len(clips) > 0 {
		p.notify(Event{Stage: StageAppending})
		parts := append([]string{muxedPath}, clips...)
		if err := p.Encoder.ConcatClips(ctx, parts, tempDir, p.Config.Output); err != nil {
			return fmt.Errorf("append clips: %w", err)
		}
	} else {
		if err := os.Rename(muxedPath, p.Config.Output); err != nil {
			if err := copyFile(muxedPath, p.Config.Output); err != nil {
				return fmt.Errorf("write output: %w", err)
			}
		}
	}

	p.notify(Event{Stage: StageComplete})
	if p.ShowStats {
		p.printStats(tl, times, time.Since(start))
	}
	return nil
}

// buildScene authors the session: theme, then the builder's script.
func (p *Project) buildScene() (*scene.Session, error) {
	s := scene.NewSession(p.Config.FPS)

	if p.Config.Theme != "" {
		th, err := theme.Load(p.Config.Theme)
		if err != nil {
			return nil, fmt.Errorf("load theme: %w", err)
		}
		s.SetTheme(th)
	}

	p.Builder.Build(s)
	return s, nil
}

// narrate synthesizes and measures every narration segment, then
// resizes the ledger to the measured durations.
func (p *Project) narrate(ctx context.Context, s *scene.Session, tempDir string) (*voice.NarrationAudio, error) {
	if len(s.Timeline().NarrationIndices()) == 0 {
		return nil, nil
	}

	audioDir := filepath.Join(tempDir, "audio")
	if err := os.MkdirAll(audioDir, 0o755); err != nil {
		return nil, err
	}

	audio, err := p.Narrator.SynthesizeAll(ctx, s, audioDir)
	if err != nil {
		return nil, fmt.Errorf("narrate: %w", err)
	}
	if err := s.Resolve(audio.Indices, audio.Durations); err != nil {
		return nil, fmt.Errorf("resolve durations: %w", err)
	}
	return audio, nil
}

func (p *Project) notify(e Event) {
	if p.Progress != nil {
		p.Progress(e)
	}
}

func (p *Project) printStats(tl *timeline.Timeline, times stageTimes, total time.Duration) {
	header := color.New(color.FgCyan, color.Bold)
	value := color.New(color.FgGreen)

	header.Println("--- build report ---")
	fmt.Printf("frames:    %d @ %d fps\n", tl.FrameCount(), tl.FPS())
	fmt.Printf("duration:  %.2fs\n", tl.TotalDuration())
	fmt.Printf("narration: %s\n", value.Sprintf("%.2fs", times.narrate.Seconds()))
	fmt.Printf("render:    %s\n", value.Sprintf("%.2fs", times.render.Seconds()))
	fmt.Printf("encode:    %s\n", value.Sprintf("%.2fs", times.encode.Seconds()))
	fmt.Printf("mux:       %s\n", value.Sprintf("%.2fs", times.mux.Seconds()))
	fmt.Printf("total:     %s\n", value.Sprintf("%.2fs", total.Seconds()))
	if total.Seconds() > 0 {
		fmt.Printf("speed:     %.2f frames/s\n", float64(tl.FrameCount())/total.Seconds())
	}
}

// narrationStarts maps each synthesized narration to its resolved start
// time on the ledger.
func narrationStarts(tl *timeline.Timeline, audio *voice.NarrationAudio) []float64 {
	if audio == nil {
		return nil
	}
	starts := make([]float64, len(audio.Indices))
	for i, idx := range audio.Indices {
		starts[i] = tl.CumulativeStart(idx)
	}
	return starts
}

// clipRefs returns external clip paths in ledger order.
func clipRefs(tl *timeline.Timeline) []string {
	var refs []string
	for _, seg := range tl.Segments() {
		if c, ok := seg.(*timeline.Clip); ok {
			refs = append(refs, c.Ref)
		}
	}
	return refs
}

func framesOutputDir(outPath string) string {
	base := outPath[:len(outPath)-len(filepath.Ext(outPath))]
	return base + "_frames"
}

func copyFile(src, dst string) error {
	data, err := os.ReadFile(src)
	if err != nil {
		return err
	}
	return os.WriteFile(dst, data, 0o644)
}
