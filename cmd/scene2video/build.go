package cmd

import (
	"context"
	"log/slog"

	"github.com/ivlev/scene2video/internal/config"
	"github.com/ivlev/scene2video/internal/engine"
	"github.com/ivlev/scene2video/internal/renderer"
	"github.com/ivlev/scene2video/internal/system"
	"github.com/ivlev/scene2video/internal/video"
	"github.com/ivlev/scene2video/internal/voice"
)

// runBuild renders the built-in demo scene with the given
// configuration. Applications with their own scenes embed
// engine.Project directly.
func runBuild(ctx context.Context, cfg *config.Config) error {
	system.InitResourceLimits()

	execCmd := voice.DefaultExecCmdCtx()

	project := &engine.Project{
		Config:  cfg,
		Builder: engine.DemoScene{},
		Narrator: &voice.Narrator{
			Backend: cfg.Voice.Backend(execCmd),
		},
		Renderer: &renderer.Renderer{
			NewPainter: func(ctx context.Context) (renderer.Painter, error) {
				return renderer.NewBridge(ctx, cfg.Bridge.Command, cfg.Bridge.Args...)
			},
			Workers: cfg.Workers,
			Width:   cfg.Width,
			Height:  cfg.Height,
		},
		Encoder: &video.FFmpegEncoder{
			EncoderName: system.BestH264Encoder(),
			Quality:     cfg.Quality,
		},
		Progress:  progressLogger(),
		ShowStats: true,
	}

	return project.Run(ctx)
}

// progressLogger prints stage transitions and render progress every
// tenth of the total.
func progressLogger() func(engine.Event) {
	lastStage := engine.Stage("")
	nextMark := 0
	return func(e engine.Event) {
		if e.Stage != lastStage {
			lastStage = e.Stage
			nextMark = 0
			if e.Stage != engine.StageRendering {
				slog.Info(string(e.Stage))
				return
			}
		}
		if e.Stage == engine.StageRendering && e.Total > 0 && e.Done*10/e.Total >= nextMark {
			slog.Info("rendering", "frames", e.Done, "of", e.Total)
			nextMark = e.Done*10/e.Total + 1
		}
	}
}
