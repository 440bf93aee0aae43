package engine

import (
	"github.com/ivlev/scene2video/internal/scene"
	"github.com/ivlev/scene2video/internal/technique"
)

// DemoScene is a small built-in scene exercising the core authoring
// API. It is what `scene2video build --demo` renders.
type DemoScene struct{}

func (DemoScene) Build(m *scene.Session) {
	m.Title("Hello, World!")
	m.Narrate("Welcome to scene2video, a motion graphics engine.")
	m.Play(technique.NewFade())

	m.Beat()

	m.Clear()
	m.Section("What is scene2video?")
	m.Narrate("It turns simple scene scripts into finished explainer videos.")
	m.Steps([]string{
		"Describe a scene in Go",
		"Run the build command",
		"Get a finished MP4",
	})
	m.Play(technique.NewStagger(technique.WithEase(technique.NewFadeUp(), technique.OutBack)))

	m.Breath()

	m.Clear()
	m.Narrate("And it does this with surprisingly little code.")
	m.Metric("Lines of Code", "< 15K", scene.Down)
	m.Play(technique.NewCountUp())

	m.Beat()

	m.Clear()
	m.Narrate("All running offline, on your local machine.")
	m.Show("Offline. Fast. Professional.")
	m.Play(technique.NewFade())
}
