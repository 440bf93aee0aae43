// Package config parses the yaml project configuration for a render
// run.
package config

import (
	"fmt"
	"io"
	"log/slog"

	"gopkg.in/yaml.v3"
)

// Voice selects and parameterizes the narration backend. Exactly one
// of SayVoice, ESpeakNGVoice or Command is set; with none set,
// espeak-ng with its default voice is used.
type Voice struct {
	SayVoice      string   `yaml:"say_voice"`
	ESpeakNGVoice string   `yaml:"espeak_ng_voice"`
	Command       string   `yaml:"command"`
	Args          []string `yaml:"args"`
}

// Bridge configures the external painter process.
type Bridge struct {
	Command string   `yaml:"command"`
	Args    []string `yaml:"args"`
}

// Config is a full render run description.
type Config struct {
	LogLevel slog.Level `yaml:"log_level"`

	Output string `yaml:"output"`
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	FPS    int    `yaml:"fps"`

	// Theme is a path to a theme yaml file. Empty means the built-in
	// default theme.
	Theme string `yaml:"theme"`

	Voice  *Voice  `yaml:"voice"`
	Bridge *Bridge `yaml:"bridge"`

	// Workers overrides the render pool size. Zero means autodetect.
	Workers int `yaml:"workers"`

	// KeepFrames leaves the numbered PNG sequence on disk after
	// encoding.
	KeepFrames bool `yaml:"keep_frames"`

	// Quality is the encoder quality knob: crf for libx264, cq for
	// nvenc, bitrate basis for videotoolbox.
	Quality int `yaml:"quality"`
}

// Parse reads a Config, rejecting unknown keys, filling defaults and
// validating the result.
func Parse(r io.Reader) (*Config, error) {
	decoder := yaml.NewDecoder(r)
	decoder.KnownFields(true)

	c := Config{
		Output:  "out.mp4",
		Width:   1920,
		Height:  1080,
		FPS:     30,
		Quality: 23,
	}
	if err := decoder.Decode(&c); err != nil {
		return nil, err
	}
	if err := c.validate(); err != nil {
		return nil, err
	}
	return &c, nil
}

func (c *Config) validate() error {
	if c.Bridge == nil {
		return keyEmptyError("bridge")
	}
	if c.Bridge.Command == "" {
		return keyEmptyError("bridge.command")
	}
	if c.FPS <= 0 {
		return fmt.Errorf("fps must be positive, got %d", c.FPS)
	}
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("dimensions must be positive, got %dx%d", c.Width, c.Height)
	}
	if v := c.Voice; v != nil {
		set := 0
		for _, s := range []string{v.SayVoice, v.ESpeakNGVoice, v.Command} {
			if s != "" {
				set++
			}
		}
		if set > 1 {
			return fmt.Errorf("voice: say_voice, espeak_ng_voice and command are mutually exclusive")
		}
	}
	return nil
}

func keyEmptyError(key string) error {
	return fmt.Errorf("key '%s' is missing or value is empty", key)
}
