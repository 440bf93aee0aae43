// Package voice synthesizes narration audio and measures the spoken
// durations that retroactively resize the timeline.
package voice

import (
	"context"
	"fmt"
	"os/exec"
	"strings"
)

// ExecCmdCtx abstracts exec.CommandContext so tests can substitute a
// fake process.
type ExecCmdCtx = func(ctx context.Context, name string, args ...string) Cmd

// Cmd is the slice of *exec.Cmd the backends need.
type Cmd interface {
	CombinedOutput() ([]byte, error)
}

// ToExecCmdCtx adapts a concrete command constructor to ExecCmdCtx. Go
// does not convert function return types to interfaces in assignments,
// so exec.CommandContext needs this shim.
func ToExecCmdCtx[c Cmd](fn func(context.Context, string, ...string) c) ExecCmdCtx {
	return func(ctx context.Context, name string, arg ...string) Cmd {
		return fn(ctx, name, arg...)
	}
}

// DefaultExecCmdCtx runs real processes.
func DefaultExecCmdCtx() ExecCmdCtx {
	return ToExecCmdCtx(exec.CommandContext)
}

// Backend turns one narration text into a wav file on disk.
type Backend interface {
	Name() string
	Synthesize(ctx context.Context, text, wavPath string) error
}

func cmdError(name string, args []string, out []byte) error {
	return fmt.Errorf("%s %s: %s", name, strings.Join(args, " "), strings.TrimSpace(string(out)))
}

// ESpeakNG synthesizes with the espeak-ng CLI.
type ESpeakNG struct {
	Voice   string
	ExecCmd ExecCmdCtx
}

func (e *ESpeakNG) Name() string { return "espeak-ng" }

func (e *ESpeakNG) Synthesize(ctx context.Context, text, wavPath string) error {
	voice := e.Voice
	if voice == "" {
		voice = "en"
	}
	args := []string{"-v", voice, "-w", wavPath, text}
	out, err := e.ExecCmd(ctx, "espeak-ng", args...).CombinedOutput()
	if err != nil {
		return cmdError("espeak-ng", args, out)
	}
	return nil
}

// Say synthesizes with the macOS say CLI.
type Say struct {
	Voice   string
	ExecCmd ExecCmdCtx
}

func (s *Say) Name() string { return "say" }

func (s *Say) Synthesize(ctx context.Context, text, wavPath string) error {
	// LEF32@22050 is required for wav output; higher sample rates are
	// not recommended for say.
	args := []string{"--data-format", "LEF32@22050"}
	if s.Voice != "" {
		args = append(args, "--voice", s.Voice)
	}
	args = append(args, "--output-file", wavPath, text)
	out, err := s.ExecCmd(ctx, "say", args...).CombinedOutput()
	if err != nil {
		return cmdError("say", args, out)
	}
	return nil
}

// CustomCmd runs a user-supplied synthesis command. The argument list
// substitutes {{out}} with the wav path and {{text}} with the narration
// text.
type CustomCmd struct {
	Command string
	Args    []string
	ExecCmd ExecCmdCtx
}

func (c *CustomCmd) Name() string { return c.Command }

func (c *CustomCmd) Synthesize(ctx context.Context, text, wavPath string) error {
	if !containsPlaceholder(c.Args, "{{out}}") {
		return fmt.Errorf("voice command args must contain {{out}}")
	}

	args := make([]string, len(c.Args))
	for i, a := range c.Args {
		a = strings.ReplaceAll(a, "{{out}}", wavPath)
		a = strings.ReplaceAll(a, "{{text}}", text)
		args[i] = a
	}
	out, err := c.ExecCmd(ctx, c.Command, args...).CombinedOutput()
	if err != nil {
		return cmdError(c.Command, args, out)
	}
	return nil
}

func containsPlaceholder(args []string, placeholder string) bool {
	for _, a := range args {
		if strings.Contains(a, placeholder) {
			return true
		}
	}
	return false
}
