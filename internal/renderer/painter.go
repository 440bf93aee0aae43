// Package renderer rasterizes frame snapshots into a numbered PNG
// sequence using an external painter process.
package renderer

import (
	"bufio"
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"image"
	"image/png"
	"io"
	"os/exec"
	"sync"

	"github.com/ivlev/scene2video/internal/frame"
)

// Painter turns one frame snapshot into an image.
type Painter interface {
	Paint(ctx context.Context, fs frame.FrameState) (image.Image, error)
	Close() error
}

// Bridge talks to a long-lived helper process that receives one
// JSON-encoded snapshot per line on stdin and answers with one
// base64-encoded PNG per line on stdout.
type Bridge struct {
	cmd    *exec.Cmd
	stdin  io.WriteCloser
	stdout *bufio.Reader

	mu sync.Mutex
}

// NewBridge starts the helper process.
func NewBridge(ctx context.Context, command string, args ...string) (*Bridge, error) {
	cmd := exec.CommandContext(ctx, command, args...)

	stdin, err := cmd.StdinPipe()
	if err != nil {
		return nil, fmt.Errorf("bridge stdin: %w", err)
	}
	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return nil, fmt.Errorf("bridge stdout: %w", err)
	}

	if err := cmd.Start(); err != nil {
		return nil, fmt.Errorf("bridge start %s: %w", command, err)
	}

	return &Bridge{
		cmd:    cmd,
		stdin:  stdin,
		stdout: bufio.NewReaderSize(stdout, 1<<20),
	}, nil
}

// Paint sends one snapshot and reads back the painted frame. The
// request/response exchange is serialized, so a Bridge may be shared
// but gains nothing from concurrent callers.
func (b *Bridge) Paint(ctx context.Context, fs frame.FrameState) (image.Image, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	payload, err := json.Marshal(fs)
	if err != nil {
		return nil, fmt.Errorf("encode frame %d: %w", fs.Frame, err)
	}
	payload = append(payload, '\n')

	if _, err := b.stdin.Write(payload); err != nil {
		return nil, fmt.Errorf("bridge write frame %d: %w", fs.Frame, err)
	}

	line, err := b.stdout.ReadBytes('\n')
	if err != nil {
		return nil, fmt.Errorf("bridge read frame %d: %w", fs.Frame, err)
	}

	data, err := base64.StdEncoding.DecodeString(string(bytes.TrimSpace(line)))
	if err != nil {
		return nil, fmt.Errorf("bridge frame %d is not base64: %w", fs.Frame, err)
	}

	img, err := png.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("bridge frame %d is not png: %w", fs.Frame, err)
	}
	return img, nil
}

// Close shuts the helper down by closing its stdin and waiting for
// exit.
func (b *Bridge) Close() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if err := b.stdin.Close(); err != nil {
		_ = b.cmd.Process.Kill()
		return b.cmd.Wait()
	}
	return b.cmd.Wait()
}
