package voice

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/ivlev/scene2video/internal/scene"
	"github.com/ivlev/scene2video/internal/system"
	"github.com/ivlev/scene2video/internal/timeline"
)

// NarrationAudio holds the synthesized files for a session's narration
// segments, in ledger order. Indices, Durations and Paths run parallel
// and feed Session.Resolve.
type NarrationAudio struct {
	Indices   []int
	Durations []float64
	Paths     []string
}

// Narrator synthesizes every narration segment of a session and
// measures the real spoken durations.
type Narrator struct {
	Backend Backend

	// Probe measures a wav file's duration in seconds. Defaults to
	// ffprobe via system.AudioDuration.
	Probe func(path string) (float64, error)
}

// SynthesizeAll writes one wav per narration segment into dir and
// returns the measured durations keyed by ledger index.
func (n *Narrator) SynthesizeAll(ctx context.Context, s *scene.Session, dir string) (*NarrationAudio, error) {
	probe := n.Probe
	if probe == nil {
		probe = system.AudioDuration
	}

	tl := s.Timeline()
	indices := tl.NarrationIndices()

	audio := &NarrationAudio{
		Indices:   indices,
		Durations: make([]float64, 0, len(indices)),
		Paths:     make([]string, 0, len(indices)),
	}

	for _, idx := range indices {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		narration, ok := tl.Segment(idx).(*timeline.Narration)
		if !ok {
			return nil, fmt.Errorf("segment %d is not a narration", idx)
		}

		wavPath := filepath.Join(dir, fmt.Sprintf("narration_%03d.wav", idx))
		if err := n.Backend.Synthesize(ctx, narration.Text, wavPath); err != nil {
			return nil, fmt.Errorf("synthesize segment %d: %w", idx, err)
		}

		duration, err := probe(wavPath)
		if err != nil {
			return nil, fmt.Errorf("measure segment %d: %w", idx, err)
		}

		audio.Durations = append(audio.Durations, duration)
		audio.Paths = append(audio.Paths, wavPath)
	}

	return audio, nil
}
