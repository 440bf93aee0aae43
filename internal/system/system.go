// Package system probes the host: encoder availability, audio
// durations via ffprobe, file-descriptor limits, and worker sizing.
package system

import (
	"fmt"
	"log/slog"
	"os/exec"
	"strings"
	"syscall"

	"github.com/shirou/gopsutil/v3/cpu"
	"github.com/shirou/gopsutil/v3/mem"
)

// InitResourceLimits raises the open-file limit so parallel frame
// writing does not run out of descriptors.
func InitResourceLimits() {
	var rLimit syscall.Rlimit
	if err := syscall.Getrlimit(syscall.RLIMIT_NOFILE, &rLimit); err != nil {
		slog.Warn("failed to read open-file limit", "err", err)
		return
	}

	rLimit.Cur = 2048
	if rLimit.Cur > rLimit.Max {
		rLimit.Cur = rLimit.Max
	}

	if err := syscall.Setrlimit(syscall.RLIMIT_NOFILE, &rLimit); err != nil {
		slog.Warn("failed to raise open-file limit", "err", err)
	}
}

// BestH264Encoder returns the preferred available h264 encoder.
// Hardware encoders win over software libx264 when ffmpeg reports them.
func BestH264Encoder() string {
	hardware := []string{"h264_videotoolbox", "h264_nvenc"}

	out, err := exec.Command("ffmpeg", "-encoders").CombinedOutput()
	if err != nil {
		return "libx264"
	}
	for _, name := range hardware {
		if strings.Contains(string(out), name) {
			return name
		}
	}
	return "libx264"
}

// AudioDuration returns the duration of an audio file in seconds via
// ffprobe.
func AudioDuration(path string) (float64, error) {
	cmd := exec.Command("ffprobe", "-v", "error", "-show_entries", "format=duration",
		"-of", "default=noprint_wrappers=1:nokey=1", path)
	out, err := cmd.CombinedOutput()
	if err != nil {
		return 0, fmt.Errorf("ffprobe %s: %w", path, err)
	}

	var duration float64
	if _, err := fmt.Sscanf(strings.TrimSpace(string(out)), "%f", &duration); err != nil {
		return 0, fmt.Errorf("ffprobe %s: unparseable duration %q", path, strings.TrimSpace(string(out)))
	}
	return duration, nil
}

// Per-worker memory budget for in-flight frame buffers, in bytes. A
// 1920x1080 RGBA frame is ~8MB and painting keeps several alive.
const workerMemoryBudget = 256 << 20

// WorkerCount sizes the render pool from the logical CPU count, capped
// by available memory.
func WorkerCount() int {
	workers := 4
	if n, err := cpu.Counts(true); err == nil && n > 0 {
		workers = n
	}

	if vm, err := mem.VirtualMemory(); err == nil {
		if byMem := int(vm.Available / workerMemoryBudget); byMem > 0 && byMem < workers {
			workers = byMem
		}
	}

	if workers < 1 {
		workers = 1
	}
	return workers
}
