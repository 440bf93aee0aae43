package renderer

import (
	"context"
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"

	"golang.org/x/image/draw"
	"golang.org/x/sync/errgroup"

	"github.com/ivlev/scene2video/internal/frame"
	"github.com/ivlev/scene2video/internal/scene"
	"github.com/ivlev/scene2video/internal/system"
)

// Renderer rasterizes every frame of a frozen session into dir as
// frame_%06d.png.
type Renderer struct {
	// NewPainter constructs one painter per worker.
	NewPainter func(ctx context.Context) (Painter, error)

	// Workers sizes the pool. Zero means system.WorkerCount().
	Workers int

	// Width and Height are the output dimensions. Painted frames of a
	// different size are rescaled.
	Width  int
	Height int
}

// Render paints all frames in parallel. Progress, when non-nil, is
// called once per finished frame with the running count and total.
func (r *Renderer) Render(ctx context.Context, s *scene.Session, dir string, progress func(done, total int)) error {
	tl := s.Timeline()
	total := tl.FrameCount()
	if total == 0 {
		return nil
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}

	workers := r.Workers
	if workers <= 0 {
		workers = system.WorkerCount()
	}
	if workers > total {
		workers = total
	}

	frames := make(chan int)
	done := make(chan struct{}, total)

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		defer close(frames)
		for i := 0; i < total; i++ {
			select {
			case frames <- i:
			case <-ctx.Done():
				return ctx.Err()
			}
		}
		return nil
	})

	for w := 0; w < workers; w++ {
		g.Go(func() error {
			painter, err := r.NewPainter(ctx)
			if err != nil {
				return err
			}
			defer painter.Close()

			fps := float64(tl.FPS())
			for i := range frames {
				fs := frame.Compile(s, float64(i)/fps)
				img, err := painter.Paint(ctx, fs)
				if err != nil {
					return err
				}
				if err := r.writeFrame(dir, i, img); err != nil {
					return err
				}
				done <- struct{}{}
			}
			return nil
		})
	}

	if progress != nil {
		finished := 0
		g.Go(func() error {
			for finished < total {
				select {
				case <-done:
					finished++
					progress(finished, total)
				case <-ctx.Done():
					return nil
				}
			}
			return nil
		})
	}

	return g.Wait()
}

func (r *Renderer) writeFrame(dir string, index int, img image.Image) error {
	scaled, pooled := r.fitToOutput(img)
	if pooled != nil {
		defer system.PutImage(pooled)
	}
	img = scaled

	path := filepath.Join(dir, fmt.Sprintf("frame_%06d.png", index))
	f, err := os.Create(path)
	if err != nil {
		return err
	}

	encoder := png.Encoder{CompressionLevel: png.BestSpeed}
	if err := encoder.Encode(f, img); err != nil {
		f.Close()
		return fmt.Errorf("encode %s: %w", path, err)
	}
	return f.Close()
}

// fitToOutput rescales a painted frame when its size does not match the
// configured output. The second return is the pooled buffer to release
// after use, nil when no rescale happened.
func (r *Renderer) fitToOutput(img image.Image) (image.Image, *image.RGBA) {
	if r.Width <= 0 || r.Height <= 0 {
		return img, nil
	}
	bounds := img.Bounds()
	if bounds.Dx() == r.Width && bounds.Dy() == r.Height {
		return img, nil
	}

	dst := system.GetImage(image.Rect(0, 0, r.Width, r.Height))
	draw.CatmullRom.Scale(dst, dst.Bounds(), img, bounds, draw.Src, nil)
	return dst, dst
}
