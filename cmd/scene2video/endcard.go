package cmd

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"os"

	"github.com/skip2/go-qrcode"
	"github.com/spf13/cobra"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/ivlev/scene2video/internal/theme"
)

func newEndcardCmd() *cobra.Command {
	var (
		url       string
		label     string
		out       string
		themePath string
		size      int
	)

	endcardCmd := &cobra.Command{
		Use:   "endcard",
		Short: "Generate a themed QR end-card PNG",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			if url == "" {
				return fmt.Errorf("--url is required")
			}

			th := theme.Default()
			if themePath != "" {
				loaded, err := theme.Load(themePath)
				if err != nil {
					return err
				}
				th = loaded
			}

			img, err := renderEndcard(url, label, th, size)
			if err != nil {
				return err
			}

			f, err := os.Create(out)
			if err != nil {
				return err
			}
			if err := png.Encode(f, img); err != nil {
				f.Close()
				return err
			}
			return f.Close()
		},
	}

	endcardCmd.Flags().StringVar(&url, "url", "", "link the QR code points to")
	endcardCmd.Flags().StringVar(&label, "label", "", "caption under the QR code")
	endcardCmd.Flags().StringVarP(&out, "output", "o", "endcard.png", "output PNG path")
	endcardCmd.Flags().StringVar(&themePath, "theme", "", "theme yaml file")
	endcardCmd.Flags().IntVar(&size, "size", 1080, "canvas edge length in pixels")

	return endcardCmd
}

// renderEndcard draws the QR code centered on a theme-colored canvas
// with an optional caption underneath.
func renderEndcard(url, label string, th *theme.Theme, size int) (image.Image, error) {
	fg := parseHexColor(th.Colors.FgPrimary, color.RGBA{R: 0xf8, G: 0xfa, B: 0xfc, A: 0xff})
	bg := parseHexColor(th.Colors.BgPrimary, color.RGBA{R: 0x0f, G: 0x17, B: 0x2a, A: 0xff})
	accent := parseHexColor(th.Colors.Accent, color.RGBA{R: 0x3b, G: 0x82, B: 0xf6, A: 0xff})

	qr, err := qrcode.New(url, qrcode.Medium)
	if err != nil {
		return nil, fmt.Errorf("qr encode: %w", err)
	}
	qr.ForegroundColor = fg
	qr.BackgroundColor = bg

	qrSize := size / 2
	qrImg := qr.Image(qrSize)

	canvas := image.NewRGBA(image.Rect(0, 0, size, size))
	draw.Draw(canvas, canvas.Bounds(), image.NewUniform(bg), image.Point{}, draw.Src)

	qrOrigin := image.Pt((size-qrSize)/2, (size-qrSize)/2)
	draw.Draw(canvas, image.Rectangle{Min: qrOrigin, Max: qrOrigin.Add(image.Pt(qrSize, qrSize))},
		qrImg, qrImg.Bounds().Min, draw.Src)

	if label != "" {
		drawer := &font.Drawer{
			Dst:  canvas,
			Src:  image.NewUniform(accent),
			Face: basicfont.Face7x13,
		}
		width := drawer.MeasureString(label)
		drawer.Dot = fixed.Point26_6{
			X: fixed.I(size/2) - width/2,
			Y: fixed.I(qrOrigin.Y + qrSize + 40),
		}
		drawer.DrawString(label)
	}

	return canvas, nil
}

// parseHexColor reads #rgb and #rrggbb tokens, falling back when the
// token is not a plain hex color.
func parseHexColor(s string, fallback color.RGBA) color.RGBA {
	if len(s) == 0 || s[0] != '#' {
		return fallback
	}
	hex := s[1:]
	if len(hex) == 3 {
		hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
	}
	if len(hex) != 6 {
		return fallback
	}
	var r, g, b uint8
	if _, err := fmt.Sscanf(hex, "%02x%02x%02x", &r, &g, &b); err != nil {
		return fallback
	}
	return color.RGBA{R: r, G: g, B: b, A: 0xff}
}
