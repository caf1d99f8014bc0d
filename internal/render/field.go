// Package render maps the optics compositor over a pixel grid.
package render

import (
	"context"
	"fmt"
	"image"
	"math"
	"runtime"
	"time"

	log "github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/iburimskiy/diffraction/internal/optics"
)

// rowsPerTask bounds the work of one errgroup task.
const rowsPerTask = 16

// Field is an RGBA pixel buffer shaded from one parameter snapshot.
// Row 0 is the top of the screen.
type Field struct {
	Width, Height int
	Pix           []byte
	workers       int
}

func NewField(width, height int) *Field {
	return &Field{
		Width:   width,
		Height:  height,
		Pix:     make([]byte, width*height*4),
		workers: runtime.NumCPU(),
	}
}

// Render shades every pixel from p. Rows are split into independent tasks;
// a cancelled ctx stops scheduling the rest and returns ctx.Err().
func (f *Field) Render(ctx context.Context, p optics.Parameters) error {
	start := time.Now()

	// Wait cancels gctx, so completion is judged against the caller's ctx.
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(f.workers)
	for y0 := 0; y0 < f.Height; y0 += rowsPerTask {
		if gctx.Err() != nil {
			break
		}
		y1 := min(y0+rowsPerTask, f.Height)
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			f.renderRows(y0, y1, p)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return fmt.Errorf("render cancelled: %w", err)
	}
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("render cancelled: %w", err)
	}

	log.WithFields(log.Fields{
		"size":    fmt.Sprintf("%dx%d", f.Width, f.Height),
		"pattern": p.Pattern,
		"light":   p.Light,
		"time":    time.Since(start),
	}).Debug("Field rendered")
	return nil
}

func (f *Field) renderRows(y0, y1 int, p optics.Parameters) {
	for y := y0; y < y1; y++ {
		for x := 0; x < f.Width; x++ {
			c := optics.Shade(f.Position(x, y), p)
			i := 4 * (x + y*f.Width)
			f.Pix[i+0] = toByte(c.R)
			f.Pix[i+1] = toByte(c.G)
			f.Pix[i+2] = toByte(c.B)
			f.Pix[i+3] = 0xFF
		}
	}
}

// Position maps a pixel centre to normalized screen space, V growing upwards.
func (f *Field) Position(x, y int) optics.Position {
	return optics.Position{
		U: (float64(x) + 0.5) / float64(f.Width),
		V: 1 - (float64(y)+0.5)/float64(f.Height),
	}
}

// Image wraps the buffer without copying.
func (f *Field) Image() *image.RGBA {
	return &image.RGBA{
		Pix:    f.Pix,
		Stride: 4 * f.Width,
		Rect:   image.Rect(0, 0, f.Width, f.Height),
	}
}

func toByte(v float64) byte {
	return byte(math.Round(clamp01(v) * 255))
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
