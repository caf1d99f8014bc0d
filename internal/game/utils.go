package game

import (
	"fmt"
	"image/color"
	"time"
)

// formatDuration formats a duration as milliseconds with one decimal.
func formatDuration(d time.Duration) string {
	return fmt.Sprintf("%.1f ms", float64(d.Microseconds())/1000)
}

// withAlpha returns c at the given opacity, premultiplied.
func withAlpha(c color.RGBA, a uint8) color.RGBA {
	return color.RGBA{
		R: uint8(uint16(c.R) * uint16(a) / 255),
		G: uint8(uint16(c.G) * uint16(a) / 255),
		B: uint8(uint16(c.B) * uint16(a) / 255),
		A: a,
	}
}
