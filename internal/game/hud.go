package game

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/iburimskiy/diffraction/internal/config"
	"github.com/iburimskiy/diffraction/internal/optics"
	"github.com/iburimskiy/diffraction/internal/state"
)

var (
	panelColor  = color.RGBA{R: 20, G: 25, B: 35, A: 200}
	borderColor = color.RGBA{R: 60, G: 70, B: 90, A: 255}
)

var patternLabels = map[optics.Pattern]string{
	optics.Single:   "Single Slit",
	optics.Double:   "Double Slit",
	optics.Grating:  "Grating (N slits)",
	optics.Circular: "Circular Aperture",
	optics.Cross:    "Cross Aperture",
	optics.Vertical: "Vertical Slit",
}

const infoText = `Fraunhofer diffraction

Far-field intensity is evaluated per pixel
from closed-form expressions: sinc^2 for
slits, N-slit interference for gratings
and the Airy disk for a circular aperture.
White light sums seven spectral samples.`

// panelLines lists the control readouts shown for p.
func panelLines(p optics.Parameters) []string {
	vis := state.VisibilityOf(p)
	light := "Monochromatic"
	if p.Light == optics.White {
		light = "White Light"
	}
	lines := []string{
		"Diffraction Simulator",
		"",
		"Pattern:    " + patternLabels[p.Pattern],
		"Light:      " + light,
		fmt.Sprintf("Slit width: %.2f mm", p.SlitWidth),
		fmt.Sprintf("Separation: %.2f mm", p.SlitSeparation),
	}
	if vis.NumSlits {
		lines = append(lines, fmt.Sprintf("Slits:      %d", p.NumSlits))
	}
	if vis.Wavelength {
		lines = append(lines, fmt.Sprintf("Wavelength: %.0f nm", p.Wavelength))
	}
	lines = append(lines, fmt.Sprintf("Bloom:      %.1f", p.Bloom))
	return lines
}

func (g *Game) drawPanel(screen *ebiten.Image, p optics.Parameters) {
	x, y := float32(config.PanelX), float32(config.PanelY)
	vector.DrawFilledRect(screen, x, y, config.PanelWidth, config.PanelHeight, panelColor, false)
	vector.StrokeRect(screen, x, y, config.PanelWidth, config.PanelHeight, 2, borderColor, false)

	lines := panelLines(p)
	for i, line := range lines {
		ebitenutil.DebugPrintAt(screen, line, config.PanelX+10, config.PanelY+8+i*config.LineHeight)
	}

	// colour indicator
	sy := config.PanelY + 8 + (len(lines)+1)*config.LineHeight
	ebitenutil.DebugPrintAt(screen, "Current Color", config.PanelX+10, sy)
	g.drawSwatch(screen, float32(config.PanelX+130), float32(sy+8), state.SwatchOf(p))

	ebitenutil.DebugPrintAt(screen, "Render: "+formatDuration(g.stats.mean()),
		config.PanelX+10, sy+2*config.LineHeight)
	ebitenutil.DebugPrintAt(screen, "Press 'H' for keyboard shortcuts",
		config.PanelX+10, sy+3*config.LineHeight)
}

func (g *Game) drawSwatch(screen *ebiten.Image, cx, cy float32, sw state.Swatch) {
	if len(sw.Gradient) == 0 {
		vector.DrawFilledCircle(screen, cx, cy, config.SwatchSize, sw.Color, true)
		return
	}
	w := float32(config.SwatchSize) * 2 / float32(len(sw.Gradient))
	left := cx - config.SwatchSize
	for i, c := range sw.Gradient {
		vector.DrawFilledRect(screen, left+float32(i)*w, cy-config.SwatchSize, w, 2*config.SwatchSize, c, false)
	}
}

func (g *Game) drawInfo(screen *ebiten.Image) {
	const w, h = 300, 120
	x := config.WindowWidth - w - config.PanelX
	y := config.PanelY
	vector.DrawFilledRect(screen, float32(x), float32(y), w, h, panelColor, false)
	vector.StrokeRect(screen, float32(x), float32(y), w, h, 2, borderColor, false)
	ebitenutil.DebugPrintAt(screen, infoText, x+10, y+8)
}

func (g *Game) drawHelp(screen *ebiten.Image) {
	var lines []string
	for _, b := range bindings {
		if b.label != "" {
			lines = append(lines, b.label)
		}
	}
	w := 340
	h := (len(lines)+2)*config.LineHeight + 8
	x := (config.WindowWidth - w) / 2
	y := (config.WindowHeight - h) / 2

	vector.DrawFilledRect(screen, 0, 0, config.WindowWidth, config.WindowHeight, withAlpha(color.RGBA{}, 120), false)
	vector.DrawFilledRect(screen, float32(x), float32(y), float32(w), float32(h), panelColor, false)
	vector.StrokeRect(screen, float32(x), float32(y), float32(w), float32(h), 2, borderColor, false)
	ebitenutil.DebugPrintAt(screen, "Keyboard Shortcuts", x+10, y+8)
	for i, line := range lines {
		ebitenutil.DebugPrintAt(screen, line, x+10, y+8+(i+2)*config.LineHeight)
	}
}

func (g *Game) drawStatus(screen *ebiten.Image) {
	if g.lastErr == nil {
		return
	}
	ebitenutil.DebugPrintAt(screen, "Error: "+g.lastErr.Error(), config.PanelX, config.WindowHeight-config.LineHeight-8)
}
