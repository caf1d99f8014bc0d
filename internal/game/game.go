// Package game runs the simulator window on ebiten.
package game

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/ncruces/zenity"
	log "github.com/sirupsen/logrus"

	"github.com/iburimskiy/diffraction/internal/config"
	"github.com/iburimskiy/diffraction/internal/optics"
	"github.com/iburimskiy/diffraction/internal/render"
	"github.com/iburimskiy/diffraction/internal/state"
)

type Game struct {
	ctx   context.Context
	state *state.State

	// field
	field    *render.Field
	canvas   *ebiten.Image
	version  uint64
	rendered bool
	dirty    bool
	stats    *frameStats

	// overlays
	showHelp bool
	showInfo bool

	// selectFile asks for a snapshot destination.
	selectFile func() (string, error)

	lastErr error
}

func NewGame(ctx context.Context, st *state.State) *Game {
	return &Game{
		ctx:        ctx,
		state:      st,
		field:      render.NewField(config.WindowWidth/config.RenderScale, config.WindowHeight/config.RenderScale),
		stats:      newFrameStats(config.FrameRingSize),
		selectFile: selectSnapshotFile,
	}
}

func (g *Game) Update() error {
	if err := g.ctx.Err(); err != nil {
		return ebiten.Termination
	}

	for _, b := range bindings {
		if !b.triggered() {
			continue
		}
		if b.quit {
			return ebiten.Termination
		}
		if err := b.action(g); err != nil {
			g.lastErr = err
			log.WithError(err).WithField("key", b.key).Warn("Key action failed")
		}
	}

	return g.refresh()
}

// refresh re-renders the field when the parameter snapshot moved.
func (g *Game) refresh() error {
	p, version := g.state.Snapshot()
	if g.rendered && version == g.version {
		return nil
	}
	start := time.Now()
	if err := g.field.Render(g.ctx, p); err != nil {
		if errors.Is(err, context.Canceled) {
			return ebiten.Termination
		}
		return err
	}
	g.stats.record(time.Since(start))
	g.version = version
	g.rendered = true
	g.dirty = true
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	if g.canvas == nil {
		g.canvas = ebiten.NewImage(g.field.Width, g.field.Height)
	}
	if g.dirty {
		g.canvas.WritePixels(g.field.Pix)
		g.dirty = false
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(config.RenderScale, config.RenderScale)
	op.Filter = ebiten.FilterLinear
	screen.DrawImage(g.canvas, op)

	p := g.state.Parameters()
	g.drawPanel(screen, p)
	if g.showInfo {
		g.drawInfo(screen)
	}
	if g.showHelp {
		g.drawHelp(screen)
	}
	g.drawStatus(screen)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.WindowWidth, config.WindowHeight
}

// saveSnapshot writes the current field to a PNG chosen in a native dialog.
func (g *Game) saveSnapshot() error {
	path, err := g.selectFile()
	if err != nil {
		if errors.Is(err, zenity.ErrCanceled) {
			return nil
		}
		return fmt.Errorf("failed to choose file: %w", err)
	}
	if err := g.field.SavePNG(path); err != nil {
		_ = zenity.Error(err.Error(), zenity.Title("Snapshot failed"), zenity.ErrorIcon)
		return err
	}
	log.WithField("path", path).Info("Snapshot saved")
	return nil
}

func selectSnapshotFile() (string, error) {
	return zenity.SelectFileSave(
		zenity.Title("Save Snapshot"),
		zenity.Filename("diffraction.png"),
		zenity.ConfirmOverwrite(),
		zenity.FileFilters{{
			Name:     "PNG image",
			Patterns: []string{"*.png"},
		}},
	)
}

// binding maps a key to an action. Repeating bindings fire again while
// the key is held.
type binding struct {
	key    ebiten.Key
	label  string
	repeat bool
	quit   bool
	action func(*Game) error
}

const (
	repeatDelay    = 20
	repeatInterval = 3
)

func (b binding) triggered() bool {
	if !b.repeat {
		return inpututil.IsKeyJustPressed(b.key)
	}
	d := inpututil.KeyPressDuration(b.key)
	return d == 1 || (d > repeatDelay && d%repeatInterval == 0)
}

func pattern(p optics.Pattern) func(*Game) error {
	return func(g *Game) error { return g.state.SetPattern(p) }
}

func preset(name string) func(*Game) error {
	return func(g *Game) error { return g.state.ApplyPreset(name) }
}

func nudge(name string, delta float64) func(*Game) error {
	return func(g *Game) error { return g.state.Nudge(name, delta) }
}

var bindings = []binding{
	{key: ebiten.Key1, label: "1-6  Pattern", action: pattern(optics.Single)},
	{key: ebiten.Key2, action: pattern(optics.Double)},
	{key: ebiten.Key3, action: pattern(optics.Grating)},
	{key: ebiten.Key4, action: pattern(optics.Circular)},
	{key: ebiten.Key5, action: pattern(optics.Cross)},
	{key: ebiten.Key6, action: pattern(optics.Vertical)},
	{key: ebiten.KeyW, label: "W    White / mono light", action: func(g *Game) error { return g.state.ToggleLight() }},
	{key: ebiten.KeyArrowLeft, label: "<- -> Wavelength", repeat: true, action: nudge(state.Wavelength, -config.WavelengthStep)},
	{key: ebiten.KeyArrowRight, repeat: true, action: nudge(state.Wavelength, config.WavelengthStep)},
	{key: ebiten.KeyArrowDown, label: "Dn Up Slit width", repeat: true, action: nudge(state.SlitWidth, -config.SlitWidthStep)},
	{key: ebiten.KeyArrowUp, repeat: true, action: nudge(state.SlitWidth, config.SlitWidthStep)},
	{key: ebiten.KeyBracketLeft, label: "[ ]  Slit separation", repeat: true, action: nudge(state.SlitSeparation, -config.SlitSeparationStep)},
	{key: ebiten.KeyBracketRight, repeat: true, action: nudge(state.SlitSeparation, config.SlitSeparationStep)},
	{key: ebiten.KeyMinus, label: "- =  Number of slits", repeat: true, action: nudge(state.NumSlits, -1)},
	{key: ebiten.KeyEqual, repeat: true, action: nudge(state.NumSlits, 1)},
	{key: ebiten.KeyB, label: "B N  Bloom", repeat: true, action: nudge(state.Bloom, -config.BloomStep)},
	{key: ebiten.KeyN, repeat: true, action: nudge(state.Bloom, config.BloomStep)},
	{key: ebiten.KeyZ, label: "Z X C V  Red/green/blue/white preset", action: preset("red")},
	{key: ebiten.KeyX, action: preset("green")},
	{key: ebiten.KeyC, action: preset("blue")},
	{key: ebiten.KeyV, action: preset("white")},
	{key: ebiten.KeyR, label: "R    Reset parameters", action: func(g *Game) error { g.state.ResetToDefaults(); return nil }},
	{key: ebiten.KeyS, label: "S    Save snapshot", action: (*Game).saveSnapshot},
	{key: ebiten.KeyI, label: "I    Toggle info panel", action: func(g *Game) error { g.showInfo = !g.showInfo; return nil }},
	{key: ebiten.KeyH, label: "H    Toggle shortcuts", action: func(g *Game) error { g.showHelp = !g.showHelp; return nil }},
	{key: ebiten.KeyEscape, label: "Esc Q  Quit", quit: true},
	{key: ebiten.KeyQ, quit: true},
}
