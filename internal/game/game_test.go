package game

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/ncruces/zenity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iburimskiy/diffraction/internal/config"
	"github.com/iburimskiy/diffraction/internal/optics"
	"github.com/iburimskiy/diffraction/internal/state"
)

func newTestGame(t *testing.T) *Game {
	t.Helper()
	return NewGame(context.Background(), state.New(config.DefaultParameters()))
}

func press(t *testing.T, g *Game, key ebiten.Key) {
	t.Helper()
	for _, b := range bindings {
		if b.key == key {
			require.NotNil(t, b.action, "key %v", key)
			require.NoError(t, b.action(g))
			return
		}
	}
	t.Fatalf("no binding for %v", key)
}

func TestBindingsPatternKeys(t *testing.T) {
	g := newTestGame(t)
	keys := []ebiten.Key{ebiten.Key1, ebiten.Key2, ebiten.Key3, ebiten.Key4, ebiten.Key5, ebiten.Key6}
	want := []optics.Pattern{optics.Single, optics.Double, optics.Grating, optics.Circular, optics.Cross, optics.Vertical}
	for i, k := range keys {
		press(t, g, k)
		assert.Equal(t, want[i], g.state.Parameters().Pattern)
	}
}

func TestBindingsAdjustParameters(t *testing.T) {
	g := newTestGame(t)
	press(t, g, ebiten.KeyArrowRight)
	press(t, g, ebiten.KeyArrowUp)
	press(t, g, ebiten.KeyBracketLeft)
	press(t, g, ebiten.KeyEqual)
	press(t, g, ebiten.KeyN)

	p := g.state.Parameters()
	assert.Equal(t, 555.0, p.Wavelength)
	assert.InDelta(t, 0.11, p.SlitWidth, 1e-12)
	assert.InDelta(t, 0.45, p.SlitSeparation, 1e-12)
	assert.Equal(t, 6, p.NumSlits)
	assert.InDelta(t, 2.6, p.Bloom, 1e-12)

	press(t, g, ebiten.KeyW)
	assert.Equal(t, optics.White, g.state.Parameters().Light)

	press(t, g, ebiten.KeyR)
	assert.Equal(t, config.DefaultParameters(), g.state.Parameters())
}

func TestBindingsPresets(t *testing.T) {
	g := newTestGame(t)
	press(t, g, ebiten.KeyZ)
	assert.Equal(t, 650.0, g.state.Parameters().Wavelength)
	press(t, g, ebiten.KeyX)
	assert.Equal(t, 532.0, g.state.Parameters().Wavelength)
	press(t, g, ebiten.KeyC)
	assert.Equal(t, 450.0, g.state.Parameters().Wavelength)
	press(t, g, ebiten.KeyV)
	assert.Equal(t, optics.White, g.state.Parameters().Light)
}

func TestBindingsOverlays(t *testing.T) {
	g := newTestGame(t)
	press(t, g, ebiten.KeyH)
	press(t, g, ebiten.KeyI)
	assert.True(t, g.showHelp)
	assert.True(t, g.showInfo)
	press(t, g, ebiten.KeyH)
	assert.False(t, g.showHelp)
}

func TestBindingsQuit(t *testing.T) {
	quits := 0
	for _, b := range bindings {
		if b.quit {
			quits++
			assert.Nil(t, b.action)
		} else {
			assert.NotNil(t, b.action, "key %v", b.key)
		}
	}
	assert.Equal(t, 2, quits)
}

func TestRefreshRendersOnlyOnChange(t *testing.T) {
	g := newTestGame(t)
	require.NoError(t, g.refresh())
	assert.True(t, g.dirty)
	assert.Len(t, g.stats.snapshot(10), 1)

	g.dirty = false
	require.NoError(t, g.refresh())
	assert.False(t, g.dirty)
	assert.Len(t, g.stats.snapshot(10), 1)

	require.NoError(t, g.state.SetPattern(optics.Circular))
	require.NoError(t, g.refresh())
	assert.True(t, g.dirty)
	assert.Len(t, g.stats.snapshot(10), 2)
}

func TestRefreshCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	g := NewGame(ctx, state.New(config.DefaultParameters()))
	assert.ErrorIs(t, g.refresh(), ebiten.Termination)
	assert.ErrorIs(t, g.Update(), ebiten.Termination)
}

func TestSaveSnapshot(t *testing.T) {
	g := newTestGame(t)
	require.NoError(t, g.refresh())

	path := filepath.Join(t.TempDir(), "snap.png")
	g.selectFile = func() (string, error) { return path, nil }
	require.NoError(t, g.saveSnapshot())
	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Positive(t, info.Size())

	g.selectFile = func() (string, error) { return "", zenity.ErrCanceled }
	assert.NoError(t, g.saveSnapshot())

	boom := errors.New("no display")
	g.selectFile = func() (string, error) { return "", boom }
	assert.ErrorIs(t, g.saveSnapshot(), boom)
}

func TestLayout(t *testing.T) {
	w, h := newTestGame(t).Layout(10, 10)
	assert.Equal(t, config.WindowWidth, w)
	assert.Equal(t, config.WindowHeight, h)
}
