package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	log "github.com/sirupsen/logrus"

	"github.com/iburimskiy/diffraction/internal/config"
	"github.com/iburimskiy/diffraction/internal/game"
	"github.com/iburimskiy/diffraction/internal/render"
	"github.com/iburimskiy/diffraction/internal/state"
)

// profileSamples is the number of points along the profile chart.
const profileSamples = 1000

func main() {
	opts, err := config.Load(os.Args[1:])
	if err != nil {
		if config.IsHelp(err) {
			return
		}
		log.WithError(err).Fatal("Invalid arguments")
	}
	if opts.Debug {
		log.SetLevel(log.DebugLevel)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if opts.Headless() {
		if err := export(ctx, opts); err != nil {
			log.WithError(err).Fatal("Export failed")
		}
		return
	}

	st := state.New(config.DefaultParameters())
	if err := st.Replace(opts.Params); err != nil {
		log.WithError(err).Fatal("Invalid parameters")
	}

	ebiten.SetWindowSize(config.WindowWidth, config.WindowHeight)
	ebiten.SetWindowTitle("Diffraction Simulator - 1-6: Pattern, H: Shortcuts, Esc/Q: Quit")

	g := game.NewGame(ctx, st)
	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		log.WithError(err).Fatal("Game stopped")
	}
}

// export writes the requested files for opts.Params without opening a window.
func export(ctx context.Context, opts config.Options) error {
	appTime := time.Now()
	defer func() {
		log.WithField("time", time.Since(appTime)).Debug("Export finished")
	}()
	log.WithFields(log.Fields{
		"out":     opts.Out,
		"profile": opts.Profile,
		"pattern": opts.Params.Pattern,
		"light":   opts.Params.Light,
	}).Debug("Export started")

	if opts.Out != "" {
		f := render.NewField(opts.Width, opts.Height)
		if err := f.Render(ctx, opts.Params); err != nil {
			return err
		}
		if err := f.SavePNG(opts.Out); err != nil {
			return err
		}
		log.WithField("path", opts.Out).Info("Field saved")
	}

	if opts.Profile != "" {
		file, err := os.Create(opts.Profile)
		if err != nil {
			return fmt.Errorf("failed to create file: %w", err)
		}
		defer file.Close()
		if err := render.WriteProfileChart(file, opts.Params, profileSamples); err != nil {
			return err
		}
		log.WithField("path", opts.Profile).Info("Profile chart saved")
	}
	return nil
}
