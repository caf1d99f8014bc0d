package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/pflag"
	"gopkg.in/yaml.v3"

	"github.com/iburimskiy/diffraction/internal/optics"
)

// Options is the resolved command line.
type Options struct {
	ConfigFile string
	Out        string
	Profile    string
	Width      int
	Height     int
	Debug      bool
	Params     optics.Parameters
}

// Headless reports whether only file exports were requested.
func (o Options) Headless() bool {
	return o.Out != "" || o.Profile != ""
}

// Load resolves options from args (without the program name). Parameters
// start at DefaultParameters, are overlaid by the YAML file named by
// --config and then by any parameter flag given explicitly.
func Load(args []string) (Options, error) {
	fs := pflag.NewFlagSet("diffraction", pflag.ContinueOnError)

	var (
		o                     Options
		pattern, light        string
		slitWidth, separation float64
		numSlits              int
		wavelength, bloom     float64
	)
	d := DefaultParameters()
	fs.StringVarP(&o.ConfigFile, "config", "c", "", "YAML file with initial parameters")
	fs.StringVarP(&o.Out, "out", "o", "", "render one frame to this PNG file and exit")
	fs.StringVar(&o.Profile, "profile", "", "write the centre-row intensity profile chart (HTML) and exit")
	fs.IntVar(&o.Width, "width", WindowWidth/RenderScale, "headless render width in pixels")
	fs.IntVar(&o.Height, "height", WindowHeight/RenderScale, "headless render height in pixels")
	fs.BoolVarP(&o.Debug, "debug", "d", false, "debug logging")
	fs.StringVarP(&pattern, "pattern", "p", d.Pattern.String(), "single|double|multiple|circular|cross|vertical")
	fs.StringVarP(&light, "light", "l", d.Light.String(), "mono|white")
	fs.Float64Var(&slitWidth, "slit-width", d.SlitWidth, "slit width, mm")
	fs.Float64Var(&separation, "slit-separation", d.SlitSeparation, "slit separation, mm")
	fs.IntVarP(&numSlits, "slits", "n", d.NumSlits, "number of slits for the grating")
	fs.Float64VarP(&wavelength, "wavelength", "w", d.Wavelength, "wavelength, nm")
	fs.Float64VarP(&bloom, "bloom", "b", d.Bloom, "bloom gain")

	if err := fs.Parse(args); err != nil {
		return Options{}, err
	}

	o.Params = d
	if o.ConfigFile != "" {
		if err := readParams(o.ConfigFile, &o.Params); err != nil {
			return Options{}, err
		}
	}

	if fs.Changed("pattern") {
		v, err := optics.ParsePattern(pattern)
		if err != nil {
			return Options{}, err
		}
		o.Params.Pattern = v
	}
	if fs.Changed("light") {
		v, err := optics.ParseLight(light)
		if err != nil {
			return Options{}, err
		}
		o.Params.Light = v
	}
	if fs.Changed("slit-width") {
		o.Params.SlitWidth = slitWidth
	}
	if fs.Changed("slit-separation") {
		o.Params.SlitSeparation = separation
	}
	if fs.Changed("slits") {
		o.Params.NumSlits = numSlits
	}
	if fs.Changed("wavelength") {
		o.Params.Wavelength = wavelength
	}
	if fs.Changed("bloom") {
		o.Params.Bloom = bloom
	}

	if o.Width <= 0 || o.Height <= 0 {
		return Options{}, fmt.Errorf("invalid render size %dx%d", o.Width, o.Height)
	}
	if err := o.Params.Validate(); err != nil {
		return Options{}, err
	}
	return o, nil
}

// readParams overlays the fields present in a YAML file onto p.
func readParams(path string, p *optics.Parameters) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read config: %w", err)
	}
	if err := yaml.Unmarshal(data, p); err != nil {
		return fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	return nil
}

// IsHelp reports whether err came from -h/--help.
func IsHelp(err error) bool {
	return errors.Is(err, pflag.ErrHelp)
}
