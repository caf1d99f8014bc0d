package optics

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidParameter is wrapped by every Validate failure.
var ErrInvalidParameter = errors.New("invalid parameter")

// Visible range accepted for monochromatic light, in nm.
const (
	MinWavelength = 380.0
	MaxWavelength = 750.0
)

// Pattern selects one of the six aperture formulas.
type Pattern uint8

const (
	Single Pattern = iota
	Double
	Grating
	Circular
	Cross
	Vertical
)

var patternNames = [...]string{"single", "double", "multiple", "circular", "cross", "vertical"}

func (p Pattern) String() string {
	if int(p) < len(patternNames) {
		return patternNames[p]
	}
	return fmt.Sprintf("pattern(%d)", uint8(p))
}

// ParsePattern accepts the selector names, plus "grating" as an alias of "multiple".
func ParsePattern(text string) (Pattern, error) {
	switch strings.ToLower(strings.TrimSpace(text)) {
	case "single":
		return Single, nil
	case "double":
		return Double, nil
	case "multiple", "grating":
		return Grating, nil
	case "circular":
		return Circular, nil
	case "cross":
		return Cross, nil
	case "vertical":
		return Vertical, nil
	default:
		return 0, fmt.Errorf("invalid pattern: %q", text)
	}
}

func (p *Pattern) UnmarshalText(text []byte) error {
	v, err := ParsePattern(string(text))
	if err != nil {
		return err
	}
	*p = v
	return nil
}

func (p Pattern) MarshalText() ([]byte, error) { return []byte(p.String()), nil }

// Light is the source spectrum.
type Light uint8

const (
	Monochromatic Light = iota
	White
)

func (l Light) String() string {
	switch l {
	case Monochromatic:
		return "mono"
	case White:
		return "white"
	default:
		return fmt.Sprintf("light(%d)", uint8(l))
	}
}

func ParseLight(text string) (Light, error) {
	switch strings.ToLower(strings.TrimSpace(text)) {
	case "mono", "monochromatic":
		return Monochromatic, nil
	case "white":
		return White, nil
	default:
		return 0, fmt.Errorf("invalid light type: %q", text)
	}
}

func (l *Light) UnmarshalText(text []byte) error {
	v, err := ParseLight(string(text))
	if err != nil {
		return err
	}
	*l = v
	return nil
}

func (l Light) MarshalText() ([]byte, error) { return []byte(l.String()), nil }

// Parameters is one frame's worth of physical inputs. Lengths are in mm,
// wavelength in nm.
type Parameters struct {
	Pattern        Pattern `yaml:"pattern"`
	Light          Light   `yaml:"light"`
	SlitWidth      float64 `yaml:"slitWidth"`
	SlitSeparation float64 `yaml:"slitSeparation"`
	NumSlits       int     `yaml:"numSlits"`
	Wavelength     float64 `yaml:"wavelength"`
	Bloom          float64 `yaml:"bloom"`
}

// Validate reports the first broken invariant.
func (p Parameters) Validate() error {
	switch {
	case p.Pattern > Vertical:
		return fmt.Errorf("%w: unknown pattern %d", ErrInvalidParameter, p.Pattern)
	case p.Light > White:
		return fmt.Errorf("%w: unknown light type %d", ErrInvalidParameter, p.Light)
	case !(p.SlitWidth > 0):
		return fmt.Errorf("%w: slit width must be positive, got %g", ErrInvalidParameter, p.SlitWidth)
	case !(p.SlitSeparation > 0):
		return fmt.Errorf("%w: slit separation must be positive, got %g", ErrInvalidParameter, p.SlitSeparation)
	case !(p.Bloom > 0):
		return fmt.Errorf("%w: bloom must be positive, got %g", ErrInvalidParameter, p.Bloom)
	case p.Pattern == Grating && p.NumSlits < 2:
		return fmt.Errorf("%w: grating needs at least 2 slits, got %d", ErrInvalidParameter, p.NumSlits)
	case p.Light == Monochromatic && !(p.Wavelength >= MinWavelength && p.Wavelength <= MaxWavelength):
		return fmt.Errorf("%w: wavelength %g nm outside %g-%g", ErrInvalidParameter, p.Wavelength, MinWavelength, MaxWavelength)
	}
	return nil
}
