// Package state owns the live parameter set of the simulator. One goroutine
// mutates it; renderers read consistent snapshots.
package state

import (
	"errors"
	"fmt"
	"strconv"
	"sync"

	log "github.com/sirupsen/logrus"

	"github.com/iburimskiy/diffraction/internal/config"
	"github.com/iburimskiy/diffraction/internal/optics"
)

var (
	ErrUnknownParameter = errors.New("unknown parameter")
	ErrUnknownPreset    = errors.New("unknown preset")
)

// Parameter names accepted by SetParameter and Nudge.
const (
	Pattern        = "pattern"
	Light          = "light"
	SlitWidth      = "slitWidth"
	SlitSeparation = "slitSeparation"
	NumSlits       = "numSlits"
	Wavelength     = "wavelength"
	Bloom          = "bloom"
)

type State struct {
	mu       sync.RWMutex
	params   optics.Parameters
	defaults optics.Parameters
	version  uint64
}

// New returns a state holding defaults, which ResetToDefaults restores.
func New(defaults optics.Parameters) *State {
	return &State{params: defaults, defaults: defaults}
}

// Snapshot returns a consistent copy of the parameters and the number of
// successful mutations so far.
func (s *State) Snapshot() (optics.Parameters, uint64) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.params, s.version
}

// Parameters returns a consistent copy of the parameters.
func (s *State) Parameters() optics.Parameters {
	p, _ := s.Snapshot()
	return p
}

// Replace swaps in a whole parameter set if it is valid.
func (s *State) Replace(p optics.Parameters) error {
	return s.update(func(cur *optics.Parameters) error {
		*cur = p
		return nil
	})
}

// update applies fn to a copy and commits it only if the result is valid.
func (s *State) update(fn func(*optics.Parameters) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := s.params
	if err := fn(&next); err != nil {
		return err
	}
	if next.NumSlits < config.MinNumSlits {
		return fmt.Errorf("%w: need at least %d slits, got %d", optics.ErrInvalidParameter, config.MinNumSlits, next.NumSlits)
	}
	// Checked under white light too, so toggling back to mono stays valid.
	if !(next.Wavelength >= optics.MinWavelength && next.Wavelength <= optics.MaxWavelength) {
		return fmt.Errorf("%w: wavelength %g nm outside %g-%g", optics.ErrInvalidParameter, next.Wavelength, optics.MinWavelength, optics.MaxWavelength)
	}
	if err := next.Validate(); err != nil {
		return err
	}
	if next == s.params {
		return nil
	}
	s.params = next
	s.version++
	log.WithFields(log.Fields{
		"pattern":    next.Pattern,
		"light":      next.Light,
		"width":      next.SlitWidth,
		"separation": next.SlitSeparation,
		"slits":      next.NumSlits,
		"wavelength": next.Wavelength,
		"bloom":      next.Bloom,
		"version":    s.version,
	}).Debug("Parameters updated")
	return nil
}

// SetParameter parses value for the named parameter. Invalid input leaves
// the state unchanged.
func (s *State) SetParameter(name, value string) error {
	switch name {
	case Pattern:
		v, err := optics.ParsePattern(value)
		if err != nil {
			return fmt.Errorf("%w: %w", optics.ErrInvalidParameter, err)
		}
		return s.SetPattern(v)
	case Light:
		v, err := optics.ParseLight(value)
		if err != nil {
			return fmt.Errorf("%w: %w", optics.ErrInvalidParameter, err)
		}
		return s.SetLight(v)
	case NumSlits:
		v, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("%w: %s: %w", optics.ErrInvalidParameter, name, err)
		}
		return s.SetNumSlits(v)
	}

	set, ok := s.floatSetter(name)
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownParameter, name)
	}
	v, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return fmt.Errorf("%w: %s: %w", optics.ErrInvalidParameter, name, err)
	}
	return set(v)
}

func (s *State) floatSetter(name string) (func(float64) error, bool) {
	switch name {
	case SlitWidth:
		return s.SetSlitWidth, true
	case SlitSeparation:
		return s.SetSlitSeparation, true
	case Wavelength:
		return s.SetWavelength, true
	case Bloom:
		return s.SetBloom, true
	}
	return nil, false
}

func (s *State) SetPattern(v optics.Pattern) error {
	return s.update(func(p *optics.Parameters) error { p.Pattern = v; return nil })
}

func (s *State) SetLight(v optics.Light) error {
	return s.update(func(p *optics.Parameters) error { p.Light = v; return nil })
}

func (s *State) SetSlitWidth(v float64) error {
	return s.update(func(p *optics.Parameters) error { p.SlitWidth = v; return nil })
}

func (s *State) SetSlitSeparation(v float64) error {
	return s.update(func(p *optics.Parameters) error { p.SlitSeparation = v; return nil })
}

func (s *State) SetNumSlits(v int) error {
	return s.update(func(p *optics.Parameters) error { p.NumSlits = v; return nil })
}

func (s *State) SetWavelength(v float64) error {
	return s.update(func(p *optics.Parameters) error { p.Wavelength = v; return nil })
}

func (s *State) SetBloom(v float64) error {
	return s.update(func(p *optics.Parameters) error { p.Bloom = v; return nil })
}

// ToggleLight flips between monochromatic and white light.
func (s *State) ToggleLight() error {
	return s.update(func(p *optics.Parameters) error {
		if p.Light == optics.White {
			p.Light = optics.Monochromatic
		} else {
			p.Light = optics.White
		}
		return nil
	})
}

// Nudge steps a numeric parameter by delta, clamped to the control range.
func (s *State) Nudge(name string, delta float64) error {
	return s.update(func(p *optics.Parameters) error {
		switch name {
		case SlitWidth:
			p.SlitWidth = clamp(p.SlitWidth+delta, config.MinSlitWidth, config.MaxSlitWidth)
		case SlitSeparation:
			p.SlitSeparation = clamp(p.SlitSeparation+delta, config.MinSlitSeparation, config.MaxSlitSeparation)
		case NumSlits:
			p.NumSlits = int(clamp(float64(p.NumSlits)+delta, config.MinNumSlits, config.MaxNumSlits))
		case Wavelength:
			p.Wavelength = clamp(p.Wavelength+delta, optics.MinWavelength, optics.MaxWavelength)
		case Bloom:
			p.Bloom = clamp(p.Bloom+delta, config.MinBloom, config.MaxBloom)
		default:
			return fmt.Errorf("%w: %q", ErrUnknownParameter, name)
		}
		return nil
	})
}

// ResetToDefaults restores the parameters given to New.
func (s *State) ResetToDefaults() {
	if err := s.Replace(s.defaults); err != nil {
		log.WithError(err).Error("Reset failed")
	}
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
