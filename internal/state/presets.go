package state

import (
	"fmt"
	"sort"

	log "github.com/sirupsen/logrus"

	"github.com/iburimskiy/diffraction/internal/optics"
)

// Preset is a named light source setup. Pattern, slit count and bloom are
// left as they are.
type Preset struct {
	Wavelength     float64
	SlitWidth      float64
	SlitSeparation float64
	Light          optics.Light
}

var presets = map[string]Preset{
	"red":   {Wavelength: 650, SlitWidth: 0.08, SlitSeparation: 0.4, Light: optics.Monochromatic},
	"green": {Wavelength: 532, SlitWidth: 0.1, SlitSeparation: 0.5, Light: optics.Monochromatic},
	"blue":  {Wavelength: 450, SlitWidth: 0.12, SlitSeparation: 0.6, Light: optics.Monochromatic},
	"white": {Wavelength: 550, SlitWidth: 0.1, SlitSeparation: 0.5, Light: optics.White},
}

// PresetNames lists the preset table in sorted order.
func PresetNames() []string {
	names := make([]string, 0, len(presets))
	for name := range presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// LookupPreset returns the named preset.
func LookupPreset(name string) (Preset, bool) {
	pr, ok := presets[name]
	return pr, ok
}

// ApplyPreset overwrites wavelength, slit geometry and light type.
func (s *State) ApplyPreset(name string) error {
	pr, ok := presets[name]
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownPreset, name)
	}
	err := s.update(func(p *optics.Parameters) error {
		p.Wavelength = pr.Wavelength
		p.SlitWidth = pr.SlitWidth
		p.SlitSeparation = pr.SlitSeparation
		p.Light = pr.Light
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to apply preset %s: %w", name, err)
	}
	log.WithField("preset", name).Info("Preset applied")
	return nil
}
