package state

import (
	"image/color"

	"github.com/iburimskiy/diffraction/internal/optics"
)

// Visibility says which controls apply to a parameter set.
type Visibility struct {
	NumSlits   bool
	Wavelength bool
}

func VisibilityOf(p optics.Parameters) Visibility {
	return Visibility{
		NumSlits:   p.Pattern == optics.Grating,
		Wavelength: p.Light != optics.White,
	}
}

// Swatch is the colour indicator for the current light source: a single
// colour for monochromatic light, one stop per spectral sample for white.
type Swatch struct {
	Color    color.RGBA
	Gradient []color.RGBA
}

func SwatchOf(p optics.Parameters) Swatch {
	if p.Light == optics.White {
		stops := make([]color.RGBA, len(optics.SpectralSamples))
		for i, nm := range optics.SpectralSamples {
			stops[i] = optics.SwatchRGBA(nm)
		}
		return Swatch{Color: color.RGBA{R: 255, G: 255, B: 255, A: 255}, Gradient: stops}
	}
	return Swatch{Color: optics.SwatchRGBA(p.Wavelength)}
}
