package optics

import (
	"image/color"
	"math"
)

// RGB is a linear colour triple, unbounded until tone mapped.
type RGB struct {
	R, G, B float64
}

func (c RGB) Add(o RGB) RGB { return RGB{c.R + o.R, c.G + o.G, c.B + o.B} }

func (c RGB) Scale(k float64) RGB { return RGB{c.R * k, c.G * k, c.B * k} }

// SpectralSamples are the wavelengths (nm) summed for white light.
var SpectralSamples = [7]float64{450, 500, 550, 580, 600, 650, 700}

// WavelengthToRGB maps a wavelength in nm to a colour in [0,1]³ using
// piecewise-linear bands, dimmed towards both ends of the visible range.
// Anything outside 380-750 nm is black.
func WavelengthToRGB(nm float64) RGB {
	var r, g, b float64
	switch {
	case nm >= 380 && nm < 440:
		r, g, b = -(nm-440)/(440-380), 0, 1
	case nm >= 440 && nm < 490:
		r, g, b = 0, (nm-440)/(490-440), 1
	case nm >= 490 && nm < 510:
		r, g, b = 0, 1, -(nm-510)/(510-490)
	case nm >= 510 && nm < 580:
		r, g, b = (nm-510)/(580-510), 1, 0
	case nm >= 580 && nm < 645:
		r, g, b = 1, -(nm-645)/(645-580), 0
	case nm >= 645 && nm <= 750:
		r, g, b = 1, 0, 0
	default:
		return RGB{}
	}

	factor := 1.0
	switch {
	case nm >= 380 && nm < 420:
		factor = 0.3 + 0.7*(nm-380)/(420-380)
	case nm >= 645 && nm <= 750:
		factor = 0.3 + 0.7*(750-nm)/(750-645)
	}
	return RGB{r * factor, g * factor, b * factor}
}

// SwatchRGBA is WavelengthToRGB rounded to 8 bits, opaque.
func SwatchRGBA(nm float64) color.RGBA {
	c := WavelengthToRGB(nm)
	return color.RGBA{
		R: uint8(math.Round(c.R * 255)),
		G: uint8(math.Round(c.G * 255)),
		B: uint8(math.Round(c.B * 255)),
		A: 255,
	}
}
