package optics

import "math"

const (
	compressExponent = 0.8
	glowShare        = 0.5
	whiteWeight      = 0.4
	exposure         = 0.5
	vignetteStrength = 0.3
)

// Shade composes the final display colour of one pixel. It is pure and
// safe to call from any number of goroutines.
func Shade(pos Position, p Parameters) RGB {
	var c RGB
	if p.Light == White {
		for _, nm := range SpectralSamples {
			i := Compress(IntensityAt(pos, p.Pattern, p, nm)) * p.Bloom * whiteWeight
			c = c.Add(WavelengthToRGB(nm).Scale(i))
		}
	} else {
		i := Compress(IntensityAt(pos, p.Pattern, p, p.Wavelength)) * p.Bloom
		base := WavelengthToRGB(p.Wavelength)
		// cheap glow, not a convolution
		c = base.Scale(i).Add(base.Scale(i * glowShare))
	}

	v := Vignette(pos)
	return RGB{ToneMap(c.R) * v, ToneMap(c.G) * v, ToneMap(c.B) * v}
}

// Compress applies the 0.8 power curve to a raw intensity.
func Compress(intensity float64) float64 {
	return math.Pow(intensity, compressExponent)
}

// ToneMap maps [0,∞) into [0,1).
func ToneMap(c float64) float64 {
	return 1 - math.Exp(-c*exposure)
}

// Vignette is the radial darkening factor, 1 at the centre.
func Vignette(pos Position) float64 {
	return 1 - math.Hypot(pos.U-Center.U, pos.V-Center.V)*vignetteStrength
}
