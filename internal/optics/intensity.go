package optics

import "math"

// Screen plane geometry: normalized positions span screenSpan units and the
// screen sits screenDistance away from the aperture.
const (
	screenSpan     = 10.0
	screenDistance = 1.0
)

// Position is a normalized screen coordinate in [0,1]².
type Position struct {
	U, V float64
}

// Center of the screen.
var Center = Position{0.5, 0.5}

func (p Position) plane() (x, y float64) {
	return (p.U - 0.5) * screenSpan, (p.V - 0.5) * screenSpan
}

// IntensityAt evaluates the Fraunhofer intensity of pattern at pos for the
// given wavelength in nm. Only slit geometry is read from p. The result is
// never negative and never NaN for valid parameters.
func IntensityAt(pos Position, pattern Pattern, p Parameters, nm float64) float64 {
	x, y := pos.plane()

	// Internal unit scale, not SI.
	lambda := nm * 1e-6
	a := p.SlitWidth * 1e-3
	d := p.SlitSeparation * 1e-3

	switch pattern {
	case Single:
		return sinc2(slitBeta(x, a, lambda))

	case Double:
		sinTheta := math.Sin(math.Atan(x / screenDistance))
		beta := math.Pi * a * sinTheta / lambda
		delta := math.Pi * d * sinTheta / lambda
		c := math.Cos(delta)
		return sinc2(beta) * 4 * c * c

	case Grating:
		sinTheta := math.Sin(math.Atan(x / screenDistance))
		beta := math.Pi * a * sinTheta / lambda
		delta := math.Pi * d * sinTheta / lambda
		n := float64(p.NumSlits)
		return sinc2(beta) * gratingFactor(delta, n)

	case Circular:
		r := math.Hypot(x, y)
		k := 2 * math.Pi / lambda
		arg := k * a * math.Sin(math.Atan(r/screenDistance))
		if math.Abs(arg) < nearZero {
			return 1
		}
		j := BesselJ1(arg)
		return 4 * j * j / (arg * arg)

	case Cross:
		return sinc2(slitBeta(x, a, lambda)) * sinc2(slitBeta(y, a, lambda))

	case Vertical:
		return sinc2(slitBeta(y, a, lambda))
	}
	return 0
}

// slitBeta is the single slit phase for a screen offset along one axis.
func slitBeta(offset, a, lambda float64) float64 {
	return math.Pi * a * math.Sin(math.Atan(offset/screenDistance)) / lambda
}

// sinc2 is (sin β / β)², 1 near β = 0.
func sinc2(beta float64) float64 {
	if math.Abs(beta) < nearZero {
		return 1
	}
	s := math.Sin(beta) / beta
	return s * s
}

// gratingFactor is (sin Nδ / sin δ)², N² where sin δ vanishes.
func gratingFactor(delta, n float64) float64 {
	sd := math.Sin(delta)
	if math.Abs(sd) < nearZero {
		return n * n
	}
	sn := math.Sin(n * delta)
	return sn * sn / (sd * sd)
}
