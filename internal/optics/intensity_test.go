package optics

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testParams() Parameters {
	return Parameters{
		Pattern:        Double,
		Light:          Monochromatic,
		SlitWidth:      0.1,
		SlitSeparation: 0.5,
		NumSlits:       5,
		Wavelength:     550,
		Bloom:          2.5,
	}
}

var allPatterns = []Pattern{Single, Double, Grating, Circular, Cross, Vertical}

func TestIntensityAtCenter(t *testing.T) {
	p := testParams()
	tests := []struct {
		pattern Pattern
		want    float64
	}{
		{Single, 1},
		{Double, 4},
		{Grating, 25},
		{Circular, 1},
		{Cross, 1},
		{Vertical, 1},
	}
	for _, tt := range tests {
		t.Run(tt.pattern.String(), func(t *testing.T) {
			assert.Equal(t, tt.want, IntensityAt(Center, tt.pattern, p, p.Wavelength))
		})
	}
}

func TestIntensityAtGratingPeakIsNSquared(t *testing.T) {
	p := testParams()
	for _, n := range []int{2, 3, 7, 20} {
		p.NumSlits = n
		assert.Equal(t, float64(n*n), IntensityAt(Center, Grating, p, 600))
	}
}

func TestIntensityAtNonNegativeAndFinite(t *testing.T) {
	variants := []Parameters{testParams()}
	wide := testParams()
	wide.SlitWidth, wide.SlitSeparation, wide.NumSlits = 0.5, 2, 20
	narrow := testParams()
	narrow.SlitWidth, narrow.SlitSeparation, narrow.NumSlits = 0.01, 0.1, 2
	variants = append(variants, wide, narrow)

	for _, p := range variants {
		for _, pattern := range allPatterns {
			for _, nm := range []float64{380, 450, 550, 650, 750} {
				for i := 0; i <= 64; i++ {
					for j := 0; j <= 64; j++ {
						pos := Position{float64(i) / 64, float64(j) / 64}
						v := IntensityAt(pos, pattern, p, nm)
						require.False(t, math.IsNaN(v) || math.IsInf(v, 0), "%v at %v", pattern, pos)
						require.GreaterOrEqual(t, v, 0.0, "%v at %v", pattern, pos)
					}
				}
			}
		}
	}
}

func TestIntensityAtSymmetry(t *testing.T) {
	p := testParams()
	for _, pattern := range allPatterns {
		for _, u := range []float64{0, 0.1, 0.37, 0.49} {
			pos := Position{u, 0.3}
			mirrored := Position{1 - u, 0.7}
			assert.InDeltaf(t, IntensityAt(pos, pattern, p, 550), IntensityAt(mirrored, pattern, p, 550), 1e-9,
				"%v at u=%g", pattern, u)
		}
	}
}

func TestIntensityAtAxes(t *testing.T) {
	p := testParams()
	for _, u := range []float64{0.05, 0.3, 0.52, 0.9} {
		for _, v := range []float64{0.1, 0.45, 0.8} {
			single := IntensityAt(Position{u, v}, Single, p, 600)
			vertical := IntensityAt(Position{v, u}, Vertical, p, 600)
			assert.Equal(t, single, vertical)

			cross := IntensityAt(Position{u, v}, Cross, p, 600)
			want := IntensityAt(Position{u, 0}, Single, p, 600) * IntensityAt(Position{0, v}, Vertical, p, 600)
			assert.InDelta(t, want, cross, 1e-12)
		}
	}
}

func TestIntensityAtTwoSlitGratingMatchesDouble(t *testing.T) {
	p := testParams()
	p.NumSlits = 2
	for u := 0.0; u <= 1; u += 0.01 {
		pos := Position{u, 0.5}
		assert.InDeltaf(t, IntensityAt(pos, Double, p, 500), IntensityAt(pos, Grating, p, 500), 1e-5, "u=%g", u)
	}
}

func TestIntensityAtCircularContinuousAtCutoff(t *testing.T) {
	p := testParams()
	// k*a = 2π*1e-4/5.5e-4 puts arg = 0.001 near r = 8.75e-4.
	below := IntensityAt(Position{0.5 + 0.0000870, 0.5}, Circular, p, 550)
	above := IntensityAt(Position{0.5 + 0.0000880, 0.5}, Circular, p, 550)
	assert.Equal(t, 1.0, below)
	assert.InDelta(t, 1.0, above, 1e-6)
	assert.InDelta(t, below, above, 1e-6)
}

func TestIntensityAtCircularDecreasesOutward(t *testing.T) {
	p := testParams()
	prev := IntensityAt(Center, Circular, p, 550)
	for r := 0.02; r < 0.5; r += 0.02 {
		cur := IntensityAt(Position{0.5 + r, 0.5}, Circular, p, 550)
		assert.Less(t, cur, prev, "r=%g", r)
		prev = cur
	}
}

func TestIntensityAtUnknownPattern(t *testing.T) {
	assert.Zero(t, IntensityAt(Center, Pattern(42), testParams(), 550))
}
