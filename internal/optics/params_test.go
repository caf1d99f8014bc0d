package optics

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestParsePattern(t *testing.T) {
	tests := map[string]Pattern{
		"single":   Single,
		"Double":   Double,
		"multiple": Grating,
		"grating":  Grating,
		"circular": Circular,
		" cross ":  Cross,
		"vertical": Vertical,
	}
	for text, want := range tests {
		got, err := ParsePattern(text)
		require.NoError(t, err, text)
		assert.Equal(t, want, got)
	}
	_, err := ParsePattern("hexagon")
	assert.Error(t, err)
}

func TestPatternStringRoundTrip(t *testing.T) {
	for _, p := range allPatterns {
		got, err := ParsePattern(p.String())
		require.NoError(t, err)
		assert.Equal(t, p, got)
	}
}

func TestParseLight(t *testing.T) {
	l, err := ParseLight("white")
	require.NoError(t, err)
	assert.Equal(t, White, l)
	l, err = ParseLight("mono")
	require.NoError(t, err)
	assert.Equal(t, Monochromatic, l)
	_, err = ParseLight("laser")
	assert.Error(t, err)
}

func TestParametersYAML(t *testing.T) {
	var p Parameters
	err := yaml.Unmarshal([]byte("pattern: circular\nlight: white\nslitWidth: 0.2\nnumSlits: 3\n"), &p)
	require.NoError(t, err)
	assert.Equal(t, Circular, p.Pattern)
	assert.Equal(t, White, p.Light)
	assert.Equal(t, 0.2, p.SlitWidth)
	assert.Equal(t, 3, p.NumSlits)

	err = yaml.Unmarshal([]byte("pattern: hexagon\n"), &p)
	assert.Error(t, err)
}

func TestParametersValidate(t *testing.T) {
	require.NoError(t, testParams().Validate())

	white := testParams()
	white.Light, white.Wavelength = White, 0
	assert.NoError(t, white.Validate())

	notGrating := testParams()
	notGrating.NumSlits = 0
	assert.NoError(t, notGrating.Validate())

	broken := []func(*Parameters){
		func(p *Parameters) { p.SlitWidth = 0 },
		func(p *Parameters) { p.SlitSeparation = -1 },
		func(p *Parameters) { p.Bloom = 0 },
		func(p *Parameters) { p.Pattern, p.NumSlits = Grating, 1 },
		func(p *Parameters) { p.Wavelength = 379 },
		func(p *Parameters) { p.Wavelength = 751 },
		func(p *Parameters) { p.Pattern = Pattern(9) },
		func(p *Parameters) { p.Light = Light(3) },
	}
	for i, mutate := range broken {
		p := testParams()
		mutate(&p)
		assert.ErrorIs(t, p.Validate(), ErrInvalidParameter, "case %d", i)
	}
}
