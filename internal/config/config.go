package config

import "github.com/iburimskiy/diffraction/internal/optics"

const (
	WindowWidth  = 1024
	WindowHeight = 768

	// The field is shaded at 1/RenderScale of the window and stretched.
	RenderScale = 2

	FrameRingSize = 120

	// Control panel
	PanelX      = 12
	PanelY      = 12
	PanelWidth  = 280
	PanelHeight = 248
	LineHeight  = 16
	SwatchSize  = 10

	// Control ranges, matching the slider bounds of the controls
	MinSlitWidth       = 0.01
	MaxSlitWidth       = 0.5
	SlitWidthStep      = 0.01
	MinSlitSeparation  = 0.1
	MaxSlitSeparation  = 2.0
	SlitSeparationStep = 0.05
	MinNumSlits        = 2
	MaxNumSlits        = 20
	WavelengthStep     = 5
	MinBloom           = 0.5
	MaxBloom           = 5.0
	BloomStep          = 0.1
)

// DefaultParameters is the start-up and reset state.
func DefaultParameters() optics.Parameters {
	return optics.Parameters{
		Pattern:        optics.Double,
		Light:          optics.Monochromatic,
		SlitWidth:      0.1,
		SlitSeparation: 0.5,
		NumSlits:       5,
		Wavelength:     550,
		Bloom:          2.5,
	}
}
