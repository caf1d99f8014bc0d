package render

import (
	"fmt"
	"io"
	"math"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/iburimskiy/diffraction/internal/optics"
)

// Series is one intensity curve across the centre row of the screen.
type Series struct {
	Name   string
	Values []float64
}

// Profile samples the raw intensity along V = 0.5 at n points. Monochromatic
// light gives one series; white light gives one per spectral sample.
func Profile(p optics.Parameters, n int) (xs []float64, series []Series) {
	xs = make([]float64, n)
	positions := make([]optics.Position, n)
	for i := range n {
		u := (float64(i) + 0.5) / float64(n)
		positions[i] = optics.Position{U: u, V: 0.5}
		xs[i] = (u - 0.5) * 10
	}

	wavelengths := []float64{p.Wavelength}
	if p.Light == optics.White {
		wavelengths = optics.SpectralSamples[:]
	}
	for _, nm := range wavelengths {
		s := Series{Name: fmt.Sprintf("%g nm", nm), Values: make([]float64, n)}
		for i, pos := range positions {
			s.Values[i] = optics.IntensityAt(pos, p.Pattern, p, nm)
		}
		series = append(series, s)
	}
	return xs, series
}

// WriteProfileChart renders the intensity profile of p as an HTML line chart.
func WriteProfileChart(w io.Writer, p optics.Parameters, n int) error {
	xs, series := Profile(p, n)

	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			BackgroundColor: "#ffffff",
			Width:           "100%",
			Height:          "600px",
			PageTitle:       "Diffraction intensity profile",
		}),
		charts.WithTitleOpts(opts.Title{
			Title:    fmt.Sprintf("%s, %s light", p.Pattern, p.Light),
			Subtitle: fmt.Sprintf("a = %.2f mm, d = %.2f mm, N = %d", p.SlitWidth, p.SlitSeparation, p.NumSlits),
		}),
		charts.WithDataZoomOpts(opts.DataZoom{
			Type:       "inside",
			Start:      0,
			End:        100,
			XAxisIndex: []int{0},
		}),
		charts.WithLegendOpts(opts.Legend{
			Show:         opts.Bool(true),
			SelectedMode: "multiple",
			Type:         "scroll",
			Top:          "bottom",
		}),
		charts.WithTooltipOpts(opts.Tooltip{
			Show:    opts.Bool(true),
			Trigger: "axis",
		}),
		charts.WithXAxisOpts(opts.XAxis{
			Name: "x",
			SplitLine: &opts.SplitLine{
				Show: opts.Bool(true),
			},
		}),
		charts.WithYAxisOpts(opts.YAxis{
			Name: "I",
			Type: "value",
			SplitLine: &opts.SplitLine{
				Show: opts.Bool(true),
			},
		}),
	)

	labels := make([]string, len(xs))
	for i, x := range xs {
		labels[i] = fmt.Sprintf("%.2f", x)
	}
	line.SetXAxis(labels)
	for _, s := range series {
		data := make([]opts.LineData, len(s.Values))
		for i, v := range s.Values {
			data[i] = opts.LineData{Value: round(v, 6)}
		}
		line.AddSeries(s.Name, data)
	}

	if err := line.Render(w); err != nil {
		return fmt.Errorf("failed to render chart: %w", err)
	}
	return nil
}

func round(v float64, digits int) float64 {
	k := math.Pow(10, float64(digits))
	return math.Round(v*k) / k
}
