package report

import (
	"bytes"
	"fmt"
	"os"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// Fixed axis labels of every plot produced by a run.
const (
	xAxisLabel = "Binding energy / eV"
	yAxisLabel = "Average sweep intensity / a.u."
)

// Combined-plot artifact name, minus extension.
const CombinedPlotName = "Final combined plot"

// IndividualPlotName returns the per-file plot artifact name (no extension)
// for a scan file name, e.g. "survey.dat" -> "Figure for survey".
func IndividualPlotName(stripped string) string {
	return "Figure for " + stripped
}

// RenderScatterPNG renders a scatter plot of the two equal-length coordinate
// sequences and returns the PNG bytes, suitable both for saving to disk and
// for embedding into the PDF report. An empty or mismatched series is an
// error.
func RenderScatterPNG(x, y []float64) ([]byte, error) {
	if len(x) != len(y) {
		return nil, fmt.Errorf("series length mismatch: %d x values, %d y values", len(x), len(y))
	}
	if len(x) == 0 {
		return nil, fmt.Errorf("cannot render an empty series")
	}

	p := plot.New()
	p.X.Label.Text = xAxisLabel
	p.Y.Label.Text = yAxisLabel
	p.Add(plotter.NewGrid())

	pts := make(plotter.XYs, len(x))
	for i := range x {
		pts[i] = plotter.XY{X: x[i], Y: y[i]}
	}
	scatter, err := plotter.NewScatter(pts)
	if err != nil {
		return nil, fmt.Errorf("create scatter: %w", err)
	}
	scatter.GlyphStyle.Shape = draw.CircleGlyph{}
	scatter.GlyphStyle.Radius = vg.Points(1)
	p.Add(scatter)

	writer, err := p.WriterTo(vg.Points(600), vg.Points(400), "png")
	if err != nil {
		return nil, fmt.Errorf("create plot writer: %w", err)
	}
	buf := new(bytes.Buffer)
	if _, err := writer.WriteTo(buf); err != nil {
		return nil, fmt.Errorf("write plot: %w", err)
	}
	return buf.Bytes(), nil
}

// SaveScatterPlot renders the series and persists it at path, returning the
// PNG bytes for reuse.
func SaveScatterPlot(x, y []float64, path string) ([]byte, error) {
	png, err := RenderScatterPNG(x, y)
	if err != nil {
		return nil, err
	}
	if err := os.WriteFile(path, png, 0o644); err != nil {
		return nil, fmt.Errorf("save plot %s: %w", path, err)
	}
	return png, nil
}
