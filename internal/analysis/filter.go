package analysis

import "github.com/sharach/xps_plotter_go/internal/parser"

// Filter applies the user's standard-deviation threshold to datapoints as
// they stream through the run, maintaining the per-file and combined plot
// series and the per-file inclusion record.
type Filter struct {
	Threshold float64
}

// Apply classifies one datapoint. The coordinate pair is appended to both
// series first; when the standard deviation exceeds the threshold the pair
// is removed again at exactly the appended index, so ties in binding energy
// or intensity can never delete the wrong entry. A standard deviation equal
// to the threshold is included.
//
// A nil datapoint (no current datapoint, e.g. a call at a loop boundary) is
// an explicit no-op and returns Unevaluated.
func (f Filter) Apply(d *parser.Datapoint, stats PointStats, file, combined *PlotSeries, rec *InclusionRecord) Classification {
	if d == nil {
		return Unevaluated
	}

	fileIdx := file.Append(stats.BindingEnergy, stats.MeanIntensity)
	combinedIdx := combined.Append(stats.BindingEnergy, stats.MeanIntensity)

	if stats.StdDev > f.Threshold {
		_ = file.RemoveAt(fileIdx)
		_ = combined.RemoveAt(combinedIdx)
		rec.Excluded = append(rec.Excluded, d.Number)
		return Excluded
	}
	rec.Included = append(rec.Included, d.Number)
	return Included
}
