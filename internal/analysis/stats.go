package analysis

import (
	"errors"
	"math"

	"github.com/sharach/xps_plotter_go/internal/parser"
)

// ErrNoIntensities reports a datapoint with an empty sweep-intensity list,
// over which no variance can be computed. The datapoint is skipped.
var ErrNoIntensities = errors.New("datapoint has no sweep intensities to compute a standard deviation over")

// ComputeStats derives binding energy, mean intensity and population
// standard deviation for one datapoint. Pure; no side effects.
//
// The mean divides the sum column by the sweep count, except for one-sweep
// lines (sweep count 0) where the "sum" is the single raw reading and the
// divisor is 1. The standard deviation uses the population divisor (the
// number of sweeps, not sweeps-1) with the mean intensity as reference, so a
// one-sweep line always yields exactly 0.
func ComputeStats(d parser.Datapoint, photonEnergy float64) (PointStats, error) {
	if len(d.SweepIntensities) == 0 {
		return PointStats{}, ErrNoIntensities
	}

	divisor := d.SweepCount
	if divisor < 1 {
		divisor = 1
	}
	mean := d.SweepSum / float64(divisor)

	sumSq := 0.0
	for _, intensity := range d.SweepIntensities {
		diff := intensity - mean
		sumSq += diff * diff
	}
	variance := sumSq / float64(len(d.SweepIntensities))

	return PointStats{
		BindingEnergy: photonEnergy - d.KineticEnergy,
		MeanIntensity: mean,
		StdDev:        math.Sqrt(variance),
	}, nil
}
