package analysis

import (
	"errors"
	"math"
	"testing"

	"github.com/sharach/xps_plotter_go/internal/parser"
)

const tolerance = 1e-12

func almostEqual(a, b, tol float64) bool {
	return math.Abs(a-b) <= tol
}

func TestComputeStatsTwoSweeps(t *testing.T) {
	// Two sweeps [10, 20] with sum 30: mean 15, population std dev 5.
	d := parser.Datapoint{
		KineticEnergy:    100,
		SweepIntensities: []float64{10, 20},
		SweepSum:         30,
		SweepCount:       2,
	}
	stats, err := ComputeStats(d, 1000)
	if err != nil {
		t.Fatalf("ComputeStats: %v", err)
	}
	if !almostEqual(stats.BindingEnergy, 900, tolerance) {
		t.Errorf("binding energy = %g, want 900", stats.BindingEnergy)
	}
	if !almostEqual(stats.MeanIntensity, 15, tolerance) {
		t.Errorf("mean intensity = %g, want 15", stats.MeanIntensity)
	}
	if !almostEqual(stats.StdDev, 5, tolerance) {
		t.Errorf("std dev = %g, want 5", stats.StdDev)
	}
}

func TestComputeStatsSingleSweep(t *testing.T) {
	// A one-sweep line: mean equals the raw reading and the single-sample
	// variance is exactly 0.
	d := parser.Datapoint{
		KineticEnergy:    250,
		SweepIntensities: []float64{42.5},
		SweepSum:         42.5,
		SweepCount:       0,
	}
	stats, err := ComputeStats(d, 1000)
	if err != nil {
		t.Fatalf("ComputeStats: %v", err)
	}
	if !almostEqual(stats.MeanIntensity, 42.5, tolerance) {
		t.Errorf("mean intensity = %g, want 42.5", stats.MeanIntensity)
	}
	if stats.StdDev != 0 {
		t.Errorf("std dev = %g, want exactly 0", stats.StdDev)
	}
}

func TestComputeStatsMeanReconstructsSum(t *testing.T) {
	cases := []parser.Datapoint{
		{SweepIntensities: []float64{1, 2, 3}, SweepSum: 6, SweepCount: 3},
		{SweepIntensities: []float64{0.25, 0.75}, SweepSum: 1, SweepCount: 2},
		{SweepIntensities: []float64{7.5}, SweepSum: 7.5, SweepCount: 0},
	}
	for _, d := range cases {
		stats, err := ComputeStats(d, 0)
		if err != nil {
			t.Fatalf("ComputeStats(%v): %v", d, err)
		}
		divisor := d.SweepCount
		if divisor < 1 {
			divisor = 1
		}
		if !almostEqual(stats.MeanIntensity*float64(divisor), d.SweepSum, 1e-9) {
			t.Errorf("mean %g x %d does not reconstruct sum %g",
				stats.MeanIntensity, divisor, d.SweepSum)
		}
	}
}

func TestComputeStatsStdDevZeroIffEqual(t *testing.T) {
	equal := parser.Datapoint{SweepIntensities: []float64{3, 3, 3}, SweepSum: 9, SweepCount: 3}
	stats, err := ComputeStats(equal, 0)
	if err != nil {
		t.Fatal(err)
	}
	if stats.StdDev != 0 {
		t.Errorf("equal sweeps: std dev = %g, want 0", stats.StdDev)
	}

	unequal := parser.Datapoint{SweepIntensities: []float64{3, 3.1, 3}, SweepSum: 9.1, SweepCount: 3}
	stats, err = ComputeStats(unequal, 0)
	if err != nil {
		t.Fatal(err)
	}
	if stats.StdDev <= 0 {
		t.Errorf("unequal sweeps: std dev = %g, want > 0", stats.StdDev)
	}
}

func TestComputeStatsNoIntensities(t *testing.T) {
	_, err := ComputeStats(parser.Datapoint{SweepSum: 1}, 1000)
	if !errors.Is(err, ErrNoIntensities) {
		t.Fatalf("error = %v, want ErrNoIntensities", err)
	}
}
