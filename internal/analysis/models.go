package analysis

import "fmt"

// PointStats holds the derived quantities of a single datapoint.
type PointStats struct {
	BindingEnergy float64 // photon energy minus kinetic energy
	MeanIntensity float64 // sweep sum divided by the sweep count (or 1)
	StdDev        float64 // population standard deviation of the sweeps
}

// Classification is the threshold filter's verdict for one datapoint.
type Classification int

const (
	Unevaluated Classification = iota
	Included
	Excluded
)

func (c Classification) String() string {
	switch c {
	case Included:
		return "included"
	case Excluded:
		return "excluded"
	default:
		return "unevaluated"
	}
}

// PlotSeries is an ordered, paired sequence of plot coordinates, scoped
// either to one scan file or to the whole run. Appends and removals always
// touch both slices together, so the x and y lengths never diverge.
type PlotSeries struct {
	x []float64
	y []float64
}

// Append adds a coordinate pair and returns its index, so a later removal
// can target exactly this entry even when values repeat.
func (s *PlotSeries) Append(x, y float64) int {
	s.x = append(s.x, x)
	s.y = append(s.y, y)
	return len(s.x) - 1
}

// RemoveAt deletes the pair at index i from both slices.
func (s *PlotSeries) RemoveAt(i int) error {
	if i < 0 || i >= len(s.x) {
		return fmt.Errorf("series index %d out of range [0,%d)", i, len(s.x))
	}
	s.x = append(s.x[:i], s.x[i+1:]...)
	s.y = append(s.y[:i], s.y[i+1:]...)
	return nil
}

func (s *PlotSeries) Len() int { return len(s.x) }

// X returns the binding-energy coordinates.
func (s *PlotSeries) X() []float64 { return s.x }

// Y returns the mean-intensity coordinates.
func (s *PlotSeries) Y() []float64 { return s.y }

// InclusionRecord collects, per scan file, the datapoint numbers the filter
// kept and dropped, in processing order.
type InclusionRecord struct {
	Excluded []int
	Included []int
}
