package parser

import "fmt"

// HeaderLines is the number of column-header lines at the top of every scan
// file. They are skipped before data parsing begins.
const HeaderLines = 1

// ScanFileExt is the file extension of the experimental scan files.
const ScanFileExt = ".dat"

// Datapoint is one parsed data line of a scan file: the kinetic energy, the
// individual sweep intensities and the sum-of-sweeps column. Derived
// quantities (binding energy, mean intensity, standard deviation) live in the
// analysis package. A Datapoint is immutable once built.
type Datapoint struct {
	Number           int // 1-based datapoint ordinal within the file
	LineNumber       int // 1-based line ordinal, counting header lines
	KineticEnergy    float64
	SweepIntensities []float64
	SweepSum         float64 // precomputed sum column, or the single raw reading
	SweepCount       int     // 0 for single-reading lines with no sum column
}

// ScanFile is one input file reduced to its parsed datapoints. Lines that
// failed to parse are skipped and reported in Warnings; they still consume a
// datapoint number so the numbering in the audit logs matches the file.
type ScanFile struct {
	Name       string
	Datapoints []Datapoint
	Warnings   []string
}

// LineError reports a data line that could not be parsed. It is never fatal
// to the run: the line is skipped and the rest of the file is processed.
type LineError struct {
	LineNumber int
	Reason     string
}

func (e *LineError) Error() string {
	return fmt.Sprintf("line %d: %s", e.LineNumber, e.Reason)
}
