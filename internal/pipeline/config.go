package pipeline

import (
	"fmt"
	"math"
	"os"
	"strings"
)

// OutputMode selects which plot artifacts a run produces.
type OutputMode int

const (
	// ModeIndividual produces one plot per scan file and no combined plot.
	ModeIndividual OutputMode = iota
	// ModeFinal produces only the combined plot of all files.
	ModeFinal
	// ModeBoth produces both.
	ModeBoth
)

func (m OutputMode) String() string {
	switch m {
	case ModeIndividual:
		return "individual"
	case ModeFinal:
		return "final"
	case ModeBoth:
		return "both"
	default:
		return fmt.Sprintf("OutputMode(%d)", int(m))
	}
}

// IncludesIndividual reports whether per-file plots are produced.
func (m OutputMode) IncludesIndividual() bool {
	return m == ModeIndividual || m == ModeBoth
}

// IncludesCombined reports whether the combined plot is produced.
func (m OutputMode) IncludesCombined() bool {
	return m == ModeFinal || m == ModeBoth
}

// ParseOutputMode normalizes a user selection once at startup. Accepted,
// case-insensitively: "i"/"individual", "f"/"final", "b"/"both".
func ParseOutputMode(s string) (OutputMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "i", "individual":
		return ModeIndividual, nil
	case "f", "final":
		return ModeFinal, nil
	case "b", "both":
		return ModeBoth, nil
	default:
		return 0, fmt.Errorf("invalid output mode %q: enter 'i' (individual), 'f' (final) or 'b' (both)", s)
	}
}

// RunConfig is the immutable configuration of one run.
type RunConfig struct {
	Dir          string  // directory holding the scan files and all outputs
	PhotonEnergy float64 // eV, must be >= 0
	StdThreshold float64 // must be >= 0
	Mode         OutputMode
	PDFReport    bool // also write a PDF run report
}

// Validate checks the config before any output file is touched.
func (c RunConfig) Validate() error {
	if strings.TrimSpace(c.Dir) == "" {
		return fmt.Errorf("no directory selected")
	}
	info, err := os.Stat(c.Dir)
	if err != nil {
		return fmt.Errorf("selected directory: %w", err)
	}
	if !info.IsDir() {
		return fmt.Errorf("selected path %s is not a directory", c.Dir)
	}
	if math.IsNaN(c.PhotonEnergy) || c.PhotonEnergy < 0 {
		return fmt.Errorf("photon energy must be zero or a positive number, got %g", c.PhotonEnergy)
	}
	if math.IsNaN(c.StdThreshold) || c.StdThreshold < 0 {
		return fmt.Errorf("standard deviation threshold must be zero or a positive number, got %g", c.StdThreshold)
	}
	switch c.Mode {
	case ModeIndividual, ModeFinal, ModeBoth:
	default:
		return fmt.Errorf("invalid output mode %d", int(c.Mode))
	}
	return nil
}
