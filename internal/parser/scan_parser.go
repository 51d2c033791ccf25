package parser

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// delimiter is the canonical field separator of the experimental scan files.
const delimiter = "\t"

// alternateDelimiters are separators occasionally found in exported files;
// they are normalized to the canonical delimiter before splitting.
var alternateDelimiters = []string{",", ";", " "}

func normalizeDelimiters(line string) string {
	for _, alt := range alternateDelimiters {
		line = strings.ReplaceAll(line, alt, delimiter)
	}
	return line
}

// ParseLine interprets one raw data line. The source format ends every data
// line with a delimiter, so the split produces a trailing empty field which
// is dropped before the fields are counted. Of the remaining fields the first
// is the kinetic energy; when two or more follow, the last of those is the
// precomputed sum-of-sweeps column and the fields strictly between are the
// individual sweep intensities. A single remaining field is a one-sweep
// reading that doubles as its own sum (sweep count 0, divisor 1).
func ParseLine(raw string, number, lineNumber int) (Datapoint, error) {
	line := normalizeDelimiters(strings.TrimRight(raw, "\r\n"))
	fields := strings.Split(line, delimiter)
	if n := len(fields); n > 0 && fields[n-1] == "" {
		fields = fields[:n-1]
	}
	if len(fields) < 2 {
		return Datapoint{}, &LineError{
			LineNumber: lineNumber,
			Reason:     fmt.Sprintf("expected an energy field and at least one intensity field, got %d fields", len(fields)),
		}
	}

	kinetic, err := parseField(fields[0], "kinetic energy", lineNumber)
	if err != nil {
		return Datapoint{}, err
	}

	d := Datapoint{
		Number:        number,
		LineNumber:    lineNumber,
		KineticEnergy: kinetic,
	}

	rest := fields[1:]
	if len(rest) == 1 {
		// One-sweep file: no sum column, the single reading stands in for it.
		reading, err := parseField(rest[0], "intensity", lineNumber)
		if err != nil {
			return Datapoint{}, err
		}
		d.SweepIntensities = []float64{reading}
		d.SweepSum = reading
		d.SweepCount = 0
		return d, nil
	}

	sum, err := parseField(rest[len(rest)-1], "sweep sum", lineNumber)
	if err != nil {
		return Datapoint{}, err
	}
	sweeps := make([]float64, 0, len(rest)-1)
	for _, field := range rest[:len(rest)-1] {
		v, err := parseField(field, "sweep intensity", lineNumber)
		if err != nil {
			return Datapoint{}, err
		}
		sweeps = append(sweeps, v)
	}
	d.SweepIntensities = sweeps
	d.SweepSum = sum
	d.SweepCount = len(sweeps)
	return d, nil
}

func parseField(field, what string, lineNumber int) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(field), 64)
	if err != nil {
		return 0, &LineError{
			LineNumber: lineNumber,
			Reason:     fmt.Sprintf("could not convert %s value %q to a number", what, field),
		}
	}
	return v, nil
}

// ReadScanFile reads a whole scan file into memory, skipping the header
// lines and collecting a warning for every data line that fails to parse.
// The file handle is released before the function returns.
func ReadScanFile(path string) (*ScanFile, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open scan file: %w", err)
	}
	defer file.Close()

	sf := &ScanFile{Name: filepath.Base(path)}

	scanner := bufio.NewScanner(file)
	lineNumber := 0
	for scanner.Scan() {
		lineNumber++
		if lineNumber <= HeaderLines {
			continue
		}
		raw := scanner.Text()
		if strings.TrimSpace(raw) == "" {
			continue
		}
		number := lineNumber - HeaderLines
		d, err := ParseLine(raw, number, lineNumber)
		if err != nil {
			sf.Warnings = append(sf.Warnings, fmt.Sprintf("datapoint %d: %v", number, err))
			continue
		}
		sf.Datapoints = append(sf.Datapoints, d)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read scan file %s: %w", sf.Name, err)
	}
	return sf, nil
}
