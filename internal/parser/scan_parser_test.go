package parser

import (
	"errors"
	"math"
	"os"
	"path/filepath"
	"testing"
)

func floatsEqual(a, b []float64) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if math.Abs(a[i]-b[i]) > 1e-12 {
			return false
		}
	}
	return true
}

func TestParseLineMultiSweep(t *testing.T) {
	d, err := ParseLine("1200.5\t10\t20\t30\t", 1, 2)
	if err != nil {
		t.Fatalf("ParseLine: %v", err)
	}
	if d.KineticEnergy != 1200.5 {
		t.Errorf("kinetic energy = %g, want 1200.5", d.KineticEnergy)
	}
	if !floatsEqual(d.SweepIntensities, []float64{10, 20}) {
		t.Errorf("sweep intensities = %v, want [10 20]", d.SweepIntensities)
	}
	if d.SweepSum != 30 {
		t.Errorf("sweep sum = %g, want 30", d.SweepSum)
	}
	if d.SweepCount != 2 {
		t.Errorf("sweep count = %d, want 2", d.SweepCount)
	}
	if d.Number != 1 || d.LineNumber != 2 {
		t.Errorf("numbering = (%d, %d), want (1, 2)", d.Number, d.LineNumber)
	}
}

func TestParseLineSingleSweep(t *testing.T) {
	// One-sweep files have no sum column: the single reading is both the
	// intensity and its own sum, with sweep count 0.
	d, err := ParseLine("1200.5\t42\t", 3, 4)
	if err != nil {
		t.Fatalf("ParseLine: %v", err)
	}
	if !floatsEqual(d.SweepIntensities, []float64{42}) {
		t.Errorf("sweep intensities = %v, want [42]", d.SweepIntensities)
	}
	if d.SweepSum != 42 {
		t.Errorf("sweep sum = %g, want 42", d.SweepSum)
	}
	if d.SweepCount != 0 {
		t.Errorf("sweep count = %d, want 0", d.SweepCount)
	}
}

func TestParseLineAlternateDelimiters(t *testing.T) {
	cases := []struct {
		name string
		raw  string
	}{
		{"comma", "1200.5,10,20,30,"},
		{"semicolon", "1200.5;10;20;30;"},
		{"space", "1200.5 10 20 30 "},
		{"no trailing delimiter", "1200.5\t10\t20\t30"},
		{"crlf", "1200.5\t10\t20\t30\t\r\n"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			d, err := ParseLine(tc.raw, 1, 2)
			if err != nil {
				t.Fatalf("ParseLine(%q): %v", tc.raw, err)
			}
			if d.SweepCount != 2 || d.SweepSum != 30 {
				t.Errorf("got count %d sum %g, want count 2 sum 30", d.SweepCount, d.SweepSum)
			}
		})
	}
}

func TestParseLineErrors(t *testing.T) {
	cases := []struct {
		name string
		raw  string
	}{
		{"non-numeric energy", "abc\t10\t"},
		{"non-numeric sweep", "1200.5\tx\t20\t30\t"},
		{"non-numeric sum", "1200.5\t10\t20\tx\t"},
		{"energy only", "1200.5\t"},
		{"empty line", ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ParseLine(tc.raw, 1, 7)
			if err == nil {
				t.Fatalf("ParseLine(%q): expected error", tc.raw)
			}
			var lineErr *LineError
			if !errors.As(err, &lineErr) {
				t.Fatalf("error type = %T, want *LineError", err)
			}
			if lineErr.LineNumber != 7 {
				t.Errorf("line number = %d, want 7", lineErr.LineNumber)
			}
		})
	}
}

func TestReadScanFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "survey.dat")
	content := "KE\tS1\tS2\tSum\t\n" +
		"100\t10\t20\t30\t\n" +
		"bad line\t\n" +
		"101\t15\t15\t30\t\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	sf, err := ReadScanFile(path)
	if err != nil {
		t.Fatalf("ReadScanFile: %v", err)
	}
	if sf.Name != "survey.dat" {
		t.Errorf("name = %q, want survey.dat", sf.Name)
	}
	if len(sf.Datapoints) != 2 {
		t.Fatalf("got %d datapoints, want 2", len(sf.Datapoints))
	}
	if len(sf.Warnings) != 1 {
		t.Fatalf("got %d warnings, want 1: %v", len(sf.Warnings), sf.Warnings)
	}
	// The skipped line still consumes its datapoint number, so the audit
	// numbering matches the file.
	if sf.Datapoints[0].Number != 1 || sf.Datapoints[0].LineNumber != 2 {
		t.Errorf("first datapoint numbering = (%d, %d), want (1, 2)",
			sf.Datapoints[0].Number, sf.Datapoints[0].LineNumber)
	}
	if sf.Datapoints[1].Number != 3 || sf.Datapoints[1].LineNumber != 4 {
		t.Errorf("second datapoint numbering = (%d, %d), want (3, 4)",
			sf.Datapoints[1].Number, sf.Datapoints[1].LineNumber)
	}
}

func TestReadScanFileMissing(t *testing.T) {
	_, err := ReadScanFile(filepath.Join(t.TempDir(), "nope.dat"))
	if err == nil {
		t.Fatal("expected error for missing file")
	}
}
