package report

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// Audit log file names. Fixed: downstream tooling greps for them.
const (
	StdDevLogName   = "std_file.txt"
	ExcludedLogName = "excluded_datapoints_file.txt"
	IncludedLogName = "included_datapoints_file.txt"
)

// AuditLogs owns the three per-run audit files. They are truncated once when
// opened, then appended to for the run's duration; every write goes straight
// to the file, so an interrupted run leaves each log as a valid prefix of a
// complete one. Write failures are fatal to the run; there are no retries.
type AuditLogs struct {
	stdDev   *os.File
	excluded *os.File
	included *os.File
}

// OpenAuditLogs truncates (or creates) the three audit files in dir and
// returns handles held until Close. Old runs' artifacts are never mixed with
// the current run.
func OpenAuditLogs(dir string) (*AuditLogs, error) {
	l := &AuditLogs{}
	targets := []struct {
		name string
		dst  **os.File
	}{
		{StdDevLogName, &l.stdDev},
		{ExcludedLogName, &l.excluded},
		{IncludedLogName, &l.included},
	}
	for _, t := range targets {
		f, err := os.OpenFile(filepath.Join(dir, t.name), os.O_CREATE|os.O_WRONLY|os.O_TRUNC|os.O_APPEND, 0o644)
		if err != nil {
			l.Close()
			return nil, fmt.Errorf("open audit log %s: %w", t.name, err)
		}
		*t.dst = f
	}
	return l, nil
}

// WriteStdDev appends one tab-delimited observation line:
// filename, datapoint number, file line number, standard deviation.
func (l *AuditLogs) WriteStdDev(file string, number, line int, stdDev float64) error {
	if _, err := fmt.Fprintf(l.stdDev, "%s\t%d\t%d\t%g\n", file, number, line, stdDev); err != nil {
		return fmt.Errorf("write %s: %w", StdDevLogName, err)
	}
	return nil
}

// WriteExcluded appends the full excluded-datapoint number list for a file.
func (l *AuditLogs) WriteExcluded(file string, numbers []int) error {
	if _, err := fmt.Fprintf(l.excluded, "%s\texcluded\t%v\n", file, numbers); err != nil {
		return fmt.Errorf("write %s: %w", ExcludedLogName, err)
	}
	return nil
}

// WriteIncluded appends the full included-datapoint number list for a file.
func (l *AuditLogs) WriteIncluded(file string, numbers []int) error {
	if _, err := fmt.Fprintf(l.included, "%s\tincluded\t%v\n", file, numbers); err != nil {
		return fmt.Errorf("write %s: %w", IncludedLogName, err)
	}
	return nil
}

// Close releases all three handles. Safe to call after a partial open.
func (l *AuditLogs) Close() error {
	var errs []error
	for _, f := range []*os.File{l.stdDev, l.excluded, l.included} {
		if f == nil {
			continue
		}
		if err := f.Close(); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
