package pipeline

import (
	"fmt"
	"log/slog"
	"path/filepath"
	"sort"
	"strings"

	"github.com/sharach/xps_plotter_go/internal/analysis"
	"github.com/sharach/xps_plotter_go/internal/parser"
	"github.com/sharach/xps_plotter_go/internal/report"
)

// PDFReportName is the artifact name of the optional PDF run report.
const PDFReportName = "run_report.pdf"

// Run executes one full batch over cfg.Dir: reset the audit logs, process
// every matching scan file in name order, write the requested plots and
// return the run summary. Files are processed strictly sequentially; the
// combined series is the single shared accumulator and is owned here.
func Run(cfg RunConfig, logger *slog.Logger) (*report.RunSummary, error) {
	if logger == nil {
		logger = slog.Default()
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	logs, err := report.OpenAuditLogs(cfg.Dir)
	if err != nil {
		return nil, err
	}
	defer logs.Close()

	paths, err := filepath.Glob(filepath.Join(cfg.Dir, "*"+parser.ScanFileExt))
	if err != nil {
		return nil, fmt.Errorf("discover scan files: %w", err)
	}
	sort.Strings(paths)
	if len(paths) == 0 {
		logger.Warn("no scan files found; check that the selected directory holds the .dat files",
			"dir", cfg.Dir)
	}

	summary := &report.RunSummary{
		Directory:    cfg.Dir,
		PhotonEnergy: cfg.PhotonEnergy,
		StdThreshold: cfg.StdThreshold,
	}
	filter := analysis.Filter{Threshold: cfg.StdThreshold}
	combined := &analysis.PlotSeries{}
	var plots []report.NamedPlot

	for _, path := range paths {
		fileSummary, plot, err := runFile(cfg, path, filter, combined, logs, summary, logger)
		if err != nil {
			return nil, err
		}
		summary.Files = append(summary.Files, fileSummary)
		if plot != nil {
			plots = append(plots, *plot)
		}
	}

	if cfg.Mode.IncludesCombined() {
		if combined.Len() > 0 {
			logger.Info("creating combined plot", "datapoints", combined.Len())
			path := filepath.Join(cfg.Dir, report.CombinedPlotName+".png")
			png, err := report.SaveScatterPlot(combined.X(), combined.Y(), path)
			if err != nil {
				return nil, err
			}
			plots = append(plots, report.NamedPlot{Name: report.CombinedPlotName, PNG: png})
		} else {
			logger.Warn("no included datapoints; skipping combined plot")
		}
	}

	if cfg.PDFReport {
		path := filepath.Join(cfg.Dir, PDFReportName)
		if err := report.BuildPDFReport(path, *summary, plots); err != nil {
			return nil, err
		}
		logger.Info("wrote PDF run report", "path", path)
	}

	return summary, nil
}

// runFile drives one scan file through parse, statistics, threshold filter
// and audit logging, and renders its plot when the output mode asks for one.
func runFile(cfg RunConfig, path string, filter analysis.Filter, combined *analysis.PlotSeries,
	logs *report.AuditLogs, summary *report.RunSummary, logger *slog.Logger) (report.FileSummary, *report.NamedPlot, error) {

	sf, err := parser.ReadScanFile(path)
	if err != nil {
		return report.FileSummary{}, nil, err
	}
	logger.Info("processing scan file", "file", sf.Name, "datapoints", len(sf.Datapoints))
	for _, w := range sf.Warnings {
		logger.Warn("skipping malformed line", "file", sf.Name, "detail", w)
	}

	fileSeries := &analysis.PlotSeries{}
	rec := &analysis.InclusionRecord{}
	fs := report.FileSummary{Name: sf.Name, SingleSweep: len(sf.Datapoints) > 0}

	for i := range sf.Datapoints {
		d := &sf.Datapoints[i]
		if d.SweepCount > 0 {
			fs.SingleSweep = false
		}

		stats, err := analysis.ComputeStats(*d, cfg.PhotonEnergy)
		if err != nil {
			logger.Warn("skipping datapoint", "file", sf.Name, "datapoint", d.Number, "reason", err)
			continue
		}
		if err := logs.WriteStdDev(sf.Name, d.Number, d.LineNumber, stats.StdDev); err != nil {
			return report.FileSummary{}, nil, err
		}
		filter.Apply(d, stats, fileSeries, combined, rec)

		fs.Datapoints++
		if fs.Datapoints == 1 || stats.StdDev > fs.MaxStdDev {
			fs.MaxStdDev = stats.StdDev
		}
		summary.Observations++
		if summary.Observations == 1 || stats.StdDev > summary.MaxStdDev {
			summary.MaxStdDev = stats.StdDev
		}
	}
	fs.Included = len(rec.Included)
	fs.Excluded = len(rec.Excluded)

	if err := logs.WriteExcluded(sf.Name, rec.Excluded); err != nil {
		return report.FileSummary{}, nil, err
	}
	if err := logs.WriteIncluded(sf.Name, rec.Included); err != nil {
		return report.FileSummary{}, nil, err
	}

	if !cfg.Mode.IncludesIndividual() {
		return fs, nil, nil
	}
	if fileSeries.Len() == 0 {
		logger.Warn("no included datapoints; skipping plot", "file", sf.Name)
		return fs, nil, nil
	}
	logger.Info("creating plot", "file", sf.Name)
	name := report.IndividualPlotName(strings.TrimSuffix(sf.Name, parser.ScanFileExt))
	png, err := report.SaveScatterPlot(fileSeries.X(), fileSeries.Y(), filepath.Join(cfg.Dir, name+".png"))
	if err != nil {
		return report.FileSummary{}, nil, err
	}
	return fs, &report.NamedPlot{Name: name, PNG: png}, nil
}
