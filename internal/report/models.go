package report

// FileSummary is the per-file audit outcome carried into the terminal
// summary table and the optional PDF report.
type FileSummary struct {
	Name        string
	Datapoints  int // datapoints processed (skipped lines not counted)
	Included    int
	Excluded    int
	MaxStdDev   float64 // valid only when Datapoints > 0
	SingleSweep bool    // file held only one-sweep datapoints
}

// RunSummary aggregates one whole run.
type RunSummary struct {
	Directory    string
	PhotonEnergy float64
	StdThreshold float64
	Files        []FileSummary
	MaxStdDev    float64 // highest standard deviation across the run
	Observations int     // total datapoints with a computed standard deviation
}

// NamedPlot pairs a rendered PNG with the artifact name it was saved under.
type NamedPlot struct {
	Name string
	PNG  []byte
}
