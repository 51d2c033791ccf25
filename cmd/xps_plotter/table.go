package main

import (
	"fmt"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"github.com/sharach/xps_plotter_go/internal/report"
)

// renderSummary formats the end-of-run summary: one table row per scan file
// plus the advisory notes of the original workflow.
func renderSummary(s *report.RunSummary) string {
	var b strings.Builder

	if len(s.Files) > 0 {
		tw := table.NewWriter()
		tw.SetStyle(table.StyleRounded)
		tw.AppendHeader(table.Row{"File", "Datapoints", "Included", "Excluded", "Max std dev"})
		anySingleSweep := false
		for _, f := range s.Files {
			maxStd := "-"
			if f.Datapoints > 0 {
				maxStd = fmt.Sprintf("%g", f.MaxStdDev)
			}
			tw.AppendRow(table.Row{f.Name, f.Datapoints, f.Included, f.Excluded, maxStd})
			if f.SingleSweep {
				anySingleSweep = true
			}
		}
		tw.SetColumnConfigs([]table.ColumnConfig{
			{Number: 1, Align: text.AlignLeft},
			{Number: 2, Align: text.AlignRight},
			{Number: 3, Align: text.AlignRight},
			{Number: 4, Align: text.AlignRight},
			{Number: 5, Align: text.AlignRight},
		})
		b.WriteString(tw.Render())
		b.WriteString("\n")

		if anySingleSweep {
			b.WriteString("Note: plots of files with only 1 sweep cannot be improved by this program.\n")
			b.WriteString("Improve such plots by collecting more experimental data for those files.\n")
		}
	}

	if s.Observations > 0 {
		fmt.Fprintf(&b, "The highest standard deviation in the set was %g.\n", s.MaxStdDev)
		b.WriteString("Try out different standard deviation thresholds to see what suits your needs.\n")
	} else {
		b.WriteString("No datapoints were processed.\n")
	}
	return b.String()
}
