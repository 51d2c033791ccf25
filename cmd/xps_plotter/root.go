package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/sharach/xps_plotter_go/internal/pipeline"
)

type rootFlags struct {
	dir       string
	photon    float64
	threshold float64
	mode      string
	pdf       bool
	yes       bool
}

func newRootCommand() *cobra.Command {
	var flags rootFlags

	cmd := &cobra.Command{
		Use:   "xps_plotter",
		Short: "Average XPS scan sweeps, drop noisy datapoints and plot the result",
		Long: `xps_plotter creates averaged plots from experimental X-ray photoelectron
spectroscopy (XPS) scans. It reads every .dat file in the selected folder,
averages the repeated sweeps of each datapoint, excludes datapoints whose
standard deviation exceeds the chosen threshold, and writes per-file and
combined scatter plots together with plain-text audit logs of the included
and excluded datapoints.

Settings not given as flags are asked for interactively.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := resolveConfig(cmd, flags)
			if err != nil {
				return err
			}
			logger := slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), nil))
			summary, err := pipeline.Run(cfg, logger)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), renderSummary(summary))
			return nil
		},
	}

	cmd.Flags().StringVarP(&flags.dir, "dir", "d", ".", "directory containing the .dat scan files")
	cmd.Flags().Float64Var(&flags.photon, "photon-energy", 0, "photon energy of the scan in eV")
	cmd.Flags().Float64Var(&flags.threshold, "threshold", 0, "standard deviation above which datapoints are excluded")
	cmd.Flags().StringVarP(&flags.mode, "mode", "m", "", "plots to produce: 'i' (individual), 'f' (final combined) or 'b' (both)")
	cmd.Flags().BoolVar(&flags.pdf, "pdf", false, "also write a PDF run report")
	cmd.Flags().BoolVarP(&flags.yes, "yes", "y", false, "skip the confirmation prompt")

	return cmd
}

// resolveConfig builds the run config from flags, walking the interactive
// protocol for anything the user did not pass on the command line. Invalid
// input at any stage terminates the run; there is no retry-in-place.
func resolveConfig(cmd *cobra.Command, flags rootFlags) (pipeline.RunConfig, error) {
	cfg := pipeline.RunConfig{
		Dir:          flags.dir,
		PhotonEnergy: flags.photon,
		StdThreshold: flags.threshold,
		PDFReport:    flags.pdf,
	}

	changed := cmd.Flags().Changed
	if changed("photon-energy") && changed("threshold") && changed("mode") {
		mode, err := pipeline.ParseOutputMode(flags.mode)
		if err != nil {
			return cfg, err
		}
		cfg.Mode = mode
		return cfg, nil
	}

	if f, ok := cmd.InOrStdin().(*os.File); ok && !isTerminal(f) {
		return cfg, fmt.Errorf("stdin is not a terminal: pass --photon-energy, --threshold and --mode")
	}

	p := newPrompter(cmd.InOrStdin(), cmd.OutOrStdout())
	if !flags.yes {
		if err := p.confirm(); err != nil {
			return cfg, err
		}
	}
	var err error
	if !changed("dir") {
		if cfg.Dir, err = p.askDirectory(); err != nil {
			return cfg, err
		}
	}
	if !changed("photon-energy") {
		if cfg.PhotonEnergy, err = p.askFloat("photon energy", "Enter the photon energy in eV (no units): "); err != nil {
			return cfg, err
		}
	}
	if !changed("threshold") {
		if cfg.StdThreshold, err = p.askFloat("standard deviation threshold", "Enter the standard deviation threshold (no units, must be positive): "); err != nil {
			return cfg, err
		}
	}
	if changed("mode") {
		cfg.Mode, err = pipeline.ParseOutputMode(flags.mode)
	} else {
		cfg.Mode, err = p.askMode()
	}
	if err != nil {
		return cfg, err
	}
	return cfg, nil
}

func isTerminal(f *os.File) bool {
	fd := f.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
