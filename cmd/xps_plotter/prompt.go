package main

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/sharach/xps_plotter_go/internal/pipeline"
)

// prompter walks the interactive configuration protocol on the command's
// input and output streams.
type prompter struct {
	in  *bufio.Reader
	out io.Writer
}

func newPrompter(in io.Reader, out io.Writer) *prompter {
	return &prompter{in: bufio.NewReader(in), out: out}
}

func (p *prompter) ask(msg string) (string, error) {
	fmt.Fprint(p.out, msg)
	line, err := p.in.ReadString('\n')
	if err != nil && line == "" {
		return "", fmt.Errorf("read input: %w", err)
	}
	return strings.TrimSpace(line), nil
}

func (p *prompter) confirm() error {
	fmt.Fprintln(p.out, "You will be prompted for the settings of this run.")
	fmt.Fprintln(p.out, "Plots and audit logs are written into the folder holding the .dat files.")
	fmt.Fprintln(p.out, "(Note: files in subfolders will not be selected.)")
	answer, err := p.ask("To continue, press 'y' and then enter: ")
	if err != nil {
		return err
	}
	if answer != "y" {
		return fmt.Errorf("aborted: run again and enter just the letter 'y', without spaces or apostrophes")
	}
	return nil
}

func (p *prompter) askDirectory() (string, error) {
	dir, err := p.ask("Enter the folder which contains the .dat files (empty for the current folder): ")
	if err != nil {
		return "", err
	}
	if dir == "" {
		return ".", nil
	}
	return dir, nil
}

func (p *prompter) askFloat(what, msg string) (float64, error) {
	raw, err := p.ask(msg)
	if err != nil {
		return 0, err
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, fmt.Errorf("you did not enter a number for the %s", what)
	}
	if v < 0 {
		return 0, fmt.Errorf("the number you entered for the %s is negative", what)
	}
	return v, nil
}

func (p *prompter) askMode() (pipeline.OutputMode, error) {
	fmt.Fprintln(p.out, "You can choose the type of output plots produced:")
	fmt.Fprintln(p.out, "  'i' - individual plots for each file")
	fmt.Fprintln(p.out, "  'f' - only the final combined plot of all files")
	fmt.Fprintln(p.out, "  'b' - both")
	raw, err := p.ask("Enter your choice: ")
	if err != nil {
		return 0, err
	}
	return pipeline.ParseOutputMode(raw)
}
