package main

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/planar/line"
	"github.com/katalvlaran/planar/relate"
	"github.com/katalvlaran/planar/scenario"
)

// newAnalyzeCmd builds the analyze subcommand.
func newAnalyzeCmd() *cobra.Command {
	var (
		scenarioPath string
		useExample   bool
		interactive  bool
		workers      int
	)
	cmd := &cobra.Command{
		Use:   "analyze [A,B,C ...]",
		Short: "Classify every pair of lines and report points and angles",
		Example: `  planar analyze 1,1,-2 1,-1,0 2,-3,5
  planar analyze --scenario lines.toml
  planar analyze --example
  planar analyze --interactive`,
		RunE: func(cmd *cobra.Command, args []string) error {
			set, err := resolveLines(args, scenarioPath, useExample, interactive)
			if err != nil {
				return err
			}

			opts := relate.DefaultOptions()
			opts.Workers = workers
			report, err := relate.Analyze(set.Lines, &opts)
			if err != nil {
				return friendlyErr(err)
			}
			printReport(cmd.OutOrStdout(), set, report)

			return nil
		},
	}
	cmd.Flags().StringVarP(&scenarioPath, "scenario", "s", "", "TOML scenario file with [[line]] tables")
	cmd.Flags().BoolVar(&useExample, "example", false, "use the built-in example line set")
	cmd.Flags().BoolVarP(&interactive, "interactive", "i", false, "collect coefficients through an interactive form")
	cmd.Flags().IntVar(&workers, "workers", 1, "goroutines used for pair processing")

	return cmd
}

// resolveLines picks the input source: interactive form, scenario file,
// builtin example, or inline triples — in that order of precedence.
func resolveLines(args []string, scenarioPath string, useExample, interactive bool) (*scenario.Set, error) {
	switch {
	case interactive:
		lines, err := collectLinesInteractive()
		if err != nil {
			return nil, err
		}

		return &scenario.Set{Lines: lines}, nil
	case scenarioPath != "":
		return scenario.Load(scenarioPath)
	case useExample:
		return scenario.Builtin(), nil
	case len(args) > 0:
		lines, err := parseTriples(args)
		if err != nil {
			return nil, err
		}

		return &scenario.Set{Lines: lines}, nil
	default:
		return nil, errors.New("no input: pass A,B,C triples, --scenario, --example or --interactive")
	}
}

// parseTriples converts "A,B,C" arguments into validated lines.
func parseTriples(args []string) ([]line.Line, error) {
	lines := make([]line.Line, 0, len(args))
	for i, arg := range args {
		parts := strings.Split(arg, ",")
		if len(parts) != 3 {
			return nil, fmt.Errorf("argument %d: %q is not an A,B,C triple", i+1, arg)
		}
		var coefs [3]float64
		for k, p := range parts {
			v, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
			if err != nil {
				return nil, fmt.Errorf("argument %d: %q is not a number", i+1, strings.TrimSpace(p))
			}
			coefs[k] = v
		}
		l, err := line.New(coefs[0], coefs[1], coefs[2])
		if err != nil {
			return nil, fmt.Errorf("argument %d: %w", i+1, friendlyErr(err))
		}
		lines = append(lines, l)
	}

	return lines, nil
}

// friendlyErr maps engine sentinels onto actionable user-facing messages.
func friendlyErr(err error) error {
	switch {
	case errors.Is(err, line.ErrDegenerate):
		return errors.New("at least one of A or B must be non-zero")
	case errors.Is(err, line.ErrNonFinite):
		return errors.New("coefficients must be finite numbers")
	case errors.Is(err, relate.ErrTooFewLines), errors.Is(err, scenario.ErrTooFewLines):
		return errors.New("need at least two lines")
	default:
		return err
	}
}

// printReport writes the line list and one colored verdict per pair.
// Pairs are shown 1-based; the engine report stays 0-based.
func printReport(w io.Writer, set *scenario.Set, report relate.Report) {
	if set.Name != "" {
		_, _ = fmt.Fprintf(w, "Scenario: %s\n", set.Name)
	}
	for i, l := range set.Lines {
		_, _ = fmt.Fprintf(w, "L%d: %s\n", i+1, l)
	}
	_, _ = fmt.Fprintln(w)

	for _, rel := range report {
		pair := fmt.Sprintf("L%d & L%d", rel.I+1, rel.J+1)
		switch rel.Kind {
		case relate.Intersect:
			_, _ = fmt.Fprintln(w, color.GreenString("%s: intersect at (%.2f, %.2f), angle %.2f°",
				pair, rel.Point.X, rel.Point.Y, *rel.Angle))
		case relate.Parallel:
			_, _ = fmt.Fprintln(w, color.YellowString("%s: parallel (distinct lines)", pair))
		case relate.Coincident:
			_, _ = fmt.Fprintln(w, color.CyanString("%s: coincident (same line)", pair))
		}
	}
}
