package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/planar/relate"
	"github.com/katalvlaran/planar/render"
)

// newPlotCmd builds the plot subcommand.
func newPlotCmd() *cobra.Command {
	var (
		scenarioPath  string
		useExample    bool
		out           string
		width, height int
		noGrid        bool
	)
	cmd := &cobra.Command{
		Use:   "plot [A,B,C ...]",
		Short: "Render the line set and its intersections to a PNG file",
		Example: `  planar plot -o trio.png 1,1,-2 1,-1,0 2,-3,5
  planar plot --example -o example.png
  planar plot --scenario lines.toml --width 1280 --height 960`,
		RunE: func(cmd *cobra.Command, args []string) error {
			set, err := resolveLines(args, scenarioPath, useExample, false)
			if err != nil {
				return err
			}
			report, err := relate.Analyze(set.Lines, nil)
			if err != nil {
				return friendlyErr(err)
			}

			opts := render.DefaultOptions()
			opts.Width, opts.Height = width, height
			opts.ShowGrid = !noGrid

			f, err := os.Create(out)
			if err != nil {
				return fmt.Errorf("create %s: %w", out, err)
			}
			defer func() { _ = f.Close() }()
			if err := render.WritePNG(f, set.Lines, report, &opts); err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "wrote %s (%d lines, %d pairs)\n",
				out, len(set.Lines), len(report))

			return nil
		},
	}
	cmd.Flags().StringVarP(&scenarioPath, "scenario", "s", "", "TOML scenario file with [[line]] tables")
	cmd.Flags().BoolVar(&useExample, "example", false, "use the built-in example line set")
	cmd.Flags().StringVarP(&out, "out", "o", "lines.png", "output PNG path")
	cmd.Flags().IntVar(&width, "width", 960, "image width in pixels")
	cmd.Flags().IntVar(&height, "height", 720, "image height in pixels")
	cmd.Flags().BoolVar(&noGrid, "no-grid", false, "hide the coordinate grid")

	return cmd
}
