package main

import "github.com/spf13/cobra"

// newRootCmd assembles the planar command tree.
func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "planar",
		Short: "Analyze relationships between straight lines in the plane",
		Long: `planar classifies every pair of lines given in general form

    Ax + By + C = 0

as intersecting, parallel or coincident, and for intersecting pairs
reports the intersection point and the acute angle between the lines.

Lines can be passed inline as A,B,C triples, loaded from a TOML scenario
file, or entered through an interactive form.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.AddCommand(newAnalyzeCmd(), newPlotCmd())

	return cmd
}
