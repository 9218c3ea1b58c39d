// Command planar is the terminal front-end of the line relationship
// analyzer: it collects coefficient triples (inline, from TOML scenario
// files, or through an interactive form), runs the pairwise analysis and
// prints or plots the result.
package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		_, _ = fmt.Fprintln(os.Stderr, color.RedString("error: %v", err))
		os.Exit(1)
	}
}
