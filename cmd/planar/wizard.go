package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/mattn/go-isatty"

	"github.com/katalvlaran/planar/line"
)

// prompter abstracts the interactive form so the wizard flow can be
// tested without a terminal.
type prompter interface {
	// Triple asks for the coefficients of the 1-based line number n.
	Triple(n int) (a, b, c float64, err error)
	// More asks whether to add another line after count lines.
	More(count int) (bool, error)
}

var prompt prompter = huhPrompter{}

var isTerminalFunc = func() bool { return isatty.IsTerminal(os.Stdin.Fd()) }

// collectLinesInteractive gathers coefficient triples until the user
// declines to add more (minimum two lines).
func collectLinesInteractive() ([]line.Line, error) {
	if !isTerminalFunc() {
		return nil, fmt.Errorf("interactive mode requires a terminal")
	}

	var lines []line.Line
	for {
		a, b, c, err := prompt.Triple(len(lines) + 1)
		if err != nil {
			return nil, err
		}
		l, err := line.New(a, b, c)
		if err != nil {
			return nil, friendlyErr(err)
		}
		lines = append(lines, l)

		if len(lines) < 2 {
			continue
		}
		more, err := prompt.More(len(lines))
		if err != nil {
			return nil, err
		}
		if !more {
			return lines, nil
		}
	}
}

// huhPrompter renders the forms with charmbracelet/huh.
type huhPrompter struct{}

func (huhPrompter) Triple(n int) (float64, float64, float64, error) {
	var a, b, c string
	form := huh.NewForm(huh.NewGroup(
		huh.NewInput().
			Title(fmt.Sprintf("Line %d — coefficient A", n)).
			Description("General form: Ax + By + C = 0").
			Value(&a).
			Validate(validateFloat),
		huh.NewInput().
			Title("Coefficient B").
			Value(&b).
			Validate(validateFloat),
		huh.NewInput().
			Title("Coefficient C").
			Value(&c).
			Validate(validateFloat),
	))
	if err := form.Run(); err != nil {
		return 0, 0, 0, err
	}

	return parseFloat(a), parseFloat(b), parseFloat(c), nil
}

func (huhPrompter) More(count int) (bool, error) {
	more := false
	form := huh.NewForm(huh.NewGroup(
		huh.NewConfirm().
			Title(fmt.Sprintf("%d lines so far — add another?", count)).
			Value(&more),
	))
	if err := form.Run(); err != nil {
		return false, err
	}

	return more, nil
}

// validateFloat accepts any parseable decimal input.
func validateFloat(s string) error {
	if _, err := strconv.ParseFloat(strings.TrimSpace(s), 64); err != nil {
		return fmt.Errorf("enter a number, e.g. -2 or 0.5")
	}

	return nil
}

// parseFloat converts validated form input; validation already ran.
func parseFloat(s string) float64 {
	v, _ := strconv.ParseFloat(strings.TrimSpace(s), 64)

	return v
}
