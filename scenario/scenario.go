package scenario

import (
	"bytes"
	"errors"
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"

	"github.com/katalvlaran/planar/line"
)

// ErrTooFewLines indicates a scenario file with fewer than two [[line]]
// tables; a pairwise analysis needs at least two lines.
var ErrTooFewLines = errors.New("scenario: need at least two [[line]] tables")

// Set is a named, validated collection of lines ready for analysis.
type Set struct {
	Name        string
	Description string
	Lines       []line.Line
}

// file mirrors the TOML document shape before validation.
type file struct {
	Name        string  `toml:"name"`
	Description string  `toml:"description"`
	Line        []coefs `toml:"line"`
}

type coefs struct {
	A float64 `toml:"a"`
	B float64 `toml:"b"`
	C float64 `toml:"c"`
}

// Parse decodes and validates a TOML scenario document.
// Unknown keys are rejected so typos surface immediately.
func Parse(data []byte) (*Set, error) {
	var doc file
	dec := toml.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("scenario: parse: %w", err)
	}
	if len(doc.Line) < 2 {
		return nil, ErrTooFewLines
	}

	set := &Set{Name: doc.Name, Description: doc.Description}
	for i, c := range doc.Line {
		l, err := line.New(c.A, c.B, c.C)
		if err != nil {
			return nil, fmt.Errorf("scenario: line %d: %w", i+1, err)
		}
		set.Lines = append(set.Lines, l)
	}

	return set, nil
}

// Load reads and parses a scenario file from disk.
func Load(path string) (*Set, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("scenario: read %s: %w", path, err)
	}

	return Parse(data)
}

// Builtin returns the canned example set: three mutually intersecting
// lines, the same triple the original worked example uses.
func Builtin() *Set {
	return &Set{
		Name:        "task example",
		Description: "three mutually intersecting lines",
		Lines: []line.Line{
			mustLine(1, 1, -2), // x + y - 2 = 0
			mustLine(1, -1, 0), // x - y = 0
			mustLine(2, -3, 5), // 2x - 3y + 5 = 0
		},
	}
}

// mustLine builds a compile-time-known valid line; a failure here is a
// programmer error, so it panics.
func mustLine(a, b, c float64) line.Line {
	l, err := line.New(a, b, c)
	if err != nil {
		panic(err)
	}

	return l
}
