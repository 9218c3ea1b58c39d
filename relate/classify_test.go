package relate_test

import (
	"testing"

	"github.com/katalvlaran/planar/line"
	"github.com/katalvlaran/planar/relate"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mustLine builds a line or fails the test; shared across the package tests.
func mustLine(t testing.TB, a, b, c float64) line.Line {
	t.Helper()
	l, err := line.New(a, b, c)
	require.NoError(t, err, "coefficients (%v, %v, %v)", a, b, c)

	return l
}

// TestClassify_Intersecting verifies non-proportional directions classify
// as Intersect.
func TestClassify_Intersecting(t *testing.T) {
	l1 := mustLine(t, 1, 1, -2) // x + y - 2 = 0
	l2 := mustLine(t, 1, -1, 0) // x - y = 0

	assert.Equal(t, relate.Intersect, relate.Classify(l1, l2))
}

// TestClassify_Parallel verifies proportional directions with a shifted
// constant term classify as Parallel.
func TestClassify_Parallel(t *testing.T) {
	l1 := mustLine(t, 1, 1, -2)
	l2 := mustLine(t, 1, 1, -4)

	assert.Equal(t, relate.Parallel, relate.Classify(l1, l2))
}

// TestClassify_Coincident verifies fully proportional triples classify as
// Coincident.
func TestClassify_Coincident(t *testing.T) {
	l1 := mustLine(t, 2, -3, 5)
	l2 := mustLine(t, 4, -6, 10)

	assert.Equal(t, relate.Coincident, relate.Classify(l1, l2))
}

// TestClassify_VerticalParallel verifies two distinct vertical lines are
// Parallel — the branch where naive ratio comparison would divide by zero.
func TestClassify_VerticalParallel(t *testing.T) {
	l1 := mustLine(t, 1, 0, -2) // x = 2
	l2 := mustLine(t, 1, 0, -5) // x = 5

	assert.Equal(t, relate.Parallel, relate.Classify(l1, l2))
}

// TestClassify_VerticalCoincident verifies scaled vertical triples are
// Coincident.
func TestClassify_VerticalCoincident(t *testing.T) {
	l1 := mustLine(t, 1, 0, -2) // x = 2
	l2 := mustLine(t, 3, 0, -6) // 3x = 6, same line

	assert.Equal(t, relate.Coincident, relate.Classify(l1, l2))
}

// TestClassify_HorizontalParallel covers the symmetric zero-A branch.
func TestClassify_HorizontalParallel(t *testing.T) {
	l1 := mustLine(t, 0, 1, -1) // y = 1
	l2 := mustLine(t, 0, 2, -6) // y = 3

	assert.Equal(t, relate.Parallel, relate.Classify(l1, l2))
}

// TestClassify_Symmetry verifies Classify(a, b) == Classify(b, a) across
// all three kinds.
func TestClassify_Symmetry(t *testing.T) {
	pairs := [][2]line.Line{
		{mustLine(t, 1, 1, -2), mustLine(t, 1, -1, 0)},  // intersect
		{mustLine(t, 1, 1, -2), mustLine(t, 1, 1, -4)},  // parallel
		{mustLine(t, 2, -3, 5), mustLine(t, 4, -6, 10)}, // coincident
		{mustLine(t, 1, 0, -3), mustLine(t, 0, 1, -2)},  // vertical vs horizontal
	}
	for _, p := range pairs {
		assert.Equal(t, relate.Classify(p[0], p[1]), relate.Classify(p[1], p[0]),
			"classification must be symmetric for %v and %v", p[0], p[1])
	}
}

// TestClassify_SelfIsCoincident verifies a line against its own
// coefficients is Coincident.
func TestClassify_SelfIsCoincident(t *testing.T) {
	for _, l := range []line.Line{
		mustLine(t, 1, 1, -2),
		mustLine(t, 1, 0, -3),
		mustLine(t, 0, 1, 7),
		mustLine(t, 2, -3, 5),
	} {
		assert.Equal(t, relate.Coincident, relate.Classify(l, l), "line %v vs itself", l)
	}
}

// TestKind_String verifies the report labels.
func TestKind_String(t *testing.T) {
	assert.Equal(t, "intersect", relate.Intersect.String())
	assert.Equal(t, "parallel", relate.Parallel.String())
	assert.Equal(t, "coincident", relate.Coincident.String())
}
