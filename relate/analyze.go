package relate

import (
	"sync"

	"github.com/katalvlaran/planar/line"
)

// AnalyzePair classifies one pair and, for an intersecting pair, fills in
// the intersection point and the acute angle. The indices i and j are
// recorded verbatim in the returned Relationship.
//
// Errors surface only when the solver invariants are violated, which
// cannot happen for lines built via line.New and a consistent tolerance.
func AnalyzePair(i, j int, l1, l2 line.Line) (Relationship, error) {
	rel := Relationship{I: i, J: j, Kind: Classify(l1, l2)}
	if rel.Kind != Intersect {
		return rel, nil
	}

	pt, err := Intersection(l1, l2)
	if err != nil {
		return Relationship{}, err
	}
	deg, err := Angle(l1, l2)
	if err != nil {
		return Relationship{}, err
	}
	rel.Point = &pt
	rel.Angle = &deg

	return rel, nil
}

// Analyze — batch analysis of every unordered pair of lines.
//
// Description:
//
//	Enumerates all pairs (i, j) with 0 ≤ i < j < n in ascending
//	lexicographic order and produces one Relationship per pair. Pairs are
//	independent; with Options.Workers > 1 they are dispatched across
//	goroutines, and each result is written into its canonical slot, so the
//	Report order never depends on completion order.
//
// Failure is atomic: on any error the returned Report is nil, never a
// partial prefix.
//
// Complexity:
//
//	Time   = O(n²) pairs × O(1) per pair
//	Memory = O(n²) for the report
//
// Errors:
//   - ErrTooFewLines — n < 2, detected before any pair processing.
//   - ErrBadOptions  — Workers < 0.
//   - ErrInvariant   — propagated solver precondition violation.
func Analyze(lines []line.Line, opts *Options) (Report, error) {
	n := len(lines)
	if n < 2 {
		return nil, ErrTooFewLines
	}

	workers := 1
	if opts != nil {
		if opts.Workers < 0 {
			return nil, ErrBadOptions
		}
		if opts.Workers > 1 {
			workers = opts.Workers
		}
	}

	pairs := n * (n - 1) / 2
	report := make(Report, pairs)

	if workers == 1 {
		k := 0
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				rel, err := AnalyzePair(i, j, lines[i], lines[j])
				if err != nil {
					return nil, err
				}
				report[k] = rel
				k++
			}
		}

		return report, nil
	}

	if workers > pairs {
		workers = pairs
	}

	type job struct {
		slot, i, j int
	}
	jobs := make(chan job)
	errs := make([]error, workers)

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func(w int) {
			defer wg.Done()
			for jb := range jobs {
				rel, err := AnalyzePair(jb.i, jb.j, lines[jb.i], lines[jb.j])
				if err != nil {
					errs[w] = err

					continue
				}
				report[jb.slot] = rel
			}
		}(w)
	}

	k := 0
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			jobs <- job{slot: k, i: i, j: j}
			k++
		}
	}
	close(jobs)
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}

	return report, nil
}
