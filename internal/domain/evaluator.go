package domain

import (
	"math"
	"sort"

	m "github.com/mouse-blink/undercover/internal/model"
)

const fractionPrecision = 10000

// Evaluator answers coverage questions about a single node.
// Branch data always dominates line data: one untaken branch marks its line
// as uncovered regardless of the line's hit count.
type Evaluator struct {
	store TupleStore
}

// NewEvaluator builds an Evaluator over store.
func NewEvaluator(store TupleStore) Evaluator {
	return Evaluator{store: store}
}

// IsLineUncovered reports whether line has an untaken branch or a line datum
// with zero hits. Lines without any data are not uncovered.
func (e Evaluator) IsLineUncovered(line int) bool {
	for _, d := range e.store.data {
		if d.IsBranch() && d.Line == line && d.Hits == 0 {
			return true
		}
	}

	for _, d := range e.store.data {
		if d.IsLine() && d.Line == line {
			return d.Hits == 0
		}
	}

	return false
}

// BranchSummary counts the branches at line. ok is false when the line has
// no branch data.
func (e Evaluator) BranchSummary(line int) (summary m.BranchSummary, ok bool) {
	branches := e.store.Branches(line)
	if len(branches) == 0 {
		return m.BranchSummary{}, false
	}

	summary.Total = len(branches)

	for _, b := range branches {
		if b.Hits > 0 {
			summary.Covered++
		}
	}

	return summary, true
}

// CoverageFraction returns the share of distinct instrumented lines that are
// fully covered, rounded to four decimals. A line scores zero when any of its
// branches or its line datum has no hits. A node without data is fully
// covered.
func (e Evaluator) CoverageFraction() float64 {
	scores := make(map[int]int)

	for _, d := range e.store.data {
		if _, ok := scores[d.Line]; !ok {
			scores[d.Line] = 1
		}

		if d.Hits == 0 {
			scores[d.Line] = 0
		}
	}

	if len(scores) == 0 {
		return 1.0
	}

	covered := 0
	for _, score := range scores {
		covered += score
	}

	fraction := float64(covered) / float64(len(scores))

	return math.Round(fraction*fractionPrecision) / fractionPrecision
}

// UncoveredLines returns, in ascending order, every instrumented line for
// which IsLineUncovered holds.
func (e Evaluator) UncoveredLines() []int {
	seen := make(map[int]struct{})

	var lines []int

	for _, d := range e.store.data {
		if _, ok := seen[d.Line]; ok {
			continue
		}

		seen[d.Line] = struct{}{}

		if e.IsLineUncovered(d.Line) {
			lines = append(lines, d.Line)
		}
	}

	sort.Ints(lines)

	return lines
}
