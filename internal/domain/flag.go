package domain

import (
	"sort"
)

// FlagResults selects, for every changed line, the innermost result that
// contains it and flags that result when the line is uncovered. The inputs are
// left untouched; flagged copies are returned ordered by first line.
func FlagResults(results []Result, changed []int) []Result {
	flagged := make(map[int]struct{})

	for _, line := range changed {
		idx := innermost(results, line)
		if idx < 0 {
			continue
		}

		if results[idx].IsUncovered(line) {
			flagged[idx] = struct{}{}
		}
	}

	out := make([]Result, 0, len(flagged))

	for idx := range flagged {
		r := results[idx]
		r.flagged = true
		out = append(out, r)
	}

	sort.Slice(out, func(i, j int) bool {
		if out[i].FirstLine() != out[j].FirstLine() {
			return out[i].FirstLine() < out[j].FirstLine()
		}

		return out[i].LastLine() < out[j].LastLine()
	})

	return out
}

// innermost returns the index of the narrowest result enclosing line, or -1.
func innermost(results []Result, line int) int {
	best := -1

	for i, r := range results {
		if !r.node.Contains(line) {
			continue
		}

		if best < 0 {
			best = i
			continue
		}

		b := results[best]
		if r.FirstLine() > b.FirstLine() ||
			(r.FirstLine() == b.FirstLine() && r.LastLine() < b.LastLine()) {
			best = i
		}
	}

	return best
}
