package domain

import (
	"fmt"
	"path/filepath"
	"strings"

	m "github.com/mouse-blink/undercover/internal/model"
)

// LineData aligns one physical source line with its coverage, ready for
// rendering. Hits is nil when the line carries no line-level instrumentation.
type LineData struct {
	Line           int
	Source         string
	Hits           *int
	BranchCoverage *m.BranchSummary
}

// Result is the coverage verdict for one node of one file.
type Result struct {
	node      m.Node
	filePath  m.Path
	store     TupleStore
	evaluator Evaluator
	flagged   bool
}

// NewResult scopes fileCoverage to the interior of node and evaluates it.
// The returned Result is never flagged; see FlagResults.
func NewResult(node m.Node, fileCoverage []m.Datum, filePath m.Path) Result {
	store := NewTupleStore(fileCoverage, node.FirstLine, node.LastLine)

	return Result{
		node:      node,
		filePath:  filePath,
		store:     store,
		evaluator: NewEvaluator(store),
	}
}

// Node returns the evaluated node.
func (r Result) Node() m.Node { return r.node }

// FilePath returns the path of the file containing the node.
func (r Result) FilePath() m.Path { return r.filePath }

// FirstLine returns the node's first line.
func (r Result) FirstLine() int { return r.node.FirstLine }

// LastLine returns the node's last line.
func (r Result) LastLine() int { return r.node.LastLine }

// Name returns the node's name.
func (r Result) Name() string { return r.node.Name }

// Coverage returns the node's interior coverage data in report order.
func (r Result) Coverage() []m.Datum { return r.store.All() }

// IsFlagged reports whether the node was flagged for the report.
func (r Result) IsFlagged() bool { return r.flagged }

// IsUncovered reports whether line is uncovered inside this node.
func (r Result) IsUncovered(line int) bool {
	return r.evaluator.IsLineUncovered(line)
}

// CoverageFraction returns the node's line-granular, branch-dominant coverage.
func (r Result) CoverageFraction() float64 {
	return r.evaluator.CoverageFraction()
}

// BranchSummary returns the branch counts at line, if any.
func (r Result) BranchSummary(line int) (m.BranchSummary, bool) {
	return r.evaluator.BranchSummary(line)
}

// UncoveredLines returns the sorted uncovered lines of the node.
func (r Result) UncoveredLines() []int {
	return r.evaluator.UncoveredLines()
}

// FilePathWithLines returns a path:first:last locator.
func (r Result) FilePathWithLines() string {
	return r.locate(string(r.filePath))
}

// RelativeFilePath returns the file path relative to root when the file lies
// under root, and the full path otherwise. An empty root keeps the full path.
func (r Result) RelativeFilePath(root m.Path) string {
	if root == "" {
		return string(r.filePath)
	}

	absRoot, err := filepath.Abs(string(root))
	if err != nil {
		return string(r.filePath)
	}

	rel, err := filepath.Rel(absRoot, string(r.filePath))
	if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return string(r.filePath)
	}

	return rel
}

// RelativeFilePathWithLines is FilePathWithLines using RelativeFilePath.
func (r Result) RelativeFilePathWithLines(root m.Path) string {
	return r.locate(r.RelativeFilePath(root))
}

func (r Result) locate(path string) string {
	return fmt.Sprintf("%s:%d:%d", path, r.node.FirstLine, r.node.LastLine)
}

// LinesWithData zips every source line of the node with its coverage.
// Line hits are looked up by line number, so the result does not depend on
// the order of the report. When a report lists a line twice the first entry
// wins.
func (r Result) LinesWithData() []LineData {
	hits := make(map[int]int)

	for _, d := range r.store.Lines() {
		if _, ok := hits[d.Line]; !ok {
			hits[d.Line] = d.Hits
		}
	}

	out := make([]LineData, 0, len(r.node.Source))

	for _, src := range r.node.Source {
		ld := LineData{Line: src.Number, Source: src.Text}

		if h, ok := hits[src.Number]; ok {
			ld.Hits = &h
		}

		if summary, ok := r.evaluator.BranchSummary(src.Number); ok {
			ld.BranchCoverage = &summary
		}

		out = append(out, ld)
	}

	return out
}

func (r Result) String() string {
	return fmt.Sprintf("Result{name: %s, coverage: %v}", r.node.Name, r.CoverageFraction())
}
