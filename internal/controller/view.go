package controller

import (
	"fmt"

	"github.com/mouse-blink/undercover/internal/domain"
	m "github.com/mouse-blink/undercover/internal/model"
)

const percent = 100

type lineView struct {
	Line     int              `json:"line" yaml:"line"`
	Source   string           `json:"source" yaml:"source"`
	Hits     *int             `json:"hits" yaml:"hits"`
	Branches *m.BranchSummary `json:"branches,omitempty" yaml:"branches,omitempty"`
}

type resultView struct {
	Name           string     `json:"name" yaml:"name"`
	Kind           string     `json:"kind" yaml:"kind"`
	Path           string     `json:"path" yaml:"path"`
	FirstLine      int        `json:"first_line" yaml:"first_line"`
	LastLine       int        `json:"last_line" yaml:"last_line"`
	Location       string     `json:"location" yaml:"location"`
	Coverage       float64    `json:"coverage" yaml:"coverage"`
	UncoveredLines []int      `json:"uncovered_lines" yaml:"uncovered_lines"`
	Lines          []lineView `json:"lines" yaml:"lines"`
}

type reportView struct {
	Flagged int          `json:"flagged" yaml:"flagged"`
	Results []resultView `json:"results" yaml:"results"`
}

func newReportView(results []domain.Result, root m.Path) reportView {
	views := make([]resultView, 0, len(results))
	for _, r := range results {
		views = append(views, newResultView(r, root))
	}

	return reportView{Flagged: len(results), Results: views}
}

func newResultView(r domain.Result, root m.Path) resultView {
	path := r.RelativeFilePath(root)
	node := r.Node()

	lines := make([]lineView, 0, len(node.Source))
	for _, ld := range r.LinesWithData() {
		lines = append(lines, lineView{
			Line:     ld.Line,
			Source:   ld.Source,
			Hits:     ld.Hits,
			Branches: ld.BranchCoverage,
		})
	}

	uncovered := r.UncoveredLines()
	if uncovered == nil {
		uncovered = []int{}
	}

	return resultView{
		Name:           node.Name,
		Kind:           string(node.Kind),
		Path:           path,
		FirstLine:      node.FirstLine,
		LastLine:       node.LastLine,
		Location:       r.RelativeFilePathWithLines(root),
		Coverage:       r.CoverageFraction(),
		UncoveredLines: uncovered,
		Lines:          lines,
	}
}

func formatPercent(fraction float64) string {
	return fmt.Sprintf("%.2f%%", fraction*percent)
}
