package controller

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/mouse-blink/undercover/internal/domain"
	m "github.com/mouse-blink/undercover/internal/model"
)

const (
	successMessage = "✅ No coverage is missing in latest changes"
	warningMessage = "👮 some methods have no test coverage! Please add tests for the methods listed below"
	toolName       = "undercover"
)

// prettyStyles groups the lipgloss styles of the pretty output.
type prettyStyles struct {
	brandOK   lipgloss.Style
	brandFail lipgloss.Style
	dim       lipgloss.Style
	hit       lipgloss.Style
	miss      lipgloss.Style
	meta      lipgloss.Style
	metaMiss  lipgloss.Style
}

func newPrettyStyles(r *lipgloss.Renderer) prettyStyles {
	return prettyStyles{
		brandOK:   r.NewStyle().Bold(true).Foreground(lipgloss.Color("2")),
		brandFail: r.NewStyle().Bold(true).Foreground(lipgloss.Color("1")),
		dim:       r.NewStyle().Faint(true).Foreground(lipgloss.Color("8")),
		hit:       r.NewStyle().Foreground(lipgloss.Color("2")),
		miss:      r.NewStyle().Foreground(lipgloss.Color("1")),
		meta:      r.NewStyle().Italic(true).Faint(true).Foreground(lipgloss.Color("8")),
		metaMiss:  r.NewStyle().Italic(true).Foreground(lipgloss.Color("1")),
	}
}

// PrettyFormatter prints flagged results with colorized source listings.
type PrettyFormatter struct {
	out    io.Writer
	root   m.Path
	styles prettyStyles
}

// NewPrettyFormatter creates a PrettyFormatter writing to opts.Out. Colors
// are chosen from the capabilities of that writer.
func NewPrettyFormatter(opts Options) *PrettyFormatter {
	return &PrettyFormatter{
		out:    opts.Out,
		root:   opts.Root,
		styles: newPrettyStyles(lipgloss.NewRenderer(opts.Out)),
	}
}

// Render writes the report for results.
func (p *PrettyFormatter) Render(results []domain.Result) error {
	_, err := fmt.Fprintln(p.out, p.format(results))
	return err
}

func (p *PrettyFormatter) format(results []domain.Result) string {
	if len(results) == 0 {
		return p.styles.brandOK.Render(toolName) + ": " + successMessage
	}

	parts := make([]string, 0, len(results)+1)
	parts = append(parts, p.styles.brandFail.Render(toolName)+": "+warningMessage)

	pad := strings.Repeat(" ", 5+len(strconv.Itoa(len(results)-1)))

	for idx, res := range results {
		node := res.Node()

		header := fmt.Sprintf("🚨 %d) node `%s` type: %s,\n%sloc: %s, coverage: %s\n",
			idx+1, node.Name, node.Kind, pad, res.RelativeFilePathWithLines(p.root), formatPercent(res.CoverageFraction()))

		parts = append(parts, header+p.listing(res))
	}

	return strings.Join(parts, "\n")
}

// listing renders every source line of the result with its hit data.
func (p *PrettyFormatter) listing(res domain.Result) string {
	width := len(strconv.Itoa(res.LastLine()))

	lines := make([]string, 0, len(res.Node().Source))
	for _, ld := range res.LinesWithData() {
		cols := []string{p.formatLine(width, ld), p.formatHits(ld.Hits)}
		if ld.BranchCoverage != nil {
			cols = append(cols, p.formatBranches(*ld.BranchCoverage))
		}

		lines = append(lines, strings.Join(cols, " "))
	}

	return strings.Join(lines, "\n")
}

func (p *PrettyFormatter) formatLine(width int, ld domain.LineData) string {
	text := fmt.Sprintf("%*d: %s", width, ld.Line, ld.Source)

	switch {
	case strings.TrimSpace(ld.Source) == "" || ld.Hits == nil:
		return p.styles.dim.Render(text)
	case *ld.Hits > 0:
		return p.styles.hit.Render(text)
	default:
		return p.styles.miss.Render(text)
	}
}

func (p *PrettyFormatter) formatHits(hits *int) string {
	if hits == nil {
		return p.styles.meta.Render("hits: n/a")
	}

	return p.styles.meta.Render(fmt.Sprintf("hits: %d", *hits))
}

func (p *PrettyFormatter) formatBranches(summary m.BranchSummary) string {
	text := fmt.Sprintf("%d/%d", summary.Covered, summary.Total)
	if !summary.Complete() {
		return p.styles.meta.Render("branches: ") + p.styles.metaMiss.Render(text)
	}

	return p.styles.meta.Render("branches: " + text)
}
