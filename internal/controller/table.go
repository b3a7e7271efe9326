package controller

import (
	"bytes"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/olekukonko/tablewriter"

	"github.com/mouse-blink/undercover/internal/domain"
	m "github.com/mouse-blink/undercover/internal/model"
)

// TableFormatter prints one summary row per flagged node.
type TableFormatter struct {
	out  io.Writer
	root m.Path
}

// NewTableFormatter creates a new TableFormatter.
func NewTableFormatter(opts Options) *TableFormatter {
	return &TableFormatter{out: opts.Out, root: opts.Root}
}

// Render writes the summary table, or the success line when nothing was flagged.
func (s *TableFormatter) Render(results []domain.Result) error {
	if len(results) == 0 {
		s.printf("%s: %s\n", toolName, successMessage)
		return nil
	}

	var tableBuffer bytes.Buffer

	table := tablewriter.NewWriter(&tableBuffer)
	table.SetHeader([]string{"#", "Node", "Type", "Location", "Coverage", "Uncovered"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetAutoWrapText(false)
	table.SetColumnAlignment([]int{
		tablewriter.ALIGN_RIGHT,
		tablewriter.ALIGN_LEFT,
		tablewriter.ALIGN_LEFT,
		tablewriter.ALIGN_LEFT,
		tablewriter.ALIGN_RIGHT,
		tablewriter.ALIGN_LEFT,
	})

	var total float64

	for idx, res := range results {
		node := res.Node()
		coverage := res.CoverageFraction()
		total += coverage

		table.Append([]string{
			strconv.Itoa(idx + 1),
			node.Name,
			string(node.Kind),
			res.RelativeFilePathWithLines(s.root),
			formatPercent(coverage),
			joinLines(res.UncoveredLines()),
		})
	}

	table.SetFooter([]string{
		"",
		fmt.Sprintf("Flagged %d", len(results)),
		"",
		"",
		formatPercent(total / float64(len(results))),
		"",
	})

	table.Render()
	s.printf("%s: %s\n\n%s", toolName, warningMessage, tableBuffer.String())

	return nil
}

func (s *TableFormatter) printf(format string, args ...interface{}) {
	_, _ = fmt.Fprintf(s.out, format, args...)
}

func joinLines(lines []int) string {
	parts := make([]string, 0, len(lines))
	for _, l := range lines {
		parts = append(parts, strconv.Itoa(l))
	}

	return strings.Join(parts, ",")
}
