package controller

import (
	"fmt"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/term"

	"github.com/mouse-blink/undercover/internal/domain"
	m "github.com/mouse-blink/undercover/internal/model"
)

// TUI implements an interactive browser of flagged results using Bubble Tea.
type TUI struct {
	output io.Writer
	root   m.Path
	// run starts the program; replaced in tests.
	run func(model tea.Model) error
}

// NewTUI creates a new TUI.
func NewTUI(opts Options) *TUI {
	t := &TUI{output: opts.Out, root: opts.Root}
	t.run = t.runProgram

	return t
}

// Render opens the browser for results. With nothing flagged it prints the
// success line and returns without entering the alternate screen.
func (t *TUI) Render(results []domain.Result) error {
	if len(results) == 0 {
		_, err := fmt.Fprintf(t.output, "%s: %s\n", toolName, successMessage)
		return err
	}

	pretty := NewPrettyFormatter(Options{Out: t.output, Root: t.root})
	model := newResultsModel(t.items(results, pretty))

	if f, ok := t.output.(*os.File); ok {
		width, height, err := term.GetSize(int(f.Fd()))
		if err == nil {
			model = model.resize(width, height)
		}
	}

	return t.run(model)
}

func (t *TUI) items(results []domain.Result, pretty *PrettyFormatter) []resultItem {
	items := make([]resultItem, 0, len(results))

	for _, res := range results {
		items = append(items, resultItem{
			name:     res.Node().Name,
			kind:     string(res.Node().Kind),
			location: res.RelativeFilePathWithLines(t.root),
			coverage: res.CoverageFraction(),
			listing:  pretty.listing(res),
		})
	}

	return items
}

func (t *TUI) runProgram(model tea.Model) error {
	program := tea.NewProgram(model, tea.WithOutput(t.output), tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("run tui: %w", err)
	}

	return nil
}
