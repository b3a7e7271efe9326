package controller

import (
	"bytes"
	"errors"
	"testing"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleModel() resultsModel {
	var out bytes.Buffer

	tui := NewTUI(Options{Out: &out, Root: "/project"})

	return newResultsModel(tui.items(sampleResults(), NewPrettyFormatter(Options{Out: &out, Root: "/project"})))
}

func TestTUI_RenderNothingFlagged(t *testing.T) {
	var out bytes.Buffer

	tui := NewTUI(Options{Out: &out})
	tui.run = func(tea.Model) error {
		t.Fatal("program must not start without results")
		return nil
	}

	require.NoError(t, tui.Render(nil))
	assert.Equal(t, "undercover: ✅ No coverage is missing in latest changes\n", out.String())
}

func TestTUI_RenderStartsProgram(t *testing.T) {
	var (
		out     bytes.Buffer
		started tea.Model
	)

	tui := NewTUI(Options{Out: &out, Root: "/project"})
	tui.run = func(model tea.Model) error {
		started = model
		return nil
	}

	require.NoError(t, tui.Render(sampleResults()))

	model, ok := started.(resultsModel)
	require.True(t, ok)
	require.Len(t, model.items, 2)
	assert.Equal(t, "Add", model.items[0].name)
	assert.Equal(t, "calc.go:3:8", model.items[0].location)
	assert.Contains(t, model.items[0].listing, "4: if a > 0 {")
	assert.Equal(t, "Counter.Inc", model.items[1].name)
}

func TestTUI_RenderPropagatesProgramError(t *testing.T) {
	tui := NewTUI(Options{Out: &bytes.Buffer{}})
	runErr := errors.New("no tty")
	tui.run = func(tea.Model) error { return runErr }

	require.ErrorIs(t, tui.Render(sampleResults()), runErr)
}

func TestResultsModel_SelectsFirstItem(t *testing.T) {
	model := sampleModel()

	assert.Equal(t, 0, model.selected)
	assert.Contains(t, model.detail.View(), "func Add(a, b int) int {")
	assert.Nil(t, model.Init())
}

func TestResultsModel_Navigation(t *testing.T) {
	model := sampleModel()

	updated, _ := model.Update(tea.KeyMsg{Type: tea.KeyDown})
	model = updated.(resultsModel)

	assert.Equal(t, 1, model.selected)
	assert.Contains(t, model.detail.View(), "c.n++")

	updated, _ = model.Update(tea.KeyMsg{Type: tea.KeyUp})
	model = updated.(resultsModel)

	assert.Equal(t, 0, model.selected)
}

func TestResultsModel_Quit(t *testing.T) {
	model := sampleModel()

	for _, key := range []tea.KeyMsg{
		{Type: tea.KeyRunes, Runes: []rune("q")},
		{Type: tea.KeyCtrlC},
	} {
		_, cmd := model.Update(key)
		require.NotNil(t, cmd)
		assert.IsType(t, tea.QuitMsg{}, cmd())
	}
}

func TestResultsModel_Resize(t *testing.T) {
	model := sampleModel()

	updated, cmd := model.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	model = updated.(resultsModel)

	assert.Nil(t, cmd)
	assert.Equal(t, 120, model.width)
	assert.Equal(t, 40, model.height)
	assert.Equal(t, 116, model.detail.Width)
	assert.Equal(t, 116, model.list.Width())

	tiny, _ := model.Update(tea.WindowSizeMsg{Width: 20, Height: 5})
	assert.GreaterOrEqual(t, tiny.(resultsModel).detail.Height, minPane)
}

func TestResultsModel_ScrollDetail(t *testing.T) {
	model := sampleModel()
	model = model.resize(80, chromeHeight+2*minPane)

	updated, cmd := model.Update(tea.KeyMsg{Type: tea.KeyPgDown})
	model = updated.(resultsModel)

	assert.Nil(t, cmd)
	assert.Positive(t, model.detail.YOffset)

	updated, _ = model.Update(tea.KeyMsg{Type: tea.KeyPgUp})
	assert.Equal(t, 0, updated.(resultsModel).detail.YOffset)
}

func TestResultsModel_FilterReceivesShortcutKeys(t *testing.T) {
	model := sampleModel()

	for _, r := range "/func bq" {
		updated, _ := model.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
		model = updated.(resultsModel)
	}

	assert.Equal(t, list.Filtering, model.list.FilterState())
	assert.Equal(t, "func bq", model.list.FilterValue())
	assert.Equal(t, 0, model.detail.YOffset)
}

func TestResultsModel_View(t *testing.T) {
	view := sampleModel().View()

	assert.Contains(t, view, "undercover: uncovered changes")
	assert.Contains(t, view, "Flagged nodes: 2")
	assert.Contains(t, view, "Counter.Inc (method)")
	assert.Contains(t, view, "q quit")
}

func TestResultItem_FilterValue(t *testing.T) {
	item := resultItem{name: "Add", location: "calc.go:3:8"}

	assert.Equal(t, "Add calc.go:3:8", item.FilterValue())
}

func TestTruncateToWidth(t *testing.T) {
	tests := []struct {
		text  string
		width int
		want  string
	}{
		{text: "short", width: 10, want: "short"},
		{text: "exactly", width: 7, want: "exactly"},
		{text: "truncated", width: 6, want: "trunc…"},
		{text: "abc", width: 1, want: "…"},
		{text: "abc", width: 0, want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			assert.Equal(t, tt.want, truncateToWidth(tt.text, tt.width))
		})
	}
}

func TestCoverageColor(t *testing.T) {
	assert.Equal(t, coverageColor(0.9), coverageColor(0.8))
	assert.NotEqual(t, coverageColor(0.8), coverageColor(0.5))
	assert.NotEqual(t, coverageColor(0.5), coverageColor(0.1))
}
