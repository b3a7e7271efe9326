package controller

import (
	"fmt"
	"io"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const (
	defaultWidth  = 80
	defaultHeight = 24
	coverageWidth = 8
	// title, summary, footer and borders around the two panes
	chromeHeight = 9
	minPane      = 3
)

// resultDelegate renders one flagged node per row.
type resultDelegate struct{}

func (d resultDelegate) Height() int  { return 1 }
func (d resultDelegate) Spacing() int { return 0 }
func (d resultDelegate) Update(_ tea.Msg, _ *list.Model) tea.Cmd {
	return nil
}

func (d resultDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	res, ok := item.(resultItem)
	if !ok {
		return
	}

	var nameStyle, coverageStyle lipgloss.Style

	width := m.Width() - coverageWidth - 2

	if index == m.Index() {
		nameStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("0")).
			Background(lipgloss.Color("6")).
			Bold(true)
		coverageStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("0")).
			Background(lipgloss.Color("6")).
			Bold(true).
			Width(coverageWidth).
			Align(lipgloss.Right)
	} else {
		nameStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("14"))
		coverageStyle = lipgloss.NewStyle().
			Foreground(coverageColor(res.coverage)).
			Bold(true).
			Width(coverageWidth).
			Align(lipgloss.Right)
	}

	label := fmt.Sprintf("%s (%s) %s", res.name, res.kind, res.location)

	_, _ = fmt.Fprintf(w, "%s  %s",
		coverageStyle.Render(formatPercent(res.coverage)),
		nameStyle.Render(truncateToWidth(label, width)),
	)
}

func coverageColor(fraction float64) lipgloss.Color {
	switch {
	case fraction >= 0.8:
		return lipgloss.Color("2")
	case fraction >= 0.5:
		return lipgloss.Color("11")
	default:
		return lipgloss.Color("1")
	}
}

func truncateToWidth(text string, width int) string {
	if width <= 0 {
		return ""
	}

	if lipgloss.Width(text) <= width {
		return text
	}

	const ellipsis = "…"

	if width <= 1 {
		return ellipsis
	}

	maxWidth := width - lipgloss.Width(ellipsis)

	currentWidth := 0

	result := make([]rune, 0, len(text))
	for _, r := range text {
		rWidth := lipgloss.Width(string(r))
		if currentWidth+rWidth > maxWidth {
			break
		}

		result = append(result, r)
		currentWidth += rWidth
	}

	return string(result) + ellipsis
}

// resultsModel lists flagged nodes and shows the listing of the selected one.
type resultsModel struct {
	width    int
	height   int
	items    []resultItem
	list     list.Model
	detail   viewport.Model
	selected int
}

func newResultsModel(items []resultItem) resultsModel {
	listItems := make([]list.Item, 0, len(items))
	for _, it := range items {
		listItems = append(listItems, it)
	}

	l := list.New(listItems, resultDelegate{}, defaultWidth, minPane)
	l.SetShowPagination(false)
	l.SetShowFilter(true)
	l.SetShowHelp(false)
	l.SetShowTitle(false)
	l.SetShowStatusBar(false)
	l.FilterInput.Placeholder = "Filter by node…"

	model := resultsModel{
		items:    items,
		list:     l,
		detail:   viewport.New(defaultWidth, minPane),
		selected: -1,
	}

	return model.resize(defaultWidth, defaultHeight)
}

func (m resultsModel) Init() tea.Cmd {
	return nil
}

// resize splits the available height between the list and the detail pane.
func (m resultsModel) resize(width, height int) resultsModel {
	m.width = width
	m.height = height

	available := height - chromeHeight
	listHeight := max(available/3, minPane)
	detailHeight := max(available-listHeight, minPane)

	m.list.SetWidth(width - 4)
	m.list.SetHeight(listHeight)
	m.detail.Width = width - 4
	m.detail.Height = detailHeight

	return m.syncDetail()
}

// syncDetail loads the listing of the selected item into the viewport.
func (m resultsModel) syncDetail() resultsModel {
	item, ok := m.list.SelectedItem().(resultItem)
	if !ok {
		m.detail.SetContent("")
		m.selected = -1

		return m
	}

	if m.list.Index() != m.selected {
		m.selected = m.list.Index()
		m.detail.SetContent(item.listing)
		m.detail.GotoTop()
	}

	return m
}

func (m resultsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return m.resize(msg.Width, msg.Height), nil

	case tea.KeyMsg:
		// Printable shortcuts belong to the filter input while it is open.
		filtering := m.list.FilterState() == list.Filtering

		switch key := msg.String(); {
		case key == "ctrl+c", key == "q" && !filtering:
			return m, tea.Quit
		case key == "pgdown", !filtering && (key == "f" || key == " "):
			m.detail.HalfPageDown()
			return m, nil
		case key == "pgup", !filtering && key == "b":
			m.detail.HalfPageUp()
			return m, nil
		}

		m.list, cmd = m.list.Update(msg)

		return m.syncDetail(), cmd
	}

	m.list, cmd = m.list.Update(msg)

	return m, cmd
}

func (m resultsModel) View() string {
	titleStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("1")).
		Bold(true).
		Padding(1, 0, 0, 2)

	summaryStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("252")).
		Padding(0, 0, 1, 2)

	accentStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("6"))

	paneStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("6")).
		Margin(0, 1)

	footerStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("8")).
		Align(lipgloss.Center).
		Width(m.width)

	title := titleStyle.Render("🚨 " + toolName + ": uncovered changes")
	summary := summaryStyle.Render(fmt.Sprintf("Flagged nodes: %s",
		accentStyle.Render(fmt.Sprintf("%d", len(m.items)))))
	footer := footerStyle.Render("↑/k up • ↓/j down • pgup/pgdn scroll • / filter • q quit")

	return lipgloss.JoinVertical(lipgloss.Left,
		title,
		summary,
		paneStyle.Render(m.list.View()),
		paneStyle.Render(m.detail.View()),
		footer,
	)
}
