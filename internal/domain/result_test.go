package domain

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "github.com/mouse-blink/undercover/internal/model"
)

func testNode(name string, first, last int) m.Node {
	source := make([]m.SourceLine, 0, last-first+1)
	for ln := first; ln <= last; ln++ {
		source = append(source, m.SourceLine{Number: ln, Text: "line"})
	}

	return m.Node{
		Name:      name,
		Kind:      m.NodeFunction,
		FirstLine: first,
		LastLine:  last,
		Source:    source,
	}
}

func TestNewResult(t *testing.T) {
	node := testNode("Add", 10, 15)
	res := NewResult(node, []m.Datum{
		m.LineDatum(8, 0),
		m.LineDatum(11, 5),
		m.LineDatum(12, 0),
	}, "/src/calc.go")

	assert.Equal(t, "Add", res.Name())
	assert.Equal(t, 10, res.FirstLine())
	assert.Equal(t, 15, res.LastLine())
	assert.Equal(t, m.Path("/src/calc.go"), res.FilePath())
	assert.Equal(t, node, res.Node())
	assert.False(t, res.IsFlagged())
	assert.Equal(t, []m.Datum{m.LineDatum(11, 5), m.LineDatum(12, 0)}, res.Coverage())
	assert.True(t, res.IsUncovered(12))
	assert.False(t, res.IsUncovered(8))
	assert.InDelta(t, 0.5, res.CoverageFraction(), 1e-9)
	assert.Equal(t, []int{12}, res.UncoveredLines())
	assert.Contains(t, res.String(), "Add")
}

func TestResult_FilePathWithLines(t *testing.T) {
	res := NewResult(testNode("Add", 3, 9), nil, "pkg/calc.go")

	assert.Equal(t, "pkg/calc.go:3:9", res.FilePathWithLines())
}

func TestResult_RelativeFilePathWithLines(t *testing.T) {
	tests := []struct {
		name string
		root m.Path
		path m.Path
		want string
	}{
		{name: "no root", root: "", path: "/project/calc.go", want: "/project/calc.go:3:9"},
		{name: "under root", root: "/project", path: "/project/pkg/calc.go", want: filepath.Join("pkg", "calc.go") + ":3:9"},
		{name: "outside root", root: "/project", path: "/elsewhere/calc.go", want: "/elsewhere/calc.go:3:9"},
		{name: "sibling prefix", root: "/project", path: "/project-b/calc.go", want: "/project-b/calc.go:3:9"},
		{name: "dotted file name", root: "/project", path: "/project/..gen.go", want: "..gen.go:3:9"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := NewResult(testNode("Add", 3, 9), nil, tt.path)

			assert.Equal(t, tt.want, res.RelativeFilePathWithLines(tt.root))
		})
	}
}

func TestResult_LinesWithData(t *testing.T) {
	node := testNode("Add", 10, 14)
	res := NewResult(node, []m.Datum{
		m.LineDatum(13, 0),
		m.BranchDatum(12, 0, 0, 1),
		m.LineDatum(11, 4),
		m.BranchDatum(12, 0, 1, 0),
		m.LineDatum(12, 2),
	}, "calc.go")

	lines := res.LinesWithData()
	require.Len(t, lines, 5)

	for i, ld := range lines {
		assert.Equal(t, 10+i, ld.Line)
		assert.Equal(t, "line", ld.Source)
	}

	assert.Nil(t, lines[0].Hits)
	require.NotNil(t, lines[1].Hits)
	assert.Equal(t, 4, *lines[1].Hits)
	require.NotNil(t, lines[2].Hits)
	assert.Equal(t, 2, *lines[2].Hits)
	require.NotNil(t, lines[2].BranchCoverage)
	assert.Equal(t, m.BranchSummary{Total: 2, Covered: 1}, *lines[2].BranchCoverage)
	require.NotNil(t, lines[3].Hits)
	assert.Equal(t, 0, *lines[3].Hits)
	assert.Nil(t, lines[3].BranchCoverage)
	assert.Nil(t, lines[4].Hits)
}

func TestResult_LinesWithDataWithoutCoverage(t *testing.T) {
	res := NewResult(testNode("Noop", 1, 4), nil, "noop.go")

	assert.InDelta(t, 1.0, res.CoverageFraction(), 1e-9)

	lines := res.LinesWithData()
	require.Len(t, lines, 4)

	for _, ld := range lines {
		assert.Nil(t, ld.Hits)
		assert.Nil(t, ld.BranchCoverage)
	}
}

func TestResult_LinesWithDataDuplicateLine(t *testing.T) {
	res := NewResult(testNode("Dup", 1, 3), []m.Datum{
		m.LineDatum(2, 7),
		m.LineDatum(2, 0),
	}, "dup.go")

	lines := res.LinesWithData()
	require.Len(t, lines, 3)
	require.NotNil(t, lines[1].Hits)
	assert.Equal(t, 7, *lines[1].Hits)
}

func TestResult_LinesWithDataHitsAreIndependent(t *testing.T) {
	res := NewResult(testNode("Add", 1, 4), []m.Datum{
		m.LineDatum(2, 1),
		m.LineDatum(3, 2),
	}, "calc.go")

	lines := res.LinesWithData()
	*lines[1].Hits = 100

	assert.Equal(t, 2, *lines[2].Hits)
	assert.Equal(t, 2, *res.LinesWithData()[2].Hits)
}
