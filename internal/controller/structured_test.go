package controller

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/mouse-blink/undercover/internal/domain"
	m "github.com/mouse-blink/undercover/internal/model"
)

func TestJSONFormatter(t *testing.T) {
	var out bytes.Buffer

	require.NoError(t, NewJSONFormatter(Options{Out: &out, Root: "/project"}).Render(sampleResults()))

	var report reportView
	require.NoError(t, json.Unmarshal(out.Bytes(), &report))

	assert.Equal(t, 2, report.Flagged)
	require.Len(t, report.Results, 2)

	add := report.Results[0]
	assert.Equal(t, "Add", add.Name)
	assert.Equal(t, "function", add.Kind)
	assert.Equal(t, "calc.go", add.Path)
	assert.Equal(t, "calc.go:3:8", add.Location)
	assert.InDelta(t, 0.3333, add.Coverage, 1e-9)
	assert.Equal(t, []int{4, 7}, add.UncoveredLines)
	require.Len(t, add.Lines, 6)
	assert.Nil(t, add.Lines[0].Hits)
	require.NotNil(t, add.Lines[1].Hits)
	assert.Equal(t, 2, *add.Lines[1].Hits)
	require.NotNil(t, add.Lines[1].Branches)
	assert.Equal(t, 2, add.Lines[1].Branches.Total)
	assert.Equal(t, 1, add.Lines[1].Branches.Covered)
	assert.Nil(t, add.Lines[2].Branches)
	assert.Contains(t, out.String(), `"total_branches": 2`)
}

func TestJSONFormatter_KeepsSourceUnescaped(t *testing.T) {
	var out bytes.Buffer

	node := sampleNode("Less", m.NodeFunction, 1,
		"func Less(a, b int) bool {",
		"return a < b && b > 0",
		"}",
	)
	results := domain.FlagResults([]domain.Result{
		domain.NewResult(node, []m.Datum{m.LineDatum(2, 0)}, "/project/less.go"),
	}, []int{2})

	require.NoError(t, NewJSONFormatter(Options{Out: &out, Root: "/project"}).Render(results))

	assert.Contains(t, out.String(), `"source": "return a < b && b > 0"`)
	assert.NotContains(t, out.String(), `\u003c`)
}

func TestJSONFormatter_NullHits(t *testing.T) {
	var out bytes.Buffer

	require.NoError(t, NewJSONFormatter(Options{Out: &out}).Render(sampleResults()[1:]))

	assert.Contains(t, out.String(), `"hits": null`)
	assert.NotContains(t, out.String(), `"branches"`)
}

func TestJSONFormatter_Empty(t *testing.T) {
	var out bytes.Buffer

	require.NoError(t, NewJSONFormatter(Options{Out: &out}).Render(nil))

	assert.JSONEq(t, `{"flagged": 0, "results": []}`, out.String())
}

func TestYAMLFormatter(t *testing.T) {
	var out bytes.Buffer

	require.NoError(t, NewYAMLFormatter(Options{Out: &out, Root: "/project"}).Render(sampleResults()))

	var report reportView
	require.NoError(t, yaml.Unmarshal(out.Bytes(), &report))

	assert.Equal(t, 2, report.Flagged)
	require.Len(t, report.Results, 2)
	assert.Equal(t, "Counter.Inc", report.Results[1].Name)
	assert.Equal(t, "calc.go:12:14", report.Results[1].Location)
	assert.Equal(t, []int{13}, report.Results[1].UncoveredLines)
}
