package controller

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTableFormatter_NothingFlagged(t *testing.T) {
	var out bytes.Buffer

	require.NoError(t, NewTableFormatter(Options{Out: &out}).Render(nil))

	assert.Equal(t, "undercover: ✅ No coverage is missing in latest changes\n", out.String())
}

func TestTableFormatter_Flagged(t *testing.T) {
	var out bytes.Buffer

	require.NoError(t, NewTableFormatter(Options{Out: &out, Root: "/project"}).Render(sampleResults()))

	got := out.String()

	assert.True(t, strings.HasPrefix(got, "undercover: 👮 some methods have no test coverage!"))

	for _, want := range []string{
		"NODE", "TYPE", "LOCATION", "COVERAGE", "UNCOVERED",
		"Add", "function", "calc.go:3:8", "33.33%", "4,7",
		"Counter.Inc", "method", "calc.go:12:14", "0.00%", "13",
		"FLAGGED 2",
	} {
		assert.Contains(t, got, want)
	}
}

func TestJoinLines(t *testing.T) {
	assert.Equal(t, "", joinLines(nil))
	assert.Equal(t, "3", joinLines([]int{3}))
	assert.Equal(t, "3,5,8", joinLines([]int{3, 5, 8}))
}
