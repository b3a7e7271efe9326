package domain_test

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/mouse-blink/undercover/internal/adapter"
	adaptermocks "github.com/mouse-blink/undercover/internal/adapter/mocks"
	"github.com/mouse-blink/undercover/internal/domain"
	domainmocks "github.com/mouse-blink/undercover/internal/domain/mocks"
	m "github.com/mouse-blink/undercover/internal/model"
)

const calcSource = `package calc

func Add(a, b int) int {
	if a > 0 {
		return a + b
	}
	return b
}

func Sub(a, b int) int {
	return a - b
}
`

type workflowFixture struct {
	fs        *adaptermocks.MockSourceFSAdapter
	coverage  *adaptermocks.MockCoverageAdapter
	changes   *adaptermocks.MockChangesetAdapter
	renderer  *domainmocks.MockRenderer
	workflow  domain.Workflow
	goAdapter adapter.GoFileAdapter
}

func newWorkflowFixture(t *testing.T) *workflowFixture {
	f := &workflowFixture{
		fs:        adaptermocks.NewMockSourceFSAdapter(t),
		coverage:  adaptermocks.NewMockCoverageAdapter(t),
		changes:   adaptermocks.NewMockChangesetAdapter(t),
		renderer:  domainmocks.NewMockRenderer(t),
		goAdapter: adapter.NewLocalGoFileAdapter(),
	}
	f.workflow = domain.NewWorkflow(f.fs, f.goAdapter, f.coverage, f.changes, slog.New(slog.DiscardHandler))

	return f
}

func (f *workflowFixture) args(threads int) domain.ReportArgs {
	return domain.ReportArgs{
		Root:      "/project",
		LCOV:      "/project/coverage/lcov/project.lcov",
		GitDir:    ".git",
		Compare:   "main",
		Threads:   threads,
		Renderers: []domain.Renderer{f.renderer},
	}
}

func resultNames(results []domain.Result) []string {
	out := make([]string, 0, len(results))
	for _, r := range results {
		out = append(out, r.Name())
	}

	return out
}

func TestWorkflow_Report_FlagsUncoveredChanges(t *testing.T) {
	f := newWorkflowFixture(t)
	path := m.Path("/project/calc.go")

	f.coverage.EXPECT().
		Load(mock.Anything, m.Path("/project/coverage/lcov/project.lcov"), m.Path("/project")).
		Return(m.FileCoverage{path: {
			m.LineDatum(4, 1),
			m.BranchDatum(4, 0, 0, 1),
			m.BranchDatum(4, 0, 1, 0),
			m.LineDatum(5, 1),
			m.LineDatum(7, 0),
			m.LineDatum(11, 1),
		}}, nil)
	f.changes.EXPECT().
		Changeset(mock.Anything, adapter.ChangesetArgs{Root: "/project", GitDir: ".git", Compare: "main"}).
		Return(m.Changeset{path: {4, 11}, "/project/README.md": {1}}, nil)
	f.fs.EXPECT().IsGoSource(path).Return(true)
	f.fs.EXPECT().IsGoSource(m.Path("/project/README.md")).Return(false)
	f.fs.EXPECT().ReadFile(path).Return([]byte(calcSource), nil)
	f.renderer.EXPECT().
		Render(mock.MatchedBy(func(results []domain.Result) bool {
			return len(results) == 1 && results[0].Name() == "Add" && results[0].IsFlagged()
		})).
		Return(nil)

	flagged, err := f.workflow.Report(context.Background(), f.args(1))

	require.NoError(t, err)
	assert.Equal(t, []string{"Add"}, resultNames(flagged))
	assert.Equal(t, "/project/calc.go:3:8", flagged[0].FilePathWithLines())
	assert.Equal(t, []int{4, 7}, flagged[0].UncoveredLines())
}

func TestWorkflow_Report_NothingFlagged(t *testing.T) {
	f := newWorkflowFixture(t)
	path := m.Path("/project/calc.go")

	f.coverage.EXPECT().Load(mock.Anything, mock.Anything, mock.Anything).
		Return(m.FileCoverage{path: {m.LineDatum(11, 1)}}, nil)
	f.changes.EXPECT().Changeset(mock.Anything, mock.Anything).
		Return(m.Changeset{path: {11}}, nil)
	f.fs.EXPECT().IsGoSource(path).Return(true)
	f.fs.EXPECT().ReadFile(path).Return([]byte(calcSource), nil)
	f.renderer.EXPECT().Render(mock.MatchedBy(func(results []domain.Result) bool {
		return len(results) == 0
	})).Return(nil)

	flagged, err := f.workflow.Report(context.Background(), f.args(1))

	require.NoError(t, err)
	assert.Empty(t, flagged)
}

func TestWorkflow_Report_FileMissingFromReport(t *testing.T) {
	f := newWorkflowFixture(t)
	path := m.Path("/project/calc.go")

	f.coverage.EXPECT().Load(mock.Anything, mock.Anything, mock.Anything).Return(m.FileCoverage{}, nil)
	f.changes.EXPECT().Changeset(mock.Anything, mock.Anything).Return(m.Changeset{path: {4, 5}}, nil)
	f.fs.EXPECT().IsGoSource(path).Return(true)
	f.fs.EXPECT().ReadFile(path).Return([]byte(calcSource), nil)
	f.renderer.EXPECT().Render(mock.Anything).Return(nil)

	flagged, err := f.workflow.Report(context.Background(), f.args(1))

	require.NoError(t, err)
	assert.Empty(t, flagged)
}

func TestWorkflow_Report_LoadErrorStopsEarly(t *testing.T) {
	f := newWorkflowFixture(t)

	f.coverage.EXPECT().Load(mock.Anything, mock.Anything, mock.Anything).
		Return(nil, adapter.ErrReportNotFound)

	_, err := f.workflow.Report(context.Background(), f.args(1))

	require.ErrorIs(t, err, adapter.ErrReportNotFound)
	f.changes.AssertNotCalled(t, "Changeset", mock.Anything, mock.Anything)
	f.renderer.AssertNotCalled(t, "Render", mock.Anything)
}

func TestWorkflow_Report_ChangesetError(t *testing.T) {
	f := newWorkflowFixture(t)
	gitErr := errors.New("not a git repository")

	f.coverage.EXPECT().Load(mock.Anything, mock.Anything, mock.Anything).Return(m.FileCoverage{}, nil)
	f.changes.EXPECT().Changeset(mock.Anything, mock.Anything).Return(nil, gitErr)

	_, err := f.workflow.Report(context.Background(), f.args(1))

	require.ErrorIs(t, err, gitErr)
	assert.Contains(t, err.Error(), "compute changeset")
}

func TestWorkflow_Report_ReadError(t *testing.T) {
	f := newWorkflowFixture(t)
	path := m.Path("/project/calc.go")
	readErr := errors.New("permission denied")

	f.coverage.EXPECT().Load(mock.Anything, mock.Anything, mock.Anything).Return(m.FileCoverage{}, nil)
	f.changes.EXPECT().Changeset(mock.Anything, mock.Anything).Return(m.Changeset{path: {3}}, nil)
	f.fs.EXPECT().IsGoSource(path).Return(true)
	f.fs.EXPECT().ReadFile(path).Return(nil, readErr)

	_, err := f.workflow.Report(context.Background(), f.args(1))

	require.ErrorIs(t, err, readErr)
	f.renderer.AssertNotCalled(t, "Render", mock.Anything)
}

func TestWorkflow_Report_RenderError(t *testing.T) {
	f := newWorkflowFixture(t)
	renderErr := errors.New("broken pipe")

	f.coverage.EXPECT().Load(mock.Anything, mock.Anything, mock.Anything).Return(m.FileCoverage{}, nil)
	f.changes.EXPECT().Changeset(mock.Anything, mock.Anything).Return(m.Changeset{}, nil)
	f.renderer.EXPECT().Render(mock.Anything).Return(renderErr)

	_, err := f.workflow.Report(context.Background(), f.args(1))

	require.ErrorIs(t, err, renderErr)
	assert.Contains(t, err.Error(), "render report")
}

func TestWorkflow_Report_ParallelKeepsFileOrder(t *testing.T) {
	f := newWorkflowFixture(t)
	coverage := m.FileCoverage{}
	changes := m.Changeset{}

	var want []string

	for i := 0; i < 8; i++ {
		path := m.Path(fmt.Sprintf("/project/f%d.go", i))
		src := fmt.Sprintf("package p\n\nfunc F%d() int {\n\tx := %d\n\treturn x\n}\n", i, i)

		coverage[path] = []m.Datum{m.LineDatum(4, 0), m.LineDatum(5, 0)}
		changes.Add(path, 4)
		want = append(want, fmt.Sprintf("F%d", i))

		f.fs.EXPECT().IsGoSource(path).Return(true)
		f.fs.EXPECT().ReadFile(path).Return([]byte(src), nil)
	}

	f.coverage.EXPECT().Load(mock.Anything, mock.Anything, mock.Anything).Return(coverage, nil)
	f.changes.EXPECT().Changeset(mock.Anything, mock.Anything).Return(changes, nil)
	f.renderer.EXPECT().Render(mock.Anything).Return(nil)

	flagged, err := f.workflow.Report(context.Background(), f.args(4))

	require.NoError(t, err)
	assert.Equal(t, want, resultNames(flagged))
}

func TestWorkflow_Report_CanceledContext(t *testing.T) {
	f := newWorkflowFixture(t)
	path := m.Path("/project/calc.go")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	f.coverage.EXPECT().Load(mock.Anything, mock.Anything, mock.Anything).Return(m.FileCoverage{}, nil)
	f.changes.EXPECT().Changeset(mock.Anything, mock.Anything).Return(m.Changeset{path: {3}}, nil)
	f.fs.EXPECT().IsGoSource(path).Return(true)

	_, err := f.workflow.Report(ctx, f.args(1))

	require.ErrorIs(t, err, context.Canceled)
}

func TestWorkflow_Results(t *testing.T) {
	f := newWorkflowFixture(t)
	path := m.Path("/project/calc.go")

	f.fs.EXPECT().ReadFile(path).Return([]byte(calcSource), nil)

	results, err := f.workflow.Results(path, []m.Datum{m.LineDatum(5, 0), m.LineDatum(11, 3)})

	require.NoError(t, err)
	assert.Equal(t, []string{"Add", "Sub"}, resultNames(results))
	assert.InDelta(t, 0.0, results[0].CoverageFraction(), 1e-9)
	assert.InDelta(t, 1.0, results[1].CoverageFraction(), 1e-9)

	for _, r := range results {
		assert.False(t, r.IsFlagged())
		assert.Equal(t, path, r.FilePath())
	}
}

func TestWorkflow_Results_SkipsUnparsableFile(t *testing.T) {
	fs := adaptermocks.NewMockSourceFSAdapter(t)
	goAdapter := adaptermocks.NewMockGoFileAdapter(t)
	wf := domain.NewWorkflow(fs, goAdapter,
		adaptermocks.NewMockCoverageAdapter(t),
		adaptermocks.NewMockChangesetAdapter(t),
		slog.New(slog.DiscardHandler))

	path := m.Path("/project/broken.go")

	fs.EXPECT().ReadFile(path).Return([]byte("package"), nil)
	goAdapter.EXPECT().Parse(mock.Anything, string(path), []byte("package")).
		Return(nil, errors.New("expected 'IDENT', found 'EOF'"))

	results, err := wf.Results(path, nil)

	require.NoError(t, err)
	assert.Empty(t, results)
	goAdapter.AssertNotCalled(t, "ExtractNodes", mock.Anything, mock.Anything, mock.Anything)
}
