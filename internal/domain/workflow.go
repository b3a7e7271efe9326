package domain

import (
	"context"
	"errors"
	"fmt"
	"go/token"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"github.com/mouse-blink/undercover/internal/adapter"
	m "github.com/mouse-blink/undercover/internal/model"
)

// ErrUncoveredChanges is returned by callers that turn flagged results into a
// failing exit status.
var ErrUncoveredChanges = errors.New("changed code lacks test coverage")

// Renderer presents flagged results.
type Renderer interface {
	Render(results []Result) error
}

// ReportArgs configures a single run.
type ReportArgs struct {
	// Root is the project directory.
	Root m.Path
	// LCOV is the coverage report path.
	LCOV m.Path
	// GitDir is the repository directory, relative to Root unless absolute.
	GitDir m.Path
	// Compare is the ref changes are computed against; empty means HEAD.
	Compare string
	// Threads bounds how many files are evaluated concurrently.
	Threads int
	// Renderers receive the flagged results in order.
	Renderers []Renderer
}

// Workflow defines the interface for coverage reporting operations.
type Workflow interface {
	// Report flags changed nodes lacking coverage and renders them.
	Report(ctx context.Context, args ReportArgs) ([]Result, error)
	// Results evaluates every node of path against coverage.
	Results(path m.Path, coverage []m.Datum) ([]Result, error)
}

type workflow struct {
	fsAdapter       adapter.SourceFSAdapter
	goAdapter       adapter.GoFileAdapter
	coverageAdapter adapter.CoverageAdapter
	changesAdapter  adapter.ChangesetAdapter
	logger          *slog.Logger
}

// NewWorkflow creates a new Workflow instance with the provided adapters.
func NewWorkflow(
	fsAdapter adapter.SourceFSAdapter,
	goAdapter adapter.GoFileAdapter,
	coverageAdapter adapter.CoverageAdapter,
	changesAdapter adapter.ChangesetAdapter,
	logger *slog.Logger,
) Workflow {
	return &workflow{
		fsAdapter:       fsAdapter,
		goAdapter:       goAdapter,
		coverageAdapter: coverageAdapter,
		changesAdapter:  changesAdapter,
		logger:          logger,
	}
}

// Report loads the coverage report first so an unreadable report fails before
// git or the sources are touched. Files are evaluated concurrently, each into
// its own slot; flagged results keep the lexical order of their files.
func (w *workflow) Report(ctx context.Context, args ReportArgs) ([]Result, error) {
	threads := args.Threads
	if threads <= 0 {
		threads = 1
	}

	coverage, err := w.coverageAdapter.Load(ctx, args.LCOV, args.Root)
	if err != nil {
		return nil, err
	}

	w.logger.Debug("coverage report loaded", "path", args.LCOV, "files", len(coverage))

	changes, err := w.changesAdapter.Changeset(ctx, adapter.ChangesetArgs{
		Root:    args.Root,
		GitDir:  args.GitDir,
		Compare: args.Compare,
	})
	if err != nil {
		return nil, fmt.Errorf("compute changeset: %w", err)
	}

	var files []m.Path

	for _, path := range changes.Files() {
		if w.fsAdapter.IsGoSource(path) {
			files = append(files, path)
		}
	}

	w.logger.Info("evaluating changed files", "files", len(files), "threads", threads)

	perFile := make([][]Result, len(files))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(threads)

	for i, path := range files {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}

			data, ok := coverage[path]
			if !ok {
				w.logger.Debug("no coverage data for changed file", "path", path)
			}

			results, err := w.Results(path, data)
			if err != nil {
				return err
			}

			perFile[i] = FlagResults(results, changes[path])

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	var flagged []Result
	for _, results := range perFile {
		flagged = append(flagged, results...)
	}

	w.logger.Info("evaluation finished", "flagged", len(flagged))

	for _, r := range args.Renderers {
		if err := r.Render(flagged); err != nil {
			return nil, fmt.Errorf("render report: %w", err)
		}
	}

	return flagged, nil
}

// Results parses path and builds one unflagged Result per node. A file that
// does not parse is skipped with a warning and yields no results.
func (w *workflow) Results(path m.Path, coverage []m.Datum) ([]Result, error) {
	src, err := w.fsAdapter.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	fset := token.NewFileSet()

	file, err := w.goAdapter.Parse(fset, string(path), src)
	if err != nil {
		w.logger.Warn("skipping unparsable file", "path", path, "error", err)
		return nil, nil
	}

	nodes := w.goAdapter.ExtractNodes(fset, file, src)
	results := make([]Result, 0, len(nodes))

	for _, node := range nodes {
		results = append(results, NewResult(node, coverage, path))
	}

	return results, nil
}
