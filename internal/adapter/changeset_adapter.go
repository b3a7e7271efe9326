package adapter

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os/exec"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/sergi/go-diff/diffmatchpatch"

	m "github.com/mouse-blink/undercover/internal/model"
)

// ErrGit wraps failures of the git executable.
var ErrGit = errors.New("git command failed")

// defaultCompareRef is used when no comparison ref is configured, which
// limits the change set to uncommitted work.
const defaultCompareRef = "HEAD"

// GitRunner executes git subcommands.
type GitRunner interface {
	// Run executes git with args inside dir and returns its stdout.
	Run(ctx context.Context, dir m.Path, args ...string) ([]byte, error)
}

// LocalGitRunner runs the git binary found on PATH.
type LocalGitRunner struct{}

// NewLocalGitRunner constructs a LocalGitRunner.
func NewLocalGitRunner() *LocalGitRunner {
	return &LocalGitRunner{}
}

// Run executes git; stderr is folded into the returned error.
func (r *LocalGitRunner) Run(ctx context.Context, dir m.Path, args ...string) ([]byte, error) {
	// #nosec G204 - arguments are built by the changeset adapter, not taken verbatim from input
	cmd := exec.CommandContext(ctx, "git", args...)
	cmd.Dir = string(dir)

	var stdout, stderr bytes.Buffer

	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		return nil, fmt.Errorf("%w: git %s: %s: %w", ErrGit, strings.Join(args, " "), strings.TrimSpace(stderr.String()), err)
	}

	return stdout.Bytes(), nil
}

// ChangesetArgs configures a change set computation.
type ChangesetArgs struct {
	// Root is the project work tree.
	Root m.Path
	// GitDir is the repository directory, relative to Root unless absolute.
	GitDir m.Path
	// Compare is the ref to diff against; empty means HEAD.
	Compare string
}

// ChangesetAdapter resolves the lines changed since a reference point.
type ChangesetAdapter interface {
	Changeset(ctx context.Context, args ChangesetArgs) (m.Changeset, error)
}

// GitChangesetAdapter computes change sets from a git work tree.
type GitChangesetAdapter struct {
	git    GitRunner
	fs     SourceFSAdapter
	logger *slog.Logger
}

// NewGitChangesetAdapter constructs a GitChangesetAdapter.
func NewGitChangesetAdapter(git GitRunner, fs SourceFSAdapter, logger *slog.Logger) *GitChangesetAdapter {
	return &GitChangesetAdapter{git: git, fs: fs, logger: logger}
}

// Changeset diffs every modified or untracked file of the work tree against
// args.Compare and records the inserted lines of the current version. The work
// tree is the parent of the git directory, so Root may be a subdirectory of the
// repository; files outside Root are left out.
func (a *GitChangesetAdapter) Changeset(ctx context.Context, args ChangesetArgs) (m.Changeset, error) {
	root := a.fs.Abs(".", args.Root)
	gitDir := a.fs.Abs(root, args.GitDir)
	top := m.Path(filepath.Dir(string(gitDir)))

	ref := args.Compare
	if ref == "" {
		ref = defaultCompareRef
	}

	base := []string{"--git-dir=" + string(gitDir), "--work-tree=" + string(top)}

	modified, err := a.git.Run(ctx, top, append(base, "diff", "--name-only", "--diff-filter=d", ref)...)
	if err != nil {
		return nil, err
	}

	untracked, err := a.git.Run(ctx, top, append(base, "ls-files", "--others", "--exclude-standard")...)
	if err != nil {
		return nil, err
	}

	changes := make(m.Changeset)
	w := changeWalker{adapter: a, changes: changes, base: base, top: top, root: root, ref: ref}

	for _, rel := range splitLines(modified) {
		if err := w.add(ctx, rel, true); err != nil {
			return nil, err
		}
	}

	for _, rel := range splitLines(untracked) {
		if err := w.add(ctx, rel, false); err != nil {
			return nil, err
		}
	}

	a.logger.Debug("changeset computed", "ref", ref, "work_tree", top, "files", len(changes))

	return changes, nil
}

// changeWalker accumulates the changed lines of files named relative to the
// repository top level.
type changeWalker struct {
	adapter *GitChangesetAdapter
	changes m.Changeset
	base    []string
	top     m.Path
	root    m.Path
	ref     string
}

func (w changeWalker) add(ctx context.Context, rel string, tracked bool) error {
	a := w.adapter
	path := a.fs.JoinPath(string(w.top), filepath.FromSlash(rel))

	if !w.inProject(path) {
		return nil
	}

	current, err := a.fs.ReadFile(path)
	if err != nil {
		a.logger.Warn("skipping unreadable changed file", "path", path, "error", err)
		return nil
	}

	var previous []byte

	if tracked {
		previous, err = a.git.Run(ctx, w.top, append(w.base, "show", w.ref+":"+rel)...)
		if err != nil {
			if ctxErr := ctx.Err(); ctxErr != nil {
				return ctxErr
			}

			a.logger.Debug("file absent at ref, treating as new", "path", rel, "ref", w.ref)

			previous = nil
		}
	}

	w.changes.Add(path, ChangedLines(string(previous), string(current))...)

	return nil
}

func (w changeWalker) inProject(path m.Path) bool {
	rel, err := w.adapter.fs.RelPath(w.root, path)
	if err != nil {
		return false
	}

	r := string(rel)

	return r != ".." && !strings.HasPrefix(r, ".."+string(filepath.Separator))
}

// ChangedLines returns the 1-based line numbers of current that were
// inserted or modified relative to previous.
func ChangedLines(previous, current string) []int {
	if previous == current {
		return nil
	}

	dmp := diffmatchpatch.New()
	src, dst, _ := dmp.DiffLinesToRunes(previous, current)
	diffs := dmp.DiffMainRunes(src, dst, false)

	var (
		changed   []int
		lineAfter int
	)

	for _, edit := range diffs {
		size := utf8.RuneCountInString(edit.Text)

		switch edit.Type {
		case diffmatchpatch.DiffInsert:
			for l := lineAfter; l < lineAfter+size; l++ {
				changed = append(changed, l+1)
			}

			lineAfter += size
		case diffmatchpatch.DiffEqual:
			lineAfter += size
		case diffmatchpatch.DiffDelete:
		}
	}

	return changed
}

func splitLines(out []byte) []string {
	var lines []string

	for _, l := range strings.Split(string(out), "\n") {
		if l = strings.TrimSpace(l); l != "" {
			lines = append(lines, l)
		}
	}

	return lines
}
