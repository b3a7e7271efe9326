// Package adapter contains the infrastructure adapters of the undercover CLI:
// coverage report parsing, Go source parsing, git change sets and file access.
package adapter

import (
	"os"
	"path/filepath"
	"strings"

	m "github.com/mouse-blink/undercover/internal/model"
)

const goFileExt = ".go"

// SourceFSAdapter abstracts filesystem-specific operations that the domain layer
// relies on when reading user projects. It hides direct `os` access so the
// workflow logic can be tested without touching the disk.
type SourceFSAdapter interface {
	// ReadFile loads a file from disk and returns its contents.
	ReadFile(path m.Path) ([]byte, error)

	// FileInfo returns metadata for a path so callers can check existence.
	FileInfo(path m.Path) (os.FileInfo, error)

	// Abs resolves path against root unless it is already absolute.
	Abs(root, path m.Path) m.Path

	// RelPath returns the relative path from base to target.
	RelPath(base, target m.Path) (m.Path, error)

	// JoinPath joins path elements into a single path.
	JoinPath(elem ...string) m.Path

	// IsGoSource reports whether path is a non-test Go file.
	IsGoSource(path m.Path) bool
}

// LocalSourceFSAdapter is the os-backed SourceFSAdapter.
type LocalSourceFSAdapter struct{}

// NewLocalSourceFSAdapter constructs a LocalSourceFSAdapter instance ready to
// be wired into the workflow.
func NewLocalSourceFSAdapter() *LocalSourceFSAdapter {
	return &LocalSourceFSAdapter{}
}

// ReadFile loads file contents from disk.
func (a *LocalSourceFSAdapter) ReadFile(path m.Path) ([]byte, error) {
	// #nosec G304 - path comes from the coverage report or git of the user's own project
	return os.ReadFile(string(path))
}

// FileInfo returns os.FileInfo metadata for the given path.
func (a *LocalSourceFSAdapter) FileInfo(path m.Path) (os.FileInfo, error) {
	return os.Stat(string(path))
}

// Abs resolves path against root. Absolute paths are only cleaned.
func (a *LocalSourceFSAdapter) Abs(root, path m.Path) m.Path {
	p := string(path)
	if filepath.IsAbs(p) {
		return m.Path(filepath.Clean(p))
	}

	base, err := filepath.Abs(string(root))
	if err != nil {
		base = string(root)
	}

	return m.Path(filepath.Join(base, p))
}

// RelPath returns the relative path from base to target.
func (a *LocalSourceFSAdapter) RelPath(base, target m.Path) (m.Path, error) {
	rel, err := filepath.Rel(string(base), string(target))
	if err != nil {
		return "", err
	}

	return m.Path(rel), nil
}

// JoinPath joins path elements into a single path.
func (a *LocalSourceFSAdapter) JoinPath(elem ...string) m.Path {
	return m.Path(filepath.Join(elem...))
}

// IsGoSource reports whether path names a Go file that is not a test.
func (a *LocalSourceFSAdapter) IsGoSource(path m.Path) bool {
	p := string(path)

	return filepath.Ext(p) == goFileExt && !strings.HasSuffix(p, "_test.go")
}
