// Package model defines the data structures shared by the coverage engine,
// its adapters and the renderers.
package model

// Path represents a file system path.
type Path string

// NodeKind is the human-readable category of a code node.
type NodeKind string

const (
	// NodeFunction represents a package-level function declaration.
	NodeFunction NodeKind = "function"
	// NodeMethod represents a function declared with a receiver.
	NodeMethod NodeKind = "method"
	// NodeFuncLit represents an anonymous function (closure).
	NodeFuncLit NodeKind = "function literal"
)

// SourceLine is one physical line of a node's source.
type SourceLine struct {
	Number int
	Text   string
}

// Node is a structural source unit with a line span.
// The coverable body lies strictly between FirstLine and LastLine.
type Node struct {
	Name      string
	Kind      NodeKind
	FirstLine int
	LastLine  int
	// Source spans the entire node, blank and comment lines included.
	Source []SourceLine
}

// Contains reports whether line lies within the node, endpoints included.
func (n Node) Contains(line int) bool {
	return line >= n.FirstLine && line <= n.LastLine
}
