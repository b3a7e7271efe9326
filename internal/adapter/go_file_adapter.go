package adapter

import (
	"fmt"
	"go/ast"
	"go/parser"
	"go/token"
	"strings"

	m "github.com/mouse-blink/undercover/internal/model"
)

// GoFileAdapter encapsulates Go-specific parsing and node detection so the
// domain layer can focus on coverage rules while delegating compilation
// details to an infrastructure component.
type GoFileAdapter interface {
	// Parse builds an AST using the provided file set and optional source bytes.
	Parse(fileSet *token.FileSet, filename string, src []byte) (*ast.File, error)
	// ExtractNodes lists functions, methods and function literals of file,
	// each with its line span and source lines.
	ExtractNodes(fileSet *token.FileSet, file *ast.File, src []byte) []m.Node
}

// LocalGoFileAdapter provides a concrete GoFileAdapter backed by go/parser.
type LocalGoFileAdapter struct{}

// NewLocalGoFileAdapter constructs a LocalGoFileAdapter.
func NewLocalGoFileAdapter() *LocalGoFileAdapter {
	return &LocalGoFileAdapter{}
}

// Parse builds an AST for the provided filename/source pair.
func (a *LocalGoFileAdapter) Parse(fileSet *token.FileSet, filename string, src []byte) (*ast.File, error) {
	return parser.ParseFile(fileSet, filename, src, parser.ParseComments)
}

// ExtractNodes walks top-level declarations in source order. Function literals
// are reported after their enclosing declaration and named after it, e.g.
// `Server.Run.func2` for the second closure inside method Run.
func (a *LocalGoFileAdapter) ExtractNodes(fileSet *token.FileSet, file *ast.File, src []byte) []m.Node {
	if file == nil {
		return nil
	}

	lines := strings.Split(string(src), "\n")

	var nodes []m.Node

	for _, decl := range file.Decls {
		fn, ok := decl.(*ast.FuncDecl)
		if !ok || fn.Body == nil {
			continue
		}

		name, kind := funcDeclName(fn)
		nodes = append(nodes, newNode(fileSet, fn, name, kind, lines))

		literals := 0

		ast.Inspect(fn.Body, func(n ast.Node) bool {
			lit, ok := n.(*ast.FuncLit)
			if !ok {
				return true
			}

			literals++
			litName := fmt.Sprintf("%s.func%d", name, literals)
			nodes = append(nodes, newNode(fileSet, lit, litName, m.NodeFuncLit, lines))

			return true
		})
	}

	return nodes
}

func funcDeclName(fn *ast.FuncDecl) (string, m.NodeKind) {
	if fn.Recv == nil || len(fn.Recv.List) == 0 {
		return fn.Name.Name, m.NodeFunction
	}

	return receiverTypeName(fn.Recv.List[0].Type) + "." + fn.Name.Name, m.NodeMethod
}

func receiverTypeName(expr ast.Expr) string {
	switch t := expr.(type) {
	case *ast.StarExpr:
		return receiverTypeName(t.X)
	case *ast.Ident:
		return t.Name
	case *ast.IndexExpr:
		return receiverTypeName(t.X)
	case *ast.IndexListExpr:
		return receiverTypeName(t.X)
	default:
		return "?"
	}
}

func newNode(fileSet *token.FileSet, n ast.Node, name string, kind m.NodeKind, lines []string) m.Node {
	first := fileSet.Position(n.Pos()).Line
	last := fileSet.Position(n.End()).Line

	source := make([]m.SourceLine, 0, last-first+1)

	for ln := first; ln <= last; ln++ {
		text := ""
		if ln-1 < len(lines) {
			text = strings.TrimRight(lines[ln-1], "\r")
		}

		source = append(source, m.SourceLine{Number: ln, Text: text})
	}

	return m.Node{
		Name:      name,
		Kind:      kind,
		FirstLine: first,
		LastLine:  last,
		Source:    source,
	}
}
