// Package controller renders coverage results for humans and machines.
package controller

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mouse-blink/undercover/internal/domain"
	m "github.com/mouse-blink/undercover/internal/model"
)

// ErrUnknownFormatter is returned for formatter names outside the registry.
var ErrUnknownFormatter = errors.New("unknown formatter")

// FormatterKind names one of the built-in renderers.
type FormatterKind string

// Available FormatterKind values.
const (
	FormatterPretty FormatterKind = "pretty"
	FormatterTable  FormatterKind = "table"
	FormatterJSON   FormatterKind = "json"
	FormatterYAML   FormatterKind = "yaml"
	FormatterTUI    FormatterKind = "tui"
)

// DefaultFormatter is used when no formatter is configured.
const DefaultFormatter = FormatterPretty

var formatterAliases = map[string]FormatterKind{
	"p":      FormatterPretty,
	"pretty": FormatterPretty,
	"t":      FormatterTable,
	"table":  FormatterTable,
	"json":   FormatterJSON,
	"yaml":   FormatterYAML,
	"yml":    FormatterYAML,
	"tui":    FormatterTUI,
}

// FormatterKinds lists the canonical formatter names.
func FormatterKinds() []FormatterKind {
	return []FormatterKind{FormatterPretty, FormatterTable, FormatterJSON, FormatterYAML, FormatterTUI}
}

// ParseFormatterKind resolves a formatter name or alias.
func ParseFormatterKind(name string) (FormatterKind, error) {
	kind, ok := formatterAliases[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownFormatter, name)
	}

	return kind, nil
}

// Options carries what every formatter needs to know about its output.
type Options struct {
	Out io.Writer
	// Root is the project directory; locations are shown relative to it.
	Root m.Path
	// TTY enables the interactive formatter; without it tui falls back to pretty.
	TTY bool
}

// NewFormatter builds the renderer registered for kind.
func NewFormatter(kind FormatterKind, opts Options) (domain.Renderer, error) {
	switch kind {
	case FormatterPretty:
		return NewPrettyFormatter(opts), nil
	case FormatterTable:
		return NewTableFormatter(opts), nil
	case FormatterJSON:
		return NewJSONFormatter(opts), nil
	case FormatterYAML:
		return NewYAMLFormatter(opts), nil
	case FormatterTUI:
		if !opts.TTY {
			return NewPrettyFormatter(opts), nil
		}

		return NewTUI(opts), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormatter, kind)
	}
}

// NewFormatters resolves every name, failing on the first unknown one.
// An empty list yields the default formatter.
func NewFormatters(names []string, opts Options) ([]domain.Renderer, error) {
	if len(names) == 0 {
		names = []string{string(DefaultFormatter)}
	}

	renderers := make([]domain.Renderer, 0, len(names))
	seen := make(map[FormatterKind]struct{}, len(names))

	for _, name := range names {
		kind, err := ParseFormatterKind(name)
		if err != nil {
			return nil, err
		}

		if _, ok := seen[kind]; ok {
			continue
		}

		seen[kind] = struct{}{}

		r, err := NewFormatter(kind, opts)
		if err != nil {
			return nil, err
		}

		renderers = append(renderers, r)
	}

	return renderers, nil
}

// IsTTY checks if the given writer is a terminal (TTY).
// Returns true if the output is an interactive terminal.
// Returns false if the output is redirected to a file or pipe.
func IsTTY(w io.Writer) bool {
	file, ok := w.(*os.File)
	if !ok {
		return false
	}

	fileInfo, err := file.Stat()
	if err != nil {
		return false
	}

	return (fileInfo.Mode() & os.ModeCharDevice) != 0
}

