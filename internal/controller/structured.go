package controller

import (
	"encoding/json"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/mouse-blink/undercover/internal/domain"
	m "github.com/mouse-blink/undercover/internal/model"
)

const yamlIndent = 2

// JSONFormatter writes flagged results as one JSON document.
type JSONFormatter struct {
	out  io.Writer
	root m.Path
}

// NewJSONFormatter creates a new JSONFormatter.
func NewJSONFormatter(opts Options) *JSONFormatter {
	return &JSONFormatter{out: opts.Out, root: opts.Root}
}

// Render encodes results as indented JSON.
func (j *JSONFormatter) Render(results []domain.Result) error {
	enc := json.NewEncoder(j.out)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)

	if err := enc.Encode(newReportView(results, j.root)); err != nil {
		return fmt.Errorf("encode json report: %w", err)
	}

	return nil
}

// YAMLFormatter writes flagged results as one YAML document.
type YAMLFormatter struct {
	out  io.Writer
	root m.Path
}

// NewYAMLFormatter creates a new YAMLFormatter.
func NewYAMLFormatter(opts Options) *YAMLFormatter {
	return &YAMLFormatter{out: opts.Out, root: opts.Root}
}

// Render encodes results as YAML.
func (y *YAMLFormatter) Render(results []domain.Result) error {
	enc := yaml.NewEncoder(y.out)
	enc.SetIndent(yamlIndent)

	if err := enc.Encode(newReportView(results, y.root)); err != nil {
		return fmt.Errorf("encode yaml report: %w", err)
	}

	return enc.Close()
}
