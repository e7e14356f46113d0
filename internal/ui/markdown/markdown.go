// Package markdown renders the showcase's markdown copy, such as demo
// descriptions and the help text, into styled terminal output.
package markdown

import (
	"strings"

	"github.com/charmbracelet/glamour"
)

// compactDocStyle strips document margins so rendered output can be
// placed inside bordered boxes without double padding. Everything else
// inherits from glamour's auto dark/light detection.
const compactDocStyle = `{
	"document": {
		"margin": 0,
		"block_prefix": "",
		"block_suffix": ""
	}
}`

// Renderer wraps a glamour renderer configured for a fixed wrap width.
type Renderer struct {
	tr    *glamour.TermRenderer
	width int
}

// New creates a renderer that word wraps at the given width.
func New(width int) (*Renderer, error) {
	tr, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithStylesFromJSONBytes([]byte(compactDocStyle)),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return nil, err
	}
	return &Renderer{tr: tr, width: width}, nil
}

// Width returns the wrap width the renderer was built with. Callers
// compare it against the current layout width to decide when a new
// renderer is needed.
func (r *Renderer) Width() int {
	return r.width
}

// Render converts markdown to terminal output. Trailing newlines are
// trimmed so the result can sit flush inside a fixed-height layout.
func (r *Renderer) Render(content string) (string, error) {
	out, err := r.tr.Render(content)
	if err != nil {
		return "", err
	}
	return strings.TrimRight(out, "\n"), nil
}
