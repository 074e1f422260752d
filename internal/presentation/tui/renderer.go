package tui

import (
	"github.com/aretw0/arbor/pkg/view"
	"github.com/charmbracelet/glamour"
)

// Render turns markdown into terminal output.
type Render func(markdown string) (string, error)

// NewRenderer returns a function that renders markdown using glamour.
// An empty style detects a light or dark background; "notty" disables styling.
func NewRenderer(style string) (Render, error) {
	opt := glamour.WithAutoStyle()
	if style != "" {
		opt = glamour.WithStandardStyle(style)
	}
	r, err := glamour.NewTermRenderer(opt, glamour.WithWordWrap(80))
	if err != nil {
		return nil, err
	}
	return r.Render, nil
}

// Plain renders markdown as is. It is used when stdout is not a terminal.
func Plain(markdown string) (string, error) {
	return markdown, nil
}

// RenderView renders an object's view.
func (r Render) RenderView(v view.View) (string, error) {
	return r(v.Markdown())
}
