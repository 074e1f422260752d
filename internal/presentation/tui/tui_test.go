package tui

import (
	"bytes"
	"testing"

	"github.com/aretw0/arbor/pkg/domain"
	"github.com/aretw0/arbor/pkg/view"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrintBanner_IncludesVersion(t *testing.T) {
	var buf bytes.Buffer
	PrintBanner(&buf, "0.1.0\n")
	assert.Contains(t, buf.String(), "v0.1.0")
}

func TestRenderer_RendersViewHeading(t *testing.T) {
	render, err := NewRenderer("notty")
	require.NoError(t, err)

	out, err := render.RenderView(view.View{Root: view.H1("Hello World!")})
	require.NoError(t, err)
	assert.Contains(t, out, "Hello World!")
}

func TestPlain(t *testing.T) {
	out, err := Render(Plain).RenderView(view.View{Root: view.H1("Hi")})
	require.NoError(t, err)
	assert.Equal(t, "# Hi\n", out)
}

func TestPaletteMarkdown(t *testing.T) {
	assert.Equal(t, "_No commands registered._\n", PaletteMarkdown(nil))

	md := PaletteMarkdown([]domain.CommandInfo{
		{ID: "user.say-hello", Description: "User: Say Hello"},
		{ID: "bare"},
	})
	assert.Contains(t, md, "- `user.say-hello` User: Say Hello\n")
	assert.Contains(t, md, "- `bare`\n")
}

func TestTabsMarkdown(t *testing.T) {
	a := domain.NewObject("a#1", "a", nil, nil)
	b := domain.NewObject("b#1", "b", nil, nil)

	md := TabsMarkdown([]*domain.Object{a, b}, "b#1")
	assert.Contains(t, md, "1. `a#1`\n")
	assert.Contains(t, md, "2. `b#1` **(focused)**\n")
	assert.Equal(t, "_No open tabs._\n", TabsMarkdown(nil, ""))
}
