package view_test

import (
	"errors"
	"testing"

	"github.com/aretw0/arbor/pkg/view"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultBuilder_Build(t *testing.T) {
	b := view.NewBuilder()

	v, err := b.Build(view.Div(view.H1("Hello World!"), view.P("body")))
	require.NoError(t, err)

	h1, ok := v.Root.Find("h1")
	require.True(t, ok)
	assert.Equal(t, "Hello World!", h1.Text)
	assert.Empty(t, v.Bindings)
	assert.False(t, v.IsZero())
}

func TestDefaultBuilder_Rejects(t *testing.T) {
	noop := func(string) error { return nil }

	tests := []struct {
		name     string
		root     view.Element
		bindings []view.Binding
	}{
		{"empty tag", view.Element{}, nil},
		{"upper case child", view.Div(view.Element{Tag: "H1"}), nil},
		{"binding without event", view.H1("x"), []view.Binding{{Handler: noop}}},
		{"binding without handler", view.H1("x"), []view.Binding{{Event: "click"}}},
		{"duplicate binding", view.H1("x"), []view.Binding{{Event: "click", Handler: noop}, {Event: "click", Handler: noop}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := view.NewBuilder().Build(tt.root, tt.bindings...)
			assert.ErrorIs(t, err, view.ErrInvalidView)
		})
	}
}

func TestView_Dispatch(t *testing.T) {
	var fired []string
	v, err := view.NewBuilder().Build(view.H1("x"), view.Binding{
		Event: "click",
		Handler: func(event string) error {
			fired = append(fired, event)
			return nil
		},
	})
	require.NoError(t, err)

	require.NoError(t, v.Dispatch("click"))
	require.NoError(t, v.Dispatch("hover"))
	assert.Equal(t, []string{"click"}, fired)

	boom := errors.New("boom")
	v.Bindings[0].Handler = func(string) error { return boom }
	assert.ErrorIs(t, v.Dispatch("click"), boom)
}

func TestView_Markdown(t *testing.T) {
	v := view.View{Root: view.Div(
		view.H1("Hello World!"),
		view.P("first"),
		view.Element{Tag: "ul", Children: []view.Element{{Tag: "li", Text: "a"}, {Tag: "li", Text: "b"}}},
	)}

	assert.Equal(t, "# Hello World!\n\nfirst\n\n- a\n- b\n", v.Markdown())
	assert.Equal(t, "Hello World! first a b", v.Root.TextContent())
}
