package view

import (
	"fmt"
	"strings"
)

// Element is a node of a declarative element tree.
type Element struct {
	Tag      string            `json:"tag" yaml:"tag" mapstructure:"tag"`
	Text     string            `json:"text,omitempty" yaml:"text,omitempty" mapstructure:"text"`
	Attrs    map[string]string `json:"attrs,omitempty" yaml:"attrs,omitempty" mapstructure:"attrs"`
	Children []Element         `json:"children,omitempty" yaml:"children,omitempty" mapstructure:"children"`
}

// Handler reacts to a host UI event fired on a view.
type Handler func(event string) error

// Binding pairs an event name with its handler.
type Binding struct {
	Event   string
	Handler Handler
}

// View is what a template's init returns to the host.
type View struct {
	Root     Element
	Bindings []Binding
}

// IsZero reports whether the view has no content.
func (v View) IsZero() bool {
	return v.Root.Tag == "" && len(v.Bindings) == 0
}

// H1 returns a level one heading.
func H1(text string) Element {
	return Element{Tag: "h1", Text: text}
}

// H2 returns a level two heading.
func H2(text string) Element {
	return Element{Tag: "h2", Text: text}
}

// P returns a paragraph.
func P(text string) Element {
	return Element{Tag: "p", Text: text}
}

// Div groups children.
func Div(children ...Element) Element {
	return Element{Tag: "div", Children: children}
}

// Find returns the first element (depth-first, root included) with the given tag.
func (e Element) Find(tag string) (Element, bool) {
	if e.Tag == tag {
		return e, true
	}
	for _, c := range e.Children {
		if found, ok := c.Find(tag); ok {
			return found, true
		}
	}
	return Element{}, false
}

// TextContent returns the concatenated text of the element and its descendants.
func (e Element) TextContent() string {
	var sb strings.Builder
	e.walk(func(el Element) {
		if el.Text == "" {
			return
		}
		if sb.Len() > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(el.Text)
	})
	return sb.String()
}

func (e Element) walk(fn func(Element)) {
	fn(e)
	for _, c := range e.Children {
		c.walk(fn)
	}
}

// Markdown renders the element tree as markdown, which is how terminal hosts show a view.
func (v View) Markdown() string {
	var sb strings.Builder
	writeMarkdown(&sb, v.Root)
	return strings.TrimRight(sb.String(), "\n") + "\n"
}

func writeMarkdown(sb *strings.Builder, e Element) {
	switch e.Tag {
	case "h1", "h2", "h3", "h4", "h5", "h6":
		level := int(e.Tag[1] - '0')
		fmt.Fprintf(sb, "%s %s\n\n", strings.Repeat("#", level), e.Text)
	case "p", "span":
		if e.Text != "" {
			fmt.Fprintf(sb, "%s\n\n", e.Text)
		}
	case "li":
		fmt.Fprintf(sb, "- %s\n", e.Text)
	case "code":
		fmt.Fprintf(sb, "`%s`\n\n", e.Text)
	default:
		if e.Text != "" {
			fmt.Fprintf(sb, "%s\n\n", e.Text)
		}
	}
	for _, c := range e.Children {
		writeMarkdown(sb, c)
	}
	if e.Tag == "ul" || e.Tag == "ol" {
		sb.WriteByte('\n')
	}
}
