package view

import (
	"errors"
	"fmt"
	"regexp"
)

// ErrInvalidView is returned when an element tree or binding list is malformed.
var ErrInvalidView = errors.New("invalid view")

// Builder assembles a View from an element tree and its event bindings.
// Hosts inject their own implementation; DefaultBuilder is used otherwise.
type Builder interface {
	Build(root Element, bindings ...Binding) (View, error)
}

// BuilderFunc adapts a function to the Builder interface.
type BuilderFunc func(root Element, bindings ...Binding) (View, error)

// Build calls f.
func (f BuilderFunc) Build(root Element, bindings ...Binding) (View, error) {
	return f(root, bindings...)
}

var tagPattern = regexp.MustCompile(`^[a-z][a-z0-9-]*$`)

// DefaultBuilder validates tags and bindings and returns the view unchanged otherwise.
type DefaultBuilder struct{}

// NewBuilder returns the default view builder.
func NewBuilder() DefaultBuilder {
	return DefaultBuilder{}
}

// Build implements Builder.
func (DefaultBuilder) Build(root Element, bindings ...Binding) (View, error) {
	if err := validate(root, "root"); err != nil {
		return View{}, err
	}
	seen := make(map[string]struct{}, len(bindings))
	for i, b := range bindings {
		if b.Event == "" {
			return View{}, fmt.Errorf("%w: binding %d has no event", ErrInvalidView, i)
		}
		if b.Handler == nil {
			return View{}, fmt.Errorf("%w: binding %q has no handler", ErrInvalidView, b.Event)
		}
		if _, dup := seen[b.Event]; dup {
			return View{}, fmt.Errorf("%w: duplicate binding for %q", ErrInvalidView, b.Event)
		}
		seen[b.Event] = struct{}{}
	}
	out := make([]Binding, len(bindings))
	copy(out, bindings)
	return View{Root: root, Bindings: out}, nil
}

func validate(e Element, path string) error {
	if !tagPattern.MatchString(e.Tag) {
		return fmt.Errorf("%w: bad tag %q at %s", ErrInvalidView, e.Tag, path)
	}
	for i, c := range e.Children {
		if err := validate(c, fmt.Sprintf("%s/%s[%d]", path, e.Tag, i)); err != nil {
			return err
		}
	}
	return nil
}

// Dispatch fires the handler bound to event, if any.
// Unbound events are ignored, matching how a DOM drops events nobody listens to.
func (v View) Dispatch(event string) error {
	for _, b := range v.Bindings {
		if b.Event == event {
			return b.Handler(event)
		}
	}
	return nil
}
