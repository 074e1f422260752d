package domain

import (
	"fmt"
	"slices"

	"github.com/aretw0/arbor/pkg/view"
)

// InitFunc builds an object's view. It runs synchronously inside create.
type InitFunc func(obj *Object, vb view.Builder) (view.View, error)

// Template is the declarative description objects are instantiated from.
type Template struct {
	ID        string
	Tags      []string
	Behaviors []string
	Init      InitFunc
}

// Validate checks the template invariants.
func (t Template) Validate() error {
	if t.ID == "" {
		return fmt.Errorf("%w: missing id", ErrInvalidTemplate)
	}
	for _, b := range t.Behaviors {
		if b == "" {
			return fmt.Errorf("%w: %s attaches an empty behavior id", ErrInvalidTemplate, t.ID)
		}
	}
	return nil
}

// Clone returns a deep copy so registered templates cannot be mutated through the caller's slices.
// Duplicate tags are dropped; declaration order is kept.
func (t Template) Clone() Template {
	t.Tags = dedupe(t.Tags)
	t.Behaviors = slices.Clone(t.Behaviors)
	return t
}
