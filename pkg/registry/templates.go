package registry

import (
	"fmt"

	"github.com/aretw0/arbor/pkg/domain"
)

// Templates stores object templates.
type Templates struct {
	t *table[domain.Template]
}

// NewTemplates creates an empty template registry.
func NewTemplates() *Templates {
	return &Templates{t: newTable[domain.Template]()}
}

// Register stores a copy of tpl, replacing any template with the same id.
func (r *Templates) Register(tpl domain.Template) (bool, error) {
	if err := tpl.Validate(); err != nil {
		return false, err
	}
	return r.t.put(tpl.ID, tpl.Clone()), nil
}

// Get returns a copy of the template registered under id.
func (r *Templates) Get(id string) (domain.Template, error) {
	tpl, ok := r.t.get(id)
	if !ok {
		return domain.Template{}, fmt.Errorf("%w: %s", domain.ErrUnknownTemplate, id)
	}
	return tpl.Clone(), nil
}

// List returns the registered template ids in sorted order.
func (r *Templates) List() []string {
	return r.t.ids()
}
