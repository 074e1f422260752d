package registry

import (
	"fmt"

	"github.com/aretw0/arbor/pkg/domain"
)

// Behaviors stores named behaviors.
type Behaviors struct {
	t *table[domain.Behavior]
}

// NewBehaviors creates an empty behavior registry.
func NewBehaviors() *Behaviors {
	return &Behaviors{t: newTable[domain.Behavior]()}
}

// Register validates and stores b, replacing any behavior with the same id.
// It reports whether an earlier registration was overwritten.
func (r *Behaviors) Register(b domain.Behavior) (bool, error) {
	if err := b.Validate(); err != nil {
		return false, err
	}
	return r.t.put(b.ID, b.Normalized()), nil
}

// Get looks up a behavior by id.
func (r *Behaviors) Get(id string) (domain.Behavior, bool) {
	b, ok := r.t.get(id)
	return b.Clone(), ok
}

// List returns every registered behavior ordered by id.
func (r *Behaviors) List() []domain.Behavior {
	out := r.t.values()
	for i := range out {
		out[i] = out[i].Clone()
	}
	return out
}

// Resolve maps behavior ids to behaviors, keeping the given order.
func (r *Behaviors) Resolve(ids []string) ([]domain.Behavior, error) {
	out := make([]domain.Behavior, 0, len(ids))
	for _, id := range ids {
		b, ok := r.t.get(id)
		if !ok {
			return nil, fmt.Errorf("%w: %s", domain.ErrUnknownBehavior, id)
		}
		out = append(out, b.Clone())
	}
	return out, nil
}
