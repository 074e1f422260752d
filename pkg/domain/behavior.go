package domain

import (
	"context"
	"fmt"
	"slices"
)

// Reaction is the side effect a behavior performs when one of its triggers is raised.
type Reaction func(ctx context.Context, obj *Object, args ...any) error

// Behavior is a named reaction bound to a non-empty set of triggers.
type Behavior struct {
	ID       string
	Triggers []string
	Reaction Reaction
	// Description is optional and only used for introspection.
	Description string
}

// Validate checks the behavior invariants.
func (b Behavior) Validate() error {
	if b.ID == "" {
		return fmt.Errorf("%w: missing id", ErrInvalidBehavior)
	}
	if len(b.Triggers) == 0 {
		return fmt.Errorf("%w: %s has no triggers", ErrInvalidBehavior, b.ID)
	}
	for _, t := range b.Triggers {
		if t == "" {
			return fmt.Errorf("%w: %s has an empty trigger", ErrInvalidBehavior, b.ID)
		}
	}
	if b.Reaction == nil {
		return fmt.Errorf("%w: %s has no reaction", ErrInvalidBehavior, b.ID)
	}
	return nil
}

// Listens reports whether trigger is in the behavior's trigger set.
func (b Behavior) Listens(trigger string) bool {
	return slices.Contains(b.Triggers, trigger)
}

// Clone returns a copy that shares no trigger slice with b.
func (b Behavior) Clone() Behavior {
	b.Triggers = slices.Clone(b.Triggers)
	return b
}

// Normalized returns a copy with a sorted, de-duplicated trigger set.
func (b Behavior) Normalized() Behavior {
	b.Triggers = dedupe(b.Triggers)
	slices.Sort(b.Triggers)
	return b
}

func dedupe(in []string) []string {
	out := make([]string, 0, len(in))
	for _, s := range in {
		if !slices.Contains(out, s) {
			out = append(out, s)
		}
	}
	return out
}
