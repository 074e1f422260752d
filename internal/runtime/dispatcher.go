package runtime

import (
	"context"
	"fmt"

	"github.com/aretw0/arbor/pkg/domain"
)

// Raise fires trigger on obj.
// Every attached behavior listening for trigger runs in attachment order. The first
// failing reaction stops the dispatch and its error is returned as a *domain.ReactionError.
// A trigger nobody listens for is a no-op. Raising DirectiveDestroy destroys obj after
// its destroy listeners have run.
func (e *Engine) Raise(ctx context.Context, obj *domain.Object, trigger string, args ...any) error {
	if obj == nil {
		return fmt.Errorf("raise %q: nil object", trigger)
	}
	if !obj.Live() {
		return fmt.Errorf("raise %q on %s: %w", trigger, obj.ID(), domain.ErrObjectDestroyed)
	}
	ctx, err := descend(ctx)
	if err != nil {
		return fmt.Errorf("raise %q on %s: %w", trigger, obj.ID(), err)
	}

	listeners := obj.Listeners(trigger)
	if e.hooks.OnRaise != nil {
		e.hooks.OnRaise(ctx, &domain.RaiseEvent{
			EventBase: domain.EventBase{Timestamp: e.now(), Type: domain.EventRaise},
			ObjectID:  obj.ID(),
			Trigger:   trigger,
			Matched:   len(listeners),
		})
	}

	for _, b := range listeners {
		if err := e.react(ctx, obj, b, trigger, args); err != nil {
			return err
		}
	}

	if trigger == domain.DirectiveDestroy {
		e.destroy(ctx, obj)
	}
	return nil
}

// MaxDepth bounds how many raises and command invocations may nest inside one another.
const MaxDepth = 64

type depthKey struct{}

// descend returns ctx one level deeper, or ErrRecursionLimit once MaxDepth is reached.
func descend(ctx context.Context) (context.Context, error) {
	depth, _ := ctx.Value(depthKey{}).(int)
	if depth >= MaxDepth {
		return ctx, domain.ErrRecursionLimit
	}
	return context.WithValue(ctx, depthKey{}, depth+1), nil
}

func (e *Engine) react(ctx context.Context, obj *domain.Object, b domain.Behavior, trigger string, args []any) error {
	start := e.now()
	err := b.Reaction(ctx, obj, args...)

	if e.hooks.OnReaction != nil {
		e.hooks.OnReaction(ctx, &domain.ReactionEvent{
			EventBase:  domain.EventBase{Timestamp: e.now(), Type: domain.EventReaction},
			ObjectID:   obj.ID(),
			BehaviorID: b.ID,
			Trigger:    trigger,
			Duration:   e.now().Sub(start),
			IsError:    err != nil,
		})
	}

	if err != nil {
		e.logger.WarnContext(ctx, "reaction failed",
			"object", obj.ID(),
			"behavior", b.ID,
			"trigger", trigger,
			"error", err,
		)
		return &domain.ReactionError{
			ObjectID:   obj.ID(),
			BehaviorID: b.ID,
			Trigger:    trigger,
			Err:        err,
		}
	}
	return nil
}
