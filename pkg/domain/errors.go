package domain

import (
	"errors"
	"fmt"
)

// ErrUnknownTemplate is returned when an object is requested from a template id that was never registered.
var ErrUnknownTemplate = errors.New("unknown template")

// ErrUnknownBehavior is returned when a template attaches a behavior id that was never registered.
var ErrUnknownBehavior = errors.New("unknown behavior")

// ErrUnknownCommand is returned when a command id cannot be found in the command registry.
var ErrUnknownCommand = errors.New("unknown command")

// ErrReactionFailure marks an error returned by a behavior reaction during a raise.
var ErrReactionFailure = errors.New("reaction failed")

// ErrObjectDestroyed is returned when an event is raised on an object that is no longer live.
var ErrObjectDestroyed = errors.New("object destroyed")

// ErrRecursionLimit is returned when raises and command invocations nest deeper than the runtime allows.
var ErrRecursionLimit = errors.New("recursion limit exceeded")

var (
	ErrInvalidBehavior = errors.New("invalid behavior")
	ErrInvalidTemplate = errors.New("invalid template")
	ErrInvalidCommand  = errors.New("invalid command")
)

// ReactionError describes which behavior failed while handling a trigger.
// It matches both ErrReactionFailure and the underlying cause with errors.Is.
type ReactionError struct {
	ObjectID   string
	BehaviorID string
	Trigger    string
	Err        error
}

func (e *ReactionError) Error() string {
	return fmt.Sprintf("%s: behavior %s on %s (trigger %q): %v",
		ErrReactionFailure, e.BehaviorID, e.ObjectID, e.Trigger, e.Err)
}

func (e *ReactionError) Unwrap() []error {
	return []error{ErrReactionFailure, e.Err}
}
