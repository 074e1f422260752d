package domain

import (
	"context"
	"time"
)

// EventType defines the category of the event.
type EventType string

const (
	EventObjectCreate  EventType = "object_create"
	EventObjectDestroy EventType = "object_destroy"
	EventRaise         EventType = "raise"
	EventReaction      EventType = "reaction"
	EventCommandInvoke EventType = "command_invoke"
)

// EventBase contains common fields for all events.
type EventBase struct {
	Timestamp time.Time `json:"timestamp"`
	Type      EventType `json:"type"`
}

// ObjectEvent reports an object lifecycle transition.
type ObjectEvent struct {
	EventBase
	ObjectID   string   `json:"object_id"`
	TemplateID string   `json:"template_id"`
	Tags       []string `json:"tags,omitempty"`
}

// RaiseEvent reports a trigger raised on an object and how many behaviors matched it.
type RaiseEvent struct {
	EventBase
	ObjectID string `json:"object_id"`
	Trigger  string `json:"trigger"`
	Matched  int    `json:"matched"`
}

// ReactionEvent reports the outcome of a single behavior reaction.
type ReactionEvent struct {
	EventBase
	ObjectID   string        `json:"object_id"`
	BehaviorID string        `json:"behavior_id"`
	Trigger    string        `json:"trigger"`
	Duration   time.Duration `json:"duration"`
	IsError    bool          `json:"is_error,omitempty"`
}

// CommandEvent reports a command invocation.
type CommandEvent struct {
	EventBase
	CommandID string        `json:"command_id"`
	Duration  time.Duration `json:"duration"`
	IsError   bool          `json:"is_error,omitempty"`
	Unknown   bool          `json:"unknown,omitempty"`
}

// LifecycleHooks defines callbacks for runtime observability.
// Any field may be nil.
type LifecycleHooks struct {
	OnObjectCreate  func(context.Context, *ObjectEvent)
	OnObjectDestroy func(context.Context, *ObjectEvent)
	OnRaise         func(context.Context, *RaiseEvent)
	OnReaction      func(context.Context, *ReactionEvent)
	OnCommand       func(context.Context, *CommandEvent)
}

// Merge returns hooks that call h first and then other, for every callback either defines.
func (h LifecycleHooks) Merge(other LifecycleHooks) LifecycleHooks {
	return LifecycleHooks{
		OnObjectCreate:  chain(h.OnObjectCreate, other.OnObjectCreate),
		OnObjectDestroy: chain(h.OnObjectDestroy, other.OnObjectDestroy),
		OnRaise:         chain(h.OnRaise, other.OnRaise),
		OnReaction:      chain(h.OnReaction, other.OnReaction),
		OnCommand:       chain(h.OnCommand, other.OnCommand),
	}
}

func chain[E any](a, b func(context.Context, *E)) func(context.Context, *E) {
	switch {
	case a == nil:
		return b
	case b == nil:
		return a
	}
	return func(ctx context.Context, e *E) {
		a(ctx, e)
		b(ctx, e)
	}
}
