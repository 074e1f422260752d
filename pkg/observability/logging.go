package observability

import (
	"context"
	"log/slog"

	"github.com/aretw0/arbor/pkg/domain"
)

// LoggingHooks returns lifecycle hooks that log every runtime event at debug level,
// and failed reactions and commands at warn level.
func LoggingHooks(logger *slog.Logger) domain.LifecycleHooks {
	return domain.LifecycleHooks{
		OnObjectCreate: func(ctx context.Context, e *domain.ObjectEvent) {
			logger.DebugContext(ctx, "object_create", "object", e.ObjectID, "template", e.TemplateID, "tags", e.Tags)
		},
		OnObjectDestroy: func(ctx context.Context, e *domain.ObjectEvent) {
			logger.DebugContext(ctx, "object_destroy", "object", e.ObjectID, "template", e.TemplateID)
		},
		OnRaise: func(ctx context.Context, e *domain.RaiseEvent) {
			logger.DebugContext(ctx, "raise", "object", e.ObjectID, "trigger", e.Trigger, "matched", e.Matched)
		},
		OnReaction: func(ctx context.Context, e *domain.ReactionEvent) {
			level := slog.LevelDebug
			if e.IsError {
				level = slog.LevelWarn
			}
			logger.Log(ctx, level, "reaction",
				"object", e.ObjectID,
				"behavior", e.BehaviorID,
				"trigger", e.Trigger,
				"duration", e.Duration,
				"is_error", e.IsError,
			)
		},
		OnCommand: func(ctx context.Context, e *domain.CommandEvent) {
			level := slog.LevelDebug
			if e.IsError {
				level = slog.LevelWarn
			}
			logger.Log(ctx, level, "command", "command", e.CommandID, "duration", e.Duration, "is_error", e.IsError)
		},
	}
}
