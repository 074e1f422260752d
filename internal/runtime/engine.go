package runtime

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/aretw0/arbor/internal/logging"
	"github.com/aretw0/arbor/pkg/domain"
	"github.com/aretw0/arbor/pkg/registry"
	"github.com/aretw0/arbor/pkg/view"
)

// Engine owns the registries and the live object table.
// One Engine is built at process start and handed to every plugin.
type Engine struct {
	behaviors *registry.Behaviors
	templates *registry.Templates
	commands  *registry.Commands

	builder view.Builder
	hooks   domain.LifecycleHooks
	logger  *slog.Logger
	newID   func(templateID string) string
	now     func() time.Time

	mu         sync.RWMutex
	live       []*domain.Object
	byID       map[string]*domain.Object
	singletons map[string]*domain.Object
}

// EngineOption configures an Engine.
type EngineOption func(*Engine)

// WithLogger sets the structured logger.
func WithLogger(logger *slog.Logger) EngineOption {
	return func(e *Engine) {
		if logger != nil {
			e.logger = logger
		}
	}
}

// WithLifecycleHooks registers observability hooks.
func WithLifecycleHooks(hooks domain.LifecycleHooks) EngineOption {
	return func(e *Engine) {
		e.hooks = hooks
	}
}

// WithViewBuilder sets the builder passed to template init functions.
func WithViewBuilder(b view.Builder) EngineOption {
	return func(e *Engine) {
		if b != nil {
			e.builder = b
		}
	}
}

// WithIDGenerator overrides how object instance ids are minted.
func WithIDGenerator(fn func(templateID string) string) EngineOption {
	return func(e *Engine) {
		if fn != nil {
			e.newID = fn
		}
	}
}

// NewEngine creates an engine with empty registries.
func NewEngine(opts ...EngineOption) *Engine {
	e := &Engine{
		behaviors:  registry.NewBehaviors(),
		templates:  registry.NewTemplates(),
		commands:   registry.NewCommands(),
		builder:    view.NewBuilder(),
		logger:     logging.NewNop(),
		newID:      newObjectID,
		now:        time.Now,
		byID:       make(map[string]*domain.Object),
		singletons: make(map[string]*domain.Object),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Behaviors exposes the behavior registry.
func (e *Engine) Behaviors() *registry.Behaviors { return e.behaviors }

// Templates exposes the template registry.
func (e *Engine) Templates() *registry.Templates { return e.templates }

// Commands exposes the command registry.
func (e *Engine) Commands() *registry.Commands { return e.commands }

// RegisterBehavior stores a behavior. Re-registering an id replaces it.
// Objects created earlier keep the behaviors they resolved at creation.
func (e *Engine) RegisterBehavior(b domain.Behavior) error {
	replaced, err := e.behaviors.Register(b)
	if err != nil {
		return err
	}
	e.logger.Debug("behavior registered", "behavior", b.ID, "triggers", b.Triggers, "replaced", replaced)
	return nil
}

// RegisterTemplate stores an object template. Re-registering an id replaces it.
func (e *Engine) RegisterTemplate(t domain.Template) error {
	replaced, err := e.templates.Register(t)
	if err != nil {
		return err
	}
	e.logger.Debug("template registered", "template", t.ID, "tags", t.Tags, "replaced", replaced)
	return nil
}

// RegisterCommand stores a command. Re-registering an id replaces it.
func (e *Engine) RegisterCommand(c domain.Command) error {
	replaced, err := e.commands.Register(c)
	if err != nil {
		return err
	}
	e.logger.Debug("command registered", "command", c.ID, "replaced", replaced)
	return nil
}

// Invoke runs the command registered under id.
func (e *Engine) Invoke(ctx context.Context, id string, args ...any) error {
	start := e.now()
	ctx, err := descend(ctx)
	if err != nil {
		err = fmt.Errorf("invoke %s: %w", id, err)
	} else {
		err = e.commands.Invoke(ctx, id, args...)
	}

	if e.hooks.OnCommand != nil {
		e.hooks.OnCommand(ctx, &domain.CommandEvent{
			EventBase: domain.EventBase{Timestamp: e.now(), Type: domain.EventCommandInvoke},
			CommandID: id,
			Duration:  e.now().Sub(start),
			IsError:   err != nil,
			Unknown:   isUnknownCommand(err),
		})
	}
	if err != nil {
		e.logger.WarnContext(ctx, "command failed", "command", id, "error", err)
	}
	return err
}
