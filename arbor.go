package arbor

import (
	"context"
	"log/slog"

	"github.com/aretw0/arbor/internal/logging"
	"github.com/aretw0/arbor/internal/runtime"
	"github.com/aretw0/arbor/pkg/domain"
	"github.com/aretw0/arbor/pkg/ports"
	"github.com/aretw0/arbor/pkg/view"
)

// Runtime is the high-level entry point for the Arbor library.
// It is the registry context object: built once at startup and passed to every plugin.
type Runtime struct {
	engine  *runtime.Engine
	hooks   domain.LifecycleHooks
	builder view.Builder
	logger  *slog.Logger
	idGen   func(templateID string) string
}

var _ ports.Runtime = (*Runtime)(nil)

// Option defines a functional option for configuring the Runtime.
type Option func(*Runtime)

// WithLifecycleHooks registers observability hooks.
// Calling it more than once merges the hooks in order.
func WithLifecycleHooks(hooks domain.LifecycleHooks) Option {
	return func(r *Runtime) {
		r.hooks = r.hooks.Merge(hooks)
	}
}

// WithLogger sets a custom structured logger for the runtime.
func WithLogger(logger *slog.Logger) Option {
	return func(r *Runtime) {
		r.logger = logger
	}
}

// WithViewBuilder injects the host's view builder, handed to every template init.
func WithViewBuilder(b view.Builder) Option {
	return func(r *Runtime) {
		r.builder = b
	}
}

// WithIDGenerator overrides how object instance ids are minted (default: "<template>#<uuid>").
func WithIDGenerator(fn func(templateID string) string) Option {
	return func(r *Runtime) {
		r.idGen = fn
	}
}

// New initializes a new Arbor Runtime with empty registries.
func New(opts ...Option) *Runtime {
	rt := &Runtime{}
	for _, opt := range opts {
		opt(rt)
	}

	// Ensure logger is initialized (so we don't pass nil to runtime, which would overwrite its default)
	if rt.logger == nil {
		rt.logger = logging.NewNop()
	}
	if rt.builder == nil {
		rt.builder = view.NewBuilder()
	}

	rt.engine = runtime.NewEngine(
		runtime.WithLogger(rt.logger),
		runtime.WithLifecycleHooks(rt.hooks),
		runtime.WithViewBuilder(rt.builder),
		runtime.WithIDGenerator(rt.idGen),
	)
	return rt
}

// RegisterBehavior adds a behavior. Re-registering an id overwrites it.
func (r *Runtime) RegisterBehavior(b domain.Behavior) error {
	return r.engine.RegisterBehavior(b)
}

// RegisterTemplate adds an object template. Re-registering an id overwrites it.
func (r *Runtime) RegisterTemplate(t domain.Template) error {
	return r.engine.RegisterTemplate(t)
}

// RegisterCommand adds a command. Re-registering an id overwrites it.
func (r *Runtime) RegisterCommand(c domain.Command) error {
	return r.engine.RegisterCommand(c)
}

// Create instantiates a new object from a registered template.
func (r *Runtime) Create(ctx context.Context, templateID string) (*domain.Object, error) {
	return r.engine.Create(ctx, templateID)
}

// GetOrCreate returns the live singleton for a template, creating it on first use.
func (r *Runtime) GetOrCreate(ctx context.Context, templateID string) (*domain.Object, error) {
	return r.engine.GetOrCreate(ctx, templateID)
}

// Singleton returns the live singleton for a template, if GetOrCreate has made one.
func (r *Runtime) Singleton(templateID string) (*domain.Object, bool) {
	return r.engine.Singleton(templateID)
}

// Raise fires a trigger on an object, running every attached behavior listening for it.
func (r *Runtime) Raise(ctx context.Context, obj *domain.Object, trigger string, args ...any) error {
	return r.engine.Raise(ctx, obj, trigger, args...)
}

// Invoke executes the command registered under id.
func (r *Runtime) Invoke(ctx context.Context, id string, args ...any) error {
	return r.engine.Invoke(ctx, id, args...)
}

// Commands lists the registered commands ordered by id.
func (r *Runtime) Commands() []domain.CommandInfo {
	return r.engine.Commands().List()
}

// SuggestCommands returns registered command ids close to a mistyped one.
func (r *Runtime) SuggestCommands(id string, max int) []string {
	return r.engine.Commands().Suggest(id, max)
}

// Behaviors lists the registered behaviors ordered by id.
func (r *Runtime) Behaviors() []domain.Behavior {
	return r.engine.Behaviors().List()
}

// Templates lists the registered template ids.
func (r *Runtime) Templates() []string {
	return r.engine.Templates().List()
}

// Template returns a copy of a registered template.
func (r *Runtime) Template(id string) (domain.Template, error) {
	return r.engine.Templates().Get(id)
}

// Object returns a live object by instance id.
func (r *Runtime) Object(id string) (*domain.Object, bool) {
	return r.engine.Object(id)
}

// Objects returns the live objects in creation order.
func (r *Runtime) Objects() []*domain.Object {
	return r.engine.Objects()
}

// ByTag returns the live objects carrying tag.
func (r *Runtime) ByTag(tag string) []*domain.Object {
	return r.engine.ByTag(tag)
}

// Logger returns the runtime's logger, for plugins that want to log in the same stream.
func (r *Runtime) Logger() *slog.Logger {
	return r.logger
}
