package cli

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/aretw0/arbor"
	"github.com/aretw0/arbor/pkg/adapters/manifest"
	"github.com/aretw0/arbor/pkg/adapters/memory"
	"github.com/aretw0/arbor/pkg/domain"
	"github.com/aretw0/arbor/pkg/observability"
	"github.com/aretw0/arbor/pkg/plugins/user"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"
)

// App is a fully wired host: runtime, tab set, metrics and the loaded plugins.
type App struct {
	Runtime  *arbor.Runtime
	Tabs     *memory.Tabs
	Registry *prometheus.Registry
	Logger   *slog.Logger
}

// NewApp builds the runtime with logging and metrics hooks, registers the
// built-in user plugin and applies every manifest in cfg, in order.
func NewApp(cfg Config, logger *slog.Logger) (*App, error) {
	reg := prometheus.NewRegistry()
	metrics, err := observability.NewMetrics(reg)
	if err != nil {
		return nil, fmt.Errorf("metrics: %w", err)
	}

	var tabs *memory.Tabs
	detach := domain.LifecycleHooks{
		OnObjectDestroy: func(ctx context.Context, e *domain.ObjectEvent) {
			tabs.Detach(ctx, e)
		},
	}

	rt := arbor.New(
		arbor.WithLogger(logger),
		arbor.WithLifecycleHooks(observability.LoggingHooks(logger)),
		arbor.WithLifecycleHooks(metrics.Hooks()),
		arbor.WithLifecycleHooks(detach),
	)
	tabs = memory.NewTabs(rt, memory.WithLogger(logger))

	if err := user.Register(rt, tabs); err != nil {
		return nil, fmt.Errorf("register user plugin: %w", err)
	}

	for _, path := range cfg.Manifests {
		m, err := manifest.Load(path)
		if err != nil {
			return nil, err
		}
		if err := m.Apply(rt, tabs); err != nil {
			return nil, err
		}
		logger.Info("manifest loaded", "name", m.Name, "path", path,
			"behaviors", len(m.Behaviors), "templates", len(m.Templates), "commands", len(m.Commands))
	}

	return &App{
		Runtime:  rt,
		Tabs:     tabs,
		Registry: reg,
		Logger:   logger,
	}, nil
}

// WriteMetrics dumps the app's metrics in the Prometheus text format.
func (a *App) WriteMetrics(w io.Writer) error {
	families, err := a.Registry.Gather()
	if err != nil {
		return fmt.Errorf("gather metrics: %w", err)
	}
	for _, mf := range families {
		if _, err := expfmt.MetricFamilyToText(w, mf); err != nil {
			return err
		}
	}
	return nil
}
