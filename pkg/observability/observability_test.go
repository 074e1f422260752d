package observability_test

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/aretw0/arbor"
	"github.com/aretw0/arbor/pkg/adapters/memory"
	"github.com/aretw0/arbor/pkg/domain"
	"github.com/aretw0/arbor/pkg/observability"
	"github.com/aretw0/arbor/pkg/plugins/user"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetrics_RecordHelloLifecycle(t *testing.T) {
	ctx := context.Background()
	reg := prometheus.NewRegistry()
	metrics, err := observability.NewMetrics(reg)
	require.NoError(t, err)

	rt := arbor.New(arbor.WithLifecycleHooks(metrics.Hooks()))
	tabs := memory.NewTabs(rt)
	require.NoError(t, user.Register(rt, tabs))

	require.NoError(t, rt.Invoke(ctx, user.CommandSayHello))
	require.NoError(t, rt.Invoke(ctx, user.CommandSayHello))
	assert.Equal(t, 1.0, testutil.ToFloat64(metrics.ObjectsCreated.WithLabelValues(user.TemplateHello)))
	assert.Equal(t, 1.0, testutil.ToFloat64(metrics.LiveObjects.WithLabelValues(user.TemplateHello)))
	assert.Equal(t, 2.0, testutil.ToFloat64(metrics.Commands.WithLabelValues(user.CommandSayHello, "ok")))

	require.NoError(t, tabs.CloseFocused(ctx))
	assert.Equal(t, 1.0, testutil.ToFloat64(metrics.ObjectsDestroyed.WithLabelValues(user.TemplateHello)))
	assert.Equal(t, 0.0, testutil.ToFloat64(metrics.LiveObjects.WithLabelValues(user.TemplateHello)))
	assert.Equal(t, 1.0, testutil.ToFloat64(metrics.Reactions.WithLabelValues(user.BehaviorOnCloseDestroy, "ok")))
	assert.Equal(t, 1.0, testutil.ToFloat64(metrics.Raises.WithLabelValues(domain.TriggerClose, "true")))
	assert.Equal(t, 1.0, testutil.ToFloat64(metrics.Raises.WithLabelValues(domain.TriggerFocus, "false")))

	_ = rt.Invoke(ctx, "no.such.command")
	assert.Equal(t, 1.0, testutil.ToFloat64(metrics.Commands.WithLabelValues("unknown", "unknown")))
}

func TestMetrics_DoubleRegistrationFails(t *testing.T) {
	reg := prometheus.NewRegistry()
	_, err := observability.NewMetrics(reg)
	require.NoError(t, err)
	_, err = observability.NewMetrics(reg)
	assert.Error(t, err)
}

func TestLoggingHooks_WarnsOnFailure(t *testing.T) {
	ctx := context.Background()
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelWarn}))

	rt := arbor.New(arbor.WithLifecycleHooks(observability.LoggingHooks(logger)))
	require.NoError(t, rt.RegisterBehavior(domain.Behavior{
		ID:       "broken",
		Triggers: []string{"ping"},
		Reaction: func(context.Context, *domain.Object, ...any) error { return errors.New("boom") },
	}))
	require.NoError(t, rt.RegisterTemplate(domain.Template{ID: "panel", Behaviors: []string{"broken"}}))
	obj, err := rt.Create(ctx, "panel")
	require.NoError(t, err)

	assert.ErrorIs(t, rt.Raise(ctx, obj, "ping"), domain.ErrReactionFailure)
	assert.Contains(t, buf.String(), "behavior=broken")
	assert.NotContains(t, buf.String(), "object_create", "debug events stay below the warn threshold")
}
