package observability

import (
	"context"
	"fmt"

	"github.com/aretw0/arbor/pkg/domain"
	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "arbor"

// Metrics holds the runtime collectors.
type Metrics struct {
	ObjectsCreated   *prometheus.CounterVec
	ObjectsDestroyed *prometheus.CounterVec
	LiveObjects      *prometheus.GaugeVec
	Raises           *prometheus.CounterVec
	Reactions        *prometheus.CounterVec
	ReactionDuration *prometheus.HistogramVec
	Commands         *prometheus.CounterVec
}

// NewMetrics creates the collectors and registers them on reg.
func NewMetrics(reg prometheus.Registerer) (*Metrics, error) {
	m := &Metrics{
		ObjectsCreated: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "objects_created_total",
			Help:      "Objects created, by template.",
		}, []string{"template"}),
		ObjectsDestroyed: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "objects_destroyed_total",
			Help:      "Objects destroyed, by template.",
		}, []string{"template"}),
		LiveObjects: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "objects_live",
			Help:      "Objects currently live, by template.",
		}, []string{"template"}),
		Raises: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "raises_total",
			Help:      "Triggers raised, by trigger and whether any behavior listened.",
		}, []string{"trigger", "matched"}),
		Reactions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "reactions_total",
			Help:      "Behavior reactions run, by behavior and outcome.",
		}, []string{"behavior", "outcome"}),
		ReactionDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "reaction_duration_seconds",
			Help:      "Duration of behavior reactions.",
			Buckets:   prometheus.ExponentialBuckets(0.0001, 4, 8),
		}, []string{"behavior"}),
		Commands: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "commands_total",
			Help:      "Command invocations, by command and outcome.",
		}, []string{"command", "outcome"}),
	}

	for _, c := range []prometheus.Collector{
		m.ObjectsCreated, m.ObjectsDestroyed, m.LiveObjects,
		m.Raises, m.Reactions, m.ReactionDuration, m.Commands,
	} {
		if err := reg.Register(c); err != nil {
			return nil, fmt.Errorf("register metrics: %w", err)
		}
	}
	return m, nil
}

// Hooks returns lifecycle hooks that record into the collectors.
func (m *Metrics) Hooks() domain.LifecycleHooks {
	return domain.LifecycleHooks{
		OnObjectCreate: func(_ context.Context, e *domain.ObjectEvent) {
			m.ObjectsCreated.WithLabelValues(e.TemplateID).Inc()
			m.LiveObjects.WithLabelValues(e.TemplateID).Inc()
		},
		OnObjectDestroy: func(_ context.Context, e *domain.ObjectEvent) {
			m.ObjectsDestroyed.WithLabelValues(e.TemplateID).Inc()
			m.LiveObjects.WithLabelValues(e.TemplateID).Dec()
		},
		OnRaise: func(_ context.Context, e *domain.RaiseEvent) {
			m.Raises.WithLabelValues(e.Trigger, fmt.Sprint(e.Matched > 0)).Inc()
		},
		OnReaction: func(_ context.Context, e *domain.ReactionEvent) {
			m.Reactions.WithLabelValues(e.BehaviorID, outcome(e.IsError, false)).Inc()
			m.ReactionDuration.WithLabelValues(e.BehaviorID).Observe(e.Duration.Seconds())
		},
		OnCommand: func(_ context.Context, e *domain.CommandEvent) {
			id := e.CommandID
			if e.Unknown {
				// Unknown ids come from user input; keep them out of the label set.
				id = "unknown"
			}
			m.Commands.WithLabelValues(id, outcome(e.IsError, e.Unknown)).Inc()
		},
	}
}

func outcome(isError, unknown bool) string {
	switch {
	case unknown:
		return "unknown"
	case isError:
		return "error"
	default:
		return "ok"
	}
}
