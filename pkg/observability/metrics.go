package observability

import (
	"errors"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/aretw0/cascade/pkg/dispatch"
	"github.com/aretw0/cascade/pkg/domain"
)

// Metrics holds the prometheus collectors fed by dispatch hooks.
type Metrics struct {
	applied   *prometheus.CounterVec
	cancelled *prometheus.CounterVec
	injected  *prometheus.CounterVec
	errors    *prometheus.CounterVec
	actions   prometheus.Histogram
}

// NewMetrics creates the collectors and registers them on reg.
func NewMetrics(reg prometheus.Registerer) (*Metrics, error) {
	m := &Metrics{
		applied: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "cascade_actions_applied_total",
			Help: "Actions that reached the reducer, by kind.",
		}, []string{"kind"}),
		cancelled: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "cascade_actions_cancelled_total",
			Help: "Actions vetoed by middleware, by kind.",
		}, []string{"kind"}),
		injected: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "cascade_actions_injected_total",
			Help: "Actions injected by middleware, by kind of the action that caused them.",
		}, []string{"kind"}),
		errors: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "cascade_dispatch_errors_total",
			Help: "Dispatch calls aborted by a limit, by limit.",
		}, []string{"limit"}),
		actions: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "cascade_dispatch_actions",
			Help:    "Actions applied per top-level dispatch call.",
			Buckets: prometheus.ExponentialBuckets(1, 4, 8),
		}),
	}

	for _, c := range []prometheus.Collector{m.applied, m.cancelled, m.injected, m.errors, m.actions} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}
	return m, nil
}

// Hooks returns the dispatch hooks that update m.
func (m *Metrics) Hooks() dispatch.Hooks[domain.Action] {
	return dispatch.Hooks[domain.Action]{
		OnCancel: func(a domain.Action, _ int) {
			m.cancelled.WithLabelValues(a.Kind.String()).Inc()
		},
		OnApply: func(a domain.Action, _ int, _ bool) {
			m.applied.WithLabelValues(a.Kind.String()).Inc()
		},
		OnInject: func(a domain.Action, _ int, n int) {
			m.injected.WithLabelValues(a.Kind.String()).Add(float64(n))
		},
		OnComplete: func(_ domain.Action, o dispatch.Outcome, err error) {
			m.actions.Observe(float64(o.Applied))
			var limitErr *dispatch.LimitError
			if errors.As(err, &limitErr) {
				m.errors.WithLabelValues(string(limitErr.Limit)).Inc()
			}
		},
	}
}
