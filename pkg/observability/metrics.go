package observability

import (
	"fmt"

	"github.com/aretw0/coerce/pkg/domain"
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the coercion collectors.
type Metrics struct {
	Resolutions   *prometheus.CounterVec
	ParseFailures *prometheus.CounterVec
	Cycles        prometheus.Counter
}

// NewMetrics creates the collectors and registers them with reg.
// A nil reg leaves them unregistered.
func NewMetrics(reg prometheus.Registerer) (*Metrics, error) {
	m := &Metrics{
		Resolutions: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "coerce_resolutions_total",
				Help: "Total number of coercion resolutions by source",
			},
			[]string{"source"},
		),
		ParseFailures: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "coerce_parse_failures_total",
				Help: "Total number of values rejected by a parser",
			},
			[]string{"target"},
		),
		Cycles: prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: "coerce_schema_cycles_total",
				Help: "Total number of schema reference cycles encountered",
			},
		),
	}

	if reg == nil {
		return m, nil
	}
	for _, c := range []prometheus.Collector{m.Resolutions, m.ParseFailures, m.Cycles} {
		if err := reg.Register(c); err != nil {
			return nil, fmt.Errorf("failed to register metrics: %w", err)
		}
	}
	return m, nil
}

// Hooks returns hooks that record every event into the collectors.
func (m *Metrics) Hooks() domain.Hooks {
	return domain.Hooks{
		OnResolve: func(e *domain.ResolveEvent) {
			m.Resolutions.WithLabelValues(string(e.Source)).Inc()
		},
		OnFailure: func(e *domain.FailureEvent) {
			switch e.Type {
			case domain.EventCycle:
				m.Cycles.Inc()
			default:
				target := e.Target
				if target == "" {
					target = "unknown"
				}
				m.ParseFailures.WithLabelValues(target).Inc()
			}
		},
	}
}

// ChainHooks merges several hook sets; each callback runs in order.
func ChainHooks(hooks ...domain.Hooks) domain.Hooks {
	return domain.Hooks{
		OnResolve: func(e *domain.ResolveEvent) {
			for _, h := range hooks {
				if h.OnResolve != nil {
					h.OnResolve(e)
				}
			}
		},
		OnFailure: func(e *domain.FailureEvent) {
			for _, h := range hooks {
				if h.OnFailure != nil {
					h.OnFailure(e)
				}
			}
		},
	}
}
