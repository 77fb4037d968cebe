package observability

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/aretw0/roentgen/pkg/domain"
	"github.com/aretw0/roentgen/pkg/registry"
)

// Outcome label values.
const (
	OutcomePass = "pass"
	OutcomeFail = "fail"
)

// Metrics holds the prometheus collectors fed by its middleware.
type Metrics struct {
	runs *prometheus.CounterVec
}

// NewMetrics creates the collectors and registers them with reg.
// A nil reg leaves them unregistered.
func NewMetrics(reg prometheus.Registerer) (*Metrics, error) {
	runs := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "roentgen",
			Name:      "validator_runs_total",
			Help:      "Validator runs by schema type and outcome.",
		},
		[]string{"type", "outcome"},
	)
	if reg != nil {
		if err := reg.Register(runs); err != nil {
			return nil, err
		}
	}
	return &Metrics{runs: runs}, nil
}

// Runs returns the counter vector, labelled by type and outcome.
func (m *Metrics) Runs() *prometheus.CounterVec {
	return m.runs
}

// Middleware counts every run of every validator built by the registry.
func (m *Metrics) Middleware() registry.Middleware {
	return func(typeName string, v domain.Validator) domain.Validator {
		pass := m.runs.WithLabelValues(typeName, OutcomePass)
		fail := m.runs.WithLabelValues(typeName, OutcomeFail)

		return domain.ValidatorFunc(func(input any) domain.Result {
			res := v.Run(input)
			if res.OK() {
				pass.Inc()
			} else {
				fail.Inc()
			}
			return res
		})
	}
}
