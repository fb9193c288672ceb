package metrics

import (
	"github.com/prometheus/client_golang/prometheus"

	"campaign-autopilot/internal/core/port"
)

// Recorder counts production and email transition outcomes. It implements
// port.OutcomeRecorder.
type Recorder struct {
	production  *prometheus.CounterVec
	transitions *prometheus.CounterVec
}

// NewRecorder creates the counters and registers them with reg.
func NewRecorder(reg prometheus.Registerer) *Recorder {
	r := &Recorder{
		production: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "autopilot_production_total",
			Help: "Production pipelines by outcome",
		}, []string{"outcome"}),
		transitions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "autopilot_email_transitions_total",
			Help: "Email lifecycle transitions by action and outcome",
		}, []string{"action", "outcome"}),
	}
	reg.MustRegister(r.production, r.transitions)
	return r
}

func (r *Recorder) RecordProduction(outcome port.ProductionOutcome) {
	r.production.WithLabelValues(string(outcome)).Inc()
}

func (r *Recorder) RecordEmailTransition(action port.CallbackAction, outcome port.ItemOutcome) {
	r.transitions.WithLabelValues(string(action), string(outcome)).Inc()
}

var _ port.OutcomeRecorder = (*Recorder)(nil)
