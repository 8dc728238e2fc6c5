package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics provides observability for the electoral module.
// Tracks logins, tally-sheet outcomes, review decisions and operation latency.
type Metrics struct {
	LoginAttempts        *prometheus.CounterVec
	TallySheetsSubmitted prometheus.Counter
	TallySheetsRejected  *prometheus.CounterVec
	StatusChanges        *prometheus.CounterVec
	EntityMutations      *prometheus.CounterVec
	OperationDuration    *prometheus.HistogramVec
}

// New registers the electoral metrics with reg. Pass prometheus.DefaultRegisterer
// in production and a fresh registry in tests.
func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		LoginAttempts: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "escrutinio_login_attempts_total",
			Help: "Login attempts by role and outcome",
		}, []string{"role", "outcome"}),
		TallySheetsSubmitted: factory.NewCounter(prometheus.CounterOpts{
			Name: "escrutinio_tally_sheets_submitted_total",
			Help: "Tally sheets accepted from agents",
		}),
		TallySheetsRejected: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "escrutinio_tally_sheets_rejected_total",
			Help: "Tally sheets rejected, by reason",
		}, []string{"reason"}),
		StatusChanges: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "escrutinio_tally_sheet_status_changes_total",
			Help: "Review decisions by target status",
		}, []string{"status"}),
		EntityMutations: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "escrutinio_entity_mutations_total",
			Help: "Successful create, update and delete operations by entity",
		}, []string{"entity", "action"}),
		OperationDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "escrutinio_operation_duration_seconds",
			Help:    "Duration of service operations",
			Buckets: []float64{0.0001, 0.0005, 0.001, 0.005, 0.01, 0.025, 0.05, 0.1},
		}, []string{"operation"}),
	}
}

// IncrementLogin records a login attempt. role is empty for failures.
func (m *Metrics) IncrementLogin(role, outcome string) {
	if role == "" {
		role = "unknown"
	}
	m.LoginAttempts.WithLabelValues(role, outcome).Inc()
}

func (m *Metrics) IncrementTallySubmitted() {
	m.TallySheetsSubmitted.Inc()
}

func (m *Metrics) IncrementTallyRejected(reason string) {
	m.TallySheetsRejected.WithLabelValues(reason).Inc()
}

func (m *Metrics) IncrementStatusChange(status string) {
	m.StatusChanges.WithLabelValues(status).Inc()
}

func (m *Metrics) IncrementMutation(entity, action string) {
	m.EntityMutations.WithLabelValues(entity, action).Inc()
}

// ObserveOperation records the duration of a service operation.
// Call with time.Now() at the start of the operation.
func (m *Metrics) ObserveOperation(operation string, start time.Time) {
	m.OperationDuration.WithLabelValues(operation).Observe(time.Since(start).Seconds())
}
