package services

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	MetricCommandHandled   = "command.handled"
	MetricMutationSuccess  = "ledger.mutation.success"
	MetricMutationFailed   = "ledger.mutation.failed"
	MetricMutationDuration = "ledger.mutation"
	MetricEventPublishFail = "events.publish.failed"
)

type PrometheusMetrics struct {
	commandsTotal      *prometheus.CounterVec
	mutationsTotal     *prometheus.CounterVec
	mutationDuration   prometheus.Histogram
	eventPublishFailed prometheus.Counter
}

// NewPrometheusMetrics registers the ledger collectors with reg
func NewPrometheusMetrics(reg prometheus.Registerer) MetricsRecorderInterface {
	factory := promauto.With(reg)
	return &PrometheusMetrics{
		commandsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "ledger_commands_total",
				Help: "Total number of text commands handled",
			},
			[]string{"kind", "result"},
		),
		mutationsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "ledger_mutations_total",
				Help: "Total number of ledger mutations",
			},
			[]string{"operation", "status"},
		),
		mutationDuration: factory.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "ledger_mutation_duration_milliseconds",
				Help:    "Ledger mutation duration in milliseconds",
				Buckets: prometheus.ExponentialBuckets(1, 2, 12),
			},
		),
		eventPublishFailed: factory.NewCounter(
			prometheus.CounterOpts{
				Name: "ledger_event_publish_failures_total",
				Help: "Total number of ledger events that could not be published",
			},
		),
	}
}

func (m *PrometheusMetrics) IncrementCounter(name string, tags map[string]string) {
	switch name {
	case MetricCommandHandled:
		m.commandsTotal.WithLabelValues(tags["kind"], tags["result"]).Inc()
	case MetricMutationSuccess:
		m.mutationsTotal.WithLabelValues(tags["operation"], "success").Inc()
	case MetricMutationFailed:
		m.mutationsTotal.WithLabelValues(tags["operation"], "failed").Inc()
	case MetricEventPublishFail:
		m.eventPublishFailed.Inc()
	}
}

func (m *PrometheusMetrics) RecordProcessingTime(name string, duration time.Duration) {
	if name == MetricMutationDuration {
		m.mutationDuration.Observe(float64(duration.Milliseconds()))
	}
}

// NoopMetrics discards everything
type NoopMetrics struct{}

func (NoopMetrics) IncrementCounter(string, map[string]string) {}

func (NoopMetrics) RecordProcessingTime(string, time.Duration) {}
