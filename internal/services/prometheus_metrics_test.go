package services

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestPrometheusMetrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	metrics := NewPrometheusMetrics(reg).(*PrometheusMetrics)

	metrics.IncrementCounter(MetricCommandHandled, map[string]string{"kind": "entry", "result": "ok"})
	metrics.IncrementCounter(MetricCommandHandled, map[string]string{"kind": "entry", "result": "ok"})
	metrics.IncrementCounter(MetricMutationSuccess, map[string]string{"operation": "create_entry"})
	metrics.IncrementCounter(MetricMutationFailed, map[string]string{"operation": "create_entry"})
	metrics.IncrementCounter(MetricEventPublishFail, nil)
	metrics.IncrementCounter("unknown.metric", nil)
	metrics.RecordProcessingTime(MetricMutationDuration, 3*time.Millisecond)

	assert.Equal(t, 2.0, testutil.ToFloat64(metrics.commandsTotal.WithLabelValues("entry", "ok")))
	assert.Equal(t, 1.0, testutil.ToFloat64(metrics.mutationsTotal.WithLabelValues("create_entry", "success")))
	assert.Equal(t, 1.0, testutil.ToFloat64(metrics.mutationsTotal.WithLabelValues("create_entry", "failed")))
	assert.Equal(t, 1.0, testutil.ToFloat64(metrics.eventPublishFailed))
	assert.Equal(t, 1, testutil.CollectAndCount(metrics.mutationDuration))
}
