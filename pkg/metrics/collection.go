// Copyright (c) 2025 AccelByte Inc. All Rights Reserved.
// This is licensed software from AccelByte Inc, for limitations
// and restrictions contact your company contract manager.

package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type prometheusMetrics struct {
	processedInputs      prometheus.CounterVec
	rollbacks            prometheus.CounterVec
	workSteals           prometheus.CounterVec
	pendingInputs        prometheus.GaugeVec
	benchmarkElapsedTime prometheus.HistogramVec
}

func setupPrometheusMetrics(registry *prometheus.Registry) prometheusMetrics {
	factory := promauto.With(registry)
	modeLabelDimensions := []string{"mode"}

	processedInputs := factory.NewCounterVec(
		prometheus.CounterOpts{
			Name: "para_sim_processed_inputs_total",
			Help: "A counter of inputs applied to match state machines",
		}, modeLabelDimensions)

	rollbacks := factory.NewCounterVec(
		prometheus.CounterOpts{
			Name: "para_sim_rollbacks_total",
			Help: "A counter of rollback-and-resimulate executions across all matches",
		}, modeLabelDimensions)

	workSteals := factory.NewCounterVec(
		prometheus.CounterOpts{
			Name: "para_sim_work_steals_total",
			Help: "A counter of successful task steals between scheduler workers",
		}, modeLabelDimensions)

	pendingInputs := factory.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "para_sim_pending_inputs",
			Help: "A gauge of inputs received but not yet drained into a match",
		}, modeLabelDimensions)

	//nolint:promlinter
	benchmarkElapsedTime := factory.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "para_sim_benchmark_elapsed_time_ms",
			Help:    "A histogram of benchmark phase elapsed time in milliseconds",
			Buckets: prometheus.ExponentialBuckets(1, 2, 14),
		}, modeLabelDimensions)

	return prometheusMetrics{
		processedInputs:      *processedInputs,
		rollbacks:            *rollbacks,
		workSteals:           *workSteals,
		pendingInputs:        *pendingInputs,
		benchmarkElapsedTime: *benchmarkElapsedTime,
	}
}

func (metrics prometheusMetrics) AddProcessedInputs(mode string, count float64) {
	metrics.processedInputs.With(prometheus.Labels{"mode": mode}).Add(count)
}

func (metrics prometheusMetrics) AddRollbacks(mode string, count float64) {
	metrics.rollbacks.With(prometheus.Labels{"mode": mode}).Add(count)
}

func (metrics prometheusMetrics) AddWorkSteals(mode string, count float64) {
	metrics.workSteals.With(prometheus.Labels{"mode": mode}).Add(count)
}

func (metrics prometheusMetrics) SetPendingInputs(mode string, count float64) {
	metrics.pendingInputs.With(prometheus.Labels{"mode": mode}).Set(count)
}

func (metrics prometheusMetrics) AddBenchmarkElapsedTimeMs(mode string, elapsedTime time.Duration) {
	metrics.benchmarkElapsedTime.With(prometheus.Labels{"mode": mode}).Observe(float64(elapsedTime.Milliseconds()))
}
