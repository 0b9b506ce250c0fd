package testsetup

import (
	"time"

	"github.com/Lama2323/para/pkg/metrics"
)

type stubMetricsCollection struct{}

func (s stubMetricsCollection) AddProcessedInputs(mode string, count float64) {
}

func (s stubMetricsCollection) AddRollbacks(mode string, count float64) {
}

func (s stubMetricsCollection) AddWorkSteals(mode string, count float64) {
}

func (s stubMetricsCollection) SetPendingInputs(mode string, count float64) {
}

func (s stubMetricsCollection) AddBenchmarkElapsedTimeMs(mode string, elapsedTime time.Duration) {
}

func NewMetrics() metrics.SimulationMetrics {
	return stubMetricsCollection{}
}
