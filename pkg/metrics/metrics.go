// Copyright (c) 2025 AccelByte Inc. All Rights Reserved.
// This is licensed software from AccelByte Inc, for limitations
// and restrictions contact your company contract manager.

package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

type SimulationMetrics interface {
	AddProcessedInputs(mode string, count float64)
	AddRollbacks(mode string, count float64)
	AddWorkSteals(mode string, count float64)
	SetPendingInputs(mode string, count float64)
	AddBenchmarkElapsedTimeMs(mode string, elapsedTime time.Duration)
}

func NewMetrics(registry *prometheus.Registry) SimulationMetrics {
	return setupPrometheusMetrics(registry)
}
