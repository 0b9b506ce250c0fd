// Copyright (c) 2025 AccelByte Inc. All Rights Reserved.
// This is licensed software from AccelByte Inc, for limitations
// and restrictions contact your company contract manager.

// Package benchmark runs the sequential baseline and the pipelined parallel
// simulation and aggregates their statistics.
package benchmark

import (
	"fmt"
	"sync/atomic"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/Lama2323/para/pkg/client"
	"github.com/Lama2323/para/pkg/config"
	"github.com/Lama2323/para/pkg/envelope"
	"github.com/Lama2323/para/pkg/game"
	"github.com/Lama2323/para/pkg/metrics"
	"github.com/Lama2323/para/pkg/models"
	"github.com/Lama2323/para/pkg/scheduler"
	"github.com/Lama2323/para/pkg/tasks"
)

// Result is the outcome of one benchmark run.
type Result struct {
	Mode            string
	Threads         int
	Elapsed         time.Duration
	Processed       int64
	Rollbacks       int64
	Steals          uint64
	Pending         int64
	ClientsFinished int64
}

func (r Result) TimeMs() float64 {
	return float64(r.Elapsed.Microseconds()) / 1000.0
}

// Throughput returns processed inputs per second.
func (r Result) Throughput() float64 {
	if r.Elapsed <= 0 {
		return 0
	}
	return float64(r.Processed) / r.Elapsed.Seconds()
}

// Speedup returns the baseline's elapsed time over this run's elapsed time.
func (r Result) Speedup(baseline Result) float64 {
	if r.Elapsed <= 0 {
		return 0
	}
	return float64(baseline.Elapsed) / float64(r.Elapsed)
}

// RunSequential drains a pre-generated input set on the calling goroutine.
func RunSequential(scope *envelope.Scope, cfg *config.Config, inputs []models.Input) Result {
	runScope := scope.NewChildScope("benchmark.sequential")
	defer runScope.Finish()

	server := game.NewGameServer(cfg.NumMatches)
	server.Start()
	server.ReceiveMany(inputs)

	start := time.Now()
	server.ProcessAllSequential()
	elapsed := time.Since(start)

	result := Result{
		Mode:      "sequential",
		Threads:   1,
		Elapsed:   elapsed,
		Processed: server.ProcessedCount(),
		Rollbacks: server.TotalRollbackCount(),
		Pending:   server.PendingCount(),
	}

	runScope.SetAttributes("elapsed_ms", elapsed)
	runScope.SetAttributes("processed", result.Processed)
	runScope.Log.WithFields(logrus.Fields{
		"mode":      result.Mode,
		"processed": result.Processed,
		"rollbacks": result.Rollbacks,
	}).Debug("sequential run complete")

	return result
}

// RunPipelined runs the full producer/consumer pipeline on a work-stealing
// pool: one self-resubmitting producer task per client, one consumer task
// per match. Inputs are generated inside the producer tasks, so generation,
// routing, and match processing overlap.
func RunPipelined(scope *envelope.Scope, cfg *config.Config, numThreads int) Result {
	mode := fmt.Sprintf("parallel-%dT", numThreads)
	runScope := scope.NewChildScope("benchmark." + mode)
	defer runScope.Finish()

	server := game.NewGameServer(cfg.NumMatches)
	server.Start()
	manager := client.NewManager(cfg.NumClients, cfg.NumMatches, cfg.InputsPerClient)

	pool := scheduler.NewThreadPool(numThreads)
	defer pool.Shutdown()

	var clientsFinished atomic.Int64
	batches := models.NewPool()

	start := time.Now()
	for _, c := range manager.Clients() {
		task := &tasks.ClientTask{
			Client:          c,
			Server:          server,
			Pool:            pool,
			ClientsFinished: &clientsFinished,
			Batches:         batches,
			BatchSize:       cfg.BatchSize,
		}
		pool.Submit(task.Run)
	}
	for matchID := 0; matchID < cfg.NumMatches; matchID++ {
		task := &tasks.MatchTask{
			MatchID:         matchID,
			Server:          server,
			Pool:            pool,
			ClientsFinished: &clientsFinished,
			NumClients:      cfg.NumClients,
		}
		pool.Submit(task.Run)
	}
	pool.WaitAll()
	elapsed := time.Since(start)

	result := Result{
		Mode:            mode,
		Threads:         numThreads,
		Elapsed:         elapsed,
		Processed:       server.ProcessedCount(),
		Rollbacks:       server.TotalRollbackCount(),
		Steals:          pool.StealCount(),
		Pending:         server.PendingCount(),
		ClientsFinished: clientsFinished.Load(),
	}

	runScope.SetAttributes("elapsed_ms", elapsed)
	runScope.SetAttributes("processed", result.Processed)
	runScope.SetAttributes("steals", result.Steals)
	runScope.Log.WithFields(logrus.Fields{
		"mode":      result.Mode,
		"processed": result.Processed,
		"rollbacks": result.Rollbacks,
		"steals":    result.Steals,
	}).Debug("pipelined run complete")

	return result
}

// Record publishes one run's statistics to the metrics collection.
func Record(simMetrics metrics.SimulationMetrics, result Result) {
	simMetrics.AddProcessedInputs(result.Mode, float64(result.Processed))
	simMetrics.AddRollbacks(result.Mode, float64(result.Rollbacks))
	simMetrics.AddWorkSteals(result.Mode, float64(result.Steals))
	simMetrics.SetPendingInputs(result.Mode, float64(result.Pending))
	simMetrics.AddBenchmarkElapsedTimeMs(result.Mode, result.Elapsed)
}
