// Copyright (c) 2025 AccelByte Inc. All Rights Reserved.
// This is licensed software from AccelByte Inc, for limitations
// and restrictions contact your company contract manager.

// The para benchmark executable. Takes no arguments: it runs the sequential
// baseline, sweeps the pipelined mode over a range of worker counts, and
// prints a summary table.
package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/sirupsen/logrus"

	"github.com/Lama2323/para/pkg/benchmark"
	"github.com/Lama2323/para/pkg/client"
	"github.com/Lama2323/para/pkg/common"
	"github.com/Lama2323/para/pkg/config"
	"github.com/Lama2323/para/pkg/constants"
	"github.com/Lama2323/para/pkg/envelope"
	"github.com/Lama2323/para/pkg/metrics"
)

func printSeparator() {
	fmt.Println(strings.Repeat("=", 50))
}

func main() {
	logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	cfg, err := config.Load()
	if err != nil {
		logrus.WithError(err).Fatal("failed to load config")
	}

	registry := prometheus.NewRegistry()
	simMetrics := metrics.NewMetrics(registry)

	scope := envelope.NewRootScope(context.Background(), "para-benchmark")
	defer scope.Finish()

	printSeparator()
	fmt.Println("  GAME SERVER SIMULATION - WORK STEALING DEMO")
	printSeparator()

	fmt.Println("\n[Configuration]")
	fmt.Printf("  Matches:          %d\n", cfg.NumMatches)
	fmt.Printf("  Clients:          %d\n", cfg.NumClients)
	fmt.Printf("  Inputs/Client:    %d\n", cfg.InputsPerClient)
	fmt.Printf("  Total Inputs:     %d\n", cfg.TotalInputs())
	fmt.Printf("  Arena Size:       %dx%d\n", constants.ArenaWidth, constants.ArenaHeight)
	fmt.Printf("  Rollback Every:   %d ticks\n", constants.RollbackInterval)
	fmt.Printf("  Hardware Threads: %d\n", common.HardwareConcurrency())

	fmt.Println("\n[Generating Inputs]")
	genStart := time.Now()
	manager := client.NewManager(cfg.NumClients, cfg.NumMatches, cfg.InputsPerClient)
	allInputs := manager.AllInputs()
	genElapsed := time.Since(genStart)
	fmt.Printf("  Generated %d inputs in %.2f ms\n",
		len(allInputs), float64(genElapsed.Microseconds())/1000.0)

	printSeparator()
	fmt.Println("  SEQUENTIAL MODE")
	printSeparator()

	seqResult := benchmark.RunSequential(scope, cfg, allInputs)
	benchmark.Record(simMetrics, seqResult)

	fmt.Printf("  Time:        %.2f ms\n", seqResult.TimeMs())
	fmt.Printf("  Processed:   %d inputs\n", seqResult.Processed)
	fmt.Printf("  Rollbacks:   %d\n", seqResult.Rollbacks)
	fmt.Printf("  Throughput:  %.2f inputs/sec\n", seqResult.Throughput())

	results := []benchmark.Result{seqResult}

	for numThreads := cfg.MinThreads; numThreads <= cfg.MaxThreads; numThreads++ {
		printSeparator()
		fmt.Printf("  PARALLEL MODE (%d threads)\n", numThreads)
		printSeparator()

		parResult := benchmark.RunPipelined(scope, cfg, numThreads)
		benchmark.Record(simMetrics, parResult)
		results = append(results, parResult)

		fmt.Printf("  Time:        %.2f ms\n", parResult.TimeMs())
		fmt.Printf("  Processed:   %d inputs\n", parResult.Processed)
		fmt.Printf("  Rollbacks:   %d\n", parResult.Rollbacks)
		fmt.Printf("  Work Steals: %d\n", parResult.Steals)
		fmt.Printf("  Throughput:  %.2f inputs/sec\n", parResult.Throughput())
		fmt.Printf("  Speedup:     %.2fx\n", parResult.Speedup(seqResult))
	}

	printSeparator()
	fmt.Println("  SUMMARY")
	printSeparator()
	fmt.Println()
	fmt.Print(benchmark.Summary(results))

	fmt.Println()
	printSeparator()
	fmt.Println("  DEMO COMPLETE")
	printSeparator()

	fmt.Print("  Press any key to exit...")
	_, _ = bufio.NewReader(os.Stdin).ReadByte()
}
