// Copyright (c) 2025 AccelByte Inc. All Rights Reserved.
// This is licensed software from AccelByte Inc, for limitations
// and restrictions contact your company contract manager.

package benchmark

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/elliotchance/pie/v2"
	"gonum.org/v1/gonum/stat"
)

// Summary renders the closing table: one row per run with time, speedup
// against the first (baseline) result, and steal count, followed by a
// speedup statistics line over the parallel runs.
func Summary(results []Result) string {
	if len(results) == 0 {
		return ""
	}
	baseline := results[0]

	var b strings.Builder
	b.WriteString("  Mode            | Time (ms) | Speedup | Steals\n")
	b.WriteString("  ----------------|-----------|---------|-------\n")

	for _, r := range results {
		steals := "N/A"
		if r.Threads > 1 {
			steals = strconv.FormatUint(r.Steals, 10)
		}
		fmt.Fprintf(&b, "  %-15s | %9.2f | %6.2fx | %6s\n",
			displayName(r), r.TimeMs(), r.Speedup(baseline), steals)
	}

	parallel := pie.Filter(results, func(r Result) bool { return r.Threads > 1 })
	if len(parallel) > 0 {
		speedups := pie.Map(parallel, func(r Result) float64 { return r.Speedup(baseline) })
		mean := stat.Mean(speedups, nil)
		sigma := 0.0
		if len(speedups) > 1 {
			sigma = stat.StdDev(speedups, nil)
		}
		fmt.Fprintf(&b, "\n  Parallel speedup over %d thread counts: mean %.2fx, stddev %.2f\n",
			len(parallel), mean, sigma)
	}

	return b.String()
}

func displayName(r Result) string {
	if r.Threads <= 1 {
		return "Sequential"
	}
	return fmt.Sprintf("Parallel (%2dT)", r.Threads)
}
