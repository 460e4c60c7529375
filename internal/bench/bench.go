// Package bench provides a small wall-clock harness for timing repeated
// invocations of a pure computation.
//
// The harness is a measurement collaborator: it runs a no-argument wrapped
// computation for a warmup phase, times a measured phase, and reports mean,
// min, and max latency. It asserts nothing about relative performance of
// the computations it times; which softmax variant wins is workload- and
// hardware-dependent.
package bench

import (
	"fmt"
	"runtime"
	"time"
)

// Report summarizes the measured phase of a Run.
type Report struct {
	Name       string
	Iterations int
	Mean       time.Duration
	Min        time.Duration
	Max        time.Duration
}

// String formats the report on one line.
func (r Report) String() string {
	return fmt.Sprintf("%s: %d iters, mean %v, min %v, max %v",
		r.Name, r.Iterations, r.Mean, r.Min, r.Max)
}

// Run invokes fn warmup times untimed, then iters times timed, and returns
// the latency report. iters must be >= 1; warmup may be 0. fn should wrap
// the computation under test and apply KeepAlive to its result so the work
// cannot be considered dead.
func Run(name string, warmup, iters int, fn func()) Report {
	if iters < 1 {
		panic("bench: iters must be >= 1")
	}
	for i := 0; i < warmup; i++ {
		fn()
	}

	var total, min, max time.Duration
	for i := 0; i < iters; i++ {
		start := time.Now()
		fn()
		elapsed := time.Since(start)

		total += elapsed
		if i == 0 || elapsed < min {
			min = elapsed
		}
		if elapsed > max {
			max = elapsed
		}
	}

	return Report{
		Name:       name,
		Iterations: iters,
		Mean:       total / time.Duration(iters),
		Min:        min,
		Max:        max,
	}
}

// KeepAlive pins x as live at the point of the call, preventing the
// computation that produced it from being elided when the result is
// otherwise unused.
func KeepAlive(x any) {
	runtime.KeepAlive(x)
}
