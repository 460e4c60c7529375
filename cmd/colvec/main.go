// Package main provides a thin driver for the colvec softmax kernels: it
// builds a random column, runs each variant once, cross-checks them, and
// times them with the bench harness.
package main

import (
	"flag"
	"fmt"
	"math/rand"
	"os"

	"github.com/colvec-ml/colvec/buffer"
	"github.com/colvec-ml/colvec/column"
	"github.com/colvec-ml/colvec/internal/bench"
)

func main() {
	n := flag.Int("n", 4096, "column length")
	warmup := flag.Int("warmup", 10, "untimed warmup iterations")
	iters := flag.Int("iters", 100, "timed iterations")
	seed := flag.Int64("seed", 1, "random seed")
	flag.Parse()

	rng := rand.New(rand.NewSource(*seed))
	in, err := column.NewRand(*n, column.Uniform(rng), buffer.Heap)
	if err != nil {
		fmt.Fprintf(os.Stderr, "colvec: %v\n", err)
		os.Exit(1)
	}

	variants := []struct {
		name string
		fn   func() *column.Column
	}{
		{"two-pass", in.SoftmaxTwoPass},
		{"two-pass-unrolled", in.SoftmaxTwoPassUnrolled},
		{"online", in.SoftmaxOnline},
	}

	outs := make([]*column.Column, len(variants))
	for i, v := range variants {
		out := v.fn()
		outs[i] = out

		var sum float64
		for j := 0; j < out.Len(); j++ {
			sum += float64(out.At(j))
		}
		head := out.Len()
		if head > 4 {
			head = 4
		}
		fmt.Printf("%-18s sum=%.6f head=", v.name, sum)
		for j := 0; j < head; j++ {
			fmt.Printf(" %.6f", out.At(j))
		}
		fmt.Println()
	}

	for i := 1; i < len(outs); i++ {
		if !outs[0].ApproxEqual(outs[i]) {
			fmt.Fprintf(os.Stderr, "colvec: %s and %s disagree beyond tolerance\n",
				variants[0].name, variants[i].name)
			os.Exit(1)
		}
	}
	fmt.Printf("all variants agree within %g\n\n", column.Epsilon)

	for _, v := range variants {
		fn := v.fn
		report := bench.Run(v.name, *warmup, *iters, func() {
			out := fn()
			bench.KeepAlive(out)
			out.Release()
		})
		fmt.Println(report)
	}
}
