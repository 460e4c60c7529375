// Package kernel implements the numerically stable softmax kernels over
// float32 slices.
//
// Three variants are provided, all computing the same distribution:
//
//   - SoftmaxTwoPass: max pass, then exp-and-accumulate pass, then
//     normalize. The subtraction of the maximum keeps every exponent
//     argument <= 0, so no input magnitude can overflow the exponential.
//   - SoftmaxTwoPassUnrolled: the same algorithm with 4-wide unrolled
//     loops and independent partial accumulators.
//   - SoftmaxOnline: a single accumulation pass tracking a running maximum
//     and a correspondingly rescaled running normalizer, followed by a
//     normalization pass.
//
// Reduction order differs between the variants, so results agree only up
// to float32 rounding; callers compare with an absolute tolerance rather
// than exact equality. Which variant is faster depends on the workload
// (memory-bandwidth-bound vs compute-bound); the benchmarks in this
// package measure, they do not assume.
//
// Exponentials are evaluated in float64 via math.Exp and narrowed, the
// same convention the rest of the library uses for float32 transcendental
// math.
package kernel
