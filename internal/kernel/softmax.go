package kernel

import "math"

// SoftmaxTwoPass writes the safe softmax of src into dst.
// dst and src must have the same length and may not alias in a way that
// overwrites unread input; the column layer always passes fresh storage.
// An empty src is a no-op.
func SoftmaxTwoPass(dst, src []float32) {
	checkLengths(dst, src)
	if len(src) == 0 {
		return
	}

	maxVal := src[0]
	for _, v := range src[1:] {
		if v > maxVal {
			maxVal = v
		}
	}

	var sum float32
	for i, v := range src {
		e := float32(math.Exp(float64(v - maxVal)))
		dst[i] = e
		sum += e
	}

	inv := 1 / sum
	for i := range dst {
		dst[i] *= inv
	}
}

// SoftmaxTwoPassUnrolled computes the same distribution as SoftmaxTwoPass
// with 4-wide unrolled loops. Partial accumulators are kept independent so
// the adds form four chains; the combine order changes the low bits of the
// sum, which is why cross-variant comparison uses a tolerance.
func SoftmaxTwoPassUnrolled(dst, src []float32) {
	checkLengths(dst, src)
	n := len(src)
	if n == 0 {
		return
	}

	m0, m1, m2, m3 := src[0], src[0], src[0], src[0]
	i := 0
	for ; i+3 < n; i += 4 {
		if src[i] > m0 {
			m0 = src[i]
		}
		if src[i+1] > m1 {
			m1 = src[i+1]
		}
		if src[i+2] > m2 {
			m2 = src[i+2]
		}
		if src[i+3] > m3 {
			m3 = src[i+3]
		}
	}
	for ; i < n; i++ {
		if src[i] > m0 {
			m0 = src[i]
		}
	}
	if m1 > m0 {
		m0 = m1
	}
	if m2 > m0 {
		m0 = m2
	}
	if m3 > m0 {
		m0 = m3
	}
	maxVal := m0

	var sum0, sum1, sum2, sum3 float32
	i = 0
	for ; i+3 < n; i += 4 {
		w0 := float32(math.Exp(float64(src[i] - maxVal)))
		w1 := float32(math.Exp(float64(src[i+1] - maxVal)))
		w2 := float32(math.Exp(float64(src[i+2] - maxVal)))
		w3 := float32(math.Exp(float64(src[i+3] - maxVal)))
		dst[i] = w0
		dst[i+1] = w1
		dst[i+2] = w2
		dst[i+3] = w3
		sum0 += w0
		sum1 += w1
		sum2 += w2
		sum3 += w3
	}
	sum := (sum0 + sum1) + (sum2 + sum3)
	for ; i < n; i++ {
		w := float32(math.Exp(float64(src[i] - maxVal)))
		dst[i] = w
		sum += w
	}

	inv := 1 / sum
	i = 0
	for ; i+3 < n; i += 4 {
		dst[i] *= inv
		dst[i+1] *= inv
		dst[i+2] *= inv
		dst[i+3] *= inv
	}
	for ; i < n; i++ {
		dst[i] *= inv
	}
}

func checkLengths(dst, src []float32) {
	if len(dst) != len(src) {
		panic("kernel: dst and src lengths differ")
	}
}
