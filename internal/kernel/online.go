package kernel

import "math"

// OnlineState carries the running maximum M and the running normalizer D of
// an online softmax accumulation.
//
// Invariant: after folding elements x_1..x_k, M is their maximum and
// D == Σ_{j<=k} exp(x_j - M). Whenever a new maximum is discovered the
// previous normalizer is rescaled by exp(M_prev - M), which is exactly what
// keeps the invariant true without revisiting earlier elements.
type OnlineState struct {
	M float32
	D float32
}

// NewOnlineState returns the empty state (M = -Inf, D = 0), the identity
// element of Merge.
func NewOnlineState() OnlineState {
	return OnlineState{M: float32(math.Inf(-1))}
}

// Update folds one element into the state.
func (s OnlineState) Update(x float32) OnlineState {
	m := s.M
	if x > m {
		m = x
	}
	d := s.D*float32(math.Exp(float64(s.M-m))) + float32(math.Exp(float64(x-m)))
	return OnlineState{M: m, D: d}
}

// Merge combines two partial states accumulated over disjoint index ranges
// into the state of their union:
//
//	m = max(m1, m2)
//	d = d1*exp(m1-m) + d2*exp(m2-m)
//
// Merge is associative, so partitions of a large input may be folded
// independently and combined in any grouping. The empty state is the
// identity.
func (s OnlineState) Merge(o OnlineState) OnlineState {
	if s.D == 0 && math.IsInf(float64(s.M), -1) {
		return o
	}
	if o.D == 0 && math.IsInf(float64(o.M), -1) {
		return s
	}
	m := s.M
	if o.M > m {
		m = o.M
	}
	d := s.D*float32(math.Exp(float64(s.M-m))) + o.D*float32(math.Exp(float64(o.M-m)))
	return OnlineState{M: m, D: d}
}

// SoftmaxOnline writes the softmax of src into dst using a single
// accumulation pass over an OnlineState followed by a normalization pass.
// It trades one extra exponential and multiply per element against a whole
// traversal of the input; same length contract as SoftmaxTwoPass.
func SoftmaxOnline(dst, src []float32) {
	checkLengths(dst, src)
	if len(src) == 0 {
		return
	}

	s := NewOnlineState()
	for _, v := range src {
		s = s.Update(v)
	}

	inv := 1 / s.D
	for i, v := range src {
		dst[i] = float32(math.Exp(float64(v-s.M))) * inv
	}
}
