// Package column provides the 1-D logit/probability vector type built on
// the buffer package, and the softmax operations over it.
package column

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/colvec-ml/colvec/internal/buffer"
	"github.com/colvec-ml/colvec/internal/kernel"
)

// Epsilon is the absolute tolerance used by ApproxEqual. It is the single
// comparison tolerance in the library: reduction order differs between the
// softmax variants, so their outputs agree only up to float32 rounding.
const Epsilon = 1e-6

// Filler fills dst with values drawn from some source distribution. It is
// the injected random-generation collaborator: the column layer requires
// nothing of it beyond writing every element.
type Filler func(dst []float32)

// Uniform returns a Filler producing values uniform in [0, 1) from rng.
func Uniform(rng *rand.Rand) Filler {
	return func(dst []float32) {
		for i := range dst {
			dst[i] = rng.Float32()
		}
	}
}

// Column is a length-N vector of float32 scalars backed by an N×1 Buffer.
// Copy, move, and release behavior is entirely delegated to the embedded
// Buffer; the softmax methods never mutate the receiver and return a
// freshly allocated Column.
type Column struct {
	buf *buffer.Buffer
}

// NewZeros creates a zero-filled Column of length n.
// A nil alloc selects buffer.Heap.
func NewZeros(n int, alloc buffer.Allocator) (*Column, error) {
	buf, err := buffer.NewZeroed(n, 1, alloc)
	if err != nil {
		return nil, fmt.Errorf("column: %w", err)
	}
	return &Column{buf: buf}, nil
}

// NewRand creates a Column of length n filled by fill.
func NewRand(n int, fill Filler, alloc buffer.Allocator) (*Column, error) {
	c, err := NewZeros(n, alloc)
	if err != nil {
		return nil, err
	}
	fill(c.buf.Data())
	return c, nil
}

// Len returns the number of elements.
func (c *Column) Len() int { return c.buf.Rows() }

// At returns element i. Delegates to the Buffer at (i, 0); out-of-range
// indices panic.
func (c *Column) At(i int) float32 { return c.buf.At(i, 0) }

// Set stores v at element i.
func (c *Column) Set(i int, v float32) { c.buf.Set(i, 0, v) }

// Data returns the raw storage slice.
// WARNING: zero-copy view of the Column's memory.
func (c *Column) Data() []float32 { return c.buf.Data() }

// Copy returns a deep, independent copy of the Column.
func (c *Column) Copy() *Column { return &Column{buf: c.buf.Copy()} }

// Release returns the Column's storage to its allocator. Idempotent, like
// buffer.Release.
func (c *Column) Release() { c.buf.Release() }

// SoftmaxTwoPass computes the safe softmax of the Column: subtract the
// maximum, exponentiate, normalize. The result sums to 1 within rounding
// error for any finite input, however large.
func (c *Column) SoftmaxTwoPass() *Column {
	return c.apply(kernel.SoftmaxTwoPass)
}

// SoftmaxTwoPassUnrolled computes the same distribution as SoftmaxTwoPass
// with unrolled kernels; results match up to float32 reduction order.
func (c *Column) SoftmaxTwoPassUnrolled() *Column {
	return c.apply(kernel.SoftmaxTwoPassUnrolled)
}

// SoftmaxOnline computes the softmax with a single accumulation pass over
// a running (max, normalizer) state. See kernel.SoftmaxOnline.
func (c *Column) SoftmaxOnline() *Column {
	return c.apply(kernel.SoftmaxOnline)
}

// apply materializes a kernel's output into fresh storage from the
// receiver's allocator and wraps it without a second copy.
func (c *Column) apply(k func(dst, src []float32)) *Column {
	alloc := c.buf.Allocator()
	dst := alloc.Alloc(c.Len())
	k(dst, c.buf.Data())
	buf, err := buffer.NewFromOwned(dst, c.Len(), 1, alloc)
	if err != nil {
		panic(err) // length matches shape by construction
	}
	return &Column{buf: buf}
}

// ApproxEqual reports whether every element of c is within Epsilon of the
// corresponding element of other. Returns false for nil or for a length
// mismatch. NaN elements compare unequal to everything.
func (c *Column) ApproxEqual(other *Column) bool {
	if other == nil || c.Len() != other.Len() {
		return false
	}
	a, b := c.buf.Data(), other.buf.Data()
	for i := range a {
		if !(math.Abs(float64(a[i]-b[i])) <= Epsilon) {
			return false
		}
	}
	return true
}
