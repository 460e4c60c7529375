package column

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/colvec-ml/colvec/internal/buffer"
)

func TestNewZeros(t *testing.T) {
	c, err := NewZeros(5, nil)
	require.NoError(t, err)

	assert.Equal(t, 5, c.Len())
	for i := 0; i < c.Len(); i++ {
		assert.Equal(t, float32(0), c.At(i))
	}
}

func TestNewZerosInvalidLength(t *testing.T) {
	for _, n := range []int{0, -1} {
		_, err := NewZeros(n, nil)
		assert.Error(t, err, "n=%d", n)
	}
}

func TestNewRandUsesFiller(t *testing.T) {
	// A deterministic filler stands in for the random collaborator.
	fill := func(dst []float32) {
		for i := range dst {
			dst[i] = float32(i) + 0.5
		}
	}

	c, err := NewRand(4, fill, nil)
	require.NoError(t, err)

	for i := 0; i < 4; i++ {
		assert.Equal(t, float32(i)+0.5, c.At(i))
	}
}

func TestUniformFillerRange(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	c, err := NewRand(1000, Uniform(rng), nil)
	require.NoError(t, err)

	for i := 0; i < c.Len(); i++ {
		v := c.At(i)
		assert.GreaterOrEqual(t, v, float32(0))
		assert.Less(t, v, float32(1))
	}
}

func TestSetAtDelegation(t *testing.T) {
	c, _ := NewZeros(3, nil)
	c.Set(1, 2.5)

	assert.Equal(t, float32(2.5), c.At(1))
	assert.Equal(t, float32(0), c.At(0))

	assert.Panics(t, func() { c.At(3) })
	assert.Panics(t, func() { c.At(-1) })
	assert.Panics(t, func() { c.Set(3, 1) })
}

func TestSoftmaxLeavesInputUnchanged(t *testing.T) {
	c, _ := NewZeros(4, nil)
	for i := 0; i < 4; i++ {
		c.Set(i, float32(i))
	}

	out := c.SoftmaxTwoPass()

	for i := 0; i < 4; i++ {
		assert.Equal(t, float32(i), c.At(i), "input mutated at %d", i)
	}

	// The result is independent storage: mutating it does not touch the
	// input, and vice versa.
	out.Set(0, -1)
	assert.Equal(t, float32(0), c.At(0))
	c.Set(1, 99)
	assert.NotEqual(t, float32(99), out.At(1))
}

func TestSoftmaxMethodsAgree(t *testing.T) {
	rng := rand.New(rand.NewSource(5))
	c, err := NewRand(257, Uniform(rng), nil)
	require.NoError(t, err)

	twoPass := c.SoftmaxTwoPass()
	unrolled := c.SoftmaxTwoPassUnrolled()
	online := c.SoftmaxOnline()

	assert.True(t, twoPass.ApproxEqual(unrolled))
	assert.True(t, twoPass.ApproxEqual(online))
	assert.True(t, unrolled.ApproxEqual(online))

	var sum float64
	for i := 0; i < twoPass.Len(); i++ {
		sum += float64(twoPass.At(i))
	}
	assert.InDelta(t, 1.0, sum, 1e-6)
}

func TestSoftmaxSingleElementColumn(t *testing.T) {
	c, _ := NewZeros(1, nil)
	c.Set(0, 1e8)

	for _, out := range []*Column{
		c.SoftmaxTwoPass(),
		c.SoftmaxTwoPassUnrolled(),
		c.SoftmaxOnline(),
	} {
		require.Equal(t, 1, out.Len())
		assert.Equal(t, float32(1.0), out.At(0))
	}
}

func TestApproxEqual(t *testing.T) {
	a, _ := NewZeros(3, nil)
	b, _ := NewZeros(3, nil)
	assert.True(t, a.ApproxEqual(b))

	// Within tolerance.
	b.Set(0, 5e-7)
	assert.True(t, a.ApproxEqual(b))

	// Outside tolerance.
	b.Set(0, 2e-6)
	assert.False(t, a.ApproxEqual(b))

	// Length mismatch and nil.
	c, _ := NewZeros(4, nil)
	assert.False(t, a.ApproxEqual(c))
	assert.False(t, a.ApproxEqual(nil))
}

func TestCopyIsIndependent(t *testing.T) {
	orig, _ := NewZeros(2, nil)
	orig.Set(0, 1)

	dup := orig.Copy()
	dup.Set(0, -1)

	assert.Equal(t, float32(1), orig.At(0))
	assert.Equal(t, float32(-1), dup.At(0))
}

// TestSoftmaxResultsAreLeakFree drives the whole lifecycle through a
// counting allocator: every allocation made on behalf of the column and its
// softmax results is freed exactly once.
func TestSoftmaxResultsAreLeakFree(t *testing.T) {
	counter := buffer.NewCountingAllocator()

	rng := rand.New(rand.NewSource(9))
	c, err := NewRand(64, Uniform(rng), counter)
	require.NoError(t, err)

	outs := []*Column{
		c.SoftmaxTwoPass(),
		c.SoftmaxTwoPassUnrolled(),
		c.SoftmaxOnline(),
	}
	assert.Equal(t, 4, counter.Allocs(), "input plus three results")

	for _, out := range outs {
		out.Release()
	}
	c.Release()
	c.Release() // double release must not over-free

	assert.Equal(t, counter.Allocs(), counter.Frees())
	assert.Equal(t, 0, counter.Live())
}
