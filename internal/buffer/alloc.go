package buffer

// Allocator obtains and releases float32 storage for buffers.
//
// Buffers notify their allocator exactly once per allocation, at the end of
// the lifetime of whichever buffer owns the storage at that point. The
// default Heap allocator leaves reclamation to the garbage collector, but
// the notification still fires, which is what makes leak and double-free
// accounting possible.
type Allocator interface {
	// Alloc returns a zeroed slice of exactly n scalars.
	Alloc(n int) []float32
	// Free returns storage previously obtained from Alloc.
	Free(data []float32)
}

// Heap is the default allocator, backed by the Go heap.
var Heap Allocator = heapAllocator{}

type heapAllocator struct{}

func (heapAllocator) Alloc(n int) []float32 { return make([]float32, n) }
func (heapAllocator) Free([]float32)        {}

// CountingAllocator wraps another Allocator and counts every Alloc and Free
// that passes through it. Used to verify that copy, move, and release keep
// the free count equal to the alloc count.
type CountingAllocator struct {
	inner  Allocator
	allocs int
	frees  int
}

// NewCountingAllocator returns a CountingAllocator delegating to Heap.
func NewCountingAllocator() *CountingAllocator {
	return &CountingAllocator{inner: Heap}
}

// Alloc delegates to the wrapped allocator and increments the alloc count.
func (c *CountingAllocator) Alloc(n int) []float32 {
	c.allocs++
	return c.inner.Alloc(n)
}

// Free delegates to the wrapped allocator and increments the free count.
func (c *CountingAllocator) Free(data []float32) {
	c.frees++
	c.inner.Free(data)
}

// Allocs returns the number of allocations served.
func (c *CountingAllocator) Allocs() int { return c.allocs }

// Frees returns the number of releases observed.
func (c *CountingAllocator) Frees() int { return c.frees }

// Live returns the number of allocations not yet freed.
func (c *CountingAllocator) Live() int { return c.allocs - c.frees }
