// Package buffer provides the fixed-shape float32 storage type and its
// ownership lifecycle for the colvec library.
package buffer

import "fmt"

// Buffer is a fixed-shape rows × cols container of float32 scalars.
//
// A Buffer exclusively owns its storage. Copy allocates fresh storage and
// deep-copies; Move transfers the storage to a new Buffer and leaves the
// source in a moved-from state whose Release is a no-op. Storage for a
// given allocation is returned to the allocator exactly once, by whichever
// Buffer owns it when Release is called.
type Buffer struct {
	rows  int
	cols  int
	data  []float32 // nil once moved-from or released
	alloc Allocator
}

// NewZeroed creates a Buffer with all rows*cols scalars set to zero.
// A nil alloc selects Heap.
func NewZeroed(rows, cols int, alloc Allocator) (*Buffer, error) {
	if rows <= 0 || cols <= 0 {
		return nil, fmt.Errorf("buffer: invalid shape %dx%d (extents must be > 0)", rows, cols)
	}
	if alloc == nil {
		alloc = Heap
	}
	return &Buffer{
		rows:  rows,
		cols:  cols,
		data:  alloc.Alloc(rows * cols),
		alloc: alloc,
	}, nil
}

// NewFromOwned wraps storage the caller already owns, without copying or
// initializing it. Ownership of data transfers entirely to the returned
// Buffer; the caller must not retain the slice. The storage must have come
// from alloc (or Heap when alloc is nil) so that Release returns it to the
// right place.
func NewFromOwned(data []float32, rows, cols int, alloc Allocator) (*Buffer, error) {
	if rows <= 0 || cols <= 0 {
		return nil, fmt.Errorf("buffer: invalid shape %dx%d (extents must be > 0)", rows, cols)
	}
	if len(data) != rows*cols {
		return nil, fmt.Errorf("buffer: storage length %d does not match shape %dx%d", len(data), rows, cols)
	}
	if alloc == nil {
		alloc = Heap
	}
	return &Buffer{rows: rows, cols: cols, data: data, alloc: alloc}, nil
}

// Rows returns the row extent.
func (b *Buffer) Rows() int { return b.rows }

// Cols returns the column extent.
func (b *Buffer) Cols() int { return b.cols }

// Len returns the total number of scalars, always rows*cols.
func (b *Buffer) Len() int { return b.rows * b.cols }

// Owns reports whether this Buffer currently owns storage. It is false
// after Move or Release.
func (b *Buffer) Owns() bool { return b.data != nil }

// Allocator returns the allocator this Buffer's storage came from.
func (b *Buffer) Allocator() Allocator { return b.alloc }

// Data returns the raw storage slice in row-major order.
// WARNING: direct access to underlying memory. Mutations are visible to the
// owning Buffer; nil for a moved-from Buffer.
func (b *Buffer) Data() []float32 { return b.data }

// Copy allocates fresh storage of identical shape and deep-copies every
// element. The result is fully independent: mutating one buffer never
// affects the other. Panics on a moved-from receiver.
func (b *Buffer) Copy() *Buffer {
	if b.data == nil {
		panic("buffer: Copy of moved-from or released buffer")
	}
	dup := b.alloc.Alloc(len(b.data))
	copy(dup, b.data)
	return &Buffer{rows: b.rows, cols: b.cols, data: dup, alloc: b.alloc}
}

// Move transfers storage ownership to a new Buffer. The receiver is
// tombstoned (its data handle is nilled), so releasing it afterwards does
// not free the storage a second time. Panics on a moved-from receiver.
func (b *Buffer) Move() *Buffer {
	if b.data == nil {
		panic("buffer: Move of moved-from or released buffer")
	}
	dst := &Buffer{rows: b.rows, cols: b.cols, data: b.data, alloc: b.alloc}
	b.data = nil
	return dst
}

// At returns the scalar at row y, column x. Access is checked:
// out-of-range coordinates panic rather than read adjacent rows.
func (b *Buffer) At(y, x int) float32 {
	return b.data[b.index(y, x)]
}

// Set stores v at row y, column x.
func (b *Buffer) Set(y, x int, v float32) {
	b.data[b.index(y, x)] = v
}

func (b *Buffer) index(y, x int) int {
	if y < 0 || y >= b.rows || x < 0 || x >= b.cols {
		panic(fmt.Sprintf("buffer: index (%d,%d) out of range for %dx%d buffer", y, x, b.rows, b.cols))
	}
	return y*b.cols + x
}

// Release returns the storage to the allocator if this Buffer still owns
// it. Releasing a moved-from Buffer, or releasing twice, is a no-op: the
// underlying allocation is freed exactly once.
func (b *Buffer) Release() {
	if b.data == nil {
		return
	}
	b.alloc.Free(b.data)
	b.data = nil
}
