// Copyright 2025 The Colvec Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package buffer provides the public API for colvec's fixed-shape float32
// storage.
//
// A Buffer is a rows × cols container with exclusive ownership of its
// heap-backed storage:
//   - Copy allocates fresh storage and deep-copies (independent lifetimes)
//   - Move transfers storage to a new Buffer and tombstones the source
//   - Release frees the storage exactly once, whoever owns it at the time
//
// Example:
//
//	buf, _ := buffer.NewZeroed(4, 1, buffer.Heap)
//	buf.Set(0, 0, 1.5)
//	dup := buf.Copy() // independent storage
//	dst := buf.Move() // buf no longer owns anything
//	buf.Release()     // no-op
//	dst.Release()     // frees the original allocation
//	dup.Release()
package buffer

import "github.com/colvec-ml/colvec/internal/buffer"

// Buffer is a fixed-shape, exclusively-owned float32 container.
type Buffer = buffer.Buffer

// Allocator obtains and releases float32 storage for buffers.
type Allocator = buffer.Allocator

// CountingAllocator counts allocations and frees, for leak and double-free
// accounting.
type CountingAllocator = buffer.CountingAllocator

// Heap is the default allocator, backed by the Go heap.
var Heap = buffer.Heap

// NewZeroed creates a Buffer with all rows*cols scalars set to zero.
func NewZeroed(rows, cols int, alloc Allocator) (*Buffer, error) {
	return buffer.NewZeroed(rows, cols, alloc)
}

// NewFromOwned wraps an allocation the caller already owns, without
// copying. Ownership transfers entirely to the returned Buffer.
func NewFromOwned(data []float32, rows, cols int, alloc Allocator) (*Buffer, error) {
	return buffer.NewFromOwned(data, rows, cols, alloc)
}

// NewCountingAllocator returns a CountingAllocator delegating to Heap.
func NewCountingAllocator() *CountingAllocator {
	return buffer.NewCountingAllocator()
}
