// Copyright 2025 The Colvec Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package column provides the public API for colvec's 1-D vector type and
// its softmax operations.
//
// A Column wraps an N×1 buffer.Buffer and exposes three numerically stable
// softmax variants that all produce the same distribution:
//
//	c, _ := column.NewRand(1024, column.Uniform(rng), buffer.Heap)
//	p := c.SoftmaxOnline()
//	q := c.SoftmaxTwoPass()
//	ok := p.ApproxEqual(q) // true within column.Epsilon
//
// Softmax results are freshly allocated; the input Column is never
// modified.
package column

import (
	"math/rand"

	"github.com/colvec-ml/colvec/buffer"
	"github.com/colvec-ml/colvec/internal/column"
)

// Epsilon is the absolute tolerance used by ApproxEqual.
const Epsilon = column.Epsilon

// Column is a length-N vector of float32 scalars backed by an N×1 Buffer.
type Column = column.Column

// Filler fills a destination slice with values from some source
// distribution. It is the injected random-generation collaborator.
type Filler = column.Filler

// Uniform returns a Filler producing values uniform in [0, 1) from rng.
func Uniform(rng *rand.Rand) Filler {
	return column.Uniform(rng)
}

// NewZeros creates a zero-filled Column of length n.
func NewZeros(n int, alloc buffer.Allocator) (*Column, error) {
	return column.NewZeros(n, alloc)
}

// NewRand creates a Column of length n filled by fill.
func NewRand(n int, fill Filler, alloc buffer.Allocator) (*Column, error) {
	return column.NewRand(n, fill, alloc)
}
