// Copyright 2025 The Colvec Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package column_test

import (
	"math/rand"
	"testing"

	"github.com/colvec-ml/colvec/buffer"
	"github.com/colvec-ml/colvec/column"
)

// TestPublicAPI exercises the whole exported surface: construction, element
// access, the three softmax variants, comparison, and release accounting.
func TestPublicAPI(t *testing.T) {
	counter := buffer.NewCountingAllocator()
	rng := rand.New(rand.NewSource(42))

	c, err := column.NewRand(128, column.Uniform(rng), counter)
	if err != nil {
		t.Fatalf("NewRand failed: %v", err)
	}
	if c.Len() != 128 {
		t.Errorf("Len() = %d, want 128", c.Len())
	}

	twoPass := c.SoftmaxTwoPass()
	unrolled := c.SoftmaxTwoPassUnrolled()
	online := c.SoftmaxOnline()

	if !twoPass.ApproxEqual(unrolled) || !twoPass.ApproxEqual(online) {
		t.Error("softmax variants disagree beyond column.Epsilon")
	}

	var sum float64
	for i := 0; i < twoPass.Len(); i++ {
		sum += float64(twoPass.At(i))
	}
	if sum < 1-column.Epsilon || sum > 1+column.Epsilon {
		t.Errorf("softmax sum = %v, want 1 within %v", sum, column.Epsilon)
	}

	for _, out := range []*column.Column{twoPass, unrolled, online} {
		out.Release()
	}
	c.Release()

	if counter.Live() != 0 {
		t.Errorf("Live() = %d after releasing everything, want 0", counter.Live())
	}
}

// TestZerosThroughFacade verifies zero-fill construction and mutation via
// the public package.
func TestZerosThroughFacade(t *testing.T) {
	c, err := column.NewZeros(4, buffer.Heap)
	if err != nil {
		t.Fatalf("NewZeros failed: %v", err)
	}

	c.Set(2, 1.25)
	if c.At(2) != 1.25 {
		t.Errorf("At(2) = %v, want 1.25", c.At(2))
	}
	if c.At(0) != 0 {
		t.Errorf("At(0) = %v, want 0", c.At(0))
	}
}
