// Copyright 2025 The TensorView Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package tensor

import (
	"github.com/arotem3/TensorView/internal/check"
	"github.com/arotem3/TensorView/internal/shape"
	"github.com/arotem3/TensorView/internal/storage"
)

// Arg is one per-axis argument to Slice: an Idx, a Range or All.
type Arg = shape.Arg

// Idx selects one position along an axis and drops the axis from the result.
type Idx = shape.Idx

// Range is a half-open, strided interval along one axis.
type Range = shape.Range

// All selects a whole axis.
var All = shape.All

// Span returns the unit-stride range [begin, end).
func Span(begin, end int) Range { return shape.Span(begin, end) }

// Step returns the range [begin, end) taking every stride-th position.
func Step(begin, end, stride int) Range { return shape.Step(begin, end, stride) }

// Mode selects Strict or Fast bounds checking.
type Mode = check.Mode

// Bounds-checking modes.
const (
	Strict = check.Strict
	Fast   = check.Fast
)

// Error kinds. Test with errors.Is.
var (
	ErrRange        = check.ErrRange
	ErrBadShape     = check.ErrBadShape
	ErrBadAccess    = check.ErrBadAccess
	ErrRankMismatch = check.ErrRankMismatch
	ErrAlloc        = check.ErrAlloc
)

// Allocator supplies backing memory for owning tensors.
type Allocator[T any] = storage.Allocator[T]

// AllocFunc adapts a function to Allocator.
type AllocFunc[T any] = storage.AllocFunc[T]

// Heap returns the default make-backed allocator.
func Heap[T any]() Allocator[T] { return storage.Heap[T]() }

// NewPool returns an allocator that carves buffers out of one arena of the given capacity.
func NewPool[T any](capacity int) *storage.Pool[T] { return storage.NewPool[T](capacity) }

// Config holds construction-time settings. The zero value means Strict
// checking and heap allocation.
type Config[T any] struct {
	Mode  Mode
	Alloc Allocator[T]
}
