// Copyright 2025 The TensorView Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package tensor

import (
	"github.com/arotem3/TensorView/internal/check"
	"github.com/arotem3/TensorView/internal/shape"
	"github.com/arotem3/TensorView/internal/storage"
)

// Tensor owns a heap buffer (or one from Config.Alloc) sized to the product
// of its extents. Its rank is fixed at construction; its extents are not.
type Tensor[T any] struct {
	mutable[T, *shape.Dynamic, *storage.Owned[T]]
}

// New creates a zero-valued tensor with Strict checking and heap allocation.
//
// Example:
//
//	t, err := tensor.New[float32](3, 4)
func New[T any](extents ...int) (*Tensor[T], error) {
	return NewWith(Config[T]{}, extents...)
}

// NewWith creates a zero-valued tensor using cfg's mode and allocator.
func NewWith[T any](cfg Config[T], extents ...int) (*Tensor[T], error) {
	sh, err := shape.NewDynamic(cfg.Mode, extents...)
	if err != nil {
		return nil, err
	}
	st, err := storage.NewOwned(cfg.Mode, cfg.Alloc, sh.Size())
	if err != nil {
		return nil, err
	}
	t := &Tensor[T]{}
	t.sh, t.st = sh, st
	return t, nil
}

// FromSlice creates a tensor holding a copy of data.
func FromSlice[T any](data []T, extents ...int) (*Tensor[T], error) {
	t, err := New[T](extents...)
	if err != nil {
		return nil, err
	}
	if len(data) != t.Size() {
		return nil, check.BadShapef("shape %v requires %d elements, but got %d", t.sh, t.Size(), len(data))
	}
	copy(t.st.Data(), data)
	return t, nil
}

// Reshape replaces the extents and resizes the buffer to the new size.
// Fewer extents than the rank may be given; missing trailing axes get
// extent 1. Values at linear positions below min(old, new) size are kept
// and new slots are zero. Views and subviews taken earlier keep pointing at
// the old buffer if it had to grow.
func (t *Tensor[T]) Reshape(extents ...int) error {
	next := t.sh.Clone()
	if err := next.Reshape(extents...); err != nil {
		return err
	}
	if err := t.st.Resize(next.Size()); err != nil {
		return err
	}
	t.sh = next
	return nil
}

// Data returns the underlying buffer in logical order.
func (t *Tensor[T]) Data() []T { return t.st.Data() }

// View returns a mutable view of the tensor's buffer with the same shape.
func (t *Tensor[T]) View() *View[T] {
	return newView(t.sh.Clone(), storage.Borrow(t.Mode(), t.st.Data()))
}

// ConstView returns a read-only view of the tensor's buffer.
func (t *Tensor[T]) ConstView() *ConstView[T] {
	return newConstView(t.sh.Clone(), t.st.ReadOnly())
}

// Clone returns a heap-allocated deep copy with the same mode.
func (t *Tensor[T]) Clone() (*Tensor[T], error) {
	st, err := storage.NewOwned[T](t.Mode(), nil, t.Size())
	if err != nil {
		return nil, err
	}
	copy(st.Data(), t.st.Data())
	c := &Tensor[T]{}
	c.sh, c.st = t.sh.Clone(), st
	return c, nil
}

// FixedTensor owns a buffer whose shape never changes after construction.
type FixedTensor[T any] struct {
	mutable[T, *shape.Fixed, *storage.Owned[T]]
}

// NewFixed creates a zero-valued fixed-shape tensor.
func NewFixed[T any](extents ...int) (*FixedTensor[T], error) {
	return NewFixedWith(Config[T]{}, extents...)
}

// NewFixedWith creates a zero-valued fixed-shape tensor using cfg.
func NewFixedWith[T any](cfg Config[T], extents ...int) (*FixedTensor[T], error) {
	sh, err := shape.NewFixed(cfg.Mode, extents...)
	if err != nil {
		return nil, err
	}
	st, err := storage.NewOwned(cfg.Mode, cfg.Alloc, sh.Size())
	if err != nil {
		return nil, err
	}
	t := &FixedTensor[T]{}
	t.sh, t.st = sh, st
	return t, nil
}

// Data returns the underlying buffer in logical order.
func (t *FixedTensor[T]) Data() []T { return t.st.Data() }

// View returns a mutable fixed-shape view of the tensor's buffer.
func (t *FixedTensor[T]) View() *FixedView[T] {
	return newFixedView(t.sh, storage.Borrow(t.Mode(), t.st.Data()))
}

// ConstView returns a read-only view of the tensor's buffer.
func (t *FixedTensor[T]) ConstView() *ConstView[T] {
	return newConstView(t.sh.Dynamic(), t.st.ReadOnly())
}
