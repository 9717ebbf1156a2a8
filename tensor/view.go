// Copyright 2025 The TensorView Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package tensor

import (
	"github.com/arotem3/TensorView/internal/check"
	"github.com/arotem3/TensorView/internal/shape"
	"github.com/arotem3/TensorView/internal/storage"
)

// View gives multidimensional read/write access to a caller-owned slice.
// The caller keeps the slice alive and must not shrink it under the view.
type View[T any] struct {
	mutable[T, *shape.Dynamic, *storage.Borrowed[T]]
}

func newView[T any](sh *shape.Dynamic, st *storage.Borrowed[T]) *View[T] {
	v := &View[T]{}
	v.sh, v.st = sh, st
	return v
}

// ViewOf wraps data with the given extents without copying. In Strict mode
// data must hold at least the product of the extents. A nil slice gives an
// unbound view whose element accesses fail with ErrBadAccess.
func ViewOf[T any](data []T, extents ...int) (*View[T], error) {
	return ViewOfWith(Config[T]{}, data, extents...)
}

// ViewOfWith is ViewOf using cfg.Mode. cfg.Alloc is ignored.
func ViewOfWith[T any](cfg Config[T], data []T, extents ...int) (*View[T], error) {
	sh, err := shape.NewDynamic(cfg.Mode, extents...)
	if err != nil {
		return nil, err
	}
	if err := fits(cfg.Mode, data, sh.Size()); err != nil {
		return nil, err
	}
	return newView(sh, storage.Borrow(cfg.Mode, data)), nil
}

// ViewAs views src with rank axes. Missing trailing axes get extent 1; a
// source of higher rank fails with ErrRankMismatch.
func ViewAs[T any](src Mutable[T], rank int) (*View[T], error) {
	extents, err := shape.Pad(src.Mode(), src.Extents(), rank)
	if err != nil {
		return nil, err
	}
	sh, err := shape.NewDynamic(src.Mode(), extents...)
	if err != nil {
		return nil, err
	}
	return newView(sh, storage.Borrow(src.Mode(), src.Data())), nil
}

// ReshapeView returns a new view of src's buffer with different extents.
// In Strict mode the buffer must hold the new size.
func ReshapeView[T any](src Mutable[T], extents ...int) (*View[T], error) {
	return ViewOfWith(Config[T]{Mode: src.Mode()}, src.Data(), extents...)
}

// Reshape replaces the view's extents, keeping its rank. The buffer is not
// consulted: the caller guarantees it holds the new size.
func (v *View[T]) Reshape(extents ...int) error {
	return v.sh.Reshape(extents...)
}

// Data returns the borrowed slice.
func (v *View[T]) Data() []T { return v.st.Data() }

// ConstView returns a read-only view of the same buffer and shape.
func (v *View[T]) ConstView() *ConstView[T] {
	return newConstView(v.sh.Clone(), v.st.ReadOnly())
}

// FixedView is a View whose extents cannot change.
type FixedView[T any] struct {
	mutable[T, *shape.Fixed, *storage.Borrowed[T]]
}

func newFixedView[T any](sh *shape.Fixed, st *storage.Borrowed[T]) *FixedView[T] {
	v := &FixedView[T]{}
	v.sh, v.st = sh, st
	return v
}

// FixedViewOf wraps data with fixed extents.
func FixedViewOf[T any](data []T, extents ...int) (*FixedView[T], error) {
	return FixedViewOfWith(Config[T]{}, data, extents...)
}

// FixedViewOfWith is FixedViewOf using cfg.Mode.
func FixedViewOfWith[T any](cfg Config[T], data []T, extents ...int) (*FixedView[T], error) {
	sh, err := shape.NewFixed(cfg.Mode, extents...)
	if err != nil {
		return nil, err
	}
	if err := fits(cfg.Mode, data, sh.Size()); err != nil {
		return nil, err
	}
	return newFixedView(sh, storage.Borrow(cfg.Mode, data)), nil
}

// Data returns the borrowed slice.
func (v *FixedView[T]) Data() []T { return v.st.Data() }

// ConstView is a read-only view of a caller-owned slice. Elements and
// subviews taken from it are read-only too.
type ConstView[T any] struct {
	readOnly[T, *shape.Dynamic]
}

func newConstView[T any](sh *shape.Dynamic, st *storage.ReadOnly[T]) *ConstView[T] {
	v := &ConstView[T]{}
	v.sh, v.st = sh, st
	return v
}

// ConstViewOf wraps data for reading only.
func ConstViewOf[T any](data []T, extents ...int) (*ConstView[T], error) {
	return ConstViewOfWith(Config[T]{}, data, extents...)
}

// ConstViewOfWith is ConstViewOf using cfg.Mode.
func ConstViewOfWith[T any](cfg Config[T], data []T, extents ...int) (*ConstView[T], error) {
	sh, err := shape.NewDynamic(cfg.Mode, extents...)
	if err != nil {
		return nil, err
	}
	if err := fits(cfg.Mode, data, sh.Size()); err != nil {
		return nil, err
	}
	return newConstView(sh, storage.View(cfg.Mode, data)), nil
}

// ConstViewAs is ViewAs for read-only views; any contiguous source works.
func ConstViewAs[T any](src Contiguous[T], rank int) (*ConstView[T], error) {
	extents, err := shape.Pad(src.Mode(), src.Extents(), rank)
	if err != nil {
		return nil, err
	}
	return ConstViewOfWith(Config[T]{Mode: src.Mode()}, src.Data(), extents...)
}

// Reshape replaces the view's extents without consulting the buffer.
func (v *ConstView[T]) Reshape(extents ...int) error {
	return v.sh.Reshape(extents...)
}

// Data returns the borrowed slice. Callers must not write through it.
func (v *ConstView[T]) Data() []T { return v.st.Data() }

func fits[T any](mode Mode, data []T, size int) error {
	if mode.Checked() && data != nil && len(data) < size {
		return check.Rangef("shape needs %d elements, buffer holds %d", size, len(data))
	}
	return nil
}
