// Copyright 2025 The TensorView Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package tensor

import (
	"github.com/arotem3/TensorView/internal/shape"
	"github.com/arotem3/TensorView/internal/storage"
)

// SubView is a mutable strided block of another tensor's buffer, produced
// by Slice. It must not outlive the buffer it was sliced from and has no
// Data method: its elements are not one flat run.
type SubView[T any] struct {
	mutable[T, *shape.Strided, *storage.Borrowed[T]]
}

func newSubView[T any](sh *shape.Strided, st *storage.Borrowed[T]) *SubView[T] {
	s := &SubView[T]{}
	s.sh, s.st = sh, st
	return s
}

// Strides returns the storage distance between neighbours along each axis.
func (s *SubView[T]) Strides() []int { return s.sh.Strides() }

// ConstView returns a read-only version of the subview.
func (s *SubView[T]) ConstView() *ConstSubView[T] {
	return newConstSubView(s.sh, s.st.ReadOnly())
}

// ConstSubView is a read-only strided block, produced by slicing a
// read-only view.
type ConstSubView[T any] struct {
	readOnly[T, *shape.Strided]
}

func newConstSubView[T any](sh *shape.Strided, st *storage.ReadOnly[T]) *ConstSubView[T] {
	s := &ConstSubView[T]{}
	s.sh, s.st = sh, st
	return s
}

// Strides returns the storage distance between neighbours along each axis.
func (s *ConstSubView[T]) Strides() []int { return s.sh.Strides() }
