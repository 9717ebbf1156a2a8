// Copyright 2025 The TensorView Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package tensor

import (
	"github.com/arotem3/TensorView/internal/check"
	"github.com/arotem3/TensorView/internal/shape"
	"github.com/arotem3/TensorView/internal/storage"
)

// TransformView computes f(src[i]) each time an element is read. It has the
// shape of its source and is always read-only and non-contiguous.
type TransformView[T any] struct {
	engine[T, shape.Shape, *storage.Transformed[T]]
}

// Transform returns a lazy view applying f to every element of src.
// Transforming a TransformView composes the functions: the result reads the
// original buffer through x ↦ g(f(x)) rather than wrapping the first view.
//
// Example:
//
//	x, _ := tensor.FromSlice([]int{0, 1, 2, 3, 4, 5}, 2, 3)
//	y := tensor.Transform(func(v int) float64 { return 2*float64(v) + 1 }, x)
//	y.At(1, 2) // 11
func Transform[T, U any](f func(T) U, src Readable[T]) *TransformView[U] {
	sh, st := src.layout()
	v := &TransformView[U]{}
	v.sh, v.st = sh, storage.Map(f, st)
	return v
}

// Slice returns the transform restricted to the block selected by args.
func (v *TransformView[T]) Slice(args ...Arg) *TransformView[T] {
	off, sub := v.selection(args)
	s := &TransformView[T]{}
	s.sh, s.st = sub, v.st.Window(off)
	return s
}

// TrySlice is Slice returning an error instead of panicking.
func (v *TransformView[T]) TrySlice(args ...Arg) (s *TransformView[T], err error) {
	defer check.Recover(&err)
	return v.Slice(args...), nil
}

// Materialize copies the computed elements into a new owning tensor.
func (v *TransformView[T]) Materialize() (*Tensor[T], error) {
	t, err := NewWith(Config[T]{Mode: v.Mode()}, v.Extents()...)
	if err != nil {
		return nil, err
	}
	copy(t.Data(), v.Copy())
	return t, nil
}
