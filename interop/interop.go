// Copyright 2025 The TensorView Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package interop bridges float64 tensors and gonum matrices.
//
// Vector and Matrix share memory with their source; Dense and FromMatrix copy.
// Tensors store axis 0 fastest, so a rank-2 tensor is a column-major matrix
// and Matrix exposes it through the transpose of a row-major gonum Dense.
package interop

import (
	"github.com/pkg/errors"
	"gonum.org/v1/gonum/mat"

	"github.com/arotem3/TensorView/tensor"
)

// Vector wraps a contiguous rank-1 tensor as a gonum vector without copying.
func Vector(t tensor.Contiguous[float64]) (*mat.VecDense, error) {
	if t.Order() != 1 {
		return nil, errors.Wrapf(tensor.ErrRankMismatch, "vector needs rank 1, got rank %d", t.Order())
	}
	data, err := flat(t)
	if err != nil {
		return nil, err
	}
	return mat.NewVecDense(t.Size(), data), nil
}

// Matrix wraps a contiguous rank-2 tensor as a gonum matrix without copying.
// Writes through the returned matrix are visible in the tensor.
func Matrix(t tensor.Contiguous[float64]) (mat.Matrix, error) {
	if t.Order() != 2 {
		return nil, errors.Wrapf(tensor.ErrRankMismatch, "matrix needs rank 2, got rank %d", t.Order())
	}
	data, err := flat(t)
	if err != nil {
		return nil, err
	}
	rows, cols := t.Extent(0), t.Extent(1)
	return mat.NewDense(cols, rows, data).T(), nil
}

// flat returns the first Size() elements of t's buffer. Unbound views and
// buffers shorter than the shape (possible in Fast mode) are errors.
func flat(t tensor.Contiguous[float64]) ([]float64, error) {
	data := t.Data()
	if data == nil {
		return nil, errors.Wrapf(tensor.ErrBadAccess, "tensor of shape %v is not bound to a buffer", t.Extents())
	}
	if len(data) < t.Size() {
		return nil, errors.Wrapf(tensor.ErrRange, "shape %v needs %d elements, buffer holds %d", t.Extents(), t.Size(), len(data))
	}
	return data[:t.Size()], nil
}

// Dense copies any rank-2 tensor, including strided and transformed views,
// into a new row-major gonum matrix.
func Dense(t tensor.Readable[float64]) (*mat.Dense, error) {
	if t.Order() != 2 {
		return nil, errors.Wrapf(tensor.ErrRankMismatch, "matrix needs rank 2, got rank %d", t.Order())
	}
	rows, cols := t.Extent(0), t.Extent(1)
	m := mat.NewDense(rows, cols, nil)
	for j := 0; j < cols; j++ {
		for i := 0; i < rows; i++ {
			m.Set(i, j, t.At(i, j))
		}
	}
	return m, nil
}

// FromMatrix copies a gonum matrix into a new rank-2 tensor.
func FromMatrix(m mat.Matrix) (*tensor.Tensor[float64], error) {
	rows, cols := m.Dims()
	t, err := tensor.New[float64](rows, cols)
	if err != nil {
		return nil, err
	}
	for j := 0; j < cols; j++ {
		for i := 0; i < rows; i++ {
			t.Set(m.At(i, j), i, j)
		}
	}
	return t, nil
}
