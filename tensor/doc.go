// Copyright 2025 The TensorView Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package tensor provides zero-copy multidimensional indexing over flat buffers.
//
// # Overview
//
// Every tensor type in this package pairs a shape with a storage:
//   - Tensor and FixedTensor own their buffer
//   - View, FixedView and ConstView borrow a caller's slice
//   - SubView and ConstSubView are strided blocks of another tensor's buffer
//   - TransformView applies a function to each element on access
//
// Axis 0 varies fastest: in a (2, 3) tensor the element (i, j) is stored at
// i + 2*j.
//
// # Basic Usage
//
//	data := []float64{1, 2, 3, 4, 5, 6}
//	v, err := tensor.ViewOf(data, 2, 3)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	v.At(1, 2)                        // 6
//	col := v.Slice(tensor.All, tensor.Idx(2))
//	col.Copy()                        // [5 6]
//
//	t, _ := tensor.New[float64](2, 3)
//	t.Set(1.5, 0, 1)
//	_ = t.Reshape(3, 2)               // keeps values at every linear position
//
// # Lazy Transforms
//
//	sq := tensor.Transform(func(x float64) float64 { return x * x }, v)
//	neg := tensor.Transform(func(x float64) float64 { return -x }, sq)
//	neg.At(1, 2)                      // -36, one fused function over v's buffer
//
// # Bounds Checking
//
// Each constructor takes its Mode from Config (Strict by default). Strict
// mode validates every index, range and extent; element access and slicing
// panic with an error wrapping ErrRange, ErrBadAccess or ErrRankMismatch,
// and the Try variants return that error instead. Fast mode skips all
// validation.
//
// # Raw Data
//
// Only statically contiguous types (Tensor, FixedTensor, View, FixedView,
// ConstView) have a Data method. Subviews and transform views do not.
package tensor
