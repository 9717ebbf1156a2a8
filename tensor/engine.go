// Copyright 2025 The TensorView Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package tensor

import (
	"fmt"
	"iter"
	"strings"

	"github.com/arotem3/TensorView/internal/check"
	"github.com/arotem3/TensorView/internal/shape"
	"github.com/arotem3/TensorView/internal/storage"
)

// Readable is implemented by every tensor and view in this package.
type Readable[T any] interface {
	Order() int
	Size() int
	Extent(d int) int
	Extents() []int
	Mode() Mode
	Contiguous() bool
	At(idx ...int) T
	Get(pos int) T
	layout() (shape.Shape, storage.Reader[T])
}

// Contiguous is implemented by tensors whose elements form one flat run of
// memory in logical order, so Data()[i] == Get(i).
type Contiguous[T any] interface {
	Readable[T]
	Data() []T
}

// Mutable is a contiguous tensor that accepts writes.
type Mutable[T any] interface {
	Contiguous[T]
	Set(v T, idx ...int)
}

// engine is the single implementation behind every tensor type: a shape
// that resolves indices and a storage that holds (or computes) elements.
type engine[T any, Sh shape.Shape, St storage.Reader[T]] struct {
	sh Sh
	st St
}

// Order returns the number of axes.
func (e *engine[T, Sh, St]) Order() int { return e.sh.Order() }

// Size returns the total number of elements.
func (e *engine[T, Sh, St]) Size() int { return e.sh.Size() }

// Extent returns the length of axis d.
func (e *engine[T, Sh, St]) Extent(d int) int { return e.sh.Extent(d) }

// Extents returns a copy of all extents.
func (e *engine[T, Sh, St]) Extents() []int { return e.sh.Extents() }

// Mode returns the bounds-checking mode fixed at construction.
func (e *engine[T, Sh, St]) Mode() Mode { return e.sh.Mode() }

// Contiguous reports whether both the shape and the storage are contiguous.
// It is false for every SubView, ConstSubView and TransformView.
func (e *engine[T, Sh, St]) Contiguous() bool {
	return e.sh.Contiguous() && e.st.Contiguous()
}

// At returns the element at the given multi-index.
// Panics if the index count does not match the rank or an index is out of bounds.
//
// Example:
//
//	v, _ := tensor.ViewOf([]float64{1, 2, 3, 4, 5, 6}, 2, 3)
//	v.At(1, 2) // 6
func (e *engine[T, Sh, St]) At(idx ...int) T {
	return e.st.Load(e.offset(idx))
}

// TryAt is At returning an error instead of panicking.
func (e *engine[T, Sh, St]) TryAt(idx ...int) (v T, err error) {
	defer check.Recover(&err)
	return e.At(idx...), nil
}

// Get returns the element at logical position pos in [0, Size()).
func (e *engine[T, Sh, St]) Get(pos int) T {
	return e.st.Load(e.linear(pos))
}

// Iter returns a cursor positioned before the first element.
func (e *engine[T, Sh, St]) Iter() *Iterator[T] {
	return newIterator[T](e.sh, e.st)
}

// All iterates over (position, value) pairs in logical order.
func (e *engine[T, Sh, St]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		n := e.sh.Size()
		for pos := 0; pos < n; pos++ {
			if !yield(pos, e.Get(pos)) {
				return
			}
		}
	}
}

// Values iterates over the elements in logical order.
func (e *engine[T, Sh, St]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, v := range e.All() {
			if !yield(v) {
				return
			}
		}
	}
}

// Copy returns the elements in logical order in a new slice.
func (e *engine[T, Sh, St]) Copy() []T {
	out := make([]T, 0, e.sh.Size())
	for v := range e.Values() {
		out = append(out, v)
	}
	return out
}

// String formats the extents followed by the elements in logical order.
func (e *engine[T, Sh, St]) String() string {
	var b strings.Builder
	fmt.Fprint(&b, e.sh, "[")
	for pos, v := range e.All() {
		if pos > 0 {
			b.WriteByte(' ')
		}
		fmt.Fprint(&b, v)
	}
	b.WriteByte(']')
	return b.String()
}

func (e *engine[T, Sh, St]) layout() (shape.Shape, storage.Reader[T]) {
	var sh shape.Shape = e.sh
	if d, ok := sh.(*shape.Dynamic); ok {
		sh = d.Clone()
	}
	switch st := any(e.st).(type) {
	case *storage.Owned[T]:
		return sh, st.ReadOnly()
	case *storage.Borrowed[T]:
		return sh, st.ReadOnly()
	}
	return sh, e.st
}

func (e *engine[T, Sh, St]) offset(idx []int) int {
	off, err := e.sh.Offset(idx...)
	if err != nil {
		panic(err)
	}
	return off
}

func (e *engine[T, Sh, St]) linear(pos int) int {
	off, err := e.sh.Linear(pos)
	if err != nil {
		panic(err)
	}
	return off
}

// selection resolves slicing arguments into the offset and shape of a
// strided block. At least one argument must be a Range or All.
func (e *engine[T, Sh, St]) selection(args []Arg) (int, *shape.Strided) {
	sel, err := e.sh.Resolve(args...)
	if err != nil {
		panic(err)
	}
	if sel.Scalar() {
		panic(check.RankMismatchf("slicing needs at least one Range or All argument; use At for single elements"))
	}
	sub, err := shape.NewStrided(e.sh.Mode(), sel.Ranges)
	if err != nil {
		panic(err)
	}
	return sel.Offset, sub
}

// mutable adds writes to an engine over writable storage.
type mutable[T any, Sh shape.Shape, St windowed[T]] struct {
	engine[T, Sh, St]
}

// windowed is writable storage that can hand out borrows at an offset.
type windowed[T any] interface {
	storage.Storage[T]
	Window(off int) *storage.Borrowed[T]
	ReadOnly() *storage.ReadOnly[T]
}

// Set sets the element at the given multi-index.
// Panics if the index count does not match the rank or an index is out of bounds.
func (m *mutable[T, Sh, St]) Set(v T, idx ...int) {
	m.st.Store(m.offset(idx), v)
}

// TrySet is Set returning an error instead of panicking.
func (m *mutable[T, Sh, St]) TrySet(v T, idx ...int) (err error) {
	defer check.Recover(&err)
	m.Set(v, idx...)
	return nil
}

// Ref returns a pointer to the element at the given multi-index.
func (m *mutable[T, Sh, St]) Ref(idx ...int) *T {
	return m.st.Ref(m.offset(idx))
}

// SetLinear sets the element at logical position pos.
func (m *mutable[T, Sh, St]) SetLinear(pos int, v T) {
	m.st.Store(m.linear(pos), v)
}

// RefLinear returns a pointer to the element at logical position pos.
func (m *mutable[T, Sh, St]) RefLinear(pos int) *T {
	return m.st.Ref(m.linear(pos))
}

// Fill sets every element to v.
func (m *mutable[T, Sh, St]) Fill(v T) {
	n := m.sh.Size()
	for pos := 0; pos < n; pos++ {
		m.SetLinear(pos, v)
	}
}

// Slice returns a mutable strided view of the block selected by args, one
// argument per axis. Axes given an Idx are dropped; Range and All axes are
// kept in order. The subview shares this tensor's buffer.
//
// Example:
//
//	v, _ := tensor.ViewOf([]float64{1, 2, 3, 4, 5, 6}, 2, 3)
//	col := v.Slice(tensor.All, tensor.Idx(2)) // rank 1, values [5 6]
func (m *mutable[T, Sh, St]) Slice(args ...Arg) *SubView[T] {
	off, sub := m.selection(args)
	return newSubView(sub, m.st.Window(off))
}

// TrySlice is Slice returning an error instead of panicking.
func (m *mutable[T, Sh, St]) TrySlice(args ...Arg) (s *SubView[T], err error) {
	defer check.Recover(&err)
	return m.Slice(args...), nil
}

// readOnly is an engine over read-only borrowed storage.
type readOnly[T any, Sh shape.Shape] struct {
	engine[T, Sh, *storage.ReadOnly[T]]
}

// Slice returns a read-only strided view of the block selected by args.
func (r *readOnly[T, Sh]) Slice(args ...Arg) *ConstSubView[T] {
	off, sub := r.selection(args)
	return newConstSubView(sub, r.st.Window(off))
}

// TrySlice is Slice returning an error instead of panicking.
func (r *readOnly[T, Sh]) TrySlice(args ...Arg) (s *ConstSubView[T], err error) {
	defer check.Recover(&err)
	return r.Slice(args...), nil
}
