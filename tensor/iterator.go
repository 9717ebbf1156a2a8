// Copyright 2025 The TensorView Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package tensor

import (
	"github.com/arotem3/TensorView/internal/check"
	"github.com/arotem3/TensorView/internal/shape"
	"github.com/arotem3/TensorView/internal/storage"
)

// Iterator is a random-access cursor over the logical positions of a tensor.
// A fresh iterator sits before the first element:
//
//	for it := t.Iter(); it.Next(); {
//	    fmt.Println(it.Pos(), it.Value())
//	}
//
// Seek(Len()) followed by Prev walks backwards.
type Iterator[T any] struct {
	sh         shape.Shape
	st         storage.Reader[T]
	pos        int
	n          int
	contiguous bool
}

func newIterator[T any](sh shape.Shape, st storage.Reader[T]) *Iterator[T] {
	return &Iterator[T]{
		sh:         sh,
		st:         st,
		pos:        -1,
		n:          sh.Size(),
		contiguous: sh.Contiguous() && st.Contiguous(),
	}
}

// Next advances to the next position and reports whether it is valid.
func (it *Iterator[T]) Next() bool {
	if it.pos < it.n {
		it.pos++
	}
	return it.pos < it.n
}

// Prev steps back one position and reports whether it is valid.
func (it *Iterator[T]) Prev() bool {
	if it.pos >= 0 {
		it.pos--
	}
	return it.pos >= 0
}

// Seek moves to pos. Positions -1 and Len() are the before-first and past-end sentinels.
func (it *Iterator[T]) Seek(pos int) {
	it.pos = pos
}

// Advance moves n positions; n may be negative.
func (it *Iterator[T]) Advance(n int) {
	it.pos += n
}

// Pos returns the current logical position.
func (it *Iterator[T]) Pos() int { return it.pos }

// Len returns the number of positions.
func (it *Iterator[T]) Len() int { return it.n }

// Valid reports whether the cursor is on an element.
func (it *Iterator[T]) Valid() bool { return it.pos >= 0 && it.pos < it.n }

// Contiguous reports whether position i lives at storage slot i, which
// makes the walk equivalent to a pass over a flat slice.
func (it *Iterator[T]) Contiguous() bool { return it.contiguous }

// Value returns the element at the cursor.
func (it *Iterator[T]) Value() T {
	return it.At(0)
}

// At returns the element n positions away from the cursor.
func (it *Iterator[T]) At(n int) T {
	off, err := it.sh.Linear(it.pos + n)
	if err != nil {
		panic(err)
	}
	return it.st.Load(off)
}

// Ref returns a pointer to the element at the cursor. It panics with
// ErrBadAccess when the underlying storage is read-only or computed.
func (it *Iterator[T]) Ref() *T {
	st, ok := it.st.(storage.Storage[T])
	if !ok {
		panic(check.BadAccessf("iterator over read-only storage has no element references"))
	}
	off, err := it.sh.Linear(it.pos)
	if err != nil {
		panic(err)
	}
	return st.Ref(off)
}

// Distance returns it.Pos() - other.Pos().
func (it *Iterator[T]) Distance(other *Iterator[T]) int {
	return it.pos - other.pos
}

// Clone returns an independent cursor at the same position.
func (it *Iterator[T]) Clone() *Iterator[T] {
	c := *it
	return &c
}
