package tensor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIteratorForward(t *testing.T) {
	data := seq(6)
	v, err := ViewOf(data, 2, 3)
	require.NoError(t, err)

	it := v.Iter()
	assert.Equal(t, -1, it.Pos())
	assert.False(t, it.Valid())
	assert.True(t, it.Contiguous())

	var got []float64
	for it.Next() {
		got = append(got, it.Value())
	}
	assert.Equal(t, data, got)
	assert.Equal(t, 6, it.Pos())
	assert.False(t, it.Next(), "stays at the end")
	assert.Equal(t, 6, it.Pos())
}

func TestIteratorReverse(t *testing.T) {
	v, err := ViewOf(seq(6), 2, 3)
	require.NoError(t, err)
	col := v.Slice(Idx(1), All)

	it := col.Iter()
	it.Seek(col.Size())
	var got []float64
	for it.Prev() {
		got = append(got, it.Value())
	}
	assert.Equal(t, []float64{6, 4, 2}, got)
	assert.Equal(t, -1, it.Pos())
	assert.False(t, it.Contiguous())
}

func TestIteratorRandomAccess(t *testing.T) {
	v, err := ViewOf(seq(12), 3, 4)
	require.NoError(t, err)
	sub := v.Slice(Span(1, 3), Step(0, 4, 2))

	it := sub.Iter()
	it.Seek(0)
	assert.Equal(t, sub.Get(3), it.At(3))
	it.Advance(2)
	assert.Equal(t, 2, it.Pos())
	assert.Equal(t, sub.Get(2), it.Value())
	assert.Equal(t, sub.Get(1), it.At(-1))

	begin := sub.Iter()
	begin.Seek(0)
	assert.Equal(t, 2, it.Distance(begin))
	assert.Equal(t, -2, begin.Distance(it))
	assert.Equal(t, sub.Size(), it.Len())

	c := it.Clone()
	c.Advance(1)
	assert.Equal(t, 2, it.Pos())
	assert.Equal(t, 3, c.Pos())

	it.Seek(sub.Size())
	assert.Panics(t, func() { it.Value() })
}

func TestIteratorRef(t *testing.T) {
	tn, err := FromSlice(seq(6), 2, 3)
	require.NoError(t, err)

	it := tn.Slice(Idx(0), All).Iter()
	for it.Next() {
		*it.Ref() *= 10
	}
	assert.Equal(t, []float64{10, 2, 30, 4, 50, 6}, tn.Data())

	cit := tn.ConstView().Iter()
	require.True(t, cit.Next())
	assert.Panics(t, func() { cit.Ref() })
}

func TestRangeLoops(t *testing.T) {
	v, err := ViewOf(seq(6), 2, 3)
	require.NoError(t, err)
	sub := v.Slice(All, Span(1, 3))

	var positions []int
	var values []float64
	for pos, x := range sub.All() {
		positions = append(positions, pos)
		values = append(values, x)
	}
	assert.Equal(t, []int{0, 1, 2, 3}, positions)
	assert.Equal(t, []float64{3, 4, 5, 6}, values)

	var first []float64
	for x := range v.Values() {
		if len(first) == 2 {
			break
		}
		first = append(first, x)
	}
	assert.Equal(t, []float64{1, 2}, first)
}
