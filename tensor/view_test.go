package tensor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestViewsAlias(t *testing.T) {
	data := seq(6)
	v, err := ViewOf(data, 2, 3)
	require.NoError(t, err)
	v.Set(60, 1, 2)
	assert.Equal(t, 60.0, data[5])

	tn, err := FromSlice(seq(6), 2, 3)
	require.NoError(t, err)
	tv := tn.View()
	tv.Set(-1, 0, 0)
	assert.Equal(t, -1.0, tn.At(0, 0))

	cv := tn.ConstView()
	tn.Set(-2, 1, 0)
	assert.Equal(t, -2.0, cv.At(1, 0))
}

func TestViewReshapeIsLogicalOnly(t *testing.T) {
	data := seq(6)
	v, err := ViewOf(data, 2, 3)
	require.NoError(t, err)
	require.NoError(t, v.Reshape(3, 2))
	assert.Equal(t, []int{3, 2}, v.Extents())
	assert.Equal(t, 6.0, v.At(2, 1))
	assert.Len(t, v.Data(), 6)

	cv, err := ConstViewOf(data, 6)
	require.NoError(t, err)
	require.NoError(t, cv.Reshape(6))
	assert.Equal(t, 6, cv.Size())
}

func TestReshapeView(t *testing.T) {
	tn, err := FromSlice(seq(6), 2, 3)
	require.NoError(t, err)

	r, err := ReshapeView[float64](tn, 1, 6)
	require.NoError(t, err)
	assert.Equal(t, 5.0, r.At(0, 4))
	r.Set(50, 0, 4)
	assert.Equal(t, 50.0, tn.Get(4))

	_, err = ReshapeView[float64](tn, 4, 2)
	assert.ErrorIs(t, err, ErrRange)

	fv, err := FixedViewOf(seq(6), 2, 3)
	require.NoError(t, err)
	flat, err := ReshapeView[float64](fv, 6)
	require.NoError(t, err)
	assert.Equal(t, seq(6), flat.Copy())
}

func TestViewAsBroadensRank(t *testing.T) {
	tn, err := FromSlice(seq(6), 2, 3)
	require.NoError(t, err)

	v, err := ViewAs[float64](tn, 4)
	require.NoError(t, err)
	assert.Equal(t, []int{2, 3, 1, 1}, v.Extents())
	assert.Equal(t, tn.At(1, 2), v.At(1, 2, 0, 0))

	same, err := ViewAs[float64](tn, 2)
	require.NoError(t, err)
	assert.Equal(t, tn.Extents(), same.Extents())

	_, err = ViewAs[float64](tn, 1)
	assert.ErrorIs(t, err, ErrRankMismatch)

	cv, err := ConstViewAs[float64](tn.ConstView(), 3)
	require.NoError(t, err)
	assert.Equal(t, []int{2, 3, 1}, cv.Extents())
	_, err = ConstViewAs[float64](tn, 1)
	assert.ErrorIs(t, err, ErrRankMismatch)
}

func TestUnboundView(t *testing.T) {
	v, err := ViewOf[float64](nil, 2, 3)
	require.NoError(t, err)
	_, err = v.TryAt(0, 0)
	assert.ErrorIs(t, err, ErrBadAccess)
	assert.ErrorIs(t, v.TrySet(1, 0, 0), ErrBadAccess)
	_, err = v.TrySlice(All, Idx(0))
	assert.ErrorIs(t, err, ErrBadAccess)

	cv, err := ConstViewOf[int](nil, 3)
	require.NoError(t, err)
	_, err = cv.TryAt(1)
	assert.ErrorIs(t, err, ErrBadAccess)
}

func TestConstViewYieldsReadOnlySubviews(t *testing.T) {
	cv, err := ConstViewOf(seq(6), 2, 3)
	require.NoError(t, err)
	var sub *ConstSubView[float64] = cv.Slice(Idx(1), All)
	assert.Equal(t, []float64{2, 4, 6}, sub.Copy())
	assert.Equal(t, []int{2}, sub.Strides())

	var inner *ConstSubView[float64] = sub.Slice(Span(1, 3))
	assert.Equal(t, []float64{4, 6}, inner.Copy())

	it := sub.Iter()
	require.True(t, it.Next())
	assert.Panics(t, func() { it.Ref() })
}
