package shape

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arotem3/TensorView/internal/check"
)

func TestResolveFullAxisAndIndex(t *testing.T) {
	s := mustDynamic(t, 2, 3)

	sel, err := s.Resolve(All, Idx(2))
	require.NoError(t, err)
	assert.Equal(t, 4, sel.Offset)
	assert.Equal(t, Ranges{Span(4, 6)}, sel.Ranges)

	sel, err = s.Resolve(Idx(1), All)
	require.NoError(t, err)
	assert.Equal(t, 1, sel.Offset)
	assert.Equal(t, Ranges{Step(1, 7, 2)}, sel.Ranges)
	assert.Equal(t, []int{3}, sel.Ranges.Sizes())
}

func TestResolveMixed4D(t *testing.T) {
	s := mustDynamic(t, 5, 10, 2, 5)
	sel, err := s.Resolve(All, Idx(2), Span(0, 1), Span(2, 4))
	require.NoError(t, err)
	require.Len(t, sel.Ranges, 3)
	assert.Equal(t, 210, sel.Offset)
	assert.Equal(t, []int{5, 1, 2}, sel.Ranges.Sizes())

	sub, err := NewStrided(check.Strict, sel.Ranges)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 50, 100}, sub.Strides())

	for i := 0; i < 5; i++ {
		for k := 0; k < 2; k++ {
			want, err := s.Offset(i, 2, 0, 2+k)
			require.NoError(t, err)
			got, err := sub.Offset(i, 0, k)
			require.NoError(t, err)
			assert.Equal(t, want, sel.Offset+got)
		}
	}
}

func TestResolveErrors(t *testing.T) {
	s := mustDynamic(t, 2, 3)
	tests := []struct {
		name string
		args []Arg
		kind error
	}{
		{"index past extent", []Arg{Idx(2), Idx(0)}, check.ErrRange},
		{"negative index", []Arg{Idx(-1), Idx(0)}, check.ErrRange},
		{"range past extent", []Arg{All, Span(1, 9)}, check.ErrRange},
		{"negative begin", []Arg{Span(-1, 1), All}, check.ErrRange},
		{"empty range", []Arg{Span(1, 1), All}, check.ErrRange},
		{"zero stride", []Arg{Step(0, 2, 0), All}, check.ErrRange},
		{"nil argument", []Arg{nil, All}, check.ErrRange},
		{"too few", []Arg{All}, check.ErrRankMismatch},
		{"too many", []Arg{All, All, All}, check.ErrRankMismatch},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := s.Resolve(tt.args...)
			assert.ErrorIs(t, err, tt.kind)
		})
	}
}

func TestResolveRangeEndingAtExtent(t *testing.T) {
	s := mustDynamic(t, 4)
	sel, err := s.Resolve(Span(1, 4))
	require.NoError(t, err)
	assert.Equal(t, 1, sel.Offset)
	assert.Equal(t, []int{3}, sel.Ranges.Sizes())
}

func TestStridedResliceComposes(t *testing.T) {
	parent := mustDynamic(t, 4, 6)
	sel, err := parent.Resolve(Step(0, 4, 2), Span(1, 5))
	require.NoError(t, err)
	sub, err := NewStrided(check.Strict, sel.Ranges)
	require.NoError(t, err)
	assert.Equal(t, []int{2, 4}, sub.Extents())
	assert.Equal(t, []int{2, 4}, sub.Strides())
	assert.False(t, sub.Contiguous())

	inner, err := sub.Resolve(Idx(1), Span(1, 3))
	require.NoError(t, err)
	require.Len(t, inner.Ranges, 1)
	for j := 0; j < 2; j++ {
		want, err := parent.Offset(2, 2+j)
		require.NoError(t, err)
		assert.Equal(t, want, sel.Offset+inner.Offset+j*inner.Ranges[0].Stride)
	}

	off, err := sub.Resolve(Idx(1), Idx(3))
	require.NoError(t, err)
	assert.True(t, off.Scalar())
	want, err := parent.Offset(2, 4)
	require.NoError(t, err)
	assert.Equal(t, want, sel.Offset+off.Offset)
}

func TestStridedLinear(t *testing.T) {
	parent := mustDynamic(t, 3, 4)
	sel, err := parent.Resolve(Span(1, 3), Step(0, 4, 2))
	require.NoError(t, err)
	sub, err := NewStrided(check.Strict, sel.Ranges)
	require.NoError(t, err)
	require.Equal(t, 4, sub.Size())

	// positions walk axis 0 fastest
	want := []int{
		mustOffset(t, parent, 1, 0), mustOffset(t, parent, 2, 0),
		mustOffset(t, parent, 1, 2), mustOffset(t, parent, 2, 2),
	}
	for pos, w := range want {
		off, err := sub.Linear(pos)
		require.NoError(t, err)
		assert.Equal(t, w, sel.Offset+off, "pos %d", pos)
	}
	_, err = sub.Linear(4)
	assert.ErrorIs(t, err, check.ErrRange)
}

func TestStridedRank1Linear(t *testing.T) {
	sub, err := NewStrided(check.Strict, Ranges{Step(4, 104, 10)})
	require.NoError(t, err)
	assert.Equal(t, 10, sub.Size())
	off, err := sub.Linear(3)
	require.NoError(t, err)
	assert.Equal(t, 30, off)
}

func TestNewStridedErrors(t *testing.T) {
	_, err := NewStrided(check.Strict, nil)
	assert.ErrorIs(t, err, check.ErrRankMismatch)
	_, err = NewStrided(check.Strict, Ranges{Span(2, 2)})
	assert.ErrorIs(t, err, check.ErrBadShape)
}

func TestFastModeSkipsChecks(t *testing.T) {
	s, err := NewDynamic(check.Fast, 2, 3)
	require.NoError(t, err)
	off, err := s.Offset(2, 0)
	require.NoError(t, err)
	assert.Equal(t, 2, off)
	_, err = s.Linear(100)
	assert.NoError(t, err)
}

func mustOffset(t *testing.T, s Shape, idx ...int) int {
	t.Helper()
	off, err := s.Offset(idx...)
	require.NoError(t, err)
	return off
}
