package check

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestModeString(t *testing.T) {
	assert.Equal(t, "strict", Strict.String())
	assert.Equal(t, "fast", Fast.String())
	assert.Equal(t, "Mode(7)", Mode(7).String())
	assert.True(t, Strict.Checked())
	assert.False(t, Fast.Checked())
}

func TestParseMode(t *testing.T) {
	tests := []struct {
		in   string
		want Mode
		ok   bool
	}{
		{"strict", Strict, true},
		{"", Strict, true},
		{"fast", Fast, true},
		{"debug", Strict, false},
	}
	for _, tt := range tests {
		got, err := ParseMode(tt.in)
		if !tt.ok {
			assert.Error(t, err, tt.in)
			continue
		}
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got, tt.in)
	}
}

func TestErrorKinds(t *testing.T) {
	tests := []struct {
		err  error
		kind error
	}{
		{Rangef("index %d", 3), ErrRange},
		{BadShapef("extent %d", 0), ErrBadShape},
		{BadAccessf("nil buffer"), ErrBadAccess},
		{RankMismatchf("got %d want %d", 3, 2), ErrRankMismatch},
		{Allocf("short buffer"), ErrAlloc},
	}
	for _, tt := range tests {
		assert.ErrorIs(t, tt.err, tt.kind)
		assert.Equal(t, tt.kind, Kind(tt.err))
		assert.Contains(t, tt.err.Error(), tt.kind.Error())
	}
	assert.Nil(t, Kind(errors.New("other")))
	assert.Equal(t, ErrRange, Kind(fmt.Errorf("wrapped: %w", Rangef("x"))))
}

func TestRecover(t *testing.T) {
	get := func() (err error) {
		defer Recover(&err)
		panic(Rangef("index %d is out of range", 9))
	}
	err := get()
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrRange)

	clean := func() (err error) {
		defer Recover(&err)
		return nil
	}
	assert.NoError(t, clean())
}

func TestRecoverRepanicsForeignValues(t *testing.T) {
	f := func() (err error) {
		defer Recover(&err)
		panic("boom")
	}
	assert.PanicsWithValue(t, "boom", func() { _ = f() })
}
