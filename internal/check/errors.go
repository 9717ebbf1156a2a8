package check

import (
	"github.com/pkg/errors"
)

// Error kinds. Detailed errors wrap one of these, so callers test with errors.Is.
var (
	ErrRange        = errors.New("out of range")
	ErrBadShape     = errors.New("all extents must be strictly positive")
	ErrBadAccess    = errors.New("access through unbound storage")
	ErrRankMismatch = errors.New("rank mismatch")
	ErrAlloc        = errors.New("allocation failed")
)

var kinds = []error{ErrRange, ErrBadShape, ErrBadAccess, ErrRankMismatch, ErrAlloc}

// Rangef returns an ErrRange with a formatted message and a stack trace.
func Rangef(format string, args ...any) error {
	return errors.Wrapf(ErrRange, format, args...)
}

// BadShapef returns an ErrBadShape with a formatted message and a stack trace.
func BadShapef(format string, args ...any) error {
	return errors.Wrapf(ErrBadShape, format, args...)
}

// BadAccessf returns an ErrBadAccess with a formatted message and a stack trace.
func BadAccessf(format string, args ...any) error {
	return errors.Wrapf(ErrBadAccess, format, args...)
}

// RankMismatchf returns an ErrRankMismatch with a formatted message and a stack trace.
func RankMismatchf(format string, args ...any) error {
	return errors.Wrapf(ErrRankMismatch, format, args...)
}

// Allocf returns an ErrAlloc with a formatted message and a stack trace.
func Allocf(format string, args ...any) error {
	return errors.Wrapf(ErrAlloc, format, args...)
}

// Kind returns the sentinel err wraps, or nil if err is not one of ours.
func Kind(err error) error {
	for _, k := range kinds {
		if errors.Is(err, k) {
			return k
		}
	}
	return nil
}

// Recover converts a panic carrying one of the error kinds into *err.
// Any other panic is re-raised. It must be deferred directly:
//
//	func get() (v float64, err error) {
//	    defer check.Recover(&err)
//	    return t.At(1, 2), nil
//	}
func Recover(err *error) {
	r := recover()
	if r == nil {
		return
	}
	if e, ok := r.(error); ok && Kind(e) != nil {
		*err = e
		return
	}
	panic(r)
}
