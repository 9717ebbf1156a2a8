package shape

import (
	"fmt"
	"strings"
)

// Arg is one per-axis argument to Shape.Resolve: an Idx, a Range or All.
type Arg interface {
	isArg()
}

// Idx selects a single position along an axis and removes the axis from the result.
type Idx int

func (Idx) isArg() {}

// Range is a half-open, strided interval [Begin, End) along one axis.
type Range struct {
	Begin  int
	End    int
	Stride int
}

func (Range) isArg() {}

// Span returns the unit-stride range [begin, end).
func Span(begin, end int) Range {
	return Range{Begin: begin, End: end, Stride: 1}
}

// Step returns the range [begin, end) visiting every stride-th position.
func Step(begin, end, stride int) Range {
	return Range{Begin: begin, End: end, Stride: stride}
}

// Size returns (End-Begin)/Stride, truncated. A trailing partial step is
// not counted.
func (r Range) Size() int {
	if r.End <= r.Begin || r.Stride <= 0 {
		return 0
	}
	return (r.End - r.Begin) / r.Stride
}

// Shift offsets both ends of the range by i.
func (r Range) Shift(i int) Range {
	return Range{Begin: r.Begin + i, End: r.End + i, Stride: r.Stride}
}

// Scale multiplies the range bounds and stride by s.
func (r Range) Scale(s int) Range {
	return Range{Begin: s * r.Begin, End: s * r.End, Stride: s * r.Stride}
}

// String formats the range as begin:end:stride.
func (r Range) String() string {
	if r.Stride == 1 {
		return fmt.Sprintf("%d:%d", r.Begin, r.End)
	}
	return fmt.Sprintf("%d:%d:%d", r.Begin, r.End, r.Stride)
}

type fullAxis struct{}

func (fullAxis) isArg() {}

func (fullAxis) String() string { return ":" }

// All selects a whole axis. It resolves to Span(0, extent) once the extent is known.
var All Arg = fullAxis{}

// Ranges is a multi-axis range set ordered from the lowest axis up.
type Ranges []Range

// Shift offsets the lowest range by i. Scalar arguments from lower axes fold
// into the range set this way.
func (rs Ranges) Shift(i int) Ranges {
	out := rs.clone()
	if len(out) > 0 {
		out[0] = out[0].Shift(i)
	}
	return out
}

// Scale multiplies every range by s.
func (rs Ranges) Scale(s int) Ranges {
	out := make(Ranges, len(rs))
	for d, r := range rs {
		out[d] = r.Scale(s)
	}
	return out
}

// Concat returns rs followed by other.
func (rs Ranges) Concat(other Ranges) Ranges {
	out := make(Ranges, 0, len(rs)+len(other))
	out = append(out, rs...)
	return append(out, other...)
}

// Offset returns the storage offset of the first element the set selects.
func (rs Ranges) Offset() int {
	begin := 0
	for _, r := range rs {
		begin += r.Begin
	}
	return begin
}

// Sizes returns the number of positions each range visits.
func (rs Ranges) Sizes() []int {
	sizes := make([]int, len(rs))
	for d, r := range rs {
		sizes[d] = r.Size()
	}
	return sizes
}

func (rs Ranges) clone() Ranges {
	out := make(Ranges, len(rs))
	copy(out, rs)
	return out
}

// String formats the set as (r0, r1, ...).
func (rs Ranges) String() string {
	parts := make([]string, len(rs))
	for d, r := range rs {
		parts[d] = r.String()
	}
	return "(" + strings.Join(parts, ", ") + ")"
}

// Selection is the result of resolving a tuple of arguments against a shape.
// When every argument is an Idx, Ranges is empty and Offset addresses one
// element. Otherwise Ranges has one entry per non-scalar axis, in axis
// order, and Offset is where the selected block starts.
type Selection struct {
	Offset int
	Ranges Ranges
}

// Scalar reports whether the selection addresses a single element.
func (s Selection) Scalar() bool {
	return len(s.Ranges) == 0
}

// Ints converts plain indices into arguments.
func Ints(idx ...int) []Arg {
	args := make([]Arg, len(idx))
	for d, i := range idx {
		args[d] = Idx(i)
	}
	return args
}
