package shape

import (
	"fmt"
	"strings"

	"github.com/arotem3/TensorView/internal/check"
)

// Shape maps indices and ranges to storage offsets.
type Shape interface {
	// Order returns the number of axes.
	Order() int
	// Size returns the product of the extents.
	Size() int
	// Extent returns the length of axis d. It panics with ErrRange if d is not an axis.
	Extent(d int) int
	// Extents returns a copy of all extents.
	Extents() []int
	// Offset resolves a full multi-index of plain indices.
	Offset(idx ...int) (int, error)
	// Resolve resolves a mix of indices, ranges and All.
	Resolve(args ...Arg) (Selection, error)
	// Linear maps a logical position in [0, Size()) to a storage offset.
	Linear(pos int) (int, error)
	// Contiguous reports whether logical positions are storage offsets.
	Contiguous() bool
	// Mode returns the bounds-checking mode the shape was built with.
	Mode() check.Mode
}

// Compile-time interface checks.
var (
	_ Shape = (*Dynamic)(nil)
	_ Shape = (*Fixed)(nil)
	_ Shape = (*Strided)(nil)
)

// dense is the layout shared by Dynamic and Fixed.
type dense struct {
	extents []int
	size    int
	mode    check.Mode
}

func newDense(mode check.Mode, extents []int) (dense, error) {
	if len(extents) == 0 {
		return dense{}, check.RankMismatchf("a shape needs at least one axis")
	}
	if err := Validate(mode, extents); err != nil {
		return dense{}, err
	}
	return dense{extents: clone(extents), size: product(extents), mode: mode}, nil
}

func (s *dense) Order() int { return len(s.extents) }

func (s *dense) Size() int { return s.size }

func (s *dense) Extent(d int) int {
	return extent(s.mode, s.extents, d)
}

func (s *dense) Extents() []int { return clone(s.extents) }

func (s *dense) Contiguous() bool { return true }

func (s *dense) Mode() check.Mode { return s.mode }

func (s *dense) Offset(idx ...int) (int, error) {
	if err := checkArity(s.mode, len(idx), len(s.extents)); err != nil {
		return 0, err
	}
	off := 0
	for d := len(idx) - 1; d >= 0; d-- {
		i := idx[d]
		if s.mode.Checked() && (i < 0 || i >= s.extents[d]) {
			return 0, check.Rangef("index %d is out of range for axis %d with extent %d", i, d, s.extents[d])
		}
		off = i + s.extents[d]*off
	}
	return off, nil
}

func (s *dense) Resolve(args ...Arg) (Selection, error) {
	return resolveDense(s.mode, s.extents, args)
}

func (s *dense) Linear(pos int) (int, error) {
	if s.mode.Checked() && (pos < 0 || pos >= s.size) {
		return 0, check.Rangef("linear index %d is out of range for size %d", pos, s.size)
	}
	return pos, nil
}

func (s *dense) String() string {
	return formatExtents(s.extents)
}

// Dynamic is a shape whose extents live at runtime and can be replaced
// in place. Its rank is fixed at construction.
type Dynamic struct {
	dense
}

// NewDynamic builds a dynamic shape. In Strict mode every extent must be positive.
func NewDynamic(mode check.Mode, extents ...int) (*Dynamic, error) {
	d, err := newDense(mode, extents)
	if err != nil {
		return nil, err
	}
	return &Dynamic{dense: d}, nil
}

// Reshape replaces the extents, keeping the rank. Fewer extents than the
// rank may be given; missing trailing axes get extent 1.
func (s *Dynamic) Reshape(extents ...int) error {
	next, err := Pad(s.mode, extents, len(s.extents))
	if err != nil {
		return err
	}
	s.extents = next
	s.size = product(next)
	return nil
}

// Clone returns an independent copy.
func (s *Dynamic) Clone() *Dynamic {
	return &Dynamic{dense: dense{extents: clone(s.extents), size: s.size, mode: s.mode}}
}

// Fixed is a shape whose extents never change after construction.
type Fixed struct {
	dense
}

// NewFixed builds a fixed shape.
func NewFixed(mode check.Mode, extents ...int) (*Fixed, error) {
	d, err := newDense(mode, extents)
	if err != nil {
		return nil, err
	}
	return &Fixed{dense: d}, nil
}

// Dynamic returns a Dynamic shape with the same extents and mode.
func (s *Fixed) Dynamic() *Dynamic {
	return &Dynamic{dense: dense{extents: clone(s.extents), size: s.size, mode: s.mode}}
}

// Validate checks that every extent is strictly positive. Fast mode skips the check.
func Validate(mode check.Mode, extents []int) error {
	if !mode.Checked() {
		return nil
	}
	for d, e := range extents {
		if e <= 0 {
			return check.BadShapef("invalid extent %d on axis %d", e, d)
		}
	}
	return nil
}

// Pad returns extents widened to rank with trailing extents of 1. It fails
// with ErrRankMismatch when extents already has more than rank axes.
func Pad(mode check.Mode, extents []int, rank int) ([]int, error) {
	if len(extents) > rank {
		return nil, check.RankMismatchf("%d extents given for rank %d", len(extents), rank)
	}
	if err := Validate(mode, extents); err != nil {
		return nil, err
	}
	out := make([]int, rank)
	copy(out, extents)
	for d := len(extents); d < rank; d++ {
		out[d] = 1
	}
	return out, nil
}

// Equal reports whether two shapes have the same extents.
func Equal(a, b Shape) bool {
	if a.Order() != b.Order() {
		return false
	}
	for d := 0; d < a.Order(); d++ {
		if a.Extent(d) != b.Extent(d) {
			return false
		}
	}
	return true
}

func extent(mode check.Mode, extents []int, d int) int {
	if mode.Checked() && (d < 0 || d >= len(extents)) {
		panic(check.Rangef("axis %d is out of range for rank %d", d, len(extents)))
	}
	return extents[d]
}

func product(extents []int) int {
	n := 1
	for _, e := range extents {
		n *= e
	}
	return n
}

func clone(s []int) []int {
	out := make([]int, len(s))
	copy(out, s)
	return out
}

func formatExtents(extents []int) string {
	parts := make([]string, len(extents))
	for d, e := range extents {
		parts[d] = fmt.Sprint(e)
	}
	return "(" + strings.Join(parts, ", ") + ")"
}
