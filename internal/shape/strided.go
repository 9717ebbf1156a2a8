package shape

import "github.com/arotem3/TensorView/internal/check"

// Strided is the shape of a subview: per-axis extents and strides into the
// parent's storage, starting at the selection offset.
type Strided struct {
	extents []int
	strides []int
	size    int
	mode    check.Mode
}

// NewStrided builds the shape of the block a selection describes. Each
// range contributes one axis whose extent is its size and whose stride is
// its (already scaled) stride.
func NewStrided(mode check.Mode, ranges Ranges) (*Strided, error) {
	if len(ranges) == 0 {
		return nil, check.RankMismatchf("a strided shape needs at least one range")
	}
	s := &Strided{
		extents: make([]int, len(ranges)),
		strides: make([]int, len(ranges)),
		size:    1,
		mode:    mode,
	}
	for d, r := range ranges {
		s.extents[d] = r.Size()
		s.strides[d] = r.Stride
		s.size *= s.extents[d]
	}
	if err := Validate(mode, s.extents); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *Strided) Order() int { return len(s.extents) }

func (s *Strided) Size() int { return s.size }

func (s *Strided) Extent(d int) int {
	return extent(s.mode, s.extents, d)
}

func (s *Strided) Extents() []int { return clone(s.extents) }

// Strides returns a copy of the per-axis strides.
func (s *Strided) Strides() []int { return clone(s.strides) }

func (s *Strided) Contiguous() bool { return false }

func (s *Strided) Mode() check.Mode { return s.mode }

func (s *Strided) Offset(idx ...int) (int, error) {
	if err := checkArity(s.mode, len(idx), len(s.extents)); err != nil {
		return 0, err
	}
	off := 0
	for d, i := range idx {
		if s.mode.Checked() && (i < 0 || i >= s.extents[d]) {
			return 0, check.Rangef("index %d is out of range for axis %d with extent %d", i, d, s.extents[d])
		}
		off += s.strides[d] * i
	}
	return off, nil
}

func (s *Strided) Resolve(args ...Arg) (Selection, error) {
	return resolveStrided(s.mode, s.extents, s.strides, args)
}

// Linear decomposes pos into a multi-index, axis 0 fastest, and applies the
// strides. Rank-1 shapes reduce to pos * stride.
func (s *Strided) Linear(pos int) (int, error) {
	if s.mode.Checked() && (pos < 0 || pos >= s.size) {
		return 0, check.Rangef("linear index %d is out of range for size %d", pos, s.size)
	}
	if len(s.extents) == 1 {
		return pos * s.strides[0], nil
	}
	off := 0
	for d, e := range s.extents {
		off += (pos % e) * s.strides[d]
		pos /= e
	}
	return off, nil
}

func (s *Strided) String() string {
	return formatExtents(s.extents)
}
