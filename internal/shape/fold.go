package shape

import "github.com/arotem3/TensorView/internal/check"

// accum is the partially resolved contribution of the axes above the one
// being processed.
type accum struct {
	off    int
	ranges Ranges
}

func (a accum) scale(s int) accum {
	if len(a.ranges) == 0 {
		return accum{off: a.off * s}
	}
	return accum{ranges: a.ranges.Scale(s)}
}

// term is the contribution of a single axis.
type term struct {
	off     int
	rng     Range
	isRange bool
}

func (t term) scale(s int) term {
	if t.isRange {
		return term{rng: t.rng.Scale(s), isRange: true}
	}
	return term{off: t.off * s}
}

// prepend folds an axis term below the accumulated higher axes. Scalars only
// shift; ranges grow the set.
func prepend(t term, a accum) accum {
	switch {
	case !t.isRange && len(a.ranges) == 0:
		return accum{off: t.off + a.off}
	case !t.isRange:
		return accum{ranges: a.ranges.Shift(t.off)}
	case len(a.ranges) == 0:
		return accum{ranges: Ranges{t.rng.Shift(a.off)}}
	default:
		return accum{ranges: Ranges{t.rng}.Concat(a.ranges)}
	}
}

func (a accum) selection() Selection {
	if len(a.ranges) == 0 {
		return Selection{Offset: a.off}
	}
	return Selection{Offset: a.ranges.Offset(), Ranges: a.ranges}
}

// termFor validates arg against an axis of the given extent.
func termFor(mode check.Mode, arg Arg, axis, extent int) (term, error) {
	switch a := arg.(type) {
	case Idx:
		i := int(a)
		if mode.Checked() && (i < 0 || i >= extent) {
			return term{}, check.Rangef("index %d is out of range for axis %d with extent %d", i, axis, extent)
		}
		return term{off: i}, nil
	case Range:
		if mode.Checked() {
			if a.Stride < 1 {
				return term{}, check.Rangef("range %v on axis %d has non-positive stride", a, axis)
			}
			if a.Begin < 0 || a.End > extent || a.Size() < 1 {
				return term{}, check.Rangef("range %v is out of range for axis %d with extent %d", a, axis, extent)
			}
		}
		return term{rng: a, isRange: true}, nil
	case fullAxis:
		return term{rng: Span(0, extent), isRange: true}, nil
	case nil:
		return term{}, check.Rangef("nil argument for axis %d", axis)
	default:
		return term{}, check.Rangef("unsupported argument %T for axis %d", arg, axis)
	}
}

func checkArity(mode check.Mode, got, rank int) error {
	if mode.Checked() && got != rank {
		return check.RankMismatchf("got %d indices for a shape of rank %d", got, rank)
	}
	return nil
}

// resolveDense resolves args over extents laid out with axis 0 fastest:
// each axis contributes arg_d + e_d * (contribution of the axes above).
func resolveDense(mode check.Mode, extents []int, args []Arg) (Selection, error) {
	if err := checkArity(mode, len(args), len(extents)); err != nil {
		return Selection{}, err
	}
	var a accum
	for d := len(args) - 1; d >= 0; d-- {
		t, err := termFor(mode, args[d], d, extents[d])
		if err != nil {
			return Selection{}, err
		}
		a = prepend(t, a.scale(extents[d]))
	}
	return a.selection(), nil
}

// resolveStrided resolves args over explicit per-axis strides.
func resolveStrided(mode check.Mode, extents, strides []int, args []Arg) (Selection, error) {
	if err := checkArity(mode, len(args), len(extents)); err != nil {
		return Selection{}, err
	}
	var a accum
	for d := len(args) - 1; d >= 0; d-- {
		t, err := termFor(mode, args[d], d, extents[d])
		if err != nil {
			return Selection{}, err
		}
		a = prepend(t.scale(strides[d]), a)
	}
	return a.selection(), nil
}
