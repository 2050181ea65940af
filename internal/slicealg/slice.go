// Package slicealg implements the slice algebra of spec.md §4.1 (C1): a
// tagged union describing how a single axis is addressed, and the
// reduction of one slice against a concrete dimension length into the
// three numbers (start, length, step) — or a scalar index, or a marker that
// the axis is inserted/expanded — that the view builder (C4) consumes.
package slicealg

import (
	"errors"
	"fmt"
	"math"
)

// Placeholder stands for "missing" in any of Range's start/stop/step
// positions (spec.md §3: "any field may be a placeholder").
const Placeholder = math.MinInt

// Sentinel errors raised while reducing a Slice against a dimension length.
var (
	ErrIndexOutOfBounds = errors.New("slicealg: index out of bounds")
	ErrInvalidStep      = errors.New("slicealg: step must not be zero")
)

// Kind tags the variant a Slice holds.
type Kind int

// Slice variants (spec.md §3).
const (
	KindIndex Kind = iota
	KindRange
	KindAll
	KindEllipsis
	KindNewAxis
)

// Slice is a tagged union over the slice algebra's five variants. Only the
// fields relevant to Kind are meaningful.
type Slice struct {
	Kind                Kind
	Index               int // KindIndex
	Start, Stop, Step   int // KindRange; Placeholder marks a missing field
}

// Index addresses a single element of an axis, consuming it.
func Index(k int) Slice { return Slice{Kind: KindIndex, Index: k} }

// Range addresses a sub-range of an axis. start, stop, or step may be
// Placeholder to request the default spec.md §3 defines for that field.
// Omitting step defaults it to 1 (equivalently, Placeholder).
func Range(start, stop int, step ...int) Slice {
	s := Placeholder
	if len(step) > 0 {
		s = step[0]
	}
	return Slice{Kind: KindRange, Start: start, Stop: stop, Step: s}
}

// All addresses an entire axis unchanged.
func All() Slice { return Slice{Kind: KindAll} }

// Ellipsis stands for as many All slices as needed to fill out the
// remaining source dimensions; at most one may appear in a slice list.
func Ellipsis() Slice { return Slice{Kind: KindEllipsis} }

// NewAxis inserts an axis of length 1 with stride 0.
func NewAxis() Slice { return Slice{Kind: KindNewAxis} }

// ReducedKind tags the outcome of reducing a Slice against a dimension.
type ReducedKind int

// Reduction outcomes (spec.md §4.1).
const (
	// ReducedScalar means the axis is consumed by a single index.
	ReducedScalar ReducedKind = iota
	// ReducedAxis means the axis survives with (start, length, step).
	ReducedAxis
	// ReducedInsert means a NewAxis: a length-1 axis is inserted.
	ReducedInsert
	// ReducedExpand means an Ellipsis, resolved at the view-builder layer.
	ReducedExpand
)

// Reduced is the result of reducing one Slice against a concrete dimension
// length n.
type Reduced struct {
	Kind                ReducedKind
	K                   int // ReducedScalar: the normalized index
	Start, Length, Step int // ReducedAxis
}

// Reduce reduces slice against a dimension of length n.
func Reduce(s Slice, n int) (Reduced, error) {
	switch s.Kind {
	case KindIndex:
		k := s.Index
		if k < 0 {
			k += n
		}
		if k < 0 || k >= n {
			return Reduced{}, fmt.Errorf("%w: index %d for dimension of length %d", ErrIndexOutOfBounds, s.Index, n)
		}
		return Reduced{Kind: ReducedScalar, K: k}, nil

	case KindRange:
		return reduceRange(s.Start, s.Stop, s.Step, n)

	case KindAll:
		return Reduced{Kind: ReducedAxis, Start: 0, Length: n, Step: 1}, nil

	case KindEllipsis:
		return Reduced{Kind: ReducedExpand}, nil

	case KindNewAxis:
		return Reduced{Kind: ReducedInsert}, nil

	default:
		return Reduced{}, fmt.Errorf("slicealg: unknown slice kind %d", s.Kind)
	}
}

func reduceRange(start, stop, step, n int) (Reduced, error) {
	if step == Placeholder {
		step = 1
	}
	if step == 0 {
		return Reduced{}, ErrInvalidStep
	}

	if start == Placeholder {
		if step > 0 {
			start = 0
		} else {
			start = n - 1
		}
	} else if start < 0 {
		start += n
	}

	if stop == Placeholder {
		if step > 0 {
			stop = n
		} else {
			stop = -1
		}
	} else if stop < 0 {
		stop += n
	}

	if step > 0 {
		start = clamp(start, 0, n)
		stop = clamp(stop, 0, n)
	} else {
		start = clamp(start, -1, n-1)
		stop = clamp(stop, -1, n-1)
	}

	length := rangeLength(start, stop, step)
	return Reduced{Kind: ReducedAxis, Start: start, Length: length, Step: step}, nil
}

func rangeLength(start, stop, step int) int {
	if step > 0 {
		if stop <= start {
			return 0
		}
		return (stop - start + step - 1) / step
	}
	if stop >= start {
		return 0
	}
	return (start - stop - step - 1) / (-step)
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
