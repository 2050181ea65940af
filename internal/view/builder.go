package view

import (
	"errors"
	"fmt"

	"github.com/go-ndview/ndview/internal/layout"
	"github.com/go-ndview/ndview/internal/slicealg"
)

// BuildDescriptor implements spec.md §4.4's two-pass algorithm: validate a
// slice list against sourceShape (counting new axes, scalars and at most
// one ellipsis, and rejecting one that names more axes than the source
// has), then rewrite it into a new (shape, strides, offset, layout)
// descriptor. An empty slice list is the identity view.
//
// The source axis a slice element addresses is tracked with a plain
// cursor (srcAxis) instead of the header's axis_skip correction term; the
// two are equivalent, srcAxis just names the quantity axis_skip's formula
// (i - axis_skip) computes.
func BuildDescriptor(sourceShape, sourceStrides []int, baseOffset int, sourceLayout layout.Layout, slices []slicealg.Slice) (shape, strides []int, offset int, lay layout.Layout, err error) {
	sourceDim := len(sourceShape)

	nNewAxis, ellipsisCount, nonNewaxisNonEllipsis := 0, 0, 0
	for _, s := range slices {
		switch s.Kind {
		case slicealg.KindNewAxis:
			nNewAxis++
		case slicealg.KindEllipsis:
			ellipsisCount++
		default:
			nonNewaxisNonEllipsis++
		}
	}
	if ellipsisCount > 1 {
		return nil, nil, 0, 0, ErrDuplicateEllipsis
	}
	if sourceDim-nonNewaxisNonEllipsis < 0 {
		return nil, nil, 0, 0, fmt.Errorf("%w: %d non-newaxis slices for %d source dimensions", ErrTooManySlices, nonNewaxisNonEllipsis, sourceDim)
	}

	ellipsisExpand := 0
	if ellipsisCount == 1 {
		ellipsisExpand = sourceDim - (len(slices) - 1 - nNewAxis)
		if ellipsisExpand < 0 {
			ellipsisExpand = 0
		}
	}

	shape = make([]int, 0, sourceDim+nNewAxis)
	strides = make([]int, 0, sourceDim+nNewAxis)
	offset = baseOffset
	srcAxis := 0

	for _, s := range slices {
		var n int
		if s.Kind != slicealg.KindNewAxis && s.Kind != slicealg.KindEllipsis {
			if srcAxis >= sourceDim {
				return nil, nil, 0, 0, fmt.Errorf("%w: ran out of source dimensions", ErrTooManySlices)
			}
			n = sourceShape[srcAxis]
		}

		reduced, rerr := slicealg.Reduce(s, n)
		if rerr != nil {
			return nil, nil, 0, 0, wrapReduceErr(rerr)
		}

		switch reduced.Kind {
		case slicealg.ReducedScalar:
			offset += reduced.K * sourceStrides[srcAxis]
			srcAxis++

		case slicealg.ReducedAxis:
			shape = append(shape, reduced.Length)
			strides = append(strides, reduced.Step*sourceStrides[srcAxis])
			offset += reduced.Start * sourceStrides[srcAxis]
			srcAxis++

		case slicealg.ReducedInsert:
			shape = append(shape, 1)
			strides = append(strides, 0)

		case slicealg.ReducedExpand:
			for j := 0; j < ellipsisExpand; j++ {
				if srcAxis >= sourceDim {
					return nil, nil, 0, 0, fmt.Errorf("%w: ellipsis expansion ran out of source dimensions", ErrTooManySlices)
				}
				shape = append(shape, sourceShape[srcAxis])
				strides = append(strides, sourceStrides[srcAxis])
				srcAxis++
			}
		}
	}

	for ; srcAxis < sourceDim; srcAxis++ {
		shape = append(shape, sourceShape[srcAxis])
		strides = append(strides, sourceStrides[srcAxis])
	}

	lay = sourceLayout
	if !layout.DoStridesMatch(shape, strides, sourceLayout) {
		lay = layout.Dynamic
	}
	return shape, strides, offset, lay, nil
}

func wrapReduceErr(err error) error {
	switch {
	case errors.Is(err, slicealg.ErrIndexOutOfBounds):
		return fmt.Errorf("%w: %v", ErrIndexOutOfBounds, err)
	case errors.Is(err, slicealg.ErrInvalidStep):
		return fmt.Errorf("%w: %v", ErrInvalidStep, err)
	default:
		return err
	}
}
