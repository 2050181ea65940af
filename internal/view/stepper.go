package view

import "github.com/go-ndview/ndview/internal/layout"

// Stepper is the capability abstraction spec.md §4.6 (C6) and §9's design
// notes describe for iteration: a cursor that advances one element at a
// time along a view without recomputing a multi-index from scratch on
// every step. Begin picks one of two implementations once, based on
// whether the view holds a direct buffer; BeginBroadcast returns a third
// that iterates a wider target shape.
type Stepper[T any] interface {
	// Get returns the element at the stepper's current position.
	Get() T
	// Step advances the stepper by one position along the last axis,
	// carrying into higher axes (and their backstrides) as needed. It
	// reports whether the stepper has not yet reached the end.
	Step() bool
}

// Begin returns a Stepper positioned at v's first element.
func Begin[T any](v *View[T]) Stepper[T] {
	if b, ok := v.storage.(bufferStorage[T]); ok {
		return newDirectStepper(b.buf, v.shape, v.strides, v.backstrides, v.offset)
	}
	return &indexedStepper[T]{
		v:    v,
		idx:  make([]int, len(v.shape)),
		done: shapeProduct(v.shape) == 0,
	}
}

// End returns the flat offset one past v's last element when walked in
// last-axis-fastest (row-major) order, the order Begin's direct stepper
// always advances in regardless of v's own layout — the stepper_end half
// of spec.md §4.6's begin/end stepper pair, via layout.StridedDataEnd.
// When v's strides are the row-major strides of its shape this is the
// position a direct stepper stops at; for any other strides (e.g. a
// transpose) the direct stepper finishes back at v's offset instead.
func End[T any](v *View[T]) int {
	return layout.StridedDataEnd(v.shape, v.strides, v.offset, layout.RowMajor)
}

// directStepper walks a view whose storage is a contiguous buffer by
// carrying a running flat position and correcting it with the view's
// backstrides whenever an axis wraps, rather than recomputing offset from
// scratch every step.
type directStepper[T any] struct {
	buf     []T
	shape   []int
	strides []int
	back    []int
	idx     []int
	pos     int
	end     int
	// canonical is true when (shape, strides) are exactly the row-major
	// strides for shape, so the running pos reaches the single closed-form
	// terminal address end computes (layout.StridedDataEnd) the instant the
	// outermost axis overflows. A non-canonical descriptor (e.g. a
	// transposed view's swapped strides) has no such address — pos revisits
	// the same range of offsets in a different order — so those fall back
	// to the axis-wraparound done flag below instead of comparing to end.
	canonical bool
	done      bool
}

func newDirectStepper[T any](buf []T, shape, strides, back []int, offset int) *directStepper[T] {
	s := &directStepper[T]{
		buf:     buf,
		shape:   shape,
		strides: strides,
		back:    back,
		idx:     make([]int, len(shape)),
		pos:     offset,
		done:    shapeProduct(shape) == 0,
	}
	if len(shape) > 0 && layout.DoStridesMatch(shape, strides, layout.RowMajor) {
		s.canonical = true
		s.end = layout.StridedDataEnd(shape, strides, offset, layout.RowMajor)
	}
	return s
}

func (s *directStepper[T]) Get() T { return s.buf[s.pos] }

func (s *directStepper[T]) Step() bool {
	if s.done {
		return false
	}
	if s.canonical {
		for axis := len(s.shape) - 1; axis > 0; axis-- {
			s.idx[axis]++
			if s.idx[axis] < s.shape[axis] {
				s.pos += s.strides[axis]
				return true
			}
			s.idx[axis] = 0
			s.pos -= s.back[axis]
		}
		s.idx[0]++
		s.pos += s.strides[0]
		if s.pos == s.end {
			s.done = true
			return false
		}
		return true
	}
	for axis := len(s.shape) - 1; axis >= 0; axis-- {
		s.idx[axis]++
		if s.idx[axis] < s.shape[axis] {
			s.pos += s.strides[axis]
			return true
		}
		s.idx[axis] = 0
		s.pos -= s.back[axis]
	}
	s.done = true
	return false
}

// BeginBroadcast returns a Stepper that iterates targetShape rather than v's
// own shape, mapping each position back onto v with broadcastIndexInto —
// the broadcast‑padded stepper spec.md §4.6 describes ("stepper_begin
// (target_shape) produces a stepper positioned at the first element with a
// broadcast offset = |target_shape| − dim"). v.Shape() must broadcast to
// targetShape.
func BeginBroadcast[T any](v *View[T], targetShape []int) (Stepper[T], error) {
	outShape, _, err := v.BroadcastShape(targetShape)
	if err != nil {
		return nil, err
	}
	return &broadcastStepper[T]{
		v:      v,
		shape:  outShape,
		idx:    make([]int, len(outShape)),
		srcIdx: make([]int, len(v.Shape())),
		done:   shapeProduct(outShape) == 0,
	}, nil
}

// broadcastStepper carries an index over the wider target shape and maps it
// back onto v's own (narrower or size-1) axes on every Get.
type broadcastStepper[T any] struct {
	v      *View[T]
	shape  []int
	idx    []int
	srcIdx []int
	done   bool
}

func (s *broadcastStepper[T]) Get() T {
	broadcastIndexInto(s.idx, s.v.Shape(), s.srcIdx)
	return s.v.Element(s.srcIdx...)
}

func (s *broadcastStepper[T]) Step() bool {
	if s.done {
		return false
	}
	for axis := len(s.shape) - 1; axis >= 0; axis-- {
		s.idx[axis]++
		if s.idx[axis] < s.shape[axis] {
			return true
		}
		s.idx[axis] = 0
	}
	s.done = true
	return false
}

// indexedStepper walks a view backed by a flatAdaptor (or any non-buffer
// storage) by carrying the multi-index directly and calling through
// View.Element, since there is no single flat buffer to offset into.
type indexedStepper[T any] struct {
	v    *View[T]
	idx  []int
	done bool
}

func (s *indexedStepper[T]) Get() T { return s.v.Element(s.idx...) }

func (s *indexedStepper[T]) Step() bool {
	if s.done {
		return false
	}
	shape := s.v.shape
	for axis := len(shape) - 1; axis >= 0; axis-- {
		s.idx[axis]++
		if s.idx[axis] < shape[axis] {
			return true
		}
		s.idx[axis] = 0
	}
	s.done = true
	return false
}
