// Package view is the public surface of the strided view engine: a
// read/write, non-owning window over an arbitrary source expression,
// addressed with NumPy/xtensor-style slicing.
//
// # Overview
//
// A View never copies its source's data. Building one with StridedView or
// one of the derived constructors (Transpose, Flatten, Split, ...) only
// rewrites a small descriptor — shape, strides, offset, layout — and the
// resulting View reads and writes straight through to the source.
//
// # Basic Usage
//
//	v, err := view.StridedView[float64](src, view.Range(1, 3), view.All())
//	if err != nil {
//	    // ...
//	}
//	x, err := v.At(0, 2)
package view

import (
	"github.com/go-ndview/ndview/internal/layout"
	"github.com/go-ndview/ndview/internal/slicealg"
	internal "github.com/go-ndview/ndview/internal/view"
)

// View is a strided, non-owning window over a source expression.
type View[T any] = internal.View[T]

// Expression is the minimal contract a View's source must satisfy.
type Expression[T any] = internal.Expression[T]

// MutableExpression additionally allows writing through multi-index access.
type MutableExpression[T any] = internal.MutableExpression[T]

// DataExpression is the capability a source exposes when it has a direct
// flat buffer of its own.
type DataExpression[T any] = internal.DataExpression[T]

// Stepper is a cursor that advances one element at a time through a View.
type Stepper[T any] = internal.Stepper[T]

// Layout is a View's traversal order.
type Layout = layout.Layout

// Traversal layouts.
const (
	RowMajor    = layout.RowMajor
	ColumnMajor = layout.ColumnMajor
	Dynamic     = layout.Dynamic
	AnyLayout   = layout.Any
)

// Slice is one axis's addressing mode in a StridedView call.
type Slice = slicealg.Slice

// Placeholder stands for "missing" in any of Range's bounds or step.
const Placeholder = slicealg.Placeholder

// Index addresses a single element of an axis, consuming it.
func Index(k int) Slice { return slicealg.Index(k) }

// Range addresses a sub-range of an axis; start, stop or step may be
// Placeholder.
func Range(start, stop int, step ...int) Slice { return slicealg.Range(start, stop, step...) }

// All addresses an entire axis unchanged.
func All() Slice { return slicealg.All() }

// Ellipsis stands for as many All slices as needed to fill the remaining
// dimensions; at most one may appear in a StridedView call.
func Ellipsis() Slice { return slicealg.Ellipsis() }

// NewAxis inserts a length-1 axis.
func NewAxis() Slice { return slicealg.NewAxis() }

// StridedView builds a view over source by reducing slices against its
// shape.
func StridedView[T any](source Expression[T], slices ...Slice) (*View[T], error) {
	return internal.New[T](source, slices)
}

// StridedViewFromDescriptor builds a view over source from an explicit
// (shape, strides, offset, layout) descriptor.
func StridedViewFromDescriptor[T any](source Expression[T], shape, strides []int, offset int, lay Layout) (*View[T], error) {
	return internal.NewFromDescriptor[T](source, shape, strides, offset, lay)
}

// CheckMode governs how strictly TransposeAxes and SqueezeAxes validate a
// caller-supplied axis list.
type CheckMode = internal.CheckMode

// Validation strictness for TransposeAxes and SqueezeAxes.
const (
	CheckFull = internal.CheckFull
	CheckNone = internal.CheckNone
)

// Transpose reverses the order of all of source's axes.
func Transpose[T any](source Expression[T]) (*View[T], error) { return internal.Transpose[T](source) }

// TransposeAxes permutes source's axes according to axes. Under CheckFull
// (the default) axes must be a permutation of 0..dim-1; under CheckNone
// that is not validated.
func TransposeAxes[T any](source Expression[T], axes []int, check ...CheckMode) (*View[T], error) {
	return internal.TransposeAxes[T](source, axes, check...)
}

// Ravel returns a 1-D view over source's elements in layout l's traversal
// order.
func Ravel[T any](source Expression[T], l Layout) (*View[T], error) {
	return internal.Ravel[T](source, l)
}

// Flatten is Ravel at RowMajor, the layout every buffer-owning source in
// this module is declared with; a view's runtime layout (e.g. ColumnMajor
// after a transpose) is not consulted.
func Flatten[T any](source Expression[T]) (*View[T], error) { return internal.Flatten[T](source) }

// Squeeze removes every axis of length 1.
func Squeeze[T any](source Expression[T]) (*View[T], error) { return internal.Squeeze[T](source) }

// SqueezeAxes removes the named axes. Under CheckFull (the default) each
// must be in range and have length 1; under CheckNone that is not checked.
func SqueezeAxes[T any](source Expression[T], axes []int, check ...CheckMode) (*View[T], error) {
	return internal.SqueezeAxes[T](source, axes, check...)
}

// ExpandDims inserts a length-1 axis at position axis.
func ExpandDims[T any](source Expression[T], axis int) (*View[T], error) {
	return internal.ExpandDims[T](source, axis)
}

// AtLeastNd pads source's shape to at least n dimensions.
func AtLeastNd[T any](source Expression[T], n int) (*View[T], error) {
	return internal.AtLeastNd[T](source, n)
}

// AtLeast1d, AtLeast2d and AtLeast3d are AtLeastNd's fixed-arity forms.
func AtLeast1d[T any](source Expression[T]) (*View[T], error) { return internal.AtLeast1d[T](source) }
func AtLeast2d[T any](source Expression[T]) (*View[T], error) { return internal.AtLeast2d[T](source) }
func AtLeast3d[T any](source Expression[T]) (*View[T], error) { return internal.AtLeast3d[T](source) }

// Split partitions source along axis (default 0) into n equal pieces;
// source's extent along axis must be evenly divisible by n.
func Split[T any](source Expression[T], n int, axis ...int) ([]*View[T], error) {
	return internal.Split[T](source, n, axis...)
}

// Flip reverses the traversal order of axis without moving any data.
func Flip[T any](source Expression[T], axis int) (*View[T], error) {
	return internal.Flip[T](source, axis)
}

// TrimZeros scans a 1-D source for its first and/or last non-zero element
// per mode ("f", "b" or "fb", the default) and returns the ranged view
// between them.
func TrimZeros[T any](source Expression[T], isZero func(T) bool, mode ...string) (*View[T], error) {
	return internal.TrimZeros[T](source, isZero, mode...)
}

// Begin returns a Stepper positioned at v's first element.
func Begin[T any](v *View[T]) Stepper[T] { return internal.Begin[T](v) }

// BeginBroadcast returns a Stepper that iterates targetShape, which v's own
// shape must broadcast to, mapping each position back onto v.
func BeginBroadcast[T any](v *View[T], targetShape []int) (Stepper[T], error) {
	return internal.BeginBroadcast[T](v, targetShape)
}

// End returns the flat offset one past v's last element in last-axis-fastest
// order. Begin's direct-buffer stepper stops there when v's strides are the
// row-major strides of its shape; for other strides it stops at v's offset.
func End[T any](v *View[T]) int { return internal.End[T](v) }

// Sentinel errors (spec.md §7).
var (
	ErrIndexOutOfBounds  = internal.ErrIndexOutOfBounds
	ErrDimensionError    = internal.ErrDimensionError
	ErrInvalidStep       = internal.ErrInvalidStep
	ErrDuplicateEllipsis = internal.ErrDuplicateEllipsis
	ErrTooManySlices     = internal.ErrTooManySlices
	ErrTransposeError    = internal.ErrTransposeError
	ErrSqueezeError      = internal.ErrSqueezeError
	ErrSplitError        = internal.ErrSplitError
	ErrNotMutable        = internal.ErrNotMutable
)
