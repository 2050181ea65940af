// Package view implements the strided view engine of spec.md §4 (C1-C6): a
// read/write, non-owning window over an arbitrary source expression,
// described by a (shape, strides, backstrides, offset, layout) descriptor
// that is rewritten, not recomputed from scratch, by every derived
// operation.
package view

import (
	"fmt"

	"github.com/go-ndview/ndview/internal/layout"
	"github.com/go-ndview/ndview/internal/slicealg"
)

// flatStorage is the capability abstraction spec.md §9's design notes call
// for: a source is either addressed directly through its own flat buffer,
// or through a flatAdaptor that makes an arbitrary Expression look like
// one. The choice is made once, at view construction, in wrapSource.
type flatStorage[T any] interface {
	get(i int) T
	size() int
}

type mutableFlatStorage[T any] interface {
	flatStorage[T]
	set(i int, val T)
}

type bufferStorage[T any] struct{ buf []T }

func (b bufferStorage[T]) get(i int) T    { return b.buf[i] }
func (b bufferStorage[T]) set(i int, v T) { b.buf[i] = v }
func (b bufferStorage[T]) size() int      { return len(b.buf) }

// View is a strided, non-owning window over a source expression (spec.md
// §3, "View object", C3). It never allocates a buffer of its own: element
// access always resolves through storage, which is either the source's own
// buffer or a flatAdaptor over it.
type View[T any] struct {
	source      Expression[T]
	storage     flatStorage[T]
	shape       []int
	strides     []int
	backstrides []int
	offset      int
	layout      layout.Layout
}

// wrapSource selects the direct-buffer or adaptor-backed storage for
// source and returns the (shape, strides, offset, layout) that describe
// source's own address space, for BuildDescriptor to slice against.
func wrapSource[T any](source Expression[T]) (storage flatStorage[T], srcShape, srcStrides []int, srcOffset int, srcLayout layout.Layout) {
	if ds, ok := source.(DataExpression[T]); ok && ds.HasDataInterface() {
		return bufferStorage[T]{buf: ds.Storage()}, source.Shape(), ds.Strides(), ds.DataOffset(), ds.Layout()
	}
	a := newFlatAdaptor[T](source)
	return a, source.Shape(), a.strides, 0, a.layout
}

// New builds a view over source by reducing slices against source's shape
// (spec.md §6, the slice-list StridedView overload).
func New[T any](source Expression[T], slices []slicealg.Slice) (*View[T], error) {
	storage, srcShape, srcStrides, srcOffset, srcLayout := wrapSource[T](source)
	shape, strides, offset, lay, err := BuildDescriptor(srcShape, srcStrides, srcOffset, srcLayout, slices)
	if err != nil {
		return nil, err
	}
	return newViewWithStorage(source, storage, shape, strides, offset, lay), nil
}

// NewFromDescriptor builds a view over source from an explicit descriptor
// (spec.md §6, the (shape, strides, offset, layout) StridedView overload).
func NewFromDescriptor[T any](source Expression[T], shape, strides []int, offset int, lay layout.Layout) (*View[T], error) {
	if len(shape) != len(strides) {
		return nil, fmt.Errorf("%w: shape has %d axes, strides has %d", ErrDimensionError, len(shape), len(strides))
	}
	storage, _, _, _, _ := wrapSource[T](source)
	if err := validateBounds(shape, strides, offset, storage.size()); err != nil {
		return nil, err
	}
	shapeCopy := append([]int(nil), shape...)
	stridesCopy := append([]int(nil), strides...)
	return newViewWithStorage(source, storage, shapeCopy, stridesCopy, offset, lay), nil
}

func newViewWithStorage[T any](source Expression[T], storage flatStorage[T], shape, strides []int, offset int, lay layout.Layout) *View[T] {
	return &View[T]{
		source:      source,
		storage:     storage,
		shape:       shape,
		strides:     strides,
		backstrides: layout.AdaptStrides(shape, strides),
		offset:      offset,
		layout:      lay,
	}
}

func validateBounds(shape, strides []int, offset, size int) error {
	lo, hi := offset, offset
	for k := range shape {
		if shape[k] == 0 {
			continue
		}
		contrib := strides[k] * (shape[k] - 1)
		if contrib >= 0 {
			hi += contrib
		} else {
			lo += contrib
		}
	}
	if lo < 0 || hi >= size {
		return fmt.Errorf("%w: descriptor addresses [%d,%d], storage has %d elements", ErrIndexOutOfBounds, lo, hi, size)
	}
	return nil
}

// Shape returns the view's shape.
func (v *View[T]) Shape() []int { return v.shape }

// Dimension returns the view's number of axes.
func (v *View[T]) Dimension() int { return len(v.shape) }

// Strides returns the view's stride vector.
func (v *View[T]) Strides() []int { return v.strides }

// Backstrides returns the view's backstride vector.
func (v *View[T]) Backstrides() []int { return v.backstrides }

// Offset returns the view's flat offset into its storage.
func (v *View[T]) Offset() int { return v.offset }

// Layout returns the view's layout, Dynamic if its strides don't match a
// canonical order.
func (v *View[T]) Layout() layout.Layout { return v.layout }

// HasDataInterface reports whether the view is backed by a direct flat
// buffer rather than a flatAdaptor, letting a view built over this one
// reuse that buffer directly instead of wrapping another adaptor layer.
func (v *View[T]) HasDataInterface() bool {
	_, ok := v.storage.(bufferStorage[T])
	return ok
}

// Storage returns the view's backing buffer. Only meaningful when
// HasDataInterface reports true.
func (v *View[T]) Storage() []T {
	if b, ok := v.storage.(bufferStorage[T]); ok {
		return b.buf
	}
	return nil
}

// DataOffset returns the view's offset, satisfying DataExpression.
func (v *View[T]) DataOffset() int { return v.offset }

func (v *View[T]) flatIndex(idx []int) int {
	n := len(v.shape)
	start := len(idx) - n
	off := v.offset
	for k := 0; k < n; k++ {
		off += idx[start+k] * v.strides[k]
	}
	return off
}

// Element is the unchecked N-arg access (spec.md §4.3): extra leading
// indices past the view's dimension are accepted and ignored, per spec.md
// §9's Open Question, resolved in favor of the specified behavior.
func (v *View[T]) Element(idx ...int) T {
	return v.storage.get(v.flatIndex(idx))
}

// SetElement is the unchecked mutating counterpart of Element. It panics if
// the underlying source does not support mutation.
func (v *View[T]) SetElement(val T, idx ...int) {
	m, ok := v.storage.(mutableFlatStorage[T])
	if !ok {
		panic(ErrNotMutable.Error())
	}
	m.set(v.flatIndex(idx), val)
}

// Get is the unchecked single-index convenience for one-dimensional
// access (spec.md §4.3, "Index-sequence [index]").
func (v *View[T]) Get(i int) T { return v.Element(i) }

// Index accepts an explicit index sequence (any []int), the "iterable of
// integers" form of unchecked access spec.md §4.3 describes.
func (v *View[T]) Index(idx []int) T { return v.Element(idx...) }

// At is the fully-checked accessor (spec.md §7): both dimension mismatch
// and any out-of-range axis index are reported as errors instead of
// panicking or invoking undefined behavior.
func (v *View[T]) At(idx ...int) (T, error) {
	var zero T
	if len(idx) != len(v.shape) {
		return zero, fmt.Errorf("%w: expected %d indices, got %d", ErrDimensionError, len(v.shape), len(idx))
	}
	for k, i := range idx {
		if i < 0 || i >= v.shape[k] {
			return zero, fmt.Errorf("%w: index %d for axis %d (length %d)", ErrIndexOutOfBounds, i, k, v.shape[k])
		}
	}
	return v.Element(idx...), nil
}

// SetAt is the checked mutating counterpart of At.
func (v *View[T]) SetAt(val T, idx ...int) error {
	if len(idx) != len(v.shape) {
		return fmt.Errorf("%w: expected %d indices, got %d", ErrDimensionError, len(v.shape), len(idx))
	}
	for k, i := range idx {
		if i < 0 || i >= v.shape[k] {
			return fmt.Errorf("%w: index %d for axis %d (length %d)", ErrIndexOutOfBounds, i, k, v.shape[k])
		}
	}
	if _, ok := v.storage.(mutableFlatStorage[T]); !ok {
		return ErrNotMutable
	}
	v.SetElement(val, idx...)
	return nil
}

// Fill assigns scalar to every element of the view, in row-major iteration
// order regardless of the view's own layout (spec.md §4.3, "assignment
// semantics").
func (v *View[T]) Fill(scalar T) error {
	m, ok := v.storage.(mutableFlatStorage[T])
	if !ok {
		return ErrNotMutable
	}
	total := shapeProduct(v.shape)
	idx := make([]int, len(v.shape))
	for i := 0; i < total; i++ {
		layout.Unravel(i, v.shape, layout.RowMajor, idx)
		m.set(v.flatIndex(idx), scalar)
	}
	return nil
}

// CopyFrom assigns src into the view element-wise, broadcasting src's shape
// against the view's shape (spec.md §6, BroadcastShape). It is an error if
// src does not broadcast to exactly the view's shape.
func (v *View[T]) CopyFrom(src Expression[T]) error {
	outShape, _, err := v.BroadcastShape(src.Shape())
	if err != nil {
		return err
	}
	if !shapesEqual(outShape, v.shape) {
		return fmt.Errorf("%w: cannot assign shape %v into view of shape %v", ErrDimensionError, src.Shape(), v.shape)
	}
	m, ok := v.storage.(mutableFlatStorage[T])
	if !ok {
		return ErrNotMutable
	}

	srcShape := src.Shape()
	total := shapeProduct(v.shape)
	idx := make([]int, len(v.shape))
	srcIdx := make([]int, len(srcShape))
	for i := 0; i < total; i++ {
		layout.Unravel(i, v.shape, layout.RowMajor, idx)
		broadcastIndexInto(idx, srcShape, srcIdx)
		m.set(v.flatIndex(idx), src.Element(srcIdx...))
	}
	return nil
}

// BroadcastShape reports the shape v.shape broadcasts to together with
// out, and whether that broadcast is trivial.
func (v *View[T]) BroadcastShape(out []int) ([]int, bool, error) {
	return layout.BroadcastShape(v.shape, out)
}

// IsTrivialBroadcast reports whether strides describes exactly this view's
// own stride vector, i.e. iterating it needs no broadcast-index rewriting.
func (v *View[T]) IsTrivialBroadcast(strides []int) bool {
	if len(strides) != len(v.strides) {
		return false
	}
	for i := range strides {
		if strides[i] != v.strides[i] {
			return false
		}
	}
	return true
}
