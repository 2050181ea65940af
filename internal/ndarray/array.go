package ndarray

import (
	"fmt"
	"sync/atomic"

	"github.com/go-ndview/ndview/internal/layout"
)

// arrayBuffer is the reference-counted flat backing store shared by every
// Array that clones from a common ancestor, mirroring the teacher's
// tensorBuffer (internal/tensor/raw.go): Clone is O(1) (just bumps the
// refcount) until a write forces a real copy.
type arrayBuffer[T any] struct {
	data     []T
	refcount atomic.Int32
}

func newArrayBuffer[T any](data []T) *arrayBuffer[T] {
	b := &arrayBuffer[T]{data: data}
	b.refcount.Store(1)
	return b
}

func (b *arrayBuffer[T]) addRef()  { b.refcount.Add(1) }
func (b *arrayBuffer[T]) release() { b.refcount.Add(-1) }
func (b *arrayBuffer[T]) isUnique() bool {
	return b.refcount.Load() == 1
}

// Array is a contiguous, row-major owning n-dimensional array. It
// implements view.Expression[T], view.MutableExpression[T] and
// view.DataExpression[T] structurally, without internal/ndarray importing
// internal/view, so a view can be built directly over one.
type Array[T any] struct {
	buffer *arrayBuffer[T]
	shape  Shape
	offset int
}

// New allocates a zero-valued Array of the given shape.
func New[T any](shape Shape) (*Array[T], error) {
	if err := shape.Validate(); err != nil {
		return nil, err
	}
	return &Array[T]{buffer: newArrayBuffer[T](make([]T, shape.NumElements())), shape: shape.Clone()}, nil
}

// NewFromSlice wraps data as an Array of the given shape. data must have
// exactly shape.NumElements() elements; it is used directly, not copied.
func NewFromSlice[T any](shape Shape, data []T) (*Array[T], error) {
	if err := shape.Validate(); err != nil {
		return nil, err
	}
	if len(data) != shape.NumElements() {
		return nil, fmt.Errorf("ndarray: shape %v needs %d elements, got %d", shape, shape.NumElements(), len(data))
	}
	return &Array[T]{buffer: newArrayBuffer[T](data), shape: shape.Clone()}, nil
}

// Full allocates an Array of the given shape with every element set to v.
func Full[T any](shape Shape, v T) (*Array[T], error) {
	a, err := New[T](shape)
	if err != nil {
		return nil, err
	}
	for i := range a.buffer.data {
		a.buffer.data[i] = v
	}
	return a, nil
}

// Shape returns a's shape.
func (a *Array[T]) Shape() []int { return a.shape }

// Dimension returns the number of axes.
func (a *Array[T]) Dimension() int { return len(a.shape) }

// Strides returns a's row-major strides.
func (a *Array[T]) Strides() []int { return layout.ComputeStrides(a.shape, layout.RowMajor) }

// Layout always reports RowMajor: Array never models any other order.
func (a *Array[T]) Layout() layout.Layout { return layout.RowMajor }

// HasDataInterface always reports true: an Array always has a flat buffer.
func (a *Array[T]) HasDataInterface() bool { return true }

// Storage returns the full backing buffer (not yet offset by DataOffset).
func (a *Array[T]) Storage() []T { return a.buffer.data }

// DataOffset returns a's offset into Storage().
func (a *Array[T]) DataOffset() int { return a.offset }

func (a *Array[T]) flatIndex(idx []int) int {
	strides := a.Strides()
	off := a.offset
	for k, i := range idx {
		off += i * strides[k]
	}
	return off
}

// Element returns the element at idx (spec.md §6's Expression contract).
func (a *Array[T]) Element(idx ...int) T {
	return a.buffer.data[a.flatIndex(idx)]
}

// SetElement writes the element at idx, forcing a private copy of the
// backing buffer first if it is shared with another Array (copy-on-write).
func (a *Array[T]) SetElement(val T, idx ...int) {
	a.ensureUnique()
	a.buffer.data[a.flatIndex(idx)] = val
}

// ensureUnique forces a's buffer to be privately owned, copying it first if
// another Array clone is still referencing it.
func (a *Array[T]) ensureUnique() {
	if a.buffer.isUnique() {
		return
	}
	data := make([]T, len(a.buffer.data))
	copy(data, a.buffer.data)
	a.buffer.release()
	a.buffer = newArrayBuffer[T](data)
}

// Clone returns a new Array sharing the same backing buffer as a (an O(1)
// reference-count bump), diverging only on the next SetElement on either
// copy. Writes made directly into Storage() (as a View over an Array
// makes them) land in the shared buffer and are seen by both copies.
func (a *Array[T]) Clone() *Array[T] {
	a.buffer.addRef()
	return &Array[T]{buffer: a.buffer, shape: a.shape.Clone(), offset: a.offset}
}

// Release drops a's reference to its backing buffer. a must not be used
// afterwards.
func (a *Array[T]) Release() {
	a.buffer.release()
}

// IsUnique reports whether a's backing buffer has no other live references.
func (a *Array[T]) IsUnique() bool {
	return a.buffer.isUnique()
}
