// Package ndarray is the owning, contiguous n-dimensional container the
// view engine builds views over. It is an external collaborator to
// internal/view (spec.md §1 lists "a concrete array/buffer type" as out of
// the view engine's own scope), grounded on internal/tensor/raw.go's
// RawTensor/tensorBuffer in the teacher, generalized from a closed DataType
// enum to a Go generic Array[T any] since this module has no multi-dtype
// runtime dispatch requirement.
package ndarray

import "fmt"

// Shape is the extent of each axis of an Array.
type Shape []int

// NumElements returns the product of shape's axes (1 for a scalar shape).
func (s Shape) NumElements() int {
	n := 1
	for _, d := range s {
		n *= d
	}
	return n
}

// Clone returns an independent copy of s.
func (s Shape) Clone() Shape {
	out := make(Shape, len(s))
	copy(out, s)
	return out
}

// Equal reports whether s and other have identical axes.
func (s Shape) Equal(other Shape) bool {
	if len(s) != len(other) {
		return false
	}
	for i := range s {
		if s[i] != other[i] {
			return false
		}
	}
	return true
}

// Validate reports an error if any axis is negative.
func (s Shape) Validate() error {
	for i, d := range s {
		if d < 0 {
			return fmt.Errorf("ndarray: negative axis %d at position %d", d, i)
		}
	}
	return nil
}
