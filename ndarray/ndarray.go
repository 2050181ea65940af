// Package ndarray is the public surface of the owning, contiguous
// n-dimensional container the view package builds views over.
package ndarray

import (
	internal "github.com/go-ndview/ndview/internal/ndarray"
)

// Shape is the extent of each axis of an Array.
type Shape = internal.Shape

// Array is a contiguous, row-major owning n-dimensional array with
// copy-on-write cloning.
type Array[T any] = internal.Array[T]

// New allocates a zero-valued Array of the given shape.
func New[T any](shape Shape) (*Array[T], error) { return internal.New[T](shape) }

// NewFromSlice wraps data as an Array of the given shape, used directly
// rather than copied.
func NewFromSlice[T any](shape Shape, data []T) (*Array[T], error) {
	return internal.NewFromSlice[T](shape, data)
}

// Full allocates an Array of the given shape with every element set to v.
func Full[T any](shape Shape, v T) (*Array[T], error) { return internal.Full[T](shape, v) }

// Zeros allocates a zero-valued Array of the given shape.
func Zeros[T any](shape Shape) (*Array[T], error) { return internal.New[T](shape) }
