package view

import "errors"

// Sentinel errors raised while building or operating on a View (spec.md §7).
var (
	ErrIndexOutOfBounds  = errors.New("view: index out of bounds")
	ErrDimensionError    = errors.New("view: dimension mismatch")
	ErrInvalidStep       = errors.New("view: step must not be zero")
	ErrDuplicateEllipsis = errors.New("view: duplicate ellipsis in slice list")
	ErrTooManySlices     = errors.New("view: too many slices for source dimension")
	ErrTransposeError    = errors.New("view: invalid axis permutation")
	ErrSqueezeError      = errors.New("view: cannot squeeze an axis of length other than 1")
	ErrSplitError        = errors.New("view: invalid split")
	ErrNotMutable        = errors.New("view: underlying source does not support mutation")
)
