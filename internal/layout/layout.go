// Package layout implements the stride/layout arithmetic that the view
// engine treats as an external collaborator (spec.md §6, "Layout
// utilities"): computing strides for a shape under a given traversal order,
// deriving backstrides, testing whether a stride vector matches a layout,
// and unraveling a linear index back into a multi-index.
package layout

import "fmt"

// Layout is the canonical traversal order of a shape's elements.
type Layout int

// Supported traversal layouts.
const (
	// RowMajor strides decrease left to right; the last axis is fastest.
	RowMajor Layout = iota
	// ColumnMajor strides increase left to right; the first axis is fastest.
	ColumnMajor
	// Dynamic means the strides don't correspond to either canonical order.
	Dynamic
	// Any is a wildcard accepted where any concrete layout is acceptable.
	Any
)

// String returns a human-readable layout name.
func (l Layout) String() string {
	switch l {
	case RowMajor:
		return "row_major"
	case ColumnMajor:
		return "column_major"
	case Dynamic:
		return "dynamic"
	case Any:
		return "any"
	default:
		return "unknown"
	}
}

// DefaultAssignableLayout maps a non-concrete layout (Dynamic or Any) to the
// implementation's preferred default for operations that must pick one
// (e.g. the flat adaptor's default stride computation). RowMajor and
// ColumnMajor pass through unchanged.
func DefaultAssignableLayout(l Layout) Layout {
	switch l {
	case RowMajor, ColumnMajor:
		return l
	default:
		return RowMajor
	}
}

// ComputeStrides returns the strides of shape under layout. layout must be
// RowMajor or ColumnMajor; callers holding a Dynamic/Any layout should run it
// through DefaultAssignableLayout first.
func ComputeStrides(shape []int, l Layout) []int {
	strides := make([]int, len(shape))
	if len(shape) == 0 {
		return strides
	}

	switch l {
	case ColumnMajor:
		strides[0] = 1
		for i := 1; i < len(shape); i++ {
			strides[i] = strides[i-1] * shape[i-1]
		}
	default: // RowMajor
		strides[len(shape)-1] = 1
		for i := len(shape) - 2; i >= 0; i-- {
			strides[i] = strides[i+1] * shape[i+1]
		}
	}
	return strides
}

// AdaptStrides derives the backstride vector from shape and strides:
// backstrides[k] = strides[k] * (shape[k]-1), or 0 when shape[k] == 0.
func AdaptStrides(shape, strides []int) []int {
	back := make([]int, len(shape))
	for k := range shape {
		if shape[k] > 0 {
			back[k] = strides[k] * (shape[k] - 1)
		}
	}
	return back
}

// DoStridesMatch reports whether strides is exactly the canonical stride
// vector for shape under layout. Dynamic and Any never match.
func DoStridesMatch(shape, strides []int, l Layout) bool {
	if l != RowMajor && l != ColumnMajor {
		return false
	}
	want := ComputeStrides(shape, l)
	if len(want) != len(strides) {
		return false
	}
	for i := range want {
		// Axes of length <= 1 don't constrain the stride: any value is
		// consistent with a canonical layout there.
		if shape[i] <= 1 {
			continue
		}
		if want[i] != strides[i] {
			return false
		}
	}
	return true
}

// Unravel decodes a linear index into a multi-index against shape under
// layout, writing into (and returning) out. out must have len(shape)
// entries; it is reused as scratch space by callers that unravel repeatedly
// (see the flat adaptor), so it is not safe to share across goroutines.
func Unravel(linear int, shape []int, l Layout, out []int) []int {
	ndim := len(shape)
	switch l {
	case ColumnMajor:
		for i := 0; i < ndim; i++ {
			if shape[i] == 0 {
				out[i] = 0
				continue
			}
			out[i] = linear % shape[i]
			linear /= shape[i]
		}
	default: // RowMajor
		for i := ndim - 1; i >= 0; i-- {
			if shape[i] == 0 {
				out[i] = 0
				continue
			}
			out[i] = linear % shape[i]
			linear /= shape[i]
		}
	}
	return out
}

// StridedDataEnd computes the flat offset one past the last element of a
// descriptor (shape, strides, offset) when traversed in layout order. It is
// the "past the end" address used by steppers (spec.md §4.6) to know when
// iteration is complete.
func StridedDataEnd(shape, strides []int, offset int, l Layout) int {
	if shapeProduct(shape) == 0 {
		return offset
	}
	if len(shape) == 0 {
		return offset + 1
	}
	end := offset
	switch l {
	case ColumnMajor:
		end += strides[len(shape)-1] * shape[len(shape)-1]
	default:
		end += strides[0] * shape[0]
	}
	return end
}

// BroadcastShape widens out, in place semantics aside, to be
// broadcast-compatible with local following NumPy rules (spec.md §6), and
// reports whether broadcasting was trivial (the two shapes are identical
// modulo leading ones).
func BroadcastShape(local, out []int) ([]int, bool, error) {
	n := len(local)
	if len(out) > n {
		n = len(out)
	}
	result := make([]int, n)
	trivial := true

	for i := 0; i < n; i++ {
		li := len(local) - 1 - i
		oi := len(out) - 1 - i

		ld, od := 1, 1
		if li >= 0 {
			ld = local[li]
		}
		if oi >= 0 {
			od = out[oi]
		}

		switch {
		case ld == od:
			result[n-1-i] = ld
		case ld == 1:
			result[n-1-i] = od
			trivial = false
		case od == 1:
			result[n-1-i] = ld
			trivial = false
		default:
			return nil, false, fmt.Errorf("layout: shapes not broadcast-compatible: %v vs %v", local, out)
		}
	}
	return result, trivial, nil
}

func shapeProduct(shape []int) int {
	n := 1
	for _, d := range shape {
		n *= d
	}
	return n
}
