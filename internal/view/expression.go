package view

import "github.com/go-ndview/ndview/internal/layout"

// Expression is the minimal read contract a view's source must satisfy
// (spec.md §6, "Source expression"): a shape, a dimension count, and
// multi-index element access.
type Expression[T any] interface {
	Shape() []int
	Dimension() int
	Element(idx ...int) T
}

// MutableExpression additionally allows writing through multi-index access.
// A view built over a source that does not implement this can still be
// read, but any attempt to mutate it fails.
type MutableExpression[T any] interface {
	Expression[T]
	SetElement(val T, idx ...int)
}

// DataExpression is the capability a source exposes when it has a direct
// flat buffer backing it (spec.md §6: storage()/data()/data_offset()/
// strides()). HasDataInterface lets a single concrete type (notably
// *View[T] itself, composing views over views) report the capability only
// when it actually applies, since Go interfaces can't be satisfied
// conditionally by a fixed method set — this is the capability-negotiation
// idiom spec.md §9's design notes ask for, adapted to Go.
type DataExpression[T any] interface {
	Expression[T]
	HasDataInterface() bool
	Storage() []T
	DataOffset() int
	Strides() []int
	Layout() layout.Layout
}
