package view

import "github.com/go-ndview/ndview/internal/layout"

// flatAdaptor presents a source that has no direct flat buffer as one
// anyway: it computes a canonical stride vector over the source's shape
// once, at construction, and from then on unravels a linear index against
// the source's shape in the adaptor's layout (the inverse of that canonical
// vector) to recover the multi-index the source itself understands. get and
// set do not read the strides field itself (spec.md §4.2, C2; grounded on
// flat_expression_adaptor in the original xtensor header, whose adaptor
// strides are likewise computed once over the whole source and never
// revisited regardless of how a later view rewrites its own strides).
type flatAdaptor[T any] struct {
	source  Expression[T]
	shape   []int
	strides []int
	layout  layout.Layout
	scratch []int // reused index buffer; not safe for concurrent get/set
}

// newFlatAdaptor wraps source with adaptor strides computed under the
// package's default layout (row-major).
func newFlatAdaptor[T any](source Expression[T]) *flatAdaptor[T] {
	shape := source.Shape()
	lay := layout.DefaultAssignableLayout(layout.Dynamic)
	return newFlatAdaptorWithStrides(source, layout.ComputeStrides(shape, lay), lay)
}

// newFlatAdaptorWithStrides wraps source with an explicit, caller-supplied
// stride vector and layout, mirroring flat_expression_adaptor's second
// constructor.
func newFlatAdaptorWithStrides[T any](source Expression[T], strides []int, l layout.Layout) *flatAdaptor[T] {
	shape := source.Shape()
	return &flatAdaptor[T]{
		source:  source,
		shape:   shape,
		strides: strides,
		layout:  l,
		scratch: make([]int, len(shape)),
	}
}

func (a *flatAdaptor[T]) size() int {
	n := 1
	for _, d := range a.shape {
		n *= d
	}
	return n
}

func (a *flatAdaptor[T]) get(i int) T {
	idx := layout.Unravel(i, a.shape, a.layout, a.scratch)
	return a.source.Element(idx...)
}

func (a *flatAdaptor[T]) set(i int, val T) {
	m, ok := a.source.(MutableExpression[T])
	if !ok {
		panic("view: underlying source is not mutable")
	}
	idx := layout.Unravel(i, a.shape, a.layout, a.scratch)
	m.SetElement(val, idx...)
}
