package view

import "github.com/go-ndview/ndview/internal/layout"

// bufferFixture is a minimal contiguous, row-major DataExpression[T] used
// to exercise the direct-buffer path through View.
type bufferFixture struct {
	shape []int
	data  []int
}

func newBufferFixture(shape []int, data []int) *bufferFixture {
	return &bufferFixture{shape: shape, data: data}
}

func (f *bufferFixture) Shape() []int     { return f.shape }
func (f *bufferFixture) Dimension() int   { return len(f.shape) }
func (f *bufferFixture) HasDataInterface() bool { return true }
func (f *bufferFixture) Storage() []int   { return f.data }
func (f *bufferFixture) DataOffset() int  { return 0 }
func (f *bufferFixture) Strides() []int   { return layout.ComputeStrides(f.shape, layout.RowMajor) }
func (f *bufferFixture) Layout() layout.Layout { return layout.RowMajor }

func (f *bufferFixture) Element(idx ...int) int {
	strides := f.Strides()
	off := 0
	for k, i := range idx {
		off += i * strides[k]
	}
	return f.data[off]
}

func (f *bufferFixture) SetElement(val int, idx ...int) {
	strides := f.Strides()
	off := 0
	for k, i := range idx {
		off += i * strides[k]
	}
	f.data[off] = val
}

// coordFixture is a multi-index-only source with no flat buffer: it
// computes each element from its coordinates, exercising the flatAdaptor
// (indexed) path through View. It is intentionally non-contiguous in the
// sense that it exposes no DataExpression capability at all.
type coordFixture struct {
	shape []int
	vals  map[[4]int]int // keyed by up to 4 dims, padded with -1
}

func newCoordFixture(shape []int) *coordFixture {
	return &coordFixture{shape: shape, vals: make(map[[4]int]int)}
}

func (f *coordFixture) key(idx []int) [4]int {
	var k [4]int
	for i := range k {
		k[i] = -1
	}
	copy(k[:], idx)
	return k
}

func (f *coordFixture) Shape() []int   { return f.shape }
func (f *coordFixture) Dimension() int { return len(f.shape) }

func (f *coordFixture) Element(idx ...int) int {
	return f.vals[f.key(idx)]
}

func (f *coordFixture) SetElement(val int, idx ...int) {
	f.vals[f.key(idx)] = val
}
