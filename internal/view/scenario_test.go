package view

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/go-ndview/ndview/internal/slicealg"
)

// End-to-end scenarios exercising composed operations in one flow, using
// testify for the boilerplate reduction around view.go's (value, error)
// returns, the same reason the teacher reaches for it in its own
// higher-arity test suites.

func TestScenarioContiguousSliceThenTranspose(t *testing.T) {
	src := newBufferFixture([]int{4, 5}, nil)
	src.data = make([]int, 20)
	for i := range src.data {
		src.data[i] = i
	}

	sliced, err := New[int](src, []slicealg.Slice{slicealg.Range(1, 3), slicealg.All()})
	require.NoError(t, err)
	require.Equal(t, []int{2, 5}, sliced.Shape())

	tp, err := Transpose[int](sliced)
	require.NoError(t, err)
	require.Equal(t, []int{5, 2}, tp.Shape())

	got, err := tp.At(0, 0)
	require.NoError(t, err)
	require.Equal(t, 5, got) // sliced[0,0] == src[1,0] == 5

	got, err = tp.At(4, 1)
	require.NoError(t, err)
	require.Equal(t, 14, got) // sliced[1,4] == src[2,4] == 14
}

func TestScenarioEllipsisAndNewAxis(t *testing.T) {
	src := newBufferFixture([]int{2, 3, 4}, make([]int, 24))
	for i := range src.data {
		src.data[i] = i
	}

	v, err := New[int](src, []slicealg.Slice{slicealg.NewAxis(), slicealg.Ellipsis(), slicealg.Index(2)})
	require.NoError(t, err)
	require.Equal(t, []int{1, 2, 3}, v.Shape())

	got, err := v.At(0, 1, 2)
	require.NoError(t, err)
	// src[1,2,2] = 1*12 + 2*4 + 2 = 22
	require.Equal(t, 22, got)
}

func TestScenarioFlattenOfNonContiguousThenSplit(t *testing.T) {
	src := newBufferFixture([]int{3, 2}, []int{0, 1, 2, 3, 4, 5})
	tp, err := Transpose[int](src) // shape [2,3], non-contiguous
	require.NoError(t, err)

	flat, err := Flatten[int](tp)
	require.NoError(t, err)
	require.Equal(t, []int{6}, flat.Shape())

	pieces, err := Split[int](flat, 2)
	require.NoError(t, err)
	require.Len(t, pieces, 2)

	var first, second []int
	for i := 0; i < 3; i++ {
		first = append(first, pieces[0].Get(i))
		second = append(second, pieces[1].Get(i))
	}
	require.Equal(t, []int{0, 2, 4}, first)
	require.Equal(t, []int{1, 3, 5}, second)
}

func TestScenarioFlipComposedWithSlice(t *testing.T) {
	src := newBufferFixture([]int{5}, []int{0, 1, 2, 3, 4})
	sliced, err := New[int](src, []slicealg.Slice{slicealg.Range(1, 4)})
	require.NoError(t, err)
	require.Equal(t, []int{3}, sliced.Shape())

	flipped, err := Flip[int](sliced, 0)
	require.NoError(t, err)

	got := []int{flipped.Get(0), flipped.Get(1), flipped.Get(2)}
	require.Equal(t, []int{3, 2, 1}, got)
}

func TestScenarioMutationThroughComposedView(t *testing.T) {
	src := newBufferFixture([]int{2, 2}, []int{0, 0, 0, 0})
	tp, err := Transpose[int](src)
	require.NoError(t, err)

	require.NoError(t, tp.SetAt(9, 1, 0))
	require.Equal(t, 9, src.data[1]) // src[0,1] is tp[1,0]

	require.NoError(t, tp.Fill(7))
	for _, v := range src.data {
		require.Equal(t, 7, v)
	}
}
