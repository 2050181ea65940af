package view_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/go-ndview/ndview/ndarray"
	"github.com/go-ndview/ndview/view"
)

func TestStridedViewOverArray(t *testing.T) {
	a, err := ndarray.NewFromSlice[float64](ndarray.Shape{4, 5}, sequence(20))
	require.NoError(t, err)

	v, err := view.StridedView[float64](a, view.Range(1, 3), view.All())
	require.NoError(t, err)
	require.Equal(t, []int{2, 5}, v.Shape())

	got, err := v.At(0, 0)
	require.NoError(t, err)
	require.Equal(t, float64(5), got)
}

func TestTransposeOverArrayIsWritable(t *testing.T) {
	a, err := ndarray.NewFromSlice[int](ndarray.Shape{2, 2}, []int{1, 2, 3, 4})
	require.NoError(t, err)

	tp, err := view.Transpose[int](a)
	require.NoError(t, err)
	require.Equal(t, []int{2, 2}, tp.Shape())

	require.NoError(t, tp.SetAt(99, 0, 1))
	require.Equal(t, 99, a.Element(1, 0))
}

func sequence(n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = float64(i)
	}
	return out
}
