package view

import (
	"reflect"
	"testing"
)

func TestTranspose(t *testing.T) {
	src := newBufferFixture([]int{2, 3}, []int{0, 1, 2, 3, 4, 5})
	v, err := Transpose[int](src)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !reflect.DeepEqual(v.Shape(), []int{3, 2}) {
		t.Errorf("Shape() = %v, want [3 2]", v.Shape())
	}
	for i := 0; i < 3; i++ {
		for j := 0; j < 2; j++ {
			want := src.Element(j, i)
			if got := v.Index([]int{i, j}); got != want {
				t.Errorf("Index(%d,%d) = %d, want %d", i, j, got, want)
			}
		}
	}
}

func TestTransposeAxesRejectsBadPermutation(t *testing.T) {
	src := newBufferFixture([]int{2, 3, 4}, make([]int, 24))
	if _, err := TransposeAxes[int](src, []int{0, 0, 2}); err == nil {
		t.Errorf("expected an error for a non-permutation axes list")
	}
	if _, err := TransposeAxes[int](src, []int{0, 1}); err == nil {
		t.Errorf("expected an error for too few axes")
	}
}

func TestFlattenContiguousReusesBuffer(t *testing.T) {
	src := newBufferFixture([]int{2, 3}, []int{0, 1, 2, 3, 4, 5})
	v, err := Flatten[int](src)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !reflect.DeepEqual(v.Shape(), []int{6}) {
		t.Errorf("Shape() = %v, want [6]", v.Shape())
	}
	if !v.HasDataInterface() {
		t.Errorf("expected Flatten of a contiguous row-major source to reuse its buffer")
	}
	for i := 0; i < 6; i++ {
		if got := v.Get(i); got != i {
			t.Errorf("Get(%d) = %d, want %d", i, got, i)
		}
	}
}

func TestFlattenOfNonContiguousGoesThroughAdaptor(t *testing.T) {
	src := newBufferFixture([]int{2, 3}, []int{0, 1, 2, 3, 4, 5})
	tp, err := Transpose[int](src) // non-contiguous: strides [1, 3]
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	flat, err := Flatten[int](tp)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []int{0, 3, 1, 4, 2, 5}
	for i, w := range want {
		if got := flat.Get(i); got != w {
			t.Errorf("flat.Get(%d) = %d, want %d", i, got, w)
		}
	}
}

func TestSqueeze(t *testing.T) {
	src := newBufferFixture([]int{1, 3, 1}, []int{0, 1, 2})
	v, err := Squeeze[int](src)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !reflect.DeepEqual(v.Shape(), []int{3}) {
		t.Errorf("Shape() = %v, want [3]", v.Shape())
	}
}

func TestSqueezeAxesRejectsNonUnitAxis(t *testing.T) {
	src := newBufferFixture([]int{2, 3}, make([]int, 6))
	if _, err := SqueezeAxes[int](src, []int{0}); err == nil {
		t.Errorf("expected an error squeezing an axis of length 2")
	}
}

func TestExpandDims(t *testing.T) {
	src := newBufferFixture([]int{3}, []int{0, 1, 2})
	v, err := ExpandDims[int](src, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !reflect.DeepEqual(v.Shape(), []int{1, 3}) {
		t.Errorf("Shape() = %v, want [1 3]", v.Shape())
	}

	v2, err := ExpandDims[int](src, 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !reflect.DeepEqual(v2.Shape(), []int{3, 1}) {
		t.Errorf("Shape() = %v, want [3 1]", v2.Shape())
	}
}

func TestAtLeastNdSplitsRoundHalfUp(t *testing.T) {
	// N=3, dim=1 -> lead=1, trail=1 (shape [1,n,1]).
	src := newBufferFixture([]int{5}, []int{0, 1, 2, 3, 4})
	v, err := AtLeastNd[int](src, 3)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !reflect.DeepEqual(v.Shape(), []int{1, 5, 1}) {
		t.Errorf("Shape() = %v, want [1 5 1]", v.Shape())
	}
}

func TestAtLeastNdNoOpWhenAlreadyDeepEnough(t *testing.T) {
	src := newBufferFixture([]int{2, 3}, make([]int, 6))
	v, err := AtLeast1d[int](src)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !reflect.DeepEqual(v.Shape(), []int{2, 3}) {
		t.Errorf("Shape() = %v, want [2 3] unchanged", v.Shape())
	}
}

func TestSplit(t *testing.T) {
	// shape [4,2], split(a,2,0) -> two [2,2] views over rows [0,1] and [2,3].
	src := newBufferFixture([]int{4, 2}, []int{0, 1, 2, 3, 4, 5, 6, 7})
	pieces, err := Split[int](src, 2, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(pieces) != 2 {
		t.Fatalf("len(pieces) = %d, want 2", len(pieces))
	}
	if !reflect.DeepEqual(pieces[0].Shape(), []int{2, 2}) || !reflect.DeepEqual(pieces[1].Shape(), []int{2, 2}) {
		t.Errorf("piece shapes = %v, %v, want [2 2], [2 2]", pieces[0].Shape(), pieces[1].Shape())
	}
	if pieces[1].Index([]int{0, 0}) != 4 {
		t.Errorf("pieces[1].Index(0,0) = %d, want 4", pieces[1].Index([]int{0, 0}))
	}
}

func TestSplitRejectsUnevenDivision(t *testing.T) {
	src := newBufferFixture([]int{4, 2}, make([]int, 8))
	if _, err := Split[int](src, 3, 0); err == nil {
		t.Errorf("expected an error when the axis length isn't divisible by the piece count")
	}
}

func TestFlip(t *testing.T) {
	src := newBufferFixture([]int{4}, []int{0, 1, 2, 3})
	v, err := Flip[int](src, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []int{3, 2, 1, 0}
	for i, w := range want {
		if got := v.Get(i); got != w {
			t.Errorf("Get(%d) = %d, want %d", i, got, w)
		}
	}
}

func TestTrimZeros(t *testing.T) {
	src := newBufferFixture([]int{6}, []int{0, 0, 1, 2, 0, 0})
	v, err := TrimZeros[int](src, func(x int) bool { return x == 0 })
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !reflect.DeepEqual(v.Shape(), []int{2}) {
		t.Errorf("Shape() = %v, want [2]", v.Shape())
	}
	if v.Get(0) != 1 || v.Get(1) != 2 {
		t.Errorf("TrimZeros result = [%d %d], want [1 2]", v.Get(0), v.Get(1))
	}
}
