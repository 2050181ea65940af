package ndarray

import (
	"reflect"
	"testing"
)

func TestNewZeroValued(t *testing.T) {
	a, err := New[float64](Shape{2, 3})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := a.Element(1, 2); got != 0 {
		t.Errorf("Element(1,2) = %v, want 0", got)
	}
}

func TestNewFromSliceRejectsWrongLength(t *testing.T) {
	_, err := NewFromSlice[int](Shape{2, 2}, []int{1, 2, 3})
	if err == nil {
		t.Errorf("expected an error for a mismatched slice length")
	}
}

func TestElementRoundTrip(t *testing.T) {
	a, err := NewFromSlice[int](Shape{2, 3}, []int{0, 1, 2, 3, 4, 5})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for i := 0; i < 2; i++ {
		for j := 0; j < 3; j++ {
			want := i*3 + j
			if got := a.Element(i, j); got != want {
				t.Errorf("Element(%d,%d) = %d, want %d", i, j, got, want)
			}
		}
	}
}

func TestCloneIsCopyOnWrite(t *testing.T) {
	a, err := NewFromSlice[int](Shape{3}, []int{1, 2, 3})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	b := a.Clone()

	if a.IsUnique() {
		t.Errorf("expected a to report non-unique immediately after Clone")
	}

	b.SetElement(99, 0)
	if got := a.Element(0); got != 1 {
		t.Errorf("a.Element(0) = %d, want 1 (clone write must not affect original)", got)
	}
	if got := b.Element(0); got != 99 {
		t.Errorf("b.Element(0) = %d, want 99", got)
	}
	if !a.IsUnique() {
		t.Errorf("expected a to become unique once b forked off its own buffer")
	}
}

func TestShapeHelpers(t *testing.T) {
	s := Shape{2, 3, 4}
	if s.NumElements() != 24 {
		t.Errorf("NumElements() = %d, want 24", s.NumElements())
	}
	clone := s.Clone()
	if !reflect.DeepEqual(clone, s) {
		t.Errorf("Clone() = %v, want %v", clone, s)
	}
	clone[0] = 99
	if s[0] == 99 {
		t.Errorf("Clone() shares backing storage with the original")
	}
	if !s.Equal(Shape{2, 3, 4}) {
		t.Errorf("Equal() should hold for identical shapes")
	}
	if s.Equal(Shape{2, 3}) {
		t.Errorf("Equal() should not hold for differing dimension counts")
	}
}

func TestFull(t *testing.T) {
	a, err := Full[int](Shape{2, 2}, 7)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for i := 0; i < 2; i++ {
		for j := 0; j < 2; j++ {
			if got := a.Element(i, j); got != 7 {
				t.Errorf("Element(%d,%d) = %d, want 7", i, j, got)
			}
		}
	}
}
