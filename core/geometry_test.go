package core

import "testing"

func TestIntersectOverlap(t *testing.T) {
	a := Rect{X: 0, Y: 0, W: 10, H: 10}
	b := Rect{X: 4, Y: 6, W: 10, H: 2}

	got := a.Intersect(b)
	want := Rect{X: 4, Y: 6, W: 6, H: 2}
	if got != want {
		t.Fatalf("intersect = %+v, want %+v", got, want)
	}
}

func TestIntersectDisjointIsEmpty(t *testing.T) {
	a := Rect{X: 0, Y: 0, W: 5, H: 5}
	b := Rect{X: 9, Y: 9, W: 3, H: 3}

	if got := a.Intersect(b); !got.Empty() {
		t.Fatalf("expected empty intersection, got %+v", got)
	}
}

func TestContains(t *testing.T) {
	r := Rect{X: 2, Y: 3, W: 4, H: 2}

	cases := []struct {
		x, y int
		want bool
	}{
		{2, 3, true},
		{5, 4, true},
		{6, 3, false},
		{2, 5, false},
		{1, 3, false},
	}
	for _, c := range cases {
		if got := r.Contains(c.x, c.y); got != c.want {
			t.Errorf("Contains(%d, %d) = %v, want %v", c.x, c.y, got, c.want)
		}
	}
}

func TestNewRectClampsNegativeDimensions(t *testing.T) {
	r := NewRect(1, 2, -3, -4)
	if r.W != 0 || r.H != 0 {
		t.Fatalf("expected clamped dimensions, got %+v", r)
	}
	if !r.Empty() {
		t.Fatal("zero-dimension rect should be empty")
	}
}
