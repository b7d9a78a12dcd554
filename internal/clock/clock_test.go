package clock

import (
	"math"
	"testing"
)

func TestNewGridSteps(t *testing.T) {
	g := New(2.0, 0.25)
	if !g.Active() {
		t.Fatal("expected active grid")
	}
	if g.Len() != 9 {
		t.Fatalf("expected 9 steps, got %d", g.Len())
	}
	if g.At(1) != 0 {
		t.Errorf("expected first step 0, got %f", g.At(1))
	}
	if math.Abs(g.At(9)-2.0) > Eps {
		t.Errorf("expected last step 2.0, got %f", g.At(9))
	}
	if !math.IsNaN(g.At(0)) || !math.IsNaN(g.At(10)) {
		t.Error("expected NaN outside index range")
	}
}

func TestIndexOf(t *testing.T) {
	g := New(2.0, 0.25)

	tests := []struct {
		tau  float64
		want int
	}{
		{0, 1},
		{0.25, 2},
		{0.25 + 1e-9, 2},
		{0.3, 2},
		{0.4, 3},
		{2.0, 9},
		{-0.5, 0},
		{2.5, 0},
	}
	for _, tt := range tests {
		if got := g.IndexOf(tt.tau); got != tt.want {
			t.Errorf("IndexOf(%f) = %d, want %d", tt.tau, got, tt.want)
		}
	}
}

func TestFloorCeil(t *testing.T) {
	g := New(2.0, 0.25)

	tests := []struct {
		tau       float64
		wantFloor int
		wantCeil  int
	}{
		{0, 1, 1},
		{0.3, 2, 3},
		{0.25, 2, 2},
		{1.99, 8, 9},
		{2.0, 9, 9},
		{-0.5, 0, 1},
		{2.5, 9, 0},
	}
	for _, tt := range tests {
		if got := g.Floor(tt.tau); got != tt.wantFloor {
			t.Errorf("Floor(%f) = %d, want %d", tt.tau, got, tt.wantFloor)
		}
		if got := g.Ceil(tt.tau); got != tt.wantCeil {
			t.Errorf("Ceil(%f) = %d, want %d", tt.tau, got, tt.wantCeil)
		}
	}
}

func TestIndicesIn(t *testing.T) {
	g := New(2.0, 0.25)

	got := g.IndicesIn(0.25, 0.75)
	want := []int{2, 3, 4}
	if len(got) != len(want) {
		t.Fatalf("IndicesIn(0.25, 0.75) = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("IndicesIn(0.25, 0.75) = %v, want %v", got, want)
		}
	}

	if got := g.IndicesIn(3, 4); len(got) != 0 {
		t.Errorf("expected no indices above the grid, got %v", got)
	}
}

func TestFrozenGrid(t *testing.T) {
	for _, g := range []*TimeGrid{New(2.0, 0), New(0, 0.25), New(-1, -1)} {
		if g.Active() {
			t.Fatal("expected frozen grid")
		}
		if g.Len() != 1 {
			t.Errorf("expected single step, got %d", g.Len())
		}
		if g.IndexOf(123) != 1 || g.Floor(-5) != 1 || g.Ceil(99) != 1 {
			t.Error("expected every query to answer 1 on a frozen grid")
		}
		idx := g.IndicesIn(0, 10)
		if len(idx) != 1 || idx[0] != 1 {
			t.Errorf("expected [1], got %v", idx)
		}
	}
}
