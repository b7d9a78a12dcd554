package reach

import (
	"errors"
	"testing"

	"github.com/san-kum/hysym/internal/dynamo"
	"github.com/san-kum/hysym/internal/grid"
)

// drift is dx/dt = v with no input.
type drift struct {
	v float64
}

func (d *drift) StateDim() int { return 1 }
func (d *drift) InputDim() int { return 0 }
func (d *drift) Derive(x dynamo.State, _ dynamo.Control, _ float64) dynamo.State {
	return dynamo.State{d.v}
}

// velocity is dx/dt = u.
type velocity struct{}

func (velocity) StateDim() int { return 1 }
func (velocity) InputDim() int { return 1 }
func (velocity) Derive(x dynamo.State, u dynamo.Control, _ float64) dynamo.State {
	return dynamo.State{u[0]}
}

func unitLine() grid.Box { return grid.NewBox([]float64{0}, []float64{1}) }

func TestComputeSelfLoops(t *testing.T) {
	// Stationary dynamics with zero growth keep every tube inside its
	// own cell.
	a := New(&drift{v: 0}, unitLine(), grid.Box{}, []float64{0.25}, nil, 0.5, [][]float64{{0}})
	d, err := a.Compute()
	if err != nil {
		t.Fatal(err)
	}

	if d.NumStates() != 4 {
		t.Fatalf("expected 4 states, got %d", d.NumStates())
	}
	if d.NumInputs() != 1 {
		t.Fatalf("expected degenerate input symbol, got %d", d.NumInputs())
	}

	trans := d.Transitions()
	if len(trans) != 4 {
		t.Fatalf("expected 4 self-loops, got %d: %v", len(trans), trans)
	}
	for _, tr := range trans {
		if tr.Target != tr.Source {
			t.Errorf("expected self-loop, got %d -> %d", tr.Source, tr.Target)
		}
		if tr.Input != 1 {
			t.Errorf("expected input symbol 1, got %d", tr.Input)
		}
	}
}

func TestComputeShift(t *testing.T) {
	// Constant drift of one cell per step: q -> q+1, and the tube from
	// the last cell escapes the domain.
	a := New(&drift{v: 0.5}, unitLine(), grid.Box{}, []float64{0.25}, nil, 0.5, [][]float64{{0}})
	d, err := a.Compute()
	if err != nil {
		t.Fatal(err)
	}

	want := map[int]int{1: 2, 2: 3, 3: 4}
	trans := d.Transitions()
	if len(trans) != len(want) {
		t.Fatalf("expected %d transitions, got %d: %v", len(want), len(trans), trans)
	}
	for _, tr := range trans {
		if want[tr.Source] != tr.Target {
			t.Errorf("expected %d -> %d, got -> %d", tr.Source, want[tr.Source], tr.Target)
		}
	}
}

func TestComputeGrowthWidensTube(t *testing.T) {
	// Positive growth inflates the radius past the half cell, pulling
	// in both neighbors; boundary cells escape and emit nothing.
	a := New(&drift{v: 0}, unitLine(), grid.Box{}, []float64{0.25}, nil, 0.5, [][]float64{{0.3}})
	d, err := a.Compute()
	if err != nil {
		t.Fatal(err)
	}

	targets := map[int][]int{}
	for _, tr := range d.Transitions() {
		targets[tr.Source] = append(targets[tr.Source], tr.Target)
	}

	if len(targets[1]) != 0 || len(targets[4]) != 0 {
		t.Errorf("expected boundary cells to emit nothing, got %v", targets)
	}
	assertTargets(t, targets[2], []int{1, 2, 3})
	assertTargets(t, targets[3], []int{2, 3, 4})
}

func TestComputeInputDependent(t *testing.T) {
	a := New(velocity{}, unitLine(), grid.NewBox([]float64{0}, []float64{1}),
		[]float64{0.25}, []float64{0.5}, 0.5, [][]float64{{0}})
	d, err := a.Compute()
	if err != nil {
		t.Fatal(err)
	}

	if d.NumInputs() != 2 {
		t.Fatalf("expected 2 input symbols, got %d", d.NumInputs())
	}

	targets := func(q, u int) []int {
		var out []int
		for _, tr := range d.Transitions() {
			if tr.Source == q && tr.Input == u {
				out = append(out, tr.Target)
			}
		}
		return out
	}

	// u=0.25 shifts half a cell, u=0.75 shifts one and a half.
	assertTargets(t, targets(1, 1), []int{1, 2})
	assertTargets(t, targets(1, 2), []int{2, 3})
}

func TestComputeFrozenStep(t *testing.T) {
	a := New(&drift{v: 1}, unitLine(), grid.Box{}, []float64{0.25}, nil, 0, [][]float64{{0}})
	d, err := a.Compute()
	if err != nil {
		t.Fatal(err)
	}
	if len(d.Transitions()) != 0 {
		t.Errorf("expected empty relation without a sampling step, got %v", d.Transitions())
	}
}

func TestComputeDimensionErrors(t *testing.T) {
	bad := New(&drift{v: 0}, grid.NewBox([]float64{0, 0}, []float64{1, 1}), grid.Box{},
		[]float64{0.25, 0.25}, nil, 0.5, [][]float64{{0}})
	if _, err := bad.Compute(); !errors.Is(err, dynamo.ErrDimensionMismatch) {
		t.Errorf("expected dimension mismatch, got %v", err)
	}

	bad = New(velocity{}, unitLine(), grid.Box{}, []float64{0.25}, nil, 0.5, [][]float64{{0}})
	if _, err := bad.Compute(); !errors.Is(err, dynamo.ErrDimensionMismatch) {
		t.Errorf("expected input dimension mismatch, got %v", err)
	}

	bad = New(&drift{v: 0}, unitLine(), grid.Box{}, []float64{0.25}, nil, 0.5, [][]float64{{0, 0}, {0, 0}})
	if _, err := bad.Compute(); !errors.Is(err, dynamo.ErrDimensionMismatch) {
		t.Errorf("expected growth shape mismatch, got %v", err)
	}
}

func TestSymDynRoundTrips(t *testing.T) {
	a := New(velocity{}, unitLine(), grid.NewBox([]float64{0}, []float64{1}),
		[]float64{0.25}, []float64{0.5}, 0.5, [][]float64{{0}})
	d, err := a.Compute()
	if err != nil {
		t.Fatal(err)
	}

	for u := 1; u <= d.NumInputs(); u++ {
		uc := d.ConcreteInput(u)
		if got := d.AbstractInput(uc); got != u {
			t.Errorf("input %d round-trips to %d", u, got)
		}
	}
	if d.AbstractInput(dynamo.Control{5}) != 0 {
		t.Error("expected sentinel for input outside the domain")
	}
	if d.Abstract(dynamo.State{-1}) != 0 {
		t.Error("expected sentinel for state outside the domain")
	}
}

func assertTargets(t *testing.T, got, want []int) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("targets = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("targets = %v, want %v", got, want)
		}
	}
}
