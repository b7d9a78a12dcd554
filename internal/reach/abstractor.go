// Package reach builds per-mode symbolic dynamics by growth-bound
// over-approximation: cell centers are propagated with a fixed-step
// integrator while the cell radius is inflated along a linear bound on
// the Jacobian, and every cell touched by the resulting box becomes a
// target of the relation.
package reach

import (
	"fmt"

	"github.com/san-kum/hysym/internal/dynamo"
	"github.com/san-kum/hysym/internal/grid"
	"github.com/san-kum/hysym/internal/integrators"
)

// Abstractor computes a SymDyn for one mode.
type Abstractor struct {
	sys      dynamo.System
	bounds   grid.Box
	inBounds grid.Box
	dx       []float64
	du       []float64
	dt       float64
	growth   [][]float64
	integ    dynamo.Integrator
	substeps int
}

// New configures a growth-bound abstractor. growth is the mode's
// Jacobian bound: an n-by-n matrix, or a single 1-by-1 entry applied as a
// scalar multiple of the identity.
func New(sys dynamo.System, bounds, inBounds grid.Box, dx, du []float64, dt float64, growth [][]float64) *Abstractor {
	return &Abstractor{
		sys:      sys,
		bounds:   bounds,
		inBounds: inBounds,
		dx:       dx,
		du:       du,
		dt:       dt,
		growth:   growth,
		integ:    integrators.NewRK4(),
		substeps: 5,
	}
}

// SetIntegrator overrides the default RK4 center propagator.
func (a *Abstractor) SetIntegrator(integ dynamo.Integrator) { a.integ = integ }

// SetSubsteps overrides the number of integration sub-steps per dt.
func (a *Abstractor) SetSubsteps(n int) {
	if n > 0 {
		a.substeps = n
	}
}

// Compute enumerates the transition relation. For every (source, input)
// pair the reachable tube is over-approximated by a box around the
// propagated center; pairs whose box escapes the state bounds emit no
// transitions, keeping the abstraction sound on the bounded domain.
func (a *Abstractor) Compute() (*SymDyn, error) {
	n := a.sys.StateDim()
	if a.bounds.Dim() != n {
		return nil, fmt.Errorf("reach: state bounds dimension %d does not match system dimension %d: %w",
			a.bounds.Dim(), n, dynamo.ErrDimensionMismatch)
	}
	if a.sys.InputDim() != a.inBounds.Dim() {
		return nil, fmt.Errorf("reach: input bounds dimension %d does not match system input dimension %d: %w",
			a.inBounds.Dim(), a.sys.InputDim(), dynamo.ErrDimensionMismatch)
	}
	L, err := a.growthMatrix(n)
	if err != nil {
		return nil, err
	}

	states, err := grid.NewQuantizer(a.bounds, a.dx)
	if err != nil {
		return nil, err
	}
	inputs, err := grid.NewQuantizer(a.inBounds, a.du)
	if err != nil {
		return nil, err
	}

	var trans []Transition
	if a.dt > 0 {
		radius := a.propagateRadius(L)
		hsub := a.dt / float64(a.substeps)

		// The containment test allows 1e-9 of floating point noise, so a
		// tube ending exactly on the state bounds still counts as inside.
		slack := make([]float64, n)
		for i := range slack {
			slack[i] = 1e-9
		}
		domain := a.bounds.Grow(slack)

		for u := 1; u <= inputs.NumCells(); u++ {
			uc := dynamo.Control(inputs.Concrete(u))
			for q := 1; q <= states.NumCells(); q++ {
				x := states.Concrete(q)
				t := 0.0
				for s := 0; s < a.substeps; s++ {
					x = a.integ.Step(a.sys, x, uc, t, hsub)
					t += hsub
				}
				if !x.IsValid() {
					continue
				}
				tube := grid.Box{Lo: x, Hi: x.Clone()}.Grow(radius)
				if !domain.ContainsBox(tube) {
					continue
				}
				for _, tq := range states.CellsIntersecting(tube) {
					trans = append(trans, Transition{Target: tq, Source: q, Input: u})
				}
			}
		}
	}

	return NewSymDyn(states, inputs, trans), nil
}

func (a *Abstractor) growthMatrix(n int) ([][]float64, error) {
	if len(a.growth) == 1 && len(a.growth[0]) == 1 && n != 1 {
		L := make([][]float64, n)
		for i := range L {
			L[i] = make([]float64, n)
			L[i][i] = a.growth[0][0]
		}
		return L, nil
	}
	if len(a.growth) != n {
		return nil, fmt.Errorf("reach: growth bound is %d-by-%d, want %d-by-%d: %w",
			len(a.growth), rowLen(a.growth), n, n, dynamo.ErrDimensionMismatch)
	}
	for _, row := range a.growth {
		if len(row) != n {
			return nil, fmt.Errorf("reach: growth bound is %d-by-%d, want %d-by-%d: %w",
				len(a.growth), len(row), n, n, dynamo.ErrDimensionMismatch)
		}
	}
	return a.growth, nil
}

// propagateRadius integrates dr/dt = L*r from the half-cell radius over
// dt, over-approximating how far trajectories starting anywhere in a cell
// can drift from the propagated center.
func (a *Abstractor) propagateRadius(L [][]float64) []float64 {
	n := len(L)
	r := make(dynamo.State, n)
	for i := range r {
		r[i] = a.dx[i] / 2
	}
	lin := &radiusSystem{L: L}
	hsub := a.dt / float64(a.substeps)
	t := 0.0
	for s := 0; s < a.substeps; s++ {
		r = a.integ.Step(lin, r, nil, t, hsub)
		t += hsub
	}
	return r
}

type radiusSystem struct {
	L [][]float64
}

func (s *radiusSystem) Derive(x dynamo.State, _ dynamo.Control, _ float64) dynamo.State {
	n := len(s.L)
	dx := make(dynamo.State, n)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			dx[i] += s.L[i][j] * x[j]
		}
	}
	return dx
}

func (s *radiusSystem) StateDim() int { return len(s.L) }
func (s *radiusSystem) InputDim() int { return 0 }

func rowLen(m [][]float64) int {
	if len(m) == 0 {
		return 0
	}
	return len(m[0])
}
