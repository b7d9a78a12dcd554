// Package clock implements the per-mode symbolic time grid. Time indices
// are 1-based; 0 is the not-found sentinel consumed by the switching
// transition builder.
package clock

import (
	"fmt"
	"math"
)

// Eps is the absolute tolerance for matching a real time value against a
// grid point.
const Eps = 1e-7

// TimeGrid is a finite uniform time grid tau_0, tau_0+dt, ..., tau_0+L*dt.
// A frozen grid has a single step and answers every query with index 1.
type TimeGrid struct {
	steps  []float64
	dt     float64
	active bool
}

// New builds the time grid over [0, horizon] with step dt. A non-positive
// dt or horizon yields a frozen single-step grid.
func New(horizon, dt float64) *TimeGrid {
	if dt <= 0 || horizon <= 0 {
		return &TimeGrid{steps: []float64{0}, dt: 0, active: false}
	}
	n := int(math.Floor(horizon/dt + Eps))
	steps := make([]float64, n+1)
	for i := range steps {
		steps[i] = float64(i) * dt
	}
	return &TimeGrid{steps: steps, dt: dt, active: true}
}

func (g *TimeGrid) Active() bool { return g.active }
func (g *TimeGrid) Dt() float64  { return g.dt }
func (g *TimeGrid) Len() int     { return len(g.steps) }

// At returns the time value of 1-based index i.
func (g *TimeGrid) At(i int) float64 {
	if i < 1 || i > len(g.steps) {
		return math.NaN()
	}
	return g.steps[i-1]
}

// Steps returns a copy of the grid values.
func (g *TimeGrid) Steps() []float64 {
	return append([]float64(nil), g.steps...)
}

// IndexOf locates tau on the grid: an exact match within Eps wins,
// otherwise the nearest grid point. Values outside the grid range return
// the sentinel 0.
func (g *TimeGrid) IndexOf(tau float64) int {
	if !g.active {
		return 1
	}
	first, last := g.steps[0], g.steps[len(g.steps)-1]
	if tau < first-Eps || tau > last+Eps {
		return 0
	}
	i := int(math.Round((tau - first) / g.dt))
	if i < 0 {
		i = 0
	}
	if i >= len(g.steps) {
		i = len(g.steps) - 1
	}
	return i + 1
}

// Floor returns the largest index whose grid value does not exceed tau,
// clamped to the last index above the grid; 0 below the grid.
func (g *TimeGrid) Floor(tau float64) int {
	if !g.active {
		return 1
	}
	first := g.steps[0]
	if tau < first-Eps {
		return 0
	}
	i := int(math.Floor((tau - first + Eps) / g.dt))
	if i >= len(g.steps) {
		i = len(g.steps) - 1
	}
	return i + 1
}

// Ceil returns the smallest index whose grid value is at least tau,
// clamped to the first index below the grid; 0 above the grid.
func (g *TimeGrid) Ceil(tau float64) int {
	if !g.active {
		return 1
	}
	last := g.steps[len(g.steps)-1]
	if tau > last+Eps {
		return 0
	}
	i := int(math.Ceil((tau - g.steps[0] - Eps) / g.dt))
	if i < 0 {
		i = 0
	}
	return i + 1
}

// IndicesIn returns, in increasing order, every index whose grid value
// lies in [lo, hi]. A frozen grid answers [1].
func (g *TimeGrid) IndicesIn(lo, hi float64) []int {
	if !g.active {
		return []int{1}
	}
	var out []int
	for i, v := range g.steps {
		if v >= lo-Eps && v <= hi+Eps {
			out = append(out, i+1)
		}
	}
	return out
}

func (g *TimeGrid) String() string {
	if !g.active {
		return "frozen"
	}
	return fmt.Sprintf("[0, %.4g] dt=%.4g (%d steps)", g.steps[len(g.steps)-1], g.dt, len(g.steps))
}
