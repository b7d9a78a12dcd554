// Package hybrid describes the input to the abstraction builder: a timed
// hybrid automaton with per-mode continuous dynamics, an explicit clock
// as the last augmented dimension, and guarded discrete transitions with
// reset maps.
package hybrid

import (
	"fmt"

	"github.com/san-kum/hysym/internal/dynamo"
	"github.com/san-kum/hysym/internal/grid"
)

// Disc carries a mode's discretization parameters: spatial cell size,
// input cell size and sampling/clock step.
type Disc struct {
	DX []float64
	DU []float64
	Dt float64
}

// Mode is one discrete location. StateBounds covers the spatial
// dimensions only; the clock is handled by the mode's time grid with
// Horizon as its extent. Growth is the Jacobian bound used by the
// growth-bound abstractor, either n-by-n or 1-by-1 scalar.
type Mode struct {
	Name        string
	Dynamics    dynamo.System
	StateBounds grid.Box
	InputBounds grid.Box
	Horizon     float64
	Disc        Disc
	Growth      [][]float64
}

// ResetMap relocates an augmented (state, clock) vector at the moment of
// a switch. The result must have the target mode's augmented dimension.
type ResetMap func(dynamo.State) dynamo.State

// Transition is a guarded switch between modes. The guard is an
// axis-aligned box over the source mode's augmented space, clock last.
type Transition struct {
	Source int
	Target int
	Guard  grid.Box
	Reset  ResetMap
}

// System is the hybrid-system handle consumed by the builder.
type System struct {
	Name        string
	Modes       []Mode
	Transitions []Transition
}

func (s *System) NumModes() int { return len(s.Modes) }

// Mode returns the 1-based mode k.
func (s *System) Mode(k int) Mode { return s.Modes[k-1] }

// IdentityReset keeps the spatial part and zeroes the clock.
func IdentityReset(x dynamo.State) dynamo.State {
	out := x.Clone()
	out[len(out)-1] = 0
	return out
}

// Validate checks the structural contract: at least one mode, mode ids in
// range, well-formed bounds, discretization vectors matching dimensions,
// reset maps present.
func (s *System) Validate() error {
	if len(s.Modes) == 0 {
		return fmt.Errorf("hybrid: system %q has no modes", s.Name)
	}
	for i, m := range s.Modes {
		k := i + 1
		if m.Dynamics == nil {
			return fmt.Errorf("hybrid: mode %d has no dynamics", k)
		}
		n := m.Dynamics.StateDim()
		if !m.StateBounds.Valid() || m.StateBounds.Dim() != n {
			return fmt.Errorf("hybrid: mode %d state bounds do not cover the %d-dimensional state space", k, n)
		}
		if m.Dynamics.InputDim() != m.InputBounds.Dim() {
			return fmt.Errorf("hybrid: mode %d input bounds dimension %d, dynamics expects %d",
				k, m.InputBounds.Dim(), m.Dynamics.InputDim())
		}
		if m.Dynamics.InputDim() > 0 && !m.InputBounds.Valid() {
			return fmt.Errorf("hybrid: mode %d input bounds invalid", k)
		}
		if len(m.Disc.DX) != n {
			return fmt.Errorf("hybrid: mode %d spatial step has dimension %d, want %d", k, len(m.Disc.DX), n)
		}
		if len(m.Disc.DU) != m.Dynamics.InputDim() {
			return fmt.Errorf("hybrid: mode %d input step has dimension %d, want %d", k, len(m.Disc.DU), m.Dynamics.InputDim())
		}
	}
	for i, tr := range s.Transitions {
		if tr.Source < 1 || tr.Source > len(s.Modes) {
			return fmt.Errorf("hybrid: transition %d has source mode %d outside [1, %d]", i+1, tr.Source, len(s.Modes))
		}
		if tr.Target < 1 || tr.Target > len(s.Modes) {
			return fmt.Errorf("hybrid: transition %d has target mode %d outside [1, %d]", i+1, tr.Target, len(s.Modes))
		}
		if tr.Reset == nil {
			return fmt.Errorf("hybrid: transition %d has no reset map", i+1)
		}
	}
	return nil
}
