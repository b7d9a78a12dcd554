// Package symbolic assembles the temporal-hybrid symbolic model: per-mode
// symbolic dynamics and clocks are combined into intra-mode product
// transitions and guard-enumerated switching transitions over one global
// input alphabet, then compacted into a dense labeled transition system.
package symbolic

import (
	"github.com/san-kum/hysym/internal/clock"
	"github.com/san-kum/hysym/internal/hybrid"
	"github.com/san-kum/hysym/internal/mux"
	"github.com/san-kum/hysym/internal/reach"
)

// Options tunes the build. The zero value is the default configuration.
type Options struct {
	// Boundary selects the policy for reset images on target cell
	// boundaries.
	Boundary BoundaryPolicy

	// Abstract overrides the per-mode abstractor. When nil, a
	// growth-bound reach.Abstractor is instantiated from the mode's
	// discretization parameters.
	Abstract func(m hybrid.Mode) (Abstraction, error)
}

// Build runs the whole pipeline synchronously and returns the immutable
// model: per-mode abstraction, clock grids, global input numbering,
// intra-mode product transitions, switching transitions, compaction.
// Construction failures abort the build with a typed error naming the
// offending mode or transition.
func Build(sys *hybrid.System, opts Options) (*Model, error) {
	if err := sys.Validate(); err != nil {
		return nil, err
	}

	abstract := opts.Abstract
	if abstract == nil {
		abstract = func(m hybrid.Mode) (Abstraction, error) {
			a := reach.New(m.Dynamics, m.StateBounds, m.InputBounds, m.Disc.DX, m.Disc.DU, m.Disc.Dt, m.Growth)
			return a.Compute()
		}
	}

	abs := make([]Abstraction, sys.NumModes())
	clocks := make([]*clock.TimeGrid, sys.NumModes())
	modeInputs := make([]int, sys.NumModes())
	for k := 1; k <= sys.NumModes(); k++ {
		m := sys.Mode(k)
		a, err := abstract(m)
		if err != nil {
			return nil, &BuildError{Mode: k, Wrapped: err}
		}
		abs[k-1] = a
		clocks[k-1] = clock.New(m.Horizon, m.Disc.Dt)
		modeInputs[k-1] = a.NumInputs()
	}

	switches := make([][2]int, len(sys.Transitions))
	for i, tr := range sys.Transitions {
		switches[i] = [2]int{tr.Source, tr.Target}
	}
	inputs := mux.New(modeInputs, switches)

	triples := buildIntra(abs, clocks, inputs)
	sw, err := buildSwitching(sys, abs, clocks, inputs, opts.Boundary)
	if err != nil {
		return nil, err
	}
	triples = append(triples, sw...)

	return assemble(abs, clocks, inputs, triples), nil
}
