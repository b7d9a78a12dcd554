package reach

import (
	"github.com/san-kum/hysym/internal/dynamo"
	"github.com/san-kum/hysym/internal/grid"
)

// Transition is one element of a mode's finite transition relation. All
// three components are 1-based symbols.
type Transition struct {
	Target int
	Source int
	Input  int
}

// SymDyn is a mode's symbolic dynamics: a finite state/input transition
// relation together with the quantizers that give its symbols meaning.
// It is immutable after construction.
type SymDyn struct {
	states *grid.Quantizer
	inputs *grid.Quantizer
	trans  []Transition
}

func NewSymDyn(states, inputs *grid.Quantizer, trans []Transition) *SymDyn {
	return &SymDyn{states: states, inputs: inputs, trans: trans}
}

func (d *SymDyn) NumStates() int { return d.states.NumCells() }
func (d *SymDyn) NumInputs() int { return d.inputs.NumCells() }

// Transitions returns the relation in its stored enumeration order.
func (d *SymDyn) Transitions() []Transition { return d.trans }

func (d *SymDyn) Concrete(q int) dynamo.State { return d.states.Concrete(q) }
func (d *SymDyn) Abstract(x dynamo.State) int { return d.states.Abstract(x) }

// StatesWithin enumerates the symbols whose cells are contained in b.
func (d *SymDyn) StatesWithin(b grid.Box) []int { return d.states.CellsWithin(b) }

func (d *SymDyn) ConcreteInput(u int) dynamo.Control {
	return dynamo.Control(d.inputs.Concrete(u))
}

func (d *SymDyn) AbstractInput(u dynamo.Control) int {
	return d.inputs.Abstract(dynamo.State(u))
}

func (d *SymDyn) StateQuantizer() *grid.Quantizer { return d.states }
func (d *SymDyn) InputQuantizer() *grid.Quantizer { return d.inputs }
