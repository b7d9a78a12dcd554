package symbolic

import (
	"fmt"

	"github.com/san-kum/hysym/internal/dynamo"
	"github.com/san-kum/hysym/internal/grid"
	"github.com/san-kum/hysym/internal/reach"
)

// AugState is the packed augmented state: spatial symbol, 1-based time
// index, 1-based mode id.
type AugState struct {
	Q int
	T int
	K int
}

func (a AugState) String() string {
	return fmt.Sprintf("(%d,%d,%d)", a.Q, a.T, a.K)
}

// Triple is the atomic transition unit assembled before automaton
// compaction: (target, source, global input).
type Triple struct {
	Target AugState
	Source AugState
	Input  int
}

// Abstraction is the per-mode symbolic dynamics contract the builder
// consumes. reach.SymDyn is the growth-bound implementation; anything
// honoring the sentinel-0 protocol of Abstract and AbstractInput can
// stand in.
type Abstraction interface {
	NumStates() int
	NumInputs() int
	Transitions() []reach.Transition
	Concrete(q int) dynamo.State
	Abstract(x dynamo.State) int
	StatesWithin(b grid.Box) []int
	ConcreteInput(u int) dynamo.Control
	AbstractInput(u dynamo.Control) int
}
