package symbolic

import (
	"fmt"
	"sort"

	"github.com/san-kum/hysym/internal/clock"
	"github.com/san-kum/hysym/internal/dynamo"
	"github.com/san-kum/hysym/internal/grid"
	"github.com/san-kum/hysym/internal/mux"
)

type edgeKey struct {
	Source int
	Input  int
}

// Model is the assembled temporal-hybrid symbolic model: a finite labeled
// transition system over dense augmented-state integers and the global
// input alphabet. Immutable after Build; accessors are safe for
// concurrent use.
type Model struct {
	abs    []Abstraction
	clocks []*clock.TimeGrid
	inputs *mux.InputMap

	int2aug []AugState // index 0 unused
	aug2int map[AugState]int
	edges   map[edgeKey][]int
	nTrans  int
}

// assemble interns every augmented state appearing in the triple list, in
// first-appearance order (target before source within a triple), and
// indexes the transition relation by (source, input).
func assemble(abs []Abstraction, clocks []*clock.TimeGrid, inputs *mux.InputMap, triples []Triple) *Model {
	m := &Model{
		abs:     abs,
		clocks:  clocks,
		inputs:  inputs,
		int2aug: make([]AugState, 1, len(triples)+1),
		aug2int: make(map[AugState]int, len(triples)),
		edges:   make(map[edgeKey][]int, len(triples)),
		nTrans:  len(triples),
	}
	intern := func(a AugState) int {
		if id, ok := m.aug2int[a]; ok {
			return id
		}
		id := len(m.int2aug)
		m.int2aug = append(m.int2aug, a)
		m.aug2int[a] = id
		return id
	}
	for _, tr := range triples {
		tgt := intern(tr.Target)
		src := intern(tr.Source)
		key := edgeKey{Source: src, Input: tr.Input}
		m.edges[key] = append(m.edges[key], tgt)
	}
	return m
}

func (m *Model) NumStates() int { return len(m.int2aug) - 1 }

// NumInputs is the size of the full global input alphabet, continuous and
// switching ranges combined, independent of which ids the relation
// exercises.
func (m *Model) NumInputs() int { return m.inputs.Total() }

func (m *Model) NumModes() int { return len(m.abs) }

func (m *Model) TransitionCount() int { return m.nTrans }

// EnumStates returns 1..NumStates.
func (m *Model) EnumStates() []int {
	out := make([]int, m.NumStates())
	for i := range out {
		out[i] = i + 1
	}
	return out
}

// EnumInputs returns the local input symbols of mode k.
func (m *Model) EnumInputs(k int) []int {
	if k < 1 || k > len(m.abs) {
		return nil
	}
	out := make([]int, m.abs[k-1].NumInputs())
	for i := range out {
		out[i] = i + 1
	}
	return out
}

// Augmented returns the packed triple behind integer state s.
func (m *Model) Augmented(s int) (AugState, error) {
	if s < 1 || s >= len(m.int2aug) {
		return AugState{}, fmt.Errorf("state %d: %w", s, ErrUnknownAugmentedState)
	}
	return m.int2aug[s], nil
}

// ConcreteState unpacks integer state s into the cell center, the clock
// value and the mode id.
func (m *Model) ConcreteState(s int) (dynamo.State, float64, int, error) {
	a, err := m.Augmented(s)
	if err != nil {
		return nil, 0, 0, err
	}
	x := m.abs[a.K-1].Concrete(a.Q)
	tau := m.clocks[a.K-1].At(a.T)
	return x, tau, a.K, nil
}

// AbstractState composes the mode's spatial quantizer with the clock
// floor and the dense numbering. It fails when the resulting augmented
// state is absent from the model.
func (m *Model) AbstractState(x dynamo.State, tau float64, k int) (int, error) {
	if k < 1 || k > len(m.abs) {
		return 0, fmt.Errorf("mode %d: %w", k, ErrUnknownAugmentedState)
	}
	q := m.abs[k-1].Abstract(x)
	t := m.clocks[k-1].Floor(tau)
	if q == 0 || t == 0 {
		return 0, fmt.Errorf("no cell for (%v, %g) in mode %d: %w", x, tau, k, ErrUnknownAugmentedState)
	}
	a := AugState{Q: q, T: t, K: k}
	id, ok := m.aug2int[a]
	if !ok {
		return 0, fmt.Errorf("%v: %w", a, ErrUnknownAugmentedState)
	}
	return id, nil
}

// StatesInSet enumerates the model states whose cell is contained in the
// mode's spatial box and whose clock value lies in the mode's time
// interval, for every requested mode. Tuples absent from the model are
// skipped.
func (m *Model) StatesInSet(spatial map[int]grid.Box, times map[int][2]float64, modes []int) []int {
	var out []int
	for _, k := range modes {
		if k < 1 || k > len(m.abs) {
			continue
		}
		box, ok := spatial[k]
		if !ok {
			continue
		}
		iv, ok := times[k]
		if !ok {
			continue
		}
		tlo := m.clocks[k-1].Ceil(iv[0])
		thi := m.clocks[k-1].Floor(iv[1])
		if tlo == 0 || thi == 0 {
			continue
		}
		for _, q := range m.abs[k-1].StatesWithin(box) {
			for t := tlo; t <= thi; t++ {
				if id, ok := m.aug2int[AugState{Q: q, T: t, K: k}]; ok {
					out = append(out, id)
				}
			}
		}
	}
	return out
}

// ConcreteInput resolves a continuous global id against mode k. Switching
// ids have no concrete input and return nil without error; ids outside
// both ranges, or continuous ids of another mode, fail.
func (m *Model) ConcreteInput(g, k int) (dynamo.Control, error) {
	c := m.inputs.Classify(g)
	switch c.Kind {
	case mux.Switching:
		return nil, nil
	case mux.Continuous:
		if c.Mode != k {
			return nil, fmt.Errorf("input %d belongs to mode %d, not %d: %w", g, c.Mode, k, ErrInvalidInputID)
		}
		return m.abs[k-1].ConcreteInput(c.Local), nil
	default:
		return nil, fmt.Errorf("input %d: %w", g, ErrInvalidInputID)
	}
}

// AbstractInput maps a concrete input of mode k to its continuous global
// id, 0 when u is not representable on the mode's input grid.
func (m *Model) AbstractInput(u dynamo.Control, k int) int {
	if k < 1 || k > len(m.abs) {
		return 0
	}
	local := m.abs[k-1].AbstractInput(u)
	if local == 0 {
		return 0
	}
	return m.inputs.ContinuousID(k, local)
}

// Targets returns the successor states of s under global input g, in
// insertion order. Nil when the pair has no transitions.
func (m *Model) Targets(s, g int) []int {
	return m.edges[edgeKey{Source: s, Input: g}]
}

// Edges visits the indexed relation in deterministic (source, input)
// order.
func (m *Model) Edges(fn func(source, input, target int)) {
	keys := make([]edgeKey, 0, len(m.edges))
	for k := range m.edges {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		if keys[i].Source != keys[j].Source {
			return keys[i].Source < keys[j].Source
		}
		return keys[i].Input < keys[j].Input
	})
	for _, k := range keys {
		for _, tgt := range m.edges[k] {
			fn(k.Source, k.Input, tgt)
		}
	}
}

// Inputs exposes the global input map.
func (m *Model) Inputs() *mux.InputMap { return m.inputs }

// Clock exposes mode k's time grid.
func (m *Model) Clock(k int) *clock.TimeGrid { return m.clocks[k-1] }

// Mode exposes mode k's symbolic dynamics.
func (m *Model) Mode(k int) Abstraction { return m.abs[k-1] }

// ProfileByTime counts transitions by source time index for mode k,
// feeding the transition profile plot.
func (m *Model) ProfileByTime(k int) []int {
	if k < 1 || k > len(m.abs) {
		return nil
	}
	out := make([]int, m.clocks[k-1].Len())
	for key, tgts := range m.edges {
		a := m.int2aug[key.Source]
		if a.K == k {
			out[a.T-1] += len(tgts)
		}
	}
	return out
}
