// Package mux numbers the global input alphabet of the assembled
// automaton: one contiguous block of ids per mode's continuous inputs, in
// ascending mode order, followed by one id per switching transition in
// declaration order. Both maps are total bijections on their ranges;
// classification is an O(1) range check.
package mux

import "fmt"

// Kind tags the classification of a global input id.
type Kind int

const (
	Invalid Kind = iota
	Continuous
	Switching
)

// Class is the classification result of a global input id.
type Class struct {
	Kind       Kind
	Mode       int // continuous: owning mode
	Local      int // continuous: mode-local input symbol
	Transition int // switching: 1-based hybrid transition id
}

// InputMap owns the global input numbering. Immutable after New.
type InputMap struct {
	offsets []int // per mode, ids (offset+1 .. offset+counts[k])
	counts  []int
	nCont   int
	nSwitch int
	labels  []string
}

// New allocates the global id space. modeInputs holds each mode's local
// input cardinality in ascending mode order; switches holds each hybrid
// transition's (source, target) pair in declaration order.
func New(modeInputs []int, switches [][2]int) *InputMap {
	m := &InputMap{
		offsets: make([]int, len(modeInputs)),
		counts:  append([]int(nil), modeInputs...),
		labels:  make([]string, len(switches)),
	}
	off := 0
	for k, n := range modeInputs {
		m.offsets[k] = off
		off += n
	}
	m.nCont = off
	m.nSwitch = len(switches)
	for i, sw := range switches {
		m.labels[i] = fmt.Sprintf("SWITCH %d -> %d", sw[0], sw[1])
	}
	return m
}

func (m *InputMap) Total() int         { return m.nCont + m.nSwitch }
func (m *InputMap) NumContinuous() int { return m.nCont }
func (m *InputMap) NumSwitching() int  { return m.nSwitch }

// ContinuousID maps (mode, local input) to its global id, or 0 when no
// such pair exists.
func (m *InputMap) ContinuousID(mode, local int) int {
	if mode < 1 || mode > len(m.counts) {
		return 0
	}
	if local < 1 || local > m.counts[mode-1] {
		return 0
	}
	return m.offsets[mode-1] + local
}

// SwitchingID maps a 1-based hybrid transition id to its global id, or 0
// when no such transition exists.
func (m *InputMap) SwitchingID(transition int) int {
	if transition < 1 || transition > m.nSwitch {
		return 0
	}
	return m.nCont + transition
}

// Classify decides which range g falls in and inverts the map.
func (m *InputMap) Classify(g int) Class {
	switch {
	case g >= 1 && g <= m.nCont:
		for k := len(m.offsets) - 1; k >= 0; k-- {
			if g > m.offsets[k] {
				return Class{Kind: Continuous, Mode: k + 1, Local: g - m.offsets[k]}
			}
		}
		return Class{Kind: Invalid}
	case g > m.nCont && g <= m.nCont+m.nSwitch:
		return Class{Kind: Switching, Transition: g - m.nCont}
	default:
		return Class{Kind: Invalid}
	}
}

func (m *InputMap) IsContinuous(g int) bool { return g >= 1 && g <= m.nCont }

func (m *InputMap) IsSwitching(g int) bool {
	return g > m.nCont && g <= m.nCont+m.nSwitch
}

// Label returns the human-readable label of a switching id, or "" for
// anything else.
func (m *InputMap) Label(g int) string {
	if !m.IsSwitching(g) {
		return ""
	}
	return m.labels[g-m.nCont-1]
}
