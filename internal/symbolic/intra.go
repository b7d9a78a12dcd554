package symbolic

import (
	"github.com/san-kum/hysym/internal/clock"
	"github.com/san-kum/hysym/internal/mux"
)

// buildIntra lifts every mode's spatial transitions into the product with
// its clock advance. Spatial transitions are independent of the clock
// index; the clock moves forward by exactly one index per step, so the
// terminal index has no outgoing intra-mode transitions.
func buildIntra(abs []Abstraction, clocks []*clock.TimeGrid, inputs *mux.InputMap) []Triple {
	var out []Triple
	for i, a := range abs {
		k := i + 1
		steps := clocks[i].Len()
		for _, tr := range a.Transitions() {
			g := inputs.ContinuousID(k, tr.Input)
			if steps == 1 {
				out = append(out, Triple{
					Target: AugState{Q: tr.Target, T: 1, K: k},
					Source: AugState{Q: tr.Source, T: 1, K: k},
					Input:  g,
				})
				continue
			}
			for t := 1; t < steps; t++ {
				out = append(out, Triple{
					Target: AugState{Q: tr.Target, T: t + 1, K: k},
					Source: AugState{Q: tr.Source, T: t, K: k},
					Input:  g,
				})
			}
		}
	}
	return out
}
