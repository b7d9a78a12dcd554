package symbolic

import (
	"math"

	"github.com/san-kum/hysym/internal/clock"
	"github.com/san-kum/hysym/internal/dynamo"
	"github.com/san-kum/hysym/internal/hybrid"
	"github.com/san-kum/hysym/internal/mux"
)

// BoundaryPolicy decides what happens to reset images that the target
// grid does not resolve. Cells are half-open, so an image on an interior
// cell boundary already lands in the upper cell; an image exactly on the
// upper domain boundary resolves to no cell.
type BoundaryPolicy int

const (
	// Drop discards unresolved images silently; reset maps are expected to
	// send guard interiors into cell interiors.
	Drop BoundaryPolicy = iota
	// Snap retries an unresolved image after nudging each coordinate one
	// ulp toward zero, which moves an image on a positive upper domain
	// boundary into the last cell.
	Snap
)

// buildSwitching enumerates every hybrid transition's guard at the
// symbolic level, applies its reset map at the concrete level and
// re-abstracts the image in the target mode. Images outside the target
// grid or clock are dropped silently via the sentinel-0 protocol.
func buildSwitching(sys *hybrid.System, abs []Abstraction, clocks []*clock.TimeGrid, inputs *mux.InputMap, policy BoundaryPolicy) ([]Triple, error) {
	var out []Triple
	for i, tr := range sys.Transitions {
		id := i + 1
		src := abs[tr.Source-1]
		tgt := abs[tr.Target-1]
		srcClock := clocks[tr.Source-1]
		tgtClock := clocks[tr.Target-1]
		spatialDim := sys.Mode(tr.Source).Dynamics.StateDim()

		if !tr.Guard.Valid() || tr.Guard.Dim() != spatialDim+1 {
			return nil, &BuildError{Transition: id, Wrapped: ErrUnsupportedGuardShape}
		}

		spatial := tr.Guard.Spatial()
		tlo, thi := tr.Guard.Temporal()

		g := inputs.SwitchingID(id)
		for _, q := range src.StatesWithin(spatial) {
			for _, ti := range srcClock.IndicesIn(tlo, thi) {
				xi := append(src.Concrete(q), srcClock.At(ti))
				img := tr.Reset(xi)
				if len(img) == 0 || !img.IsValid() {
					continue
				}
				xp := img[:len(img)-1]
				tau := img[len(img)-1]

				qp := tgt.Abstract(xp)
				if qp == 0 && policy == Snap {
					qp = snapAbstract(tgt, xp)
				}
				tp := tgtClock.IndexOf(tau)
				if qp == 0 || tp == 0 {
					continue
				}
				out = append(out, Triple{
					Target: AugState{Q: qp, T: tp, K: tr.Target},
					Source: AugState{Q: q, T: ti, K: tr.Source},
					Input:  g,
				})
			}
		}
	}
	return out, nil
}

// snapAbstract retries an unresolved image after nudging each coordinate
// one ulp toward zero, resolving exact boundary hits.
func snapAbstract(a Abstraction, x dynamo.State) int {
	nudged := x.Clone()
	for i, v := range nudged {
		nudged[i] = math.Nextafter(v, 0)
	}
	return a.Abstract(nudged)
}
