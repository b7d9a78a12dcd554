package physics

import (
	"github.com/san-kum/hysym/internal/dynamo"
	"github.com/san-kum/hysym/internal/grid"
	"github.com/san-kum/hysym/internal/hybrid"
)

// Linear is an autonomous linear system dx/dt = A*x + b, used for the
// per-topology dynamics of switched circuits.
type Linear struct {
	A [][]float64
	B []float64
}

func (l *Linear) StateDim() int { return len(l.A) }
func (l *Linear) InputDim() int { return 0 }

func (l *Linear) Derive(x dynamo.State, _ dynamo.Control, _ float64) dynamo.State {
	dx := make(dynamo.State, len(l.A))
	for i := range l.A {
		for j := range l.A[i] {
			dx[i] += l.A[i][j] * x[j]
		}
		dx[i] += l.B[i]
	}
	return dx
}

// NewDCDC builds the boost converter benchmark: state (i_l, v_c), mode 1
// with the switch closed, mode 2 with the switch open. Both topologies
// are autonomous; switching is the only control, enabled over the whole
// operating box once the mode has dwelled a minimum period.
func NewDCDC() *hybrid.System {
	const (
		xl = 3.0
		xc = 70.0
		r0 = 1.0
		rl = 0.05
		rc = 0.005
		vs = 1.0
	)

	closed := &Linear{
		A: [][]float64{
			{-rl / xl, 0},
			{0, -1 / (xc * (r0 + rc))},
		},
		B: []float64{vs / xl, 0},
	}
	open := &Linear{
		A: [][]float64{
			{-(rl + r0*rc/(r0+rc)) / xl, -r0 / (xl * (r0 + rc))},
			{r0 / (xc * (r0 + rc)), -1 / (xc * (r0 + rc))},
		},
		B: []float64{vs / xl, 0},
	}

	bounds := grid.NewBox([]float64{1.15, 5.45}, []float64{1.55, 5.85})
	disc := hybrid.Disc{DX: []float64{0.02, 0.02}, DU: nil, Dt: 0.5}
	growth := [][]float64{{0.02}}

	guard := grid.NewBox([]float64{1.15, 5.45, 0.5}, []float64{1.55, 5.85, 2.0})

	return &hybrid.System{
		Name: "dcdc",
		Modes: []hybrid.Mode{
			{
				Name:        "closed",
				Dynamics:    closed,
				StateBounds: bounds,
				Horizon:     2.0,
				Disc:        disc,
				Growth:      growth,
			},
			{
				Name:        "open",
				Dynamics:    open,
				StateBounds: bounds,
				Horizon:     2.0,
				Disc:        disc,
				Growth:      growth,
			},
		},
		Transitions: []hybrid.Transition{
			{Source: 1, Target: 2, Guard: guard, Reset: hybrid.IdentityReset},
			{Source: 2, Target: 1, Guard: guard, Reset: hybrid.IdentityReset},
		},
	}
}
