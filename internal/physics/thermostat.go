package physics

import (
	"github.com/san-kum/hysym/internal/dynamo"
	"github.com/san-kum/hysym/internal/grid"
	"github.com/san-kum/hysym/internal/hybrid"
)

// Heater is the 1-dimensional room temperature dynamics
// dT/dt = -a*(T - Tamb) + p*u, with u the heater power input.
type Heater struct {
	Loss    float64
	Ambient float64
	Power   float64
}

func (h *Heater) StateDim() int { return 1 }
func (h *Heater) InputDim() int { return 1 }

func (h *Heater) Derive(x dynamo.State, u dynamo.Control, t float64) dynamo.State {
	p := 0.0
	if len(u) > 0 {
		p = u[0]
	}
	return dynamo.State{-h.Loss*(x[0]-h.Ambient) + h.Power*p}
}

// NewThermostat builds the two-mode relay benchmark: mode 1 heats, mode 2
// cools passively. Switching is allowed once the temperature crosses the
// setpoint band and the mode has dwelled at least one clock step; resets
// keep the temperature and restart the clock.
func NewThermostat() *hybrid.System {
	heat := &Heater{Loss: 0.3, Ambient: 10, Power: 8}
	cool := &Heater{Loss: 0.3, Ambient: 10, Power: 0}

	bounds := grid.NewBox([]float64{15}, []float64{25})
	heatInputs := grid.NewBox([]float64{0.5}, []float64{1.0})
	coolInputs := grid.NewBox([]float64{0}, []float64{0.5})

	disc := hybrid.Disc{DX: []float64{0.5}, DU: []float64{0.25}, Dt: 0.25}

	return &hybrid.System{
		Name: "thermostat",
		Modes: []hybrid.Mode{
			{
				Name:        "heating",
				Dynamics:    heat,
				StateBounds: bounds,
				InputBounds: heatInputs,
				Horizon:     2.0,
				Disc:        disc,
				Growth:      [][]float64{{0.3}},
			},
			{
				Name:        "cooling",
				Dynamics:    cool,
				StateBounds: bounds,
				InputBounds: coolInputs,
				Horizon:     2.0,
				Disc:        disc,
				Growth:      [][]float64{{0.3}},
			},
		},
		Transitions: []hybrid.Transition{
			{
				Source: 1,
				Target: 2,
				Guard:  grid.NewBox([]float64{21, 0.25}, []float64{25, 2.0}),
				Reset:  hybrid.IdentityReset,
			},
			{
				Source: 2,
				Target: 1,
				Guard:  grid.NewBox([]float64{15, 0.25}, []float64{19, 2.0}),
				Reset:  hybrid.IdentityReset,
			},
		},
	}
}
