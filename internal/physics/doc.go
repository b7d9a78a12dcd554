// Package physics provides benchmark timed hybrid automata for the
// abstraction builder.
//
// Each mode's dynamics implements the [dynamo.System] interface; the
// hybrid wiring (guards, reset maps, clock horizons) is assembled into a
// [hybrid.System]:
//
//   - [NewThermostat]: two-mode heating/cooling relay with dwell-time clock
//   - [NewDCDC]: two-mode boost converter with periodic switching
//
// Systems are registered by name for lookup from configuration files.
package physics
