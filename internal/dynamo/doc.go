// Package dynamo provides the core primitives shared by the abstraction
// pipeline:
//
//   - [State]: vector over a mode's continuous state space
//   - [Control]: vector over a mode's input space
//   - [System]: interface for per-mode ODE dynamics (dX/dt = f(X, u, t))
//   - [Integrator]: fixed-step numerical integrator interface
//
// # Thread Safety
//
// All types are plain values. A System implementation must be safe for
// repeated Derive calls; the abstraction builder calls it sequentially.
package dynamo
