// Package solver provides three interchangeable integration schemes for
// the LC oscillator model:
//
//   - [ForwardEuler]: fully explicit first order
//   - [BackwardEuler]: implicit first order, solved in closed form
//   - [RK4]: classical 4th order, applied per coordinate
//
// All three satisfy [Solver]: they are built with a step size, a total
// duration and a model handle, precompute the time grid once, and on
// Solve append one history entry per grid point. The only mutating call
// a solver makes on the model is Append.
//
// None of the schemes validates step-size stability. An unstable step
// size produces growing amplitudes or non-finite values, which are stored
// as-is; that is the caller's trade-off to make.
package solver
