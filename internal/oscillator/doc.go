// Package oscillator models an LC circuit as a two-state linear system.
//
// A [Model] holds the physical parameters and an append-only history of
// [State] vectors. States live in two coordinate systems:
//
//   - stored coordinates (y0, y1) = (i, -L*i'), what the history keeps
//   - natural coordinates (y0, -y1/L), what the solvers integrate
//
// The governing system in natural coordinates is
//
//	y0' = y1
//	y1' = -y0 / (L*C)
//
// The history grows by exactly one entry per integration step and is
// never mutated in place. A single solver drives a single model per run;
// nothing here is safe for concurrent use.
package oscillator
