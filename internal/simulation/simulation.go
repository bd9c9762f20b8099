// Package simulation wires a model and a named solver together and runs
// the full time grid, the way the CLI and the live view consume the core.
package simulation

import (
	"fmt"
	"sort"
	"time"

	"github.com/lcsim/lcsim/internal/oscillator"
	"github.com/lcsim/lcsim/internal/solver"
)

// Config carries everything needed to run one simulation. All fields are
// required; there are no defaults at this layer.
type Config struct {
	Inductance     float64
	Capacitance    float64
	InitialCurrent float64
	InitialVoltage float64
	StepSize       float64
	Duration       float64
	Solver         string
}

// Result is the completed series. States holds the full stored-coordinate
// history; States[k+1] corresponds to Times[k], with States[0] being the
// seed entry. Elapsed is the wall-clock time Solve took.
type Result struct {
	States  []oscillator.State
	Times   []float64
	Elapsed time.Duration
}

// CurrentSeries returns the current column aligned with Times, skipping
// the seed entry.
func (r *Result) CurrentSeries() []float64 {
	return r.column(0)
}

// VoltageSeries returns the voltage column aligned with Times, skipping
// the seed entry.
func (r *Result) VoltageSeries() []float64 {
	return r.column(1)
}

func (r *Result) column(i int) []float64 {
	out := make([]float64, len(r.Times))
	for k := range r.Times {
		out[k] = r.States[k+1][i]
	}
	return out
}

var solvers = map[string]func(step, duration float64, m *oscillator.Model) (solver.Solver, error){
	"euler": func(step, duration float64, m *oscillator.Model) (solver.Solver, error) {
		return solver.NewForwardEuler(step, duration, m)
	},
	"backward_euler": func(step, duration float64, m *oscillator.Model) (solver.Solver, error) {
		return solver.NewBackwardEuler(step, duration, m)
	},
	"rk4": func(step, duration float64, m *oscillator.Model) (solver.Solver, error) {
		return solver.NewRK4(step, duration, m)
	},
}

// Solvers lists the registered solver names, sorted.
func Solvers() []string {
	names := make([]string, 0, len(solvers))
	for name := range solvers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Simulation owns the model; the solver holds a non-owning handle to it
// and mutates the history only through Append.
type Simulation struct {
	cfg    Config
	model  *oscillator.Model
	solver solver.Solver
}

func New(cfg Config) (*Simulation, error) {
	build, ok := solvers[cfg.Solver]
	if !ok {
		return nil, fmt.Errorf("unknown solver: %s (have %v)", cfg.Solver, Solvers())
	}

	m, err := oscillator.New(cfg.Inductance, cfg.Capacitance, cfg.InitialCurrent, cfg.InitialVoltage)
	if err != nil {
		return nil, err
	}

	sv, err := build(cfg.StepSize, cfg.Duration, m)
	if err != nil {
		return nil, err
	}

	return &Simulation{cfg: cfg, model: m, solver: sv}, nil
}

// Model exposes the underlying model, read-only by convention.
func (s *Simulation) Model() *oscillator.Model {
	return s.model
}

// Run integrates the full grid once and packages the history.
func (s *Simulation) Run() (*Result, error) {
	elapsed, err := s.solver.Solve()
	if err != nil {
		return nil, err
	}

	return &Result{
		States:  s.model.History(),
		Times:   s.solver.Grid(),
		Elapsed: elapsed,
	}, nil
}
