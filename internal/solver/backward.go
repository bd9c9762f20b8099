package solver

import (
	"time"

	"github.com/lcsim/lcsim/internal/oscillator"
)

// BackwardEuler is the implicit first-order scheme. The system is linear,
// so the implicit update has a closed form and no iteration is needed:
//
//	y1_new = a*y1 - b*y0   with a = 1/(1 + dt^2/(L*C)), b = dt/(L*C)
//	y0_new = y0 + y1_new*dt
//
// The new y1 feeds the y0 update within the same step. That partial
// coupling is what gives the scheme its damping character; it is not a
// fully implicit solve.
type BackwardEuler struct {
	step     float64
	duration float64
	model    *oscillator.Model
	grid     []float64
}

func NewBackwardEuler(step, duration float64, m *oscillator.Model) (*BackwardEuler, error) {
	if err := validate(step, duration); err != nil {
		return nil, err
	}
	return &BackwardEuler{
		step:     step,
		duration: duration,
		model:    m,
		grid:     Grid(step, duration),
	}, nil
}

func (s *BackwardEuler) Grid() []float64 { return s.grid }

func (s *BackwardEuler) Solve() (time.Duration, error) {
	lc := s.model.Inductance * s.model.Capacitance
	if lc == 0 {
		return 0, oscillator.ErrDivisionByZero
	}

	start := time.Now()

	a := 1 / (1 + s.step*s.step/lc)
	b := s.step / lc

	for range s.grid {
		last, err := s.model.LastNatural()
		if err != nil {
			return 0, err
		}

		y1 := a*last[1] - b*last[0]
		y0 := last[0] + y1*s.step

		s.model.Append(oscillator.State{y0, y1})
	}

	return time.Since(start), nil
}
