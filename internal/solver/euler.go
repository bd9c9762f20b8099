package solver

import (
	"time"

	"github.com/lcsim/lcsim/internal/oscillator"
)

// ForwardEuler is the fully explicit first-order scheme. Both components
// advance from old values only. Stable only for step sizes small relative
// to sqrt(L*C); beyond that the amplitude grows without bound.
type ForwardEuler struct {
	step     float64
	duration float64
	model    *oscillator.Model
	grid     []float64
}

func NewForwardEuler(step, duration float64, m *oscillator.Model) (*ForwardEuler, error) {
	if err := validate(step, duration); err != nil {
		return nil, err
	}
	return &ForwardEuler{
		step:     step,
		duration: duration,
		model:    m,
		grid:     Grid(step, duration),
	}, nil
}

func (s *ForwardEuler) Grid() []float64 { return s.grid }

func (s *ForwardEuler) Solve() (time.Duration, error) {
	start := time.Now()

	for range s.grid {
		last, err := s.model.LastNatural()
		if err != nil {
			return 0, err
		}
		f, err := s.model.DerivativeTerm()
		if err != nil {
			return 0, err
		}

		s.model.Append(oscillator.State{
			last[0] + last[1]*s.step,
			last[1] + f*s.step,
		})
	}

	return time.Since(start), nil
}
