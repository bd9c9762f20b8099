package oscillator

import (
	"fmt"
	"math"
)

// State is a two-component state vector. In stored coordinates index 0 is
// the circuit current and index 1 is the capacitor voltage (-L times the
// current derivative).
type State [2]float64

// Norm returns the Euclidean norm of the vector.
func (s State) Norm() float64 {
	return math.Hypot(s[0], s[1])
}

// IsValid reports whether both components are finite.
func (s State) IsValid() bool {
	for _, v := range s {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

// Model holds the LC circuit parameters and the append-only state history.
type Model struct {
	Inductance  float64
	Capacitance float64

	history []State
}

// New builds a model seeded with one history entry. The seed entry keeps
// the raw (initialCurrent, initialVoltage) pair: the stored-coordinate
// scaling applies only to integrator output appended later.
func New(inductance, capacitance, initialCurrent, initialVoltage float64) (*Model, error) {
	if inductance <= 0 || capacitance <= 0 {
		return nil, fmt.Errorf("%w: inductance=%g H, capacitance=%g F", ErrInvalidParameter, inductance, capacitance)
	}
	return &Model{
		Inductance:  inductance,
		Capacitance: capacitance,
		history:     []State{{initialCurrent, initialVoltage}},
	}, nil
}

// Append stores a natural-coordinate state as (y0, -L*y1). Values are not
// checked: NaN or Inf produced by an unstable step is stored as-is.
func (m *Model) Append(natural State) {
	m.history = append(m.history, State{natural[0], -m.Inductance * natural[1]})
}

// Last returns the most recent history entry in stored coordinates.
func (m *Model) Last() State {
	return m.history[len(m.history)-1]
}

// LastNatural returns the most recent entry as (y0, -y1/L), the view the
// solvers integrate.
func (m *Model) LastNatural() (State, error) {
	if m.Inductance*m.Capacitance == 0 {
		return State{}, ErrDivisionByZero
	}
	s := m.Last()
	return State{s[0], -s[1] / m.Inductance}, nil
}

// DerivativeTerm returns -y0/(L*C) for the latest natural state, the
// right-hand side of the second governing equation.
func (m *Model) DerivativeTerm() (float64, error) {
	if m.Inductance*m.Capacitance == 0 {
		return 0, ErrDivisionByZero
	}
	s, err := m.LastNatural()
	if err != nil {
		return 0, err
	}
	return -s[0] / (m.Inductance * m.Capacitance), nil
}

// Len returns the number of history entries.
func (m *Model) Len() int {
	return len(m.history)
}

// At returns the history entry at index i in stored coordinates.
func (m *Model) At(i int) State {
	return m.history[i]
}

// History returns a copy of the full stored-coordinate history.
func (m *Model) History() []State {
	h := make([]State, len(m.history))
	copy(h, m.history)
	return h
}
