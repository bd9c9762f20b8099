package solver

import (
	"fmt"
	"math"
	"time"

	"github.com/lcsim/lcsim/internal/oscillator"
)

// Solver advances a model across a fixed time grid. Solve appends exactly
// one history entry per grid point and returns the wall-clock time the
// traversal took. Calling Solve a second time appends a second full run
// on top of the existing history; callers run it once per model.
type Solver interface {
	Solve() (time.Duration, error)
	Grid() []float64
}

// Grid returns floor(duration/step) time points 0, step, 2*step, ...
// strictly below duration.
func Grid(step, duration float64) []float64 {
	n := int(math.Floor(duration / step))
	grid := make([]float64, n)
	for i := range grid {
		grid[i] = float64(i) * step
	}
	return grid
}

func validate(step, duration float64) error {
	if step <= 0 {
		return fmt.Errorf("%w: step size %g", oscillator.ErrInvalidParameter, step)
	}
	if duration <= 0 {
		return fmt.Errorf("%w: duration %g", oscillator.ErrInvalidParameter, duration)
	}
	return nil
}
