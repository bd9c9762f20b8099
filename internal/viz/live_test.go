package viz

import (
	"testing"

	"github.com/lcsim/lcsim/internal/simulation"
)

func testConfig() simulation.Config {
	return simulation.Config{
		Inductance:     1,
		Capacitance:    1,
		InitialVoltage: 1,
		StepSize:       0.01,
		Duration:       1.0,
		Solver:         "rk4",
	}
}

func TestNewModelRunsSimulation(t *testing.T) {
	m, err := NewModel(testConfig())
	if err != nil {
		t.Fatalf("new model: %v", err)
	}

	if len(m.times) != 100 {
		t.Errorf("expected 100 samples, got %d", len(m.times))
	}
	if len(m.current) != len(m.times) || len(m.voltage) != len(m.times) {
		t.Error("series lengths differ from time grid")
	}
	if m.View() == "" {
		t.Error("empty view")
	}
}

func TestNewModelBadConfig(t *testing.T) {
	cfg := testConfig()
	cfg.Solver = "unknown"

	if _, err := NewModel(cfg); err == nil {
		t.Error("expected error for unknown solver")
	}
}

func TestScrubStaysInBounds(t *testing.T) {
	m, err := NewModel(testConfig())
	if err != nil {
		t.Fatalf("new model: %v", err)
	}

	for i := 0; i < 5; i++ {
		m.scrub(-1)
	}
	if m.playHead < 1 {
		t.Errorf("playhead below first sample: %d", m.playHead)
	}

	for i := 0; i < 500; i++ {
		m.scrub(1)
	}
	if m.playHead > len(m.times) {
		t.Errorf("playhead past last sample: %d", m.playHead)
	}
	if m.running {
		t.Error("scrubbing should pause playback")
	}
}
