package storage

import (
	"math"
	"testing"
	"time"

	"github.com/lcsim/lcsim/internal/simulation"
)

func testRun(t *testing.T) (simulation.Config, *simulation.Result) {
	t.Helper()
	cfg := simulation.Config{
		Inductance:     1,
		Capacitance:    1,
		InitialVoltage: 1,
		StepSize:       0.1,
		Duration:       1.0,
		Solver:         "rk4",
	}
	sim, err := simulation.New(cfg)
	if err != nil {
		t.Fatalf("new simulation: %v", err)
	}
	result, err := sim.Run()
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	return cfg, result
}

func TestSaveLoadRoundTrip(t *testing.T) {
	st := New(t.TempDir())
	if err := st.Init(); err != nil {
		t.Fatalf("init: %v", err)
	}

	cfg, result := testRun(t)
	runID, err := st.Save(cfg, result)
	if err != nil {
		t.Fatalf("save: %v", err)
	}

	meta, err := st.Load(runID)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if meta.Solver != "rk4" || meta.Steps != 10 {
		t.Errorf("metadata mismatch: %+v", meta)
	}
	if meta.Elapsed != result.Elapsed {
		t.Errorf("elapsed mismatch: %v vs %v", meta.Elapsed, result.Elapsed)
	}

	times, current, voltage, err := st.LoadStates(runID)
	if err != nil {
		t.Fatalf("load states: %v", err)
	}
	if len(times) != 10 || len(current) != 10 || len(voltage) != 10 {
		t.Fatalf("series lengths %d/%d/%d, want 10", len(times), len(current), len(voltage))
	}

	wantCurrent := result.CurrentSeries()
	wantVoltage := result.VoltageSeries()
	for k := range times {
		if math.Abs(times[k]-result.Times[k]) > 1e-15 {
			t.Fatalf("time[%d] = %g, want %g", k, times[k], result.Times[k])
		}
		if math.Abs(current[k]-wantCurrent[k]) > 1e-15 {
			t.Fatalf("current[%d] = %g, want %g", k, current[k], wantCurrent[k])
		}
		if math.Abs(voltage[k]-wantVoltage[k]) > 1e-15 {
			t.Fatalf("voltage[%d] = %g, want %g", k, voltage[k], wantVoltage[k])
		}
	}
}

func TestList(t *testing.T) {
	st := New(t.TempDir())
	if err := st.Init(); err != nil {
		t.Fatalf("init: %v", err)
	}

	runs, err := st.List()
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(runs) != 0 {
		t.Errorf("expected no runs, got %d", len(runs))
	}

	cfg, result := testRun(t)
	if _, err := st.Save(cfg, result); err != nil {
		t.Fatalf("save: %v", err)
	}
	// run IDs embed a unix timestamp
	time.Sleep(1100 * time.Millisecond)
	if _, err := st.Save(cfg, result); err != nil {
		t.Fatalf("save: %v", err)
	}

	runs, err = st.List()
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(runs) != 2 {
		t.Errorf("expected 2 runs, got %d", len(runs))
	}
}

func TestListMissingDir(t *testing.T) {
	st := New("/nonexistent/lcsim-test")
	runs, err := st.List()
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(runs) != 0 {
		t.Errorf("expected empty list, got %d", len(runs))
	}
}

func TestLoadUnknownRun(t *testing.T) {
	st := New(t.TempDir())
	if _, err := st.Load("rk4_0"); err == nil {
		t.Error("expected error for unknown run")
	}
}
