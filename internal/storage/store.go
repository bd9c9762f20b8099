// Package storage persists completed runs under a data directory, one
// directory per run: metadata.json plus the state series as states.csv.
package storage

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/lcsim/lcsim/internal/simulation"
)

type Store struct {
	baseDir string
}

func New(baseDir string) *Store {
	return &Store{baseDir: baseDir}
}

func (s *Store) Init() error {
	return os.MkdirAll(s.baseDir, 0755)
}

type RunMetadata struct {
	ID             string        `json:"id"`
	Timestamp      time.Time     `json:"timestamp"`
	Inductance     float64       `json:"inductance"`
	Capacitance    float64       `json:"capacitance"`
	InitialCurrent float64       `json:"initial_current"`
	InitialVoltage float64       `json:"initial_voltage"`
	StepSize       float64       `json:"step_size"`
	Duration       float64       `json:"duration"`
	Solver         string        `json:"solver"`
	Steps          int           `json:"steps"`
	Elapsed        time.Duration `json:"elapsed_ns"`
}

// Save writes one run. The CSV rows pair Times[k] with States[k+1]; the
// raw seed entry is recoverable from the metadata's initial values.
func (s *Store) Save(cfg simulation.Config, result *simulation.Result) (string, error) {
	runID := fmt.Sprintf("%s_%d", cfg.Solver, time.Now().Unix())
	runDir := filepath.Join(s.baseDir, runID)

	if err := os.MkdirAll(runDir, 0755); err != nil {
		return "", err
	}

	meta := RunMetadata{
		ID:             runID,
		Timestamp:      time.Now(),
		Inductance:     cfg.Inductance,
		Capacitance:    cfg.Capacitance,
		InitialCurrent: cfg.InitialCurrent,
		InitialVoltage: cfg.InitialVoltage,
		StepSize:       cfg.StepSize,
		Duration:       cfg.Duration,
		Solver:         cfg.Solver,
		Steps:          len(result.Times),
		Elapsed:        result.Elapsed,
	}

	metaFile, err := os.Create(filepath.Join(runDir, "metadata.json"))
	if err != nil {
		return "", err
	}
	defer metaFile.Close()

	enc := json.NewEncoder(metaFile)
	enc.SetIndent("", "  ")
	if err := enc.Encode(meta); err != nil {
		return "", err
	}

	csvFile, err := os.Create(filepath.Join(runDir, "states.csv"))
	if err != nil {
		return "", err
	}
	defer csvFile.Close()

	w := csv.NewWriter(csvFile)
	defer w.Flush()

	if err := w.Write([]string{"time", "current", "voltage"}); err != nil {
		return "", err
	}

	current := result.CurrentSeries()
	voltage := result.VoltageSeries()
	for k, tp := range result.Times {
		row := []string{
			strconv.FormatFloat(tp, 'g', -1, 64),
			strconv.FormatFloat(current[k], 'g', -1, 64),
			strconv.FormatFloat(voltage[k], 'g', -1, 64),
		}
		if err := w.Write(row); err != nil {
			return "", err
		}
	}

	return runID, nil
}

func (s *Store) List() ([]RunMetadata, error) {
	entries, err := os.ReadDir(s.baseDir)
	if err != nil {
		if os.IsNotExist(err) {
			return []RunMetadata{}, nil
		}
		return nil, err
	}

	runs := make([]RunMetadata, 0)
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}

		meta, err := s.Load(entry.Name())
		if err != nil {
			continue
		}
		runs = append(runs, *meta)
	}

	return runs, nil
}

func (s *Store) Load(runID string) (*RunMetadata, error) {
	data, err := os.ReadFile(filepath.Join(s.baseDir, runID, "metadata.json"))
	if err != nil {
		return nil, err
	}

	var meta RunMetadata
	if err := json.Unmarshal(data, &meta); err != nil {
		return nil, err
	}

	return &meta, nil
}

// LoadStates reads back the series columns: times, current, voltage.
func (s *Store) LoadStates(runID string) ([]float64, []float64, []float64, error) {
	file, err := os.Open(filepath.Join(s.baseDir, runID, "states.csv"))
	if err != nil {
		return nil, nil, nil, err
	}
	defer file.Close()

	r := csv.NewReader(file)
	records, err := r.ReadAll()
	if err != nil {
		return nil, nil, nil, err
	}

	if len(records) < 2 {
		return []float64{}, []float64{}, []float64{}, nil
	}

	n := len(records) - 1
	times := make([]float64, 0, n)
	current := make([]float64, 0, n)
	voltage := make([]float64, 0, n)

	for _, record := range records[1:] {
		if len(record) < 3 {
			return nil, nil, nil, fmt.Errorf("malformed row in %s/states.csv: %v", runID, record)
		}
		tp, err := strconv.ParseFloat(record[0], 64)
		if err != nil {
			return nil, nil, nil, err
		}
		i, err := strconv.ParseFloat(record[1], 64)
		if err != nil {
			return nil, nil, nil, err
		}
		u, err := strconv.ParseFloat(record[2], 64)
		if err != nil {
			return nil, nil, nil, err
		}

		times = append(times, tp)
		current = append(current, i)
		voltage = append(voltage, u)
	}

	return times, current, voltage, nil
}
