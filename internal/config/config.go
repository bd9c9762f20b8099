package config

import (
	"os"

	"gopkg.in/yaml.v3"

	"github.com/lcsim/lcsim/internal/simulation"
)

const (
	DefaultInductance  = 1.0
	DefaultCapacitance = 1.0
	DefaultVoltage     = 1.0
	DefaultStepSize    = 0.001
	DefaultDuration    = 10.0
	DefaultSolver      = "rk4"
)

type Config struct {
	Inductance     float64 `yaml:"inductance"`
	Capacitance    float64 `yaml:"capacitance"`
	InitialCurrent float64 `yaml:"initial_current"`
	InitialVoltage float64 `yaml:"initial_voltage"`
	StepSize       float64 `yaml:"step_size"`
	Duration       float64 `yaml:"duration"`
	Solver         string  `yaml:"solver"`
}

func DefaultConfig() *Config {
	return &Config{
		Inductance:     DefaultInductance,
		Capacitance:    DefaultCapacitance,
		InitialCurrent: 0,
		InitialVoltage: DefaultVoltage,
		StepSize:       DefaultStepSize,
		Duration:       DefaultDuration,
		Solver:         DefaultSolver,
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Simulation maps the file config onto the orchestration config.
func (c *Config) Simulation() simulation.Config {
	return simulation.Config{
		Inductance:     c.Inductance,
		Capacitance:    c.Capacitance,
		InitialCurrent: c.InitialCurrent,
		InitialVoltage: c.InitialVoltage,
		StepSize:       c.StepSize,
		Duration:       c.Duration,
		Solver:         c.Solver,
	}
}
