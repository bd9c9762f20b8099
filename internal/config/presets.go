package config

import "sort"

var Presets = map[string]*Config{
	"unit": {
		Inductance: 1, Capacitance: 1, InitialVoltage: 1,
		StepSize: 0.001, Duration: 100.0, Solver: "rk4",
	},
	"radio": {
		// 100 uH / 250 pF tank, ~1 MHz resonance
		Inductance: 100e-6, Capacitance: 250e-12, InitialVoltage: 5,
		StepSize: 1e-9, Duration: 5e-6, Solver: "rk4",
	},
	"coarse": {
		// dt comparable to sqrt(L*C): the explicit scheme visibly gains energy
		Inductance: 1, Capacitance: 1, InitialVoltage: 1,
		StepSize: 0.1, Duration: 20.0, Solver: "euler",
	},
	"damped": {
		Inductance: 1, Capacitance: 1, InitialVoltage: 1,
		StepSize: 0.05, Duration: 50.0, Solver: "backward_euler",
	},
}

func GetPreset(name string) *Config {
	cfg, ok := Presets[name]
	if !ok {
		return nil
	}
	return cfg
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
