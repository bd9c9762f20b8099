package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/lcsim/lcsim/internal/config"
	"github.com/lcsim/lcsim/internal/plot"
	"github.com/lcsim/lcsim/internal/simulation"
	"github.com/lcsim/lcsim/internal/storage"
	"github.com/lcsim/lcsim/internal/viz"
)

var (
	dataDir     string
	inductance  float64
	capacitance float64
	current     float64
	voltage     float64
	dt          float64
	duration    float64
	solverName  string
	configFile  string
	preset      string
	outFile     string
)

var log = logrus.New()

func main() {
	log.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})

	rootCmd := &cobra.Command{
		Use:   "lcsim",
		Short: "LC oscillator circuit simulator",
	}

	rootCmd.PersistentFlags().StringVar(&dataDir, "data", ".lcsim", "data directory")

	runCmd := &cobra.Command{
		Use:   "run",
		Short: "run simulation",
		RunE:  runSimulation,
	}
	addSimFlags(runCmd)

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list runs",
		RunE:  listRuns,
	}

	plotCmd := &cobra.Command{
		Use:   "plot [run_id]",
		Short: "plot run results in the terminal",
		Args:  cobra.ExactArgs(1),
		RunE:  plotRun,
	}

	exportCmd := &cobra.Command{
		Use:   "export [run_id]",
		Short: "export run plots to a PNG or SVG file",
		Args:  cobra.ExactArgs(1),
		RunE:  exportRun,
	}
	exportCmd.Flags().StringVar(&outFile, "out", "lc.png", "output file (.png or .svg)")

	liveCmd := &cobra.Command{
		Use:   "live",
		Short: "replay the simulation live in the terminal",
		RunE:  liveView,
	}
	addSimFlags(liveCmd)

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list built-in presets",
		RunE:  listPresets,
	}

	rootCmd.AddCommand(runCmd, listCmd, plotCmd, exportCmd, liveCmd, presetsCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func addSimFlags(cmd *cobra.Command) {
	cmd.Flags().Float64VarP(&inductance, "inductance", "L", config.DefaultInductance, "coil inductance, H")
	cmd.Flags().Float64VarP(&capacitance, "capacitance", "C", config.DefaultCapacitance, "capacitor capacitance, F")
	cmd.Flags().Float64Var(&current, "current", 0, "initial circuit current, A")
	cmd.Flags().Float64Var(&voltage, "voltage", config.DefaultVoltage, "initial capacitor voltage, V")
	cmd.Flags().Float64Var(&dt, "dt", config.DefaultStepSize, "integration step size, s")
	cmd.Flags().Float64Var(&duration, "time", config.DefaultDuration, "simulation time, s")
	cmd.Flags().StringVar(&solverName, "solver", config.DefaultSolver, fmt.Sprintf("integration scheme %v", simulation.Solvers()))
	cmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")
	cmd.Flags().StringVar(&preset, "preset", "", "use a built-in preset")
}

// simConfig resolves preset, config file, and flags, in that order of
// increasing precedence.
func simConfig(cmd *cobra.Command) (simulation.Config, error) {
	cfg := config.DefaultConfig()

	if preset != "" {
		p := config.GetPreset(preset)
		if p == nil {
			return simulation.Config{}, fmt.Errorf("unknown preset %q (have %v)", preset, config.ListPresets())
		}
		c := *p
		cfg = &c
	}

	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return simulation.Config{}, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	}

	if cmd.Flags().Changed("inductance") {
		cfg.Inductance = inductance
	}
	if cmd.Flags().Changed("capacitance") {
		cfg.Capacitance = capacitance
	}
	if cmd.Flags().Changed("current") {
		cfg.InitialCurrent = current
	}
	if cmd.Flags().Changed("voltage") {
		cfg.InitialVoltage = voltage
	}
	if cmd.Flags().Changed("dt") {
		cfg.StepSize = dt
	}
	if cmd.Flags().Changed("time") {
		cfg.Duration = duration
	}
	if cmd.Flags().Changed("solver") {
		cfg.Solver = solverName
	}

	return cfg.Simulation(), nil
}

func runSimulation(cmd *cobra.Command, args []string) error {
	cfg, err := simConfig(cmd)
	if err != nil {
		return err
	}

	st := storage.New(dataDir)
	if err := st.Init(); err != nil {
		return err
	}

	sim, err := simulation.New(cfg)
	if err != nil {
		return err
	}

	log.WithFields(logrus.Fields{
		"solver": cfg.Solver,
		"dt":     cfg.StepSize,
		"time":   cfg.Duration,
	}).Info("running simulation")

	result, err := sim.Run()
	if err != nil {
		return err
	}

	runID, err := st.Save(cfg, result)
	if err != nil {
		return err
	}

	log.WithField("elapsed", result.Elapsed).Info("completed")

	fmt.Printf("run id: %s\n", runID)
	fmt.Printf("steps: %d\n", len(result.Times))
	fmt.Printf("solving time: %v\n", result.Elapsed)

	final := result.States[len(result.States)-1]
	fmt.Printf("final state: I=%.6g A, U=%.6g V\n", final[0], final[1])

	return nil
}

func listRuns(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	runs, err := st.List()
	if err != nil {
		return err
	}

	if len(runs) == 0 {
		fmt.Println("no runs found")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tTIME\tL\tC\tDT\tDURATION\tSOLVER\tSTEPS")

	for _, run := range runs {
		fmt.Fprintf(w, "%s\t%s\t%g\t%g\t%g\t%g\t%s\t%d\n",
			run.ID,
			run.Timestamp.Format("2006-01-02 15:04:05"),
			run.Inductance,
			run.Capacitance,
			run.StepSize,
			run.Duration,
			run.Solver,
			run.Steps,
		)
	}

	return w.Flush()
}

func plotRun(cmd *cobra.Command, args []string) error {
	runID := args[0]

	st := storage.New(dataDir)
	meta, err := st.Load(runID)
	if err != nil {
		return err
	}

	times, currentSeries, voltageSeries, err := st.LoadStates(runID)
	if err != nil {
		return err
	}
	if len(times) == 0 {
		return fmt.Errorf("no data to plot")
	}

	fmt.Printf("run: %s\n", meta.ID)
	fmt.Printf("solver: %s, dt=%g s, L=%g H, C=%g F\n\n", meta.Solver, meta.StepSize, meta.Inductance, meta.Capacitance)
	fmt.Println(plot.Ascii(times, currentSeries, voltageSeries))

	return nil
}

func exportRun(cmd *cobra.Command, args []string) error {
	runID := args[0]

	st := storage.New(dataDir)
	times, currentSeries, voltageSeries, err := st.LoadStates(runID)
	if err != nil {
		return err
	}
	if len(times) == 0 {
		return fmt.Errorf("no data to export")
	}

	if err := plot.WriteImage(outFile, times, currentSeries, voltageSeries); err != nil {
		return err
	}

	log.WithFields(logrus.Fields{"run": runID, "file": outFile}).Info("exported")
	return nil
}

func liveView(cmd *cobra.Command, args []string) error {
	cfg, err := simConfig(cmd)
	if err != nil {
		return err
	}
	return viz.Run(cfg)
}

func listPresets(cmd *cobra.Command, args []string) error {
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tL\tC\tU0\tDT\tDURATION\tSOLVER")

	for _, name := range config.ListPresets() {
		p := config.GetPreset(name)
		fmt.Fprintf(w, "%s\t%g\t%g\t%g\t%g\t%g\t%s\n",
			name, p.Inductance, p.Capacitance, p.InitialVoltage, p.StepSize, p.Duration, p.Solver)
	}

	return w.Flush()
}
