package main

import (
	"fmt"
	"math"
	"text/tabwriter"

	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"

	"github.com/san-kum/springsim/internal/analysis"
	"github.com/san-kum/springsim/internal/config"
	"github.com/san-kum/springsim/internal/metrics"
	"github.com/san-kum/springsim/internal/physics"
	"github.com/san-kum/springsim/internal/scenario"
	"github.com/san-kum/springsim/internal/sim"
)

func newPresetsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "presets",
		Short: "list parameter presets",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "NAME\tMASS\tK\tX0\tV0\tTIME\tDT\tPERIOD")
			for _, name := range config.ListPresets() {
				p := config.Presets[name]
				fmt.Fprintf(w, "%s\t%g\t%g\t%g\t%g\t%g\t%g\t%.3f\n",
					name, p.Mass, p.Stiffness, p.X0, p.V0, p.TMax, p.Dt, p.NaturalPeriod())
			}
			return w.Flush()
		},
	}
}

func newAnalyzeCmd() *cobra.Command {
	analyzeCmd := &cobra.Command{
		Use:   "analyze",
		Short: "frequency, period and energy analysis of a run",
		Args:  cobra.NoArgs,
		RunE:  analyzeRun,
	}
	addParamFlags(analyzeCmd.Flags())
	return analyzeCmd
}

func analyzeRun(cmd *cobra.Command, args []string) error {
	cfg, _, err := resolveConfig(cmd)
	if err != nil {
		return err
	}
	p := cfg.Params

	traj, err := sim.Simulate(p)
	if err != nil {
		return err
	}

	freq, err := analysis.DominantFrequency(traj.Position, p.Dt)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	ps := analysis.PowerSpectrum(traj.Position)
	if plotData := ps[:max(len(ps)/4, 1)]; len(plotData) > 1 {
		graph := asciigraph.Plot(plotData,
			asciigraph.Height(15),
			asciigraph.Width(80),
			asciigraph.Caption("power spectrum x(t)"),
		)
		fmt.Fprintln(out, graph)
		fmt.Fprintln(out)
	}

	dyn := physics.NewSpringMassWith(p.Mass, p.Stiffness)
	m := metrics.Evaluate(traj,
		metrics.NewEnergy(dyn),
		metrics.NewEnergyDrift(dyn),
		metrics.NewStability(10*max(math.Abs(p.X0), math.Abs(p.V0), 1)),
	)

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "samples\t%d\n", traj.Len())
	fmt.Fprintf(w, "dominant frequency\t%.4f hz\n", freq)
	if freq > 0 {
		fmt.Fprintf(w, "spectral period\t%.4f s\n", 1/freq)
	}
	fmt.Fprintf(w, "measured period\t%.4f s\n", analysis.MeasuredPeriod(traj))
	fmt.Fprintf(w, "natural period\t%.4f s\n", analysis.NaturalPeriod(p.Mass, p.Stiffness))
	fmt.Fprintf(w, "mean energy\t%.6g J\n", m["energy"])
	fmt.Fprintf(w, "energy drift\t%.3e\n", m["energy_drift"])
	fmt.Fprintf(w, "stability\t%.3f\n", m["stability"])
	return w.Flush()
}

func newPhaseCmd() *cobra.Command {
	phaseCmd := &cobra.Command{
		Use:   "phase",
		Short: "position-velocity phase portrait",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, v, err := resolveConfig(cmd)
			if err != nil {
				return err
			}
			traj, err := sim.Simulate(cfg.Params)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, "phase portrait: x (horizontal) vs v (vertical)")
			fmt.Fprint(out, analysis.PhasePortraitToASCII(analysis.NewPhasePortrait(traj), v.GetInt("width"), v.GetInt("height")))
			return nil
		},
	}
	addParamFlags(phaseCmd.Flags())
	phaseCmd.Flags().Int("width", 60, "plot width")
	phaseCmd.Flags().Int("height", 24, "plot height")
	return phaseCmd
}

func newScenarioCmd() *cobra.Command {
	var dir string
	scenarioCmd := &cobra.Command{
		Use:   "scenario [file]",
		Short: "run the steps of a yaml scenario",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sc, err := scenario.Load(args[0])
			if err != nil {
				return err
			}
			if sc.Name != "" {
				fmt.Fprintf(cmd.OutOrStdout(), "Scenario: %s\n", sc.Name)
			}

			results, err := scenario.Run(cmd.Context(), sc, scenario.Options{
				Dir:    dir,
				Render: config.DefaultConfig().RenderConfig(),
				Logger: logger,
				Out:    cmd.OutOrStdout(),
			})
			if err != nil {
				return err
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "STEP\tSAMPLES\tENERGY DRIFT\tSTABILITY")
			for _, r := range results {
				fmt.Fprintf(w, "%s\t%d\t%.3e\t%.3f\n", r.Step, r.Trajectory.Len(), r.Metrics["energy_drift"], r.Metrics["stability"])
			}
			return w.Flush()
		},
	}
	scenarioCmd.Flags().StringVar(&dir, "dir", ".", "output directory")
	return scenarioCmd
}

func newSweepCmd() *cobra.Command {
	sweepCmd := &cobra.Command{
		Use:   "sweep",
		Short: "vary one parameter and report the energy range of each run",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, v, err := resolveConfig(cmd)
			if err != nil {
				return err
			}
			results, err := scenario.RunSweep(cmd.Context(), &scenario.Sweep{
				Param: v.GetString("param"),
				Min:   v.GetFloat64("min"),
				Max:   v.GetFloat64("max"),
				Steps: v.GetInt("steps"),
				Base:  cfg.Params,
				Out:   cmd.OutOrStdout(),
			})
			if err != nil {
				return err
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "VALUE\tMIN ENERGY\tMAX ENERGY\tFINAL X\tFINAL V")
			for _, r := range results {
				fmt.Fprintf(w, "%.4f\t%.6g\t%.6g\t%.6g\t%.6g\n", r.ParamValue, r.MinEnergy, r.MaxEnergy, r.FinalState[0], r.FinalState[1])
			}
			return w.Flush()
		},
	}
	fs := sweepCmd.Flags()
	addParamFlags(fs)
	fs.String("param", "dt", "parameter to vary (mass, stiffness, x0, v0, t_max, dt)")
	fs.Float64("min", 0.01, "first value")
	fs.Float64("max", 0.7, "last value")
	fs.Int("steps", 8, "number of runs")
	return sweepCmd
}
