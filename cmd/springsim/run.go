package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/san-kum/springsim/internal/config"
	"github.com/san-kum/springsim/internal/export"
	"github.com/san-kum/springsim/internal/params"
	"github.com/san-kum/springsim/internal/sim"
	"github.com/san-kum/springsim/internal/viz"
)

type outputs struct {
	gif  bool
	live bool
	svg  string
	csv  string
	json string
}

func newRunCmd() *cobra.Command {
	runCmd := &cobra.Command{
		Use:   "run",
		Short: "run a simulation from flags, a preset or a config file",
		Args:  cobra.NoArgs,
		RunE:  runSimulation,
	}
	fs := runCmd.Flags()
	addParamFlags(fs)
	fs.String("gif", viz.DefaultGIFName, "animated gif output file")
	fs.String("svg", "", "write the position chart as svg")
	fs.String("csv", "", "export samples as csv")
	fs.String("json", "", "export samples as json")
	fs.Bool("live", false, "replay the run in the terminal")
	fs.Bool("no-gif", false, "skip the gif animation")
	return runCmd
}

func runSimulation(cmd *cobra.Command, args []string) error {
	cfg, v, err := resolveConfig(cmd)
	if err != nil {
		return err
	}

	out := outputs{
		gif:  !v.GetBool("no-gif"),
		live: v.GetBool("live"),
		svg:  v.GetString("svg"),
		csv:  v.GetString("csv"),
		json: v.GetString("json"),
	}
	return simulateAndRender(cmd.InOrStdin(), cmd.OutOrStdout(), cfg, out)
}

// runInteractive asks for the parameters, then charts and animates the run.
func runInteractive(cmd *cobra.Command, args []string) error {
	cfg := config.DefaultConfig()

	var provider params.Provider = params.NewPrompt(cmd.InOrStdin(), cmd.OutOrStdout())
	if useTUI {
		provider = params.NewForm(cmd.InOrStdin(), cmd.OutOrStdout(), viz.GetTheme(cfg.Render.Theme))
	}

	p, err := provider.Params(cmd.Context())
	if err != nil {
		return err
	}
	cfg.Params = p
	return simulateAndRender(cmd.InOrStdin(), cmd.OutOrStdout(), cfg, outputs{gif: true})
}

func simulateAndRender(r io.Reader, w io.Writer, cfg *config.Config, out outputs) error {
	traj, err := sim.Simulate(cfg.Params)
	if err != nil {
		return err
	}
	logger.Debug("simulation finished", fieldsFor(cfg.Params, traj)...)

	rc := cfg.RenderConfig()
	if err := viz.NewTerminalChart(w, rc).RenderChart(traj.Time, traj.Position); err != nil {
		return err
	}
	fmt.Fprintf(w, "Count: %d x count: %d x[0:5]: %v\n", len(traj.Time), len(traj.Position), traj.Position[:min(5, len(traj.Position))])

	if out.svg != "" {
		chart := &export.SVGChart{Path: out.svg, Config: rc, Logger: logger}
		if err := chart.RenderChart(traj.Time, traj.Position); err != nil {
			return err
		}
		fmt.Fprintf(w, "Chart written to %s\n", out.svg)
	}
	if out.csv != "" {
		if err := export.SaveCSV(out.csv, traj); err != nil {
			return err
		}
		fmt.Fprintf(w, "Samples written to %s\n", out.csv)
	}
	if out.json != "" {
		if err := export.SaveJSON(out.json, traj); err != nil {
			return err
		}
		fmt.Fprintf(w, "Samples written to %s\n", out.json)
	}

	if out.live {
		live := &viz.LiveAnimation{Config: rc, Logger: logger, In: r, Out: w}
		if err := live.Animate(traj.Time, traj.Position); err != nil {
			return err
		}
	}
	if out.gif {
		anim := &export.GIFAnimator{Config: rc, Out: w, Logger: logger}
		if err := anim.Animate(traj.Time, traj.Position); err != nil {
			return err
		}
	}
	return nil
}

func fieldsFor(p sim.Params, traj sim.Trajectory) []zap.Field {
	return []zap.Field{
		zap.Float64("mass", p.Mass),
		zap.Float64("stiffness", p.Stiffness),
		zap.Float64("x0", p.X0),
		zap.Float64("v0", p.V0),
		zap.Float64("t_max", p.TMax),
		zap.Float64("dt", p.Dt),
		zap.Int("samples", traj.Len()),
	}
}
