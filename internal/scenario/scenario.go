package scenario

import (
	"context"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/san-kum/springsim/internal/export"
	"github.com/san-kum/springsim/internal/metrics"
	"github.com/san-kum/springsim/internal/physics"
	"github.com/san-kum/springsim/internal/sim"
	"github.com/san-kum/springsim/internal/viz"
)

// Scenario defines a scripted sequence of runs
type Scenario struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
	Steps       []Step `yaml:"steps"`
}

// Step is one run plus the files it should produce. Output names are
// relative to the runner's directory; empty names are skipped.
type Step struct {
	Name   string     `yaml:"name"`
	Params sim.Params `yaml:"params"`
	GIF    string     `yaml:"gif"`
	CSV    string     `yaml:"csv"`
	JSON   string     `yaml:"json"`
	SVG    string     `yaml:"svg"`
}

// UnmarshalYAML starts every step from the default parameters.
func (s *Step) UnmarshalYAML(node *yaml.Node) error {
	type raw Step
	r := raw{Params: sim.DefaultParams()}
	if err := node.Decode(&r); err != nil {
		return err
	}
	*s = Step(r)
	return nil
}

// Load loads a scenario from a YAML file
func Load(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var sc Scenario
	if err := yaml.Unmarshal(data, &sc); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return &sc, nil
}

type Options struct {
	Dir    string
	Render viz.RenderConfig
	Logger *zap.Logger
	Out    io.Writer
}

type Result struct {
	Step       string
	Trajectory sim.Trajectory
	Metrics    map[string]float64
}

// Run executes the steps in order and stops at the first failure. Results
// of the steps that completed are returned alongside the error.
func Run(ctx context.Context, sc *Scenario, opts Options) ([]Result, error) {
	log := opts.Logger
	if log == nil {
		log = zap.NewNop()
	}
	out := opts.Out
	if out == nil {
		out = os.Stdout
	}

	results := make([]Result, 0, len(sc.Steps))
	for i, step := range sc.Steps {
		if err := ctx.Err(); err != nil {
			return results, err
		}

		name := step.Name
		if name == "" {
			name = fmt.Sprintf("%d", i+1)
		}
		fmt.Fprintf(out, "Running step %d/%d: %s\n", i+1, len(sc.Steps), name)

		if err := step.Params.Validate(); err != nil {
			return results, fmt.Errorf("step %s: %w", name, err)
		}
		traj, err := sim.Simulate(step.Params)
		if err != nil {
			return results, fmt.Errorf("step %s run: %w", name, err)
		}

		dyn := physics.NewSpringMassWith(step.Params.Mass, step.Params.Stiffness)
		m := metrics.Evaluate(traj,
			metrics.NewEnergyDrift(dyn),
			metrics.NewStability(stabilityBound(step.Params)),
		)
		log.Info("scenario step finished",
			zap.String("scenario", sc.Name),
			zap.String("step", name),
			zap.Int("samples", traj.Len()),
			zap.Float64("energy_drift", m["energy_drift"]),
			zap.Float64("stability", m["stability"]),
		)

		if err := writeOutputs(step, traj, opts, out, log); err != nil {
			return results, fmt.Errorf("step %s export: %w", name, err)
		}

		results = append(results, Result{Step: name, Trajectory: traj, Metrics: m})
	}
	return results, nil
}

// stabilityBound is twice the largest amplitude the initial energy allows in
// either coordinate.
func stabilityBound(p sim.Params) float64 {
	dyn := physics.NewSpringMassWith(p.Mass, p.Stiffness)
	e := dyn.Energy([]float64{p.X0, p.V0})
	xMax := sqrtOrZero(2 * e / p.Stiffness)
	vMax := sqrtOrZero(2 * e / p.Mass)
	return 2 * max(xMax, vMax, 1e-9)
}

func writeOutputs(step Step, traj sim.Trajectory, opts Options, out io.Writer, log *zap.Logger) error {
	path := func(name string) string { return filepath.Join(opts.Dir, name) }

	if step.GIF != "" {
		rc := opts.Render
		rc.Filename = step.GIF
		anim := &export.GIFAnimator{Config: rc, Dir: opts.Dir, Out: out, Logger: log}
		if err := anim.Animate(traj.Time, traj.Position); err != nil {
			return err
		}
	}
	if step.SVG != "" {
		chart := &export.SVGChart{Path: path(step.SVG), Config: opts.Render, Logger: log}
		if err := chart.RenderChart(traj.Time, traj.Position); err != nil {
			return err
		}
	}
	if step.CSV != "" {
		if err := export.SaveCSV(path(step.CSV), traj); err != nil {
			return err
		}
	}
	if step.JSON != "" {
		if err := export.SaveJSON(path(step.JSON), traj); err != nil {
			return err
		}
	}
	return nil
}

func sqrtOrZero(v float64) float64 {
	if v <= 0 || math.IsNaN(v) {
		return 0
	}
	return math.Sqrt(v)
}
