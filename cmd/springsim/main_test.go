package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/san-kum/springsim/internal/dynamo"
	"github.com/san-kum/springsim/internal/viz"
)

func execute(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetIn(strings.NewReader(stdin))
	if args == nil {
		args = []string{}
	}
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestResolveConfig_Precedence(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "run.yaml")
	require.NoError(t, os.WriteFile(path, []byte("params:\n  v0: 3\n  dt: 0.002\n"), 0644))

	t.Setenv("SPRINGSIM_MASS", "2")
	t.Setenv("SPRINGSIM_K", "30")
	t.Setenv("SPRINGSIM_DT", "0.005")

	cmd := newRunCmd()
	require.NoError(t, cmd.ParseFlags([]string{"--preset", "bounce", "--config", path, "--k", "20"}))

	cfg, _, err := resolveConfig(cmd)
	require.NoError(t, err)
	assert.Equal(t, 2.0, cfg.Params.Mass)
	assert.Equal(t, 20.0, cfg.Params.Stiffness)
	assert.Equal(t, 2.0, cfg.Params.X0)
	assert.Equal(t, 3.0, cfg.Params.V0)
	assert.Equal(t, 20.0, cfg.Params.TMax)
	assert.Equal(t, 0.005, cfg.Params.Dt)
}

func TestResolveConfig_Errors(t *testing.T) {
	cmd := newRunCmd()
	require.NoError(t, cmd.ParseFlags([]string{"--preset", "missing"}))
	_, _, err := resolveConfig(cmd)
	assert.ErrorContains(t, err, "unknown preset")

	cmd = newRunCmd()
	require.NoError(t, cmd.ParseFlags([]string{"--mass", "0"}))
	_, _, err = resolveConfig(cmd)
	assert.True(t, errors.Is(err, dynamo.ErrInvalidParameters))
}

func TestRunCommand(t *testing.T) {
	dir := t.TempDir()
	csvPath := filepath.Join(dir, "run.csv")
	svgPath := filepath.Join(dir, "run.svg")

	out, err := execute(t, "", "run", "--time", "0.02", "--no-gif", "--csv", csvPath, "--svg", svgPath)
	require.NoError(t, err)

	assert.Contains(t, out, viz.ChartTitle)
	assert.Contains(t, out, "Count: 3 x count: 3 x[0:5]: [1 0.999 0.99700")
	assert.NotContains(t, out, "Saving GIF to:")
	assert.FileExists(t, csvPath)
	assert.FileExists(t, svgPath)
}

func TestRunCommand_TooFewSteps(t *testing.T) {
	_, err := execute(t, "", "run", "--time", "0.001", "--no-gif")
	assert.True(t, errors.Is(err, dynamo.ErrInvalidParameters))
}

func TestInteractive_PromptThenGIF(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)

	out, err := execute(t, "\n\n\n\n0.05\n\n")
	require.NoError(t, err)

	assert.Contains(t, out, "Enter mass m (kg) (default 1): ")
	assert.Contains(t, out, "Count: 6 x count: 6")
	assert.Contains(t, out, "Save completed")
	assert.FileExists(t, filepath.Join(dir, viz.DefaultGIFName))
}

func TestPresetsCommand(t *testing.T) {
	out, err := execute(t, "", "presets")
	require.NoError(t, err)
	for _, name := range []string{"bounce", "default", "fast", "stiff", "unstable"} {
		assert.Contains(t, out, name)
	}
}

func TestAnalyzeCommand(t *testing.T) {
	out, err := execute(t, "", "analyze", "--time", "20")
	require.NoError(t, err)
	assert.Contains(t, out, "dominant frequency")
	assert.Contains(t, out, "natural period")
	assert.Contains(t, out, "1.9869 s")
}

func TestPhaseCommand(t *testing.T) {
	out, err := execute(t, "", "phase", "--width", "30", "--height", "10")
	require.NoError(t, err)
	assert.Contains(t, out, "•")
}

func TestScenarioCommand(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "sc.yaml")
	require.NoError(t, os.WriteFile(path, []byte("name: demo\nsteps:\n  - name: one\n    params:\n      t_max: 1\n    csv: one.csv\n"), 0644))

	out, err := execute(t, "", "scenario", path, "--dir", dir)
	require.NoError(t, err)
	assert.Contains(t, out, "Scenario: demo")
	assert.Contains(t, out, "Running step 1/1: one")
	assert.FileExists(t, filepath.Join(dir, "one.csv"))
}

func TestSweepCommand(t *testing.T) {
	out, err := execute(t, "", "sweep", "--param", "mass", "--min", "1", "--max", "2", "--steps", "2", "--time", "1")
	require.NoError(t, err)
	assert.Contains(t, out, "Sweep 2/2: mass=2.0000")
}

func TestTuneCommand(t *testing.T) {
	out, err := execute(t, "", "tune", "--time", "5", "--grid", "dt=0.1,0.001,0.01")
	require.NoError(t, err)
	assert.Contains(t, out, "best energy_drift")
	assert.Contains(t, out, "dt=0.001")
}

func TestParseGrid(t *testing.T) {
	names, ranges, err := parseGrid([]string{"dt=0.1, 0.2", "mass=3"})
	require.NoError(t, err)
	assert.Equal(t, []string{"dt", "mass"}, names)
	assert.Equal(t, [][]float64{{0.1, 0.2}, {3}}, ranges)

	_, _, err = parseGrid(nil)
	assert.True(t, errors.Is(err, dynamo.ErrInvalidParameters))
	_, _, err = parseGrid([]string{"dt"})
	assert.True(t, errors.Is(err, dynamo.ErrInvalidParameters))
	_, _, err = parseGrid([]string{"dt=x"})
	assert.True(t, errors.Is(err, dynamo.ErrInvalidNumericInput))
}

func TestInteractive_FormUsesCommandStreams(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)

	out, err := execute(t, "s", "--tui")
	require.NoError(t, err)

	assert.Contains(t, out, "Count: 1001 x count: 1001")
	assert.FileExists(t, filepath.Join(dir, viz.DefaultGIFName))
}

func TestRunCommand_LiveUsesCommandStreams(t *testing.T) {
	out, err := execute(t, "", "run", "--time", "0.02", "--no-gif", "--live")
	require.NoError(t, err)
	assert.Contains(t, out, viz.AnimationTitle)
}

// chdir changes the working directory for the duration of the test,
// like testing.T.Chdir (Go 1.24+).
func chdir(t *testing.T, dir string) {
	t.Helper()
	prev, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(prev) })
}
