package params

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/san-kum/springsim/internal/dynamo"
	"github.com/san-kum/springsim/internal/sim"
	"github.com/san-kum/springsim/internal/viz"
)

func TestParseFloat(t *testing.T) {
	v, err := parseFloat(" 2.5 ")
	require.NoError(t, err)
	assert.Equal(t, 2.5, v)

	for _, in := range []string{"abc", "", "1,5", "NaN", "inf"} {
		_, err := parseFloat(in)
		assert.True(t, errors.Is(err, dynamo.ErrInvalidNumericInput), "input %q", in)
	}
}

func TestFields_Order(t *testing.T) {
	names := make([]string, len(Fields))
	for i, f := range Fields {
		names[i] = f.Name
	}
	assert.Equal(t, []string{"mass", "stiffness", "x0", "v0", "t_max", "dt"}, names)

	var p sim.Params
	for i, f := range Fields {
		f.Set(&p, float64(i+1))
	}
	assert.Equal(t, sim.Params{Mass: 1, Stiffness: 2, X0: 3, V0: 4, TMax: 5, Dt: 6}, p)
}

func TestStatic(t *testing.T) {
	p, err := Static{Values: sim.DefaultParams()}.Params(context.Background())
	require.NoError(t, err)
	assert.Equal(t, sim.DefaultParams(), p)

	bad := sim.DefaultParams()
	bad.Mass = 0
	_, err = Static{Values: bad}.Params(context.Background())
	assert.True(t, errors.Is(err, dynamo.ErrInvalidParameters))
}

func TestPrompt_DefaultsOnEmptyLines(t *testing.T) {
	var out strings.Builder
	p := NewPrompt(strings.NewReader("\n\n\n\n\n\n"), &out)

	got, err := p.Params(context.Background())
	require.NoError(t, err)
	assert.Equal(t, sim.DefaultParams(), got)
	assert.Contains(t, out.String(), "Enter mass m (kg) (default 1): ")
	assert.Contains(t, out.String(), "Enter time step dt (s) (default 0.01): ")
}

func TestPrompt_ReasksInvalidInput(t *testing.T) {
	var out strings.Builder
	in := "abc\n2\n-5\n8\n0.5\n\n5\n0.05\n"
	p := NewPrompt(strings.NewReader(in), &out)

	got, err := p.Params(context.Background())
	require.NoError(t, err)
	assert.Equal(t, sim.Params{Mass: 2, Stiffness: 8, X0: 0.5, V0: 0, TMax: 5, Dt: 0.05}, got)
	assert.Equal(t, 1, strings.Count(out.String(), "Please enter a valid number!"))
	assert.Equal(t, 1, strings.Count(out.String(), "Invalid value:"))
	assert.Equal(t, 2, strings.Count(out.String(), "Enter spring constant k (N/m)"))
}

func TestPrompt_EOFKeepsDefaults(t *testing.T) {
	p := NewPrompt(strings.NewReader("3\n"), &strings.Builder{})

	got, err := p.Params(context.Background())
	require.NoError(t, err)
	want := sim.DefaultParams()
	want.Mass = 3
	assert.Equal(t, want, got)
}

func TestPrompt_RejectsTooFewSteps(t *testing.T) {
	p := NewPrompt(strings.NewReader("\n\n\n\n0.005\n0.01\n"), &strings.Builder{})

	_, err := p.Params(context.Background())
	assert.True(t, errors.Is(err, dynamo.ErrInvalidParameters))
}

func TestPrompt_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewPrompt(strings.NewReader("1\n"), &strings.Builder{}).Params(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestFile(t *testing.T) {
	dir := t.TempDir()
	good := filepath.Join(dir, "good.yaml")
	require.NoError(t, os.WriteFile(good, []byte("params:\n  mass: 4\n  dt: 0.02\n"), 0644))

	got, err := File{Path: good}.Params(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 4.0, got.Mass)
	assert.Equal(t, 0.02, got.Dt)
	assert.Equal(t, 10.0, got.Stiffness)

	bad := filepath.Join(dir, "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("params:\n  stiffness: -1\n"), 0644))
	_, err = File{Path: bad}.Params(context.Background())
	assert.True(t, errors.Is(err, dynamo.ErrInvalidParameters))

	_, err = File{Path: filepath.Join(dir, "missing.yaml")}.Params(context.Background())
	assert.Error(t, err)
}

func keys(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func press(m formModel, msgs ...tea.Msg) formModel {
	for _, msg := range msgs {
		next, _ := m.Update(msg)
		m = next.(formModel)
	}
	return m
}

func testForm() formModel {
	return newFormModel(sim.DefaultParams(), newFormStyles(&strings.Builder{}, viz.ThemeClassic))
}

func TestFormModel_EditField(t *testing.T) {
	m := press(testForm(),
		tea.KeyMsg{Type: tea.KeyEnter},
		tea.KeyMsg{Type: tea.KeyBackspace},
		keys("2"),
		tea.KeyMsg{Type: tea.KeyEnter},
	)
	assert.False(t, m.editing)
	assert.Equal(t, 2.0, m.values.Mass)
	assert.Contains(t, m.View(), "Enter mass m (kg)")
}

func TestFormModel_RejectsInvalidValue(t *testing.T) {
	m := testForm()
	m.cursor = 1
	m = press(m,
		tea.KeyMsg{Type: tea.KeyEnter},
		tea.KeyMsg{Type: tea.KeyBackspace},
		tea.KeyMsg{Type: tea.KeyBackspace},
		keys("-"),
		keys("3"),
		tea.KeyMsg{Type: tea.KeyEnter},
	)
	assert.True(t, m.editing)
	assert.Equal(t, 10.0, m.values.Stiffness)
	assert.Contains(t, m.errMsg, "must be positive")

	m = press(m, tea.KeyMsg{Type: tea.KeyEsc})
	assert.False(t, m.editing)
	assert.Empty(t, m.errMsg)
}

func TestFormModel_SubmitAndAbort(t *testing.T) {
	m := press(testForm(), keys("s"))
	assert.True(t, m.done)
	assert.Equal(t, sim.DefaultParams(), m.values)
	assert.Empty(t, m.View())

	m = press(testForm(), tea.KeyMsg{Type: tea.KeyEsc})
	assert.True(t, m.aborted)

	m = press(testForm(), tea.KeyMsg{Type: tea.KeyCtrlC})
	assert.True(t, m.aborted)
}

func TestFormModel_SubmitBlockedByInvalidParams(t *testing.T) {
	m := testForm()
	m.values.TMax = 0.001
	m = press(m, keys("s"))
	assert.False(t, m.done)
	assert.NotEmpty(t, m.errMsg)
}

func TestFormModel_Navigation(t *testing.T) {
	m := press(testForm(), keys("j"), keys("j"), tea.KeyMsg{Type: tea.KeyDown})
	assert.Equal(t, 3, m.cursor)
	m = press(m, keys("k"), tea.KeyMsg{Type: tea.KeyUp}, keys("k"), keys("k"))
	assert.Equal(t, 0, m.cursor)
}
