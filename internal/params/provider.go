package params

import (
	"context"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/san-kum/springsim/internal/config"
	"github.com/san-kum/springsim/internal/dynamo"
	"github.com/san-kum/springsim/internal/sim"
)

type Provider interface {
	Params(ctx context.Context) (sim.Params, error)
}

// Field describes one input, in the order they are asked for.
type Field struct {
	Name     string
	Label    string
	Positive bool
	ref      func(p *sim.Params) *float64
}

func (f Field) Get(p sim.Params) float64 { return *f.ref(&p) }

func (f Field) Set(p *sim.Params, v float64) { *f.ref(p) = v }

// Check reports whether v satisfies the field's sign constraint.
func (f Field) Check(v float64) error {
	if f.Positive && v <= 0 {
		return &dynamo.ParamError{Field: f.Name, Value: v, Reason: "must be positive"}
	}
	return nil
}

var Fields = []Field{
	{Name: "mass", Label: "Enter mass m (kg)", Positive: true, ref: func(p *sim.Params) *float64 { return &p.Mass }},
	{Name: "stiffness", Label: "Enter spring constant k (N/m)", Positive: true, ref: func(p *sim.Params) *float64 { return &p.Stiffness }},
	{Name: "x0", Label: "Enter initial position x0 (m)", ref: func(p *sim.Params) *float64 { return &p.X0 }},
	{Name: "v0", Label: "Enter initial velocity v0 (m/s)", ref: func(p *sim.Params) *float64 { return &p.V0 }},
	{Name: "t_max", Label: "Enter total simulation time t_max (s)", Positive: true, ref: func(p *sim.Params) *float64 { return &p.TMax }},
	{Name: "dt", Label: "Enter time step dt (s)", Positive: true, ref: func(p *sim.Params) *float64 { return &p.Dt }},
}

// Lookup finds a field by name.
func Lookup(name string) (Field, bool) {
	for _, f := range Fields {
		if f.Name == name {
			return f, true
		}
	}
	return Field{}, false
}

// parseFloat accepts finite decimal numbers only.
func parseFloat(s string) (float64, error) {
	s = strings.TrimSpace(s)
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("%w: %q", dynamo.ErrInvalidNumericInput, s)
	}
	return v, nil
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// Static returns fixed parameters.
type Static struct {
	Values sim.Params
}

func (s Static) Params(ctx context.Context) (sim.Params, error) {
	if err := ctx.Err(); err != nil {
		return sim.Params{}, err
	}
	if err := s.Values.Validate(); err != nil {
		return sim.Params{}, err
	}
	return s.Values, nil
}

// File reads parameters from a YAML config file.
type File struct {
	Path string
}

func (f File) Params(ctx context.Context) (sim.Params, error) {
	if err := ctx.Err(); err != nil {
		return sim.Params{}, err
	}
	cfg, err := config.Load(f.Path)
	if err != nil {
		return sim.Params{}, err
	}
	if err := cfg.Params.Validate(); err != nil {
		return sim.Params{}, fmt.Errorf("%s: %w", f.Path, err)
	}
	return cfg.Params, nil
}
