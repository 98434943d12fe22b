package optim

import (
	"context"
	"fmt"
	"math"

	"github.com/san-kum/springsim/internal/dynamo"
	"github.com/san-kum/springsim/internal/params"
	"github.com/san-kum/springsim/internal/sim"
)

// Objective scores a finished run; lower is better.
type Objective func(p sim.Params, traj sim.Trajectory) float64

// GridSearch tries every combination of the candidate values and keeps
// the parameters with the lowest objective. Invalid combinations are
// skipped.
type GridSearch struct {
	fields []params.Field
	ranges [][]float64
}

func NewGridSearch(names []string, ranges [][]float64) (*GridSearch, error) {
	if len(names) != len(ranges) {
		return nil, fmt.Errorf("%w: %d parameters but %d ranges", dynamo.ErrInvalidParameters, len(names), len(ranges))
	}
	fields := make([]params.Field, len(names))
	for i, name := range names {
		f, ok := params.Lookup(name)
		if !ok {
			return nil, fmt.Errorf("%w: unknown parameter %q", dynamo.ErrInvalidParameters, name)
		}
		fields[i] = f
	}
	return &GridSearch{fields: fields, ranges: ranges}, nil
}

// Search returns the best parameters and their score. It fails when no
// combination produced a valid run.
func (g *GridSearch) Search(ctx context.Context, base sim.Params, objective Objective) (sim.Params, float64, error) {
	best := math.Inf(1)
	var bestParams sim.Params
	found := false

	if err := g.searchRecursive(ctx, 0, base, objective, &best, &bestParams, &found); err != nil {
		return sim.Params{}, 0, err
	}
	if !found {
		return sim.Params{}, 0, fmt.Errorf("%w: no valid combination in grid", dynamo.ErrInvalidParameters)
	}
	return bestParams, best, nil
}

func (g *GridSearch) searchRecursive(
	ctx context.Context,
	depth int,
	current sim.Params,
	objective Objective,
	best *float64,
	bestParams *sim.Params,
	found *bool,
) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if depth == len(g.fields) {
		if current.Validate() != nil {
			return nil
		}
		traj, err := sim.Simulate(current)
		if err != nil {
			return nil
		}

		val := objective(current, traj)
		if math.IsNaN(val) {
			val = math.Inf(1)
		}
		if !*found || val < *best {
			*best = val
			*bestParams = current
			*found = true
		}
		return nil
	}

	for _, val := range g.ranges[depth] {
		next := current
		g.fields[depth].Set(&next, val)
		if err := g.searchRecursive(ctx, depth+1, next, objective, best, bestParams, found); err != nil {
			return err
		}
	}
	return nil
}
