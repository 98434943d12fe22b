package params

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/san-kum/springsim/internal/dynamo"
	"github.com/san-kum/springsim/internal/sim"
)

// Prompt asks for each field on its own line. An empty answer keeps the
// default; after EOF the remaining fields keep theirs.
type Prompt struct {
	In       io.Reader
	Out      io.Writer
	Defaults sim.Params
}

func NewPrompt(in io.Reader, out io.Writer) *Prompt {
	return &Prompt{In: in, Out: out, Defaults: sim.DefaultParams()}
}

func (p *Prompt) Params(ctx context.Context) (sim.Params, error) {
	in, out := p.In, p.Out
	if in == nil {
		in = os.Stdin
	}
	if out == nil {
		out = os.Stdout
	}

	values := p.Defaults
	scanner := bufio.NewScanner(in)
	eof := false

	for _, f := range Fields {
		for !eof {
			if err := ctx.Err(); err != nil {
				return sim.Params{}, err
			}

			def := f.Get(p.Defaults)
			fmt.Fprintf(out, "%s (default %s): ", f.Label, formatFloat(def))
			if !scanner.Scan() {
				if err := scanner.Err(); err != nil {
					return sim.Params{}, fmt.Errorf("read %s: %w", f.Name, err)
				}
				fmt.Fprintln(out)
				eof = true
				break
			}

			line := scanner.Text()
			if strings.TrimSpace(line) == "" {
				break
			}

			v, err := parseFloat(line)
			if err != nil {
				if errors.Is(err, dynamo.ErrInvalidNumericInput) {
					fmt.Fprintln(out, "Please enter a valid number!")
					continue
				}
				return sim.Params{}, err
			}
			if err := f.Check(v); err != nil {
				fmt.Fprintf(out, "Invalid value: %v\n", err)
				continue
			}
			f.Set(&values, v)
			break
		}
	}

	if err := values.Validate(); err != nil {
		return sim.Params{}, err
	}
	return values, nil
}
