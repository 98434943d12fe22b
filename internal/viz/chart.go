package viz

import (
	"fmt"
	"io"

	"github.com/guptarohit/asciigraph"
	"github.com/san-kum/springsim/internal/dynamo"
)

// TerminalChart prints the position series as an asciigraph line chart.
type TerminalChart struct {
	Out    io.Writer
	Config RenderConfig
}

func NewTerminalChart(out io.Writer, cfg RenderConfig) *TerminalChart {
	return &TerminalChart{Out: out, Config: cfg}
}

func (c *TerminalChart) RenderChart(t, x []float64) error {
	if len(t) == 0 || len(x) == 0 {
		return fmt.Errorf("terminal chart: %w", dynamo.ErrEmptyTrajectory)
	}

	st := newStyles(c.Out, c.Config.Theme)

	graph := asciigraph.Plot(x,
		asciigraph.Height(c.Config.TermHeight),
		asciigraph.Width(c.Config.TermWidth),
		asciigraph.Precision(3),
		asciigraph.Caption(fmt.Sprintf("%s  |  %s: %.2f .. %.2f", ChartYLabel, ChartXLabel, t[0], t[len(t)-1])),
	)

	if _, err := fmt.Fprintln(c.Out, st.title.Render(ChartTitle)); err != nil {
		return err
	}
	if _, err := fmt.Fprintln(c.Out, st.line.Render(graph)); err != nil {
		return err
	}
	_, err := fmt.Fprintf(c.Out, "%s %s\n", st.line.Render("──"), st.label.Render(ChartLegend))
	return err
}
