package export

import (
	"fmt"
	"html"
	"io"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"
	"gonum.org/v1/gonum/floats"

	"github.com/san-kum/springsim/internal/dynamo"
	"github.com/san-kum/springsim/internal/viz"
)

const (
	svgMarginLeft   = 70
	svgMarginRight  = 20
	svgMarginTop    = 40
	svgMarginBottom = 50
	svgTicks        = 5
)

// SVGChart writes the position-vs-time chart to Path.
type SVGChart struct {
	Path   string
	Config viz.RenderConfig
	Logger *zap.Logger
}

func (c *SVGChart) RenderChart(t, x []float64) error {
	svg, err := ChartSVG(t, x, c.Config)
	if err != nil {
		return err
	}

	if err := os.WriteFile(c.Path, []byte(svg), 0644); err != nil {
		return fmt.Errorf("write chart: %w", err)
	}

	if c.Logger != nil {
		abs, _ := filepath.Abs(c.Path)
		c.Logger.Info("chart written", zap.String("path", abs), zap.Int("samples", len(x)))
	}
	return nil
}

// ChartSVG renders a labelled line chart of x against t.
func ChartSVG(t, x []float64, cfg viz.RenderConfig) (string, error) {
	n := len(t)
	if len(x) < n {
		n = len(x)
	}
	if n == 0 {
		return "", fmt.Errorf("svg chart: %w", dynamo.ErrEmptyTrajectory)
	}
	t, x = t[:n], x[:n]

	width, height := cfg.ChartWidth, cfg.ChartHeight
	plotW := float64(width - svgMarginLeft - svgMarginRight)
	plotH := float64(height - svgMarginTop - svgMarginBottom)

	minT, maxT := floats.Min(t), floats.Max(t)
	minX, maxX := floats.Min(x), floats.Max(x)
	if maxT == minT {
		maxT = minT + 1
	}
	rangeX := maxX - minX
	if rangeX == 0 {
		rangeX = 1
	}
	minX -= rangeX * 0.05
	maxX += rangeX * 0.05

	px := func(v float64) float64 { return svgMarginLeft + (v-minT)/(maxT-minT)*plotW }
	py := func(v float64) float64 { return svgMarginTop + plotH - (v-minX)/(maxX-minX)*plotH }

	theme := cfg.Theme
	var sb strings.Builder

	fmt.Fprintf(&sb, `<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d" font-family="sans-serif" font-size="12">
<rect width="100%%" height="100%%" fill="%s"/>
`, width, height, width, height, theme.Background)

	// grid and tick labels
	fmt.Fprintf(&sb, `<g stroke="%s" stroke-width="0.5">`+"\n", theme.Muted)
	for i := 0; i <= svgTicks; i++ {
		f := float64(i) / svgTicks
		gx := svgMarginLeft + f*plotW
		gy := svgMarginTop + f*plotH
		fmt.Fprintf(&sb, `<line x1="%.1f" y1="%d" x2="%.1f" y2="%.1f"/>`+"\n", gx, svgMarginTop, gx, svgMarginTop+plotH)
		fmt.Fprintf(&sb, `<line x1="%d" y1="%.1f" x2="%.1f" y2="%.1f"/>`+"\n", svgMarginLeft, gy, svgMarginLeft+plotW, gy)
	}
	sb.WriteString("</g>\n")

	fmt.Fprintf(&sb, `<g fill="%s">`+"\n", theme.Text)
	for i := 0; i <= svgTicks; i++ {
		f := float64(i) / svgTicks
		fmt.Fprintf(&sb, `<text x="%.1f" y="%.1f" text-anchor="middle">%.2f</text>`+"\n",
			svgMarginLeft+f*plotW, svgMarginTop+plotH+16, minT+f*(maxT-minT))
		fmt.Fprintf(&sb, `<text x="%d" y="%.1f" text-anchor="end">%.2f</text>`+"\n",
			svgMarginLeft-6, svgMarginTop+plotH-f*plotH+4, minX+f*(maxX-minX))
	}
	fmt.Fprintf(&sb, `<text x="%d" y="24" text-anchor="middle" font-size="15">%s</text>`+"\n", width/2, html.EscapeString(viz.ChartTitle))
	fmt.Fprintf(&sb, `<text x="%.1f" y="%d" text-anchor="middle">%s</text>`+"\n", svgMarginLeft+plotW/2, height-10, html.EscapeString(viz.ChartXLabel))
	fmt.Fprintf(&sb, `<text x="16" y="%.1f" text-anchor="middle" transform="rotate(-90 16 %.1f)">%s</text>`+"\n",
		svgMarginTop+plotH/2, svgMarginTop+plotH/2, html.EscapeString(viz.ChartYLabel))
	sb.WriteString("</g>\n")

	fmt.Fprintf(&sb, `<path fill="none" stroke="%s" stroke-width="1.5" d="M`, theme.Secondary)
	for i := range t {
		if i > 0 {
			sb.WriteString(" L")
		}
		fmt.Fprintf(&sb, "%.1f,%.1f", px(t[i]), py(x[i]))
	}
	sb.WriteString(`"/>` + "\n")

	// legend
	lx := svgMarginLeft + plotW - 120
	ly := float64(svgMarginTop + 14)
	fmt.Fprintf(&sb, `<line x1="%.1f" y1="%.1f" x2="%.1f" y2="%.1f" stroke="%s" stroke-width="1.5"/>`+"\n", lx, ly, lx+24, ly, theme.Secondary)
	fmt.Fprintf(&sb, `<text x="%.1f" y="%.1f" fill="%s">%s</text>`+"\n", lx+30, ly+4, theme.Text, html.EscapeString(viz.ChartLegend))

	sb.WriteString("</svg>\n")
	return sb.String(), nil
}

// WriteChartSVG renders the chart straight to w.
func WriteChartSVG(w io.Writer, t, x []float64, cfg viz.RenderConfig) error {
	svg, err := ChartSVG(t, x, cfg)
	if err != nil {
		return err
	}
	_, err = io.WriteString(w, svg)
	return err
}
