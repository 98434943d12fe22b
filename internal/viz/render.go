package viz

import (
	"math"
	"time"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
)

const (
	ChartTitle     = "Spring-Mass System: Position vs. Time"
	ChartXLabel    = "Time t (s)"
	ChartYLabel    = "Position x (m)"
	ChartLegend    = "Position x(t)"
	AnimationTitle = "Spring-Mass Motion Animation"

	DefaultGIFName       = "spring_mass.gif"
	DefaultFPS           = 30
	DefaultFrameInterval = 20 * time.Millisecond
)

// ChartRenderer draws position against time.
type ChartRenderer interface {
	RenderChart(t, x []float64) error
}

// AnimationRenderer replays a position series, one frame per sample.
type AnimationRenderer interface {
	Animate(t, x []float64) error
}

// RenderConfig is passed to renderers at call time.
type RenderConfig struct {
	// Animation frame size in pixels.
	Width, Height int
	// SVG chart size in pixels.
	ChartWidth, ChartHeight int
	// Terminal chart size in columns and rows.
	TermWidth, TermHeight int

	Font          font.Face
	Theme         Theme
	MarkerRadius  int
	FPS           int
	FrameInterval time.Duration
	Filename      string
}

func DefaultRenderConfig() RenderConfig {
	return RenderConfig{
		Width:         600,
		Height:        200,
		ChartWidth:    800,
		ChartHeight:   400,
		TermWidth:     80,
		TermHeight:    12,
		Font:          basicfont.Face7x13,
		Theme:         ThemeClassic,
		MarkerRadius:  10,
		FPS:           DefaultFPS,
		FrameInterval: DefaultFrameInterval,
		Filename:      DefaultGIFName,
	}
}

// GIFDelay converts FPS to the GIF frame delay in hundredths of a second.
func (c RenderConfig) GIFDelay() int {
	if c.FPS <= 0 {
		return 2
	}
	d := int(math.Round(100 / float64(c.FPS)))
	if d < 1 {
		d = 1
	}
	return d
}
