package viz

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"
)

const (
	liveWidth  = 60
	liveHeight = 5
)

type frameMsg time.Time

type liveModel struct {
	t, x    []float64
	frame   int
	skipped int
	lo, hi  float64
	paused  bool
	done    bool
	cfg     RenderConfig
	canvas  *Canvas
	styles  styles
}

func newLiveModel(t, x []float64, cfg RenderConfig, out io.Writer) liveModel {
	lo, hi := AxisLimits(x)
	return liveModel{
		t:      t,
		x:      x,
		lo:     lo,
		hi:     hi,
		cfg:    cfg,
		canvas: NewCanvas(liveWidth, liveHeight),
		styles: newStyles(out, cfg.Theme),
	}
}

func (m liveModel) tick() tea.Cmd {
	return tea.Tick(m.cfg.FrameInterval, func(t time.Time) tea.Msg { return frameMsg(t) })
}

func (m liveModel) Init() tea.Cmd { return m.tick() }

func (m liveModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case " ":
			m.paused = !m.paused
		case "r":
			m.frame = 0
			m.done = false
		}
	case frameMsg:
		if m.paused {
			return m, m.tick()
		}
		if m.frame+1 >= len(m.t) {
			m.done = true
			return m, tea.Quit
		}
		m.frame++
		if m.frame >= len(m.x) {
			m.skipped++
		}
		return m, m.tick()
	}
	return m, nil
}

func (m liveModel) View() string {
	m.canvas.Clear()
	mid := m.canvas.PixelHeight() / 2
	m.canvas.HLine(mid)

	pos := 0.0
	if m.frame < len(m.x) {
		pos = m.x[m.frame]
		px := Project(pos, m.lo, m.hi, m.canvas.PixelWidth())
		m.canvas.FillCircle(px, mid, 3)
	}

	var b strings.Builder
	b.WriteString(m.styles.title.Render(AnimationTitle))
	b.WriteString("\n\n")
	b.WriteString(m.styles.marker.Render(m.canvas.String()))
	b.WriteString(fmt.Sprintf("%s %s   %s %s\n",
		m.styles.label.Render("t"), m.styles.value.Render(fmt.Sprintf("%8.3f s", m.t[m.frame])),
		m.styles.label.Render("x"), m.styles.value.Render(fmt.Sprintf("%8.4f m", pos)),
	))

	progress := 1.0
	if len(m.t) > 1 {
		progress = float64(m.frame) / float64(len(m.t)-1)
	}
	b.WriteString(m.styles.line.Render(ProgressBar(progress, liveWidth)))
	b.WriteString("\n")
	b.WriteString(m.styles.help.Render("space pause · r restart · q quit"))
	b.WriteString("\n")
	return b.String()
}

// LiveAnimation replays a run in the terminal, one frame per sample.
type LiveAnimation struct {
	Config RenderConfig
	Logger *zap.Logger
	In     io.Reader
	Out    io.Writer
}

func (a *LiveAnimation) Animate(t, x []float64) error {
	log := a.Logger
	if log == nil {
		log = zap.NewNop()
	}
	if len(t) == 0 || len(x) == 0 {
		log.Warn("animation data is empty, check simulation parameters",
			zap.Int("time_samples", len(t)), zap.Int("position_samples", len(x)))
		return nil
	}

	out := a.Out
	if out == nil {
		out = os.Stdout
	}
	opts := []tea.ProgramOption{tea.WithOutput(out)}
	if a.In != nil {
		opts = append(opts, tea.WithInput(a.In))
	}

	final, err := tea.NewProgram(newLiveModel(t, x, a.Config, out), opts...).Run()
	if err != nil {
		return fmt.Errorf("live animation: %w", err)
	}
	if m, ok := final.(liveModel); ok && m.skipped > 0 {
		log.Warn("skipped out-of-range frames", zap.Int("skipped", m.skipped), zap.Int("positions", len(x)))
	}
	return nil
}
