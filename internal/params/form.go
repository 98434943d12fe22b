package params

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/san-kum/springsim/internal/dynamo"
	"github.com/san-kum/springsim/internal/sim"
	"github.com/san-kum/springsim/internal/viz"
)

// Form edits the parameters in a full-screen terminal form.
type Form struct {
	In       io.Reader
	Out      io.Writer
	Defaults sim.Params
	Theme    viz.Theme
}

func NewForm(in io.Reader, out io.Writer, theme viz.Theme) *Form {
	return &Form{In: in, Out: out, Defaults: sim.DefaultParams(), Theme: theme}
}

func (f *Form) Params(ctx context.Context) (sim.Params, error) {
	in, out := f.In, f.Out
	if in == nil {
		in = os.Stdin
	}
	if out == nil {
		out = os.Stdout
	}

	m := newFormModel(f.Defaults, newFormStyles(out, f.Theme))
	final, err := tea.NewProgram(m,
		tea.WithContext(ctx),
		tea.WithInput(in),
		tea.WithOutput(out),
	).Run()
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return sim.Params{}, ctxErr
		}
		return sim.Params{}, fmt.Errorf("parameter form: %w", err)
	}

	fm := final.(formModel)
	if fm.aborted {
		return sim.Params{}, dynamo.ErrAborted
	}
	return fm.values, nil
}

type formStyles struct {
	title, label, value, cursor, err, help lipgloss.Style
}

func newFormStyles(w io.Writer, theme viz.Theme) formStyles {
	r := lipgloss.NewRenderer(w)
	return formStyles{
		title:  r.NewStyle().Bold(true).Foreground(theme.Primary),
		label:  r.NewStyle().Foreground(theme.Muted),
		value:  r.NewStyle().Foreground(theme.Text),
		cursor: r.NewStyle().Foreground(theme.Secondary).Bold(true),
		err:    r.NewStyle().Foreground(lipgloss.Color("196")),
		help:   r.NewStyle().Foreground(theme.Muted).Italic(true),
	}
}

type formModel struct {
	values   sim.Params
	defaults sim.Params
	cursor   int
	editing  bool
	editBuf  string
	errMsg   string
	done     bool
	aborted  bool
	styles   formStyles
}

func newFormModel(defaults sim.Params, st formStyles) formModel {
	return formModel{values: defaults, defaults: defaults, styles: st}
}

func (m formModel) Init() tea.Cmd { return nil }

func (m formModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	if key.String() == "ctrl+c" {
		m.aborted = true
		return m, tea.Quit
	}
	if m.editing {
		return m.editKey(key)
	}

	switch key.String() {
	case "esc", "q":
		m.aborted = true
		return m, tea.Quit
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j", "tab":
		if m.cursor < len(Fields)-1 {
			m.cursor++
		}
	case "enter", " ":
		m.editing = true
		m.editBuf = formatFloat(Fields[m.cursor].Get(m.values))
		m.errMsg = ""
	case "d":
		Fields[m.cursor].Set(&m.values, Fields[m.cursor].Get(m.defaults))
	case "s":
		if err := m.values.Validate(); err != nil {
			m.errMsg = err.Error()
			return m, nil
		}
		m.done = true
		return m, tea.Quit
	}
	return m, nil
}

func (m formModel) editKey(key tea.KeyMsg) (formModel, tea.Cmd) {
	switch key.String() {
	case "enter":
		f := Fields[m.cursor]
		if strings.TrimSpace(m.editBuf) == "" {
			f.Set(&m.values, f.Get(m.defaults))
		} else {
			v, err := parseFloat(m.editBuf)
			if err == nil {
				err = f.Check(v)
			}
			if err != nil {
				if errors.Is(err, dynamo.ErrInvalidNumericInput) {
					m.errMsg = "Please enter a valid number!"
				} else {
					m.errMsg = err.Error()
				}
				return m, nil
			}
			f.Set(&m.values, v)
		}
		m.editing = false
		m.editBuf = ""
		m.errMsg = ""
	case "esc":
		m.editing = false
		m.editBuf = ""
		m.errMsg = ""
	case "backspace":
		if len(m.editBuf) > 0 {
			m.editBuf = m.editBuf[:len(m.editBuf)-1]
		}
	default:
		if len(key.Runes) == 1 {
			c := key.Runes[0]
			if (c >= '0' && c <= '9') || c == '.' || c == '-' || c == 'e' || c == 'E' || c == '+' {
				m.editBuf += string(c)
			}
		}
	}
	return m, nil
}

func (m formModel) View() string {
	if m.done || m.aborted {
		return ""
	}
	st := m.styles
	var b strings.Builder

	b.WriteString("\n  " + st.title.Render("Spring-Mass Parameters") + "\n\n")
	for i, f := range Fields {
		val := formatFloat(f.Get(m.values))
		if m.editing && i == m.cursor {
			val = m.editBuf + "▋"
		}
		label := fmt.Sprintf("%-40s", f.Label)
		if i == m.cursor {
			b.WriteString("  " + st.cursor.Render("▸ ") + st.value.Render(label) + st.cursor.Render(val) + "\n")
		} else {
			b.WriteString("    " + st.label.Render(label) + st.value.Render(val) + "\n")
		}
	}

	if m.errMsg != "" {
		b.WriteString("\n  " + st.err.Render(m.errMsg) + "\n")
	}
	b.WriteString("\n  " + st.help.Render("↑↓ select  enter edit  d default  s start  esc quit") + "\n")
	return b.String()
}
