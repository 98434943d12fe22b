package viz

import (
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// styles are bound to a renderer so colour detection follows the actual
// output instead of os.Stdout.
type styles struct {
	title  lipgloss.Style
	label  lipgloss.Style
	value  lipgloss.Style
	marker lipgloss.Style
	line   lipgloss.Style
	help   lipgloss.Style
}

func newStyles(w io.Writer, theme Theme) styles {
	r := lipgloss.NewRenderer(w)
	return styles{
		title:  r.NewStyle().Bold(true).Foreground(theme.Primary),
		label:  r.NewStyle().Foreground(theme.Muted),
		value:  r.NewStyle().Foreground(theme.Text).Bold(true),
		marker: r.NewStyle().Foreground(theme.Primary),
		line:   r.NewStyle().Foreground(theme.Secondary),
		help:   r.NewStyle().Foreground(theme.Muted).Italic(true),
	}
}

// ProgressBar renders a fixed-width bar for a fraction in [0, 1].
func ProgressBar(fraction float64, width int) string {
	filled := int(fraction * float64(width))
	if filled > width {
		filled = width
	}
	if filled < 0 {
		filled = 0
	}
	return strings.Repeat("█", filled) + strings.Repeat("░", width-filled)
}
