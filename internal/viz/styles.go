package viz

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/san-kum/animato/internal/playback"
)

const panelWidth = 34

type styles struct {
	canvas lipgloss.Style
	panel  lipgloss.Style
	title  lipgloss.Style
	label  lipgloss.Style
	value  lipgloss.Style
	help   lipgloss.Style
	status map[playback.Status]lipgloss.Style
	err    lipgloss.Style
}

func newStyles(t Theme) styles {
	bold := lipgloss.NewStyle().Bold(true)
	return styles{
		canvas: lipgloss.NewStyle().Foreground(t.Ink).Padding(1, 2),
		panel: lipgloss.NewStyle().
			Border(lipgloss.NormalBorder(), false, false, false, true).
			BorderForeground(t.Border).
			Padding(1, 2).
			Width(panelWidth),
		title: bold.Foreground(t.Title).MarginBottom(1),
		label: lipgloss.NewStyle().Foreground(t.Label).Width(10),
		value: lipgloss.NewStyle().Foreground(t.Value),
		help:  lipgloss.NewStyle().Foreground(t.Label).Italic(true).MarginTop(1),
		status: map[playback.Status]lipgloss.Style{
			playback.Stopped: bold.Foreground(t.Label),
			playback.Paused:  bold.Foreground(t.Paused),
			playback.Playing: bold.Foreground(t.Playing),
			playback.Ended:   bold.Foreground(t.Ended),
		},
		err: lipgloss.NewStyle().Foreground(t.Error),
	}
}

// ProgressBar renders percent in [0,1] as a bar of width cells.
func ProgressBar(percent float64, width int) string {
	filled := int(percent * float64(width))
	filled = min(max(filled, 0), width)
	return strings.Repeat("█", filled) + strings.Repeat("░", width-filled)
}

// Sparkline renders the last width values as block characters scaled
// between their minimum and maximum.
func Sparkline(values []float64, width int) string {
	if len(values) == 0 || width <= 0 {
		return strings.Repeat("─", max(width, 0))
	}
	if len(values) > width {
		values = values[len(values)-width:]
	}
	chars := []rune{'▁', '▂', '▃', '▄', '▅', '▆', '▇', '█'}

	lo, hi := values[0], values[0]
	for _, v := range values {
		lo, hi = min(lo, v), max(hi, v)
	}
	rng := hi - lo
	if rng == 0 {
		rng = 1
	}

	var b strings.Builder
	for _, v := range values {
		idx := int((v - lo) / rng * float64(len(chars)-1))
		b.WriteRune(chars[min(max(idx, 0), len(chars)-1)])
	}
	return b.String()
}
