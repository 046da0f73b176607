package viz

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/san-kum/animato/internal/config"
)

// Menu lists the built-in demo scenes and plays the chosen one.
type Menu struct {
	opts   Options
	names  []string
	cursor int
	player *Model
	err    error
}

func NewMenu(opts Options) Menu {
	return Menu{opts: opts, names: config.ListPresets()}
}

func (m Menu) Init() tea.Cmd { return nil }

// Selected is the highlighted preset name.
func (m Menu) Selected() string {
	if len(m.names) == 0 {
		return ""
	}
	return m.names[m.cursor]
}

// Playing reports whether a preset has been opened.
func (m Menu) Playing() bool { return m.player != nil }

func (m Menu) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.player != nil {
		next, cmd := m.player.Update(msg)
		p := next.(Model)
		m.player = &p
		return m, cmd
	}

	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	switch key.String() {
	case "q", "ctrl+c", "esc":
		return m, tea.Quit
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(m.names)-1 {
			m.cursor++
		}
	case "enter", " ":
		return m.open()
	}
	return m, nil
}

func (m Menu) open() (tea.Model, tea.Cmd) {
	name := m.Selected()
	if name == "" {
		return m, nil
	}
	opts := m.opts
	opts.Autoplay = true
	p, err := NewModel(config.GetPreset(name), opts)
	if err != nil {
		m.err = err
		return m, nil
	}
	m.player = &p
	return m, p.Init()
}

func (m Menu) View() string {
	if m.player != nil {
		return m.player.View()
	}

	t := Themes[ThemeIndex(m.opts.Theme)]
	title := lipgloss.NewStyle().Foreground(t.Title).Bold(true)
	sub := lipgloss.NewStyle().Foreground(t.Label)
	active := lipgloss.NewStyle().Foreground(t.Value).Bold(true)
	accent := lipgloss.NewStyle().Foreground(t.Ink)

	var b strings.Builder
	b.WriteString("\n\n    " + title.Render("ANIMATO") + "\n    " + sub.Render("animation playback engine") + "\n    " + sub.Render("─────────────────────────") + "\n\n")
	for i, name := range m.names {
		desc := config.PresetDescription(name)
		if i == m.cursor {
			fmt.Fprintf(&b, "    %s %s  %s\n", accent.Render("▸"), active.Render(fmt.Sprintf("%-10s", name)), accent.Render(desc))
		} else {
			fmt.Fprintf(&b, "      %s  %s\n", sub.Render(fmt.Sprintf("%-10s", name)), sub.Render(desc))
		}
	}
	if m.err != nil {
		b.WriteString("\n    " + lipgloss.NewStyle().Foreground(t.Error).Render(m.err.Error()) + "\n")
	}
	b.WriteString("\n    " + accent.Render("j/k") + sub.Render(" navigate  ") + accent.Render("enter") + sub.Render(" play  ") + accent.Render("q") + sub.Render(" quit") + "\n")
	return b.String()
}

// RunMenu opens the demo picker.
func RunMenu(opts Options) error {
	final, err := tea.NewProgram(NewMenu(opts), tea.WithAltScreen()).Run()
	if m, ok := final.(Menu); ok && m.player != nil {
		m.player.Close()
	}
	return err
}
