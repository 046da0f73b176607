package viz

import "github.com/charmbracelet/lipgloss"

// Theme colours the player chrome and the Braille preview.
type Theme struct {
	Name    string
	Ink     lipgloss.Color
	Title   lipgloss.Color
	Label   lipgloss.Color
	Value   lipgloss.Color
	Border  lipgloss.Color
	Playing lipgloss.Color
	Paused  lipgloss.Color
	Ended   lipgloss.Color
	Error   lipgloss.Color
}

var Themes = []Theme{
	{
		Name:    "cyberpunk",
		Ink:     "#00ffff",
		Title:   "#ff00ff",
		Label:   "#666688",
		Value:   "#ffffff",
		Border:  "#444466",
		Playing: "#00ff88",
		Paused:  "#ffaa00",
		Ended:   "#ff00ff",
		Error:   "#ff0000",
	},
	{
		Name:    "retro",
		Ink:     "#00ff00",
		Title:   "#88ff88",
		Label:   "#005500",
		Value:   "#00ff00",
		Border:  "#005500",
		Playing: "#88ff88",
		Paused:  "#ffff00",
		Ended:   "#00cc00",
		Error:   "#ff0000",
	},
	{
		Name:    "minimal",
		Ink:     "#ffffff",
		Title:   "#ffffff",
		Label:   "#888888",
		Value:   "#cccccc",
		Border:  "#444444",
		Playing: "#0088ff",
		Paused:  "#ffaa00",
		Ended:   "#888888",
		Error:   "#ff0000",
	},
	{
		Name:    "ocean",
		Ink:     "#00a8cc",
		Title:   "#ffd700",
		Label:   "#4488aa",
		Value:   "#e0f0ff",
		Border:  "#0077be",
		Playing: "#00ff88",
		Paused:  "#ffcc00",
		Ended:   "#0077be",
		Error:   "#ff4444",
	},
	{
		Name:    "sunset",
		Ink:     "#feca57",
		Title:   "#ff6b6b",
		Label:   "#8b6b8c",
		Value:   "#fff5f5",
		Border:  "#ff9ff3",
		Playing: "#5fd068",
		Paused:  "#ffc048",
		Ended:   "#ff9ff3",
		Error:   "#ff4757",
	},
}

// ThemeIndex returns the position of the named theme, or 0.
func ThemeIndex(name string) int {
	for i, t := range Themes {
		if t.Name == name {
			return i
		}
	}
	return 0
}

func GetTheme(name string) Theme { return Themes[ThemeIndex(name)] }

func ThemeNames() []string {
	names := make([]string, len(Themes))
	for i, t := range Themes {
		names[i] = t.Name
	}
	return names
}
