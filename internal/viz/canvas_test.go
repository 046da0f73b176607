package viz

import (
	"image"
	"image/color"
	"strings"
	"testing"
)

func TestCanvasSet(t *testing.T) {
	c := NewCanvas(2, 1)
	c.Set(0, 0)
	c.Set(3, 3)
	c.Set(-1, 0)
	c.Set(4, 0)

	if c.Grid[0][0] != rune(blank|0x1) {
		t.Errorf("cell 0 = %U", c.Grid[0][0])
	}
	if c.Grid[0][1] != rune(blank|0x80) {
		t.Errorf("cell 1 = %U", c.Grid[0][1])
	}
	if !c.IsSet(3, 3) || c.IsSet(1, 1) {
		t.Error("IsSet disagrees with Set")
	}
}

func TestCanvasDrawLine(t *testing.T) {
	c := NewCanvas(4, 1)
	c.DrawLine(0, 0, 7, 0)
	for x := 0; x < 8; x++ {
		if !c.IsSet(x, 0) {
			t.Errorf("dot %d not set", x)
		}
	}
	if c.IsSet(0, 1) {
		t.Error("line spilled into next row")
	}
}

func TestCanvasFromImage(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 40, 40))
	for y := 0; y < 40; y++ {
		for x := 0; x < 40; x++ {
			img.Set(x, y, color.White)
		}
	}
	// dark left half
	for y := 0; y < 40; y++ {
		for x := 0; x < 20; x++ {
			img.Set(x, y, color.Black)
		}
	}

	c := NewCanvas(4, 2)
	c.FromImage(img, color.White, DefaultThreshold)
	w, h := c.DotSize()
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			want := x < w/2
			if c.IsSet(x, y) != want {
				t.Fatalf("dot (%d,%d) set=%v, want %v", x, y, c.IsSet(x, y), want)
			}
		}
	}

	c.FromImage(nil, color.White, DefaultThreshold)
	if strings.Trim(c.String(), "⠀\n") != "" {
		t.Error("nil image should clear the canvas")
	}
}

func TestCanvasString(t *testing.T) {
	c := NewCanvas(3, 2)
	lines := strings.Split(c.String(), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %d", len(lines))
	}
	if len([]rune(lines[0])) != 3 {
		t.Errorf("expected 3 cells, got %q", lines[0])
	}
}

func TestProgressBar(t *testing.T) {
	tests := []struct {
		percent float64
		filled  int
	}{
		{0, 0},
		{0.5, 5},
		{1, 10},
		{1.5, 10},
		{-1, 0},
	}
	for _, tt := range tests {
		bar := ProgressBar(tt.percent, 10)
		if got := strings.Count(bar, "█"); got != tt.filled {
			t.Errorf("ProgressBar(%v) filled %d, want %d", tt.percent, got, tt.filled)
		}
		if n := len([]rune(bar)); n != 10 {
			t.Errorf("ProgressBar(%v) width %d", tt.percent, n)
		}
	}
}

func TestSparkline(t *testing.T) {
	got := Sparkline([]float64{0, 3.5, 7}, 8)
	if got != "▁▄█" {
		t.Errorf("Sparkline = %q", got)
	}
	if got := Sparkline([]float64{1, 2, 3}, 2); len([]rune(got)) != 2 {
		t.Errorf("Sparkline kept %d values, want last 2", len([]rune(got)))
	}
	if got := Sparkline(nil, 3); got != "───" {
		t.Errorf("empty Sparkline = %q", got)
	}
}

func TestThemes(t *testing.T) {
	if ThemeIndex("ocean") != 3 {
		t.Errorf("ocean index = %d", ThemeIndex("ocean"))
	}
	if GetTheme("nope").Name != "cyberpunk" {
		t.Error("unknown theme should fall back to the first")
	}
	if len(ThemeNames()) != len(Themes) {
		t.Error("ThemeNames length mismatch")
	}
}
