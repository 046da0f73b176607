package geom

import (
	"math"
	"testing"

	"github.com/gogpu/gg"
)

func TestParseColor(t *testing.T) {
	tests := []struct {
		in   string
		want gg.RGBA
		ok   bool
	}{
		{"#ff0000", gg.RGBA{R: 1, A: 1}, true},
		{"#0f0", gg.RGBA{G: 1, A: 1}, true},
		{"#0000ff80", gg.RGBA{B: 1, A: 128.0 / 255}, true},
		{"rgb(255, 0, 0)", gg.RGBA{R: 1, A: 1}, true},
		{"rgba(0,0,255,0.5)", gg.RGBA{B: 1, A: 0.5}, true},
		{"RED", gg.RGBA{R: 1, A: 1}, true},
		{"white", gg.RGBA{R: 1, G: 1, B: 1, A: 1}, true},
		{"none", gg.RGBA{}, false},
		{"#ggg", gg.RGBA{}, false},
		{"#12345", gg.RGBA{}, false},
		{"rgb(1,2)", gg.RGBA{}, false},
		{"chartreuse-ish", gg.RGBA{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, ok := ParseColor(tt.in)
			if ok != tt.ok {
				t.Fatalf("ok = %v, want %v", ok, tt.ok)
			}
			if !ok {
				return
			}
			for _, pair := range [][2]float64{{got.R, tt.want.R}, {got.G, tt.want.G}, {got.B, tt.want.B}, {got.A, tt.want.A}} {
				if math.Abs(pair[0]-pair[1]) > 1e-3 {
					t.Errorf("ParseColor(%q) = %+v, want %+v", tt.in, got, tt.want)
					break
				}
			}
		})
	}
}

func TestElementColor(t *testing.T) {
	if got := ElementColor("O"); got != "#ff0d0d" {
		t.Errorf("O = %s", got)
	}
	if got := ElementColor("cl"); got != "#1ff01f" {
		t.Errorf("cl = %s", got)
	}
	if got := ElementColor("Xx"); got != unknownElementColor {
		t.Errorf("Xx = %s", got)
	}
}
