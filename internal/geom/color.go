package geom

import (
	"strconv"
	"strings"

	"github.com/gogpu/gg"
	"golang.org/x/image/colornames"
)

// ParseColor accepts #rgb, #rgba, #rrggbb, #rrggbbaa, rgb(), rgba() and
// CSS colour names. "none" and "transparent" report false.
func ParseColor(s string) (gg.RGBA, bool) {
	s = strings.TrimSpace(strings.ToLower(s))
	switch {
	case s == "", s == "none", s == "transparent":
		return gg.RGBA{}, false
	case strings.HasPrefix(s, "#"):
		return parseHex(s[1:])
	case strings.HasPrefix(s, "rgb"):
		return parseFunc(s)
	}
	if c, ok := colornames.Map[s]; ok {
		return gg.RGBA{
			R: float64(c.R) / 255,
			G: float64(c.G) / 255,
			B: float64(c.B) / 255,
			A: float64(c.A) / 255,
		}, true
	}
	return gg.RGBA{}, false
}

func parseHex(hex string) (gg.RGBA, bool) {
	switch len(hex) {
	case 3, 4, 6, 8:
	default:
		return gg.RGBA{}, false
	}
	for _, r := range hex {
		if !strings.ContainsRune("0123456789abcdef", r) {
			return gg.RGBA{}, false
		}
	}
	return gg.Hex(hex), true
}

// parseFunc handles rgb(r, g, b) and rgba(r, g, b, a) with 0-255
// channels and a 0-1 alpha.
func parseFunc(s string) (gg.RGBA, bool) {
	open, end := strings.IndexByte(s, '('), strings.LastIndexByte(s, ')')
	if open < 0 || end < open {
		return gg.RGBA{}, false
	}
	name := strings.TrimSpace(s[:open])
	parts := strings.FieldsFunc(s[open+1:end], func(r rune) bool {
		return r == ',' || r == ' ' || r == '/'
	})
	if (name == "rgb" && len(parts) != 3 && len(parts) != 4) || (name == "rgba" && len(parts) != 4) {
		return gg.RGBA{}, false
	}
	if name != "rgb" && name != "rgba" {
		return gg.RGBA{}, false
	}

	var ch [4]float64
	ch[3] = 1
	for i, part := range parts {
		pct := strings.HasSuffix(part, "%")
		v, err := strconv.ParseFloat(strings.TrimSuffix(part, "%"), 64)
		if err != nil {
			return gg.RGBA{}, false
		}
		switch {
		case pct:
			v /= 100
		case i < 3:
			v /= 255
		}
		ch[i] = clamp(v, 0, 1)
	}
	return gg.RGBA{R: ch[0], G: ch[1], B: ch[2], A: ch[3]}, true
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
