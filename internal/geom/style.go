package geom

import (
	"strings"

	"github.com/gogpu/gg"

	"github.com/san-kum/animato/internal/logging"
	"github.com/san-kum/animato/internal/scene"
)

// Style is the per-object paint state shared by every shape type.
type Style struct {
	Fill      *gg.RGBA
	Stroke    *gg.RGBA
	LineWidth float64
	LineCap   gg.LineCap
	Dash      []float64
	Opacity   float64
}

// StyleFrom decodes the common style keys: fill|color, stroke,
// lineWidth|strokeWidth, lineCap, lineDash and opacity.
func StyleFrom(props scene.Props) Style {
	st := Style{
		LineWidth: props.Num(1, "lineWidth", "strokeWidth"),
		LineCap:   parseLineCap(props.Str("", "lineCap")),
		Opacity:   clamp(props.Num(1, "opacity", "alpha"), 0, 1),
	}
	if st.LineWidth < 0 {
		st.LineWidth = 0
	}
	st.Fill = colorProp(props, "fill", "color")
	st.Stroke = colorProp(props, "stroke", "strokeColor")
	if v, ok := props["lineDash"]; ok {
		for _, d := range v.NumberList() {
			if d < 0 {
				st.Dash = nil
				break
			}
			st.Dash = append(st.Dash, d)
		}
	}
	return st
}

func colorProp(props scene.Props, keys ...string) *gg.RGBA {
	for _, k := range keys {
		s, ok := props[k].Text()
		if !ok || s == "" {
			continue
		}
		c, ok := ParseColor(s)
		if !ok {
			if !isNone(s) {
				logging.Logger().Debug("unparsable colour", "key", k, "value", s)
			}
			return nil
		}
		return &c
	}
	return nil
}

func isNone(s string) bool {
	s = strings.ToLower(strings.TrimSpace(s))
	return s == "none" || s == "transparent"
}

func parseLineCap(s string) gg.LineCap {
	switch strings.ToLower(s) {
	case "round":
		return gg.LineCapRound
	case "square":
		return gg.LineCapSquare
	}
	return gg.LineCapButt
}

// Apply loads st into the pen and pushes the line settings to its surface.
func (p *Pen) Apply(st Style) {
	p.Fill = st.Fill
	p.Stroke = st.Stroke
	p.LineWidth = st.LineWidth
	p.Opacity = st.Opacity
	p.Surface.SetLineWidth(st.LineWidth)
	p.Surface.SetLineCap(st.LineCap)
	if len(st.Dash) > 0 {
		p.Surface.SetDash(st.Dash...)
	} else {
		p.Surface.ClearDash()
	}
}
