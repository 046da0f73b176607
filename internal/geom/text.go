package geom

import (
	"math"
	"strconv"
	"strings"

	"github.com/gogpu/gg"

	"github.com/san-kum/animato/internal/logging"
	"github.com/san-kum/animato/internal/scene"
)

// TextOptions configures a single line of text anchored at the origin.
type TextOptions struct {
	Text     string  // text|label|content, required
	Size     float64 // fontSize|size, default 16
	Family   string  // fontFamily|family: sans, serif or monospace; default sans
	Weight   string  // fontWeight|weight: normal or bold; default normal
	Align    string  // textAlign|align: left, center, right; default center
	Baseline string  // textBaseline|baseline: top, middle, bottom; default middle
}

func textOptions(p scene.Props) (TextOptions, error) {
	o := TextOptions{
		Text:     p.Str("", "text", "label", "content"),
		Size:     p.Num(16, "fontSize", "size"),
		Family:   strings.ToLower(p.Str("sans", "fontFamily", "family")),
		Weight:   strings.ToLower(p.Str("normal", "fontWeight", "weight")),
		Align:    strings.ToLower(p.Str("center", "textAlign", "align")),
		Baseline: strings.ToLower(p.Str("middle", "textBaseline", "baseline")),
	}
	if o.Text == "" {
		return o, missing(scene.Text, "text")
	}
	if o.Size <= 0 {
		o.Size = 16
	}
	return o, nil
}

func (o TextOptions) style() FontStyle {
	switch {
	case strings.Contains(o.Family, "mono"):
		return FontMono
	case o.Weight == "bold" || o.Weight == "bolder":
		return FontBold
	}
	if w, err := strconv.Atoi(o.Weight); err == nil && w >= 600 {
		return FontBold
	}
	return FontRegular
}

func (o TextOptions) anchor() (ax, ay float64) {
	switch o.Align {
	case "left", "start":
		ax = 0
	case "right", "end":
		ax = 1
	default:
		ax = 0.5
	}
	switch o.Baseline {
	case "top", "hanging":
		ay = 1
	case "bottom", "alphabetic", "ideographic":
		ay = 0
	default:
		ay = 0.5
	}
	return ax, ay
}

func drawText(p *Pen, props scene.Props) error {
	o, err := textOptions(props)
	if err != nil {
		return err
	}
	c := p.fillColor("#000000")
	if p.Fill == nil && p.Stroke != nil {
		c = *p.Stroke
	}
	return label(p, o, c)
}

// label draws o at the local origin in colour c. Text is rasterized in
// device space, so the anchor is mapped through the current transform and
// the size through the pen's scale. Rotation does not apply to text.
func label(p *Pen, o TextOptions, c gg.RGBA) error {
	s := p.Surface
	face := p.Fonts.Face(o.style(), o.Size*math.Abs(p.Scale))
	if face == nil {
		logging.Logger().Debug("no font available, skipping text", "text", o.Text)
		return nil
	}
	x, y := s.TransformPoint(0, 0)
	ax, ay := o.anchor()

	s.Push()
	defer s.Pop()
	s.Identity()
	s.SetFont(face)
	p.setColor(c)
	s.DrawStringAnchored(o.Text, x, y, ax, ay)
	return nil
}
