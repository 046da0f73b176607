package geom

import (
	"errors"

	"github.com/gogpu/gg"
)

// Pen is a surface plus the resolved style of the object being drawn.
type Pen struct {
	Surface Surface
	Fonts   *FontBook

	// Fill and Stroke are nil when the object sets no such colour.
	Fill      *gg.RGBA
	Stroke    *gg.RGBA
	LineWidth float64
	Opacity   float64

	// Scale is the uniform scale applied to the surface. Text, which is
	// drawn in device space, multiplies its size by it.
	Scale float64

	// Seed feeds randomized drawers such as particle.
	Seed int64
}

// NewPen returns a pen with default style: no colours, width 1, opaque.
func NewPen(s Surface, fonts *FontBook) *Pen {
	return &Pen{Surface: s, Fonts: fonts, LineWidth: 1, Opacity: 1, Scale: 1}
}

func (p *Pen) setColor(c gg.RGBA) {
	p.Surface.SetRGBA(c.R, c.G, c.B, c.A*p.Opacity)
}

// lineColor is the colour used for stroke-only shapes: stroke, then fill,
// then def.
func (p *Pen) lineColor(def string) gg.RGBA {
	if p.Stroke != nil {
		return *p.Stroke
	}
	if p.Fill != nil {
		return *p.Fill
	}
	c, _ := ParseColor(def)
	return c
}

func (p *Pen) fillColor(def string) gg.RGBA {
	if p.Fill != nil {
		return *p.Fill
	}
	c, _ := ParseColor(def)
	return c
}

// paint fills the current path if a fill colour is set and strokes it if
// a stroke colour is set, then clears it.
func (p *Pen) paint() error {
	defer p.Surface.ClearPath()
	var errs []error
	if p.Fill != nil {
		p.setColor(*p.Fill)
		errs = append(errs, p.Surface.FillPreserve())
	}
	if p.Stroke != nil {
		p.setColor(*p.Stroke)
		p.Surface.SetLineWidth(p.LineWidth)
		errs = append(errs, p.Surface.StrokePreserve())
	}
	return errors.Join(errs...)
}

// paintOr behaves like paint, but fills with def when neither colour is
// set.
func (p *Pen) paintOr(def string) error {
	if p.Fill == nil && p.Stroke == nil {
		return p.fillWith(p.fillColor(def))
	}
	return p.paint()
}

func (p *Pen) fillWith(c gg.RGBA) error {
	p.setColor(c)
	return p.Surface.Fill()
}

func (p *Pen) strokeWith(c gg.RGBA, width float64) error {
	p.setColor(c)
	p.Surface.SetLineWidth(width)
	return p.Surface.Stroke()
}

// strokeLine strokes the current path in the line colour.
func (p *Pen) strokeLine(def string) error {
	return p.strokeWith(p.lineColor(def), p.LineWidth)
}
