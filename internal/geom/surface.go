package geom

import (
	"github.com/gogpu/gg"
	"github.com/gogpu/gg/text"
)

// Surface is the drawing context the geometry library paints on.
// *gg.Context satisfies it.
type Surface interface {
	Width() int
	Height() int
	ClearWithColor(c gg.RGBA)

	SetRGBA(r, g, b, a float64)
	SetLineWidth(w float64)
	SetLineCap(c gg.LineCap)
	SetDash(lengths ...float64)
	ClearDash()

	MoveTo(x, y float64)
	LineTo(x, y float64)
	QuadraticTo(cx, cy, x, y float64)
	CubicTo(c1x, c1y, c2x, c2y, x, y float64)
	ClosePath()
	ClearPath()
	NewSubPath()

	Fill() error
	Stroke() error
	FillPreserve() error
	StrokePreserve() error

	Push()
	Pop()
	Identity()
	Translate(x, y float64)
	Rotate(angle float64)
	Scale(x, y float64)
	TransformPoint(x, y float64) (float64, float64)

	SetFont(face text.Face)
	DrawStringAnchored(s string, x, y, ax, ay float64)
	MeasureString(s string) (w, h float64)
}

var _ Surface = (*gg.Context)(nil)
