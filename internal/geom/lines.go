package geom

import (
	"math"

	"github.com/san-kum/animato/internal/scene"
)

// Segment is a start and end point, decoded from x1/y1/x2/y2 or from the
// first and last entries of points.
type Segment struct {
	X1, Y1, X2, Y2 float64
}

func (s Segment) Length() float64 { return math.Hypot(s.X2-s.X1, s.Y2-s.Y1) }

// segment defaults to a horizontal run of length def from the origin.
func segment(p scene.Props, def float64) Segment {
	if pts := p.Points("points"); len(pts) >= 2 {
		last := pts[len(pts)-1]
		return Segment{pts[0].X, pts[0].Y, last.X, last.Y}
	}
	return Segment{
		X1: p.Num(0, "x1"),
		Y1: p.Num(0, "y1"),
		X2: p.Num(def, "x2"),
		Y2: p.Num(0, "y2"),
	}
}

// LineOptions configures a straight line or polyline.
type LineOptions struct {
	Segment
	Points []scene.Point // points, drawn as a polyline when longer than two
}

func lineOptions(p scene.Props) LineOptions {
	o := LineOptions{Segment: segment(p, 100)}
	if pts := p.Points("points"); len(pts) > 2 {
		o.Points = pts
	}
	return o
}

func drawLine(p *Pen, props scene.Props) error {
	o := lineOptions(props)
	if o.Points != nil {
		polylinePath(p.Surface, o.Points, false)
	} else {
		p.Surface.MoveTo(o.X1, o.Y1)
		p.Surface.LineTo(o.X2, o.Y2)
	}
	return p.strokeLine(defaultLine)
}

// ArrowOptions configures a line with a head at its end.
type ArrowOptions struct {
	Segment
	HeadSize  float64 // headSize|headLength, default 10
	HeadAngle float64 // headAngle in degrees either side of the shaft, default 30
	DoubleEnd bool    // doubleHead|bidirectional
}

func arrowOptions(p scene.Props) ArrowOptions {
	return ArrowOptions{
		Segment:   segment(p, 100),
		HeadSize:  math.Max(0, p.Num(10, "headSize", "headLength")),
		HeadAngle: p.Num(30, "headAngle"),
		DoubleEnd: p.Bool(false, "doubleHead", "bidirectional"),
	}
}

func drawArrow(p *Pen, props scene.Props) error {
	o := arrowOptions(props)
	return arrow(p, o)
}

func arrow(p *Pen, o ArrowOptions) error {
	s := p.Surface
	s.MoveTo(o.X1, o.Y1)
	s.LineTo(o.X2, o.Y2)
	if err := p.strokeLine(defaultLine); err != nil {
		return err
	}
	// Heads are solid even on dashed shafts.
	s.ClearDash()
	angle := rad(o.HeadAngle)
	if err := arrowHead(p, o.X1, o.Y1, o.X2, o.Y2, o.HeadSize, angle); err != nil {
		return err
	}
	if o.DoubleEnd {
		return arrowHead(p, o.X2, o.Y2, o.X1, o.Y1, o.HeadSize, angle)
	}
	return nil
}

// VectorOptions configures an arrow from the origin given either as
// components or as magnitude and angle.
type VectorOptions struct {
	DX, DY         float64 // dx,dy; or magnitude (100) and angle in degrees (0)
	HeadSize       float64 // headSize, default 10
	ShowComponents bool    // showComponents, dashed X and Y projections
}

func vectorOptions(p scene.Props) VectorOptions {
	o := VectorOptions{
		HeadSize:       math.Max(0, p.Num(10, "headSize")),
		ShowComponents: p.Bool(false, "showComponents", "components"),
	}
	dx, okx := p.NumOK("dx")
	dy, oky := p.NumOK("dy")
	if okx || oky {
		o.DX, o.DY = dx, dy
		return o
	}
	m := p.Num(100, "magnitude", "length")
	a := rad(p.Num(0, "angle"))
	o.DX, o.DY = m*math.Cos(a), m*math.Sin(a)
	return o
}

func drawVector(p *Pen, props scene.Props) error {
	o := vectorOptions(props)
	if o.ShowComponents {
		s := p.Surface
		s.SetDash(5, 5)
		s.MoveTo(0, 0)
		s.LineTo(o.DX, 0)
		s.MoveTo(o.DX, 0)
		s.LineTo(o.DX, o.DY)
		err := p.strokeWith(p.lineColor(defaultLine), math.Max(1, p.LineWidth/2))
		s.ClearDash()
		if err != nil {
			return err
		}
	}
	return arrow(p, ArrowOptions{
		Segment:   Segment{X2: o.DX, Y2: o.DY},
		HeadSize:  o.HeadSize,
		HeadAngle: 30,
	})
}

// BeamOptions configures a light beam: a soft halo under a solid core
// ending in an arrowhead.
type BeamOptions struct {
	Segment
	Width    float64 // width|beamWidth, default 4
	HeadSize float64 // headSize, default 12
}

func beamOptions(p scene.Props) BeamOptions {
	return BeamOptions{
		Segment:  segment(p, 200),
		Width:    math.Max(0, p.Num(4, "width", "beamWidth")),
		HeadSize: math.Max(0, p.Num(12, "headSize")),
	}
}

func drawBeam(p *Pen, props scene.Props) error {
	o := beamOptions(props)
	s := p.Surface
	c := p.lineColor("#f1c40f")

	halo := c
	halo.A *= 0.3
	s.MoveTo(o.X1, o.Y1)
	s.LineTo(o.X2, o.Y2)
	if err := p.strokeWith(halo, o.Width*3); err != nil {
		return err
	}
	s.MoveTo(o.X1, o.Y1)
	s.LineTo(o.X2, o.Y2)
	if err := p.strokeWith(c, o.Width); err != nil {
		return err
	}
	s.ClearDash()
	if o.HeadSize <= 0 || o.Length() == 0 {
		return nil
	}
	dir := math.Atan2(o.Y2-o.Y1, o.X2-o.X1)
	a := rad(30)
	s.MoveTo(o.X2, o.Y2)
	s.LineTo(o.X2-o.HeadSize*math.Cos(dir-a), o.Y2-o.HeadSize*math.Sin(dir-a))
	s.LineTo(o.X2-o.HeadSize*math.Cos(dir+a), o.Y2-o.HeadSize*math.Sin(dir+a))
	s.ClosePath()
	return p.fillWith(c)
}

// SpringOptions configures a zigzag coil between two points.
type SpringOptions struct {
	Segment
	Coils     int     // coils, default 8
	Amplitude float64 // amplitude|width, default 10
}

func springOptions(p scene.Props) SpringOptions {
	o := SpringOptions{
		Segment:   segment(p, 150),
		Coils:     int(p.Num(8, "coils")),
		Amplitude: p.Num(10, "amplitude", "width"),
	}
	if o.Coils < 1 {
		o.Coils = 8
	}
	return o
}

func drawSpring(p *Pen, props scene.Props) error {
	o := springOptions(props)
	length := o.Length()
	s := p.Surface
	if length == 0 {
		return nil
	}
	ux, uy := (o.X2-o.X1)/length, (o.Y2-o.Y1)/length
	nx, ny := -uy, ux

	// Straight leads take a tenth of the length at each end.
	lead := length * 0.1
	body := length - 2*lead
	at := func(along, across float64) (float64, float64) {
		return o.X1 + ux*along + nx*across, o.Y1 + uy*along + ny*across
	}

	s.MoveTo(o.X1, o.Y1)
	s.LineTo(at(lead, 0))
	n := 2 * o.Coils
	for i := 0; i < n; i++ {
		side := o.Amplitude
		if i%2 == 1 {
			side = -side
		}
		s.LineTo(at(lead+body*(float64(i)+0.5)/float64(n), side))
	}
	s.LineTo(at(length-lead, 0))
	s.LineTo(o.X2, o.Y2)
	return p.strokeLine(defaultLine)
}
