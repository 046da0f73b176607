package geom

import (
	"math"

	"github.com/san-kum/animato/internal/scene"
)

// ArcOptions configures a circular arc around the origin. Angles are in
// degrees, measured clockwise from the positive x axis.
type ArcOptions struct {
	Radius     float64 // radius|r, default 50
	StartAngle float64 // startAngle, default 0
	EndAngle   float64 // endAngle, default 180
	Clockwise  bool    // clockwise, default true
}

func arcOptions(p scene.Props) ArcOptions {
	o := ArcOptions{
		Radius:     math.Max(0, p.Num(50, "radius", "r")),
		StartAngle: p.Num(0, "startAngle"),
		EndAngle:   p.Num(180, "endAngle"),
		Clockwise:  true,
	}
	if p.Has("anticlockwise") || p.Has("counterclockwise") {
		o.Clockwise = !p.Bool(false, "anticlockwise", "counterclockwise")
	}
	o.Clockwise = p.Bool(o.Clockwise, "clockwise")
	return o
}

func drawArc(p *Pen, props scene.Props) error {
	o := arcOptions(props)
	a0 := rad(o.StartAngle)
	arcPath(p.Surface, 0, 0, o.Radius, a0, sweepFor(a0, rad(o.EndAngle), o.Clockwise), true)
	if p.Fill != nil {
		p.setColor(*p.Fill)
		if err := p.Surface.FillPreserve(); err != nil {
			p.Surface.ClearPath()
			return err
		}
	}
	return p.strokeLine(defaultLine)
}

// WaveOptions configures a sine curve centred on the origin:
// y = Amplitude * sin(2π * Frequency * x / Length + Phase).
type WaveOptions struct {
	Length    float64 // length|width, default 200
	Amplitude float64 // amplitude, default 20
	Frequency float64 // frequency in cycles per length, default 1
	Phase     float64 // phase in radians, default 0
}

// waveStep is the fixed sampling interval along x.
const waveStep = 2.0

func waveOptions(p scene.Props) WaveOptions {
	return WaveOptions{
		Length:    math.Max(0, p.Num(200, "length", "width")),
		Amplitude: p.Num(20, "amplitude"),
		Frequency: p.Num(1, "frequency"),
		Phase:     p.Num(0, "phase"),
	}
}

func wavePoints(o WaveOptions) []scene.Point {
	n := int(math.Floor(o.Length / waveStep))
	pts := make([]scene.Point, 0, n+2)
	x0 := -o.Length / 2
	y := func(x float64) float64 {
		if o.Length == 0 {
			return o.Amplitude * math.Sin(o.Phase)
		}
		return o.Amplitude * math.Sin(2*math.Pi*o.Frequency*(x-x0)/o.Length+o.Phase)
	}
	for i := 0; i <= n; i++ {
		x := x0 + float64(i)*waveStep
		pts = append(pts, scene.Point{X: x, Y: y(x)})
	}
	if end := x0 + o.Length; pts[len(pts)-1].X < end {
		pts = append(pts, scene.Point{X: end, Y: y(end)})
	}
	return pts
}

func drawWave(p *Pen, props scene.Props) error {
	polylinePath(p.Surface, wavePoints(waveOptions(props)), false)
	return p.strokeLine(defaultLine)
}

// GridOptions configures evenly spaced lines centred on the origin.
type GridOptions struct {
	Rows   int     // rows, default 10
	Cols   int     // cols|columns, default 10
	Width  float64 // width, default 200
	Height float64 // height, default 200
}

func gridOptions(p scene.Props) GridOptions {
	o := GridOptions{
		Rows:   int(p.Num(10, "rows")),
		Cols:   int(p.Num(10, "cols", "columns")),
		Width:  math.Abs(p.Num(200, "width")),
		Height: math.Abs(p.Num(200, "height")),
	}
	if o.Rows < 1 {
		o.Rows = 1
	}
	if o.Cols < 1 {
		o.Cols = 1
	}
	return o
}

func drawGrid(p *Pen, props scene.Props) error {
	o := gridOptions(props)
	s := p.Surface
	x0, y0 := -o.Width/2, -o.Height/2
	for r := 0; r <= o.Rows; r++ {
		y := y0 + o.Height*float64(r)/float64(o.Rows)
		s.MoveTo(x0, y)
		s.LineTo(x0+o.Width, y)
	}
	for c := 0; c <= o.Cols; c++ {
		x := x0 + o.Width*float64(c)/float64(o.Cols)
		s.MoveTo(x, y0)
		s.LineTo(x, y0+o.Height)
	}
	return p.strokeLine("#cccccc")
}
