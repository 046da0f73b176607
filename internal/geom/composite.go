package geom

import (
	"math"

	"github.com/san-kum/animato/internal/scene"
)

// OrbitOptions configures a dashed circular orbit with a body on it.
type OrbitOptions struct {
	Radius       float64 // radius|orbitRadius, default 100
	Angle        float64 // angle of the body in degrees, default 0
	BodyRadius   float64 // bodyRadius|planetRadius, default 8
	CenterRadius float64 // centerRadius, default 0 (no central body)
	CenterColor  string  // centerColor, default #f1c40f
	ShowPath     bool    // showPath, default true
}

func orbitOptions(p scene.Props) OrbitOptions {
	return OrbitOptions{
		Radius:       math.Max(0, p.Num(100, "radius", "orbitRadius")),
		Angle:        p.Num(0, "angle"),
		BodyRadius:   math.Max(0, p.Num(8, "bodyRadius", "planetRadius")),
		CenterRadius: math.Max(0, p.Num(0, "centerRadius")),
		CenterColor:  p.Str("#f1c40f", "centerColor"),
		ShowPath:     p.Bool(true, "showPath"),
	}
}

func drawOrbit(p *Pen, props scene.Props) error {
	o := orbitOptions(props)
	s := p.Surface
	if o.ShowPath {
		s.SetDash(4, 4)
		ellipsePath(s, 0, 0, o.Radius, o.Radius)
		err := p.strokeWith(p.lineColor("#999999"), math.Max(1, p.LineWidth))
		s.ClearDash()
		if err != nil {
			return err
		}
	}
	if o.CenterRadius > 0 {
		c, ok := ParseColor(o.CenterColor)
		if ok {
			ellipsePath(s, 0, 0, o.CenterRadius, o.CenterRadius)
			if err := p.fillWith(c); err != nil {
				return err
			}
		}
	}
	a := rad(o.Angle)
	ellipsePath(s, o.Radius*math.Cos(a), o.Radius*math.Sin(a), o.BodyRadius, o.BodyRadius)
	return p.fillWith(p.fillColor("#3498db"))
}

// PendulumOptions configures a pivot, string and bob hanging from the
// origin. Angle 0 hangs straight down; positive swings right.
type PendulumOptions struct {
	Length      float64 // length, default 150
	Angle       float64 // angle in degrees, default 0
	BobRadius   float64 // bobRadius, default 15
	PivotRadius float64 // pivotRadius, default 4
}

func pendulumOptions(p scene.Props) PendulumOptions {
	return PendulumOptions{
		Length:      math.Max(0, p.Num(150, "length")),
		Angle:       p.Num(0, "angle"),
		BobRadius:   math.Max(0, p.Num(15, "bobRadius", "radius")),
		PivotRadius: math.Max(0, p.Num(4, "pivotRadius")),
	}
}

// Bob returns the bob centre in local space.
func (o PendulumOptions) Bob() scene.Point {
	a := rad(o.Angle)
	return scene.Point{X: o.Length * math.Sin(a), Y: o.Length * math.Cos(a)}
}

func drawPendulum(p *Pen, props scene.Props) error {
	o := pendulumOptions(props)
	s := p.Surface
	bob := o.Bob()
	line := p.lineColor(defaultLine)

	s.MoveTo(0, 0)
	s.LineTo(bob.X, bob.Y)
	if err := p.strokeWith(line, p.LineWidth); err != nil {
		return err
	}
	ellipsePath(s, 0, 0, o.PivotRadius, o.PivotRadius)
	if err := p.fillWith(line); err != nil {
		return err
	}
	ellipsePath(s, bob.X, bob.Y, o.BobRadius, o.BobRadius)
	return p.fillWith(p.fillColor("#e74c3c"))
}
