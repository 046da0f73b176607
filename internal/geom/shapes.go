package geom

import (
	"math"

	"github.com/san-kum/animato/internal/scene"
)

const (
	defaultLine = "#333333"
	defaultFill = "#333333"
)

// CircleOptions configures a circle centred on the origin.
type CircleOptions struct {
	Radius float64 // radius|r, default 20
}

func circleOptions(p scene.Props) CircleOptions {
	return CircleOptions{Radius: math.Max(0, p.Num(20, "radius", "r"))}
}

func drawCircle(p *Pen, props scene.Props) error {
	o := circleOptions(props)
	ellipsePath(p.Surface, 0, 0, o.Radius, o.Radius)
	return p.paint()
}

// EllipseOptions configures an axis-aligned ellipse.
type EllipseOptions struct {
	RX float64 // rx|radiusX, default 30
	RY float64 // ry|radiusY, default 20
}

func ellipseOptions(p scene.Props) EllipseOptions {
	return EllipseOptions{
		RX: math.Max(0, p.Num(30, "rx", "radiusX")),
		RY: math.Max(0, p.Num(20, "ry", "radiusY")),
	}
}

func drawEllipse(p *Pen, props scene.Props) error {
	o := ellipseOptions(props)
	ellipsePath(p.Surface, 0, 0, o.RX, o.RY)
	return p.paint()
}

// RectOptions configures a rectangle centred on the origin. Width and
// Height are required.
type RectOptions struct {
	Width        float64 // width|w
	Height       float64 // height|h
	CornerRadius float64 // cornerRadius|radius, clamped to half of each side
}

func rectOptions(p scene.Props) (RectOptions, error) {
	w, okw := p.NumOK("width", "w")
	h, okh := p.NumOK("height", "h")
	if !okw || !okh {
		return RectOptions{}, missing(scene.Rectangle, "width and height")
	}
	w, h = math.Abs(w), math.Abs(h)
	r := math.Max(0, p.Num(0, "cornerRadius", "radius"))
	r = math.Min(r, math.Min(w/2, h/2))
	return RectOptions{Width: w, Height: h, CornerRadius: r}, nil
}

func drawRectangle(p *Pen, props scene.Props) error {
	o, err := rectOptions(props)
	if err != nil {
		return err
	}
	roundedRectPath(p.Surface, o.Width, o.Height, o.CornerRadius)
	return p.paint()
}

// TriangleOptions configures a triangle: three explicit points, or an
// equilateral triangle of the given circumradius pointing up.
type TriangleOptions struct {
	Points []scene.Point // points, exactly three
	Radius float64       // radius|size, default 50
}

func triangleOptions(p scene.Props) TriangleOptions {
	o := TriangleOptions{Radius: math.Max(0, p.Num(50, "radius", "size"))}
	if pts := p.Points("points"); len(pts) == 3 {
		o.Points = pts
	}
	return o
}

func drawTriangle(p *Pen, props scene.Props) error {
	o := triangleOptions(props)
	pts := o.Points
	if pts == nil {
		pts = regularVertices(3, o.Radius)
	}
	polylinePath(p.Surface, pts, true)
	return p.paint()
}

// StarOptions configures a star with alternating outer and inner vertices.
type StarOptions struct {
	Points int     // spikes|points, default 5
	Outer  float64 // outerRadius|radius, default 50
	Inner  float64 // innerRadius, default Outer/2
}

func starOptions(p scene.Props) StarOptions {
	o := StarOptions{
		Points: int(p.Num(5, "spikes", "points")),
		Outer:  math.Max(0, p.Num(50, "outerRadius", "radius")),
	}
	if o.Points < 2 {
		o.Points = 5
	}
	o.Inner = math.Max(0, p.Num(o.Outer/2, "innerRadius"))
	return o
}

func drawStar(p *Pen, props scene.Props) error {
	o := starOptions(props)
	pts := make([]scene.Point, 0, 2*o.Points)
	for i := 0; i < 2*o.Points; i++ {
		r := o.Outer
		if i%2 == 1 {
			r = o.Inner
		}
		a := -math.Pi/2 + math.Pi*float64(i)/float64(o.Points)
		pts = append(pts, scene.Point{X: r * math.Cos(a), Y: r * math.Sin(a)})
	}
	polylinePath(p.Surface, pts, true)
	return p.paint()
}

// PolygonOptions configures a polygon from explicit points or as a
// regular polygon.
type PolygonOptions struct {
	Points []scene.Point // points, at least three
	Sides  int           // sides, default 6
	Radius float64       // radius, default 50
}

func polygonOptions(p scene.Props) PolygonOptions {
	o := PolygonOptions{
		Sides:  int(p.Num(6, "sides")),
		Radius: math.Max(0, p.Num(50, "radius", "r")),
	}
	if o.Sides < 3 {
		o.Sides = 6
	}
	if pts := p.Points("points"); len(pts) >= 3 {
		o.Points = pts
	}
	return o
}

func drawPolygon(p *Pen, props scene.Props) error {
	o := polygonOptions(props)
	pts := o.Points
	if pts == nil {
		pts = regularVertices(o.Sides, o.Radius)
	}
	polylinePath(p.Surface, pts, true)
	return p.paint()
}
