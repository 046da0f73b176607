package geom

import (
	"math"

	"github.com/san-kum/animato/internal/scene"
)

// kappa places cubic control points for a quarter ellipse.
const kappa = 0.5522847498307936

func rad(deg float64) float64 { return deg * math.Pi / 180 }

func ellipsePath(s Surface, cx, cy, rx, ry float64) {
	ox, oy := rx*kappa, ry*kappa
	s.MoveTo(cx+rx, cy)
	s.CubicTo(cx+rx, cy+oy, cx+ox, cy+ry, cx, cy+ry)
	s.CubicTo(cx-ox, cy+ry, cx-rx, cy+oy, cx-rx, cy)
	s.CubicTo(cx-rx, cy-oy, cx-ox, cy-ry, cx, cy-ry)
	s.CubicTo(cx+ox, cy-ry, cx+rx, cy-oy, cx+rx, cy)
	s.ClosePath()
}

// arcPath appends a circular arc from angle a0 sweeping by sweep radians
// (positive is clockwise in screen space). It starts a new subpath when
// move is set, otherwise it lines to the arc start.
func arcPath(s Surface, cx, cy, r, a0, sweep float64, move bool) {
	x0, y0 := cx+r*math.Cos(a0), cy+r*math.Sin(a0)
	if move {
		s.MoveTo(x0, y0)
	} else {
		s.LineTo(x0, y0)
	}
	if sweep == 0 || r <= 0 {
		return
	}
	n := int(math.Ceil(math.Abs(sweep) / (math.Pi / 2)))
	step := sweep / float64(n)
	alpha := 4.0 / 3.0 * math.Tan(step/4)
	for i := 0; i < n; i++ {
		t1 := a0 + float64(i)*step
		t2 := t1 + step
		c1, s1 := math.Cos(t1), math.Sin(t1)
		c2, s2 := math.Cos(t2), math.Sin(t2)
		s.CubicTo(
			cx+r*(c1-alpha*s1), cy+r*(s1+alpha*c1),
			cx+r*(c2+alpha*s2), cy+r*(s2-alpha*c2),
			cx+r*c2, cy+r*s2,
		)
	}
}

// sweepFor turns a start/end angle pair into a signed sweep in the
// requested direction. Spans of a full turn or more draw a full circle.
func sweepFor(a0, a1 float64, clockwise bool) float64 {
	d := a1 - a0
	full := 2 * math.Pi
	if clockwise {
		if d >= full {
			return full
		}
		for d < 0 {
			d += full
		}
		return d
	}
	if d <= -full {
		return -full
	}
	for d > 0 {
		d -= full
	}
	return d
}

// roundedRectPath traces a w×h rectangle centred on the origin with
// corner radius r, already clamped by the caller.
func roundedRectPath(s Surface, w, h, r float64) {
	x, y := -w/2, -h/2
	if r <= 0 {
		s.MoveTo(x, y)
		s.LineTo(x+w, y)
		s.LineTo(x+w, y+h)
		s.LineTo(x, y+h)
		s.ClosePath()
		return
	}
	k := r * kappa
	s.MoveTo(x+r, y)
	s.LineTo(x+w-r, y)
	s.CubicTo(x+w-r+k, y, x+w, y+r-k, x+w, y+r)
	s.LineTo(x+w, y+h-r)
	s.CubicTo(x+w, y+h-r+k, x+w-r+k, y+h, x+w-r, y+h)
	s.LineTo(x+r, y+h)
	s.CubicTo(x+r-k, y+h, x, y+h-r+k, x, y+h-r)
	s.LineTo(x, y+r)
	s.CubicTo(x, y+r-k, x+r-k, y, x+r, y)
	s.ClosePath()
}

func polylinePath(s Surface, pts []scene.Point, closed bool) {
	if len(pts) == 0 {
		return
	}
	s.MoveTo(pts[0].X, pts[0].Y)
	for _, p := range pts[1:] {
		s.LineTo(p.X, p.Y)
	}
	if closed {
		s.ClosePath()
	}
}

// regularVertices places n vertices on a circle of radius r, the first
// pointing straight up.
func regularVertices(n int, r float64) []scene.Point {
	pts := make([]scene.Point, n)
	for i := range pts {
		a := -math.Pi/2 + 2*math.Pi*float64(i)/float64(n)
		pts[i] = scene.Point{X: r * math.Cos(a), Y: r * math.Sin(a)}
	}
	return pts
}

// arrowHead fills a triangular head at (x2,y2) pointing away from
// (x1,y1), its sides spread by angle either way.
func arrowHead(p *Pen, x1, y1, x2, y2, size, angle float64) error {
	if size <= 0 || (x1 == x2 && y1 == y2) {
		return nil
	}
	dir := math.Atan2(y2-y1, x2-x1)
	s := p.Surface
	s.MoveTo(x2, y2)
	s.LineTo(x2-size*math.Cos(dir-angle), y2-size*math.Sin(dir-angle))
	s.LineTo(x2-size*math.Cos(dir+angle), y2-size*math.Sin(dir+angle))
	s.ClosePath()
	return p.fillWith(p.lineColor(defaultLine))
}
