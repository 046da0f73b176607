// Package geomtest provides a recording Surface for drawing tests.
package geomtest

import (
	"fmt"
	"math"
	"strings"

	"github.com/gogpu/gg"
	"github.com/gogpu/gg/text"
)

// Call is one recorded surface method invocation.
type Call struct {
	Name string
	Args []float64
	Text string
}

func (c Call) String() string {
	if c.Text != "" {
		return fmt.Sprintf("%s(%q %v)", c.Name, c.Text, c.Args)
	}
	return fmt.Sprintf("%s%v", c.Name, c.Args)
}

type matrix struct{ a, b, c, d, e, f float64 }

var identity = matrix{a: 1, d: 1}

func (m matrix) mul(n matrix) matrix {
	return matrix{
		a: m.a*n.a + m.c*n.b,
		b: m.b*n.a + m.d*n.b,
		c: m.a*n.c + m.c*n.d,
		d: m.b*n.c + m.d*n.d,
		e: m.a*n.e + m.c*n.f + m.e,
		f: m.b*n.e + m.d*n.f + m.f,
	}
}

// Recorder implements geom.Surface by logging every call. It tracks the
// transform stack and dash state so tests can assert on them.
type Recorder struct {
	W, H  int
	Calls []Call

	// Dash is the active dash pattern; nil when cleared.
	Dash []float64
	// Depth is the current Push nesting.
	Depth int

	m     matrix
	stack []matrix
	face  text.Face
}

func NewRecorder(w, h int) *Recorder {
	return &Recorder{W: w, H: h, m: identity}
}

func (r *Recorder) record(name string, args ...float64) {
	r.Calls = append(r.Calls, Call{Name: name, Args: args})
}

// Count reports how many times the named method was called.
func (r *Recorder) Count(name string) int {
	n := 0
	for _, c := range r.Calls {
		if c.Name == name {
			n++
		}
	}
	return n
}

// Texts returns every string drawn, in order.
func (r *Recorder) Texts() []string {
	var out []string
	for _, c := range r.Calls {
		if c.Name == "DrawStringAnchored" {
			out = append(out, c.Text)
		}
	}
	return out
}

// Reset forgets recorded calls but keeps transform and dash state.
func (r *Recorder) Reset() { r.Calls = nil }

func (r *Recorder) String() string {
	parts := make([]string, len(r.Calls))
	for i, c := range r.Calls {
		parts[i] = c.String()
	}
	return strings.Join(parts, "\n")
}

func (r *Recorder) Width() int  { return r.W }
func (r *Recorder) Height() int { return r.H }

func (r *Recorder) ClearWithColor(c gg.RGBA)       { r.record("ClearWithColor", c.R, c.G, c.B, c.A) }
func (r *Recorder) SetRGBA(cr, cg, cb, ca float64) { r.record("SetRGBA", cr, cg, cb, ca) }
func (r *Recorder) SetLineWidth(w float64)         { r.record("SetLineWidth", w) }
func (r *Recorder) SetLineCap(c gg.LineCap)        { r.record("SetLineCap", float64(c)) }

func (r *Recorder) SetDash(lengths ...float64) {
	r.Dash = append([]float64(nil), lengths...)
	r.record("SetDash", lengths...)
}

func (r *Recorder) ClearDash() {
	r.Dash = nil
	r.record("ClearDash")
}

func (r *Recorder) MoveTo(x, y float64)              { r.record("MoveTo", x, y) }
func (r *Recorder) LineTo(x, y float64)              { r.record("LineTo", x, y) }
func (r *Recorder) QuadraticTo(cx, cy, x, y float64) { r.record("QuadraticTo", cx, cy, x, y) }
func (r *Recorder) CubicTo(a, b, c, d, x, y float64) { r.record("CubicTo", a, b, c, d, x, y) }
func (r *Recorder) ClosePath()                       { r.record("ClosePath") }
func (r *Recorder) ClearPath()                       { r.record("ClearPath") }
func (r *Recorder) NewSubPath()                      { r.record("NewSubPath") }

func (r *Recorder) Fill() error {
	r.record("Fill")
	return nil
}

func (r *Recorder) Stroke() error {
	r.record("Stroke")
	return nil
}

func (r *Recorder) FillPreserve() error {
	r.record("FillPreserve")
	return nil
}

func (r *Recorder) StrokePreserve() error {
	r.record("StrokePreserve")
	return nil
}

func (r *Recorder) SetFont(face text.Face) {
	r.face = face
	r.record("SetFont")
}

func (r *Recorder) MeasureString(s string) (float64, float64) {
	return float64(len(s)) * 8, 16
}

func (r *Recorder) DrawStringAnchored(s string, x, y, ax, ay float64) {
	r.Calls = append(r.Calls, Call{Name: "DrawStringAnchored", Args: []float64{x, y, ax, ay}, Text: s})
}

func (r *Recorder) Push() {
	r.stack = append(r.stack, r.m)
	r.Depth++
	r.record("Push")
}

func (r *Recorder) Pop() {
	if n := len(r.stack); n > 0 {
		r.m = r.stack[n-1]
		r.stack = r.stack[:n-1]
		r.Depth--
	}
	r.record("Pop")
}

func (r *Recorder) Identity() {
	r.m = identity
	r.record("Identity")
}

func (r *Recorder) Translate(x, y float64) {
	r.m = r.m.mul(matrix{a: 1, d: 1, e: x, f: y})
	r.record("Translate", x, y)
}

func (r *Recorder) Rotate(angle float64) {
	s, c := math.Sincos(angle)
	r.m = r.m.mul(matrix{a: c, b: s, c: -s, d: c})
	r.record("Rotate", angle)
}

func (r *Recorder) Scale(x, y float64) {
	r.m = r.m.mul(matrix{a: x, d: y})
	r.record("Scale", x, y)
}

func (r *Recorder) TransformPoint(x, y float64) (float64, float64) {
	return r.m.a*x + r.m.c*y + r.m.e, r.m.b*x + r.m.d*y + r.m.f
}
