// Package anim resolves declarative shapes into concrete property values
// at a point in time.
package anim

import (
	"math"

	"github.com/san-kum/animato/internal/scene"
)

// ValueAt evaluates a single animation at time t.
//
// Before the window the value is From, after it To. A window with
// End <= Start snaps to To at Start.
func ValueAt(a scene.Animation, t float64) scene.Value {
	if t < a.Start {
		return a.From
	}
	if a.End <= a.Start || t > a.End {
		return a.To
	}
	return Interpolate(a.From, a.To, (t-a.Start)/(a.End-a.Start), a.Easing)
}

// Resolve returns the shape's properties at time t. Animations apply in
// declaration order, so a later animation on the same property wins.
func Resolve(sh scene.Shape, t float64) scene.Props {
	props := sh.Props.Clone()
	for _, a := range sh.Animations {
		props[a.Property] = ValueAt(a, t)
	}
	return props
}

// ResolveObject resolves sh into a drawable object at time t.
func ResolveObject(sh scene.Shape, t float64) scene.Object {
	return scene.Object{ID: sh.ID, Type: sh.Type, Properties: Resolve(sh, t)}
}

// ResolveFrame resolves every shape of a declarative scene at time t,
// preserving declaration order.
func ResolveFrame(s *scene.Scene, t float64) scene.Frame {
	f := scene.Frame{Timestamp: t, Objects: make([]scene.Object, 0, len(s.Shapes))}
	for _, sh := range s.Shapes {
		f.Objects = append(f.Objects, ResolveObject(sh, t))
	}
	return f
}

// DefaultStep is the sampling interval used when a scene has no fps hint.
const DefaultStep = 16.0

// StepFor returns the bake interval for s: 1000/fps when an fps hint is
// present, DefaultStep otherwise.
func StepFor(s *scene.Scene) float64 {
	if s != nil && s.FPS > 0 {
		return 1000 / s.FPS
	}
	return DefaultStep
}

// Bake samples a declarative scene into precomputed frames at
// t = 0, step, 2*step, ... and always includes t = duration. Scenes that
// are already precomputed are returned unchanged. A non-positive step
// selects StepFor(s).
func Bake(s *scene.Scene, step float64) *scene.Scene {
	if s == nil || s.Form() != scene.Declarative {
		return s
	}
	if step <= 0 || math.IsNaN(step) {
		step = StepFor(s)
	}

	out := &scene.Scene{
		ID:          s.ID,
		Title:       s.Title,
		Description: s.Description,
		Duration:    s.Duration,
		FPS:         s.FPS,
		Metadata:    s.Metadata,
	}
	ts := SampleTimes(s.Duration, step)
	out.Frames = make([]scene.Frame, 0, len(ts))
	for _, t := range ts {
		out.Frames = append(out.Frames, ResolveFrame(s, t))
	}
	return out
}

// SampleTimes returns 0, step, 2*step, ... up to duration, plus duration
// itself when it does not fall on the grid.
func SampleTimes(duration, step float64) []float64 {
	if step <= 0 || math.IsNaN(step) {
		step = DefaultStep
	}
	if duration <= 0 {
		return []float64{0}
	}
	n := int(math.Floor(duration / step))
	ts := make([]float64, 0, n+2)
	for i := 0; i <= n; i++ {
		ts = append(ts, float64(i)*step)
	}
	if ts[len(ts)-1] < duration {
		ts = append(ts, duration)
	}
	return ts
}

// Sample evaluates one property of one object at each time in ts. It
// works on either scene form and reports false for times where the object
// or a numeric value is absent.
func Sample(s *scene.Scene, id, property string, ts []float64) ([]float64, []bool) {
	vals := make([]float64, len(ts))
	oks := make([]bool, len(ts))
	for i, t := range ts {
		obj, ok := ObjectAt(s, id, t)
		if !ok {
			continue
		}
		vals[i], oks[i] = obj.Properties.NumOK(property)
	}
	return vals, oks
}

// ObjectAt finds the object with the given id at time t in either scene form.
func ObjectAt(s *scene.Scene, id string, t float64) (scene.Object, bool) {
	switch s.Form() {
	case scene.Declarative:
		sh, ok := s.Shape(id)
		if !ok {
			return scene.Object{}, false
		}
		return ResolveObject(*sh, t), true
	case scene.Precomputed:
		f, ok := s.FrameAt(t)
		if !ok {
			return scene.Object{}, false
		}
		obj, ok := f.Object(id)
		if !ok {
			return scene.Object{}, false
		}
		return *obj, true
	}
	return scene.Object{}, false
}
