package config

import (
	"math"
	"sort"

	"github.com/san-kum/animato/internal/scene"
)

type preset struct {
	description string
	build       func() *scene.Scene
}

var presets = map[string]preset{
	"bounce":   {"ball sliding across the canvas with ease-out and a colour change", bounce},
	"pendulum": {"swinging pendulum driven by an eased angle", pendulum},
	"orbit":    {"precomputed planet orbit with a motion trail target", orbit},
	"molecule": {"rotating water molecule with labelled atoms", molecule},
	"wave":     {"travelling sine wave with a growing amplitude", wave},
	"gallery":  {"one of every shape type, fading in", gallery},
}

// GetPreset builds a fresh copy of the named demo scene, or nil.
func GetPreset(name string) *scene.Scene {
	p, ok := presets[name]
	if !ok {
		return nil
	}
	s := p.build()
	s.ID = name
	if err := scene.Normalize(s); err != nil {
		return nil
	}
	return s
}

func ListPresets() []string {
	names := make([]string, 0, len(presets))
	for name := range presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func PresetDescription(name string) string {
	return presets[name].description
}

func num(v float64) scene.Value { return scene.Number(v) }
func str(v string) scene.Value  { return scene.String(v) }

func bounce() *scene.Scene {
	return &scene.Scene{
		Title:    "Moving ball",
		Duration: 3000,
		Shapes: []scene.Shape{
			{
				ID:    "floor",
				Type:  scene.Line,
				Props: scene.Props{"x1": num(50), "y1": num(360), "x2": num(750), "y2": num(360), "stroke": str("#7f8c8d"), "lineWidth": num(2)},
			},
			{
				ID:    "ball",
				Type:  scene.Circle,
				Props: scene.Props{"x": num(100), "y": num(300), "radius": num(30), "fill": str("#3498db")},
				Animations: []scene.Animation{
					{Property: "x", From: num(100), To: num(700), Start: 0, End: 2500, Easing: "ease-out"},
					{Property: "fill", From: str("#3498db"), To: str("#e74c3c"), Start: 1000, End: 2000},
				},
			},
			{
				ID:    "caption",
				Type:  scene.Text,
				Props: scene.Props{"x": num(400), "y": num(80), "text": str("ease-out"), "fontSize": num(24), "fill": str("#2c3e50")},
			},
		},
	}
}

func pendulum() *scene.Scene {
	return &scene.Scene{
		Title:    "Pendulum",
		Duration: 4000,
		Shapes: []scene.Shape{
			{
				ID:    "pendulum",
				Type:  scene.Pendulum,
				Props: scene.Props{"x": num(400), "y": num(120), "length": num(220), "angle": num(-40), "bobRadius": num(18), "fill": str("#8e44ad")},
				Animations: []scene.Animation{
					{Property: "angle", From: num(-40), To: num(40), Start: 0, End: 2000, Easing: "ease-in-out"},
					{Property: "angle", From: num(40), To: num(-40), Start: 2000, End: 4000, Easing: "ease-in-out"},
				},
			},
		},
	}
}

// orbit is precomputed, one frame per 40ms.
func orbit() *scene.Scene {
	const (
		step   = 40.0
		period = 4000.0
	)
	s := &scene.Scene{Title: "Orbit", Duration: period, FPS: 1000 / step}
	for t := 0.0; t <= period; t += step {
		a := 2 * math.Pi * t / period
		s.Frames = append(s.Frames, scene.Frame{
			Timestamp: t,
			Objects: []scene.Object{
				{ID: "sun", Type: scene.Circle, Properties: scene.Props{"x": num(400), "y": num(300), "radius": num(40), "fill": str("#f1c40f")}},
				{ID: "path", Type: scene.Circle, Properties: scene.Props{"x": num(400), "y": num(300), "radius": num(180), "stroke": str("#bdc3c7"), "lineDash": scene.Numbers(4, 4)}},
				{ID: "planet", Type: scene.Circle, Properties: scene.Props{"x": num(400 + 180*math.Cos(a)), "y": num(300 + 180*math.Sin(a)), "radius": num(12), "fill": str("#2980b9")}},
			},
		})
	}
	return s
}

func molecule() *scene.Scene {
	atoms := scene.List(
		scene.Props{"id": str("O"), "element": str("O"), "x": num(0), "y": num(0), "radius": num(24)},
		scene.Props{"id": str("H1"), "element": str("H"), "x": num(-60), "y": num(45)},
		scene.Props{"id": str("H2"), "element": str("H"), "x": num(60), "y": num(45)},
	)
	bonds := scene.List(
		scene.Props{"from": str("O"), "to": str("H1"), "order": num(1)},
		scene.Props{"from": str("O"), "to": str("H2"), "order": num(1)},
	)
	return &scene.Scene{
		Title:    "Water",
		Duration: 3000,
		Shapes: []scene.Shape{
			{
				ID:    "h2o",
				Type:  scene.Molecule,
				Props: scene.Props{"x": num(400), "y": num(300), "atoms": atoms, "bonds": bonds, "scale": num(1.5)},
				Animations: []scene.Animation{
					{Property: "rotation", From: num(0), To: num(360), Start: 0, End: 3000},
				},
			},
		},
	}
}

func wave() *scene.Scene {
	return &scene.Scene{
		Title:    "Wave",
		Duration: 2000,
		Shapes: []scene.Shape{
			{
				ID:    "wave",
				Type:  scene.Wave,
				Props: scene.Props{"x": num(400), "y": num(300), "length": num(600), "amplitude": num(10), "frequency": num(3), "stroke": str("#16a085"), "lineWidth": num(3)},
				Animations: []scene.Animation{
					{Property: "phase", From: num(0), To: num(720), Start: 0, End: 2000},
					{Property: "amplitude", From: num(10), To: num(60), Start: 0, End: 1000, Easing: "ease-in"},
				},
			},
		},
	}
}

func gallery() *scene.Scene {
	kinds := scene.Kinds()
	s := &scene.Scene{Title: "Shape gallery", Duration: 2000}
	for i, k := range kinds {
		x := 100 + float64(i%5)*150
		y := 90 + float64(i/5)*140
		props := scene.Props{"x": num(x), "y": num(y), "stroke": str("#2c3e50"), "fill": str("#a3c4f3"), "opacity": num(0)}
		switch k {
		case scene.Rectangle:
			props["width"], props["height"], props["cornerRadius"] = num(90), num(60), num(8)
		case scene.Text:
			props["text"] = str("text")
		case scene.Path:
			props["d"] = str("M -40 20 Q 0 -40 40 20 Z")
		case scene.Molecule:
			props["atoms"] = scene.List(
				scene.Props{"element": str("C"), "x": num(-20), "y": num(0)},
				scene.Props{"element": str("O"), "x": num(20), "y": num(0)},
			)
			props["bonds"] = scene.List(scene.Props{"from": num(0), "to": num(1), "order": num(2)})
		default:
			props["radius"] = num(40)
		}
		start := float64(i) * 50
		s.Shapes = append(s.Shapes, scene.Shape{
			ID:    string(k),
			Type:  k,
			Props: props,
			Animations: []scene.Animation{
				{Property: "opacity", From: num(0), To: num(1), Start: start, End: start + 600},
			},
		})
	}
	return s
}
