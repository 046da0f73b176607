package scene

import (
	"errors"
	"strings"
	"testing"
)

func framesAt(ts ...float64) *Scene {
	s := &Scene{ID: "frames"}
	for _, t := range ts {
		s.Frames = append(s.Frames, Frame{Timestamp: t})
	}
	if len(ts) > 0 {
		s.Duration = ts[len(ts)-1]
	}
	return s
}

func TestFrameAt(t *testing.T) {
	s := framesAt(0, 100, 200, 200, 300)

	tests := []struct {
		name  string
		query float64
		want  float64
		index int
	}{
		{"before first", -50, 0, 0},
		{"exact first", 0, 0, 0},
		{"between", 150, 100, 1},
		{"exact match", 100, 100, 1},
		{"duplicate timestamps take last", 200, 200, 3},
		{"past last", 10_000, 300, 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f, ok := s.FrameAt(tt.query)
			if !ok {
				t.Fatal("expected a frame")
			}
			if f.Timestamp != tt.want {
				t.Errorf("FrameAt(%v) timestamp = %v, want %v", tt.query, f.Timestamp, tt.want)
			}
			if f != &s.Frames[tt.index] {
				t.Errorf("FrameAt(%v) returned wrong frame, want index %d", tt.query, tt.index)
			}
		})
	}
}

func TestFrameAt_Empty(t *testing.T) {
	var nilScene *Scene
	if _, ok := nilScene.FrameAt(0); ok {
		t.Error("nil scene should have no frame")
	}
	if _, ok := (&Scene{}).FrameAt(0); ok {
		t.Error("empty scene should have no frame")
	}
}

func TestForm(t *testing.T) {
	if got := (&Scene{}).Form(); got != Empty {
		t.Errorf("expected empty, got %v", got)
	}
	if got := framesAt(0).Form(); got != Precomputed {
		t.Errorf("expected precomputed, got %v", got)
	}
	s := &Scene{Shapes: []Shape{{ID: "a", Type: Circle}}}
	if got := s.Form(); got != Declarative {
		t.Errorf("expected declarative, got %v", got)
	}
}

func TestKindKnown(t *testing.T) {
	if len(Kinds()) != 20 {
		t.Fatalf("expected 20 kinds, got %d", len(Kinds()))
	}
	for _, k := range Kinds() {
		if !k.Known() {
			t.Errorf("%s should be known", k)
		}
	}
	if Kind("hexagon").Known() {
		t.Error("hexagon should not be known")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name  string
		scene *Scene
		field string
	}{
		{"decreasing timestamps", framesAt(0, 200, 100), "frames[2].timestamp"},
		{
			"duplicate shape id",
			&Scene{Shapes: []Shape{{ID: "a", Type: Circle}, {ID: "a", Type: Text}}},
			"shapes[1].id",
		},
		{
			"short duration",
			&Scene{Duration: 100, Shapes: []Shape{{ID: "a", Type: Circle, Animations: []Animation{{Property: "x", End: 500}}}}},
			"duration",
		},
		{
			"both forms",
			&Scene{Duration: 10, Frames: []Frame{{}}, Shapes: []Shape{{ID: "a"}}},
			"scene",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Validate(tt.scene)
			if err == nil {
				t.Fatal("expected error")
			}
			if !errors.Is(err, ErrInvalidScene) {
				t.Errorf("expected ErrInvalidScene, got %v", err)
			}
			if !strings.Contains(err.Error(), tt.field) {
				t.Errorf("expected error on %s, got %v", tt.field, err)
			}
		})
	}
}

func TestNormalize_RaisesDuration(t *testing.T) {
	s := &Scene{
		Duration: 100,
		Shapes: []Shape{{
			ID: "a", Type: Circle,
			Animations: []Animation{{Property: "x", From: Number(0), To: Number(1), Start: 0, End: 3000}},
		}},
	}
	if err := Normalize(s); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if s.Duration != 3000 {
		t.Errorf("expected duration raised to 3000, got %v", s.Duration)
	}
}

func TestPropsAccessors(t *testing.T) {
	p := Props{
		"r":     Number(12),
		"label": String("H2O"),
		"n":     String("4.5"),
		"on":    Bool(true),
		"pts":   Points(Point{1, 2}, Point{3, 4}),
	}

	if got := p.Num(20, "radius", "r"); got != 12 {
		t.Errorf("alias lookup = %v, want 12", got)
	}
	if got := p.Num(20, "radius"); got != 20 {
		t.Errorf("default = %v, want 20", got)
	}
	if got := p.Num(0, "n"); got != 4.5 {
		t.Errorf("numeric string = %v, want 4.5", got)
	}
	if got := p.Str("", "label"); got != "H2O" {
		t.Errorf("Str = %q", got)
	}
	if !p.Bool(false, "on") {
		t.Error("Bool should be true")
	}
	if got := p.Points("pts"); len(got) != 2 || got[1] != (Point{3, 4}) {
		t.Errorf("Points = %v", got)
	}
	if p.Has("missing") {
		t.Error("Has(missing) should be false")
	}

	c := p.Clone()
	c["r"] = Number(99)
	if p.Num(0, "r") != 12 {
		t.Error("Clone should not alias the original")
	}
}
