package scene

import (
	"sort"
)

// Kind is the shape type tag.
type Kind string

const (
	Circle    Kind = "circle"
	Rectangle Kind = "rectangle"
	Text      Kind = "text"
	Line      Kind = "line"
	Arrow     Kind = "arrow"
	Ellipse   Kind = "ellipse"
	Triangle  Kind = "triangle"
	Star      Kind = "star"
	Polygon   Kind = "polygon"
	Arc       Kind = "arc"
	Wave      Kind = "wave"
	Grid      Kind = "grid"
	Vector    Kind = "vector"
	Molecule  Kind = "molecule"
	Beam      Kind = "beam"
	Particle  Kind = "particle"
	Orbit     Kind = "orbit"
	Pendulum  Kind = "pendulum"
	Spring    Kind = "spring"
	Path      Kind = "path"
)

var kinds = []Kind{
	Circle, Rectangle, Text, Line, Arrow, Ellipse, Triangle, Star, Polygon, Arc,
	Wave, Grid, Vector, Molecule, Beam, Particle, Orbit, Pendulum, Spring, Path,
}

// Kinds lists every shape type in declaration order.
func Kinds() []Kind {
	out := make([]Kind, len(kinds))
	copy(out, kinds)
	return out
}

func (k Kind) Known() bool {
	for _, known := range kinds {
		if k == known {
			return true
		}
	}
	return false
}

// Animation is one time-bounded transition of a single property.
type Animation struct {
	Property string  `json:"property" yaml:"property"`
	From     Value   `json:"from" yaml:"from"`
	To       Value   `json:"to" yaml:"to"`
	Start    float64 `json:"start" yaml:"start"`
	End      float64 `json:"end" yaml:"end"`
	Easing   string  `json:"easing,omitempty" yaml:"easing,omitempty"`
}

// Shape is a declarative drawable with its attached animations.
type Shape struct {
	ID         string      `json:"id" yaml:"id"`
	Type       Kind        `json:"type" yaml:"type"`
	Props      Props       `json:"props,omitempty" yaml:"props,omitempty"`
	Animations []Animation `json:"animations,omitempty" yaml:"animations,omitempty"`
}

// Object is a fully resolved drawable at one instant.
type Object struct {
	ID         string `json:"id" yaml:"id"`
	Type       Kind   `json:"type" yaml:"type"`
	Properties Props  `json:"properties" yaml:"properties"`
}

// Frame is the set of objects visible at Timestamp.
type Frame struct {
	Timestamp float64  `json:"timestamp" yaml:"timestamp"`
	Objects   []Object `json:"objects" yaml:"objects"`
}

// Form distinguishes the two scene representations.
type Form int

const (
	Empty Form = iota
	Declarative
	Precomputed
)

func (f Form) String() string {
	switch f {
	case Declarative:
		return "declarative"
	case Precomputed:
		return "precomputed"
	}
	return "empty"
}

// Scene is one loaded visualization.
type Scene struct {
	ID          string         `json:"id" yaml:"id"`
	Title       string         `json:"title,omitempty" yaml:"title,omitempty"`
	Description string         `json:"description,omitempty" yaml:"description,omitempty"`
	Duration    float64        `json:"duration" yaml:"duration"`
	FPS         float64        `json:"fps,omitempty" yaml:"fps,omitempty"`
	Metadata    map[string]any `json:"metadata,omitempty" yaml:"metadata,omitempty"`
	Shapes      []Shape        `json:"shapes,omitempty" yaml:"shapes,omitempty"`
	Frames      []Frame        `json:"frames,omitempty" yaml:"frames,omitempty"`
}

func (s *Scene) Form() Form {
	switch {
	case s == nil:
		return Empty
	case len(s.Frames) > 0:
		return Precomputed
	case len(s.Shapes) > 0:
		return Declarative
	}
	return Empty
}

// FrameAt returns the frame with the greatest timestamp not after t.
// Queries before the first frame return the first frame.
func (s *Scene) FrameAt(t float64) (*Frame, bool) {
	if s == nil || len(s.Frames) == 0 {
		return nil, false
	}
	i := sort.Search(len(s.Frames), func(i int) bool {
		return s.Frames[i].Timestamp > t
	})
	if i == 0 {
		return &s.Frames[0], true
	}
	return &s.Frames[i-1], true
}

// ContentEnd is the latest frame timestamp or animation end in s.
func (s *Scene) ContentEnd() float64 {
	if s == nil {
		return 0
	}
	var end float64
	for _, f := range s.Frames {
		if f.Timestamp > end {
			end = f.Timestamp
		}
	}
	for _, sh := range s.Shapes {
		for _, a := range sh.Animations {
			if a.End > end {
				end = a.End
			}
			if a.Start > end {
				end = a.Start
			}
		}
	}
	return end
}

// Shape returns the declarative shape with the given id.
func (s *Scene) Shape(id string) (*Shape, bool) {
	for i := range s.Shapes {
		if s.Shapes[i].ID == id {
			return &s.Shapes[i], true
		}
	}
	return nil, false
}

// Object returns the object with the given id in f.
func (f *Frame) Object(id string) (*Object, bool) {
	for i := range f.Objects {
		if f.Objects[i].ID == id {
			return &f.Objects[i], true
		}
	}
	return nil, false
}
