// Package render paints a scene at a playback time onto a geom.Surface.
package render

import (
	"errors"
	"hash/fnv"
	"math"

	"github.com/gogpu/gg"

	"github.com/san-kum/animato/internal/anim"
	"github.com/san-kum/animato/internal/geom"
	"github.com/san-kum/animato/internal/logging"
	"github.com/san-kum/animato/internal/playback"
	"github.com/san-kum/animato/internal/scene"
)

// Placeholder is shown when there is nothing to draw.
const Placeholder = "No visualization loaded"

const (
	DefaultWidth      = 800
	DefaultHeight     = 600
	DefaultBackground = "#ffffff"
)

type Options struct {
	Width      int
	Height     int
	Background string
	Fonts      *geom.FontBook

	// LiveResolve resolves declarative scenes at every render instead of
	// baking them into frames on first use.
	LiveResolve bool
}

func (o Options) withDefaults() Options {
	if o.Width <= 0 {
		o.Width = DefaultWidth
	}
	if o.Height <= 0 {
		o.Height = DefaultHeight
	}
	if o.Background == "" {
		o.Background = DefaultBackground
	}
	return o
}

// Stats summarizes one render pass.
type Stats struct {
	Drawn       int
	Skipped     int
	Placeholder bool
}

// Renderer owns a surface and repaints it fully on every call. It is not
// safe for concurrent use.
type Renderer struct {
	surface geom.Surface
	opts    Options
	bg      gg.RGBA
	pen     *geom.Pen

	baked  *scene.Scene
	source *scene.Scene
}

func New(s geom.Surface, opts Options) (*Renderer, error) {
	opts = opts.withDefaults()
	if opts.Fonts == nil {
		fonts, err := geom.NewFontBook()
		if err != nil {
			return nil, err
		}
		opts.Fonts = fonts
	}
	bg, ok := geom.ParseColor(opts.Background)
	if !ok {
		logging.Logger().Warn("unparsable background, using white", "background", opts.Background)
		bg = gg.RGBA{R: 1, G: 1, B: 1, A: 1}
	}
	bg.A = 1
	return &Renderer{
		surface: s,
		opts:    opts,
		bg:      bg,
		pen:     geom.NewPen(s, opts.Fonts),
	}, nil
}

func (r *Renderer) Options() Options { return r.opts }

// Render clears the surface, fills the background and draws the frame
// for st.CurrentTime. Objects draw in list order. A failing object is
// logged and skipped.
func (r *Renderer) Render(sc *scene.Scene, st playback.State) Stats {
	s := r.surface
	s.Identity()
	s.ClearDash()
	s.ClearPath()
	s.ClearWithColor(gg.RGBA{})
	s.ClearWithColor(r.bg)

	frame, ok := r.frame(sc, st.CurrentTime)
	if !ok {
		r.placeholder()
		return Stats{Placeholder: true}
	}

	var stats Stats
	for _, obj := range frame.Objects {
		if err := r.drawObject(obj, st.CurrentTime); err != nil {
			stats.Skipped++
			r.report(obj, err)
			continue
		}
		stats.Drawn++
	}
	return stats
}

func (r *Renderer) frame(sc *scene.Scene, t float64) (*scene.Frame, bool) {
	switch sc.Form() {
	case scene.Precomputed:
		return sc.FrameAt(t)
	case scene.Declarative:
		if r.opts.LiveResolve {
			f := anim.ResolveFrame(sc, t)
			return &f, true
		}
		if r.source != sc {
			r.source, r.baked = sc, anim.Bake(sc, 0)
		}
		return r.baked.FrameAt(t)
	}
	return nil, false
}

func (r *Renderer) drawObject(obj scene.Object, t float64) error {
	s := r.surface
	props := obj.Properties

	s.Push()
	defer func() {
		s.ClearDash()
		s.Pop()
	}()

	x, okx := props.NumOK("x")
	y, oky := props.NumOK("y")
	if okx || oky {
		s.Translate(x, y)
	}
	if deg, ok := props.NumOK("rotation", "rotate"); ok && deg != 0 {
		s.Rotate(deg * math.Pi / 180)
	}
	r.pen.Scale = 1
	if k, ok := props.NumOK("scale"); ok {
		s.Scale(k, k)
		r.pen.Scale = k
	}
	r.pen.Apply(geom.StyleFrom(props))
	r.pen.Seed = Seed(obj.ID, t)

	return geom.Draw(r.pen, obj.Type, props)
}

func (r *Renderer) report(obj scene.Object, err error) {
	log := logging.Logger()
	switch {
	case errors.Is(err, geom.ErrMissingProperty):
		log.Debug("object skipped", "id", obj.ID, "type", obj.Type, "error", err)
	default:
		log.Warn("object skipped", "id", obj.ID, "type", obj.Type, "error", err)
	}
}

func (r *Renderer) placeholder() {
	s := r.surface
	face := r.opts.Fonts.Face(geom.FontRegular, 18)
	if face == nil {
		return
	}
	s.SetFont(face)
	s.SetRGBA(0.55, 0.55, 0.55, 1)
	s.DrawStringAnchored(Placeholder, float64(s.Width())/2, float64(s.Height())/2, 0.5, 0.5)
}

// Seed derives the particle seed for an object at time t from its id and
// the whole millisecond.
func Seed(id string, t float64) int64 {
	h := fnv.New64a()
	h.Write([]byte(id))
	return int64(h.Sum64() ^ uint64(int64(math.Floor(t))))
}
