package geom

import (
	"math"
	"math/rand"

	"github.com/san-kum/animato/internal/scene"
)

// ParticleOptions configures a scatter of dots within a ring.
type ParticleOptions struct {
	Count       int     // count, default 20
	Radius      float64 // radius|spread, default 50
	InnerRadius float64 // innerRadius, default 0
	Size        float64 // size|particleSize, default 2
	Seed        int64   // seed, default from the pen
}

func particleOptions(p scene.Props, seed int64) ParticleOptions {
	o := ParticleOptions{
		Count:       int(p.Num(20, "count", "particleCount")),
		Radius:      math.Max(0, p.Num(50, "radius", "spread")),
		InnerRadius: math.Max(0, p.Num(0, "innerRadius")),
		Size:        math.Max(0, p.Num(2, "size", "particleSize")),
		Seed:        seed,
	}
	if s, ok := p.NumOK("seed"); ok {
		o.Seed = int64(s)
	}
	if o.Count < 0 {
		o.Count = 0
	}
	if o.InnerRadius > o.Radius {
		o.InnerRadius, o.Radius = o.Radius, o.InnerRadius
	}
	return o
}

// scatter returns Count points uniformly distributed over the ring area.
func (o ParticleOptions) scatter() []scene.Point {
	rng := rand.New(rand.NewSource(o.Seed))
	pts := make([]scene.Point, o.Count)
	r0, r1 := o.InnerRadius*o.InnerRadius, o.Radius*o.Radius
	for i := range pts {
		r := math.Sqrt(r0 + rng.Float64()*(r1-r0))
		a := rng.Float64() * 2 * math.Pi
		pts[i] = scene.Point{X: r * math.Cos(a), Y: r * math.Sin(a)}
	}
	return pts
}

func drawParticle(p *Pen, props scene.Props) error {
	o := particleOptions(props, p.Seed)
	if o.Count == 0 || o.Size == 0 {
		return nil
	}
	for _, pt := range o.scatter() {
		ellipsePath(p.Surface, pt.X, pt.Y, o.Size, o.Size)
	}
	return p.fillWith(p.fillColor("#3498db"))
}
