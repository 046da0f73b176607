package geom

import (
	"fmt"
	"sync"

	"github.com/san-kum/animato/internal/scene"
)

// Drawer paints one shape type in object-local space.
type Drawer func(p *Pen, props scene.Props) error

var (
	drawersMu sync.RWMutex
	drawers   = map[scene.Kind]Drawer{}
)

// Register installs d for kind, replacing any previous drawer.
func Register(kind scene.Kind, d Drawer) {
	drawersMu.Lock()
	defer drawersMu.Unlock()
	drawers[kind] = d
}

func init() {
	Register(scene.Circle, drawCircle)
	Register(scene.Ellipse, drawEllipse)
	Register(scene.Rectangle, drawRectangle)
	Register(scene.Triangle, drawTriangle)
	Register(scene.Star, drawStar)
	Register(scene.Polygon, drawPolygon)
	Register(scene.Text, drawText)
	Register(scene.Line, drawLine)
	Register(scene.Arrow, drawArrow)
	Register(scene.Vector, drawVector)
	Register(scene.Beam, drawBeam)
	Register(scene.Spring, drawSpring)
	Register(scene.Arc, drawArc)
	Register(scene.Wave, drawWave)
	Register(scene.Grid, drawGrid)
	Register(scene.Molecule, drawMolecule)
	Register(scene.Particle, drawParticle)
	Register(scene.Orbit, drawOrbit)
	Register(scene.Pendulum, drawPendulum)
	Register(scene.Path, drawPath)
}

// Draw dispatches to the drawer registered for kind.
func Draw(p *Pen, kind scene.Kind, props scene.Props) error {
	drawersMu.RLock()
	d, ok := drawers[kind]
	drawersMu.RUnlock()
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownShape, kind)
	}
	return d(p, props)
}

func missing(kind scene.Kind, keys string) error {
	return fmt.Errorf("%w: %s needs %s", ErrMissingProperty, kind, keys)
}
