package export

import (
	"bytes"
	"context"
	"errors"
	"image/gif"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/san-kum/animato/internal/render"
	"github.com/san-kum/animato/internal/scene"
)

func movingDot() *scene.Scene {
	return &scene.Scene{
		ID:       "dot",
		Duration: 100,
		Shapes: []scene.Shape{{
			ID:    "dot",
			Type:  scene.Circle,
			Props: scene.Props{"x": scene.Number(8), "y": scene.Number(12), "radius": scene.Number(4), "fill": scene.String("#000000")},
			Animations: []scene.Animation{
				{Property: "x", From: scene.Number(8), To: scene.Number(24), Start: 0, End: 100},
			},
		}},
	}
}

func smallOptions() Options {
	return Options{Render: render.Options{Width: 32, Height: 24}, FPS: 20, Workers: 3}
}

func TestTimestamps(t *testing.T) {
	ts := Timestamps(movingDot(), smallOptions())
	want := []float64{0, 50, 100}
	if len(ts) != len(want) {
		t.Fatalf("timestamps = %v, want %v", ts, want)
	}
	for i := range want {
		if ts[i] != want[i] {
			t.Errorf("ts[%d] = %v, want %v", i, ts[i], want[i])
		}
	}

	if got := Timestamps(nil, Options{}); len(got) != 1 || got[0] != 0 {
		t.Errorf("nil scene timestamps = %v", got)
	}
}

func TestPNGSequence(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "frames")
	frames, err := PNGSequence(context.Background(), movingDot(), dir, smallOptions())
	if err != nil {
		t.Fatal(err)
	}
	if len(frames) != 3 {
		t.Fatalf("expected 3 frames, got %d", len(frames))
	}
	for i, f := range frames {
		if f.Index != i {
			t.Errorf("frame %d has index %d", i, f.Index)
		}
		if f.Stats.Drawn != 1 {
			t.Errorf("frame %d stats = %+v", i, f.Stats)
		}
	}

	file, err := os.Open(filepath.Join(dir, frames[0].File))
	if err != nil {
		t.Fatal(err)
	}
	defer file.Close()
	img, err := png.Decode(file)
	if err != nil {
		t.Fatal(err)
	}
	if b := img.Bounds(); b.Dx() != 32 || b.Dy() != 24 {
		t.Errorf("frame size = %v", b)
	}
	r, _, _, _ := img.At(8, 12).RGBA()
	if r > 0x2000 {
		t.Errorf("dot missing at start position, red = %x", r)
	}
}

func TestPNGSequenceCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := PNGSequence(ctx, movingDot(), t.TempDir(), smallOptions())
	if !errors.Is(err, context.Canceled) {
		t.Errorf("expected context.Canceled, got %v", err)
	}
}

func TestGIF(t *testing.T) {
	var buf bytes.Buffer
	opts := smallOptions()
	frames, err := GIF(context.Background(), &buf, movingDot(), opts)
	if err != nil {
		t.Fatal(err)
	}

	g, err := gif.DecodeAll(&buf)
	if err != nil {
		t.Fatal(err)
	}
	if len(g.Image) != len(frames) || len(frames) != 3 {
		t.Fatalf("gif has %d images, %d frames reported", len(g.Image), len(frames))
	}
	for i, d := range g.Delay {
		if d != 5 {
			t.Errorf("delay[%d] = %d, want 5", i, d)
		}
	}
}

func TestGIFScale(t *testing.T) {
	var buf bytes.Buffer
	opts := smallOptions()
	opts.Scale = 0.5
	if _, err := GIF(context.Background(), &buf, movingDot(), opts); err != nil {
		t.Fatal(err)
	}
	g, err := gif.DecodeAll(&buf)
	if err != nil {
		t.Fatal(err)
	}
	if b := g.Image[0].Bounds(); b.Dx() != 16 || b.Dy() != 12 {
		t.Errorf("scaled frame size = %v", b)
	}
}

func TestTrail(t *testing.T) {
	svg, err := Trail(movingDot(), "dot", TrailOptions{Width: 32, Height: 24, Step: 50})
	if err != nil {
		t.Fatal(err)
	}
	for _, want := range []string{
		`viewBox="0 0 32 24"`,
		`d="M8.0,12.0 L16.0,12.0 L24.0,12.0"`,
		`<circle cx="24.0" cy="12.0"`,
	} {
		if !strings.Contains(svg, want) {
			t.Errorf("svg missing %q:\n%s", want, svg)
		}
	}
}

func TestTrailUnknownObject(t *testing.T) {
	_, err := Trail(movingDot(), "ghost", TrailOptions{})
	if !errors.Is(err, ErrNoTrail) {
		t.Errorf("expected ErrNoTrail, got %v", err)
	}
}

func TestTrailPrecomputed(t *testing.T) {
	sc := &scene.Scene{Duration: 20, Frames: []scene.Frame{
		{Timestamp: 0, Objects: []scene.Object{{ID: "p", Type: scene.Circle, Properties: scene.Props{"x": scene.Number(1), "y": scene.Number(2)}}}},
		{Timestamp: 10, Objects: []scene.Object{}},
		{Timestamp: 20, Objects: []scene.Object{{ID: "p", Type: scene.Circle, Properties: scene.Props{"x": scene.Number(3), "y": scene.Number(4)}}}},
	}}
	points := TrailPoints(sc, "p", 10)
	if len(points) != 2 {
		t.Fatalf("points = %v", points)
	}
	if points[1] != (scene.Point{X: 3, Y: 4}) {
		t.Errorf("last point = %v", points[1])
	}
}
