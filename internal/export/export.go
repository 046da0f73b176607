// Package export writes rendered scenes to files: numbered PNG
// sequences, animated GIFs and SVG motion trails.
package export

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/san-kum/animato/internal/anim"
	"github.com/san-kum/animato/internal/logging"
	"github.com/san-kum/animato/internal/render"
	"github.com/san-kum/animato/internal/scene"
)

var ErrNoTrail = errors.New("export: object has fewer than two positions")

const DefaultFPS = 30.0

type Options struct {
	Render  render.Options
	FPS     float64
	Workers int
	// Scale resizes GIF frames; values outside (0,1) keep full size.
	Scale float64
}

func (o Options) step() float64 {
	if o.FPS <= 0 {
		return 1000 / DefaultFPS
	}
	return 1000 / o.FPS
}

func (o Options) workers(n int) int {
	w := o.Workers
	if w <= 0 {
		w = runtime.NumCPU()
	}
	if w > n {
		w = n
	}
	return max(w, 1)
}

// Frame describes one exported frame.
type Frame struct {
	Index int
	Time  float64
	Stats render.Stats
	File  string
}

// Timestamps lists the export sample times for sc.
func Timestamps(sc *scene.Scene, opts Options) []float64 {
	if sc == nil {
		return []float64{0}
	}
	return anim.SampleTimes(sc.Duration, opts.step())
}

func prepare(sc *scene.Scene, opts Options) *scene.Scene {
	if !opts.Render.LiveResolve {
		return anim.Bake(sc, 0)
	}
	return sc
}

// PNGSequence renders every export timestamp of sc into dir as
// frame_00000.png, frame_00001.png, ... Workers each own a raster.
func PNGSequence(ctx context.Context, sc *scene.Scene, dir string, opts Options) ([]Frame, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, err
	}
	sc = prepare(sc, opts)
	ts := Timestamps(sc, opts)
	frames := make([]Frame, len(ts))
	workers := opts.workers(len(ts))
	logging.Logger().Debug("png export", "frames", len(ts), "workers", workers, "dir", dir)

	g, ctx := errgroup.WithContext(ctx)
	jobs := make(chan int)

	g.Go(func() error {
		defer close(jobs)
		for i := range ts {
			select {
			case jobs <- i:
			case <-ctx.Done():
				return ctx.Err()
			}
		}
		return nil
	})

	for w := 0; w < workers; w++ {
		g.Go(func() error {
			im, err := render.NewImage(opts.Render)
			if err != nil {
				return err
			}
			defer im.Close()

			for i := range jobs {
				_, stats := im.At(sc, ts[i])
				name := fmt.Sprintf("frame_%05d.png", i)
				if err := im.SavePNG(filepath.Join(dir, name)); err != nil {
					return fmt.Errorf("frame %d: %w", i, err)
				}
				frames[i] = Frame{Index: i, Time: ts[i], Stats: stats, File: name}
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return frames, nil
}
