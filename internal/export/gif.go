package export

import (
	"context"
	"fmt"
	"image"
	"image/color/palette"
	"image/draw"
	"image/gif"
	"io"
	"math"
	"os"

	xdraw "golang.org/x/image/draw"

	"github.com/san-kum/animato/internal/render"
	"github.com/san-kum/animato/internal/scene"
)

// GIF encodes sc as an endlessly looping animated GIF.
func GIF(ctx context.Context, w io.Writer, sc *scene.Scene, opts Options) ([]Frame, error) {
	im, err := render.NewImage(opts.Render)
	if err != nil {
		return nil, err
	}
	defer im.Close()

	sc = prepare(sc, opts)
	ts := Timestamps(sc, opts)
	delay := max(1, int(math.Round(opts.step()/10)))

	movie := &gif.GIF{}
	frames := make([]Frame, 0, len(ts))
	for i, t := range ts {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		src, stats := im.At(sc, t)
		movie.Image = append(movie.Image, quantize(src, opts.Scale))
		movie.Delay = append(movie.Delay, delay)
		frames = append(frames, Frame{Index: i, Time: t, Stats: stats})
	}

	if err := gif.EncodeAll(w, movie); err != nil {
		return nil, fmt.Errorf("encode gif: %w", err)
	}
	return frames, nil
}

// SaveGIF writes GIF output to path.
func SaveGIF(ctx context.Context, path string, sc *scene.Scene, opts Options) ([]Frame, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, err
	}
	frames, err := GIF(ctx, f, sc, opts)
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	return frames, err
}

func quantize(src image.Image, scale float64) *image.Paletted {
	b := src.Bounds()
	if scale > 0 && scale < 1 {
		dst := image.NewRGBA(image.Rect(0, 0,
			max(1, int(float64(b.Dx())*scale)),
			max(1, int(float64(b.Dy())*scale))))
		xdraw.CatmullRom.Scale(dst, dst.Bounds(), src, b, xdraw.Src, nil)
		src, b = dst, dst.Bounds()
	}
	out := image.NewPaletted(image.Rect(0, 0, b.Dx(), b.Dy()), palette.Plan9)
	draw.FloydSteinberg.Draw(out, out.Bounds(), src, b.Min)
	return out
}
