package render

import (
	"fmt"
	"image"
	"io"

	"github.com/gogpu/gg"

	"github.com/san-kum/animato/internal/playback"
	"github.com/san-kum/animato/internal/scene"
)

// Image is a Renderer drawing into an in-memory raster.
type Image struct {
	*Renderer
	ctx *gg.Context
}

// NewImage builds a raster-backed renderer sized by opts.
func NewImage(opts Options) (*Image, error) {
	opts = opts.withDefaults()
	ctx := gg.NewContext(opts.Width, opts.Height)
	r, err := New(ctx, opts)
	if err != nil {
		ctx.Close()
		return nil, err
	}
	return &Image{Renderer: r, ctx: ctx}, nil
}

// At renders sc at time t and returns the raster.
func (im *Image) At(sc *scene.Scene, t float64) (image.Image, Stats) {
	st := playback.StateAt(sc, t)
	stats := im.Render(sc, st)
	return im.ctx.Image(), stats
}

func (im *Image) Image() image.Image { return im.ctx.Image() }

func (im *Image) EncodePNG(w io.Writer) error {
	if err := im.ctx.EncodePNG(w); err != nil {
		return fmt.Errorf("encode png: %w", err)
	}
	return nil
}

func (im *Image) SavePNG(path string) error {
	if err := im.ctx.SavePNG(path); err != nil {
		return fmt.Errorf("save png: %w", err)
	}
	return nil
}

func (im *Image) Close() error { return im.ctx.Close() }
