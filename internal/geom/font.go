package geom

import (
	"fmt"
	"sync"

	"github.com/gogpu/gg/text"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/gofont/goregular"
)

// FontStyle selects one of the bundled Go font families.
type FontStyle int

const (
	FontRegular FontStyle = iota
	FontBold
	FontMono
)

var (
	sourcesOnce sync.Once
	sources     [3]*text.FontSource
	sourcesErr  error
)

func loadSources() error {
	sourcesOnce.Do(func() {
		for i, data := range [][]byte{goregular.TTF, gobold.TTF, gomono.TTF} {
			src, err := text.NewFontSource(data)
			if err != nil {
				sourcesErr = fmt.Errorf("load font %d: %w", i, err)
				return
			}
			sources[i] = src
		}
	})
	return sourcesErr
}

type faceKey struct {
	style FontStyle
	size  float64
}

// FontBook caches font faces by style and size. Safe for concurrent use.
type FontBook struct {
	mu    sync.Mutex
	faces map[faceKey]text.Face
}

func NewFontBook() (*FontBook, error) {
	if err := loadSources(); err != nil {
		return nil, err
	}
	return &FontBook{faces: make(map[faceKey]text.Face)}, nil
}

// Face returns the face for style at size points.
func (b *FontBook) Face(style FontStyle, size float64) text.Face {
	if b == nil || sources[style] == nil {
		return nil
	}
	key := faceKey{style, size}
	b.mu.Lock()
	defer b.mu.Unlock()
	if f, ok := b.faces[key]; ok {
		return f
	}
	f := sources[style].Face(size)
	b.faces[key] = f
	return f
}
