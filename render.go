package brot

import (
	"image"
	"sync"
	"time"

	"github.com/gobrot/brot/internal/band"
	"github.com/gobrot/brot/internal/escape"
)

// Renderer computes Mandelbrot images. It holds only configuration and
// is safe for concurrent use; every render is a one-shot, stateless
// computation over its inputs.
type Renderer struct {
	cfg config
}

// NewRenderer creates a Renderer with the given options. Defaults:
// GOMAXPROCS workers, DefaultIterations cap, no supersampling.
func NewRenderer(opts ...Option) *Renderer {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	return &Renderer{cfg: cfg}
}

// Render is shorthand for NewRenderer(opts...).Render(bounds, window).
func Render(bounds Bounds, window Window, opts ...Option) (*Pixmap, error) {
	return NewRenderer(opts...).Render(bounds, window)
}

// Render computes the grayscale image for the window and returns it as
// a Pixmap. It fails fast on invalid geometry, before any worker is
// spawned.
func (r *Renderer) Render(bounds Bounds, window Window) (*Pixmap, error) {
	pm := NewPixmap(bounds)
	if pm == nil {
		return nil, ErrInvalidBounds
	}
	if err := r.RenderInto(pm.Pix, bounds, window); err != nil {
		return nil, err
	}
	return pm, nil
}

// RenderInto renders the window into a caller-supplied buffer, which
// must have length bounds.Width*bounds.Height. Every byte of pix is
// overwritten exactly once.
//
// The buffer is partitioned into disjoint row bands, one per worker
// goroutine; workers share no mutable state and need no locks. The
// call blocks until all workers have finished, so on a nil return the
// buffer is fully populated. Pixel values depend only on bounds,
// window, and the iteration cap, never on the worker count.
func (r *Renderer) RenderInto(pix []byte, bounds Bounds, window Window) error {
	if err := bounds.Validate(); err != nil {
		return err
	}
	if err := window.Validate(); err != nil {
		return err
	}
	if len(pix) != bounds.Pixels() {
		return ErrBufferSize
	}

	bands := band.Partition(bounds.Height, r.cfg.workers)
	if err := band.Split(pix, bounds.Width, bands); err != nil {
		// Unreachable after the length check above; fail loud if the
		// partition invariant is ever broken.
		return err
	}

	Logger().Debug("render start",
		"width", bounds.Width,
		"height", bounds.Height,
		"iterations", r.cfg.iterations,
		"workers", r.cfg.workers,
		"bands", len(bands),
	)

	start := time.Now()
	var wg sync.WaitGroup
	wg.Add(len(bands))
	for i := range bands {
		go func(b *band.Band) {
			defer wg.Done()
			r.renderBand(b, bounds, window)
		}(&bands[i])
	}
	wg.Wait()

	Logger().Info("render complete",
		"width", bounds.Width,
		"height", bounds.Height,
		"elapsed", time.Since(start),
	)
	return nil
}

// renderBand fills one band's exclusive buffer view. Rows are addressed
// in global image coordinates so the mapped point for a pixel is
// bit-identical no matter which band it landed in.
func (r *Renderer) renderBand(b *band.Band, bounds Bounds, window Window) {
	limit := r.cfg.iterations
	for row := 0; row < b.Height; row++ {
		line := b.Pix[row*bounds.Width : (row+1)*bounds.Width]
		for col := range line {
			c := window.PointAt(bounds, col, b.Top+row)
			iter, escaped := escape.Time(c, limit)
			line[col] = escape.Shade(iter, escaped, limit)
		}
	}
}

// RenderImage renders the window as a standard *image.Gray. If the
// renderer was configured with WithSupersample, the image is computed
// at the higher resolution and downscaled.
func (r *Renderer) RenderImage(bounds Bounds, window Window) (*image.Gray, error) {
	if r.cfg.supersample <= 1 {
		pm, err := r.Render(bounds, window)
		if err != nil {
			return nil, err
		}
		return pm.Gray(), nil
	}

	if err := bounds.Validate(); err != nil {
		return nil, err
	}
	big := Bounds{
		Width:  bounds.Width * r.cfg.supersample,
		Height: bounds.Height * r.cfg.supersample,
	}
	pm, err := r.Render(big, window)
	if err != nil {
		return nil, err
	}
	return downscaleGray(pm.Gray(), bounds), nil
}
