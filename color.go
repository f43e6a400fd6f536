package brot

import (
	"image"
	"sync"

	"github.com/gobrot/brot/internal/band"
	"github.com/gobrot/brot/internal/escape"
)

// RenderColor renders the window through the configured gradient and
// returns an *image.RGBA. It uses the continuous escape count, so the
// hard iteration bands of the grayscale path blend into a smooth ramp.
// Interior points are solid black.
//
// The color path shares the grayscale path's concurrency scheme: one
// goroutine per row band, disjoint writes, joined before return.
func (r *Renderer) RenderColor(bounds Bounds, window Window) (*image.RGBA, error) {
	if err := bounds.Validate(); err != nil {
		return nil, err
	}
	if err := window.Validate(); err != nil {
		return nil, err
	}

	if r.cfg.supersample > 1 {
		big := Bounds{
			Width:  bounds.Width * r.cfg.supersample,
			Height: bounds.Height * r.cfg.supersample,
		}
		img, err := r.renderColorExact(big, window)
		if err != nil {
			return nil, err
		}
		return downscaleRGBA(img, bounds), nil
	}
	return r.renderColorExact(bounds, window)
}

func (r *Renderer) renderColorExact(bounds Bounds, window Window) (*image.RGBA, error) {
	img := image.NewRGBA(image.Rect(0, 0, bounds.Width, bounds.Height))
	limit := r.cfg.iterations
	grad := r.cfg.gradient

	bands := band.Partition(bounds.Height, r.cfg.workers)

	var wg sync.WaitGroup
	wg.Add(len(bands))
	for i := range bands {
		go func(b *band.Band) {
			defer wg.Done()
			for row := b.Top; row < b.Top+b.Height; row++ {
				for col := 0; col < bounds.Width; col++ {
					c := window.PointAt(bounds, col, row)
					mu := escape.Smooth(c, limit)
					if mu >= float64(limit) {
						// Interior: leave black, set alpha.
						img.Pix[img.PixOffset(col, row)+3] = 255
						continue
					}
					img.SetRGBA(col, row, grad.RGBA(mu/float64(limit)))
				}
			}
		}(&bands[i])
	}
	wg.Wait()

	return img, nil
}
