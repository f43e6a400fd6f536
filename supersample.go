package brot

import (
	"image"
	"image/draw"

	"github.com/nfnt/resize"
)

// downscaleGray resizes a supersampled grayscale render down to the
// requested bounds with a Lanczos filter.
func downscaleGray(src *image.Gray, b Bounds) *image.Gray {
	out := resize.Resize(uint(b.Width), uint(b.Height), src, resize.Lanczos3)
	if g, ok := out.(*image.Gray); ok {
		return g
	}
	g := image.NewGray(image.Rect(0, 0, b.Width, b.Height))
	draw.Draw(g, g.Rect, out, out.Bounds().Min, draw.Src)
	return g
}

// downscaleRGBA resizes a supersampled color render down to the
// requested bounds with a Lanczos filter.
func downscaleRGBA(src *image.RGBA, b Bounds) *image.RGBA {
	out := resize.Resize(uint(b.Width), uint(b.Height), src, resize.Lanczos3)
	if m, ok := out.(*image.RGBA); ok {
		return m
	}
	m := image.NewRGBA(image.Rect(0, 0, b.Width, b.Height))
	draw.Draw(m, m.Rect, out, out.Bounds().Min, draw.Src)
	return m
}
