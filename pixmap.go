package brot

import "image"

// Pixmap is a completed grayscale render: a flat row-major byte buffer
// plus its pixel bounds. Each byte is an intensity in [0,255]; pixel
// (col,row) lives at index row*Width+col.
//
// A Pixmap is written exactly once, by the renderer, and is read-only
// afterwards. It carries everything the encoding side needs.
type Pixmap struct {
	Pix    []byte
	Width  int
	Height int
}

// NewPixmap allocates a zero-filled (all-black) pixmap for the given
// bounds. Returns nil if the bounds are invalid.
func NewPixmap(b Bounds) *Pixmap {
	if b.Validate() != nil {
		return nil
	}
	return &Pixmap{
		Pix:    make([]byte, b.Pixels()),
		Width:  b.Width,
		Height: b.Height,
	}
}

// Bounds returns the pixmap's pixel dimensions.
func (p *Pixmap) Bounds() Bounds {
	return Bounds{Width: p.Width, Height: p.Height}
}

// At returns the intensity at (col,row). No bounds checking.
func (p *Pixmap) At(col, row int) uint8 {
	return p.Pix[row*p.Width+col]
}

// Set stores an intensity at (col,row). No bounds checking.
func (p *Pixmap) Set(col, row int, v uint8) {
	p.Pix[row*p.Width+col] = v
}

// Gray wraps the pixmap as a standard *image.Gray without copying.
// The returned image shares p's backing buffer.
func (p *Pixmap) Gray() *image.Gray {
	return &image.Gray{
		Pix:    p.Pix,
		Stride: p.Width,
		Rect:   image.Rect(0, 0, p.Width, p.Height),
	}
}

// fromGray copies a standard *image.Gray into a Pixmap, collapsing any
// stride padding.
func fromGray(g *image.Gray) *Pixmap {
	w, h := g.Rect.Dx(), g.Rect.Dy()
	p := &Pixmap{
		Pix:    make([]byte, w*h),
		Width:  w,
		Height: h,
	}
	if g.Stride == w && g.Rect.Min == (image.Point{}) {
		copy(p.Pix, g.Pix)
		return p
	}
	for y := 0; y < h; y++ {
		src := g.PixOffset(g.Rect.Min.X, g.Rect.Min.Y+y)
		copy(p.Pix[y*w:(y+1)*w], g.Pix[src:src+w])
	}
	return p
}
