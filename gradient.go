package brot

import (
	"image/color"

	"github.com/lucasb-eyer/go-colorful"
)

// GradientStop anchors a color at a position in [0,1].
type GradientStop struct {
	Col colorful.Color
	Pos float64
}

// GradientTable maps a normalized escape count to a color by blending
// between anchored stops in HCL space, which keeps the perceived
// brightness ramp even where RGB interpolation would produce muddy
// mid-tones. Stops must be sorted by Pos.
type GradientTable []GradientStop

// At returns the blended color for t. Values of t outside the table
// (including NaN) resolve to the last stop.
func (gt GradientTable) At(t float64) colorful.Color {
	for i := 0; i < len(gt)-1; i++ {
		c1, c2 := gt[i], gt[i+1]
		if c1.Pos <= t && t <= c2.Pos {
			f := (t - c1.Pos) / (c2.Pos - c1.Pos)
			return c1.Col.BlendHcl(c2.Col, f).Clamped()
		}
	}
	if len(gt) == 0 {
		return colorful.Color{}
	}
	return gt[len(gt)-1].Col
}

// RGBA returns the blended color for t as a premultiplied-free 8-bit
// color.RGBA with full alpha.
func (gt GradientTable) RGBA(t float64) color.RGBA {
	c := gt.At(t)
	r, g, b := c.RGB255()
	return color.RGBA{R: r, G: g, B: b, A: 255}
}

// mustHex parses a #rrggbb string, panicking on malformed input. It is
// used only for package-level gradient literals.
func mustHex(s string) colorful.Color {
	c, err := colorful.Hex(s)
	if err != nil {
		panic("brot: bad gradient hex: " + err.Error())
	}
	return c
}

// DefaultGradient is the classic deep-blue/white/orange Mandelbrot
// palette used by RenderColor when no gradient is configured.
var DefaultGradient = GradientTable{
	{mustHex("#000764"), 0.0},
	{mustHex("#206bcb"), 0.16},
	{mustHex("#edffff"), 0.42},
	{mustHex("#ffaa00"), 0.6425},
	{mustHex("#310230"), 0.8575},
	{mustHex("#000764"), 1.0},
}
