package brot

import "errors"

// Geometry errors.
var (
	// ErrInvalidBounds is returned when width or height is non-positive.
	ErrInvalidBounds = errors.New("brot: invalid bounds")

	// ErrInvalidWindow is returned when the window corners are not
	// ordered upper-left / lower-right.
	ErrInvalidWindow = errors.New("brot: invalid window")

	// ErrBufferSize is returned when a caller-supplied pixel buffer
	// does not match width*height.
	ErrBufferSize = errors.New("brot: pixel buffer length mismatch")
)

// Bounds is the size of the output image in pixels.
type Bounds struct {
	Width  int
	Height int
}

// Pixels returns the number of pixels (and buffer bytes) covered by b.
func (b Bounds) Pixels() int { return b.Width * b.Height }

// Validate reports ErrInvalidBounds unless both dimensions are positive.
func (b Bounds) Validate() error {
	if b.Width <= 0 || b.Height <= 0 {
		return ErrInvalidBounds
	}
	return nil
}

// Window is the rectangular region of the complex plane mapped onto the
// pixel grid. UpperLeft corresponds to pixel (0,0); LowerRight to the
// corner just past pixel (width-1, height-1).
//
// Valid windows satisfy real(UpperLeft) < real(LowerRight) and
// imag(UpperLeft) > imag(LowerRight): the image y axis grows downward
// while the imaginary axis grows upward.
type Window struct {
	UpperLeft  complex128
	LowerRight complex128
}

// Landmark windows of the Mandelbrot set, usable directly as render
// inputs.
var (
	// FullSet frames the entire set with a little margin.
	FullSet = Window{
		UpperLeft:  complex(-2.2, 1.2),
		LowerRight: complex(1.0, -1.2),
	}

	// SeahorseValley – dense filaments and repeating "seahorse" curls.
	SeahorseValley = Window{
		UpperLeft:  complex(-0.8, 0.15),
		LowerRight: complex(-0.7, 0.05),
	}

	// ElephantValley – large bulb with trunk-like tendrils.
	ElephantValley = Window{
		UpperLeft:  complex(-1.85, -0.02),
		LowerRight: complex(-1.75, -0.10),
	}

	// SpiralMinibrot – small Mandelbrot copy with tight spiral arms.
	SpiralMinibrot = Window{
		UpperLeft:  complex(-0.7435, 0.1325),
		LowerRight: complex(-0.7420, 0.1310),
	}

	// TripleSpiral – threefold symmetric spiral structure.
	TripleSpiral = Window{
		UpperLeft:  complex(-0.7480, 0.0980),
		LowerRight: complex(-0.7450, 0.0950),
	}

	// ValleyOfTheDragon – deep, highly detailed spiral filaments.
	ValleyOfTheDragon = Window{
		UpperLeft:  complex(-0.7400, 0.1850),
		LowerRight: complex(-0.7350, 0.1800),
	}
)

// Validate reports ErrInvalidWindow unless the corners satisfy the
// upper-left / lower-right ordering.
func (w Window) Validate() error {
	if real(w.UpperLeft) >= real(w.LowerRight) || imag(w.UpperLeft) <= imag(w.LowerRight) {
		return ErrInvalidWindow
	}
	return nil
}

// Width returns the real-axis extent of the window.
func (w Window) Width() float64 { return real(w.LowerRight) - real(w.UpperLeft) }

// Height returns the imaginary-axis extent of the window.
func (w Window) Height() float64 { return imag(w.UpperLeft) - imag(w.LowerRight) }

// PointAt maps a pixel coordinate to its point in the complex plane.
//
// Column and row are interpolated linearly across the window;
// PointAt(b, 0, 0) is exactly UpperLeft and PointAt(b, b.Width,
// b.Height) is exactly LowerRight. The row term is subtracted because
// row indices grow downward while the imaginary component grows upward.
//
// PointAt is pure and does no bounds checking: coordinates outside
// [0,width]x[0,height] extrapolate beyond the window.
func (w Window) PointAt(b Bounds, column, row int) complex128 {
	return complex(
		real(w.UpperLeft)+float64(column)*w.Width()/float64(b.Width),
		imag(w.UpperLeft)-float64(row)*w.Height()/float64(b.Height),
	)
}
