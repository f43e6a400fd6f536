// Package escape implements the quadratic escape-time iteration at the
// heart of Mandelbrot rendering.
//
// All functions are pure and allocation-free; they are safe to call
// from any number of goroutines concurrently.
package escape

import (
	"math"
	"math/cmplx"
)

// Time iterates z ← z² + c from z = 0 for at most limit steps and
// reports when the orbit leaves the circle of radius two centered on
// the origin.
//
// If the orbit escapes, Time returns the zero-based iteration index at
// which the squared magnitude first exceeded 4.0 and escaped = true;
// the loop short-circuits at that point. If limit iterations pass
// without escape, Time returns (0, false): c is treated as a member of
// the set (more precisely, membership could not be disproved within
// the limit).
//
// The magnitude test compares re²+im² against 4.0 without taking a
// square root; the comparison is written in negated form so that a
// non-finite orbit (NaN or ±Inf anywhere in z) counts as escaped on
// the iteration it appears.
func Time(c complex128, limit int) (iter int, escaped bool) {
	cr, ci := real(c), imag(c)
	var zr, zi float64
	for i := 0; i < limit; i++ {
		zr, zi = zr*zr-zi*zi+cr, 2*zr*zi+ci
		if !(zr*zr+zi*zi <= 4.0) {
			return i, true
		}
	}
	return 0, false
}

// Shade maps an escape result to an 8-bit intensity.
//
// A point that never escaped is interior and shades to 0. A point that
// escaped at iteration i shades to (limit-i) scaled into the byte
// range, floored at 1 so an escaped point is never confused with an
// interior one. Fast escapes are bright and slow escapes are dim; when
// limit is 255 this reduces to exactly 255-i.
func Shade(iter int, escaped bool, limit int) uint8 {
	if !escaped || limit <= 0 {
		return 0
	}
	v := (limit - iter) * 255 / limit
	if v > 255 {
		v = 255
	}
	if v < 1 {
		v = 1
	}
	return uint8(v)
}

// Smooth is the continuous (fractional) variant of Time used for
// band-free color gradients. It returns the smoothed iteration count
// for escaping orbits and float64(limit) for interior points.
//
// The grayscale pipeline never calls Smooth; its output feeds gradient
// lookup only, so its floating-point shape does not affect the
// byte-exact render contract.
func Smooth(c complex128, limit int) float64 {
	z := complex(0, 0)
	for i := 0; i < limit; i++ {
		z = z*z + c
		if !(real(z)*real(z)+imag(z)*imag(z) <= 4.0) {
			return float64(i) + 1 - math.Log(math.Log(cmplx.Abs(z)))/math.Ln2
		}
	}
	return float64(limit)
}
