// Package brot renders grayscale images of the Mandelbrot set.
//
// # Overview
//
// brot is a pure Go escape-time renderer. It maps a rectangular window
// of the complex plane onto a pixel grid, iterates z ← z² + c for every
// pixel, and encodes the escape iteration as an 8-bit intensity. The
// image is split into horizontal bands rendered concurrently by a fixed
// set of worker goroutines (fork-join, one worker per band).
//
// # Quick Start
//
//	import "github.com/gobrot/brot"
//
//	// Render a 1000x750 view of the full set.
//	pm, err := brot.Render(
//	    brot.Bounds{Width: 1000, Height: 750},
//	    brot.FullSet,
//	)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	// Save to PNG (8-bit grayscale).
//	if err := pm.SavePNG("mandel.png"); err != nil {
//	    log.Fatal(err)
//	}
//
// # Architecture
//
// The library is organized into:
//   - Public API: Renderer, Bounds, Window, Pixmap, GradientTable
//   - internal/escape: the escape-time evaluator (pure)
//   - internal/band: row-band partitioning of the pixel buffer (pure)
//   - cmd/brot: command-line front end
//
// # Coordinate System
//
// Uses standard computer graphics coordinates: pixel (0,0) is the
// top-left corner, x increases right, y increases down. Because the
// imaginary axis increases upward, the row→imaginary mapping is
// inverted: larger row indices map to smaller imaginary parts.
//
// # Concurrency
//
// A render partitions the pixel buffer into disjoint row bands and
// hands each band's exclusive sub-slice to one goroutine. No locks or
// atomics are involved; disjointness is enforced by construction. The
// output is byte-identical for any worker count.
package brot
