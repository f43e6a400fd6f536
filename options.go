package brot

import "runtime"

// DefaultIterations is the default escape-iteration cap. 255 ties the
// iteration count directly to the byte intensity range.
const DefaultIterations = 255

// Option configures a Renderer during creation.
// Use functional options to customize rendering behavior.
//
// Example:
//
//	// Default: GOMAXPROCS workers, 255 iterations.
//	r := brot.NewRenderer()
//
//	// Custom iteration cap and explicit worker count.
//	r := brot.NewRenderer(brot.WithIterations(1000), brot.WithWorkers(4))
type Option func(*config)

// config holds resolved Renderer configuration.
type config struct {
	workers     int
	iterations  int
	supersample int
	gradient    GradientTable
}

// defaultConfig returns the default renderer configuration.
func defaultConfig() config {
	return config{
		workers:     runtime.GOMAXPROCS(0),
		iterations:  DefaultIterations,
		supersample: 1,
		gradient:    DefaultGradient,
	}
}

// WithWorkers sets the number of worker goroutines used per render.
// Each worker owns one contiguous row band of the image. Values <= 0
// fall back to runtime.GOMAXPROCS(0).
//
// The worker count affects only throughput, never pixel values.
func WithWorkers(n int) Option {
	return func(c *config) {
		if n <= 0 {
			n = runtime.GOMAXPROCS(0)
		}
		c.workers = n
	}
}

// WithIterations sets the escape-iteration cap. Higher caps resolve
// finer detail near the set boundary at proportional cost. Values <= 0
// fall back to DefaultIterations.
func WithIterations(n int) Option {
	return func(c *config) {
		if n <= 0 {
			n = DefaultIterations
		}
		c.iterations = n
	}
}

// WithSupersample renders at factor-times the requested resolution and
// downscales with a Lanczos filter. It smooths the hard banding of the
// escape-time gradient at factor² cost.
//
// Supersampling applies to the RenderImage and RenderColor convenience
// paths only; Render and RenderInto always produce the exact
// one-byte-per-pixel buffer. Factors <= 1 disable supersampling.
func WithSupersample(factor int) Option {
	return func(c *config) {
		if factor < 1 {
			factor = 1
		}
		c.supersample = factor
	}
}

// WithGradient sets the color table used by RenderColor. The grayscale
// paths ignore it.
func WithGradient(g GradientTable) Option {
	return func(c *config) {
		if len(g) > 0 {
			c.gradient = g
		}
	}
}
