// Package band partitions a row-major pixel buffer into contiguous,
// non-overlapping horizontal bands for parallel rendering.
//
// Partitioning uses ceiling division: with H rows and W workers each
// band spans ⌈H/W⌉ rows and the final band absorbs whatever remainder
// is left. Bands therefore cover [0,H) exactly once, with no gaps and
// no overlaps, and a worker count larger than H simply yields H
// single-row bands.
package band

import "errors"

// ErrBufferSize is returned by Split when the buffer length does not
// match the rows covered by the bands.
var ErrBufferSize = errors.New("band: buffer length mismatch")

// Band is a half-open range of image rows [Top, Top+Height) plus, once
// Split has run, an exclusive view into the corresponding slice of the
// pixel buffer.
type Band struct {
	// Top is the first image row covered by the band.
	Top int

	// Height is the number of rows in the band.
	Height int

	// Pix is the band's exclusive sub-slice of the full buffer, set by
	// Split. Its length is Height multiplied by the image width, and
	// its capacity is clipped so the band cannot write past its range.
	Pix []byte
}

// Partition splits height rows into at most workers bands.
//
// The result is sorted by Top, pairwise disjoint, and covers [0,height)
// exactly. Fewer than workers bands are returned when workers does not
// divide height tightly (trailing empty bands are omitted). Returns nil
// if height or workers is non-positive.
func Partition(height, workers int) []Band {
	if height <= 0 || workers <= 0 {
		return nil
	}

	span := (height + workers - 1) / workers
	bands := make([]Band, 0, workers)
	for top := 0; top < height; top += span {
		bands = append(bands, Band{
			Top:    top,
			Height: min(span, height-top),
		})
	}
	return bands
}

// Split hands each band its exclusive sub-slice of pix, a row-major
// buffer of the given width. The sub-slices are full slice expressions
// with capacity pinned to the band's range, so no band can reach a
// neighbor's rows even by reslicing.
//
// The bands must be the untouched result of Partition over the same
// geometry; Split returns ErrBufferSize if len(pix) does not equal the
// total number of band pixels.
func Split(pix []byte, width int, bands []Band) error {
	total := 0
	for _, b := range bands {
		total += b.Height * width
	}
	if len(pix) != total {
		return ErrBufferSize
	}

	for i := range bands {
		b := &bands[i]
		start := b.Top * width
		end := start + b.Height*width
		b.Pix = pix[start:end:end]
	}
	return nil
}
