package brot

import (
	"encoding/binary"
	"errors"
	"fmt"
	"image"
	"image/draw"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/klauspost/compress/zstd"
	"golang.org/x/image/tiff"
)

// I/O errors.
var (
	// ErrUnsupportedFormat is returned by Save for unknown extensions.
	ErrUnsupportedFormat = errors.New("brot: unsupported output format")

	// ErrRawFormat is returned when a raw snapshot is malformed.
	ErrRawFormat = errors.New("brot: invalid raw snapshot")
)

// rawMagic identifies a raw pixel snapshot (see EncodeRaw).
var rawMagic = [4]byte{'B', 'R', 'O', 'T'}

// maxRawPixels bounds the allocation DecodeRaw will make from an
// untrusted header.
const maxRawPixels = 1 << 30

// Save writes the pixmap to path, picking the format from the file
// extension: .png, .tif/.tiff, or .brot (raw zstd snapshot). All three
// formats are lossless; decoding reproduces the byte-identical buffer.
func (p *Pixmap) Save(path string) error {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".png":
		return p.SavePNG(path)
	case ".tif", ".tiff":
		return p.SaveTIFF(path)
	case ".brot":
		return p.SaveRaw(path)
	default:
		return fmt.Errorf("%w: %q", ErrUnsupportedFormat, filepath.Ext(path))
	}
}

// SavePNG writes the pixmap to path as an 8-bit grayscale PNG.
func (p *Pixmap) SavePNG(path string) error {
	return p.save(path, p.EncodePNG)
}

// SaveTIFF writes the pixmap to path as a deflate-compressed grayscale
// TIFF.
func (p *Pixmap) SaveTIFF(path string) error {
	return p.save(path, p.EncodeTIFF)
}

// SaveRaw writes the pixmap to path as a raw zstd snapshot.
func (p *Pixmap) SaveRaw(path string) error {
	return p.save(path, p.EncodeRaw)
}

func (p *Pixmap) save(path string, encode func(io.Writer) error) error {
	f, err := os.Create(filepath.Clean(path))
	if err != nil {
		return fmt.Errorf("brot: create file: %w", err)
	}

	if err := encode(f); err != nil {
		_ = f.Close()
		return err
	}

	return f.Close()
}

// EncodePNG encodes the pixmap as an 8-bit grayscale PNG.
func (p *Pixmap) EncodePNG(w io.Writer) error {
	if err := png.Encode(w, p.Gray()); err != nil {
		return fmt.Errorf("brot: encode PNG: %w", err)
	}
	return nil
}

// DecodePNG decodes a PNG back into a Pixmap. Non-grayscale inputs are
// converted; 8-bit grayscale PNGs round-trip byte-identically.
func DecodePNG(r io.Reader) (*Pixmap, error) {
	img, err := png.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("brot: decode PNG: %w", err)
	}
	return fromImage(img), nil
}

// EncodeTIFF encodes the pixmap as a grayscale TIFF with deflate
// compression and horizontal-differencing prediction.
func (p *Pixmap) EncodeTIFF(w io.Writer) error {
	opts := &tiff.Options{Compression: tiff.Deflate, Predictor: true}
	if err := tiff.Encode(w, p.Gray(), opts); err != nil {
		return fmt.Errorf("brot: encode TIFF: %w", err)
	}
	return nil
}

// DecodeTIFF decodes a TIFF back into a Pixmap.
func DecodeTIFF(r io.Reader) (*Pixmap, error) {
	img, err := tiff.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("brot: decode TIFF: %w", err)
	}
	return fromImage(img), nil
}

// EncodeRaw writes the pixmap as a raw snapshot: a 12-byte header
// (magic, big-endian width and height) followed by the zstd-compressed
// pixel buffer. The format exists for cheap lossless interchange of
// render output between processes without any image-library round trip.
func (p *Pixmap) EncodeRaw(w io.Writer) error {
	var hdr [12]byte
	copy(hdr[:4], rawMagic[:])
	binary.BigEndian.PutUint32(hdr[4:8], uint32(p.Width))
	binary.BigEndian.PutUint32(hdr[8:12], uint32(p.Height))
	if _, err := w.Write(hdr[:]); err != nil {
		return fmt.Errorf("brot: write raw header: %w", err)
	}

	enc, err := zstd.NewWriter(w)
	if err != nil {
		return fmt.Errorf("brot: zstd writer: %w", err)
	}
	if _, err := enc.Write(p.Pix); err != nil {
		_ = enc.Close()
		return fmt.Errorf("brot: write raw pixels: %w", err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("brot: flush raw pixels: %w", err)
	}
	return nil
}

// DecodeRaw reads a raw snapshot produced by EncodeRaw.
func DecodeRaw(r io.Reader) (*Pixmap, error) {
	var hdr [12]byte
	if _, err := io.ReadFull(r, hdr[:]); err != nil {
		return nil, fmt.Errorf("%w: short header: %v", ErrRawFormat, err)
	}
	if [4]byte(hdr[:4]) != rawMagic {
		return nil, fmt.Errorf("%w: bad magic", ErrRawFormat)
	}

	width := int(binary.BigEndian.Uint32(hdr[4:8]))
	height := int(binary.BigEndian.Uint32(hdr[8:12]))
	// Divide rather than multiply so a hostile header cannot wrap
	// width*height past the guard.
	if width <= 0 || height <= 0 || width > maxRawPixels/height {
		return nil, fmt.Errorf("%w: bounds %dx%d", ErrRawFormat, width, height)
	}

	dec, err := zstd.NewReader(r)
	if err != nil {
		return nil, fmt.Errorf("brot: zstd reader: %w", err)
	}
	defer dec.Close()

	pix := make([]byte, width*height)
	if _, err := io.ReadFull(dec, pix); err != nil {
		return nil, fmt.Errorf("%w: short pixel data: %v", ErrRawFormat, err)
	}
	// Anything past width*height bytes, or a frame that fails its
	// checksum, is a corrupt or mismatched payload.
	var extra [1]byte
	switch n, err := dec.Read(extra[:]); {
	case n != 0:
		return nil, fmt.Errorf("%w: trailing pixel data", ErrRawFormat)
	case err != nil && err != io.EOF:
		return nil, fmt.Errorf("%w: %v", ErrRawFormat, err)
	}

	return &Pixmap{Pix: pix, Width: width, Height: height}, nil
}

// LoadRaw reads a raw snapshot from a file.
func LoadRaw(path string) (*Pixmap, error) {
	f, err := os.Open(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("brot: open file: %w", err)
	}
	defer func() { _ = f.Close() }()

	return DecodeRaw(f)
}

// fromImage converts any decoded image into a Pixmap, converting to
// grayscale if needed.
func fromImage(img image.Image) *Pixmap {
	if g, ok := img.(*image.Gray); ok {
		return fromGray(g)
	}
	b := img.Bounds()
	g := image.NewGray(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(g, g.Rect, img, b.Min, draw.Src)
	return fromGray(g)
}
