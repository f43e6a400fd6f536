package brot

import (
	"bytes"
	"testing"
)

// testWindow is the square [-1,1]² used by most fixtures.
var testWindow = Window{UpperLeft: complex(-1, 1), LowerRight: complex(1, -1)}

func TestRender_KnownPixels(t *testing.T) {
	b := Bounds{100, 100}
	pm, err := Render(b, testWindow, WithWorkers(4))
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if len(pm.Pix) != b.Pixels() {
		t.Fatalf("len(Pix) = %d, want %d", len(pm.Pix), b.Pixels())
	}

	tests := []struct {
		col, row int
		want     uint8
	}{
		{25, 75, 0},  // maps to -0.5-0.5i, inside the set
		{50, 50, 0},  // maps to the origin, inside the set
		{0, 0, 253},  // -1+1i escapes at iteration 2
		{99, 0, 254}, // fast escape near the top-right corner
		{99, 99, 254},
		{75, 25, 251}, // 0.5+0.5i escapes at iteration 4
	}
	for _, tt := range tests {
		if got := pm.At(tt.col, tt.row); got != tt.want {
			t.Errorf("pixel (%d,%d) = %d, want %d", tt.col, tt.row, got, tt.want)
		}
	}
}

func TestRender_DeterministicAcrossWorkerCounts(t *testing.T) {
	b := Bounds{120, 90}
	w := SeahorseValley

	reference, err := Render(b, w, WithWorkers(1))
	if err != nil {
		t.Fatalf("Render(workers=1): %v", err)
	}

	// Partitioning must change only performance, never output: any
	// worker count, including one band per row, yields the identical
	// buffer.
	for _, workers := range []int{2, 3, 8, b.Height, b.Height * 4} {
		pm, err := Render(b, w, WithWorkers(workers))
		if err != nil {
			t.Fatalf("Render(workers=%d): %v", workers, err)
		}
		if !bytes.Equal(pm.Pix, reference.Pix) {
			t.Errorf("Render(workers=%d) differs from single-worker render", workers)
		}
	}

	// And rendering the same inputs twice is byte-identical.
	again, err := Render(b, w, WithWorkers(8))
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if !bytes.Equal(again.Pix, reference.Pix) {
		t.Error("repeated render differs")
	}
}

func TestRender_InvalidGeometry(t *testing.T) {
	tests := []struct {
		name    string
		bounds  Bounds
		window  Window
		wantErr error
	}{
		{"zero width", Bounds{0, 10}, testWindow, ErrInvalidBounds},
		{"zero height", Bounds{10, 0}, testWindow, ErrInvalidBounds},
		{"negative bounds", Bounds{-1, -1}, testWindow, ErrInvalidBounds},
		{"swapped corners", Bounds{10, 10},
			Window{complex(1, -1), complex(-1, 1)}, ErrInvalidWindow},
		{"flat window", Bounds{10, 10},
			Window{complex(-1, 1), complex(-1, -1)}, ErrInvalidWindow},
	}
	for _, tt := range tests {
		if _, err := Render(tt.bounds, tt.window); err != tt.wantErr {
			t.Errorf("%s: Render() err = %v, want %v", tt.name, err, tt.wantErr)
		}
	}
}

func TestRenderInto_BufferLength(t *testing.T) {
	r := NewRenderer()
	b := Bounds{10, 10}

	if err := r.RenderInto(make([]byte, 99), b, testWindow); err != ErrBufferSize {
		t.Errorf("short buffer: err = %v, want ErrBufferSize", err)
	}
	if err := r.RenderInto(make([]byte, 101), b, testWindow); err != ErrBufferSize {
		t.Errorf("long buffer: err = %v, want ErrBufferSize", err)
	}

	pix := make([]byte, 100)
	if err := r.RenderInto(pix, b, testWindow); err != nil {
		t.Fatalf("exact buffer: err = %v, want nil", err)
	}
}

func TestRenderInto_OverwritesEveryByte(t *testing.T) {
	// Pre-poison the buffer, then require the result to match a fresh
	// render exactly: every byte must have been written.
	b := Bounds{50, 37}
	pix := make([]byte, b.Pixels())
	for i := range pix {
		pix[i] = 0xAA
	}

	r := NewRenderer(WithWorkers(5))
	if err := r.RenderInto(pix, b, testWindow); err != nil {
		t.Fatalf("RenderInto: %v", err)
	}

	ref, err := Render(b, testWindow, WithWorkers(1))
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if !bytes.Equal(pix, ref.Pix) {
		t.Error("RenderInto buffer differs from Render output")
	}
}

func TestRender_IterationCapChangesShade(t *testing.T) {
	b := Bounds{64, 64}

	low, err := Render(b, testWindow, WithIterations(16))
	if err != nil {
		t.Fatalf("Render(cap=16): %v", err)
	}
	high, err := Render(b, testWindow, WithIterations(1024))
	if err != nil {
		t.Fatalf("Render(cap=1024): %v", err)
	}
	if bytes.Equal(low.Pix, high.Pix) {
		t.Error("iteration cap had no effect on output")
	}
}

func TestRenderImage(t *testing.T) {
	b := Bounds{40, 30}

	img, err := NewRenderer().RenderImage(b, testWindow)
	if err != nil {
		t.Fatalf("RenderImage: %v", err)
	}
	if img.Rect.Dx() != b.Width || img.Rect.Dy() != b.Height {
		t.Errorf("image size = %dx%d, want %dx%d",
			img.Rect.Dx(), img.Rect.Dy(), b.Width, b.Height)
	}

	// Without supersampling the image shares bytes with the pixmap
	// contract exactly.
	pm, err := Render(b, testWindow)
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if !bytes.Equal(img.Pix, pm.Pix) {
		t.Error("RenderImage differs from Render")
	}
}

func TestRenderImage_Supersampled(t *testing.T) {
	b := Bounds{40, 30}

	img, err := NewRenderer(WithSupersample(2)).RenderImage(b, testWindow)
	if err != nil {
		t.Fatalf("RenderImage: %v", err)
	}
	if img.Rect.Dx() != b.Width || img.Rect.Dy() != b.Height {
		t.Errorf("supersampled image size = %dx%d, want %dx%d",
			img.Rect.Dx(), img.Rect.Dy(), b.Width, b.Height)
	}
}

func TestRenderColor(t *testing.T) {
	b := Bounds{40, 30}

	img, err := NewRenderer(WithWorkers(3)).RenderColor(b, testWindow)
	if err != nil {
		t.Fatalf("RenderColor: %v", err)
	}
	if img.Rect.Dx() != b.Width || img.Rect.Dy() != b.Height {
		t.Errorf("image size = %dx%d, want %dx%d",
			img.Rect.Dx(), img.Rect.Dy(), b.Width, b.Height)
	}

	// The origin pixel is interior: black, opaque.
	c := img.RGBAAt(b.Width/2, b.Height/2)
	if c.R != 0 || c.G != 0 || c.B != 0 || c.A != 255 {
		t.Errorf("interior pixel = %v, want opaque black", c)
	}

	// A corner pixel escapes and must be colored.
	e := img.RGBAAt(0, 0)
	if e.R == 0 && e.G == 0 && e.B == 0 {
		t.Errorf("escaping pixel = %v, want non-black", e)
	}

	// Color output is worker-count invariant too.
	again, err := NewRenderer(WithWorkers(b.Height)).RenderColor(b, testWindow)
	if err != nil {
		t.Fatalf("RenderColor: %v", err)
	}
	if !bytes.Equal(img.Pix, again.Pix) {
		t.Error("RenderColor differs across worker counts")
	}
}

func TestRenderColor_InvalidGeometry(t *testing.T) {
	r := NewRenderer()
	if _, err := r.RenderColor(Bounds{0, 10}, testWindow); err != ErrInvalidBounds {
		t.Errorf("err = %v, want ErrInvalidBounds", err)
	}
	if _, err := r.RenderColor(Bounds{10, 10}, Window{}); err != ErrInvalidWindow {
		t.Errorf("err = %v, want ErrInvalidWindow", err)
	}
}

func BenchmarkRender(b *testing.B) {
	bounds := Bounds{256, 256}
	r := NewRenderer()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		if _, err := r.Render(bounds, FullSet); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkRenderSingleWorker(b *testing.B) {
	bounds := Bounds{256, 256}
	r := NewRenderer(WithWorkers(1))
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		if _, err := r.Render(bounds, FullSet); err != nil {
			b.Fatal(err)
		}
	}
}
