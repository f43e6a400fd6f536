package brot

import (
	"image"
	"testing"
)

func TestNewPixmap(t *testing.T) {
	pm := NewPixmap(Bounds{8, 4})
	if pm == nil {
		t.Fatal("NewPixmap returned nil for valid bounds")
	}
	if len(pm.Pix) != 32 {
		t.Errorf("len(Pix) = %d, want 32", len(pm.Pix))
	}
	for i, v := range pm.Pix {
		if v != 0 {
			t.Fatalf("Pix[%d] = %d, want zero-filled buffer", i, v)
		}
	}

	if got := NewPixmap(Bounds{0, 4}); got != nil {
		t.Error("NewPixmap accepted zero width")
	}
	if got := NewPixmap(Bounds{4, -1}); got != nil {
		t.Error("NewPixmap accepted negative height")
	}
}

func TestPixmap_SetAt(t *testing.T) {
	pm := NewPixmap(Bounds{5, 3})
	pm.Set(4, 2, 200)

	if got := pm.At(4, 2); got != 200 {
		t.Errorf("At(4, 2) = %d, want 200", got)
	}
	// Row-major index: row*width + col.
	if got := pm.Pix[2*5+4]; got != 200 {
		t.Errorf("Pix[14] = %d, want 200", got)
	}
}

func TestPixmap_GraySharesBuffer(t *testing.T) {
	pm := NewPixmap(Bounds{6, 6})
	g := pm.Gray()

	if g.Stride != pm.Width {
		t.Errorf("Stride = %d, want %d", g.Stride, pm.Width)
	}
	pm.Set(3, 3, 77)
	if got := g.GrayAt(3, 3).Y; got != 77 {
		t.Errorf("GrayAt(3,3) = %d, want 77 (buffer not shared)", got)
	}
}

func TestFromGray_StridePadding(t *testing.T) {
	// A sub-image has a stride wider than its row length; fromGray must
	// collapse the padding.
	base := image.NewGray(image.Rect(0, 0, 10, 10))
	for y := 0; y < 10; y++ {
		for x := 0; x < 10; x++ {
			base.Pix[y*base.Stride+x] = uint8(y*16 + x)
		}
	}

	sub := base.SubImage(image.Rect(2, 3, 7, 9)).(*image.Gray)
	pm := fromGray(sub)

	if pm.Width != 5 || pm.Height != 6 {
		t.Fatalf("size = %dx%d, want 5x6", pm.Width, pm.Height)
	}
	for row := 0; row < pm.Height; row++ {
		for col := 0; col < pm.Width; col++ {
			want := uint8((row+3)*16 + (col + 2))
			if got := pm.At(col, row); got != want {
				t.Fatalf("At(%d,%d) = %d, want %d", col, row, got, want)
			}
		}
	}
}
