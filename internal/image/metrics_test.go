package image

import (
	"errors"
	"image"
	"math"
	"testing"
)

func TestCompare(t *testing.T) {
	a := image.NewGray(image.Rect(0, 0, 4, 1))
	b := image.NewGray(image.Rect(0, 0, 4, 1))
	copy(a.Pix, []uint8{10, 20, 30, 40})
	copy(b.Pix, []uint8{10, 22, 26, 40})

	d, err := Compare(a, b)
	if err != nil {
		t.Fatalf("Compare() error = %v", err)
	}
	if d.Max != 4 {
		t.Errorf("Max = %d, want 4", d.Max)
	}
	if d.MAE != 1.5 {
		t.Errorf("MAE = %v, want 1.5", d.MAE)
	}
	// MSE = (4 + 16) / 4 = 5.
	if want := 10 * math.Log10(255*255/5.0); math.Abs(d.PSNR-want) > 1e-9 {
		t.Errorf("PSNR = %v, want %v", d.PSNR, want)
	}
}

func TestCompareIdentical(t *testing.T) {
	a := testGray()
	d, err := Compare(a, a)
	if err != nil {
		t.Fatal(err)
	}
	if !math.IsInf(d.PSNR, 1) || d.MAE != 0 || d.Max != 0 {
		t.Errorf("Compare(a, a) = %+v, want zero difference", d)
	}
}

func TestCompareSizeMismatch(t *testing.T) {
	a := image.NewGray(image.Rect(0, 0, 4, 4))
	b := image.NewGray(image.Rect(0, 0, 4, 5))
	if _, err := Compare(a, b); !errors.Is(err, ErrInvalidDimensions) {
		t.Errorf("Compare() error = %v, want ErrInvalidDimensions", err)
	}
	empty := image.NewGray(image.Rectangle{})
	if _, err := Compare(empty, empty); !errors.Is(err, ErrInvalidDimensions) {
		t.Errorf("Compare(empty) error = %v, want ErrInvalidDimensions", err)
	}
}

func TestScaleCatmullRom(t *testing.T) {
	src := image.NewGray(image.Rect(0, 0, 6, 4))
	for i := range src.Pix {
		src.Pix[i] = 90
	}
	dst := ScaleCatmullRom(src, 2)
	if b := dst.Bounds(); b.Dx() != 12 || b.Dy() != 8 {
		t.Fatalf("bounds = %v, want 12x8", b)
	}
	for i, v := range dst.Pix {
		if v != 90 {
			t.Fatalf("Pix[%d] = %d, want 90 for a flat input", i, v)
		}
	}
}
