package image

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"image/jpeg"
	"os"
	"path/filepath"
	"testing"

	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
)

func testGray() *image.Gray {
	g := image.NewGray(image.Rect(0, 0, 12, 9))
	for y := range 9 {
		for x := range 12 {
			g.SetGray(x, y, color.Gray{Y: uint8(x*20 + y)})
		}
	}
	return g
}

func TestSaveAndLoadPNG(t *testing.T) {
	path := filepath.Join(t.TempDir(), "gray.png")
	src := testGray()
	if err := SavePNG(path, src); err != nil {
		t.Fatalf("SavePNG() error = %v", err)
	}

	img, format, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if format != "png" {
		t.Errorf("format = %q, want png", format)
	}
	pix, w, h := Luma(img)
	if w != 12 || h != 9 {
		t.Fatalf("size = %dx%d, want 12x9", w, h)
	}
	for i, v := range pix {
		if want := int32(src.Pix[i]); v != want {
			t.Fatalf("sample %d = %d, want %d", i, v, want)
		}
	}
}

func TestLoadFromBytesFormats(t *testing.T) {
	src := testGray()
	tests := []struct {
		name   string
		encode func(*bytes.Buffer) error
		format string
	}{
		{"png", func(b *bytes.Buffer) error { return EncodePNG(b, src) }, "png"},
		{"bmp", func(b *bytes.Buffer) error { return bmp.Encode(b, src) }, "bmp"},
		{"tiff", func(b *bytes.Buffer) error { return tiff.Encode(b, src, nil) }, "tiff"},
		{"jpeg", func(b *bytes.Buffer) error { return jpeg.Encode(b, src, &jpeg.Options{Quality: 95}) }, "jpeg"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			if err := tt.encode(&buf); err != nil {
				t.Fatalf("encode: %v", err)
			}
			img, format, err := LoadFromBytes(buf.Bytes())
			if err != nil {
				t.Fatalf("LoadFromBytes() error = %v", err)
			}
			if format != tt.format {
				t.Errorf("format = %q, want %q", format, tt.format)
			}
			if b := img.Bounds(); b.Dx() != 12 || b.Dy() != 9 {
				t.Errorf("bounds = %v, want 12x9", b)
			}
		})
	}
}

func TestLoadFromBytesErrors(t *testing.T) {
	if _, _, err := LoadFromBytes(nil); !errors.Is(err, ErrEmptyData) {
		t.Errorf("LoadFromBytes(nil) error = %v, want ErrEmptyData", err)
	}
	if _, _, err := LoadFromBytes([]byte("not an image")); !errors.Is(err, image.ErrFormat) {
		t.Errorf("LoadFromBytes(garbage) error = %v, want image.ErrFormat", err)
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, _, err := Load(filepath.Join(t.TempDir(), "missing.png"))
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("Load(missing) error = %v, want os.ErrNotExist", err)
	}
}

func TestSavePNGBadPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "no", "such", "dir", "out.png")
	if err := SavePNG(path, testGray()); err == nil {
		t.Error("SavePNG into a missing directory succeeded")
	}
}
