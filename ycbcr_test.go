package upsample

import (
	"errors"
	"image"
	"slices"
	"testing"
)

func newYCbCr(r image.Rectangle, ratio image.YCbCrSubsampleRatio, cb, cr func(x, y int) uint8) *image.YCbCr {
	img := image.NewYCbCr(r, ratio)
	for i := range img.Y {
		img.Y[i] = uint8(i * 7)
	}
	rows := len(img.Cb) / img.CStride
	for y := range rows {
		for x := range img.CStride {
			img.Cb[y*img.CStride+x] = cb(x, y)
			img.Cr[y*img.CStride+x] = cr(x, y)
		}
	}
	return img
}

func constant(v uint8) func(x, y int) uint8 {
	return func(int, int) uint8 { return v }
}

func TestUpsampleChromaConstant(t *testing.T) {
	tests := []struct {
		name  string
		rect  image.Rectangle
		ratio image.YCbCrSubsampleRatio
	}{
		{"420 aligned", image.Rect(0, 0, 32, 16), image.YCbCrSubsampleRatio420},
		{"420 odd size", image.Rect(0, 0, 13, 11), image.YCbCrSubsampleRatio420},
		{"420 tiny", image.Rect(0, 0, 3, 2), image.YCbCrSubsampleRatio420},
		{"420 odd origin", image.Rect(3, 5, 20, 22), image.YCbCrSubsampleRatio420},
		{"422", image.Rect(0, 0, 9, 4), image.YCbCrSubsampleRatio422},
		{"440", image.Rect(0, 0, 4, 9), image.YCbCrSubsampleRatio440},
		{"444", image.Rect(0, 0, 5, 5), image.YCbCrSubsampleRatio444},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			img := newYCbCr(tt.rect, tt.ratio, constant(77), constant(200))
			out, err := UpsampleChroma(img)
			if err != nil {
				t.Fatalf("UpsampleChroma() error = %v", err)
			}
			if out.SubsampleRatio != image.YCbCrSubsampleRatio444 {
				t.Errorf("ratio = %v, want 4:4:4", out.SubsampleRatio)
			}
			if out.Rect != tt.rect {
				t.Errorf("Rect = %v, want %v", out.Rect, tt.rect)
			}
			for y := tt.rect.Min.Y; y < tt.rect.Max.Y; y++ {
				for x := tt.rect.Min.X; x < tt.rect.Max.X; x++ {
					if got := out.Y[out.YOffset(x, y)]; got != img.Y[img.YOffset(x, y)] {
						t.Fatalf("Y(%d, %d) = %d, want %d", x, y, got, img.Y[img.YOffset(x, y)])
					}
					c := out.COffset(x, y)
					if out.Cb[c] != 77 || out.Cr[c] != 200 {
						t.Fatalf("chroma(%d, %d) = (%d, %d), want (77, 200)", x, y, out.Cb[c], out.Cr[c])
					}
				}
			}
		})
	}
}

func TestUpsampleChroma420PreservesSamples(t *testing.T) {
	for _, r := range []image.Rectangle{
		image.Rect(0, 0, 32, 32),
		image.Rect(0, 0, 27, 21),
	} {
		cb := func(x, y int) uint8 { return uint8(x*37 + y*11) }
		cr := func(x, y int) uint8 { return uint8(255 - x*5 - y*19) }
		img := newYCbCr(r, image.YCbCrSubsampleRatio420, cb, cr)

		out, err := UpsampleChroma(img)
		if err != nil {
			t.Fatal(err)
		}
		for y := 0; y < r.Dy(); y += 2 {
			for x := 0; x < r.Dx(); x += 2 {
				src := img.COffset(x, y)
				dst := out.COffset(x, y)
				if out.Cb[dst] != img.Cb[src] || out.Cr[dst] != img.Cr[src] {
					t.Fatalf("%v: chroma at (%d, %d) = (%d, %d), want (%d, %d)", r, x, y,
						out.Cb[dst], out.Cr[dst], img.Cb[src], img.Cr[src])
				}
			}
		}
	}
}

func TestUpsampleChroma422(t *testing.T) {
	// Chroma samples are co-sited with even luma columns.
	values := []uint8{10, 20, 40}
	cb := func(x, _ int) uint8 { return values[x] }

	tests := []struct {
		name string
		rect image.Rectangle
		want []uint8
	}{
		{"even origin", image.Rect(0, 0, 6, 2), []uint8{10, 15, 20, 30, 40, 40}},
		{"odd origin", image.Rect(1, 0, 5, 2), []uint8{15, 20, 30, 40}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			img := newYCbCr(tt.rect, image.YCbCrSubsampleRatio422, cb, constant(128))
			out, err := UpsampleChroma(img)
			if err != nil {
				t.Fatal(err)
			}
			for y := tt.rect.Min.Y; y < tt.rect.Max.Y; y++ {
				off := out.COffset(tt.rect.Min.X, y)
				if got := out.Cb[off : off+tt.rect.Dx()]; !slices.Equal(got, tt.want) {
					t.Errorf("Cb row %d = %v, want %v", y, got, tt.want)
				}
			}
		})
	}
}

func TestUpsampleChroma440(t *testing.T) {
	img := newYCbCr(image.Rect(0, 0, 2, 4), image.YCbCrSubsampleRatio440,
		func(x, y int) uint8 { return uint8(10 + 20*y + x) }, constant(0))
	out, err := UpsampleChroma(img)
	if err != nil {
		t.Fatal(err)
	}
	want := []uint8{
		10, 11,
		20, 21,
		30, 31,
		30, 31,
	}
	if got := out.Cb[:8]; !slices.Equal(got, want) {
		t.Errorf("Cb = %v, want %v", got, want)
	}
}

func TestUpsampleChromaUnsupported(t *testing.T) {
	for _, ratio := range []image.YCbCrSubsampleRatio{
		image.YCbCrSubsampleRatio411,
		image.YCbCrSubsampleRatio410,
	} {
		img := image.NewYCbCr(image.Rect(0, 0, 16, 16), ratio)
		if _, err := UpsampleChroma(img); !errors.Is(err, ErrUnsupportedOperation) {
			t.Errorf("%v: error = %v, want ErrUnsupportedOperation", ratio, err)
		}
	}
}

func TestUpsampleChromaEmpty(t *testing.T) {
	img := image.NewYCbCr(image.Rect(4, 4, 4, 9), image.YCbCrSubsampleRatio420)
	out, err := UpsampleChroma(img)
	if err != nil {
		t.Fatalf("UpsampleChroma(empty) error = %v", err)
	}
	if !out.Rect.Empty() {
		t.Errorf("Rect = %v, want empty", out.Rect)
	}
}
