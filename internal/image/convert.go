// Package image moves samples between the standard library image types and
// the int32 planes processed by upsample.
//
// Planes handed to an upsampler are unclamped int32 grids; this package
// widens 8-bit samples into them, pads them to the geometry an upsampler
// requires, and narrows the results back to 8 bits with clamping.
package image

import (
	"errors"
	"image"
	"image/color"
)

// Common errors for conversions.
var (
	// ErrInvalidDimensions is returned when width or height is non-positive.
	ErrInvalidDimensions = errors.New("image: invalid dimensions")

	// ErrDataTooSmall is returned when a sample slice is shorter than its
	// geometry requires.
	ErrDataTooSmall = errors.New("image: data buffer too small")
)

// Luma returns the luma of img as a packed int32 plane.
//
// *image.Gray and *image.YCbCr are read directly; any other image is
// converted through color.GrayModel.
func Luma(img image.Image) (pix []int32, width, height int) {
	b := img.Bounds()
	width, height = b.Dx(), b.Dy()
	pix = make([]int32, width*height)

	switch src := img.(type) {
	case *image.Gray:
		for y := range height {
			off := src.PixOffset(b.Min.X, b.Min.Y+y)
			Widen(pix[y*width:(y+1)*width], src.Pix[off:off+width])
		}
	case *image.YCbCr:
		for y := range height {
			off := src.YOffset(b.Min.X, b.Min.Y+y)
			Widen(pix[y*width:(y+1)*width], src.Y[off:off+width])
		}
	default:
		for y := range height {
			for x := range width {
				g := color.GrayModel.Convert(img.At(b.Min.X+x, b.Min.Y+y)).(color.Gray)
				pix[y*width+x] = int32(g.Y)
			}
		}
	}
	return pix, width, height
}

// Widen copies 8-bit samples into dst. dst must be at least as long as src.
func Widen(dst []int32, src []byte) {
	dst = dst[:len(src)]
	for i, v := range src {
		dst[i] = int32(v)
	}
}

// Narrow copies samples into dst, clamping each to [0, 255]. dst must be at
// least as long as src.
func Narrow(dst []byte, src []int32) {
	dst = dst[:len(src)]
	for i, v := range src {
		dst[i] = Clamp8(v)
	}
}

// Clamp8 clamps v to the 8-bit sample range.
func Clamp8(v int32) uint8 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v)
}

// ToGray converts a plane to an 8-bit gray image, clamping every sample.
func ToGray(pix []int32, width, height, stride int) (*image.Gray, error) {
	if width <= 0 || height <= 0 {
		return nil, ErrInvalidDimensions
	}
	if len(pix) < stride*(height-1)+width {
		return nil, ErrDataTooSmall
	}
	gray := image.NewGray(image.Rect(0, 0, width, height))
	for y := range height {
		Narrow(gray.Pix[y*gray.Stride:y*gray.Stride+width], pix[y*stride:y*stride+width])
	}
	return gray, nil
}

// PadEdge returns pix grown to the smallest dimensions that are multiples
// of multiple and at least multiple, replicating the last column and row
// into the padding. If no padding is needed pix itself is returned.
func PadEdge(pix []int32, width, height, multiple int) (padded []int32, pw, ph int) {
	pw = roundUp(width, multiple)
	ph = roundUp(height, multiple)
	if pw == width && ph == height {
		return pix, width, height
	}

	padded = make([]int32, pw*ph)
	for y := range ph {
		sy := min(y, height-1)
		row := padded[y*pw : (y+1)*pw]
		copy(row, pix[sy*width:(sy+1)*width])
		edge := row[width-1]
		for x := width; x < pw; x++ {
			row[x] = edge
		}
	}
	return padded, pw, ph
}

// Crop returns the top-left width x height window of a plane with the
// given stride as a packed slice.
func Crop(pix []int32, stride, width, height int) []int32 {
	out := make([]int32, width*height)
	for y := range height {
		copy(out[y*width:(y+1)*width], pix[y*stride:y*stride+width])
	}
	return out
}

func roundUp(v, multiple int) int {
	if v < multiple {
		return multiple
	}
	return (v + multiple - 1) / multiple * multiple
}
