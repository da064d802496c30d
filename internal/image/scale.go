package image

import (
	"image"

	"golang.org/x/image/draw"
)

// ScaleCatmullRom returns src resized by factor with the Catmull-Rom
// kernel of golang.org/x/image/draw. It serves as the separable reference
// against which directional upsampling is judged.
func ScaleCatmullRom(src *image.Gray, factor int) *image.Gray {
	b := src.Bounds()
	dst := image.NewGray(image.Rect(0, 0, b.Dx()*factor, b.Dy()*factor))
	draw.CatmullRom.Scale(dst, dst.Bounds(), src, b, draw.Src, nil)
	return dst
}
