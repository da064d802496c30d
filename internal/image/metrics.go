package image

import (
	"fmt"
	"image"
	"math"
)

// Difference summarises how far two gray images of equal size are apart.
type Difference struct {
	// MAE is the mean absolute difference per sample.
	MAE float64

	// PSNR is the peak signal-to-noise ratio in dB for an 8-bit peak.
	// It is +Inf for identical images.
	PSNR float64

	// Max is the largest absolute difference of a single sample.
	Max int
}

// Compare measures the difference between a and b.
func Compare(a, b *image.Gray) (Difference, error) {
	ab, bb := a.Bounds(), b.Bounds()
	if ab.Dx() != bb.Dx() || ab.Dy() != bb.Dy() {
		return Difference{}, fmt.Errorf("%w: %dx%d vs %dx%d",
			ErrInvalidDimensions, ab.Dx(), ab.Dy(), bb.Dx(), bb.Dy())
	}
	w, h := ab.Dx(), ab.Dy()
	if w == 0 || h == 0 {
		return Difference{}, ErrInvalidDimensions
	}

	var sumAbs, sumSq float64
	maxDiff := 0
	for y := range h {
		ra := a.Pix[a.PixOffset(ab.Min.X, ab.Min.Y+y):]
		rb := b.Pix[b.PixOffset(bb.Min.X, bb.Min.Y+y):]
		for x := range w {
			d := int(ra[x]) - int(rb[x])
			if d < 0 {
				d = -d
			}
			maxDiff = max(maxDiff, d)
			sumAbs += float64(d)
			sumSq += float64(d * d)
		}
	}

	n := float64(w * h)
	diff := Difference{MAE: sumAbs / n, Max: maxDiff, PSNR: math.Inf(1)}
	if mse := sumSq / n; mse > 0 {
		diff.PSNR = 10 * math.Log10(255*255/mse)
	}
	return diff, nil
}
