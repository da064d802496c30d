package upsample

import (
	"fmt"
	"image"

	"golang.org/x/sync/errgroup"

	intImage "github.com/gogpu/upsample/internal/image"
)

// UpsampleChroma returns a 4:4:4 copy of img with its subsampled chroma
// planes reconstructed at luma resolution.
//
// 4:2:0 chroma is doubled on both axes with EdgeDirected. Planes whose size
// is not a multiple of 8 are padded by repeating the last row and column
// first, so odd-sized images take the same path. 4:2:2 and 4:4:0 chroma is
// doubled along its one subsampled axis with Bilinear, since edge-directed
// interpolation needs both. 4:4:4 input is copied. Other ratios fail with
// ErrUnsupportedOperation.
//
// The Cb and Cr planes are processed concurrently. Reconstructed samples
// are clamped to [0, 255] when written back.
func UpsampleChroma(img *image.YCbCr) (*image.YCbCr, error) {
	r := img.Rect
	out := image.NewYCbCr(r, image.YCbCrSubsampleRatio444)
	if r.Empty() {
		return out, nil
	}
	w, h := r.Dx(), r.Dy()

	for y := range h {
		src := img.Y[img.YOffset(r.Min.X, r.Min.Y+y):]
		copy(out.Y[y*out.YStride:y*out.YStride+w], src[:w])
	}

	var sx, sy int
	switch img.SubsampleRatio {
	case image.YCbCrSubsampleRatio444:
		sx, sy = 1, 1
	case image.YCbCrSubsampleRatio422:
		sx, sy = 2, 1
	case image.YCbCrSubsampleRatio440:
		sx, sy = 1, 2
	case image.YCbCrSubsampleRatio420:
		sx, sy = 2, 2
	default:
		return nil, fmt.Errorf("%w: chroma subsampling %v", ErrUnsupportedOperation, img.SubsampleRatio)
	}

	job := chromaJob{
		cw:     chromaExtent(r.Min.X, r.Max.X, sx),
		ch:     chromaExtent(r.Min.Y, r.Max.Y, sy),
		sx:     sx,
		sy:     sy,
		phaseX: (sx - 1) & r.Min.X,
		phaseY: (sy - 1) & r.Min.Y,
		width:  w,
		height: h,
	}

	var g errgroup.Group
	g.Go(func() error {
		return job.run(out.Cb, out.CStride, img.Cb, img.CStride)
	})
	g.Go(func() error {
		return job.run(out.Cr, out.CStride, img.Cr, img.CStride)
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	Logger().Debug("upsample: chroma reconstructed",
		"ratio", img.SubsampleRatio.String(), "width", w, "height", h,
		"chroma_width", job.cw, "chroma_height", job.ch)
	return out, nil
}

// chromaExtent returns the number of chroma samples covering luma
// coordinates [lo, hi) at the given subsampling factor, as image.YCbCr
// lays them out.
func chromaExtent(lo, hi, factor int) int {
	if factor == 1 {
		return hi - lo
	}
	return (hi+1)/2 - lo/2
}

// chromaJob reconstructs one chroma plane. All planes of an image share
// the same job.
type chromaJob struct {
	cw, ch         int // source chroma plane size
	sx, sy         int // subsampling factors
	phaseX, phaseY int // offset of the first luma sample in the doubled plane
	width, height  int // luma size
}

func (j chromaJob) run(dst []byte, dstStride int, src []byte, srcStride int) error {
	pix := intImage.GetFromDefault(j.cw * j.ch)
	defer intImage.PutToDefault(pix)
	for y := range j.ch {
		intImage.Widen(pix[y*j.cw:(y+1)*j.cw], src[y*srcStride:y*srcStride+j.cw])
	}

	up, stride, rows, cols, err := j.double(pix)
	if err != nil {
		return err
	}
	defer intImage.PutToDefault(up)

	for y := range j.height {
		row := up[min(y+j.phaseY, rows-1)*stride:]
		d := dst[y*dstStride : y*dstStride+j.width]
		for x := range d {
			d[x] = intImage.Clamp8(row[min(x+j.phaseX, cols-1)])
		}
	}
	return nil
}

// double upsamples a packed cw x ch plane along its subsampled axes. The
// result is a pooled buffer with the given stride holding rows x cols
// meaningful samples.
func (j chromaJob) double(pix []int32) (up []int32, stride, rows, cols int, err error) {
	switch {
	case j.sx == 2 && j.sy == 2:
		padded, pw, ph := intImage.PadEdge(pix, j.cw, j.ch, 8)
		e, err := NewEdgeDirected(pw, ph)
		if err != nil {
			return nil, 0, 0, 0, err
		}
		up = intImage.GetFromDefault(4 * pw * ph)
		e.SuperSample(padded, up)
		return up, 2 * pw, 2 * j.ch, 2 * j.cw, nil

	case j.sx == 2:
		b, err := NewBilinear(j.cw, j.ch, j.cw)
		if err != nil {
			return nil, 0, 0, 0, err
		}
		up = intImage.GetFromDefault(2 * j.cw * j.ch)
		if err := b.SuperSampleHorizontal(pix, up); err != nil {
			intImage.PutToDefault(up)
			return nil, 0, 0, 0, err
		}
		return up, 2 * j.cw, j.ch, 2 * j.cw, nil

	case j.sy == 2:
		b, err := NewBilinear(j.cw, j.ch, j.cw)
		if err != nil {
			return nil, 0, 0, 0, err
		}
		up = intImage.GetFromDefault(2 * j.cw * j.ch)
		if err := b.SuperSampleVertical(pix, up); err != nil {
			intImage.PutToDefault(up)
			return nil, 0, 0, 0, err
		}
		return up, j.cw, 2 * j.ch, j.cw, nil

	default:
		up = intImage.GetFromDefault(j.cw * j.ch)
		copy(up, pix)
		return up, j.cw, j.ch, j.cw, nil
	}
}
